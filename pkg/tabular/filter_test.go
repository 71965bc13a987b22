package tabular

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return parsed
}

func TestDateRangeInclusiveBounds(t *testing.T) {
	r := DateRange{
		Column: "event_start",
		Start:  mustDate(t, "2025-06-01"),
		End:    mustDate(t, "2025-06-25"),
	}

	tests := []struct {
		cell string
		want bool
	}{
		{"2025-06-01T00:00:00Z", true},  // lower boundary included
		{"2025-06-25T00:00:00Z", true},  // upper boundary included
		{"2025-06-25T00:00:01Z", false}, // one unit beyond excluded
		{"2025-05-31T23:59:59Z", false},
		{"2025-06-10T12:00:00Z", true},
		{"", false},
		{"not a date", false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.cell); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestDateRangeOpenBounds(t *testing.T) {
	lower := DateRange{Column: "d", Start: mustDate(t, "2025-06-01")}
	if !lower.Contains("2099-01-01") {
		t.Error("open upper bound should admit far-future rows")
	}
	upper := DateRange{Column: "d", End: mustDate(t, "2025-06-01")}
	if !upper.Contains("1999-01-01") {
		t.Error("open lower bound should admit far-past rows")
	}
}

func TestDateRangeFilter(t *testing.T) {
	d := New("Email", "Date Created")
	d.Append(Row{"Email": "in@x.com", "Date Created": "2025-06-10"})
	d.Append(Row{"Email": "out@x.com", "Date Created": "2025-07-10"})
	d.Append(Row{"Email": "blank@x.com", "Date Created": ""})

	r := DateRange{
		Column: "Date Created",
		Start:  mustDate(t, "2025-06-01"),
		End:    mustDate(t, "2025-06-25"),
	}
	got := r.Filter(d)

	if got.Len() != 1 {
		t.Fatalf("expected 1 row after filtering, got %d", got.Len())
	}
	if got.Rows[0]["Email"] != "in@x.com" {
		t.Errorf("wrong row survived: %v", got.Rows[0])
	}
	if d.Len() != 3 {
		t.Error("filter must not mutate its input")
	}
}

func TestParseDateLayouts(t *testing.T) {
	for _, s := range []string{
		"2025-06-25T10:30:00Z",
		"2025-06-25 10:30:00",
		"2025-06-25",
	} {
		if _, err := ParseDate(s); err != nil {
			t.Errorf("ParseDate(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseDate("25/06/2025"); err == nil {
		t.Error("expected error for unknown layout")
	}
}
