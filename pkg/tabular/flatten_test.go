package tabular

import (
	"testing"
)

func TestFlattenProjection(t *testing.T) {
	fm := FieldMap{
		{Source: "uri", Column: "invitee_uuid", Ref: true},
		{Source: "name", Column: "invitee_name"},
		{Source: "email", Column: "invitee_email"},
		{Source: "status", Column: "status"},
	}

	record := map[string]any{
		"uri":    "https://api.calendly.com/scheduled_events/EV1/invitees/INV123",
		"name":   "Ada Lovelace",
		"email":  "ada@example.com",
		"status": "active",
		"extra":  "dropped by projection",
	}

	row := Flatten(record, fm)

	if row["invitee_uuid"] != "INV123" {
		t.Errorf("expected reference reduced to last path segment, got %q", row["invitee_uuid"])
	}
	if row["invitee_name"] != "Ada Lovelace" {
		t.Errorf("unexpected name: %q", row["invitee_name"])
	}
	if _, ok := row["extra"]; ok {
		t.Error("columns not in the field map must be dropped")
	}
}

func TestFlattenMissingFieldYieldsEmpty(t *testing.T) {
	fm := FieldMap{
		{Source: "email", Column: "invitee_email"},
		{Source: "answers", Column: "custom_answers"},
	}

	row := Flatten(map[string]any{"email": "a@x.com"}, fm)

	cell, ok := row["custom_answers"]
	if !ok {
		t.Fatal("missing source fields still produce an output column")
	}
	if cell != "" {
		t.Errorf("missing field should flatten to empty, got %q", cell)
	}
}

func TestFlattenNilValue(t *testing.T) {
	fm := FieldMap{{Source: "notes", Column: "Notes"}}
	row := Flatten(map[string]any{"notes": nil}, fm)
	if row["Notes"] != "" {
		t.Errorf("nil values flatten to empty, got %q", row["Notes"])
	}
}

func TestFieldMapColumnsPreserveOrder(t *testing.T) {
	fm := FieldMap{
		{Source: "a", Column: "A"},
		{Source: "b", Column: "B"},
		{Source: "c", Column: "C"},
	}
	cols := fm.Columns()
	want := []string{"A", "B", "C"}
	for i, c := range want {
		if cols[i] != c {
			t.Fatalf("column order mismatch: got %v, want %v", cols, want)
		}
	}
}

func TestLastPathSegment(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://api.calendly.com/scheduled_events/ABCDEF", "ABCDEF"},
		{"https://api.calendly.com/organizations/ORG1/", "ORG1"},
		{"plain-value", "plain-value"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LastPathSegment(tt.in); got != tt.want {
			t.Errorf("LastPathSegment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
