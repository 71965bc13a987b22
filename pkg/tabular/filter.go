package tabular

import (
	"time"

	"github.com/RyoK3N/Calendly-API/pkg/errors"
)

// dateLayouts are tried in order when parsing timestamp cells. Sources
// disagree on precision: Calendly emits RFC3339, Monday emits bare dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateRange is an inclusive [Start, End] predicate on a designated
// timestamp column. A zero Start or End leaves that bound open.
type DateRange struct {
	Column string
	Start  time.Time
	End    time.Time
}

// Contains reports whether a cell value falls inside the range. Cells
// that are empty or unparseable fall outside every range.
func (r DateRange) Contains(cell string) bool {
	t, err := ParseDate(cell)
	if err != nil {
		return false
	}
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// Filter returns a new dataset holding only the rows whose timestamp
// column falls inside the range. The input dataset is left untouched.
func (r DateRange) Filter(d *Dataset) *Dataset {
	out := New(d.Columns...)
	for _, row := range d.Rows {
		if r.Contains(row[r.Column]) {
			out.Append(row)
		}
	}
	return out
}

// ParseDate parses a timestamp cell using the known source layouts.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.NewValidationError("date", s, "empty value")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewValidationError("date", s, "unrecognized timestamp layout")
}
