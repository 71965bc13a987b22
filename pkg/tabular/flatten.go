package tabular

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/utc"
)

// Field declares one output column of a flattened row: which source key
// it reads and what the column is called. Ref marks entity-reference
// values that should be reduced to their trailing path segment.
type Field struct {
	Source string
	Column string
	Ref    bool
}

// FieldMap is an ordered projection from source record keys to output
// columns. Declaration order fixes the output column order; source keys
// not listed are dropped.
type FieldMap []Field

// Columns returns the output column names in declaration order.
func (fm FieldMap) Columns() []string {
	cols := make([]string, len(fm))
	for i, f := range fm {
		cols[i] = f.Column
	}
	return cols
}

// Flatten projects a nested record onto a flat row using the field map.
// Missing source keys yield empty cells, never an error; downstream
// consumers expect blanks for unanswered fields.
func Flatten(record map[string]any, fm FieldMap) Row {
	row := make(Row, len(fm))
	for _, f := range fm {
		value, ok := record[f.Source]
		if !ok || value == nil {
			row[f.Column] = ""
			continue
		}
		cell := cellString(value)
		if f.Ref {
			cell = LastPathSegment(cell)
		}
		row[f.Column] = cell
	}
	return row
}

// LastPathSegment returns the final path segment of a reference URI,
// which is the stable identifier of the referenced entity. Non-URI
// values pass through unchanged.
func LastPathSegment(uri string) string {
	trimmed := strings.TrimRight(uri, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return uri
}

// cellString renders a scalar record value as a cell.
func cellString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case utc.Time:
		return v.Format(time.RFC3339)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
