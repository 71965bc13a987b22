// Package tabular provides the flat, columnar representation that vendor
// records are normalized into before export and reconciliation. A Dataset
// carries an ordered column list and rows keyed by column name; cells are
// plain strings, with the empty string standing in for missing values.
package tabular

// Row maps column names to cell values. Missing columns read as "".
type Row map[string]string

// Dataset is an ordered collection of rows sharing one column set.
// Datasets are written once and never mutated after export.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// New creates an empty dataset with the given column order.
func New(columns ...string) *Dataset {
	return &Dataset{Columns: columns}
}

// Append adds a row. Cells for columns not in the dataset schema are
// ignored at write time; missing cells render as empty.
func (d *Dataset) Append(row Row) {
	d.Rows = append(d.Rows, row)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// HasColumn reports whether name is part of the dataset schema.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Head returns up to n rows rendered in column order, for previews.
func (d *Dataset) Head(n int) [][]string {
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	out := make([][]string, 0, n)
	for _, row := range d.Rows[:n] {
		cells := make([]string, len(d.Columns))
		for i, col := range d.Columns {
			cells[i] = row[col]
		}
		out = append(out, cells)
	}
	return out
}

// Concat unions the rows of same-schema datasets in argument order. The
// column set of the first dataset wins; callers must guarantee the inputs
// share a compatible schema.
func Concat(datasets ...*Dataset) *Dataset {
	if len(datasets) == 0 {
		return &Dataset{}
	}
	out := &Dataset{Columns: append([]string(nil), datasets[0].Columns...)}
	for _, d := range datasets {
		out.Rows = append(out.Rows, d.Rows...)
	}
	return out
}
