// Package reconcile merges tabular datasets from different sources by a
// shared identifying field. Each side may be date-filtered independently
// before an inner join on exact key equality; matched rows carry the
// union of both sides' columns.
package reconcile

import (
	"github.com/RyoK3N/Calendly-API/pkg/errors"
	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

// Reconciler joins two datasets on a per-side join key.
type Reconciler struct {
	leftKey     string
	rightKey    string
	leftFilter  *tabular.DateRange
	rightFilter *tabular.DateRange
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithJoinKeys sets the join column for each side. The keys are compared
// with exact string equality: no case folding, no whitespace trimming.
func WithJoinKeys(left, right string) Option {
	return func(r *Reconciler) {
		r.leftKey = left
		r.rightKey = right
	}
}

// WithLeftFilter applies a date-range filter to the left dataset before
// the join. Rows outside the range are excluded entirely, not merely
// unmatched.
func WithLeftFilter(f tabular.DateRange) Option {
	return func(r *Reconciler) {
		r.leftFilter = &f
	}
}

// WithRightFilter applies a date-range filter to the right dataset
// before the join.
func WithRightFilter(f tabular.DateRange) Option {
	return func(r *Reconciler) {
		r.rightFilter = &f
	}
}

// New creates a Reconciler with options.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile filters both datasets, then performs an inner join: every
// (left, right) row pair with equal join-key cells emits one matched row.
// Multiple matches per key are all retained, so the join is many-to-many.
// Rows with no counterpart, and rows whose join cell is empty, are
// dropped silently.
func (r *Reconciler) Reconcile(left, right *tabular.Dataset) (*Result, error) {
	if r.leftKey == "" || r.rightKey == "" {
		return nil, errors.NewValidationError("join_key", "", "join keys not configured")
	}
	if !left.HasColumn(r.leftKey) {
		return nil, errors.NewValidationError("join_key", r.leftKey, "column not present in left dataset")
	}
	if !right.HasColumn(r.rightKey) {
		return nil, errors.NewValidationError("join_key", r.rightKey, "column not present in right dataset")
	}

	result := &Result{LeftIn: left.Len(), RightIn: right.Len()}

	if r.leftFilter != nil {
		left = r.leftFilter.Filter(left)
	}
	if r.rightFilter != nil {
		right = r.rightFilter.Filter(right)
	}
	result.LeftKept = left.Len()
	result.RightKept = right.Len()

	// Index the right side by key. Empty join cells never participate;
	// a blank email on both sides would otherwise cross-join.
	index := make(map[string][]tabular.Row, right.Len())
	for _, row := range right.Rows {
		key := row[r.rightKey]
		if key == "" {
			continue
		}
		index[key] = append(index[key], row)
	}

	result.Matched = tabular.New(unionColumns(left.Columns, right.Columns)...)
	for _, lrow := range left.Rows {
		key := lrow[r.leftKey]
		if key == "" {
			continue
		}
		for _, rrow := range index[key] {
			result.Matched.Append(mergeRows(lrow, rrow, left.Columns))
		}
	}

	return result, nil
}

// unionColumns returns left's columns followed by right's columns that
// left does not already carry.
func unionColumns(left, right []string) []string {
	out := append([]string(nil), left...)
	seen := make(map[string]bool, len(left))
	for _, c := range left {
		seen[c] = true
	}
	for _, c := range right {
		if !seen[c] {
			out = append(out, c)
			seen[c] = true
		}
	}
	return out
}

// mergeRows overlays the right row onto a copy of the left row. On a
// column collision the left cell wins.
func mergeRows(left, right tabular.Row, leftColumns []string) tabular.Row {
	merged := make(tabular.Row, len(left)+len(right))
	for k, v := range right {
		merged[k] = v
	}
	for _, col := range leftColumns {
		merged[col] = left[col]
	}
	return merged
}
