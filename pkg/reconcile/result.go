package reconcile

import (
	"fmt"

	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

// Result carries the matched dataset together with per-side counts, so
// callers can report how much each filter discarded.
type Result struct {
	// Matched is the inner-join output, one row per key-equal pair.
	Matched *tabular.Dataset

	// LeftIn and RightIn count the rows presented on each side.
	LeftIn  int
	RightIn int

	// LeftKept and RightKept count the rows remaining after the
	// per-side date filters.
	LeftKept  int
	RightKept int
}

// Summary renders a one-line account of the reconciliation.
func (r *Result) Summary() string {
	return fmt.Sprintf("left %d/%d, right %d/%d, matched %d",
		r.LeftKept, r.LeftIn, r.RightKept, r.RightIn, r.Matched.Len())
}
