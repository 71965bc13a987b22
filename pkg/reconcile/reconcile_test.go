package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyoK3N/Calendly-API/pkg/errors"
	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

func calendlySide(rows ...tabular.Row) *tabular.Dataset {
	d := tabular.New("invitee_email", "event_start", "v")
	for _, r := range rows {
		d.Append(r)
	}
	return d
}

func mondaySide(rows ...tabular.Row) *tabular.Dataset {
	d := tabular.New("Email", "Date Created", "w")
	for _, r := range rows {
		d.Append(r)
	}
	return d
}

func TestInnerJoinDropsUnmatched(t *testing.T) {
	left := calendlySide(tabular.Row{"invitee_email": "a@x.com", "v": "1"})
	right := mondaySide(
		tabular.Row{"Email": "a@x.com", "w": "2"},
		tabular.Row{"Email": "b@x.com", "w": "3"},
	)

	r := New(WithJoinKeys("invitee_email", "Email"))
	result, err := r.Reconcile(left, right)
	require.NoError(t, err)

	require.Equal(t, 1, result.Matched.Len())
	row := result.Matched.Rows[0]
	assert.Equal(t, "a@x.com", row["invitee_email"])
	assert.Equal(t, "a@x.com", row["Email"], "both key columns survive in the union")
	assert.Equal(t, "1", row["v"])
	assert.Equal(t, "2", row["w"])
}

func TestJoinIsCaseSensitive(t *testing.T) {
	left := calendlySide(tabular.Row{"invitee_email": "A@X.com", "v": "1"})
	right := mondaySide(tabular.Row{"Email": "a@x.com", "w": "2"})

	r := New(WithJoinKeys("invitee_email", "Email"))
	result, err := r.Reconcile(left, right)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Matched.Len(), "keys are compared without case folding")
}

func TestJoinManyToMany(t *testing.T) {
	left := calendlySide(
		tabular.Row{"invitee_email": "a@x.com", "v": "1"},
		tabular.Row{"invitee_email": "a@x.com", "v": "2"},
	)
	right := mondaySide(
		tabular.Row{"Email": "a@x.com", "w": "10"},
		tabular.Row{"Email": "a@x.com", "w": "20"},
	)

	r := New(WithJoinKeys("invitee_email", "Email"))
	result, err := r.Reconcile(left, right)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Matched.Len(), "every key-equal pair is emitted")
}

func TestEmptyKeysNeverMatch(t *testing.T) {
	left := calendlySide(tabular.Row{"invitee_email": "", "v": "1"})
	right := mondaySide(tabular.Row{"Email": "", "w": "2"})

	r := New(WithJoinKeys("invitee_email", "Email"))
	result, err := r.Reconcile(left, right)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Matched.Len())
}

func TestDateFiltersAppliedBeforeJoin(t *testing.T) {
	left := calendlySide(
		tabular.Row{"invitee_email": "a@x.com", "event_start": "2025-06-10T10:00:00Z", "v": "in"},
		tabular.Row{"invitee_email": "a@x.com", "event_start": "2025-07-10T10:00:00Z", "v": "out"},
	)
	right := mondaySide(tabular.Row{"Email": "a@x.com", "Date Created": "2025-06-12", "w": "2"})

	start, _ := time.Parse("2006-01-02", "2025-06-01")
	end, _ := time.Parse("2006-01-02", "2025-06-25")

	r := New(
		WithJoinKeys("invitee_email", "Email"),
		WithLeftFilter(tabular.DateRange{Column: "event_start", Start: start, End: end}),
		WithRightFilter(tabular.DateRange{Column: "Date Created", Start: start, End: end}),
	)
	result, err := r.Reconcile(left, right)
	require.NoError(t, err)

	require.Equal(t, 1, result.Matched.Len(), "rows outside the window never join")
	assert.Equal(t, "in", result.Matched.Rows[0]["v"])
	assert.Equal(t, 2, result.LeftIn)
	assert.Equal(t, 1, result.LeftKept)
	assert.Equal(t, 1, result.RightKept)
}

func TestConcatThenJoin(t *testing.T) {
	regionA := calendlySide(tabular.Row{"invitee_email": "a@x.com", "v": "intl"})
	regionB := calendlySide(tabular.Row{"invitee_email": "b@x.com", "v": "domestic"})
	right := mondaySide(
		tabular.Row{"Email": "a@x.com", "w": "1"},
		tabular.Row{"Email": "b@x.com", "w": "2"},
	)

	r := New(WithJoinKeys("invitee_email", "Email"))
	result, err := r.Reconcile(tabular.Concat(regionA, regionB), right)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Matched.Len())
}

func TestMissingJoinColumn(t *testing.T) {
	left := calendlySide()
	right := mondaySide()

	r := New(WithJoinKeys("invitee_email", "No Such Column"))
	_, err := r.Reconcile(left, right)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUnconfiguredKeys(t *testing.T) {
	_, err := New().Reconcile(calendlySide(), mondaySide())
	require.Error(t, err)
}

func TestResultSummary(t *testing.T) {
	result := &Result{
		Matched:  tabular.New("a"),
		LeftIn:   10,
		LeftKept: 4,
		RightIn:  7,
		RightKept: 7,
	}
	assert.Equal(t, "left 4/10, right 7/7, matched 0", result.Summary())
}
