package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/core/filter"
)

func applicants(pairs ...any) []api.Applicant {
	out := make([]api.Applicant, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, api.Applicant{
			ID:     pairs[i].(int),
			Status: pairs[i+1].(filter.Status),
		})
	}
	return out
}

func ids(items []api.Applicant) []int {
	out := make([]int, len(items))
	for i, a := range items {
		out[i] = a.ID
	}
	return out
}

func TestTriage_fetch_populates_deck(t *testing.T) {
	tr := NewTriage(1)
	gen := tr.BeginFetch()

	ok := tr.ApplyFetch(gen, applicants(1, filter.StatusPending, 2, filter.StatusPending), false)

	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, ids(tr.Filtered()))
}

func TestTriage_stale_fetch_is_discarded(t *testing.T) {
	tr := NewTriage(1)

	stale := tr.BeginFetch()
	fresh := tr.BeginFetch()

	require.True(t, tr.ApplyFetch(fresh, applicants(1, filter.StatusPending), false))
	// The slower, older response must not overwrite the newer queue.
	assert.False(t, tr.ApplyFetch(stale, applicants(9, filter.StatusPending), false))
	assert.Equal(t, []int{1}, ids(tr.Filtered()))
}

func TestTriage_background_fetch_preserves_scan_order(t *testing.T) {
	tr := NewTriage(1)
	gen := tr.BeginFetch()
	require.True(t, tr.ApplyFetch(gen, applicants(
		1, filter.StatusPending, 2, filter.StatusPending, 3, filter.StatusPending), false))

	// User skipped the top card; 3 sank to the bottom.
	tr.Skip(3)
	require.Equal(t, []int{3, 1, 2}, ids(tr.Filtered()))

	gen = tr.BeginFetch()
	require.True(t, tr.ApplyFetch(gen, applicants(
		1, filter.StatusPending, 2, filter.StatusPending, 3, filter.StatusPending), false))

	assert.Equal(t, []int{3, 1, 2}, ids(tr.Filtered()))
}

func TestTriage_category_switch_replaces_order(t *testing.T) {
	tr := NewTriage(1)
	gen := tr.BeginFetch()
	require.True(t, tr.ApplyFetch(gen, applicants(
		1, filter.StatusPending, 2, filter.StatusPending), false))
	tr.Skip(2)

	gen = tr.SetCategory(filter.StatusPending)
	require.True(t, tr.ApplyFetch(gen, applicants(
		1, filter.StatusPending, 2, filter.StatusPending), true))

	// Fetch order wins after a category switch.
	assert.Equal(t, []int{1, 2}, ids(tr.Filtered()))
}

func TestTriage_apply_status_is_optimistic(t *testing.T) {
	tr := NewTriage(1)
	gen := tr.BeginFetch()
	require.True(t, tr.ApplyFetch(gen, applicants(
		5, filter.StatusPending, 6, filter.StatusPending, 7, filter.StatusPending), false))

	changed := tr.ApplyStatus([]int{5, 7}, filter.StatusRejected)

	// Before any network call: counts move and the cards leave the deck.
	assert.Equal(t, []int{5, 7}, changed)
	assert.Equal(t, []int{6}, ids(tr.Filtered()))
	counts := tr.Counts()
	assert.Equal(t, 1, counts[filter.StatusPending])
	assert.Equal(t, 2, counts[filter.StatusRejected])

	a5, ok := tr.Applicant(5)
	require.True(t, ok)
	assert.Equal(t, filter.StatusRejected, a5.Status)
}

func TestTriage_apply_status_skips_same_status(t *testing.T) {
	tr := NewTriage(1)
	gen := tr.BeginFetch()
	require.True(t, tr.ApplyFetch(gen, applicants(
		1, filter.StatusShortlisted, 2, filter.StatusPending), false))

	changed := tr.ApplyStatus([]int{1, 2}, filter.StatusShortlisted)

	// Re-shortlisting an already-shortlisted item is a silent no-op.
	assert.Equal(t, []int{2}, changed)
}

func TestTriage_reconciliation_restores_server_truth(t *testing.T) {
	tr := NewTriage(1)
	gen := tr.BeginFetch()
	require.True(t, tr.ApplyFetch(gen, applicants(1, filter.StatusPending, 2, filter.StatusPending), false))

	// Optimistic rejection of 1, then the mutation fails server-side.
	tr.ApplyStatus([]int{1}, filter.StatusRejected)
	require.Equal(t, []int{2}, ids(tr.Filtered()))

	// The corrective refetch says 1 is still pending; the refetch is
	// the rollback mechanism. The card rejoins at the bottom of the
	// stack without disturbing the visible card.
	gen = tr.BeginFetch()
	require.True(t, tr.ApplyFetch(gen, applicants(1, filter.StatusPending, 2, filter.StatusPending), false))

	assert.Equal(t, []int{1, 2}, ids(tr.Filtered()))
	top, ok := tr.Top()
	require.True(t, ok)
	assert.Equal(t, 2, top.ID)
	counts := tr.Counts()
	assert.Equal(t, 2, counts[filter.StatusPending])
	assert.Equal(t, 0, counts[filter.StatusRejected])
}

func TestTriage_resolve_keeps_membership(t *testing.T) {
	tr := NewTriage(1)
	gen := tr.BeginFetch()
	require.True(t, tr.ApplyFetch(gen, applicants(
		1, filter.StatusPending, 2, filter.StatusPending, 3, filter.StatusPending), false))

	tr.Resolve(2)

	assert.ElementsMatch(t, []int{1, 2, 3}, ids(tr.Filtered()))
	// Sink-to-back: the resolved card is now last, i.e. on top.
	assert.Equal(t, []int{1, 3, 2}, ids(tr.Filtered()))
}

func TestTriage_top(t *testing.T) {
	tr := NewTriage(1)
	_, ok := tr.Top()
	assert.False(t, ok)

	gen := tr.BeginFetch()
	require.True(t, tr.ApplyFetch(gen, applicants(1, filter.StatusPending, 2, filter.StatusPending), false))

	top, ok := tr.Top()
	require.True(t, ok)
	assert.Equal(t, 2, top.ID)
}
