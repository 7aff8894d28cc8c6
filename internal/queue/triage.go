// Package queue holds the per-view queue state machines: the
// authoritative item collection, the ordered deck in front of it, and
// the optimistic mutation/reconciliation rules that keep the two
// consistent while network calls are in flight.
//
// Network I/O stays in the TUI command layer; these types are pure
// state so every ordering rule is testable without a server.
package queue

import (
	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/core/deck"
	"github.com/s-stratton/simplyjobs/internal/core/filter"
)

// Generation is a fetch token. Each fetch request takes the next
// generation; a response only lands if its token is still current, so
// a stale response can never overwrite a newer queue.
type Generation uint64

// Triage is the employer-side respondent queue for a single job.
type Triage struct {
	jobID      int
	category   filter.Status
	applicants []api.Applicant
	deck       *deck.Deck
	gen        Generation
}

// NewTriage creates an empty triage queue for the given job, filtered
// to PENDING. The deck uses the sink-to-back resolve policy the web
// client shipped with; the category filter is what actually hides a
// resolved card.
func NewTriage(jobID int) *Triage {
	return &Triage{
		jobID:    jobID,
		category: filter.StatusPending,
		deck:     deck.New(deck.SinkToBack),
	}
}

// JobID returns the job whose applicants this queue holds.
func (t *Triage) JobID() int { return t.jobID }

// Category returns the active status filter.
func (t *Triage) Category() filter.Status { return t.category }

// BeginFetch invalidates all outstanding fetches and returns the token
// the next response must present.
func (t *Triage) BeginFetch() Generation {
	t.gen++
	return t.gen
}

// SetCategory switches the active filter and starts a replace-fetch.
// Switching categories deliberately resets the scan order.
func (t *Triage) SetCategory(category filter.Status) Generation {
	t.category = category.Normalize()
	return t.BeginFetch()
}

// ApplyFetch installs an authoritative fetch result. Responses carrying
// a superseded generation are discarded (returns false). When replace
// is set the deck takes the fetch order; otherwise an already-populated
// deck keeps its scan order, sheds ids the server no longer returns,
// and takes back ids it is missing. The merge is what rolls back an
// optimistic removal after a failed mutation: the card rejoins at the
// bottom of the stack.
func (t *Triage) ApplyFetch(gen Generation, applicants []api.Applicant, replace bool) bool {
	if gen != t.gen {
		return false
	}
	t.applicants = applicants

	ids := filter.IDs(applicants)
	if replace {
		t.deck.Replace(ids)
	} else {
		t.deck.PopulateIfEmpty(ids)
		t.deck.Retain(ids)
		t.deck.Merge(ids)
	}
	return true
}

// ApplyStatus performs the optimistic half of a status mutation: every
// matching applicant in the authoritative collection is marked with the
// new status and dropped from the deck immediately, before any network
// call settles. The returned ids are the ones whose status actually
// changed; ids already carrying the status are silently skipped and
// need no mutation request.
func (t *Triage) ApplyStatus(ids []int, status filter.Status) []int {
	status = status.Normalize()
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	changed := make([]int, 0, len(ids))
	for i := range t.applicants {
		if _, ok := want[t.applicants[i].ID]; !ok {
			continue
		}
		if t.applicants[i].Status.Normalize() != status {
			changed = append(changed, t.applicants[i].ID)
		}
		t.applicants[i].Status = status
	}

	t.deck.Remove(ids...)
	return changed
}

// Resolve reorders the deck after a swipe.
func (t *Triage) Resolve(id int) { t.deck.Resolve(id) }

// Skip sinks an applicant to the bottom of the stack with no status
// change.
func (t *Triage) Skip(id int) { t.deck.Skip(id) }

// Filtered returns the applicants in the active category, in deck
// (stacking) order. The last element is the visible card.
func (t *Triage) Filtered() []api.Applicant {
	byID := make(map[int]api.Applicant, len(t.applicants))
	for _, a := range t.applicants {
		byID[a.ID] = a
	}

	out := make([]api.Applicant, 0, t.deck.Len())
	want := t.category.Normalize()
	for _, id := range t.deck.IDs() {
		a, ok := byID[id]
		if ok && a.Status.Normalize() == want {
			out = append(out, a)
		}
	}
	return out
}

// Counts tallies applicants per category from the authoritative
// collection, independent of deck order.
func (t *Triage) Counts() map[filter.Status]int {
	return filter.Counts(t.applicants)
}

// Applicant looks up an applicant by id in the authoritative collection.
func (t *Triage) Applicant(id int) (api.Applicant, bool) {
	for _, a := range t.applicants {
		if a.ID == id {
			return a, true
		}
	}
	return api.Applicant{}, false
}

// Top returns the visible card of the filtered stack.
func (t *Triage) Top() (api.Applicant, bool) {
	visible := t.Filtered()
	if len(visible) == 0 {
		return api.Applicant{}, false
	}
	return visible[len(visible)-1], true
}
