package queue

import (
	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/core/deck"
)

// Browse is the jobseeker-side job queue. Jobs carry no triage status,
// only applied / not applied; applying hides the card via the applied
// filter rather than by removing it from the deck.
type Browse struct {
	jobs    []api.Job
	applied map[int]struct{}
	deck    *deck.Deck
	gen     Generation
}

// NewBrowse creates an empty browse queue. Resolved and skipped jobs
// sink to the bottom of the stack.
func NewBrowse() *Browse {
	return &Browse{
		applied: make(map[int]struct{}),
		deck:    deck.New(deck.SinkToFront),
	}
}

// BeginFetch invalidates outstanding fetches and returns the token the
// next response must present.
func (b *Browse) BeginFetch() Generation {
	b.gen++
	return b.gen
}

// ApplyJobs installs an authoritative job fetch. Stale generations are
// discarded. Background refreshes never disturb an existing scan order:
// vanished jobs are shed and new postings join at the bottom of the
// stack.
func (b *Browse) ApplyJobs(gen Generation, jobs []api.Job) bool {
	if gen != b.gen {
		return false
	}
	b.jobs = jobs

	ids := make([]int, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	b.deck.PopulateIfEmpty(ids)
	b.deck.Retain(ids)
	b.deck.Merge(ids)
	return true
}

// SetApplied replaces the applied-job set from an authoritative fetch.
func (b *Browse) SetApplied(jobIDs []int) {
	b.applied = make(map[int]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		b.applied[id] = struct{}{}
	}
}

// MarkApplied optimistically records an application before the request
// settles, taking the card out of the visible stack at once.
func (b *Browse) MarkApplied(jobID int) {
	b.applied[jobID] = struct{}{}
}

// Applied reports whether the job has been applied to.
func (b *Browse) Applied(jobID int) bool {
	_, ok := b.applied[jobID]
	return ok
}

// Resolve sinks a swiped job to the bottom of the stack.
func (b *Browse) Resolve(id int) { b.deck.Resolve(id) }

// Skip sinks a skipped job to the bottom of the stack.
func (b *Browse) Skip(id int) { b.deck.Skip(id) }

// Unapplied returns the jobs not yet applied to, in deck order. The
// last element is the visible card.
func (b *Browse) Unapplied() []api.Job {
	byID := make(map[int]api.Job, len(b.jobs))
	for _, j := range b.jobs {
		byID[j.ID] = j
	}

	out := make([]api.Job, 0, b.deck.Len())
	for _, id := range b.deck.IDs() {
		if _, applied := b.applied[id]; applied {
			continue
		}
		if j, ok := byID[id]; ok {
			out = append(out, j)
		}
	}
	return out
}

// Job looks up a job by id in the authoritative collection.
func (b *Browse) Job(id int) (api.Job, bool) {
	for _, j := range b.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return api.Job{}, false
}

// Top returns the visible card of the unapplied stack.
func (b *Browse) Top() (api.Job, bool) {
	visible := b.Unapplied()
	if len(visible) == 0 {
		return api.Job{}, false
	}
	return visible[len(visible)-1], true
}
