// Package deck implements the ordered card queue behind the swipe views.
//
// A Deck holds item ids in stacking order: the last element is the card
// currently on top. Resolving or skipping a card reorders the deck
// according to its policy; it never adds or removes ids.
package deck

// Policy controls where a resolved card lands in the queue.
type Policy int

const (
	// SinkToFront moves the card to index 0, the bottom of the visual
	// stack, so it is the last to resurface. Used by the job browse deck.
	SinkToFront Policy = iota
	// SinkToBack moves the card to the end of the queue. Under the
	// last-element-on-top convention the card stays visible; the triage
	// view relies on a status filter to take it out of sight. Kept for
	// behavior parity with the web client.
	SinkToBack
)

// Deck is an ordered queue of item ids. It is not safe for concurrent
// use; the TUI update loop is single threaded.
type Deck struct {
	policy Policy
	ids    []int
}

// New creates a deck with the given resolve policy. Duplicate ids are
// dropped, keeping the first occurrence.
func New(policy Policy, ids ...int) *Deck {
	d := &Deck{policy: policy}
	d.ids = dedupe(ids)
	return d
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int { return len(d.ids) }

// IDs returns a copy of the queue in stacking order.
func (d *Deck) IDs() []int {
	out := make([]int, len(d.ids))
	copy(out, d.ids)
	return out
}

// Top returns the id of the visible card (last element), if any.
func (d *Deck) Top() (int, bool) {
	if len(d.ids) == 0 {
		return 0, false
	}
	return d.ids[len(d.ids)-1], true
}

// Contains reports whether id is in the deck.
func (d *Deck) Contains(id int) bool {
	return d.index(id) >= 0
}

// Resolve reorders the deck after a swipe on id, per the deck policy.
// Decks shorter than 2 are never reordered. Returns true if the queue
// changed.
func (d *Deck) Resolve(id int) bool {
	switch d.policy {
	case SinkToBack:
		return d.moveToBack(id)
	default:
		return d.moveToFront(id)
	}
}

// Skip sinks id to the front regardless of policy. An explicit skip
// always sends the card to the bottom of the stack.
func (d *Deck) Skip(id int) bool {
	return d.moveToFront(id)
}

// Remove deletes the given ids from the deck, preserving the order of
// the remainder. Returns the number of ids removed.
func (d *Deck) Remove(ids ...int) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := d.ids[:0]
	removed := 0
	for _, id := range d.ids {
		if _, ok := drop[id]; ok {
			removed++
			continue
		}
		kept = append(kept, id)
	}
	d.ids = kept
	return removed
}

// Replace swaps the queue for a fresh authoritative ordering. Used on
// category switches, where discarding the scan position is deliberate.
func (d *Deck) Replace(ids []int) {
	d.ids = dedupe(ids)
}

// PopulateIfEmpty fills an empty deck from a fetch result and leaves a
// populated deck untouched, preserving the user's scan order across
// background refreshes. Returns true if the deck was populated.
func (d *Deck) PopulateIfEmpty(ids []int) bool {
	if len(d.ids) > 0 {
		return false
	}
	d.ids = dedupe(ids)
	return len(d.ids) > 0
}

// Merge inserts authoritative ids missing from the deck at the bottom
// of the stack, in their fetched order, leaving the existing scan order
// untouched. This is how a reconciling refetch restores a card an
// optimistic update removed, and how a background refresh surfaces new
// arrivals. Returns the number of ids added.
func (d *Deck) Merge(ids []int) int {
	missing := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if !d.Contains(id) {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return 0
	}
	d.ids = append(missing, d.ids...)
	return len(missing)
}

// Retain drops every id not present in the authoritative set, keeping
// deck membership a subset of the last fetch. Order is preserved.
func (d *Deck) Retain(authoritative []int) int {
	keep := make(map[int]struct{}, len(authoritative))
	for _, id := range authoritative {
		keep[id] = struct{}{}
	}
	kept := d.ids[:0]
	dropped := 0
	for _, id := range d.ids {
		if _, ok := keep[id]; ok {
			kept = append(kept, id)
		} else {
			dropped++
		}
	}
	d.ids = kept
	return dropped
}

func (d *Deck) moveToFront(id int) bool {
	if len(d.ids) < 2 {
		return false
	}
	idx := d.index(id)
	if idx < 0 || idx == 0 {
		return false
	}
	copy(d.ids[1:idx+1], d.ids[:idx])
	d.ids[0] = id
	return true
}

func (d *Deck) moveToBack(id int) bool {
	if len(d.ids) < 2 {
		return false
	}
	idx := d.index(id)
	last := len(d.ids) - 1
	if idx < 0 || idx == last {
		return false
	}
	copy(d.ids[idx:], d.ids[idx+1:])
	d.ids[last] = id
	return true
}

func (d *Deck) index(id int) int {
	for i, v := range d.ids {
		if v == id {
			return i
		}
	}
	return -1
}

func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
