// Package filter partitions status-bearing collections into the triage
// categories and computes the live counts shown on the category tabs.
package filter

import "strings"

// Status is an application review status. Comparisons are
// case-insensitive; the server stores uppercase values.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusShortlisted Status = "SHORTLISTED"
	StatusRejected    Status = "REJECTED"
)

// Categories lists the triage tabs in display order.
var Categories = []Status{StatusPending, StatusShortlisted, StatusRejected}

// Normalize upper-cases a status so lookups match regardless of the
// casing a serializer produced.
func (s Status) Normalize() Status {
	return Status(strings.ToUpper(strings.TrimSpace(string(s))))
}

// Valid reports whether the status is one of the known categories.
func (s Status) Valid() bool {
	switch s.Normalize() {
	case StatusPending, StatusShortlisted, StatusRejected:
		return true
	}
	return false
}

// Item is anything with a stable id and a review status.
type Item interface {
	ItemID() int
	ItemStatus() Status
}

// Match returns the items whose status equals category, preserving the
// input order. Callers pass the ordered queue to keep stacking order.
func Match[T Item](items []T, category Status) []T {
	want := category.Normalize()
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.ItemStatus().Normalize() == want {
			out = append(out, it)
		}
	}
	return out
}

// Counts tallies items per category. It is computed from the
// authoritative collection, not the visual queue, so tab counts stay
// correct while the deck is being reordered.
func Counts[T Item](items []T) map[Status]int {
	counts := make(map[Status]int, len(Categories))
	for _, it := range items {
		counts[it.ItemStatus().Normalize()]++
	}
	return counts
}

// IDs extracts the item ids in input order.
func IDs[T Item](items []T) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ItemID()
	}
	return out
}
