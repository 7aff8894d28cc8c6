// Package gesture classifies drag-release displacement into discrete
// swipe outcomes. The classifier is pure; callers own dispatch and
// any reordering that follows.
package gesture

// DefaultSensitivity is the horizontal displacement, in distance units,
// a release must exceed before it counts as a swipe.
const DefaultSensitivity = 100

// Outcome is the discrete result of a completed drag.
type Outcome int

const (
	// Cancel means the drag ended inside the dead zone. The card springs
	// back and nothing is dispatched.
	Cancel Outcome = iota
	// Primary is a rightward swipe past the threshold (apply/shortlist).
	Primary
	// Secondary is a leftward swipe past the threshold (skip/reject).
	Secondary
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "cancel"
	}
}

// Classify maps a release-time horizontal displacement to an outcome.
// A non-positive sensitivity falls back to DefaultSensitivity.
func Classify(dx, sensitivity float64) Outcome {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	switch {
	case dx > sensitivity:
		return Primary
	case dx < -sensitivity:
		return Secondary
	default:
		return Cancel
	}
}
