package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_right_swipe_is_primary(t *testing.T) {
	assert.Equal(t, Primary, Classify(150, 100))
}

func TestClassify_left_swipe_is_secondary(t *testing.T) {
	assert.Equal(t, Secondary, Classify(-150, 100))
}

func TestClassify_dead_zone_cancels(t *testing.T) {
	assert.Equal(t, Cancel, Classify(50, 100))
	assert.Equal(t, Cancel, Classify(-50, 100))
	assert.Equal(t, Cancel, Classify(0, 100))
}

func TestClassify_threshold_is_exclusive(t *testing.T) {
	// Displacement equal to the sensitivity is still a cancel.
	assert.Equal(t, Cancel, Classify(100, 100))
	assert.Equal(t, Cancel, Classify(-100, 100))
	assert.Equal(t, Primary, Classify(100.01, 100))
}

func TestClassify_custom_sensitivity(t *testing.T) {
	assert.Equal(t, Primary, Classify(30, 20))
	assert.Equal(t, Cancel, Classify(30, 40))
}

func TestClassify_zero_sensitivity_uses_default(t *testing.T) {
	assert.Equal(t, Cancel, Classify(99, 0))
	assert.Equal(t, Primary, Classify(101, 0))
	assert.Equal(t, Secondary, Classify(-101, -5))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "primary", Primary.String())
	assert.Equal(t, "secondary", Secondary.String())
	assert.Equal(t, "cancel", Cancel.String())
}
