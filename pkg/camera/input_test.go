package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeKeys map[Key]bool

func (f fakeKeys) Pressed(key Key) bool { return f[key] }

func TestFirstSampleProducesNoDelta(t *testing.T) {
	in := NewInputState()
	in.OnPointerMove(400, 300)

	dYaw, dPitch := in.ConsumeLookDelta(1)
	assert.Zero(t, dYaw, "first pointer sample must only set the reference position")
	assert.Zero(t, dPitch)
}

func TestDeltaComputationAndVerticalInversion(t *testing.T) {
	in := NewInputState()
	in.OnPointerMove(400, 300)
	in.OnPointerMove(410, 290) // 10 right, 10 up on screen

	dYaw, dPitch := in.ConsumeLookDelta(0.1)
	assert.InDelta(t, 1.0, dYaw, 1e-6)
	assert.InDelta(t, 1.0, dPitch, 1e-6, "moving the pointer up must increase pitch")
}

func TestLastWriteWins(t *testing.T) {
	in := NewInputState()
	in.OnPointerMove(100, 100)
	in.OnPointerMove(150, 100) // dx = 50
	in.OnPointerMove(155, 100) // dx = 5, replaces the previous delta

	dYaw, _ := in.ConsumeLookDelta(1)
	assert.InDelta(t, 5.0, dYaw, 1e-6, "pointer moves between frames must overwrite, not accumulate")
}

func TestConsumeResetsDelta(t *testing.T) {
	in := NewInputState()
	in.OnPointerMove(0, 0)
	in.OnPointerMove(10, 10)

	in.ConsumeLookDelta(1)
	dYaw, dPitch := in.ConsumeLookDelta(1)
	assert.Zero(t, dYaw)
	assert.Zero(t, dPitch)
}

func TestResetRearmsFirstSample(t *testing.T) {
	in := NewInputState()
	in.OnPointerMove(0, 0)
	in.OnPointerMove(10, 10)
	in.Reset()

	// The far-away position after a reset must not produce a jump.
	in.OnPointerMove(500, 500)
	dYaw, dPitch := in.ConsumeLookDelta(1)
	assert.Zero(t, dYaw)
	assert.Zero(t, dPitch)
}

func TestMovementIntentPolling(t *testing.T) {
	in := NewInputState()

	intent := in.MovementIntent(fakeKeys{KeyForward: true, KeyLeft: true})
	assert.True(t, intent.Forward)
	assert.True(t, intent.Left)
	assert.False(t, intent.Backward)
	assert.False(t, intent.Right)

	// Recomputed fresh from live key state, nothing carried over.
	intent = in.MovementIntent(fakeKeys{})
	assert.Equal(t, MovementIntent{}, intent)
}
