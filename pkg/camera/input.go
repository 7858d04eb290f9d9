package camera

import "sync"

// Key identifies a movement direction, decoupled from any windowing
// library's key codes. The host maps its own key state onto these.
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
)

// KeyState reports whether a movement key is currently held down. It is
// polled synchronously once per frame, never event-driven.
type KeyState interface {
	Pressed(key Key) bool
}

// MovementIntent is the set of directional keys held this frame. It is
// recomputed fresh every frame from live key state.
type MovementIntent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// InputState turns asynchronous pointer-move callbacks into a single
// pending look delta, read once per frame by Camera.Update.
//
// Pointer moves between frames overwrite the pending delta rather than
// accumulate: the latest sample wins. The mutex keeps that semantic
// intact when the host delivers pointer events from another goroutine;
// with GLFW everything runs on the main thread and the lock is
// uncontended.
type InputState struct {
	mu sync.Mutex

	lastX, lastY float64
	dx, dy       float32
	firstSample  bool
}

// NewInputState returns an InputState awaiting its first pointer sample.
func NewInputState() *InputState {
	return &InputState{firstSample: true}
}

// OnPointerMove records a pointer position in window coordinates. The
// first call only establishes the reference position, so the initial
// cursor placement cannot cause a spurious camera jump. Later calls
// replace the pending delta; the vertical axis is inverted so moving
// the pointer up raises pitch.
func (s *InputState) OnPointerMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.firstSample {
		s.lastX = x
		s.lastY = y
		s.firstSample = false
		return
	}

	s.dx = float32(x - s.lastX)
	s.dy = float32(s.lastY - y)
	s.lastX = x
	s.lastY = y
}

// ConsumeLookDelta returns the pending pointer delta scaled by
// sensitivity and resets it to zero. Called once per frame.
func (s *InputState) ConsumeLookDelta(sensitivity float32) (dYaw, dPitch float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dYaw = s.dx * sensitivity
	dPitch = s.dy * sensitivity
	s.dx = 0
	s.dy = 0
	return dYaw, dPitch
}

// Reset re-arms the first-sample flag. Called when the cursor is
// recaptured so the jump from the free cursor position is swallowed.
func (s *InputState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firstSample = true
	s.dx = 0
	s.dy = 0
}

// MovementIntent polls the four directional keys.
func (s *InputState) MovementIntent(keys KeyState) MovementIntent {
	return MovementIntent{
		Forward:  keys.Pressed(KeyForward),
		Backward: keys.Pressed(KeyBackward),
		Left:     keys.Pressed(KeyLeft),
		Right:    keys.Pressed(KeyRight),
	}
}
