package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row extracts a row of the rotation block from a column-major matrix.
func row(m mgl32.Mat4, r int) mgl32.Vec3 {
	return mgl32.Vec3{m[r], m[4+r], m[8+r]}
}

func TestLookAtBasisOrthonormal(t *testing.T) {
	cases := []struct {
		name            string
		eye, target, up mgl32.Vec3
	}{
		{"origin forward", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{"offset eye", mgl32.Vec3{3, 2, 5}, mgl32.Vec3{-1, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{"tilted up hint", mgl32.Vec3{1, 1, 1}, mgl32.Vec3{4, 2, -3}, mgl32.Vec3{0.2, 0.9, 0.1}},
		{"looking steeply down", mgl32.Vec3{0, 10, 0}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0, 1, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := LookAt(tc.eye, tc.target, tc.up)

			side := row(m, 0)
			up := row(m, 1)
			back := row(m, 2) // -forward

			assert.InDelta(t, 1.0, side.Len(), 1e-5)
			assert.InDelta(t, 1.0, up.Len(), 1e-5)
			assert.InDelta(t, 1.0, back.Len(), 1e-5)

			assert.InDelta(t, 0.0, side.Dot(up), 1e-5)
			assert.InDelta(t, 0.0, side.Dot(back), 1e-5)
			assert.InDelta(t, 0.0, up.Dot(back), 1e-5)
		})
	}
}

func TestLookAtMatchesReference(t *testing.T) {
	eye := mgl32.Vec3{0, 1.6, 5}
	target := mgl32.Vec3{0, 1.6, 4}
	up := mgl32.Vec3{0, 1, 0}

	got := LookAt(eye, target, up)
	want := mgl32.LookAtV(eye, target, up)

	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "entry %d", i)
	}
}

func TestLookAtTranslationAfterRotation(t *testing.T) {
	// A world point at the eye position must map to the camera-space
	// origin: rotation first, then translation by -eye.
	eye := mgl32.Vec3{3, -2, 7}
	m := LookAt(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	p := m.Mul4x1(eye.Vec4(1))
	assert.InDelta(t, 0.0, p.X(), 1e-5)
	assert.InDelta(t, 0.0, p.Y(), 1e-5)
	assert.InDelta(t, 0.0, p.Z(), 1e-5)
	assert.InDelta(t, 1.0, p.W(), 1e-5)
}

func TestPerspectiveSanity(t *testing.T) {
	m, err := Perspective(60, 4.0/3.0, 0.1, 100)
	require.NoError(t, err)

	xScale := m.At(0, 0)
	yScale := m.At(1, 1)
	assert.InDelta(t, yScale/(4.0/3.0), xScale, 1e-5)

	// The w row performs the perspective divide.
	assert.InDelta(t, -1.0, m.At(3, 2), 1e-6)
	assert.Zero(t, m.At(3, 3))

	assert.InDelta(t, -(100.0+0.1)/(100.0-0.1), m.At(2, 2), 1e-5)
	assert.InDelta(t, -(2*100.0*0.1)/(100.0-0.1), m.At(2, 3), 1e-5)
}

func TestPerspectiveMatchesReference(t *testing.T) {
	got, err := Perspective(60, 4.0/3.0, 0.1, 100)
	require.NoError(t, err)

	want := mgl32.Perspective(mgl32.DegToRad(60), 4.0/3.0, 0.1, 100)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "entry %d", i)
	}
}

func TestPerspectiveRejectsDegenerateConfig(t *testing.T) {
	_, err := Perspective(60, 4.0/3.0, 100, 100)
	assert.Error(t, err, "far == near must be rejected")

	_, err = Perspective(60, 4.0/3.0, 100, 0.1)
	assert.Error(t, err, "far < near must be rejected")

	_, err = Perspective(60, 0, 0.1, 100)
	assert.Error(t, err, "zero aspect must be rejected")

	_, err = Perspective(0, 4.0/3.0, 0.1, 100)
	assert.Error(t, err)

	_, err = Perspective(180, 4.0/3.0, 0.1, 100)
	assert.Error(t, err)
}
