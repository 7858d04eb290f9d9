package camera

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LookAt builds a view matrix from an eye position, a target point and
// a world-up hint. The up vector is re-derived as side x forward so the
// basis stays orthonormal even when the hint is not quite perpendicular
// to the view direction.
//
// Precondition: eye != target. Coincident points make the forward
// direction undefined and the result is garbage.
func LookAt(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	// Rotation into camera space, then translation by -eye. mgl32
	// matrices are column-major; the last column folds the translation
	// through the rotation.
	return mgl32.Mat4{
		s.X(), u.X(), -f.X(), 0,
		s.Y(), u.Y(), -f.Y(), 0,
		s.Z(), u.Z(), -f.Z(), 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Perspective builds a right-handed perspective projection matrix.
// fov is the vertical field of view in degrees. The parameters are
// validated here because a degenerate projection is a configuration
// error that should abort startup, not silently skew the scene.
func Perspective(fov, aspect, near, far float32) (mgl32.Mat4, error) {
	if fov <= 0 || fov >= 180 {
		return mgl32.Mat4{}, fmt.Errorf("camera: fov must be in (0, 180), got %v", fov)
	}
	if aspect <= 0 {
		return mgl32.Mat4{}, fmt.Errorf("camera: aspect must be positive, got %v", aspect)
	}
	if far <= near {
		return mgl32.Mat4{}, fmt.Errorf("camera: far (%v) must be greater than near (%v)", far, near)
	}

	yScale := 1 / math32.Tan(mgl32.DegToRad(fov)/2)
	xScale := yScale / aspect

	return mgl32.Mat4{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, -(far + near) / (far - near), -1,
		0, 0, -(2 * far * near) / (far - near), 0,
	}, nil
}
