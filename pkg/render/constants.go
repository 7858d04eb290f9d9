package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kkconaty23/Simple-3D-game/pkg/camera"
)

// Key constants for keyboard input
const (
	KeyW          = glfw.KeyW
	KeyA          = glfw.KeyA
	KeyS          = glfw.KeyS
	KeyD          = glfw.KeyD
	KeyC          = glfw.KeyC
	KeyEscape     = glfw.KeyEscape
	KeyScreenshot = glfw.KeyF2
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
)

// movementBindings maps the camera's abstract movement keys onto GLFW
// key codes.
var movementBindings = map[camera.Key]glfw.Key{
	camera.KeyForward:  KeyW,
	camera.KeyBackward: KeyS,
	camera.KeyLeft:     KeyA,
	camera.KeyRight:    KeyD,
}
