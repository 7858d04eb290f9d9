// Package render owns the frame loop: it creates the window, wires the
// input callbacks into the camera, and draws the scene (background
// overlay plus cube) once per frame with the camera's matrices.
package render

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kkconaty23/Simple-3D-game/internal/config"
	"github.com/kkconaty23/Simple-3D-game/internal/openglhelper"
	"github.com/kkconaty23/Simple-3D-game/pkg/camera"
)

var (
	//go:embed shaders/cube.vert
	cubeVertexSource string
	//go:embed shaders/cube.frag
	cubeFragmentSource string
	//go:embed shaders/overlay.vert
	overlayVertexSource string
	//go:embed shaders/overlay.frag
	overlayFragmentSource string
)

// Renderer handles rendering logic and the game loop
type Renderer struct {
	window *openglhelper.Window
	camera *camera.Camera
	input  *camera.InputState

	cubeShader    *openglhelper.Shader
	overlayShader *openglhelper.Shader

	cube    *mesh
	overlay *mesh

	// Timing
	lastFrameTime float64
	deltaTime     float32
}

// windowKeys adapts per-frame GLFW key polling to the camera's
// abstract movement keys.
type windowKeys struct {
	window *openglhelper.Window
}

func (k windowKeys) Pressed(key camera.Key) bool {
	return k.window.GetKeyState(movementBindings[key]) == Press
}

// NewRenderer creates the window, camera, shaders and scene geometry.
func NewRenderer(cfg config.Config) (*Renderer, error) {
	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	cam, err := camera.New(camera.Options{
		Position:    mgl32.Vec3{0, 1.6, 5},
		Yaw:         camera.DefaultYaw,
		Pitch:       camera.DefaultPitch,
		Sensitivity: cfg.Camera.Sensitivity,
		MoveSpeed:   cfg.Camera.MoveSpeed,
		TimeScaled:  cfg.Camera.TimeScaled,
		FOV:         cfg.Camera.FOV,
		Aspect:      cfg.Aspect(),
		Near:        cfg.Camera.Near,
		Far:         cfg.Camera.Far,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}

	renderer := &Renderer{
		window: window,
		camera: cam,
		input:  camera.NewInputState(),
	}

	// Set up callbacks
	window.GLFWWindow().SetCursorPosCallback(renderer.cursorPosCallback)
	window.GLFWWindow().SetKeyCallback(renderer.keyCallback)

	// Capture the cursor for relative-motion look control
	window.SetMouseCaptured(true)

	// Compile shaders
	cubeShader, err := openglhelper.NewShader(cubeVertexSource, cubeFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create cube shader: %w", err)
	}
	renderer.cubeShader = cubeShader

	overlayShader, err := openglhelper.NewShader(overlayVertexSource, overlayFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay shader: %w", err)
	}
	renderer.overlayShader = overlayShader

	// Scene geometry
	renderer.cube = newCubeMesh()
	renderer.overlay = newOverlayMesh()

	// The projection never changes after init, so submit it once
	renderer.cubeShader.Use()
	renderer.cubeShader.SetMat4("projection", cam.ProjectionMatrix())
	renderer.cubeShader.SetMat4("model", mgl32.Translate3D(0, 1, 0))

	return renderer, nil
}

// Run starts the main rendering loop. Each frame: poll events, update
// the camera from the accumulated input, draw, present.
func (r *Renderer) Run() {
	r.lastFrameTime = glfw.GetTime()

	for !r.window.ShouldClose() {
		currentTime := glfw.GetTime()
		r.deltaTime = float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		r.processInput()
		r.camera.Update(r.input, windowKeys{r.window}, r.deltaTime)

		r.render()

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
}

// processInput handles the per-frame key polling that is not camera
// movement.
func (r *Renderer) processInput() {
	if r.window.GetKeyState(KeyEscape) == Press {
		r.window.SetShouldClose(true)
	}
}

// render draws one frame: background overlay first with depth writes
// off, then the cube with the camera's view matrix.
func (r *Renderer) render() {
	r.window.Clear(mgl32.Vec4{0, 0, 0, 1})

	// Background overlay in NDC, no matrices involved
	gl.Disable(gl.DEPTH_TEST)
	r.overlayShader.Use()
	r.overlay.Draw()
	gl.Enable(gl.DEPTH_TEST)

	// Cube in camera space
	r.cubeShader.Use()
	r.cubeShader.SetMat4("view", r.camera.ViewMatrix())
	r.cube.Draw()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.cube != nil {
		r.cube.Delete()
	}
	if r.overlay != nil {
		r.overlay.Delete()
	}
	if r.cubeShader != nil {
		r.cubeShader.Delete()
	}
	if r.overlayShader != nil {
		r.overlayShader.Delete()
	}
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// Toggle mouse capture with C key
	if key == KeyC && action == Press {
		r.window.ToggleMouseCaptured()
		r.input.Reset()
	}

	if key == KeyScreenshot && action == Press {
		if err := r.saveScreenshot(); err != nil {
			log.Printf("screenshot failed: %v", err)
		}
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if r.window.IsMouseCaptured() {
		r.input.OnPointerMove(xpos, ypos)
	}
}
