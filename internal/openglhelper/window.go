// Package openglhelper wraps the GLFW window and the low-level OpenGL
// objects (shaders, buffers) in a more Go-friendly API.
package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OpenGL-GPU-Gems-Implementations/GG1-C1-Effective-Water-Simulation/pkg/engine"
)

// keymap translates GLFW key codes into the loop's key set. Keys without
// an entry never produce events.
var keymap = map[glfw.Key]engine.Key{
	glfw.KeyW:         engine.KeyW,
	glfw.KeyA:         engine.KeyA,
	glfw.KeyS:         engine.KeyS,
	glfw.KeyD:         engine.KeyD,
	glfw.KeySpace:     engine.KeySpace,
	glfw.KeyLeftShift: engine.KeyLeftShift,
	glfw.KeyEscape:    engine.KeyEscape,
}

// Window handles GLFW window creation and management. It implements
// engine.InputSource (event queue filled by the GLFW callbacks) and
// engine.PresentationSink (buffer swap and title text).
type Window struct {
	glfwWindow    *glfw.Window
	width         int
	height        int
	title         string
	mouseCaptured bool

	// Event queue drained by PollEvents
	events []engine.Event

	// Cursor tracking for relative mouse deltas
	lastX      float64
	lastY      float64
	firstMouse bool

	onResize func(width, height int)
}

// NewWindow creates a new GLFW window with an OpenGL 4.6 core context.
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	// Configure global OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	w := &Window{
		glfwWindow: glfwWindow,
		width:      width,
		height:     height,
		title:      title,
		firstMouse: true,
	}

	glfwWindow.SetKeyCallback(w.keyCallback)
	glfwWindow.SetCursorPosCallback(w.cursorPosCallback)
	glfwWindow.SetScrollCallback(w.scrollCallback)
	glfwWindow.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	// Relative mouse mode for free-look
	w.SetMouseCaptured(true)

	return w, nil
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	// Toggle mouse capture with C so the cursor can leave the window
	if key == glfw.KeyC && action == glfw.Press {
		w.ToggleMouseCaptured()
		return
	}

	k, ok := keymap[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		w.events = append(w.events, engine.Event{Kind: engine.KeyDown, Key: k})
	case glfw.Release:
		w.events = append(w.events, engine.Event{Kind: engine.KeyUp, Key: k})
	}
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if !w.mouseCaptured {
		w.firstMouse = true
		return
	}
	if w.firstMouse {
		// No previous position to diff against yet
		w.lastX, w.lastY = xpos, ypos
		w.firstMouse = false
		return
	}

	w.events = append(w.events, engine.Event{
		Kind: engine.MouseMove,
		X:    xpos - w.lastX,
		Y:    ypos - w.lastY,
	})
	w.lastX, w.lastY = xpos, ypos
}

func (w *Window) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	w.events = append(w.events, engine.Event{Kind: engine.Scroll, X: xoff, Y: yoff})
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// PollEvents pumps the platform event queue and returns everything that
// arrived since the previous call. The returned slice is only valid until
// the next call.
func (w *Window) PollEvents() []engine.Event {
	w.events = w.events[:0]
	glfw.PollEvents()
	if w.glfwWindow.ShouldClose() {
		w.events = append(w.events, engine.Event{Kind: engine.Quit})
	}
	return w.events
}

// Present swaps the front and back buffers, blocking on vsync if enabled.
func (w *Window) Present() {
	w.glfwWindow.SwapBuffers()
}

// SetStatusText updates the window title.
func (w *Window) SetStatusText(text string) {
	w.title = text
	w.glfwWindow.SetTitle(text)
}

// SetResizeHandler registers a callback invoked after the framebuffer size
// changes, with the viewport already updated.
func (w *Window) SetResizeHandler(fn func(width, height int)) {
	w.onResize = fn
}

// Clear clears the color and depth buffers.
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Size returns the current framebuffer dimensions.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// SetMouseCaptured captures or releases the mouse cursor.
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured
	w.firstMouse = true

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// ToggleMouseCaptured toggles the mouse capture state.
func (w *Window) ToggleMouseCaptured() {
	w.SetMouseCaptured(!w.mouseCaptured)
}

// IsMouseCaptured returns whether the mouse is currently captured.
func (w *Window) IsMouseCaptured() bool {
	return w.mouseCaptured
}

// Close releases all windowing resources.
func (w *Window) Close() {
	glfw.Terminate()
}
