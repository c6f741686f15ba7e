package engine

import (
	"fmt"
	"time"

	"github.com/OpenGL-GPU-Gems-Implementations/GG1-C1-Effective-Water-Simulation/pkg/render"
)

const (
	// fpsWindow is the number of frames averaged per displayed-FPS sample.
	fpsWindow = 30

	// fpsSeed keeps the accumulator strictly positive so the recompute at
	// the start of a window never divides by zero. The very first sample
	// is therefore not meaningful, only the steady-state ones are.
	fpsSeed = 0.001
)

// FrameTiming is the per-frame readout produced by advanceFrame.
type FrameTiming struct {
	Delta float32 // seconds since the previous frame
	Frame uint64  // 1-based frame index, never reset
	FPS   int     // displayed FPS, recomputed once per window
}

// Loop owns the session from startup to shutdown. Each iteration it drains
// input into a per-frame snapshot, advances timing, applies movement and
// look input to the camera, runs the scene-update hook on alternate frames
// and the render hook on every frame. Everything runs on the caller's
// thread; there is no concurrent access to any of its state.
type Loop struct {
	title  string
	input  InputSource
	sink   PresentationSink
	camera *render.Camera

	now func() time.Time

	running  bool
	frame    uint64
	lastTime time.Time
	fpsSum   float64
	curFPS   int

	// Per-frame input snapshot. held is level-triggered and survives
	// across frames; the deltas are zeroed at the start of every poll.
	held     render.DirectionSet
	mouseDX  float64
	mouseDY  float64
	scrollDY float64
}

// NewLoop creates a loop for the given collaborators. title is the prefix
// of the status line pushed to the sink every frame.
func NewLoop(title string, input InputSource, sink PresentationSink, camera *render.Camera) *Loop {
	return &Loop{
		title:  title,
		input:  input,
		sink:   sink,
		camera: camera,
		now:    time.Now,
		fpsSum: fpsSeed,
	}
}

// pollEvents drains the input source and folds the events into the
// per-frame snapshot. The mouse and scroll deltas never carry over
// between frames: they are reset here and accumulated only from motion
// seen during this poll. Escape and quit are the only events that stop
// the loop.
func (l *Loop) pollEvents() {
	l.mouseDX, l.mouseDY = 0, 0
	l.scrollDY = 0

	for _, ev := range l.input.PollEvents() {
		switch ev.Kind {
		case Quit:
			l.running = false
		case KeyDown:
			if ev.Key == KeyEscape {
				l.running = false
				continue
			}
			if dir, ok := movementKeys[ev.Key]; ok {
				l.held.Set(dir)
			}
		case KeyUp:
			if dir, ok := movementKeys[ev.Key]; ok {
				l.held.Clear(dir)
			}
		case MouseMove:
			l.mouseDX += ev.X
			l.mouseDY += ev.Y
		case Scroll:
			l.scrollDY += ev.Y
		}
	}
}

// advanceFrame increments the frame index, computes the wall-clock delta
// since the previous frame and maintains the FPS window: on the first
// frame of each 30-frame window the displayed FPS is recomputed from the
// accumulated time and the accumulator is re-seeded.
func (l *Loop) advanceFrame() FrameTiming {
	l.frame++

	now := l.now()
	dt := float32(now.Sub(l.lastTime).Seconds())
	if dt < 0 {
		dt = 0
	}
	l.lastTime = now

	l.fpsSum += float64(dt)
	if l.frame%fpsWindow == 1 {
		l.curFPS = int(fpsWindow / l.fpsSum)
		l.fpsSum = fpsSeed
	}

	return FrameTiming{Delta: dt, Frame: l.frame, FPS: l.curFPS}
}

// movementMask snapshots the currently held movement directions. It is a
// pure function of the held-key state, recomputed every frame.
func (l *Loop) movementMask() render.DirectionSet {
	return l.held
}

// shouldSimulate reports whether the scene-update step runs this frame.
// Simulation runs at half the render rate; rendering runs every frame.
func shouldSimulate(frame uint64) bool {
	return frame%2 == 1
}

// Run drives the loop until a quit event or an escape keypress flips the
// running flag; the current iteration always completes before the flag is
// checked. onSimulate receives the frame delta on simulate-eligible
// frames; onRender runs every frame, after which the frame is presented.
func (l *Loop) Run(onSimulate func(dt float32), onRender func()) {
	l.running = true
	l.lastTime = l.now()

	for l.running {
		l.pollEvents()
		t := l.advanceFrame()

		l.sink.SetStatusText(fmt.Sprintf("%s - FPS: %d - Frame: %d", l.title, t.FPS, t.Frame))

		l.camera.UpdateKeyboard(l.movementMask(), t.Delta)
		// Screen-space y grows downward, so flip it before handing the
		// offset to the camera.
		l.camera.UpdateMouse(float32(l.mouseDX), float32(-l.mouseDY), true)
		if l.scrollDY != 0 {
			l.camera.UpdateScroll(float32(l.scrollDY))
		}

		if shouldSimulate(t.Frame) && onSimulate != nil {
			onSimulate(t.Delta)
		}
		if onRender != nil {
			onRender()
		}
		l.sink.Present()
	}
}
