// Package engine drives the interactive session: it polls input, keeps
// per-frame timing, applies input to the camera and invokes the scene
// hooks on a fixed cadence. It never touches the windowing system
// directly; events come from an injected InputSource and finished frames
// go to an injected PresentationSink, so the loop can be driven by a
// scripted source in tests.
package engine

import (
	"github.com/OpenGL-GPU-Gems-Implementations/GG1-C1-Effective-Water-Simulation/pkg/render"
)

// Key identifies the keyboard keys the loop reacts to. Window backends map
// their native key codes onto these; anything else should be reported as
// KeyUnknown and is ignored.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftShift
	KeyEscape
)

// movementKeys maps keys onto camera movement directions. Keys without an
// entry do not affect the held set.
var movementKeys = map[Key]render.Direction{
	KeyW:         render.Forward,
	KeyS:         render.Backward,
	KeyA:         render.Left,
	KeyD:         render.Right,
	KeySpace:     render.Up,
	KeyLeftShift: render.Down,
}

// EventKind discriminates input events.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	MouseMove
	Scroll
	Quit
)

// Event is a single input event drained from the input source.
// For MouseMove, X and Y carry the motion delta since the previous motion
// event; for Scroll, Y carries the wheel offset. Key is set for KeyDown
// and KeyUp only.
type Event struct {
	Kind EventKind
	Key  Key
	X, Y float64
}

// InputSource supplies the input events that arrived since the previous
// call. Draining never fails; malformed or unrecognized input must be
// dropped by the implementation, not reported.
type InputSource interface {
	PollEvents() []Event
}

// PresentationSink receives the finished frame and the per-frame status
// line (window title text).
type PresentationSink interface {
	Present()
	SetStatusText(text string)
}
