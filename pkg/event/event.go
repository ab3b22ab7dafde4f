// Package event defines the runtime event union and dispatch status.
package event

import (
	"time"

	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/keyboard"
	"github.com/glacier-ui/glacier/pkg/mouse"
)

// Event is a runtime input event. The concrete types below are the only
// implementations.
type Event interface {
	isEvent()
}

// MousePressed reports a button press at the current cursor position.
type MousePressed struct {
	Button mouse.Button
}

// MouseReleased reports a button release at the current cursor position.
type MouseReleased struct {
	Button mouse.Button
}

// MouseMoved reports a change of cursor position.
type MouseMoved struct {
	Position geometry.Point
}

// MouseWheel reports a scroll.
type MouseWheel struct {
	Delta mouse.ScrollDelta
}

// MouseEntered reports the cursor entering the window.
type MouseEntered struct{}

// MouseLeft reports the cursor leaving the window.
type MouseLeft struct{}

// KeyPressed reports a key press.
type KeyPressed struct {
	Key       keyboard.Key
	Modifiers keyboard.Modifiers
}

// KeyReleased reports a key release.
type KeyReleased struct {
	Key       keyboard.Key
	Modifiers keyboard.Modifiers
}

// WindowResized reports a change of the logical window size.
type WindowResized struct {
	Size geometry.Size
}

// RedrawRequested reports the start of a frame redraw at the given instant.
// Widgets use it to advance animations.
type RedrawRequested struct {
	At time.Time
}

func (MousePressed) isEvent()    {}
func (MouseReleased) isEvent()   {}
func (MouseMoved) isEvent()      {}
func (MouseWheel) isEvent()      {}
func (MouseEntered) isEvent()    {}
func (MouseLeft) isEvent()       {}
func (KeyPressed) isEvent()      {}
func (KeyReleased) isEvent()     {}
func (WindowResized) isEvent()   {}
func (RedrawRequested) isEvent() {}

// Status is the outcome of dispatching one event through the widget tree.
type Status int

const (
	// StatusIgnored means no widget acted on the event.
	StatusIgnored Status = iota
	// StatusCaptured means a widget consumed the event.
	StatusCaptured
)

// String returns the status name for debugging.
func (s Status) String() string {
	if s == StatusCaptured {
		return "captured"
	}
	return "ignored"
}

// Merge combines two statuses, preferring captured.
func (s Status) Merge(other Status) Status {
	if s == StatusCaptured || other == StatusCaptured {
		return StatusCaptured
	}
	return StatusIgnored
}
