// Package mouse describes pointer input: buttons, scroll deltas, the cursor
// abstraction handed to widgets during dispatch, and click-chain tracking
// for double and triple clicks.
package mouse

import "github.com/glacier-ui/glacier/pkg/geometry"

// Button identifies a mouse button.
type Button int

const (
	// ButtonLeft is the primary mouse button.
	ButtonLeft Button = iota
	// ButtonRight is the secondary mouse button.
	ButtonRight
	// ButtonMiddle is the wheel button.
	ButtonMiddle
)

// String returns the button name for debugging.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// ScrollDelta is the displacement produced by a wheel or trackpad scroll.
type ScrollDelta struct {
	X float64
	Y float64
}

// Interaction is the cursor shape a widget requests while hovered.
type Interaction int

const (
	// InteractionNone requests the default cursor.
	InteractionNone Interaction = iota
	// InteractionIdle is an explicit idle arrow.
	InteractionIdle
	// InteractionPointer is the clickable-element hand.
	InteractionPointer
	// InteractionGrab indicates content that can be dragged.
	InteractionGrab
	// InteractionGrabbing indicates content being dragged.
	InteractionGrabbing
	// InteractionText is the text-selection beam.
	InteractionText
	// InteractionResizingHorizontally is the horizontal resize cursor.
	InteractionResizingHorizontally
	// InteractionResizingVertically is the vertical resize cursor.
	InteractionResizingVertically
	// InteractionNotAllowed indicates a forbidden drop target.
	InteractionNotAllowed
)

// String returns the interaction name for debugging.
func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "none"
	case InteractionIdle:
		return "idle"
	case InteractionPointer:
		return "pointer"
	case InteractionGrab:
		return "grab"
	case InteractionGrabbing:
		return "grabbing"
	case InteractionText:
		return "text"
	case InteractionResizingHorizontally:
		return "resizing-horizontally"
	case InteractionResizingVertically:
		return "resizing-vertically"
	case InteractionNotAllowed:
		return "not-allowed"
	default:
		return "unknown"
	}
}

// Merge returns the higher-priority of two interactions.
func (i Interaction) Merge(other Interaction) Interaction {
	if other > i {
		return other
	}
	return i
}

type cursorKind int

const (
	cursorUnavailable cursorKind = iota
	cursorAvailable
	cursorLevitated
)

// Cursor is the pointer position as seen by a widget. A cursor can be
// unavailable (outside the window, or claimed by content stacked above the
// widget) or levitated (hovering a higher layer that already consumed it;
// the position is retained only so Land can restore it).
type Cursor struct {
	kind     cursorKind
	position geometry.Point
}

// Unavailable returns a cursor with no usable position.
func Unavailable() Cursor {
	return Cursor{kind: cursorUnavailable}
}

// Available returns a cursor at the given position.
func Available(position geometry.Point) Cursor {
	return Cursor{kind: cursorAvailable, position: position}
}

// Position returns the cursor position when one is available. A levitated
// cursor withholds it, so hover checks below the claiming layer fail.
func (c Cursor) Position() (geometry.Point, bool) {
	if c.kind != cursorAvailable {
		return geometry.Point{}, false
	}
	return c.position, true
}

// PositionOver returns the cursor position when it lies inside bounds.
func (c Cursor) PositionOver(bounds geometry.Rectangle) (geometry.Point, bool) {
	p, ok := c.Position()
	if !ok || !bounds.Contains(p) {
		return geometry.Point{}, false
	}
	return p, true
}

// PositionIn returns the cursor position relative to the origin of bounds
// when it lies inside them.
func (c Cursor) PositionIn(bounds geometry.Rectangle) (geometry.Point, bool) {
	p, ok := c.PositionOver(bounds)
	if !ok {
		return geometry.Point{}, false
	}
	return geometry.Point{X: p.X - bounds.X, Y: p.Y - bounds.Y}, true
}

// IsOver reports whether the cursor is inside bounds.
func (c Cursor) IsOver(bounds geometry.Rectangle) bool {
	_, ok := c.PositionOver(bounds)
	return ok
}

// IsLevitating reports whether a higher layer already consumed the position.
func (c Cursor) IsLevitating() bool {
	return c.kind == cursorLevitated
}

// Levitate marks the cursor as consumed by a higher layer.
func (c Cursor) Levitate() Cursor {
	if c.kind == cursorAvailable {
		c.kind = cursorLevitated
	}
	return c
}

// Land returns the cursor to plain availability.
func (c Cursor) Land() Cursor {
	if c.kind == cursorLevitated {
		c.kind = cursorAvailable
	}
	return c
}

// Transform maps the cursor position through the given transformation.
func (c Cursor) Transform(t geometry.Transformation) Cursor {
	if c.kind == cursorUnavailable {
		return c
	}
	c.position = t.ApplyPoint(c.position)
	return c
}
