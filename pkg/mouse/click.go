package mouse

import (
	"time"

	"github.com/glacier-ui/glacier/pkg/geometry"
)

// chainInterval is the longest pause between presses that still extends a
// click chain.
const chainInterval = 300 * time.Millisecond

// chainRadius is how far the cursor may travel between presses without
// breaking the chain.
const chainRadius = 6.0

// ClickKind is the position of a press within a click chain.
type ClickKind int

const (
	// ClickSingle is a lone press.
	ClickSingle ClickKind = iota
	// ClickDouble is the second press of a chain.
	ClickDouble
	// ClickTriple is the third press of a chain.
	ClickTriple
)

// String returns the click kind name for debugging.
func (k ClickKind) String() string {
	switch k {
	case ClickSingle:
		return "single"
	case ClickDouble:
		return "double"
	case ClickTriple:
		return "triple"
	default:
		return "unknown"
	}
}

// next returns the kind a follow-up press is promoted to.
func (k ClickKind) next() ClickKind {
	switch k {
	case ClickSingle:
		return ClickDouble
	case ClickDouble:
		return ClickTriple
	default:
		return ClickSingle
	}
}

// Click records one press of a click chain.
type Click struct {
	kind     ClickKind
	button   Button
	position geometry.Point
	at       time.Time
}

// NewClick classifies a press against the previous click, if any. The caller
// supplies the press time so click chains stay testable with a fake clock.
func NewClick(position geometry.Point, button Button, previous *Click, at time.Time) Click {
	kind := ClickSingle
	if previous != nil && previous.isChainedWith(position, button, at) {
		kind = previous.kind.next()
	}
	return Click{kind: kind, button: button, position: position, at: at}
}

// Kind returns where this press sits in its click chain.
func (c Click) Kind() ClickKind {
	return c.kind
}

// Position returns where the press happened.
func (c Click) Position() geometry.Point {
	return c.position
}

// Button returns the pressed button.
func (c Click) Button() Button {
	return c.button
}

func (c Click) isChainedWith(position geometry.Point, button Button, at time.Time) bool {
	return c.button == button &&
		c.position.Distance(position) < chainRadius &&
		at.Sub(c.at) <= chainInterval
}
