package core

import "github.com/glacier-ui/glacier/pkg/geometry"

// Focusable is the focus handle a widget exposes to operations.
type Focusable interface {
	// IsFocused reports whether the widget currently has focus.
	IsFocused() bool
	// Focus gives the widget focus.
	Focus()
	// Unfocus removes focus from the widget.
	Unfocus()
}

// Operation is a traversal over the widget tree that can query and mutate
// widget state out of band, without an event dispatch. Widgets with the
// Operator capability report themselves to the operation and recurse.
type Operation interface {
	// Container announces a widget that holds other widgets; operate must
	// be called to descend into it.
	Container(id string, bounds geometry.Rectangle, operate func(Operation))
	// Focusable announces a widget that can hold keyboard focus.
	Focusable(id string, bounds geometry.Rectangle, state Focusable)
	// Custom announces widget-specific state for bespoke operations.
	Custom(id string, bounds geometry.Rectangle, state any)
}

