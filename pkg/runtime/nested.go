// Package runtime drives a widget tree through its frame cycle: building it
// against cached state, dispatching events through overlays down to the base
// layout, and drawing the result.
package runtime

import (
	"github.com/glacier-ui/glacier/pkg/clipboard"
	"github.com/glacier-ui/glacier/pkg/core"
	"github.com/glacier-ui/glacier/pkg/event"
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/layout"
	"github.com/glacier-ui/glacier/pkg/mouse"
	"github.com/glacier-ui/glacier/pkg/renderer"
	"github.com/glacier-ui/glacier/pkg/theme"
)

// Nested walks an overlay chain: an overlay may spawn its own overlay, and so
// on. Events go to the deepest level first; drawing goes base level first,
// each deeper level on a fresh layer. While a deeper level is hovered, the
// levels above it in the chain see an unavailable cursor.
type Nested[M any] struct {
	root *core.OverlayElement[M]
}

// NewNested wraps the first overlay of a chain.
func NewNested[M any](root *core.OverlayElement[M]) *Nested[M] {
	return &Nested[M]{root: root}
}

// Layout lays the whole chain out within the window bounds. Every level gets
// a window-sized node holding its own node and, when a deeper level exists,
// that level's node.
func (n *Nested[M]) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	return n.layout(n.root, r, bounds)
}

func (n *Nested[M]) layout(element *core.OverlayElement[M], r renderer.Renderer, bounds geometry.Size) layout.Node {
	node := element.Layout(r, bounds)

	if child := element.Child(layout.NewLayout(&node), r); child != nil {
		return layout.NodeWithChildren(bounds, []layout.Node{node, n.layout(child, r, bounds)})
	}
	return layout.NodeWithChildren(bounds, []layout.Node{node})
}

// Update dispatches one event through the chain, deepest level first.
func (n *Nested[M]) Update(
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
) {
	n.update(n.root, ev, lay, cursor, r, clip, shell)
}

func (n *Nested[M]) update(
	element *core.OverlayElement[M],
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
) bool {
	children := lay.Children()
	own := children[0]

	nestedOver := false
	if len(children) > 1 {
		if child := element.Child(own, r); child != nil {
			nestedOver = n.update(child, ev, children[1], cursor, r, clip, shell)
		}
	}

	levelCursor := cursor
	if nestedOver {
		levelCursor = mouse.Unavailable()
	}

	if !shell.IsEventCaptured() {
		element.Update(ev, own, levelCursor, r, clip, shell)
	}

	if position, ok := cursor.Position(); ok {
		return nestedOver || element.IsOver(own, r, position)
	}
	return nestedOver
}

// Draw paints the chain base level first, each deeper level on its own
// layer. A level under a hovered deeper level draws without hover feedback.
func (n *Nested[M]) Draw(
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
) {
	n.draw(n.root, r, th, style, lay, cursor)
}

func (n *Nested[M]) draw(
	element *core.OverlayElement[M],
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
) {
	children := lay.Children()
	own := children[0]

	var child *core.OverlayElement[M]
	if len(children) > 1 {
		child = element.Child(own, r)
	}

	levelCursor := cursor
	if child != nil {
		if position, ok := cursor.Position(); ok && n.isOver(child, children[1], r, position) {
			levelCursor = mouse.Unavailable()
		}
	}

	element.Draw(r, th, style, own, levelCursor)

	if child != nil {
		r.WithLayer(lay.Bounds(), func(r renderer.Renderer) {
			n.draw(child, r, th, style, children[1], cursor)
		})
	}
}

// MouseInteraction returns the interaction of the deepest hovered level.
func (n *Nested[M]) MouseInteraction(
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
) mouse.Interaction {
	return n.mouseInteraction(n.root, lay, cursor, r)
}

func (n *Nested[M]) mouseInteraction(
	element *core.OverlayElement[M],
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
) mouse.Interaction {
	children := lay.Children()
	own := children[0]

	if len(children) > 1 {
		if child := element.Child(own, r); child != nil {
			if position, ok := cursor.Position(); ok && n.isOver(child, children[1], r, position) {
				return n.mouseInteraction(child, children[1], cursor, r)
			}
		}
	}
	return element.MouseInteraction(own, cursor, r)
}

// Operate applies an operation to every level of the chain.
func (n *Nested[M]) Operate(lay layout.Layout, r renderer.Renderer, op core.Operation) {
	n.operate(n.root, lay, r, op)
}

func (n *Nested[M]) operate(
	element *core.OverlayElement[M],
	lay layout.Layout,
	r renderer.Renderer,
	op core.Operation,
) {
	children := lay.Children()
	own := children[0]

	element.Operate(own, r, op)

	if len(children) > 1 {
		if child := element.Child(own, r); child != nil {
			n.operate(child, children[1], r, op)
		}
	}
}

// IsOver reports whether the position hits any level of the chain.
func (n *Nested[M]) IsOver(lay layout.Layout, r renderer.Renderer, position geometry.Point) bool {
	return n.isOver(n.root, lay, r, position)
}

func (n *Nested[M]) isOver(
	element *core.OverlayElement[M],
	lay layout.Layout,
	r renderer.Renderer,
	position geometry.Point,
) bool {
	children := lay.Children()
	own := children[0]

	if element.IsOver(own, r, position) {
		return true
	}
	if len(children) > 1 {
		if child := element.Child(own, r); child != nil {
			return n.isOver(child, children[1], r, position)
		}
	}
	return false
}
