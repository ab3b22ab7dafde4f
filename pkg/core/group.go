package core

import (
	"github.com/glacier-ui/glacier/pkg/clipboard"
	"github.com/glacier-ui/glacier/pkg/event"
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/layout"
	"github.com/glacier-ui/glacier/pkg/mouse"
	"github.com/glacier-ui/glacier/pkg/renderer"
	"github.com/glacier-ui/glacier/pkg/theme"
)

// Group flattens several overlays produced by sibling widgets into one.
type Group[M any] struct {
	children []*OverlayElement[M]
}

// NewGroup builds a group from child overlays.
func NewGroup[M any](children []*OverlayElement[M]) *Group[M] {
	return &Group[M]{children: children}
}

// Element wraps the group as an overlay element.
func (g *Group[M]) Element() *OverlayElement[M] {
	return NewOverlayElement[M](g)
}

// Layout lays every child overlay out within the full window bounds.
func (g *Group[M]) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	children := make([]layout.Node, len(g.children))
	for i, child := range g.children {
		children[i] = child.Layout(r, bounds)
	}
	return layout.NodeWithChildren(bounds, children)
}

// Update dispatches the event to every child overlay, stopping once one
// captures it.
func (g *Group[M]) Update(
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *Shell[M],
) {
	for i, child := range lay.Children() {
		if shell.IsEventCaptured() {
			return
		}
		g.children[i].Update(ev, child, cursor, r, clip, shell)
	}
}

// Draw paints every child overlay in order.
func (g *Group[M]) Draw(
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
) {
	for i, child := range lay.Children() {
		g.children[i].Draw(r, th, style, child, cursor)
	}
}

// MouseInteraction merges the interactions of all children.
func (g *Group[M]) MouseInteraction(
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
) mouse.Interaction {
	interaction := mouse.InteractionNone
	for i, child := range lay.Children() {
		interaction = interaction.Merge(g.children[i].MouseInteraction(child, cursor, r))
	}
	return interaction
}

// Operate applies an operation to every child overlay.
func (g *Group[M]) Operate(lay layout.Layout, r renderer.Renderer, op Operation) {
	op.Container("", lay.Bounds(), func(op Operation) {
		for i, child := range lay.Children() {
			g.children[i].Operate(child, r, op)
		}
	})
}

// IsOver reports whether the position hits any child overlay.
func (g *Group[M]) IsOver(lay layout.Layout, r renderer.Renderer, position geometry.Point) bool {
	for i, child := range lay.Children() {
		if g.children[i].IsOver(child, r, position) {
			return true
		}
	}
	return false
}
