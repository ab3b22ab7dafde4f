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

// Widget is the contract every view element implements. A widget value is
// ephemeral: it is rebuilt by view code every frame and never holds state of
// its own. Its persistent state lives in the Tree node the runtime pairs it
// with on every call.
//
// M is the message type the widget publishes through its Shell.
type Widget[M any] interface {
	TreeSource

	// Size returns the widget's width and height strategies.
	Size() (width, height layout.Length)

	// Layout computes the widget's node within the given limits.
	Layout(tree *Tree, r renderer.Renderer, limits layout.Limits) layout.Node

	// Update processes one event, mutating tree state and talking back to
	// the runtime through the shell.
	Update(
		tree *Tree,
		ev event.Event,
		lay layout.Layout,
		cursor mouse.Cursor,
		r renderer.Renderer,
		clip clipboard.Clipboard,
		shell *Shell[M],
		viewport geometry.Rectangle,
	)

	// Draw paints the widget.
	Draw(
		tree *Tree,
		r renderer.Renderer,
		th *theme.Theme,
		style renderer.Style,
		lay layout.Layout,
		cursor mouse.Cursor,
		viewport geometry.Rectangle,
	)
}

// SizeHinter is an optional capability: the size strategies a widget will
// have once built, queryable before building. Containers use it to adopt
// fill behavior from lazily built children.
type SizeHinter interface {
	SizeHint() (width, height layout.Length)
}

// SizeHintOf returns the widget's size hint, falling back to its size.
func SizeHintOf[M any](w Widget[M]) (layout.Length, layout.Length) {
	if h, ok := w.(SizeHinter); ok {
		return h.SizeHint()
	}
	return w.Size()
}

// Operator is an optional capability: applying a widget operation to the
// subtree. Widgets without it are transparent to operations.
type Operator interface {
	Operate(tree *Tree, lay layout.Layout, r renderer.Renderer, op Operation)
}

// OperateWidget applies an operation to a widget when it supports them.
func OperateWidget[M any](w Widget[M], tree *Tree, lay layout.Layout, r renderer.Renderer, op Operation) {
	if o, ok := w.(Operator); ok {
		o.Operate(tree, lay, r, op)
	}
}

// MouseTarget is an optional capability: the cursor shape a widget requests.
type MouseTarget interface {
	MouseInteraction(
		tree *Tree,
		lay layout.Layout,
		cursor mouse.Cursor,
		viewport geometry.Rectangle,
		r renderer.Renderer,
	) mouse.Interaction
}

// InteractionOf returns the widget's requested cursor shape, or none.
func InteractionOf[M any](
	w Widget[M],
	tree *Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
) mouse.Interaction {
	if t, ok := w.(MouseTarget); ok {
		return t.MouseInteraction(tree, lay, cursor, viewport, r)
	}
	return mouse.InteractionNone
}

// OverlayProvider is an optional capability: content the widget displays on
// top of everything else. The translation is the displacement accumulated by
// scrolling or floating ancestors.
type OverlayProvider[M any] interface {
	Overlay(
		tree *Tree,
		lay layout.Layout,
		r renderer.Renderer,
		viewport geometry.Rectangle,
		translation geometry.Vector,
	) *OverlayElement[M]
}

// OverlayOf returns the widget's overlay, if any.
func OverlayOf[M any](
	w Widget[M],
	tree *Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *OverlayElement[M] {
	if p, ok := w.(OverlayProvider[M]); ok {
		return p.Overlay(tree, lay, r, viewport, translation)
	}
	return nil
}

// LayoutHasher is an optional capability: folding every property that can
// affect layout into a structural hash. The runtime reuses a cached layout
// when the hash and bounds of two consecutive frames match.
type LayoutHasher interface {
	HashLayout(h *layout.Hasher)
}

// layoutHashGate lets wrappers opt out of hashing when their content does
// not support it.
type layoutHashGate interface {
	CanHashLayout() bool
}

// HashLayout folds the widget's layout-affecting properties into the hasher.
// It reports false when the widget (or its content) does not support layout
// hashing, in which case the caller must not reuse cached layouts.
func HashLayout(w any, h *layout.Hasher) bool {
	lh, ok := w.(LayoutHasher)
	if !ok {
		return false
	}
	if gate, ok := w.(layoutHashGate); ok && !gate.CanHashLayout() {
		return false
	}
	lh.HashLayout(h)
	return true
}
