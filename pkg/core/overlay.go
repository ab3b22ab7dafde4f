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

// Overlay is content displayed on top of the whole interface, outside the
// bounds of the widget that produced it: menus, tooltips, floating panes.
type Overlay[M any] interface {
	// Layout computes the overlay node within the window bounds.
	Layout(r renderer.Renderer, bounds geometry.Size) layout.Node

	// Update processes one event.
	Update(
		ev event.Event,
		lay layout.Layout,
		cursor mouse.Cursor,
		r renderer.Renderer,
		clip clipboard.Clipboard,
		shell *Shell[M],
	)

	// Draw paints the overlay.
	Draw(
		r renderer.Renderer,
		th *theme.Theme,
		style renderer.Style,
		lay layout.Layout,
		cursor mouse.Cursor,
	)
}

// OverlayMouseTarget is an optional capability: the cursor shape an overlay
// requests while hovered.
type OverlayMouseTarget interface {
	MouseInteraction(lay layout.Layout, cursor mouse.Cursor, r renderer.Renderer) mouse.Interaction
}

// OverlayOperator is an optional capability: applying operations to the
// overlay content.
type OverlayOperator interface {
	Operate(lay layout.Layout, r renderer.Renderer, op Operation)
}

// OverlayHitTester is an optional capability: custom hit testing. Overlays
// without it are hit by their layout bounds.
type OverlayHitTester interface {
	IsOver(lay layout.Layout, r renderer.Renderer, position geometry.Point) bool
}

// OverlayParent is an optional capability: an overlay that itself spawns a
// deeper overlay, forming the nested chain.
type OverlayParent[M any] interface {
	Overlay(lay layout.Layout, r renderer.Renderer) *OverlayElement[M]
}

// OverlayElement is the type-erased handle over an Overlay implementation.
type OverlayElement[M any] struct {
	overlay Overlay[M]
}

// NewOverlayElement wraps an overlay.
func NewOverlayElement[M any](overlay Overlay[M]) *OverlayElement[M] {
	return &OverlayElement[M]{overlay: overlay}
}

// Overlay returns the wrapped implementation.
func (e *OverlayElement[M]) Overlay() Overlay[M] {
	return e.overlay
}

// Layout computes the overlay node within the window bounds.
func (e *OverlayElement[M]) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	return e.overlay.Layout(r, bounds)
}

// Update processes one event.
func (e *OverlayElement[M]) Update(
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *Shell[M],
) {
	e.overlay.Update(ev, lay, cursor, r, clip, shell)
}

// Draw paints the overlay.
func (e *OverlayElement[M]) Draw(
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
) {
	e.overlay.Draw(r, th, style, lay, cursor)
}

// MouseInteraction returns the overlay's requested cursor shape, or none.
func (e *OverlayElement[M]) MouseInteraction(
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
) mouse.Interaction {
	if t, ok := e.overlay.(OverlayMouseTarget); ok {
		return t.MouseInteraction(lay, cursor, r)
	}
	return mouse.InteractionNone
}

// Operate applies an operation to the overlay content, if supported.
func (e *OverlayElement[M]) Operate(lay layout.Layout, r renderer.Renderer, op Operation) {
	if o, ok := e.overlay.(OverlayOperator); ok {
		o.Operate(lay, r, op)
	}
}

// IsOver reports whether the position hits the overlay.
func (e *OverlayElement[M]) IsOver(lay layout.Layout, r renderer.Renderer, position geometry.Point) bool {
	if h, ok := e.overlay.(OverlayHitTester); ok {
		return h.IsOver(lay, r, position)
	}
	return lay.Bounds().Contains(position)
}

// Child returns the overlay spawned by this overlay, if any.
func (e *OverlayElement[M]) Child(lay layout.Layout, r renderer.Renderer) *OverlayElement[M] {
	if p, ok := e.overlay.(OverlayParent[M]); ok {
		return p.Overlay(lay, r)
	}
	return nil
}

// MapOverlay adapts an overlay publishing A into one publishing B. The
// wrapped overlay runs against a local shell that is merged into the parent
// shell through f, and any nested overlay is mapped recursively.
func MapOverlay[A, B any](e *OverlayElement[A], f func(A) B) *OverlayElement[B] {
	if e == nil {
		return nil
	}
	return NewOverlayElement[B](&mapOverlay[A, B]{inner: e, mapper: f})
}

type mapOverlay[A, B any] struct {
	inner  *OverlayElement[A]
	mapper func(A) B
}

func (m *mapOverlay[A, B]) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	return m.inner.Layout(r, bounds)
}

func (m *mapOverlay[A, B]) Update(
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *Shell[B],
) {
	var local Shell[A]
	m.inner.Update(ev, lay, cursor, r, clip, &local)
	MergeShell(shell, &local, m.mapper)
}

func (m *mapOverlay[A, B]) Draw(
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
) {
	m.inner.Draw(r, th, style, lay, cursor)
}

func (m *mapOverlay[A, B]) MouseInteraction(
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
) mouse.Interaction {
	return m.inner.MouseInteraction(lay, cursor, r)
}

func (m *mapOverlay[A, B]) Operate(lay layout.Layout, r renderer.Renderer, op Operation) {
	m.inner.Operate(lay, r, op)
}

func (m *mapOverlay[A, B]) IsOver(lay layout.Layout, r renderer.Renderer, position geometry.Point) bool {
	return m.inner.IsOver(lay, r, position)
}

func (m *mapOverlay[A, B]) Overlay(lay layout.Layout, r renderer.Renderer) *OverlayElement[B] {
	return MapOverlay(m.inner.Child(lay, r), m.mapper)
}
