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

// Element is the type-erased handle view code passes around: any widget
// publishing M, behind one value type.
type Element[M any] struct {
	widget Widget[M]
}

// NewElement wraps a widget.
func NewElement[M any](w Widget[M]) Element[M] {
	return Element[M]{widget: w}
}

// Widget returns the wrapped widget.
func (e Element[M]) Widget() Widget[M] {
	return e.widget
}

// IsZero reports whether the element wraps nothing.
func (e Element[M]) IsZero() bool {
	return e.widget == nil
}

// Sources converts elements to the reconciliation interface for
// Tree.DiffChildren.
func Sources[M any](children []Element[M]) []TreeSource {
	sources := make([]TreeSource, len(children))
	for i, child := range children {
		sources[i] = child.Widget()
	}
	return sources
}

// Map adapts an element publishing A into one publishing B. The wrapped
// widget runs its updates against a local shell that is merged into the
// parent shell through f; everything else forwards transparently, so
// mapping never disturbs reconciliation or layout.
func Map[A, B any](e Element[A], f func(A) B) Element[B] {
	return NewElement[B](&mapWidget[A, B]{inner: e.widget, mapper: f})
}

type mapWidget[A, B any] struct {
	inner  Widget[A]
	mapper func(A) B
}

func (m *mapWidget[A, B]) Tag() Tag {
	return m.inner.Tag()
}

func (m *mapWidget[A, B]) State() State {
	return m.inner.State()
}

func (m *mapWidget[A, B]) Children() []*Tree {
	return m.inner.Children()
}

func (m *mapWidget[A, B]) Diff(tree *Tree) {
	m.inner.Diff(tree)
}

func (m *mapWidget[A, B]) Size() (layout.Length, layout.Length) {
	return m.inner.Size()
}

func (m *mapWidget[A, B]) SizeHint() (layout.Length, layout.Length) {
	return SizeHintOf(m.inner)
}

func (m *mapWidget[A, B]) Layout(tree *Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return m.inner.Layout(tree, r, limits)
}

func (m *mapWidget[A, B]) Update(
	tree *Tree,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *Shell[B],
	viewport geometry.Rectangle,
) {
	var local Shell[A]
	m.inner.Update(tree, ev, lay, cursor, r, clip, &local, viewport)
	MergeShell(shell, &local, m.mapper)
}

func (m *mapWidget[A, B]) Draw(
	tree *Tree,
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
) {
	m.inner.Draw(tree, r, th, style, lay, cursor, viewport)
}

func (m *mapWidget[A, B]) Operate(tree *Tree, lay layout.Layout, r renderer.Renderer, op Operation) {
	OperateWidget(m.inner, tree, lay, r, op)
}

func (m *mapWidget[A, B]) MouseInteraction(
	tree *Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
) mouse.Interaction {
	return InteractionOf(m.inner, tree, lay, cursor, viewport, r)
}

func (m *mapWidget[A, B]) Overlay(
	tree *Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *OverlayElement[B] {
	return MapOverlay(OverlayOf(m.inner, tree, lay, r, viewport, translation), m.mapper)
}

func (m *mapWidget[A, B]) HashLayout(h *layout.Hasher) {
	_ = HashLayout(m.inner, h)
}

func (m *mapWidget[A, B]) CanHashLayout() bool {
	if _, ok := m.inner.(LayoutHasher); !ok {
		return false
	}
	if gate, ok := m.inner.(layoutHashGate); ok {
		return gate.CanHashLayout()
	}
	return true
}
