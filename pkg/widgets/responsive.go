package widgets

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

// responsiveState caches the view built for the last observed size, together
// with its private state tree and layout.
type responsiveState[M any] struct {
	size    geometry.Size
	element core.Element[M]
	tree    *core.Tree
	node    layout.Node
}

// Responsive builds its view from the space it is given. It always fills the
// available limits; the view function runs again only when that size changes.
type Responsive[M any] struct {
	view func(geometry.Size) core.Element[M]
}

// NewResponsive builds a size-dependent view.
func NewResponsive[M any](view func(geometry.Size) core.Element[M]) *Responsive[M] {
	return &Responsive[M]{view: view}
}

// Element wraps the responsive view for use as a child.
func (w *Responsive[M]) Element() core.Element[M] {
	return core.NewElement[M](w)
}

func (w *Responsive[M]) Tag() core.Tag {
	return core.TagOf[responsiveState[M]]()
}

func (w *Responsive[M]) State() core.State {
	return core.NewState(&responsiveState[M]{})
}

// Children returns nothing: the subtree lives inside the state, since it only
// exists once a size is known.
func (w *Responsive[M]) Children() []*core.Tree {
	return nil
}

// Diff drops the cached element so the next resolve rebuilds the view against
// the kept subtree state.
func (w *Responsive[M]) Diff(tree *core.Tree) {
	state := core.StateAs[responsiveState[M]](tree.State)
	state.element = core.Element[M]{}
}

func (w *Responsive[M]) Size() (layout.Length, layout.Length) {
	return layout.Fill, layout.Fill
}

func (w *Responsive[M]) Layout(_ *core.Tree, _ renderer.Renderer, limits layout.Limits) layout.Node {
	return layout.NewNode(limits.Max)
}

// resolve makes sure the cached view matches the current size, rebuilding and
// laying it out when it does not, and returns the view with its layout
// positioned at the widget's own origin.
func (w *Responsive[M]) resolve(
	state *responsiveState[M],
	r renderer.Renderer,
	lay layout.Layout,
) (core.Element[M], layout.Layout) {
	size := lay.Bounds().Size()

	if state.element.IsZero() || state.size != size {
		element := w.view(size)

		if state.tree == nil {
			state.tree = core.NewTree(element.Widget())
		} else {
			state.tree.Diff(element.Widget())
		}

		state.element = element
		state.size = size
		state.node = element.Widget().Layout(state.tree, r, layout.LimitsWithin(size))
	}

	return state.element, layout.LayoutAt(lay.Position(), &state.node)
}

func (w *Responsive[M]) Update(
	tree *core.Tree,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
	viewport geometry.Rectangle,
) {
	state := core.StateAs[responsiveState[M]](tree.State)
	element, content := w.resolve(state, r, lay)
	element.Widget().Update(state.tree, ev, content, cursor, r, clip, shell, viewport)

	// The view may have invalidated its own layout; relayout within the
	// cached size rather than asking the runtime for a full pass.
	shell.RevalidateLayout(func() {
		state.node = state.element.Widget().Layout(state.tree, r, layout.LimitsWithin(state.size))
	})
}

func (w *Responsive[M]) Draw(
	tree *core.Tree,
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
) {
	state := core.StateAs[responsiveState[M]](tree.State)
	element, content := w.resolve(state, r, lay)
	element.Widget().Draw(state.tree, r, th, style, content, cursor, viewport)
}

func (w *Responsive[M]) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	state := core.StateAs[responsiveState[M]](tree.State)
	element, content := w.resolve(state, r, lay)
	core.OperateWidget(element.Widget(), state.tree, content, r, op)
}

func (w *Responsive[M]) MouseInteraction(
	tree *core.Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
) mouse.Interaction {
	state := core.StateAs[responsiveState[M]](tree.State)
	element, content := w.resolve(state, r, lay)
	return core.InteractionOf(element.Widget(), state.tree, content, cursor, viewport, r)
}

func (w *Responsive[M]) Overlay(
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	state := core.StateAs[responsiveState[M]](tree.State)
	element, content := w.resolve(state, r, lay)
	return core.OverlayOf(element.Widget(), state.tree, content, r, viewport, translation)
}

func (w *Responsive[M]) HashLayout(h *layout.Hasher) {
	// The outer node only depends on the limits; the inner view lays itself
	// out against the cached size.
	h.WriteBool(true)
}
