package widgets

import (
	"fmt"

	"github.com/glacier-ui/glacier/pkg/clipboard"
	"github.com/glacier-ui/glacier/pkg/core"
	"github.com/glacier-ui/glacier/pkg/event"
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/layout"
	"github.com/glacier-ui/glacier/pkg/mouse"
	"github.com/glacier-ui/glacier/pkg/renderer"
	"github.com/glacier-ui/glacier/pkg/theme"
)

// lazyState keeps the built view and the dependency hash it was built for.
type lazyState[M any] struct {
	hash    uint64
	element core.Element[M]
}

// Lazy rebuilds its view only when its dependencies change. As long as the
// dependency hash matches the one stored in the tree, the cached element is
// reused and the subtree is not even diffed.
type Lazy[M any] struct {
	hash    uint64
	view    func() core.Element[M]
	element core.Element[M]
}

// NewLazy builds a lazy view. The deps are hashed; the view function only
// runs again on a frame where that hash differs from the previous one, so
// they must cover everything the view reads.
func NewLazy[M any](view func() core.Element[M], deps ...any) *Lazy[M] {
	h := layout.NewHasher()
	for _, dep := range deps {
		hashDependency(h, dep)
	}
	return &Lazy[M]{hash: h.Sum(), view: view}
}

// Element wraps the lazy view for use as a child.
func (l *Lazy[M]) Element() core.Element[M] {
	return core.NewElement[M](l)
}

// build runs the view at most once per widget value.
func (l *Lazy[M]) build() core.Element[M] {
	if l.element.IsZero() {
		l.element = l.view()
	}
	return l.element
}

func (l *Lazy[M]) Tag() core.Tag {
	return core.TagOf[lazyState[M]]()
}

func (l *Lazy[M]) State() core.State {
	return core.NewState(&lazyState[M]{hash: l.hash, element: l.build()})
}

func (l *Lazy[M]) Children() []*core.Tree {
	return []*core.Tree{core.NewTree(l.build().Widget())}
}

// Diff rebuilds the view when the dependency hash changed and soft-diffs the
// subtree against it. An unchanged hash leaves the subtree untouched and
// adopts the cached element, so later Size calls never run the view.
func (l *Lazy[M]) Diff(tree *core.Tree) {
	state := core.StateAs[lazyState[M]](tree.State)
	if state.hash == l.hash {
		l.element = state.element
		return
	}
	state.hash = l.hash
	state.element = l.build()
	tree.DiffChildren(core.Sources([]core.Element[M]{state.element}))
}

func (l *Lazy[M]) Size() (layout.Length, layout.Length) {
	return l.build().Widget().Size()
}

func (l *Lazy[M]) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	state := core.StateAs[lazyState[M]](tree.State)
	return state.element.Widget().Layout(tree.Children[0], r, limits)
}

func (l *Lazy[M]) Update(
	tree *core.Tree,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
	viewport geometry.Rectangle,
) {
	state := core.StateAs[lazyState[M]](tree.State)
	state.element.Widget().Update(tree.Children[0], ev, lay, cursor, r, clip, shell, viewport)
}

func (l *Lazy[M]) Draw(
	tree *core.Tree,
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
) {
	state := core.StateAs[lazyState[M]](tree.State)
	state.element.Widget().Draw(tree.Children[0], r, th, style, lay, cursor, viewport)
}

func (l *Lazy[M]) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	state := core.StateAs[lazyState[M]](tree.State)
	core.OperateWidget(state.element.Widget(), tree.Children[0], lay, r, op)
}

func (l *Lazy[M]) MouseInteraction(
	tree *core.Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
) mouse.Interaction {
	state := core.StateAs[lazyState[M]](tree.State)
	return core.InteractionOf(state.element.Widget(), tree.Children[0], lay, cursor, viewport, r)
}

func (l *Lazy[M]) Overlay(
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	state := core.StateAs[lazyState[M]](tree.State)
	return core.OverlayOf(state.element.Widget(), tree.Children[0], lay, r, viewport, translation)
}

// HashLayout writes the dependency hash only: the deps determine the view,
// so they determine its layout as well.
func (l *Lazy[M]) HashLayout(h *layout.Hasher) {
	h.WriteUint64(l.hash)
}

func hashDependency(h *layout.Hasher, dep any) {
	switch v := dep.(type) {
	case string:
		h.WriteString(v)
	case int:
		h.WriteInt(v)
	case int64:
		h.WriteUint64(uint64(v))
	case uint64:
		h.WriteUint64(v)
	case float64:
		h.WriteFloat64(v)
	case bool:
		h.WriteBool(v)
	default:
		h.WriteString(fmt.Sprintf("%v", v))
	}
}
