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

// Row lays children out horizontally.
type Row[M any] struct {
	children []core.Element[M]
	spacing  float64
	padding  layout.Padding
	width    layout.Length
	height   layout.Length
	align    layout.Alignment
}

// NewRow builds a row from the given children.
func NewRow[M any](children ...core.Element[M]) *Row[M] {
	row := &Row[M]{
		width:  layout.Shrink,
		height: layout.Shrink,
	}
	for _, child := range children {
		row.Push(child)
	}
	return row
}

// Push appends a child. A row holding a fill child becomes fill on that
// axis itself.
func (row *Row[M]) Push(child core.Element[M]) *Row[M] {
	w, h := core.SizeHintOf(child.Widget())
	if w.IsFill() {
		row.width = layout.Fill
	}
	if h.IsFill() {
		row.height = layout.Fill
	}
	row.children = append(row.children, child)
	return row
}

// Spacing sets the gap between children.
func (row *Row[M]) Spacing(amount float64) *Row[M] {
	row.spacing = amount
	return row
}

// Padding sets the space around all children.
func (row *Row[M]) Padding(padding layout.Padding) *Row[M] {
	row.padding = padding
	return row
}

// Width sets the width strategy.
func (row *Row[M]) Width(width layout.Length) *Row[M] {
	row.width = width
	return row
}

// Height sets the height strategy.
func (row *Row[M]) Height(height layout.Length) *Row[M] {
	row.height = height
	return row
}

// Align sets the vertical alignment of children.
func (row *Row[M]) Align(align layout.Alignment) *Row[M] {
	row.align = align
	return row
}

// Element wraps the row for use as a child.
func (row *Row[M]) Element() core.Element[M] {
	return core.NewElement[M](row)
}

func (row *Row[M]) Tag() core.Tag {
	return core.TagNone()
}

func (row *Row[M]) State() core.State {
	return core.EmptyState
}

func (row *Row[M]) Children() []*core.Tree {
	trees := make([]*core.Tree, len(row.children))
	for i, child := range row.children {
		trees[i] = core.NewTree(child.Widget())
	}
	return trees
}

func (row *Row[M]) Diff(tree *core.Tree) {
	tree.DiffChildren(core.Sources(row.children))
}

func (row *Row[M]) Size() (layout.Length, layout.Length) {
	return row.width, row.height
}

func (row *Row[M]) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return ResolveFlex(
		Horizontal, r, limits,
		row.width, row.height, row.padding, row.spacing, row.align,
		row.children, tree.Children,
	)
}

func (row *Row[M]) Update(
	tree *core.Tree,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
	viewport geometry.Rectangle,
) {
	for i, child := range lay.Children() {
		row.children[i].Widget().Update(tree.Children[i], ev, child, cursor, r, clip, shell, viewport)
	}
}

func (row *Row[M]) Draw(
	tree *core.Tree,
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
) {
	for i, child := range lay.Children() {
		if !child.Bounds().Intersects(viewport) {
			continue
		}
		row.children[i].Widget().Draw(tree.Children[i], r, th, style, child, cursor, viewport)
	}
}

func (row *Row[M]) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	op.Container("", lay.Bounds(), func(op core.Operation) {
		for i, child := range lay.Children() {
			core.OperateWidget(row.children[i].Widget(), tree.Children[i], child, r, op)
		}
	})
}

func (row *Row[M]) MouseInteraction(
	tree *core.Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
) mouse.Interaction {
	interaction := mouse.InteractionNone
	for i, child := range lay.Children() {
		interaction = interaction.Merge(
			core.InteractionOf(row.children[i].Widget(), tree.Children[i], child, cursor, viewport, r),
		)
	}
	return interaction
}

func (row *Row[M]) Overlay(
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	return overlayFromChildren(row.children, tree, lay, r, viewport, translation)
}

func (row *Row[M]) HashLayout(h *layout.Hasher) {
	row.width.Hash(h)
	row.height.Hash(h)
	row.padding.Hash(h)
	h.WriteFloat64(row.spacing)
	h.WriteInt(int(row.align))
	_ = hashFlexChildren(row.children, h)
}

func (row *Row[M]) CanHashLayout() bool {
	return childrenHashable(row.children)
}
