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

// Column lays children out vertically.
type Column[M any] struct {
	children []core.Element[M]
	spacing  float64
	padding  layout.Padding
	width    layout.Length
	height   layout.Length
	align    layout.Alignment
}

// NewColumn builds a column from the given children.
func NewColumn[M any](children ...core.Element[M]) *Column[M] {
	c := &Column[M]{
		width:  layout.Shrink,
		height: layout.Shrink,
	}
	for _, child := range children {
		c.Push(child)
	}
	return c
}

// Push appends a child. A column holding a fill child becomes fill on that
// axis itself.
func (c *Column[M]) Push(child core.Element[M]) *Column[M] {
	w, h := core.SizeHintOf(child.Widget())
	if w.IsFill() {
		c.width = layout.Fill
	}
	if h.IsFill() {
		c.height = layout.Fill
	}
	c.children = append(c.children, child)
	return c
}

// Spacing sets the gap between children.
func (c *Column[M]) Spacing(amount float64) *Column[M] {
	c.spacing = amount
	return c
}

// Padding sets the space around all children.
func (c *Column[M]) Padding(padding layout.Padding) *Column[M] {
	c.padding = padding
	return c
}

// Width sets the width strategy.
func (c *Column[M]) Width(width layout.Length) *Column[M] {
	c.width = width
	return c
}

// Height sets the height strategy.
func (c *Column[M]) Height(height layout.Length) *Column[M] {
	c.height = height
	return c
}

// Align sets the horizontal alignment of children.
func (c *Column[M]) Align(align layout.Alignment) *Column[M] {
	c.align = align
	return c
}

// Element wraps the column for use as a child.
func (c *Column[M]) Element() core.Element[M] {
	return core.NewElement[M](c)
}

func (c *Column[M]) Tag() core.Tag {
	return core.TagNone()
}

func (c *Column[M]) State() core.State {
	return core.EmptyState
}

func (c *Column[M]) Children() []*core.Tree {
	trees := make([]*core.Tree, len(c.children))
	for i, child := range c.children {
		trees[i] = core.NewTree(child.Widget())
	}
	return trees
}

func (c *Column[M]) Diff(tree *core.Tree) {
	tree.DiffChildren(core.Sources(c.children))
}

func (c *Column[M]) Size() (layout.Length, layout.Length) {
	return c.width, c.height
}

func (c *Column[M]) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return ResolveFlex(
		Vertical, r, limits,
		c.width, c.height, c.padding, c.spacing, c.align,
		c.children, tree.Children,
	)
}

func (c *Column[M]) Update(
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
		c.children[i].Widget().Update(tree.Children[i], ev, child, cursor, r, clip, shell, viewport)
	}
}

func (c *Column[M]) Draw(
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
		c.children[i].Widget().Draw(tree.Children[i], r, th, style, child, cursor, viewport)
	}
}

func (c *Column[M]) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	op.Container("", lay.Bounds(), func(op core.Operation) {
		for i, child := range lay.Children() {
			core.OperateWidget(c.children[i].Widget(), tree.Children[i], child, r, op)
		}
	})
}

func (c *Column[M]) MouseInteraction(
	tree *core.Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
) mouse.Interaction {
	interaction := mouse.InteractionNone
	for i, child := range lay.Children() {
		interaction = interaction.Merge(
			core.InteractionOf(c.children[i].Widget(), tree.Children[i], child, cursor, viewport, r),
		)
	}
	return interaction
}

func (c *Column[M]) Overlay(
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	return overlayFromChildren(c.children, tree, lay, r, viewport, translation)
}

func (c *Column[M]) HashLayout(h *layout.Hasher) {
	c.width.Hash(h)
	c.height.Hash(h)
	c.padding.Hash(h)
	h.WriteFloat64(c.spacing)
	h.WriteInt(int(c.align))
	_ = hashFlexChildren(c.children, h)
}

func (c *Column[M]) CanHashLayout() bool {
	return childrenHashable(c.children)
}
