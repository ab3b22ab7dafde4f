// Package keyed provides containers whose children carry stable keys, so
// state follows identity across reorders, insertions, and removals instead of
// sticking to positions.
package keyed

import (
	"slices"

	"github.com/glacier-ui/glacier/pkg/clipboard"
	"github.com/glacier-ui/glacier/pkg/core"
	"github.com/glacier-ui/glacier/pkg/event"
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/layout"
	"github.com/glacier-ui/glacier/pkg/mouse"
	"github.com/glacier-ui/glacier/pkg/renderer"
	"github.com/glacier-ui/glacier/pkg/theme"
	"github.com/glacier-ui/glacier/pkg/widgets"
)

// columnState remembers the keys the children were diffed with last frame.
type columnState[K comparable] struct {
	keys []K
}

// Column lays keyed children out vertically. Its reconciliation splices
// removals and insertions at the first index whose key changed, so children
// after the splice point keep their state.
type Column[K comparable, M any] struct {
	keys     []K
	children []core.Element[M]
	spacing  float64
	padding  layout.Padding
	width    layout.Length
	height   layout.Length
	align    layout.Alignment
}

// NewColumn builds an empty keyed column.
func NewColumn[K comparable, M any]() *Column[K, M] {
	return &Column[K, M]{
		width:  layout.Shrink,
		height: layout.Shrink,
	}
}

// Push appends a child under the given key. Keys must be unique within the
// column; a column holding a fill child becomes fill on that axis itself.
func (c *Column[K, M]) Push(key K, child core.Element[M]) *Column[K, M] {
	w, h := core.SizeHintOf(child.Widget())
	if w.IsFill() {
		c.width = layout.Fill
	}
	if h.IsFill() {
		c.height = layout.Fill
	}
	c.keys = append(c.keys, key)
	c.children = append(c.children, child)
	return c
}

// Spacing sets the gap between children.
func (c *Column[K, M]) Spacing(amount float64) *Column[K, M] {
	c.spacing = amount
	return c
}

// Padding sets the space around all children.
func (c *Column[K, M]) Padding(padding layout.Padding) *Column[K, M] {
	c.padding = padding
	return c
}

// Width sets the width strategy.
func (c *Column[K, M]) Width(width layout.Length) *Column[K, M] {
	c.width = width
	return c
}

// Height sets the height strategy.
func (c *Column[K, M]) Height(height layout.Length) *Column[K, M] {
	c.height = height
	return c
}

// Align sets the horizontal alignment of children.
func (c *Column[K, M]) Align(align layout.Alignment) *Column[K, M] {
	c.align = align
	return c
}

// Element wraps the column for use as a child.
func (c *Column[K, M]) Element() core.Element[M] {
	return core.NewElement[M](c)
}

func (c *Column[K, M]) Tag() core.Tag {
	return core.TagOf[columnState[K]]()
}

func (c *Column[K, M]) State() core.State {
	return core.NewState(&columnState[K]{keys: slices.Clone(c.keys)})
}

func (c *Column[K, M]) Children() []*core.Tree {
	trees := make([]*core.Tree, len(c.children))
	for i, child := range c.children {
		trees[i] = core.NewTree(child.Widget())
	}
	return trees
}

// Diff reconciles the children by key. A position counts as possibly changed
// when the key now at it differs from the key recorded there last frame;
// removals and insertions splice at the first such position.
func (c *Column[K, M]) Diff(tree *core.Tree) {
	state := core.StateAs[columnState[K]](tree.State)

	maybeChanged := func(i int) bool {
		if i >= len(state.keys) || len(c.keys) == 0 {
			return true
		}
		key := c.keys[len(c.keys)-1]
		if i < len(c.keys) {
			key = c.keys[i]
		}
		return key != state.keys[i]
	}

	tree.DiffChildrenCustomWithSearch(
		len(c.children),
		func(node *core.Tree, i int) { node.Diff(c.children[i].Widget()) },
		func(i int) *core.Tree { return core.NewTree(c.children[i].Widget()) },
		maybeChanged,
	)

	state.keys = slices.Clone(c.keys)
}

func (c *Column[K, M]) Size() (layout.Length, layout.Length) {
	return c.width, c.height
}

func (c *Column[K, M]) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return widgets.ResolveFlex(
		widgets.Vertical, r, limits,
		c.width, c.height, c.padding, c.spacing, c.align,
		c.children, tree.Children,
	)
}

func (c *Column[K, M]) Update(
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

func (c *Column[K, M]) Draw(
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

func (c *Column[K, M]) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	op.Container("", lay.Bounds(), func(op core.Operation) {
		for i, child := range lay.Children() {
			core.OperateWidget(c.children[i].Widget(), tree.Children[i], child, r, op)
		}
	})
}

func (c *Column[K, M]) MouseInteraction(
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

func (c *Column[K, M]) Overlay(
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	var overlays []*core.OverlayElement[M]
	for i, child := range lay.Children() {
		overlay := core.OverlayOf(c.children[i].Widget(), tree.Children[i], child, r, viewport, translation)
		if overlay != nil {
			overlays = append(overlays, overlay)
		}
	}

	switch len(overlays) {
	case 0:
		return nil
	case 1:
		return overlays[0]
	default:
		return core.NewGroup(overlays).Element()
	}
}
