package widgets

import (
	"github.com/glacier-ui/glacier/pkg/clipboard"
	"github.com/glacier-ui/glacier/pkg/core"
	"github.com/glacier-ui/glacier/pkg/event"
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/graphics"
	"github.com/glacier-ui/glacier/pkg/layout"
	"github.com/glacier-ui/glacier/pkg/mouse"
	"github.com/glacier-ui/glacier/pkg/renderer"
	"github.com/glacier-ui/glacier/pkg/theme"
)

// ContainerStyle is the decoration of a container box.
type ContainerStyle struct {
	Background graphics.Color
	Border     renderer.Border
	TextColor  graphics.Color
	HasText    bool
}

// Container decorates and aligns a single child.
type Container[M any] struct {
	content core.Element[M]
	padding layout.Padding
	width   layout.Length
	height  layout.Length
	alignX  layout.Alignment
	alignY  layout.Alignment
	style   func(*theme.Theme) ContainerStyle
}

// NewContainer wraps the given content.
func NewContainer[M any](content core.Element[M]) *Container[M] {
	w, h := core.SizeHintOf(content.Widget())
	width, height := layout.Shrink, layout.Shrink
	if w.IsFill() {
		width = layout.Fill
	}
	if h.IsFill() {
		height = layout.Fill
	}
	return &Container[M]{content: content, width: width, height: height}
}

// Padding sets the space around the content.
func (c *Container[M]) Padding(padding layout.Padding) *Container[M] {
	c.padding = padding
	return c
}

// Width sets the width strategy.
func (c *Container[M]) Width(width layout.Length) *Container[M] {
	c.width = width
	return c
}

// Height sets the height strategy.
func (c *Container[M]) Height(height layout.Length) *Container[M] {
	c.height = height
	return c
}

// AlignX sets the horizontal alignment of the content.
func (c *Container[M]) AlignX(align layout.Alignment) *Container[M] {
	c.alignX = align
	return c
}

// AlignY sets the vertical alignment of the content.
func (c *Container[M]) AlignY(align layout.Alignment) *Container[M] {
	c.alignY = align
	return c
}

// Center centers the content on both axes.
func (c *Container[M]) Center() *Container[M] {
	c.alignX = layout.AlignCenter
	c.alignY = layout.AlignCenter
	return c
}

// Style sets the decoration derived from the theme.
func (c *Container[M]) Style(style func(*theme.Theme) ContainerStyle) *Container[M] {
	c.style = style
	return c
}

// Element wraps the container for use as a child.
func (c *Container[M]) Element() core.Element[M] {
	return core.NewElement[M](c)
}

func (c *Container[M]) Tag() core.Tag {
	return core.TagNone()
}

func (c *Container[M]) State() core.State {
	return core.EmptyState
}

func (c *Container[M]) Children() []*core.Tree {
	return []*core.Tree{core.NewTree(c.content.Widget())}
}

func (c *Container[M]) Diff(tree *core.Tree) {
	tree.DiffChildren(core.Sources([]core.Element[M]{c.content}))
}

func (c *Container[M]) Size() (layout.Length, layout.Length) {
	return c.width, c.height
}

func (c *Container[M]) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(c.width).Height(c.height)
	inner := limits.ShrinkBy(c.padding).Loose()

	child := c.content.Widget().Layout(tree.Children[0], r, inner)
	size := limits.ShrinkBy(c.padding).Resolve(c.width, c.height, child.Size())

	child = child.
		MoveTo(geometry.Point{X: c.padding.Left, Y: c.padding.Top}).
		Align(c.alignX, c.alignY, size)

	return layout.NodeWithChildren(
		size.Expand(c.padding.Horizontal(), c.padding.Vertical()),
		[]layout.Node{child},
	)
}

func (c *Container[M]) Update(
	tree *core.Tree,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
	viewport geometry.Rectangle,
) {
	c.content.Widget().Update(tree.Children[0], ev, lay.Children()[0], cursor, r, clip, shell, viewport)
}

func (c *Container[M]) Draw(
	tree *core.Tree,
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
) {
	if c.style != nil {
		decoration := c.style(th)
		if decoration.Background != graphics.ColorTransparent || decoration.Border.Width > 0 {
			r.FillQuad(renderer.Quad{
				Bounds: lay.Bounds(),
				Border: decoration.Border,
			}, decoration.Background)
		}
		if decoration.HasText {
			style.TextColor = decoration.TextColor
		}
	}

	c.content.Widget().Draw(tree.Children[0], r, th, style, lay.Children()[0], cursor, viewport)
}

func (c *Container[M]) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	op.Container("", lay.Bounds(), func(op core.Operation) {
		core.OperateWidget(c.content.Widget(), tree.Children[0], lay.Children()[0], r, op)
	})
}

func (c *Container[M]) MouseInteraction(
	tree *core.Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
) mouse.Interaction {
	return core.InteractionOf(c.content.Widget(), tree.Children[0], lay.Children()[0], cursor, viewport, r)
}

func (c *Container[M]) Overlay(
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	return core.OverlayOf(c.content.Widget(), tree.Children[0], lay.Children()[0], r, viewport, translation)
}

func (c *Container[M]) HashLayout(h *layout.Hasher) {
	c.width.Hash(h)
	c.height.Hash(h)
	c.padding.Hash(h)
	h.WriteInt(int(c.alignX))
	h.WriteInt(int(c.alignY))
	_ = core.HashLayout(c.content.Widget(), h)
}

func (c *Container[M]) CanHashLayout() bool {
	return widgetHashable(c.content.Widget())
}
