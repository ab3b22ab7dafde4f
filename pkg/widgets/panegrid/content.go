package panegrid

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

// ContentStyle is the decoration of a pane or its title bar.
type ContentStyle struct {
	Background graphics.Color
	Border     renderer.Border
}

// Content is what one pane displays: a body and an optional title bar. A
// pane is only draggable by its title bar.
type Content[M any] struct {
	body     core.Element[M]
	titleBar *TitleBar[M]
	style    func(*theme.Theme) ContentStyle
}

// NewContent builds pane content around a body.
func NewContent[M any](body core.Element[M]) *Content[M] {
	return &Content[M]{body: body}
}

// TitleBar attaches a title bar above the body.
func (c *Content[M]) TitleBar(titleBar *TitleBar[M]) *Content[M] {
	c.titleBar = titleBar
	return c
}

// Style sets the pane decoration derived from the theme.
func (c *Content[M]) Style(style func(*theme.Theme) ContentStyle) *Content[M] {
	c.style = style
	return c
}

// tree builds the state node for the content: the body first, then the title
// bar content when present.
func (c *Content[M]) tree() *core.Tree {
	children := []*core.Tree{core.NewTree(c.body.Widget())}
	if c.titleBar != nil {
		children = append(children, core.NewTree(c.titleBar.content.Widget()))
	}
	return &core.Tree{Tag: core.TagNone(), State: core.EmptyState, Children: children}
}

func (c *Content[M]) diff(tree *core.Tree) {
	want := 1
	if c.titleBar != nil {
		want = 2
	}
	if len(tree.Children) != want {
		*tree = *c.tree()
		return
	}

	tree.Children[0].Diff(c.body.Widget())
	if c.titleBar != nil {
		tree.Children[1].Diff(c.titleBar.content.Widget())
	}
}

func (c *Content[M]) layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	if c.titleBar == nil {
		body := c.body.Widget().Layout(tree.Children[0], r, limits)
		return layout.NodeWithChildren(limits.Max, []layout.Node{body})
	}

	title := c.titleBar.layout(tree.Children[1], r, limits)
	titleHeight := title.Size().Height

	body := c.body.Widget().Layout(
		tree.Children[0], r,
		limits.Shrink(geometry.Size{Height: titleHeight}),
	)
	body = body.MoveTo(geometry.Point{Y: titleHeight})

	return layout.NodeWithChildren(limits.Max, []layout.Node{body, title})
}

func (c *Content[M]) update(
	tree *core.Tree,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
	viewport geometry.Rectangle,
	isPicked bool,
) {
	if isPicked {
		return
	}

	children := lay.Children()
	c.body.Widget().Update(tree.Children[0], ev, children[0], cursor, r, clip, shell, viewport)
	if c.titleBar != nil {
		c.titleBar.content.Widget().Update(
			tree.Children[1], ev, children[1].Children()[0], cursor, r, clip, shell, viewport,
		)
	}
}

func (c *Content[M]) draw(
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
	}

	children := lay.Children()
	c.body.Widget().Draw(tree.Children[0], r, th, style, children[0], cursor, viewport)
	if c.titleBar != nil {
		c.titleBar.draw(tree.Children[1], r, th, style, children[1], cursor, viewport)
	}
}

// canBeDraggedAt reports whether grabbing at the position starts a drag: only
// the title bar area does.
func (c *Content[M]) canBeDraggedAt(lay layout.Layout, position geometry.Point) bool {
	if c.titleBar == nil {
		return false
	}
	return lay.Children()[1].Bounds().Contains(position)
}

func (c *Content[M]) mouseInteraction(
	tree *core.Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
	dragEnabled bool,
) mouse.Interaction {
	children := lay.Children()

	interaction := core.InteractionOf(c.body.Widget(), tree.Children[0], children[0], cursor, viewport, r)
	if c.titleBar != nil {
		interaction = interaction.Merge(core.InteractionOf(
			c.titleBar.content.Widget(), tree.Children[1], children[1].Children()[0], cursor, viewport, r,
		))
		if dragEnabled && interaction == mouse.InteractionNone && cursor.IsOver(children[1].Bounds()) {
			return mouse.InteractionGrab
		}
	}
	return interaction
}

func (c *Content[M]) operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	children := lay.Children()
	core.OperateWidget(c.body.Widget(), tree.Children[0], children[0], r, op)
	if c.titleBar != nil {
		core.OperateWidget(c.titleBar.content.Widget(), tree.Children[1], children[1].Children()[0], r, op)
	}
}

func (c *Content[M]) overlay(
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	return core.OverlayOf(c.body.Widget(), tree.Children[0], lay.Children()[0], r, viewport, translation)
}

// TitleBar is the draggable strip above a pane body.
type TitleBar[M any] struct {
	content core.Element[M]
	padding layout.Padding
	style   func(*theme.Theme) ContentStyle
}

// NewTitleBar builds a title bar around the given content.
func NewTitleBar[M any](content core.Element[M]) *TitleBar[M] {
	return &TitleBar[M]{content: content}
}

// Padding sets the space around the title content.
func (t *TitleBar[M]) Padding(padding layout.Padding) *TitleBar[M] {
	t.padding = padding
	return t
}

// Style sets the title bar decoration derived from the theme.
func (t *TitleBar[M]) Style(style func(*theme.Theme) ContentStyle) *TitleBar[M] {
	t.style = style
	return t
}

// layout spans the full pane width; the height follows the content.
func (t *TitleBar[M]) layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	inner := limits.Loose().ShrinkBy(t.padding)
	content := t.content.Widget().Layout(tree, r, inner)
	content = content.MoveTo(geometry.Point{X: t.padding.Left, Y: t.padding.Top})

	size := geometry.Size{
		Width:  limits.Max.Width,
		Height: content.Size().Height + t.padding.Vertical(),
	}
	return layout.NodeWithChildren(size, []layout.Node{content})
}

func (t *TitleBar[M]) draw(
	tree *core.Tree,
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
) {
	if t.style != nil {
		decoration := t.style(th)
		if decoration.Background != graphics.ColorTransparent || decoration.Border.Width > 0 {
			r.FillQuad(renderer.Quad{
				Bounds: lay.Bounds(),
				Border: decoration.Border,
			}, decoration.Background)
		}
	}

	t.content.Widget().Draw(tree, r, th, style, lay.Children()[0], cursor, viewport)
}
