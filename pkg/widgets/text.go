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

// defaultTextSize is the line height used when none is set.
const defaultTextSize = 16.0

// Text is a single run of text.
type Text[M any] struct {
	content string
	size    float64
	color   graphics.Color
	hasTint bool
	width   layout.Length
	height  layout.Length
}

// NewText builds a text run.
func NewText[M any](content string) *Text[M] {
	return &Text[M]{
		content: content,
		size:    defaultTextSize,
		width:   layout.Shrink,
		height:  layout.Shrink,
	}
}

// TextSize sets the line height in pixels.
func (t *Text[M]) TextSize(size float64) *Text[M] {
	t.size = size
	return t
}

// Color overrides the inherited text color.
func (t *Text[M]) Color(color graphics.Color) *Text[M] {
	t.color = color
	t.hasTint = true
	return t
}

// Width sets the width strategy.
func (t *Text[M]) Width(width layout.Length) *Text[M] {
	t.width = width
	return t
}

// Element wraps the text for use as a child.
func (t *Text[M]) Element() core.Element[M] {
	return core.NewElement[M](t)
}

func (t *Text[M]) Tag() core.Tag {
	return core.TagNone()
}

func (t *Text[M]) State() core.State {
	return core.EmptyState
}

func (t *Text[M]) Children() []*core.Tree {
	return nil
}

func (t *Text[M]) Diff(*core.Tree) {}

func (t *Text[M]) Size() (layout.Length, layout.Length) {
	return t.width, t.height
}

func (t *Text[M]) Layout(_ *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	intrinsic := r.MeasureText(t.content, t.size)
	return layout.NewNode(limits.Width(t.width).Height(t.height).Resolve(t.width, t.height, intrinsic))
}

func (t *Text[M]) Update(
	*core.Tree, event.Event, layout.Layout, mouse.Cursor,
	renderer.Renderer, clipboard.Clipboard, *core.Shell[M], geometry.Rectangle,
) {
}

func (t *Text[M]) Draw(
	_ *core.Tree,
	r renderer.Renderer,
	_ *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	_ mouse.Cursor,
	_ geometry.Rectangle,
) {
	color := style.TextColor
	if t.hasTint {
		color = t.color
	}
	r.FillText(renderer.Text{
		Content: t.content,
		Size:    t.size,
		Color:   color,
	}, lay.Bounds().Position())
}

func (t *Text[M]) HashLayout(h *layout.Hasher) {
	h.WriteString(t.content)
	h.WriteFloat64(t.size)
	t.width.Hash(h)
	t.height.Hash(h)
}
