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

// Space is empty room between siblings.
type Space[M any] struct {
	width  layout.Length
	height layout.Length
}

// NewSpace builds empty space with the given dimensions.
func NewSpace[M any](width, height layout.Length) *Space[M] {
	return &Space[M]{width: width, height: height}
}

// Element wraps the space for use as a child.
func (s *Space[M]) Element() core.Element[M] {
	return core.NewElement[M](s)
}

func (s *Space[M]) Tag() core.Tag {
	return core.TagNone()
}

func (s *Space[M]) State() core.State {
	return core.EmptyState
}

func (s *Space[M]) Children() []*core.Tree {
	return nil
}

func (s *Space[M]) Diff(*core.Tree) {}

func (s *Space[M]) Size() (layout.Length, layout.Length) {
	return s.width, s.height
}

func (s *Space[M]) Layout(_ *core.Tree, _ renderer.Renderer, limits layout.Limits) layout.Node {
	return layout.NewNode(limits.Resolve(s.width, s.height, geometry.Size{}))
}

func (s *Space[M]) Update(
	*core.Tree, event.Event, layout.Layout, mouse.Cursor,
	renderer.Renderer, clipboard.Clipboard, *core.Shell[M], geometry.Rectangle,
) {
}

func (s *Space[M]) Draw(
	*core.Tree, renderer.Renderer, *theme.Theme, renderer.Style,
	layout.Layout, mouse.Cursor, geometry.Rectangle,
) {
}

func (s *Space[M]) HashLayout(h *layout.Hasher) {
	s.width.Hash(h)
	s.height.Hash(h)
}
