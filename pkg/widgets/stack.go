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

// Stack displays children on top of each other. The first child is the base
// layer and dictates the intrinsic size; later children stack above it.
type Stack[M any] struct {
	children []core.Element[M]
	width    layout.Length
	height   layout.Length
}

// NewStack builds a stack from base to top-most layer.
func NewStack[M any](children ...core.Element[M]) *Stack[M] {
	s := &Stack[M]{
		width:  layout.Shrink,
		height: layout.Shrink,
	}
	for _, child := range children {
		s.Push(child)
	}
	return s
}

// Push appends a layer on top of the stack.
func (s *Stack[M]) Push(child core.Element[M]) *Stack[M] {
	if len(s.children) == 0 {
		w, h := core.SizeHintOf(child.Widget())
		if w.IsFill() {
			s.width = layout.Fill
		}
		if h.IsFill() {
			s.height = layout.Fill
		}
	}
	s.children = append(s.children, child)
	return s
}

// Width sets the width strategy.
func (s *Stack[M]) Width(width layout.Length) *Stack[M] {
	s.width = width
	return s
}

// Height sets the height strategy.
func (s *Stack[M]) Height(height layout.Length) *Stack[M] {
	s.height = height
	return s
}

// Element wraps the stack for use as a child.
func (s *Stack[M]) Element() core.Element[M] {
	return core.NewElement[M](s)
}

func (s *Stack[M]) Tag() core.Tag {
	return core.TagNone()
}

func (s *Stack[M]) State() core.State {
	return core.EmptyState
}

func (s *Stack[M]) Children() []*core.Tree {
	trees := make([]*core.Tree, len(s.children))
	for i, child := range s.children {
		trees[i] = core.NewTree(child.Widget())
	}
	return trees
}

func (s *Stack[M]) Diff(tree *core.Tree) {
	tree.DiffChildren(core.Sources(s.children))
}

func (s *Stack[M]) Size() (layout.Length, layout.Length) {
	return s.width, s.height
}

// Layout sizes the stack from its base layer; upper layers lay out within
// the resulting bounds.
func (s *Stack[M]) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(s.width).Height(s.height)

	if len(s.children) == 0 {
		return layout.NewNode(limits.Resolve(s.width, s.height, geometry.Size{}))
	}

	base := s.children[0].Widget().Layout(tree.Children[0], r, limits)
	size := limits.Resolve(s.width, s.height, base.Size())
	layerLimits := layout.NewLimits(geometry.Size{}, size)

	nodes := make([]layout.Node, len(s.children))
	nodes[0] = base
	for i := 1; i < len(s.children); i++ {
		nodes[i] = s.children[i].Widget().Layout(tree.Children[i], r, layerLimits)
	}

	return layout.NodeWithChildren(size, nodes)
}

// Update dispatches top-most layer first. Once an interactive hovered layer
// has seen the event, lower layers receive a levitated cursor and stop
// treating themselves as hovered targets.
func (s *Stack[M]) Update(
	tree *core.Tree,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
	viewport geometry.Rectangle,
) {
	isOver := cursor.IsOver(lay.Bounds())
	children := lay.Children()

	for i := len(s.children) - 1; i >= 0; i-- {
		s.children[i].Widget().Update(tree.Children[i], ev, children[i], cursor, r, clip, shell, viewport)

		if shell.IsEventCaptured() {
			return
		}

		if i > 0 && isOver && !cursor.IsLevitating() {
			interaction := core.InteractionOf(
				s.children[i].Widget(), tree.Children[i], children[i], cursor, viewport, r,
			)
			if interaction != mouse.InteractionNone {
				cursor = cursor.Levitate()
			}
		}
	}
}

// MouseInteraction returns the interaction of the top-most layer that
// claims one.
func (s *Stack[M]) MouseInteraction(
	tree *core.Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
) mouse.Interaction {
	children := lay.Children()
	for i := len(s.children) - 1; i >= 0; i-- {
		interaction := core.InteractionOf(
			s.children[i].Widget(), tree.Children[i], children[i], cursor, viewport, r,
		)
		if interaction != mouse.InteractionNone {
			return interaction
		}
	}
	return mouse.InteractionNone
}

// Draw paints base to top. Layers occluded by a hovered interactive layer
// above them draw with an unavailable cursor so they do not show hover
// feedback underneath it.
func (s *Stack[M]) Draw(
	tree *core.Tree,
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
) {
	clipped := lay.Bounds().Intersection(viewport)
	if clipped.IsEmpty() {
		return
	}

	children := lay.Children()

	layersBelow := 0
	if cursor.IsOver(lay.Bounds()) {
		for i := len(s.children) - 1; i >= 0; i-- {
			interaction := core.InteractionOf(
				s.children[i].Widget(), tree.Children[i], children[i], cursor, viewport, r,
			)
			if interaction != mouse.InteractionNone {
				layersBelow = i
				break
			}
		}
	}

	drawLayer := func(i int, layerCursor mouse.Cursor) {
		if i > 0 {
			r.WithLayer(clipped, func(r renderer.Renderer) {
				s.children[i].Widget().Draw(tree.Children[i], r, th, style, children[i], layerCursor, clipped)
			})
		} else {
			s.children[i].Widget().Draw(tree.Children[i], r, th, style, children[i], layerCursor, clipped)
		}
	}

	for i := 0; i < layersBelow; i++ {
		drawLayer(i, mouse.Unavailable())
	}
	for i := layersBelow; i < len(s.children); i++ {
		drawLayer(i, cursor)
	}
}

func (s *Stack[M]) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	op.Container("", lay.Bounds(), func(op core.Operation) {
		for i, child := range lay.Children() {
			core.OperateWidget(s.children[i].Widget(), tree.Children[i], child, r, op)
		}
	})
}

func (s *Stack[M]) Overlay(
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	return overlayFromChildren(s.children, tree, lay, r, viewport, translation)
}

func (s *Stack[M]) HashLayout(h *layout.Hasher) {
	s.width.Hash(h)
	s.height.Hash(h)
	_ = hashFlexChildren(s.children, h)
}

func (s *Stack[M]) CanHashLayout() bool {
	return childrenHashable(s.children)
}
