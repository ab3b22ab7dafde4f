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

// Float lets its content escape the layout flow. While the scale is 1 and the
// translation is zero it is a transparent wrapper; once either departs, the
// content is promoted to an overlay drawn above everything else, transformed
// about its own center, while its place in the layout stays reserved.
type Float[M any] struct {
	content   core.Element[M]
	scale     float64
	translate func(bounds, viewport geometry.Rectangle) geometry.Vector
}

// NewFloat wraps the given content at scale 1 with no translation.
func NewFloat[M any](content core.Element[M]) *Float[M] {
	return &Float[M]{content: content, scale: 1}
}

// Scale sets the factor the content is scaled by about its center.
func (f *Float[M]) Scale(scale float64) *Float[M] {
	f.scale = scale
	return f
}

// Translate sets the displacement of the content, computed from its laid-out
// bounds and the viewport every frame.
func (f *Float[M]) Translate(translate func(bounds, viewport geometry.Rectangle) geometry.Vector) *Float[M] {
	f.translate = translate
	return f
}

// Element wraps the float for use as a child.
func (f *Float[M]) Element() core.Element[M] {
	return core.NewElement[M](f)
}

// transformation returns the active transformation and whether the content is
// currently floating at all.
func (f *Float[M]) transformation(bounds, viewport geometry.Rectangle) (geometry.Transformation, bool) {
	var translation geometry.Vector
	if f.translate != nil {
		translation = f.translate(bounds, viewport)
	}

	if f.scale == 1 && translation.IsZero() {
		return geometry.Identity, false
	}

	center := bounds.Center()
	return geometry.Translate(center.X+translation.X, center.Y+translation.Y).
		Mul(geometry.Scale(f.scale)).
		Mul(geometry.Translate(-center.X, -center.Y)), true
}

func (f *Float[M]) Tag() core.Tag {
	return core.TagNone()
}

func (f *Float[M]) State() core.State {
	return core.EmptyState
}

func (f *Float[M]) Children() []*core.Tree {
	return []*core.Tree{core.NewTree(f.content.Widget())}
}

func (f *Float[M]) Diff(tree *core.Tree) {
	tree.DiffChildren(core.Sources([]core.Element[M]{f.content}))
}

func (f *Float[M]) Size() (layout.Length, layout.Length) {
	return f.content.Widget().Size()
}

func (f *Float[M]) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return f.content.Widget().Layout(tree.Children[0], r, limits)
}

func (f *Float[M]) Update(
	tree *core.Tree,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
	viewport geometry.Rectangle,
) {
	if _, floating := f.transformation(lay.Bounds(), viewport); floating {
		return
	}
	f.content.Widget().Update(tree.Children[0], ev, lay, cursor, r, clip, shell, viewport)
}

func (f *Float[M]) Draw(
	tree *core.Tree,
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
) {
	if _, floating := f.transformation(lay.Bounds(), viewport); floating {
		return
	}
	f.content.Widget().Draw(tree.Children[0], r, th, style, lay, cursor, viewport)
}

func (f *Float[M]) MouseInteraction(
	tree *core.Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
) mouse.Interaction {
	if _, floating := f.transformation(lay.Bounds(), viewport); floating {
		return mouse.InteractionNone
	}
	return core.InteractionOf(f.content.Widget(), tree.Children[0], lay, cursor, viewport, r)
}

func (f *Float[M]) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	core.OperateWidget(f.content.Widget(), tree.Children[0], lay, r, op)
}

func (f *Float[M]) Overlay(
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	bounds := lay.Bounds().Add(translation)

	t, floating := f.transformation(bounds, viewport)
	if !floating {
		return core.OverlayOf(f.content.Widget(), tree.Children[0], lay, r, viewport, translation)
	}

	return core.NewOverlayElement[M](&floatOverlay[M]{
		content:        f.content.Widget(),
		tree:           tree.Children[0],
		bounds:         bounds,
		viewport:       viewport,
		transformation: t,
	})
}

func (f *Float[M]) HashLayout(h *layout.Hasher) {
	_ = core.HashLayout(f.content.Widget(), h)
}

func (f *Float[M]) CanHashLayout() bool {
	return widgetHashable(f.content.Widget())
}

// floatOverlay shows the content transformed. The overlay keeps the content
// laid out at its reserved spot; the transformation is applied when drawing
// and undone on cursor positions before handing events down.
type floatOverlay[M any] struct {
	content        core.Widget[M]
	tree           *core.Tree
	bounds         geometry.Rectangle
	viewport       geometry.Rectangle
	transformation geometry.Transformation
}

func (o *floatOverlay[M]) Layout(r renderer.Renderer, _ geometry.Size) layout.Node {
	node := o.content.Layout(o.tree, r, layout.LimitsWithin(o.bounds.Size()))
	return node.MoveTo(o.bounds.Position())
}

func (o *floatOverlay[M]) Update(
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
) {
	inverse := o.transformation.Inverse()
	o.content.Update(
		o.tree, ev, lay,
		cursor.Transform(inverse),
		r, clip, shell,
		inverse.ApplyRect(o.viewport),
	)
}

func (o *floatOverlay[M]) Draw(
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
) {
	inverse := o.transformation.Inverse()
	r.WithTransformation(o.transformation, func(r renderer.Renderer) {
		o.content.Draw(
			o.tree, r, th, style, lay,
			cursor.Transform(inverse),
			inverse.ApplyRect(o.viewport),
		)
	})
}

func (o *floatOverlay[M]) MouseInteraction(
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
) mouse.Interaction {
	inverse := o.transformation.Inverse()
	return core.InteractionOf(
		o.content, o.tree, lay,
		cursor.Transform(inverse),
		inverse.ApplyRect(o.viewport),
		r,
	)
}

func (o *floatOverlay[M]) Operate(lay layout.Layout, r renderer.Renderer, op core.Operation) {
	core.OperateWidget(o.content, o.tree, lay, r, op)
}

// IsOver hit-tests against the transformed bounds, so the floating content is
// hovered where it is seen, not where it is laid out.
func (o *floatOverlay[M]) IsOver(lay layout.Layout, _ renderer.Renderer, position geometry.Point) bool {
	return o.transformation.ApplyRect(lay.Bounds()).Contains(position)
}

func (o *floatOverlay[M]) Overlay(lay layout.Layout, r renderer.Renderer) *core.OverlayElement[M] {
	return core.OverlayOf(o.content, o.tree, lay, r, o.viewport, o.transformation.Translation)
}
