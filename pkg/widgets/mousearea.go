package widgets

import (
	"time"

	"github.com/glacier-ui/glacier/pkg/clipboard"
	"github.com/glacier-ui/glacier/pkg/core"
	"github.com/glacier-ui/glacier/pkg/event"
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/layout"
	"github.com/glacier-ui/glacier/pkg/mouse"
	"github.com/glacier-ui/glacier/pkg/renderer"
	"github.com/glacier-ui/glacier/pkg/theme"
)

// mouseAreaState tracks hover and the click chain across frames.
type mouseAreaState struct {
	isHovered      bool
	bounds         geometry.Rectangle
	cursorPosition *geometry.Point
	previousClick  *mouse.Click
}

// MouseArea emits messages on mouse events over its content. The content is
// updated first; the area only acts on events the content left uncaptured.
type MouseArea[M any] struct {
	content       core.Element[M]
	onPress       func() M
	onRelease     func() M
	onDoubleClick func() M
	onRightPress  func() M
	onMiddlePress func() M
	onScroll      func(mouse.ScrollDelta) M
	onEnter       func() M
	onMove        func(geometry.Point) M
	onExit        func() M
	interaction   mouse.Interaction
	now           func() time.Time
}

// NewMouseArea wraps the given content.
func NewMouseArea[M any](content core.Element[M]) *MouseArea[M] {
	return &MouseArea[M]{content: content, now: time.Now}
}

// OnPress sets the message built on a left button press.
func (a *MouseArea[M]) OnPress(f func() M) *MouseArea[M] {
	a.onPress = f
	return a
}

// OnRelease sets the message built on a left button release.
func (a *MouseArea[M]) OnRelease(f func() M) *MouseArea[M] {
	a.onRelease = f
	return a
}

// OnDoubleClick sets the message built on a double click. Press and release
// messages still fire as normal: the stream is press, release, press,
// double-click, release.
func (a *MouseArea[M]) OnDoubleClick(f func() M) *MouseArea[M] {
	a.onDoubleClick = f
	return a
}

// OnRightPress sets the message built on a right button press.
func (a *MouseArea[M]) OnRightPress(f func() M) *MouseArea[M] {
	a.onRightPress = f
	return a
}

// OnMiddlePress sets the message built on a middle button press.
func (a *MouseArea[M]) OnMiddlePress(f func() M) *MouseArea[M] {
	a.onMiddlePress = f
	return a
}

// OnScroll sets the message built when the scroll wheel is used.
func (a *MouseArea[M]) OnScroll(f func(mouse.ScrollDelta) M) *MouseArea[M] {
	a.onScroll = f
	return a
}

// OnEnter sets the message built when the cursor enters the area.
func (a *MouseArea[M]) OnEnter(f func() M) *MouseArea[M] {
	a.onEnter = f
	return a
}

// OnMove sets the message built when the cursor moves inside the area. The
// position is relative to the area origin.
func (a *MouseArea[M]) OnMove(f func(geometry.Point) M) *MouseArea[M] {
	a.onMove = f
	return a
}

// OnExit sets the message built when the cursor leaves the area.
func (a *MouseArea[M]) OnExit(f func() M) *MouseArea[M] {
	a.onExit = f
	return a
}

// Interaction sets the cursor shape shown while hovering the area.
func (a *MouseArea[M]) Interaction(interaction mouse.Interaction) *MouseArea[M] {
	a.interaction = interaction
	return a
}

// Clock overrides the time source used for click-chain detection.
func (a *MouseArea[M]) Clock(now func() time.Time) *MouseArea[M] {
	a.now = now
	return a
}

// Element wraps the area for use as a child.
func (a *MouseArea[M]) Element() core.Element[M] {
	return core.NewElement[M](a)
}

func (a *MouseArea[M]) Tag() core.Tag {
	return core.TagOf[mouseAreaState]()
}

func (a *MouseArea[M]) State() core.State {
	return core.NewState(&mouseAreaState{})
}

func (a *MouseArea[M]) Children() []*core.Tree {
	return []*core.Tree{core.NewTree(a.content.Widget())}
}

func (a *MouseArea[M]) Diff(tree *core.Tree) {
	tree.DiffChildren(core.Sources([]core.Element[M]{a.content}))
}

func (a *MouseArea[M]) Size() (layout.Length, layout.Length) {
	return a.content.Widget().Size()
}

func (a *MouseArea[M]) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return a.content.Widget().Layout(tree.Children[0], r, limits)
}

func (a *MouseArea[M]) Update(
	tree *core.Tree,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
	viewport geometry.Rectangle,
) {
	a.content.Widget().Update(tree.Children[0], ev, lay, cursor, r, clip, shell, viewport)

	if shell.IsEventCaptured() {
		return
	}

	a.update(tree, ev, lay, cursor, shell)
}

func (a *MouseArea[M]) update(
	tree *core.Tree,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	shell *core.Shell[M],
) {
	state := core.StateAs[mouseAreaState](tree.State)
	bounds := lay.Bounds()

	var cursorPosition *geometry.Point
	if p, ok := cursor.Position(); ok {
		cursorPosition = &p
	}

	if !samePosition(state.cursorPosition, cursorPosition) || state.bounds != bounds {
		wasHovered := state.isHovered
		state.isHovered = cursor.IsOver(bounds)
		state.cursorPosition = cursorPosition
		state.bounds = bounds

		switch {
		case a.onEnter != nil && state.isHovered && !wasHovered:
			shell.Publish(a.onEnter())
		case a.onMove != nil && state.isHovered:
			if position, ok := cursor.PositionIn(bounds); ok {
				shell.Publish(a.onMove(position))
			}
		case a.onExit != nil && !state.isHovered && wasHovered:
			shell.Publish(a.onExit())
		}
	}

	if !cursor.IsOver(bounds) {
		return
	}

	switch ev := ev.(type) {
	case event.MousePressed:
		switch ev.Button {
		case mouse.ButtonLeft:
			if a.onPress != nil {
				shell.Publish(a.onPress())
				shell.CaptureEvent()
			}
			if a.onDoubleClick != nil && cursorPosition != nil {
				click := mouse.NewClick(*cursorPosition, mouse.ButtonLeft, state.previousClick, a.now())
				if click.Kind() == mouse.ClickDouble {
					shell.Publish(a.onDoubleClick())
				}
				state.previousClick = &click

				// A single click still belongs to the chain we are
				// tracking, so it must not bubble to ancestors.
				shell.CaptureEvent()
			}
		case mouse.ButtonRight:
			if a.onRightPress != nil {
				shell.Publish(a.onRightPress())
				shell.CaptureEvent()
			}
		case mouse.ButtonMiddle:
			if a.onMiddlePress != nil {
				shell.Publish(a.onMiddlePress())
				shell.CaptureEvent()
			}
		}
	case event.MouseReleased:
		if ev.Button == mouse.ButtonLeft && a.onRelease != nil {
			shell.Publish(a.onRelease())
		}
	case event.MouseWheel:
		if a.onScroll != nil {
			shell.Publish(a.onScroll(ev.Delta))
			shell.CaptureEvent()
		}
	}
}

func (a *MouseArea[M]) Draw(
	tree *core.Tree,
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
) {
	a.content.Widget().Draw(tree.Children[0], r, th, style, lay, cursor, viewport)
}

func (a *MouseArea[M]) MouseInteraction(
	tree *core.Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
) mouse.Interaction {
	content := core.InteractionOf(a.content.Widget(), tree.Children[0], lay, cursor, viewport, r)
	if content == mouse.InteractionNone && a.interaction != mouse.InteractionNone && cursor.IsOver(lay.Bounds()) {
		return a.interaction
	}
	return content
}

func (a *MouseArea[M]) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	core.OperateWidget(a.content.Widget(), tree.Children[0], lay, r, op)
}

func (a *MouseArea[M]) Overlay(
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	return core.OverlayOf(a.content.Widget(), tree.Children[0], lay, r, viewport, translation)
}

func (a *MouseArea[M]) HashLayout(h *layout.Hasher) {
	_ = core.HashLayout(a.content.Widget(), h)
}

func (a *MouseArea[M]) CanHashLayout() bool {
	return widgetHashable(a.content.Widget())
}

func samePosition(a, b *geometry.Point) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
