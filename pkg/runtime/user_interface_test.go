package runtime

import (
	"testing"
	"time"

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

type panelState struct{}

// panel is a root widget for exercising the frame cycle: it counts layout
// passes, reports cursor availability on moves, and optionally spawns a
// popup overlay in the top-right corner.
type panel struct {
	label       string
	layoutCalls *int
	hashable    bool
	popup       *popup
}

func newPanel(label string, layoutCalls *int) *panel {
	return &panel{label: label, layoutCalls: layoutCalls, hashable: true}
}

func (p *panel) element() core.Element[string] {
	return core.NewElement[string](p)
}

func (p *panel) Tag() core.Tag          { return core.TagOf[panelState]() }
func (p *panel) State() core.State      { return core.NewState(&panelState{}) }
func (p *panel) Children() []*core.Tree { return nil }
func (p *panel) Diff(*core.Tree)        {}

func (p *panel) Size() (layout.Length, layout.Length) {
	return layout.Fill, layout.Fill
}

func (p *panel) Layout(_ *core.Tree, _ renderer.Renderer, limits layout.Limits) layout.Node {
	*p.layoutCalls++
	return layout.NewNode(limits.Max)
}

func (p *panel) HashLayout(h *layout.Hasher) {
	h.WriteString(p.label)
}

func (p *panel) CanHashLayout() bool {
	return p.hashable
}

func (p *panel) Update(
	_ *core.Tree,
	ev event.Event,
	_ layout.Layout,
	cursor mouse.Cursor,
	_ renderer.Renderer,
	_ clipboard.Clipboard,
	shell *core.Shell[string],
	viewport geometry.Rectangle,
) {
	switch e := ev.(type) {
	case event.MousePressed:
		if position, ok := cursor.Position(); ok && viewport.Contains(position) {
			shell.Publish("panel:press")
			shell.CaptureEvent()
		}
	case event.MouseMoved:
		if _, ok := cursor.Position(); ok {
			shell.Publish("panel:move")
		} else {
			shell.Publish("panel:blind-move")
		}
	case event.MouseWheel:
		shell.InvalidateWidgets()
	case event.RedrawRequested:
		shell.RequestRedrawAt(e.At)
	}
}

func (p *panel) Draw(
	_ *core.Tree,
	r renderer.Renderer,
	th *theme.Theme,
	_ renderer.Style,
	lay layout.Layout,
	_ mouse.Cursor,
	_ geometry.Rectangle,
) {
	r.FillQuad(renderer.Quad{Bounds: lay.Bounds()}, th.Palette.Background)
}

func (p *panel) Overlay(
	*core.Tree, layout.Layout, renderer.Renderer, geometry.Rectangle, geometry.Vector,
) *core.OverlayElement[string] {
	if p.popup == nil {
		return nil
	}
	return core.NewOverlayElement[string](p.popup)
}

// popup is a 50x50 overlay anchored at (100, 0) that captures presses over
// itself.
type popup struct{}

func (o *popup) Layout(_ renderer.Renderer, _ geometry.Size) layout.Node {
	return layout.NewNode(geometry.Sz(50, 50)).MoveTo(geometry.Pt(100, 0))
}

func (o *popup) Update(
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	_ renderer.Renderer,
	_ clipboard.Clipboard,
	shell *core.Shell[string],
) {
	if _, ok := ev.(event.MousePressed); !ok {
		return
	}
	if position, ok := cursor.Position(); ok && lay.Bounds().Contains(position) {
		shell.Publish("popup:press")
		shell.CaptureEvent()
	}
}

func (o *popup) Draw(
	r renderer.Renderer,
	_ *theme.Theme,
	_ renderer.Style,
	lay layout.Layout,
	_ mouse.Cursor,
) {
	r.FillQuad(renderer.Quad{Bounds: lay.Bounds()}, graphics.ColorBlack)
}

func (o *popup) MouseInteraction(layout.Layout, mouse.Cursor, renderer.Renderer) mouse.Interaction {
	return mouse.InteractionPointer
}

// TestBuild_ReusesLayoutOnMatchingHash verifies that a second frame with the
// same view hash and bounds skips the layout pass entirely.
func TestBuild_ReusesLayoutOnMatchingHash(t *testing.T) {
	calls := 0
	r := renderer.NewRecorder(geometry.Sz(200, 100))
	bounds := geometry.Sz(200, 100)

	ui := Build(newPanel("a", &calls).element(), EmptyCache(), r, bounds)
	if calls != 1 {
		t.Fatalf("layout calls after first build = %d, want 1", calls)
	}

	Build(newPanel("a", &calls).element(), ui.IntoCache(), r, bounds)
	if calls != 1 {
		t.Errorf("layout calls after cached build = %d, want still 1", calls)
	}
}

// TestBuild_RelayoutsWhenViewChanges verifies that a changed layout hash
// forces a fresh layout pass.
func TestBuild_RelayoutsWhenViewChanges(t *testing.T) {
	calls := 0
	r := renderer.NewRecorder(geometry.Sz(200, 100))
	bounds := geometry.Sz(200, 100)

	ui := Build(newPanel("a", &calls).element(), EmptyCache(), r, bounds)
	Build(newPanel("b", &calls).element(), ui.IntoCache(), r, bounds)

	if calls != 2 {
		t.Errorf("layout calls = %d, want 2", calls)
	}
}

// TestBuild_RelayoutsWhenBoundsChange verifies that a window resize defeats
// the cache even when the view is unchanged.
func TestBuild_RelayoutsWhenBoundsChange(t *testing.T) {
	calls := 0
	r := renderer.NewRecorder(geometry.Sz(200, 100))

	ui := Build(newPanel("a", &calls).element(), EmptyCache(), r, geometry.Sz(200, 100))
	Build(newPanel("a", &calls).element(), ui.IntoCache(), r, geometry.Sz(300, 100))

	if calls != 2 {
		t.Errorf("layout calls = %d, want 2", calls)
	}
}

// TestBuild_UnhashableViewAlwaysLayouts verifies that views opting out of
// layout hashing never reuse a cached layout.
func TestBuild_UnhashableViewAlwaysLayouts(t *testing.T) {
	calls := 0
	r := renderer.NewRecorder(geometry.Sz(200, 100))
	bounds := geometry.Sz(200, 100)

	opaque := newPanel("a", &calls)
	opaque.hashable = false
	ui := Build(opaque.element(), EmptyCache(), r, bounds)

	again := newPanel("a", &calls)
	again.hashable = false
	Build(again.element(), ui.IntoCache(), r, bounds)

	if calls != 2 {
		t.Errorf("layout calls = %d, want 2", calls)
	}
}

// TestUpdate_DispatchesEventsToBase verifies message collection and the
// per-event status report.
func TestUpdate_DispatchesEventsToBase(t *testing.T) {
	calls := 0
	r := renderer.NewRecorder(geometry.Sz(200, 100))
	ui := Build(newPanel("a", &calls).element(), EmptyCache(), r, geometry.Sz(200, 100))

	var messages []string
	_, statuses := ui.Update(
		[]event.Event{event.MousePressed{Button: mouse.ButtonLeft}},
		mouse.Available(geometry.Pt(50, 50)),
		r, &clipboard.Memory{}, &messages,
	)

	if len(messages) != 1 || messages[0] != "panel:press" {
		t.Errorf("messages = %v, want [panel:press]", messages)
	}
	if len(statuses) != 1 || statuses[0] != event.StatusCaptured {
		t.Errorf("statuses = %v, want [captured]", statuses)
	}
}

// TestUpdate_OverlayCapturesBeforeBase verifies that a press over the overlay
// never reaches the base tree.
func TestUpdate_OverlayCapturesBeforeBase(t *testing.T) {
	calls := 0
	root := newPanel("a", &calls)
	root.popup = &popup{}

	r := renderer.NewRecorder(geometry.Sz(200, 100))
	ui := Build(root.element(), EmptyCache(), r, geometry.Sz(200, 100))

	var messages []string
	_, statuses := ui.Update(
		[]event.Event{event.MousePressed{Button: mouse.ButtonLeft}},
		mouse.Available(geometry.Pt(120, 20)),
		r, &clipboard.Memory{}, &messages,
	)

	if len(messages) != 1 || messages[0] != "popup:press" {
		t.Errorf("messages = %v, want [popup:press]", messages)
	}
	if statuses[0] != event.StatusCaptured {
		t.Errorf("status = %v, want captured", statuses[0])
	}
}

// TestUpdate_BaseLosesHoverUnderOverlay verifies that the base tree sees an
// unavailable cursor while the overlay is hovered, even for events the
// overlay ignores.
func TestUpdate_BaseLosesHoverUnderOverlay(t *testing.T) {
	calls := 0
	root := newPanel("a", &calls)
	root.popup = &popup{}

	r := renderer.NewRecorder(geometry.Sz(200, 100))
	ui := Build(root.element(), EmptyCache(), r, geometry.Sz(200, 100))

	var messages []string
	ui.Update(
		[]event.Event{event.MouseMoved{Position: geometry.Pt(120, 20)}},
		mouse.Available(geometry.Pt(120, 20)),
		r, &clipboard.Memory{}, &messages,
	)

	if len(messages) != 1 || messages[0] != "panel:blind-move" {
		t.Errorf("messages = %v, want [panel:blind-move]", messages)
	}
}

// TestUpdate_CursorOffOverlayReachesBase verifies normal dispatch away from
// the overlay.
func TestUpdate_CursorOffOverlayReachesBase(t *testing.T) {
	calls := 0
	root := newPanel("a", &calls)
	root.popup = &popup{}

	r := renderer.NewRecorder(geometry.Sz(200, 100))
	ui := Build(root.element(), EmptyCache(), r, geometry.Sz(200, 100))

	var messages []string
	ui.Update(
		[]event.Event{event.MousePressed{Button: mouse.ButtonLeft}},
		mouse.Available(geometry.Pt(20, 80)),
		r, &clipboard.Memory{}, &messages,
	)

	if len(messages) != 1 || messages[0] != "panel:press" {
		t.Errorf("messages = %v, want [panel:press]", messages)
	}
}

// TestUpdate_InvalidateWidgetsMarksOutdated verifies the rebuild signal
// surfaces through the update state.
func TestUpdate_InvalidateWidgetsMarksOutdated(t *testing.T) {
	calls := 0
	r := renderer.NewRecorder(geometry.Sz(200, 100))
	ui := Build(newPanel("a", &calls).element(), EmptyCache(), r, geometry.Sz(200, 100))

	var messages []string
	state, _ := ui.Update(
		[]event.Event{event.MouseWheel{Delta: mouse.ScrollDelta{Y: -1}}},
		mouse.Available(geometry.Pt(50, 50)),
		r, &clipboard.Memory{}, &messages,
	)

	if !state.IsOutdated() {
		t.Error("state should be outdated after a widget invalidation")
	}
}

// TestUpdate_RedrawRequestsKeepEarliest verifies that redraw requests from
// separate events merge to the earliest instant.
func TestUpdate_RedrawRequestsKeepEarliest(t *testing.T) {
	calls := 0
	r := renderer.NewRecorder(geometry.Sz(200, 100))
	ui := Build(newPanel("a", &calls).element(), EmptyCache(), r, geometry.Sz(200, 100))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var messages []string
	state, _ := ui.Update(
		[]event.Event{
			event.RedrawRequested{At: base.Add(time.Second)},
			event.RedrawRequested{At: base},
		},
		mouse.Unavailable(),
		r, &clipboard.Memory{}, &messages,
	)

	at, ok := state.RedrawRequest().At()
	if !ok || !at.Equal(base) {
		t.Errorf("redraw at = %v, %v, want %v", at, ok, base)
	}
}

// TestDraw_OverlayDrawsOnOwnLayer verifies that the overlay paints above the
// base tree and supplies the cursor shape while hovered.
func TestDraw_OverlayDrawsOnOwnLayer(t *testing.T) {
	calls := 0
	root := newPanel("a", &calls)
	root.popup = &popup{}

	r := renderer.NewRecorder(geometry.Sz(200, 100))
	ui := Build(root.element(), EmptyCache(), r, geometry.Sz(200, 100))

	interaction := ui.Draw(r, &theme.Light, renderer.Style{}, mouse.Available(geometry.Pt(120, 20)))

	if interaction != mouse.InteractionPointer {
		t.Errorf("interaction = %v, want pointer from the overlay", interaction)
	}

	ops := r.Ops()
	if len(ops) != 2 {
		t.Fatalf("ops = %d, want base quad and popup quad", len(ops))
	}
	baseOp := ops[0].(renderer.QuadOp)
	popupOp := ops[1].(renderer.QuadOp)
	if baseOp.Layer != 0 {
		t.Errorf("base layer = %d, want 0", baseOp.Layer)
	}
	if popupOp.Layer == baseOp.Layer {
		t.Error("popup should draw on its own layer")
	}
	if popupOp.Quad.Bounds != geometry.RectFromXYWH(100, 0, 50, 50) {
		t.Errorf("popup bounds = %v, want (100, 0, 50, 50)", popupOp.Quad.Bounds)
	}
}

// TestDraw_BaseInteractionWithoutOverlayHover verifies the cursor shape comes
// from the base tree while the overlay is not hovered.
func TestDraw_BaseInteractionWithoutOverlayHover(t *testing.T) {
	calls := 0
	root := newPanel("a", &calls)
	root.popup = &popup{}

	r := renderer.NewRecorder(geometry.Sz(200, 100))
	ui := Build(root.element(), EmptyCache(), r, geometry.Sz(200, 100))

	interaction := ui.Draw(r, &theme.Light, renderer.Style{}, mouse.Available(geometry.Pt(20, 80)))

	if interaction != mouse.InteractionNone {
		t.Errorf("interaction = %v, want none", interaction)
	}
}
