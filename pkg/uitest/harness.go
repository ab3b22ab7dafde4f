package uitest

import (
	"github.com/glacier-ui/glacier/pkg/clipboard"
	"github.com/glacier-ui/glacier/pkg/core"
	"github.com/glacier-ui/glacier/pkg/event"
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/mouse"
	"github.com/glacier-ui/glacier/pkg/renderer"
	"github.com/glacier-ui/glacier/pkg/runtime"
	"github.com/glacier-ui/glacier/pkg/theme"
)

// Harness drives a view through full frame cycles with synthetic input. The
// view function is called once per frame, like an application would; state
// persists between frames through the runtime cache.
type Harness[M any] struct {
	view     func() core.Element[M]
	cache    runtime.Cache
	recorder *renderer.Recorder
	bounds   geometry.Size
	cursor   mouse.Cursor
	clip     clipboard.Clipboard
	theme    *theme.Theme

	messages []M
	statuses []event.Status
}

// NewHarness builds a harness over the given view at the given window size.
func NewHarness[M any](view func() core.Element[M], bounds geometry.Size) *Harness[M] {
	return &Harness[M]{
		view:     view,
		cache:    runtime.EmptyCache(),
		recorder: renderer.NewRecorder(bounds),
		bounds:   bounds,
		cursor:   mouse.Unavailable(),
		clip:     &clipboard.Memory{},
		theme:    &theme.Light,
	}
}

// Theme overrides the theme used for drawing.
func (h *Harness[M]) Theme(th *theme.Theme) *Harness[M] {
	h.theme = th
	return h
}

// Clipboard overrides the clipboard handed to widgets.
func (h *Harness[M]) Clipboard(clip clipboard.Clipboard) *Harness[M] {
	h.clip = clip
	return h
}

// Cursor returns the current synthetic cursor.
func (h *Harness[M]) Cursor() mouse.Cursor {
	return h.cursor
}

// Dispatch rebuilds the view and feeds the events through it in one frame.
// If a widget invalidates the view, the frame is rebuilt once immediately.
func (h *Harness[M]) Dispatch(events ...event.Event) runtime.State {
	ui := runtime.Build(h.view(), h.cache, h.recorder, h.bounds)

	state, statuses := ui.Update(events, h.cursor, h.recorder, h.clip, &h.messages)
	h.statuses = append(h.statuses, statuses...)
	h.cache = ui.IntoCache()

	if state.IsOutdated() {
		ui = runtime.Build(h.view(), h.cache, h.recorder, h.bounds)
		h.cache = ui.IntoCache()
	}

	return state
}

// MoveTo places the cursor and dispatches the matching move event.
func (h *Harness[M]) MoveTo(x, y float64) runtime.State {
	position := geometry.Pt(x, y)
	h.cursor = mouse.Available(position)
	return h.Dispatch(event.MouseMoved{Position: position})
}

// Press dispatches a left button press at the current cursor position.
func (h *Harness[M]) Press() runtime.State {
	return h.Dispatch(event.MousePressed{Button: mouse.ButtonLeft})
}

// Release dispatches a left button release at the current cursor position.
func (h *Harness[M]) Release() runtime.State {
	return h.Dispatch(event.MouseReleased{Button: mouse.ButtonLeft})
}

// Click moves the cursor to the position, presses, and releases.
func (h *Harness[M]) Click(x, y float64) {
	h.MoveTo(x, y)
	h.Press()
	h.Release()
}

// Draw renders one frame and returns the recorded operations and the
// requested cursor shape.
func (h *Harness[M]) Draw() ([]renderer.Op, mouse.Interaction) {
	h.recorder.Reset()

	ui := runtime.Build(h.view(), h.cache, h.recorder, h.bounds)
	interaction := ui.Draw(h.recorder, h.theme, renderer.Style{TextColor: h.theme.Palette.Text}, h.cursor)
	h.cache = ui.IntoCache()

	return h.recorder.Ops(), interaction
}

// Messages drains and returns the messages published so far.
func (h *Harness[M]) Messages() []M {
	messages := h.messages
	h.messages = nil
	return messages
}

// Statuses drains and returns the per-event dispatch statuses so far.
func (h *Harness[M]) Statuses() []event.Status {
	statuses := h.statuses
	h.statuses = nil
	return statuses
}
