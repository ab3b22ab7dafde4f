package core

import (
	"time"

	"github.com/glacier-ui/glacier/pkg/event"
)

type redrawKind int

const (
	redrawNone redrawKind = iota
	redrawAt
	redrawImmediate
)

// RedrawRequest is when the runtime should produce the next frame.
type RedrawRequest struct {
	kind redrawKind
	at   time.Time
}

// RedrawNow requests an immediate next frame.
func RedrawNow() RedrawRequest {
	return RedrawRequest{kind: redrawImmediate}
}

// RedrawAt requests a frame at the given instant.
func RedrawAt(at time.Time) RedrawRequest {
	return RedrawRequest{kind: redrawAt, at: at}
}

// At returns the requested instant. Immediate requests report ok with a zero
// time; absent requests report !ok.
func (r RedrawRequest) At() (time.Time, bool) {
	return r.at, r.kind != redrawNone
}

// IsImmediate reports whether an immediate frame was requested.
func (r RedrawRequest) IsImmediate() bool {
	return r.kind == redrawImmediate
}

// Merge keeps the earlier of two requests.
func (r RedrawRequest) Merge(other RedrawRequest) RedrawRequest {
	switch {
	case r.kind == redrawImmediate || other.kind == redrawImmediate:
		return RedrawRequest{kind: redrawImmediate}
	case r.kind == redrawNone:
		return other
	case other.kind == redrawNone:
		return r
	case other.at.Before(r.at):
		return other
	default:
		return r
	}
}

// Shell is how a widget talks back to the runtime during one event
// dispatch: publishing messages, capturing the event, scheduling redraws,
// and invalidating layout or the whole widget tree.
type Shell[M any] struct {
	messages       []M
	status         event.Status
	redraw         RedrawRequest
	layoutInvalid  bool
	widgetsInvalid bool
}

// Publish queues a message for the application.
func (s *Shell[M]) Publish(message M) {
	s.messages = append(s.messages, message)
}

// Messages returns the queued messages.
func (s *Shell[M]) Messages() []M {
	return s.messages
}

// CaptureEvent marks the current event as consumed; ancestors and siblings
// must not act on it.
func (s *Shell[M]) CaptureEvent() {
	s.status = event.StatusCaptured
}

// IsEventCaptured reports whether the current event was consumed.
func (s *Shell[M]) IsEventCaptured() bool {
	return s.status == event.StatusCaptured
}

// EventStatus returns the dispatch status of the current event.
func (s *Shell[M]) EventStatus() event.Status {
	return s.status
}

// RequestRedraw asks for an immediate next frame.
func (s *Shell[M]) RequestRedraw() {
	s.redraw = s.redraw.Merge(RedrawNow())
}

// RequestRedrawAt asks for a frame at the given instant, keeping the
// earliest instant requested so far.
func (s *Shell[M]) RequestRedrawAt(at time.Time) {
	s.redraw = s.redraw.Merge(RedrawAt(at))
}

// RedrawRequest returns the pending redraw request.
func (s *Shell[M]) RedrawRequest() RedrawRequest {
	return s.redraw
}

// InvalidateLayout marks the current layout as stale; the runtime relayouts
// before dispatching further events.
func (s *Shell[M]) InvalidateLayout() {
	s.layoutInvalid = true
}

// IsLayoutInvalid reports whether a relayout is pending.
func (s *Shell[M]) IsLayoutInvalid() bool {
	return s.layoutInvalid
}

// RevalidateLayout runs f if a relayout is pending, then clears the flag.
func (s *Shell[M]) RevalidateLayout(f func()) {
	if s.layoutInvalid {
		f()
		s.layoutInvalid = false
	}
}

// InvalidateWidgets asks the runtime to rebuild the view before the next
// frame: the widget tree itself no longer matches the application state.
func (s *Shell[M]) InvalidateWidgets() {
	s.widgetsInvalid = true
}

// AreWidgetsInvalid reports whether a view rebuild is pending.
func (s *Shell[M]) AreWidgetsInvalid() bool {
	return s.widgetsInvalid
}

// MergeShell folds a child dispatch shell into its parent, translating
// messages through f. Capture status, redraw requests, and invalidation
// flags all propagate.
func MergeShell[M, N any](dst *Shell[M], src *Shell[N], f func(N) M) {
	for _, message := range src.messages {
		dst.Publish(f(message))
	}
	dst.status = dst.status.Merge(src.status)
	dst.redraw = dst.redraw.Merge(src.redraw)
	dst.layoutInvalid = dst.layoutInvalid || src.layoutInvalid
	dst.widgetsInvalid = dst.widgetsInvalid || src.widgetsInvalid
}
