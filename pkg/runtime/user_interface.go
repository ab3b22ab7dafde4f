package runtime

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

// Cache is what survives of a user interface between frames: the widget
// state tree and the last layout with the hash it was computed for.
type Cache struct {
	tree      *core.Tree
	hash      uint64
	hashValid bool
	layout    layout.Node
	bounds    geometry.Size
}

// EmptyCache returns the cache for a user interface that has never been
// built.
func EmptyCache() Cache {
	return Cache{}
}

// State is the outcome of an update pass.
type State struct {
	outdated bool
	redraw   core.RedrawRequest
}

// IsOutdated reports whether a widget invalidated the view: the application
// must rebuild the user interface before drawing.
func (s State) IsOutdated() bool {
	return s.outdated
}

// RedrawRequest returns when the next frame should be produced.
func (s State) RedrawRequest() core.RedrawRequest {
	return s.redraw
}

// UserInterface is a built widget tree ready for event dispatch and drawing.
// Build one from the view every frame, feed it the frame's events, draw it,
// and turn it back into a Cache for the next frame.
type UserInterface[M any] struct {
	root      core.Element[M]
	tree      *core.Tree
	base      layout.Node
	bounds    geometry.Size
	hash      uint64
	hashValid bool

	overlay       *Nested[M]
	overlayLayout layout.Node
}

// Build diffs the view against the cached state tree and lays it out. The
// layout pass is skipped when the view's layout hash and the bounds both
// match the cached frame.
func Build[M any](
	root core.Element[M],
	cache Cache,
	r renderer.Renderer,
	bounds geometry.Size,
) *UserInterface[M] {
	tree := cache.tree
	if tree == nil {
		tree = core.NewTree(root.Widget())
	} else {
		tree.Diff(root.Widget())
	}

	hasher := layout.NewHasher()
	hashValid := core.HashLayout(root.Widget(), hasher)

	var hash uint64
	if hashValid {
		hash = hasher.Sum()
	}

	ui := &UserInterface[M]{
		root:      root,
		tree:      tree,
		bounds:    bounds,
		hash:      hash,
		hashValid: hashValid,
	}

	if hashValid && cache.hashValid && cache.hash == hash && cache.bounds == bounds {
		ui.base = cache.layout
	} else {
		ui.base = root.Widget().Layout(tree, r, layout.LimitsWithin(bounds))
	}

	ui.rebuildOverlay(r)
	return ui
}

// relayout recomputes the base layout and the overlay chain after a widget
// invalidated the current layout mid-dispatch.
func (ui *UserInterface[M]) relayout(r renderer.Renderer) {
	ui.base = ui.root.Widget().Layout(ui.tree, r, layout.LimitsWithin(ui.bounds))
	ui.rebuildOverlay(r)
}

func (ui *UserInterface[M]) rebuildOverlay(r renderer.Renderer) {
	viewport := geometry.RectWithSize(ui.bounds)

	element := core.OverlayOf(
		ui.root.Widget(), ui.tree,
		layout.NewLayout(&ui.base),
		r, viewport, geometry.Vector{},
	)
	if element == nil {
		ui.overlay = nil
		return
	}

	ui.overlay = NewNested(element)
	ui.overlayLayout = ui.overlay.Layout(r, ui.bounds)
}

// Update dispatches the events. Each event goes through the overlay chain
// first; the base tree sees it only if no overlay captured it, and with an
// unavailable cursor while the cursor is over an overlay. Published messages
// are appended to messages.
func (ui *UserInterface[M]) Update(
	events []event.Event,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	messages *[]M,
) (State, []event.Status) {
	viewport := geometry.RectWithSize(ui.bounds)
	statuses := make([]event.Status, 0, len(events))

	var state State

	for _, ev := range events {
		var shell core.Shell[M]

		overlayStatus := event.StatusIgnored
		baseCursor := cursor

		if ui.overlay != nil {
			ui.overlay.Update(ev, layout.NewLayout(&ui.overlayLayout), cursor, r, clip, &shell)
			shell.RevalidateLayout(func() { ui.relayout(r) })

			if position, ok := cursor.Position(); ok && ui.overlay != nil &&
				ui.overlay.IsOver(layout.NewLayout(&ui.overlayLayout), r, position) {
				baseCursor = mouse.Unavailable()
			}
			overlayStatus = shell.EventStatus()
		}

		if overlayStatus != event.StatusCaptured {
			ui.root.Widget().Update(
				ui.tree, ev, layout.NewLayout(&ui.base),
				baseCursor, r, clip, &shell, viewport,
			)
			shell.RevalidateLayout(func() { ui.relayout(r) })
		}

		statuses = append(statuses, shell.EventStatus())
		*messages = append(*messages, shell.Messages()...)

		state.redraw = state.redraw.Merge(shell.RedrawRequest())
		if shell.AreWidgetsInvalid() {
			state.outdated = true
		}
	}

	return state, statuses
}

// Draw paints the base tree and the overlay chain on top, returning the
// cursor shape to show. While the cursor is over an overlay, the base tree
// draws without hover feedback.
func (ui *UserInterface[M]) Draw(
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	cursor mouse.Cursor,
) mouse.Interaction {
	viewport := geometry.RectWithSize(ui.bounds)

	baseCursor := cursor
	overOverlay := false
	if ui.overlay != nil {
		if position, ok := cursor.Position(); ok &&
			ui.overlay.IsOver(layout.NewLayout(&ui.overlayLayout), r, position) {
			baseCursor = mouse.Unavailable()
			overOverlay = true
		}
	}

	ui.root.Widget().Draw(ui.tree, r, th, style, layout.NewLayout(&ui.base), baseCursor, viewport)

	if ui.overlay != nil {
		r.WithLayer(viewport, func(r renderer.Renderer) {
			ui.overlay.Draw(r, th, style, layout.NewLayout(&ui.overlayLayout), cursor)
		})

		if overOverlay {
			return ui.overlay.MouseInteraction(layout.NewLayout(&ui.overlayLayout), cursor, r)
		}
	}

	return core.InteractionOf(
		ui.root.Widget(), ui.tree,
		layout.NewLayout(&ui.base), cursor, viewport, r,
	)
}

// Operate applies a widget operation to the whole interface, overlays
// included.
func (ui *UserInterface[M]) Operate(r renderer.Renderer, op core.Operation) {
	core.OperateWidget(ui.root.Widget(), ui.tree, layout.NewLayout(&ui.base), r, op)

	if ui.overlay != nil {
		ui.overlay.Operate(layout.NewLayout(&ui.overlayLayout), r, op)
	}
}

// IntoCache releases the interface back into a cache for the next frame.
func (ui *UserInterface[M]) IntoCache() Cache {
	return Cache{
		tree:      ui.tree,
		hash:      ui.hash,
		hashValid: ui.hashValid,
		layout:    ui.base,
		bounds:    ui.bounds,
	}
}
