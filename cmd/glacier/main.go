// Package main runs a headless demonstration of the glacier widget runtime.
// It builds a small pane-grid application, feeds it a scripted sequence of
// input frames, and prints the messages and draw operations each frame
// produces. Useful for exercising the full frame cycle without a window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/glacier-ui/glacier/pkg/animation"
	"github.com/glacier-ui/glacier/pkg/clipboard"
	"github.com/glacier-ui/glacier/pkg/core"
	"github.com/glacier-ui/glacier/pkg/errors"
	"github.com/glacier-ui/glacier/pkg/event"
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/layout"
	"github.com/glacier-ui/glacier/pkg/mouse"
	"github.com/glacier-ui/glacier/pkg/renderer"
	"github.com/glacier-ui/glacier/pkg/runtime"
	"github.com/glacier-ui/glacier/pkg/theme"
	"github.com/glacier-ui/glacier/pkg/widgets"
	"github.com/glacier-ui/glacier/pkg/widgets/panegrid"
)

type paneClicked struct{ pane panegrid.Pane }
type paneDragged struct{ event panegrid.DragEvent }
type paneResized struct{ event panegrid.ResizeEvent }
type paneSplit struct{ pane panegrid.Pane }

type message any

// app is the demo application: a grid of named panes that can be clicked,
// split, dragged, and resized.
type app struct {
	panes   *panegrid.State[string]
	focused panegrid.Pane
	count   int
}

func newApp() *app {
	state, first := panegrid.NewState("pane 0")
	a := &app{panes: state, focused: first, count: 1}

	// Start with a second pane so splits and resizes have something to do.
	if _, _, ok := state.Split(panegrid.Vertical, first, "pane 1"); ok {
		a.count = 2
	}
	return a
}

func (a *app) update(msg message) {
	switch msg := msg.(type) {
	case paneClicked:
		a.focused = msg.pane

	case paneSplit:
		name := fmt.Sprintf("pane %d", a.count)
		if pane, _, ok := a.panes.Split(panegrid.Horizontal, msg.pane, name); ok {
			a.count++
			a.focused = pane
		}

	case paneResized:
		a.panes.Resize(msg.event.Split, msg.event.Ratio)

	case paneDragged:
		if dropped, ok := msg.event.(panegrid.Dropped); ok {
			switch target := dropped.Target.(type) {
			case panegrid.TargetPane:
				a.panes.SplitWith(target.Pane, dropped.Pane, target.Region)
			case panegrid.TargetEdge:
				a.panes.MoveToEdge(dropped.Pane, target.Edge)
			}
		}
	}
}

func (a *app) view() core.Element[message] {
	grid := panegrid.New(a.panes, func(pane panegrid.Pane, name string, maximized bool) *panegrid.Content[message] {
		title := name
		if pane == a.focused {
			title += " *"
		}

		titleBar := panegrid.NewTitleBar[message](
			widgets.NewText[message](title).Element(),
		).Padding(layout.UniformPadding(4))

		body := widgets.NewMouseArea(
			widgets.NewContainer(
				widgets.NewText[message](name).Element(),
			).Center().Width(layout.Fill).Height(layout.Fill).Element(),
		).OnDoubleClick(func() message { return paneSplit{pane: pane} }).Element()

		return panegrid.NewContent(body).TitleBar(titleBar)
	}).
		Spacing(4).
		OnClick(func(pane panegrid.Pane) message { return paneClicked{pane: pane} }).
		OnDrag(func(ev panegrid.DragEvent) message { return paneDragged{event: ev} }).
		OnResize(8, func(ev panegrid.ResizeEvent) message { return paneResized{event: ev} })

	return widgets.NewColumn(
		widgets.NewText[message]("glacier demo").TextSize(20).Element(),
		grid.Element(),
	).Spacing(8).Padding(layout.UniformPadding(8)).Element()
}

// frame is one scripted step: where the cursor sits and which events fire.
type frame struct {
	name   string
	cursor geometry.Point
	events []event.Event
}

func main() {
	themePath := flag.String("theme", "", "path to a YAML theme palette")
	dark := flag.Bool("dark", false, "use the built-in dark theme")
	width := flag.Float64("width", 800, "window width")
	height := flag.Float64("height", 600, "window height")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	errors.SetHandler(&errors.LogHandler{})

	th := theme.Light
	if *dark {
		th = theme.Dark
	}
	if *themePath != "" {
		loaded, err := theme.LoadFile(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading theme: %v\n", err)
			os.Exit(1)
		}
		th = loaded
	}
	fmt.Printf("theme: %s\n", th.Name)

	a := newApp()
	bounds := geometry.Sz(*width, *height)
	recorder := renderer.NewRecorder(bounds)
	clip := &clipboard.Memory{}
	cache := runtime.EmptyCache()

	frames := []frame{
		{name: "idle", cursor: geometry.Pt(-1, -1), events: []event.Event{event.RedrawRequested{}}},
		{name: "click left pane", cursor: geometry.Pt(200, 300), events: []event.Event{
			event.MouseMoved{Position: geometry.Pt(200, 300)},
			event.MousePressed{Button: mouse.ButtonLeft},
			event.MouseReleased{Button: mouse.ButtonLeft},
		}},
		{name: "grab split", cursor: geometry.Pt(*width / 2, 300), events: []event.Event{
			event.MouseMoved{Position: geometry.Pt(*width / 2, 300)},
			event.MousePressed{Button: mouse.ButtonLeft},
		}},
	}

	// Drag the split from the center to the quarter line along an eased
	// trajectory, one move event per simulated frame.
	dragFrom, dragTo := *width/2, *width/4
	dragStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	drag := animation.New(dragStart, 250*time.Millisecond, animation.EaseOut)
	for now := dragStart; ; now = now.Add(50 * time.Millisecond) {
		v := drag.Value(now)
		position := geometry.Pt(dragFrom+(dragTo-dragFrom)*v, 300)
		frames = append(frames, frame{
			name:   fmt.Sprintf("drag split %3.0f%%", v*100),
			cursor: position,
			events: []event.Event{event.MouseMoved{Position: position}},
		})
		if drag.IsFinished(now) {
			break
		}
	}

	frames = append(frames,
		frame{name: "drop split", cursor: geometry.Pt(dragTo, 300), events: []event.Event{
			event.MouseReleased{Button: mouse.ButtonLeft},
		}},
		frame{name: "settle", cursor: geometry.Pt(dragTo, 300), events: []event.Event{event.RedrawRequested{}}},
	)

	for _, f := range frames {
		cursor := mouse.Unavailable()
		if f.cursor.X >= 0 {
			cursor = mouse.Available(f.cursor)
		}

		ui := runtime.Build(a.view(), cache, recorder, bounds)

		var messages []message
		state, statuses := ui.Update(f.events, cursor, recorder, clip, &messages)
		cache = ui.IntoCache()

		for _, msg := range messages {
			a.update(msg)
		}
		if len(messages) > 0 || state.IsOutdated() {
			ui = runtime.Build(a.view(), cache, recorder, bounds)
			cache = ui.IntoCache()
		}

		recorder.Reset()
		ui = runtime.Build(a.view(), cache, recorder, bounds)
		interaction := ui.Draw(recorder, &th, renderer.Style{TextColor: th.Palette.Text}, cursor)
		cache = ui.IntoCache()

		quads, texts := 0, 0
		for _, op := range recorder.Ops() {
			switch op.(type) {
			case renderer.QuadOp:
				quads++
			case renderer.TextOp:
				texts++
			}
		}

		fmt.Printf("frame %-16s events=%d statuses=%v messages=%d quads=%d texts=%d cursor=%s\n",
			f.name, len(f.events), statuses, len(messages), quads, texts, interaction)
	}

	fmt.Printf("panes: %d, focused: %d\n", a.panes.Len(), a.focused)
}
