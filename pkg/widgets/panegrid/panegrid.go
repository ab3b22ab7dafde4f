package panegrid

import (
	"math"
	"sort"

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

// thicknessRatio divides the grid bounds to get the thickness of the edge
// drop zones.
const thicknessRatio = 25.0

// defaultMinPaneSize is the smallest width and height a pane can be resized
// down to.
const defaultMinPaneSize = 50.0

// Line is the highlight drawn over a split being hovered or dragged.
type Line struct {
	Color graphics.Color
	Width float64
}

// Highlight is the decoration of a hovered drop region.
type Highlight struct {
	Background graphics.Color
	Border     renderer.Border
}

// Style is the appearance of the grid chrome.
type Style struct {
	HoveredRegion Highlight
	PickedSplit   Line
	HoveredSplit  Line
}

// DefaultStyle derives the grid chrome from the theme palette.
func DefaultStyle(th *theme.Theme) Style {
	return Style{
		HoveredRegion: Highlight{
			Background: th.Palette.Primary.WithAlpha(0x33),
			Border:     renderer.Border{Color: th.Palette.Primary, Width: 1},
		},
		PickedSplit:  Line{Color: th.Palette.Primary, Width: 2},
		HoveredSplit: Line{Color: th.Palette.Primary.WithAlpha(0x99), Width: 2},
	}
}

type gridContent[M any] struct {
	pane    Pane
	content *Content[M]
}

// PaneGrid displays the panes of a State side by side, split along its tree
// of axes. Clicks, drags, and resizes are reported as messages; the
// application applies them back to the State.
type PaneGrid[M any] struct {
	contents     []gridContent[M]
	node         *Node
	width        layout.Length
	height       layout.Length
	spacing      float64
	minSize      float64
	onClick      func(Pane) M
	onDrag       func(DragEvent) M
	onResize     func(ResizeEvent) M
	resizeLeeway float64
	style        func(*theme.Theme) Style
}

// New builds a grid over the panes of the state. The view function runs once
// per visible pane; when a pane is maximized it is the only visible one and
// the flag tells the view so.
func New[T any, M any](state *State[T], view func(Pane, T, bool) *Content[M]) *PaneGrid[M] {
	g := &PaneGrid[M]{
		width:   layout.Fill,
		height:  layout.Fill,
		minSize: defaultMinPaneSize,
	}

	if pane, ok := state.Maximized(); ok {
		g.node = PaneNode(pane)
		g.contents = []gridContent[M]{{pane: pane, content: view(pane, state.Panes[pane], true)}}
		return g
	}

	g.node = state.Layout()
	for _, pane := range g.node.Panes() {
		g.contents = append(g.contents, gridContent[M]{
			pane:    pane,
			content: view(pane, state.Panes[pane], false),
		})
	}
	return g
}

// Width sets the width strategy.
func (g *PaneGrid[M]) Width(width layout.Length) *PaneGrid[M] {
	g.width = width
	return g
}

// Height sets the height strategy.
func (g *PaneGrid[M]) Height(height layout.Length) *PaneGrid[M] {
	g.height = height
	return g
}

// Spacing sets the gap between panes.
func (g *PaneGrid[M]) Spacing(amount float64) *PaneGrid[M] {
	g.spacing = amount
	return g
}

// MinSize sets the smallest width and height a pane can be resized down to.
func (g *PaneGrid[M]) MinSize(size float64) *PaneGrid[M] {
	g.minSize = size
	return g
}

// OnClick sets the message built when a pane is clicked.
func (g *PaneGrid[M]) OnClick(f func(Pane) M) *PaneGrid[M] {
	g.onClick = f
	return g
}

// OnDrag enables dragging panes by their title bars and sets the message
// built for each drag event.
func (g *PaneGrid[M]) OnDrag(f func(DragEvent) M) *PaneGrid[M] {
	g.onDrag = f
	return g
}

// OnResize enables resizing at the splits and sets the message built while
// one is dragged. The leeway widens the grab area around each split line.
func (g *PaneGrid[M]) OnResize(leeway float64, f func(ResizeEvent) M) *PaneGrid[M] {
	g.resizeLeeway = leeway
	g.onResize = f
	return g
}

// Style sets the grid chrome derived from the theme.
func (g *PaneGrid[M]) Style(style func(*theme.Theme) Style) *PaneGrid[M] {
	g.style = style
	return g
}

// Element wraps the grid for use as a child.
func (g *PaneGrid[M]) Element() core.Element[M] {
	return core.NewElement[M](g)
}

func (g *PaneGrid[M]) dragEnabled() bool {
	return g.onDrag != nil && len(g.contents) > 1
}

func (g *PaneGrid[M]) Tag() core.Tag {
	return core.TagOf[Action]()
}

func (g *PaneGrid[M]) State() core.State {
	return core.NewState(&Action{})
}

func (g *PaneGrid[M]) Children() []*core.Tree {
	trees := make([]*core.Tree, len(g.contents))
	for i, c := range g.contents {
		trees[i] = c.content.tree()
	}
	return trees
}

func (g *PaneGrid[M]) Diff(tree *core.Tree) {
	tree.DiffChildrenCustom(
		len(g.contents),
		func(node *core.Tree, i int) { g.contents[i].content.diff(node) },
		func(i int) *core.Tree { return g.contents[i].content.tree() },
	)
}

func (g *PaneGrid[M]) Size() (layout.Length, layout.Length) {
	return g.width, g.height
}

func (g *PaneGrid[M]) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(g.width).Height(g.height)
	size := limits.Resolve(g.width, g.height, geometry.Size{})

	regions := g.node.PaneRegions(g.spacing, g.minSize, size)

	children := make([]layout.Node, len(g.contents))
	for i, c := range g.contents {
		region := regions[c.pane]
		node := c.content.layout(
			tree.Children[i], r,
			layout.NewLimits(region.Size(), region.Size()),
		)
		children[i] = node.MoveTo(region.Position())
	}

	return layout.NodeWithChildren(size, children)
}

func (g *PaneGrid[M]) Update(
	tree *core.Tree,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	r renderer.Renderer,
	clip clipboard.Clipboard,
	shell *core.Shell[M],
	viewport geometry.Rectangle,
) {
	action := core.StateAs[Action](tree.State)

	g.updateAction(action, ev, lay, cursor, shell)

	pickedPane, _, picked := action.PickedPane()
	for i, child := range lay.Children() {
		isPicked := picked && g.contents[i].pane == pickedPane
		g.contents[i].content.update(tree.Children[i], ev, child, cursor, r, clip, shell, viewport, isPicked)
	}
}

func (g *PaneGrid[M]) updateAction(
	action *Action,
	ev event.Event,
	lay layout.Layout,
	cursor mouse.Cursor,
	shell *core.Shell[M],
) {
	bounds := lay.Bounds()

	switch ev := ev.(type) {
	case event.MousePressed:
		if ev.Button != mouse.ButtonLeft {
			return
		}
		position, ok := cursor.PositionOver(bounds)
		if !ok {
			return
		}
		shell.CaptureEvent()

		if g.onResize != nil {
			relative := geometry.Pt(position.X-bounds.X, position.Y-bounds.Y)
			splits := g.node.SplitRegions(g.spacing, g.minSize, bounds.Size())

			if split, axis, _, ok := hoveredSplit(splits, g.spacing+g.resizeLeeway, relative); ok {
				if _, _, dragging := action.PickedPane(); !dragging {
					*action = Action{kind: actionResizing, split: split, axis: axis}
				}
				return
			}
		}
		g.clickPane(action, lay, position, shell)

	case event.MouseReleased:
		if ev.Button != mouse.ButtonLeft {
			return
		}
		if pane, _, ok := action.PickedPane(); ok {
			if g.onDrag != nil {
				if position, ok := cursor.Position(); ok {
					shell.Publish(g.onDrag(g.dropEvent(pane, lay, position)))
				}
			}
			shell.CaptureEvent()
		} else if _, _, resizing := action.PickedSplit(); resizing {
			shell.CaptureEvent()
		}
		*action = Action{}

	case event.MouseMoved:
		split, _, ok := action.PickedSplit()
		if !ok || g.onResize == nil {
			return
		}
		region, found := g.node.SplitRegions(g.spacing, g.minSize, bounds.Size())[split]
		if !found {
			return
		}
		position, ok := cursor.Position()
		if !ok {
			return
		}

		var ratio float64
		if region.Axis == Horizontal {
			ratio = (position.Y - bounds.Y - region.Bounds.Y) / region.Bounds.Height
		} else {
			ratio = (position.X - bounds.X - region.Bounds.X) / region.Bounds.Width
		}
		ratio = math.Min(math.Max(ratio, 0.1), 0.9)

		shell.Publish(g.onResize(ResizeEvent{Split: split, Ratio: ratio}))
		shell.CaptureEvent()
	}
}

// clickPane reports a click on the pane under the cursor and, when the grab
// landed on its draggable region, starts a drag.
func (g *PaneGrid[M]) clickPane(
	action *Action,
	lay layout.Layout,
	position geometry.Point,
	shell *core.Shell[M],
) {
	for i, child := range lay.Children() {
		if !child.Bounds().Contains(position) {
			continue
		}

		c := g.contents[i]
		if g.onClick != nil {
			shell.Publish(g.onClick(c.pane))
		}
		if g.dragEnabled() && c.content.canBeDraggedAt(child, position) {
			grab := child.Position()
			origin := geometry.Pt(position.X-grab.X, position.Y-grab.Y)
			*action = Action{kind: actionDragging, pane: c.pane, origin: origin}
			shell.Publish(g.onDrag(Picked{Pane: c.pane}))
		}
		return
	}
}

// dropEvent resolves where a dragged pane was released: a grid edge, a
// region of another pane, or nowhere useful.
func (g *PaneGrid[M]) dropEvent(pane Pane, lay layout.Layout, position geometry.Point) DragEvent {
	if edge, ok := inEdge(lay.Bounds(), position); ok {
		return Dropped{Pane: pane, Target: TargetEdge{Edge: edge}}
	}

	for i, child := range lay.Children() {
		region, ok := layoutRegion(child.Bounds(), position)
		if !ok {
			continue
		}
		if target := g.contents[i].pane; target != pane {
			return Dropped{Pane: pane, Target: TargetPane{Pane: target, Region: region}}
		}
		break
	}
	return Canceled{Pane: pane}
}

func (g *PaneGrid[M]) MouseInteraction(
	tree *core.Tree,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
	r renderer.Renderer,
) mouse.Interaction {
	action := core.StateAs[Action](tree.State)

	if _, _, dragging := action.PickedPane(); dragging {
		return mouse.InteractionGrabbing
	}

	resizeAxis, resizing := Axis(0), false
	if _, axis, ok := action.PickedSplit(); ok {
		resizeAxis, resizing = axis, true
	} else if g.onResize != nil {
		if position, ok := cursor.Position(); ok {
			bounds := lay.Bounds()
			splits := g.node.SplitRegions(g.spacing, g.minSize, bounds.Size())
			relative := geometry.Pt(position.X-bounds.X, position.Y-bounds.Y)
			if _, axis, _, ok := hoveredSplit(splits, g.spacing+g.resizeLeeway, relative); ok {
				resizeAxis, resizing = axis, true
			}
		}
	}

	if resizing {
		if resizeAxis == Horizontal {
			return mouse.InteractionResizingVertically
		}
		return mouse.InteractionResizingHorizontally
	}

	interaction := mouse.InteractionNone
	for i, child := range lay.Children() {
		interaction = interaction.Merge(g.contents[i].content.mouseInteraction(
			tree.Children[i], child, cursor, viewport, r, g.dragEnabled(),
		))
	}
	return interaction
}

func (g *PaneGrid[M]) Draw(
	tree *core.Tree,
	r renderer.Renderer,
	th *theme.Theme,
	style renderer.Style,
	lay layout.Layout,
	cursor mouse.Cursor,
	viewport geometry.Rectangle,
) {
	action := core.StateAs[Action](tree.State)
	bounds := lay.Bounds()
	children := lay.Children()

	chromeStyle := g.style
	if chromeStyle == nil {
		chromeStyle = DefaultStyle
	}
	chrome := chromeStyle(th)

	pickedPane, origin, picked := action.PickedPane()

	paneCursor := cursor
	if picked {
		paneCursor = mouse.Unavailable()
	}

	var paneInEdge Edge
	inGridEdge := false
	if picked {
		if position, ok := cursor.Position(); ok {
			paneInEdge, inGridEdge = inEdge(bounds, position)
		}
	}

	pickedIndex := -1
	for i, child := range children {
		if picked && g.contents[i].pane == pickedPane {
			pickedIndex = i
			continue
		}

		g.contents[i].content.draw(tree.Children[i], r, th, style, child, paneCursor, viewport)

		if picked && !inGridEdge {
			if position, ok := cursor.Position(); ok {
				if region, over := layoutRegion(child.Bounds(), position); over {
					r.FillQuad(renderer.Quad{
						Bounds: regionBounds(child.Bounds(), region),
						Border: chrome.HoveredRegion.Border,
					}, chrome.HoveredRegion.Background)
				}
			}
		}
	}

	if inGridEdge {
		r.FillQuad(renderer.Quad{
			Bounds: edgeBounds(bounds, paneInEdge),
			Border: chrome.HoveredRegion.Border,
		}, chrome.HoveredRegion.Background)
	}

	// The dragged pane is drawn last, translated under the cursor.
	if pickedIndex >= 0 {
		if position, ok := cursor.Position(); ok {
			child := children[pickedIndex]
			childBounds := child.Bounds()
			offset := geometry.Vector{
				X: position.X - childBounds.X - origin.X,
				Y: position.Y - childBounds.Y - origin.Y,
			}
			r.WithTransformation(geometry.Translate(offset.X, offset.Y), func(r renderer.Renderer) {
				r.WithLayer(childBounds, func(r renderer.Renderer) {
					g.contents[pickedIndex].content.draw(
						tree.Children[pickedIndex], r, th, style, child, paneCursor, viewport,
					)
				})
			})
		}
	}

	if !picked {
		g.drawSplitHighlight(action, r, bounds, cursor, chrome)
	}
}

func (g *PaneGrid[M]) drawSplitHighlight(
	action *Action,
	r renderer.Renderer,
	bounds geometry.Rectangle,
	cursor mouse.Cursor,
	chrome Style,
) {
	var (
		axis      Axis
		line      geometry.Rectangle
		highlight Line
	)

	if split, pickedAxis, ok := action.PickedSplit(); ok {
		region, found := g.node.SplitRegions(g.spacing, g.minSize, bounds.Size())[split]
		if !found {
			return
		}
		axis = pickedAxis
		line = axis.SplitLineBounds(region.Bounds, region.Ratio, g.spacing).Add(
			geometry.Vector{X: bounds.X, Y: bounds.Y},
		)
		highlight = chrome.PickedSplit
	} else if g.onResize != nil {
		position, ok := cursor.Position()
		if !ok {
			return
		}
		splits := g.node.SplitRegions(g.spacing, g.minSize, bounds.Size())
		relative := geometry.Pt(position.X-bounds.X, position.Y-bounds.Y)
		_, hoveredAxis, hoveredLine, ok := hoveredSplit(splits, g.spacing+g.resizeLeeway, relative)
		if !ok {
			return
		}
		axis = hoveredAxis
		line = hoveredLine.Add(geometry.Vector{X: bounds.X, Y: bounds.Y})
		highlight = chrome.HoveredSplit
	} else {
		return
	}

	if axis == Horizontal {
		line.Y = math.Round(line.Y + (line.Height-highlight.Width)/2)
		line.Height = highlight.Width
	} else {
		line.X = math.Round(line.X + (line.Width-highlight.Width)/2)
		line.Width = highlight.Width
	}

	r.FillQuad(renderer.Quad{Bounds: line}, highlight.Color)
}

func (g *PaneGrid[M]) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	op.Container("", lay.Bounds(), func(op core.Operation) {
		for i, child := range lay.Children() {
			g.contents[i].content.operate(tree.Children[i], child, r, op)
		}
	})
}

func (g *PaneGrid[M]) Overlay(
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	var overlays []*core.OverlayElement[M]
	for i, child := range lay.Children() {
		if overlay := g.contents[i].content.overlay(tree.Children[i], child, r, viewport, translation); overlay != nil {
			overlays = append(overlays, overlay)
		}
	}

	switch len(overlays) {
	case 0:
		return nil
	case 1:
		return overlays[0]
	default:
		return core.NewGroup(overlays).Element()
	}
}

func (g *PaneGrid[M]) HashLayout(h *layout.Hasher) {
	g.width.Hash(h)
	g.height.Hash(h)
	h.WriteFloat64(g.spacing)
	h.WriteFloat64(g.minSize)
	g.node.Hash(h)
	for _, c := range g.contents {
		_ = core.HashLayout(c.content.body.Widget(), h)
		if c.content.titleBar != nil {
			c.content.titleBar.padding.Hash(h)
			_ = core.HashLayout(c.content.titleBar.content.Widget(), h)
		}
	}
}

func (g *PaneGrid[M]) CanHashLayout() bool {
	for _, c := range g.contents {
		if !hashable(c.content.body.Widget()) {
			return false
		}
		if c.content.titleBar != nil && !hashable(c.content.titleBar.content.Widget()) {
			return false
		}
	}
	return true
}

func hashable(w any) bool {
	if _, ok := w.(core.LayoutHasher); !ok {
		return false
	}
	if gate, ok := w.(interface{ CanHashLayout() bool }); ok {
		return gate.CanHashLayout()
	}
	return true
}

// hoveredSplit finds the split whose line, widened to the given thickness,
// contains the position. Positions are relative to the grid origin.
func hoveredSplit(
	splits map[Split]SplitRegion,
	thickness float64,
	position geometry.Point,
) (Split, Axis, geometry.Rectangle, bool) {
	ids := make([]Split, 0, len(splits))
	for id := range splits {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		region := splits[id]
		line := region.Axis.SplitLineBounds(region.Bounds, region.Ratio, thickness)
		if line.Contains(position) {
			return id, region.Axis, line, true
		}
	}
	return 0, 0, geometry.Rectangle{}, false
}

// inEdge reports which drop zone along the grid edges contains the position,
// if any.
func inEdge(bounds geometry.Rectangle, position geometry.Point) (Edge, bool) {
	thickness := math.Min(bounds.Width, bounds.Height) / thicknessRatio

	switch {
	case position.X > bounds.X && position.X < bounds.X+thickness:
		return EdgeLeft, true
	case position.X > bounds.X+bounds.Width-thickness && position.X < bounds.X+bounds.Width:
		return EdgeRight, true
	case position.Y > bounds.Y && position.Y < bounds.Y+thickness:
		return EdgeTop, true
	case position.Y > bounds.Y+bounds.Height-thickness && position.Y < bounds.Y+bounds.Height:
		return EdgeBottom, true
	}
	return 0, false
}

func edgeBounds(bounds geometry.Rectangle, edge Edge) geometry.Rectangle {
	thickness := math.Min(bounds.Width, bounds.Height) / thicknessRatio

	switch edge {
	case EdgeTop:
		bounds.Height = thickness
	case EdgeLeft:
		bounds.Width = thickness
	case EdgeRight:
		bounds.X += bounds.Width - thickness
		bounds.Width = thickness
	case EdgeBottom:
		bounds.Y += bounds.Height - thickness
		bounds.Height = thickness
	}
	return bounds
}

// layoutRegion picks the drop region of a pane for the given position: the
// outer thirds map to the matching edge, the middle to the center.
func layoutRegion(bounds geometry.Rectangle, position geometry.Point) (Region, bool) {
	if !bounds.Contains(position) {
		return 0, false
	}

	switch {
	case position.X < bounds.X+bounds.Width/3:
		return RegionLeft, true
	case position.X > bounds.X+2*bounds.Width/3:
		return RegionRight, true
	case position.Y < bounds.Y+bounds.Height/3:
		return RegionTop, true
	case position.Y > bounds.Y+2*bounds.Height/3:
		return RegionBottom, true
	}
	return RegionCenter, true
}

// regionBounds is the highlighted area for a drop region within a pane.
func regionBounds(bounds geometry.Rectangle, region Region) geometry.Rectangle {
	switch region {
	case RegionTop:
		bounds.Height /= 2
	case RegionLeft:
		bounds.Width /= 2
	case RegionRight:
		bounds.X += bounds.Width / 2
		bounds.Width /= 2
	case RegionBottom:
		bounds.Y += bounds.Height / 2
		bounds.Height /= 2
	}
	return bounds
}
