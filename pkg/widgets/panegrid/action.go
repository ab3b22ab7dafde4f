package panegrid

import "github.com/glacier-ui/glacier/pkg/geometry"

type actionKind int

const (
	actionIdle actionKind = iota
	actionDragging
	actionResizing
)

// Action is the transient interaction state of a pane grid: idle, dragging a
// pane, or resizing a split. It lives in the widget tree, not in State, so
// it survives view rebuilds without the application seeing it.
type Action struct {
	kind   actionKind
	pane   Pane
	origin geometry.Point
	split  Split
	axis   Axis
}

// PickedPane returns the dragged pane and the grab offset within it.
func (a Action) PickedPane() (Pane, geometry.Point, bool) {
	if a.kind != actionDragging {
		return 0, geometry.Point{}, false
	}
	return a.pane, a.origin, true
}

// PickedSplit returns the split being resized.
func (a Action) PickedSplit() (Split, Axis, bool) {
	if a.kind != actionResizing {
		return 0, 0, false
	}
	return a.split, a.axis, true
}

// DragEvent is produced during a drag and drop interaction.
type DragEvent interface {
	isDragEvent()
}

// Picked reports that a pane was grabbed.
type Picked struct {
	Pane Pane
}

// Dropped reports that the dragged pane was released over a target.
type Dropped struct {
	Pane   Pane
	Target Target
}

// Canceled reports that the dragged pane was released over nothing useful.
type Canceled struct {
	Pane Pane
}

func (Picked) isDragEvent()   {}
func (Dropped) isDragEvent()  {}
func (Canceled) isDragEvent() {}

// Target is where a dragged pane was dropped.
type Target interface {
	isTarget()
}

// TargetEdge is a whole edge of the grid.
type TargetEdge struct {
	Edge Edge
}

// TargetPane is a region of another pane.
type TargetPane struct {
	Pane   Pane
	Region Region
}

func (TargetEdge) isTarget() {}
func (TargetPane) isTarget() {}

// ResizeEvent is produced while a split is dragged.
type ResizeEvent struct {
	Split Split
	// Ratio is the new position of the split in [0, 1].
	Ratio float64
}
