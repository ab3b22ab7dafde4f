package panegrid

// Pane identifies a pane in the grid. Identifiers are handed out by State and
// stay stable across splits, swaps, and closes.
type Pane int

// Split identifies a split line between two regions of the grid.
type Split int

// Direction is a cardinal direction used to look up adjacent panes.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

// Edge is one side of a rectangular area.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Region is the part of a pane a dragged pane can be dropped on.
type Region int

const (
	// RegionCenter swaps the dropped pane with the target.
	RegionCenter Region = iota
	RegionTop
	RegionBottom
	RegionLeft
	RegionRight
)
