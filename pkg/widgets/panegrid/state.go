package panegrid

import (
	"github.com/glacier-ui/glacier/pkg/geometry"
)

// State is the application-owned arrangement of a pane grid: the content of
// every pane and the tree of splits between them. The type parameter T is
// whatever per-pane state the application wants the view function to see.
type State[T any] struct {
	// Panes maps every pane to its application state.
	Panes map[Pane]T

	internal  internalState
	maximized *Pane
}

type internalState struct {
	layout *Node
	lastID int
}

// Configuration describes an initial arrangement for a State.
type Configuration[T any] struct {
	axis  Axis
	ratio float64
	a, b  *Configuration[T]
	pane  *T
}

// ConfigPane is a configuration leaf holding one pane.
func ConfigPane[T any](state T) *Configuration[T] {
	return &Configuration[T]{pane: &state}
}

// ConfigSplit splits a region between two configurations at the given ratio.
func ConfigSplit[T any](axis Axis, ratio float64, a, b *Configuration[T]) *Configuration[T] {
	return &Configuration[T]{axis: axis, ratio: ratio, a: a, b: b}
}

// NewState builds a state holding a single pane and returns its identifier.
func NewState[T any](first T) (*State[T], Pane) {
	return StateWithConfiguration(ConfigPane(first)), Pane(0)
}

// StateWithConfiguration builds a state from an initial arrangement.
func StateWithConfiguration[T any](config *Configuration[T]) *State[T] {
	s := &State[T]{Panes: make(map[Pane]T)}
	s.internal.layout, s.internal.lastID = buildConfiguration(s.Panes, config, 0)
	return s
}

func buildConfiguration[T any](panes map[Pane]T, config *Configuration[T], nextID int) (*Node, int) {
	if config.pane != nil {
		id := Pane(nextID)
		panes[id] = *config.pane
		return PaneNode(id), nextID + 1
	}

	a, nextID := buildConfiguration(panes, config.a, nextID)
	b, nextID := buildConfiguration(panes, config.b, nextID)
	return SplitNode(Split(nextID), config.axis, config.ratio, a, b), nextID + 1
}

// Len returns the number of panes.
func (s *State[T]) Len() int {
	return len(s.Panes)
}

// Get returns the state of the given pane.
func (s *State[T]) Get(pane Pane) (T, bool) {
	state, ok := s.Panes[pane]
	return state, ok
}

// Layout returns the split tree.
func (s *State[T]) Layout() *Node {
	return s.internal.layout
}

// Adjacent returns the pane next to the given one in the given direction.
func (s *State[T]) Adjacent(pane Pane, direction Direction) (Pane, bool) {
	regions := s.internal.layout.PaneRegions(0, 0, geometry.Size{Width: 4096, Height: 4096})

	current, ok := regions[pane]
	if !ok {
		return 0, false
	}

	var target geometry.Point
	switch direction {
	case DirectionLeft:
		target = geometry.Point{X: current.X - 1, Y: current.Y + 1}
	case DirectionRight:
		target = geometry.Point{X: current.X + current.Width + 1, Y: current.Y + 1}
	case DirectionUp:
		target = geometry.Point{X: current.X + 1, Y: current.Y - 1}
	case DirectionDown:
		target = geometry.Point{X: current.X + 1, Y: current.Y + current.Height + 1}
	}

	for candidate, region := range regions {
		if region.Contains(target) {
			return candidate, true
		}
	}
	return 0, false
}

// Split divides the given pane in two along the axis, putting the provided
// state in the new pane. It returns the new pane and the split between them.
func (s *State[T]) Split(axis Axis, pane Pane, state T) (Pane, Split, bool) {
	node := s.internal.layout.find(pane)
	if node == nil {
		return 0, 0, false
	}

	s.internal.lastID++
	newPane := Pane(s.internal.lastID)
	s.internal.lastID++
	newSplit := Split(s.internal.lastID)

	node.splitLeaf(newSplit, axis, newPane)
	s.Panes[newPane] = state
	s.maximized = nil

	return newPane, newSplit, true
}

// SplitWith drops the given pane onto a region of the target pane: the
// center swaps them, an edge splits the target and puts the pane on that
// side.
func (s *State[T]) SplitWith(target, pane Pane, region Region) {
	switch region {
	case RegionCenter:
		s.Swap(pane, target)
	case RegionTop:
		s.splitAndSwap(Horizontal, target, pane, true)
	case RegionBottom:
		s.splitAndSwap(Horizontal, target, pane, false)
	case RegionLeft:
		s.splitAndSwap(Vertical, target, pane, true)
	case RegionRight:
		s.splitAndSwap(Vertical, target, pane, false)
	}
}

func (s *State[T]) splitAndSwap(axis Axis, target, pane Pane, swap bool) {
	state, _, ok := s.Close(pane)
	if !ok {
		return
	}
	newPane, _, ok := s.Split(axis, target, state)
	if ok && swap {
		s.Swap(target, newPane)
	}
}

// MoveToEdge detaches the given pane and reattaches it along a whole edge of
// the grid.
func (s *State[T]) MoveToEdge(pane Pane, edge Edge) {
	state, _, ok := s.Close(pane)
	if !ok {
		return
	}

	switch edge {
	case EdgeTop:
		s.splitMajorNode(Horizontal, state, true)
	case EdgeBottom:
		s.splitMajorNode(Horizontal, state, false)
	case EdgeLeft:
		s.splitMajorNode(Vertical, state, true)
	case EdgeRight:
		s.splitMajorNode(Vertical, state, false)
	}
}

func (s *State[T]) splitMajorNode(axis Axis, state T, swap bool) {
	s.internal.lastID++
	newPane := Pane(s.internal.lastID)
	s.internal.lastID++
	newSplit := Split(s.internal.lastID)

	if swap {
		s.internal.layout.splitInverse(newSplit, axis, newPane)
	} else {
		s.internal.layout.splitLeaf(newSplit, axis, newPane)
	}

	s.Panes[newPane] = state
	s.maximized = nil
}

// Swap exchanges the positions of two panes, leaving their state untouched.
func (s *State[T]) Swap(a, b Pane) {
	s.internal.layout.update(func(node *Node) {
		if node.split != nil {
			return
		}
		switch node.pane {
		case a:
			node.pane = b
		case b:
			node.pane = a
		}
	})
}

// Resize sets the position of a split. The ratio is in [0, 1].
func (s *State[T]) Resize(split Split, ratio float64) {
	s.internal.layout.resize(split, ratio)
}

// Close removes the given pane, handing its region to its sibling. It
// returns the removed state and the pane that took over the region.
func (s *State[T]) Close(pane Pane) (T, Pane, bool) {
	var zero T

	// Check membership before touching the layout tree, so a failed close
	// leaves both untouched.
	state, ok := s.Panes[pane]
	if !ok {
		return zero, 0, false
	}

	sibling, ok := s.internal.layout.remove(pane)
	if !ok {
		return zero, 0, false
	}

	if s.maximized != nil && *s.maximized == pane {
		s.maximized = nil
	}
	delete(s.Panes, pane)

	return state, sibling, true
}

// Maximize makes the given pane the only one rendered until Restore.
func (s *State[T]) Maximize(pane Pane) {
	p := pane
	s.maximized = &p
}

// Restore undoes Maximize.
func (s *State[T]) Restore() {
	s.maximized = nil
}

// Maximized returns the maximized pane, if any.
func (s *State[T]) Maximized() (Pane, bool) {
	if s.maximized == nil {
		return 0, false
	}
	return *s.maximized, true
}
