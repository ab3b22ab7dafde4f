package panegrid

import (
	"testing"

	"github.com/glacier-ui/glacier/pkg/geometry"
)

// TestState_NewStateHoldsOnePane verifies the initial arrangement.
func TestState_NewStateHoldsOnePane(t *testing.T) {
	state, first := NewState("alpha")

	if state.Len() != 1 {
		t.Fatalf("len = %d, want 1", state.Len())
	}
	if got, ok := state.Get(first); !ok || got != "alpha" {
		t.Errorf("first pane state = %q, %v, want alpha", got, ok)
	}
}

// TestState_SplitAddsPane verifies that splitting registers the new pane and
// keeps the old one.
func TestState_SplitAddsPane(t *testing.T) {
	state, first := NewState("alpha")

	pane, split, ok := state.Split(Vertical, first, "beta")
	if !ok {
		t.Fatal("split of an existing pane should succeed")
	}
	if pane == first {
		t.Error("new pane should have a fresh identifier")
	}
	if state.Len() != 2 {
		t.Errorf("len = %d, want 2", state.Len())
	}
	if got, _ := state.Get(pane); got != "beta" {
		t.Errorf("new pane state = %q, want beta", got)
	}

	splits := state.Layout().Splits()
	if len(splits) != 1 || splits[0] != split {
		t.Errorf("layout splits = %v, want [%v]", splits, split)
	}
}

// TestState_SplitAllocatesSequentialIdentifiers verifies the id sequence: the
// initial configuration reserves ids up to its node count, and each split
// allocates the pane id before the split id.
func TestState_SplitAllocatesSequentialIdentifiers(t *testing.T) {
	state, first := NewState("alpha")
	if first != Pane(0) {
		t.Fatalf("first pane = %v, want 0", first)
	}

	pane, split, _ := state.Split(Vertical, first, "beta")
	if pane != Pane(2) || split != Split(3) {
		t.Errorf("allocated pane %v split %v, want pane 2 split 3", pane, split)
	}
}

// TestState_SplitUnknownPaneFails verifies the miss case.
func TestState_SplitUnknownPaneFails(t *testing.T) {
	state, _ := NewState("alpha")

	if _, _, ok := state.Split(Vertical, Pane(99), "beta"); ok {
		t.Error("split of an unknown pane should fail")
	}
}

// TestState_CloseHandsRegionToSibling verifies closing and its returned
// sibling.
func TestState_CloseHandsRegionToSibling(t *testing.T) {
	state, first := NewState("alpha")
	pane, _, _ := state.Split(Vertical, first, "beta")

	closed, sibling, ok := state.Close(pane)
	if !ok {
		t.Fatal("close should succeed")
	}
	if closed != "beta" {
		t.Errorf("closed state = %q, want beta", closed)
	}
	if sibling != first {
		t.Errorf("sibling = %v, want %v", sibling, first)
	}
	if state.Len() != 1 {
		t.Errorf("len = %d, want 1", state.Len())
	}
}

// TestState_CloseUntrackedPaneLeavesLayoutAlone verifies that a close that
// fails the membership check does not mutate the layout tree.
func TestState_CloseUntrackedPaneLeavesLayoutAlone(t *testing.T) {
	state, first := NewState("alpha")
	pane, _, _ := state.Split(Vertical, first, "beta")
	delete(state.Panes, pane)

	if _, _, ok := state.Close(pane); ok {
		t.Error("closing an untracked pane should fail")
	}
	if got := state.Layout().Panes(); len(got) != 2 {
		t.Errorf("layout panes after failed close = %v, want both kept", got)
	}
}

// TestState_CloseLastPaneFails verifies that the final pane cannot be closed.
func TestState_CloseLastPaneFails(t *testing.T) {
	state, first := NewState("alpha")

	if _, _, ok := state.Close(first); ok {
		t.Error("closing the only pane should fail")
	}
	if state.Len() != 1 {
		t.Errorf("len = %d, want 1", state.Len())
	}
}

// TestState_SwapExchangesPositions verifies that swapping moves panes without
// touching their state.
func TestState_SwapExchangesPositions(t *testing.T) {
	state, first := NewState("alpha")
	second, _, _ := state.Split(Vertical, first, "beta")

	before := state.Layout().Panes()
	state.Swap(first, second)
	after := state.Layout().Panes()

	if before[0] != after[1] || before[1] != after[0] {
		t.Errorf("panes before = %v after = %v, want swapped", before, after)
	}
	if got, _ := state.Get(first); got != "alpha" {
		t.Errorf("state of %v = %q, want alpha", first, got)
	}
}

// TestState_AdjacentFindsNeighbor verifies directional navigation between
// panes.
func TestState_AdjacentFindsNeighbor(t *testing.T) {
	state, first := NewState("alpha")
	second, _, _ := state.Split(Vertical, first, "beta")

	if got, ok := state.Adjacent(first, DirectionRight); !ok || got != second {
		t.Errorf("right of %v = %v, %v, want %v", first, got, ok, second)
	}
	if got, ok := state.Adjacent(second, DirectionLeft); !ok || got != first {
		t.Errorf("left of %v = %v, %v, want %v", second, got, ok, first)
	}
	if _, ok := state.Adjacent(first, DirectionLeft); ok {
		t.Error("nothing lies left of the first pane")
	}
}

// TestState_SplitWithCenterSwaps verifies that dropping onto the center of a
// pane swaps the two.
func TestState_SplitWithCenterSwaps(t *testing.T) {
	state, first := NewState("alpha")
	second, _, _ := state.Split(Vertical, first, "beta")

	before := state.Layout().Panes()
	state.SplitWith(second, first, RegionCenter)
	after := state.Layout().Panes()

	if before[0] != after[1] || before[1] != after[0] {
		t.Errorf("panes before = %v after = %v, want swapped", before, after)
	}
	if state.Len() != 2 {
		t.Errorf("len = %d, want 2", state.Len())
	}
}

// TestState_SplitWithEdgeMovesPane verifies that dropping onto an edge region
// re-splits the target with the dragged pane on that side.
func TestState_SplitWithEdgeMovesPane(t *testing.T) {
	state, first := NewState("alpha")
	second, _, _ := state.Split(Vertical, first, "beta")

	state.SplitWith(first, second, RegionTop)

	if state.Len() != 2 {
		t.Fatalf("len = %d, want 2", state.Len())
	}

	splits := state.Layout().Splits()
	if len(splits) != 1 {
		t.Fatalf("splits = %v, want one", splits)
	}

	regions := state.Layout().SplitRegions(0, 0, geometry.Sz(200, 200))
	if got := regions[splits[0]].Axis; got != Horizontal {
		t.Errorf("axis after top drop = %v, want horizontal", got)
	}

	// The dragged pane took the top half.
	panes := state.Layout().Panes()
	if betaState, _ := state.Get(panes[0]); betaState != "beta" {
		t.Errorf("top pane state = %q, want beta", betaState)
	}
}

// TestState_MoveToEdgeSpansWholeSide verifies that moving a pane to an edge
// splits the whole grid.
func TestState_MoveToEdgeSpansWholeSide(t *testing.T) {
	state, first := NewState("alpha")
	second, _, _ := state.Split(Vertical, first, "beta")
	third, _, _ := state.Split(Horizontal, second, "gamma")

	state.MoveToEdge(third, EdgeLeft)

	if state.Len() != 3 {
		t.Fatalf("len = %d, want 3", state.Len())
	}

	// The moved pane is now the first leaf of the root split.
	panes := state.Layout().Panes()
	if got, _ := state.Get(panes[0]); got != "gamma" {
		t.Errorf("leftmost pane state = %q, want gamma", got)
	}
}

// TestState_MaximizeAndRestore verifies the maximized flag lifecycle,
// including the implicit restore when the maximized pane closes.
func TestState_MaximizeAndRestore(t *testing.T) {
	state, first := NewState("alpha")
	second, _, _ := state.Split(Vertical, first, "beta")

	state.Maximize(second)
	if got, ok := state.Maximized(); !ok || got != second {
		t.Fatalf("maximized = %v, %v, want %v", got, ok, second)
	}

	state.Restore()
	if _, ok := state.Maximized(); ok {
		t.Error("restore should clear the maximized pane")
	}

	state.Maximize(second)
	state.Close(second)
	if _, ok := state.Maximized(); ok {
		t.Error("closing the maximized pane should clear the flag")
	}
}

// TestState_SplitClearsMaximized verifies that a split while maximized drops
// back to the full grid.
func TestState_SplitClearsMaximized(t *testing.T) {
	state, first := NewState("alpha")
	state.Maximize(first)

	state.Split(Vertical, first, "beta")

	if _, ok := state.Maximized(); ok {
		t.Error("splitting should clear the maximized pane")
	}
}

// TestState_WithConfiguration verifies building a grid from a declarative
// arrangement.
func TestState_WithConfiguration(t *testing.T) {
	state := StateWithConfiguration(ConfigSplit(
		Vertical, 0.3,
		ConfigPane("sidebar"),
		ConfigSplit(Horizontal, 0.5, ConfigPane("editor"), ConfigPane("terminal")),
	))

	if state.Len() != 3 {
		t.Fatalf("len = %d, want 3", state.Len())
	}

	panes := state.Layout().Panes()
	contents := make([]string, len(panes))
	for i, pane := range panes {
		contents[i], _ = state.Get(pane)
	}

	want := []string{"sidebar", "editor", "terminal"}
	for i := range want {
		if contents[i] != want[i] {
			t.Fatalf("contents = %v, want %v", contents, want)
		}
	}
}
