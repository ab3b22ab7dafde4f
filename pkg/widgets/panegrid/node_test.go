package panegrid

import (
	"testing"

	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/layout"
)

// TestNode_SinglePaneFillsEverything verifies that a leaf takes the whole
// region.
func TestNode_SinglePaneFillsEverything(t *testing.T) {
	node := PaneNode(0)

	regions := node.PaneRegions(0, 0, geometry.Sz(200, 100))

	if got := regions[0]; got != geometry.RectFromXYWH(0, 0, 200, 100) {
		t.Errorf("region = %v, want full 200x100", got)
	}
}

// TestNode_PaneRegionsOfVerticalSplit verifies an even two-pane arrangement.
func TestNode_PaneRegionsOfVerticalSplit(t *testing.T) {
	node := SplitNode(0, Vertical, 0.5, PaneNode(0), PaneNode(1))

	regions := node.PaneRegions(0, 0, geometry.Sz(200, 100))

	if got := regions[0]; got != geometry.RectFromXYWH(0, 0, 100, 100) {
		t.Errorf("pane 0 = %v, want left half", got)
	}
	if got := regions[1]; got != geometry.RectFromXYWH(100, 0, 100, 100) {
		t.Errorf("pane 1 = %v, want right half", got)
	}
}

// TestNode_MinimumSizeScalesWithPaneCount verifies that a side holding more
// panes reserves a minimum per pane, pushing the split over.
func TestNode_MinimumSizeScalesWithPaneCount(t *testing.T) {
	// Two panes stacked on the right side, one on the left. With a 50 px
	// minimum and a ratio pushing everything left, the right side still
	// gets 100 px for its two panes.
	inner := SplitNode(1, Horizontal, 0.5, PaneNode(1), PaneNode(2))
	node := SplitNode(0, Vertical, 0.99, PaneNode(0), inner)

	regions := node.PaneRegions(0, 50, geometry.Sz(300, 300))

	if got := regions[0].Width; got != 200 {
		t.Errorf("left pane width = %v, want 200", got)
	}
	if got := regions[1].Width; got != 100 {
		t.Errorf("right pane width = %v, want 100", got)
	}
}

// TestNode_SplitRegionsReportAppliedRatio verifies that clamped splits report
// the ratio actually used, not the stored one.
func TestNode_SplitRegionsReportAppliedRatio(t *testing.T) {
	node := SplitNode(0, Vertical, 0.01, PaneNode(0), PaneNode(1))

	splits := node.SplitRegions(0, 50, geometry.Sz(200, 200))

	region, ok := splits[0]
	if !ok {
		t.Fatal("split 0 missing from regions")
	}
	if region.Ratio != 0.25 {
		t.Errorf("applied ratio = %v, want clamped 0.25", region.Ratio)
	}
	if region.Axis != Vertical {
		t.Errorf("axis = %v, want vertical", region.Axis)
	}
}

// TestNode_PanesInTreeOrder verifies the left-to-right pane enumeration the
// grid uses for deterministic content ordering.
func TestNode_PanesInTreeOrder(t *testing.T) {
	node := SplitNode(0, Vertical, 0.5,
		SplitNode(1, Horizontal, 0.5, PaneNode(3), PaneNode(1)),
		PaneNode(2),
	)

	panes := node.Panes()
	want := []Pane{3, 1, 2}
	if len(panes) != len(want) {
		t.Fatalf("panes = %v, want %v", panes, want)
	}
	for i := range want {
		if panes[i] != want[i] {
			t.Fatalf("panes = %v, want %v", panes, want)
		}
	}

	splits := node.Splits()
	if len(splits) != 2 {
		t.Errorf("splits = %v, want 2 entries", splits)
	}
}

// TestNode_RemoveCollapsesIntoSibling verifies that deleting a pane hands its
// region to the sibling subtree.
func TestNode_RemoveCollapsesIntoSibling(t *testing.T) {
	node := SplitNode(0, Vertical, 0.5, PaneNode(0), PaneNode(1))

	sibling, ok := node.remove(1)
	if !ok {
		t.Fatal("remove should find pane 1")
	}
	if sibling != 0 {
		t.Errorf("sibling = %v, want 0", sibling)
	}
	if node.IsSplit() {
		t.Error("node should have collapsed into a leaf")
	}

	regions := node.PaneRegions(0, 0, geometry.Sz(100, 100))
	if got := regions[0]; got != geometry.RectFromXYWH(0, 0, 100, 100) {
		t.Errorf("surviving region = %v, want full size", got)
	}
}

// TestNode_RemoveDeepPane verifies removal below the root split.
func TestNode_RemoveDeepPane(t *testing.T) {
	node := SplitNode(0, Vertical, 0.5,
		SplitNode(1, Horizontal, 0.5, PaneNode(0), PaneNode(1)),
		PaneNode(2),
	)

	sibling, ok := node.remove(0)
	if !ok {
		t.Fatal("remove should find pane 0")
	}
	if sibling != 1 {
		t.Errorf("sibling = %v, want 1", sibling)
	}

	panes := node.Panes()
	if len(panes) != 2 {
		t.Fatalf("panes after removal = %v, want 2", panes)
	}
}

// TestNode_ResizeChangesOnlyTargetSplit verifies that resize finds the split
// by identifier anywhere in the tree.
func TestNode_ResizeChangesOnlyTargetSplit(t *testing.T) {
	node := SplitNode(0, Vertical, 0.5,
		SplitNode(1, Horizontal, 0.5, PaneNode(0), PaneNode(1)),
		PaneNode(2),
	)

	if !node.resize(1, 0.25) {
		t.Fatal("resize should find split 1")
	}
	if node.resize(9, 0.25) {
		t.Error("resize of an unknown split should report false")
	}

	splits := node.SplitRegions(0, 0, geometry.Sz(400, 400))
	if got := splits[1].Ratio; got != 0.25 {
		t.Errorf("split 1 ratio = %v, want 0.25", got)
	}
	if got := splits[0].Ratio; got != 0.5 {
		t.Errorf("split 0 ratio = %v, want untouched 0.5", got)
	}
}

// TestNode_HashReflectsStructure verifies that layout hashing distinguishes
// ratios and arrangements.
func TestNode_HashReflectsStructure(t *testing.T) {
	sum := func(n *Node) uint64 {
		h := layout.NewHasher()
		n.Hash(h)
		return h.Sum()
	}

	a := SplitNode(0, Vertical, 0.5, PaneNode(0), PaneNode(1))
	b := SplitNode(0, Vertical, 0.5, PaneNode(0), PaneNode(1))
	c := SplitNode(0, Vertical, 0.6, PaneNode(0), PaneNode(1))
	d := SplitNode(0, Horizontal, 0.5, PaneNode(0), PaneNode(1))

	if sum(a) != sum(b) {
		t.Error("identical trees should hash identically")
	}
	if sum(a) == sum(c) {
		t.Error("different ratios should hash differently")
	}
	if sum(a) == sum(d) {
		t.Error("different axes should hash differently")
	}
}
