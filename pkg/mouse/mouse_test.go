package mouse

import (
	"testing"

	"github.com/glacier-ui/glacier/pkg/geometry"
)

// TestCursor_PositionOver verifies that the position is only reported while
// the cursor lies inside the bounds.
func TestCursor_PositionOver(t *testing.T) {
	bounds := geometry.RectFromXYWH(10, 10, 100, 50)

	if _, ok := Available(geometry.Pt(50, 30)).PositionOver(bounds); !ok {
		t.Error("cursor inside bounds should report a position")
	}
	if _, ok := Available(geometry.Pt(5, 30)).PositionOver(bounds); ok {
		t.Error("cursor outside bounds should not report a position")
	}
	if _, ok := Unavailable().PositionOver(bounds); ok {
		t.Error("unavailable cursor should not report a position")
	}
}

// TestCursor_PositionIn verifies that the reported position is relative to
// the bounds origin.
func TestCursor_PositionIn(t *testing.T) {
	bounds := geometry.RectFromXYWH(10, 10, 100, 50)

	p, ok := Available(geometry.Pt(50, 30)).PositionIn(bounds)
	if !ok {
		t.Fatal("cursor inside bounds should report a position")
	}
	if p != geometry.Pt(40, 20) {
		t.Errorf("relative position = %v, want (40, 20)", p)
	}
}

// TestCursor_Levitate verifies that a levitated cursor stops hovering and
// withholds its position until landed.
func TestCursor_Levitate(t *testing.T) {
	bounds := geometry.RectFromXYWH(0, 0, 100, 100)
	cursor := Available(geometry.Pt(50, 50)).Levitate()

	if !cursor.IsLevitating() {
		t.Error("levitated cursor should report levitating")
	}
	if cursor.IsOver(bounds) {
		t.Error("levitated cursor should not hover")
	}
	if _, ok := cursor.Position(); ok {
		t.Error("levitated cursor should withhold its position")
	}

	landed := cursor.Land()
	if !landed.IsOver(bounds) {
		t.Error("landed cursor should hover again")
	}
	if p, ok := landed.Position(); !ok || p != geometry.Pt(50, 50) {
		t.Errorf("landed position = %v, %v, want (50, 50)", p, ok)
	}
}

// TestCursor_Transform verifies that transforming maps the position through
// the given transformation; overlays pass the inverse to get local cursors.
func TestCursor_Transform(t *testing.T) {
	cursor := Available(geometry.Pt(20, 40)).Transform(geometry.Translate(10, 10).Inverse())

	p, ok := cursor.Position()
	if !ok {
		t.Fatal("transformed cursor should keep a position")
	}
	if p != geometry.Pt(10, 30) {
		t.Errorf("transformed position = %v, want (10, 30)", p)
	}
}

// TestInteraction_Merge verifies that merging keeps the higher-priority
// interaction regardless of order.
func TestInteraction_Merge(t *testing.T) {
	if got := InteractionNone.Merge(InteractionPointer); got != InteractionPointer {
		t.Errorf("merge = %v, want pointer", got)
	}
	if got := InteractionGrabbing.Merge(InteractionIdle); got != InteractionGrabbing {
		t.Errorf("merge = %v, want grabbing", got)
	}
}
