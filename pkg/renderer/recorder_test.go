package renderer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/graphics"
)

// TestRecorder_RecordsPrimitivesInOrder verifies the recorded op list mirrors
// the draw calls.
func TestRecorder_RecordsPrimitivesInOrder(t *testing.T) {
	r := NewRecorder(geometry.Sz(100, 100))

	r.FillQuad(Quad{Bounds: geometry.RectFromXYWH(0, 0, 50, 50)}, graphics.ColorWhite)
	r.FillText(Text{Content: "hi", Size: 13, Color: graphics.ColorBlack}, geometry.Pt(10, 20))

	want := []Op{
		QuadOp{
			Quad:       Quad{Bounds: geometry.RectFromXYWH(0, 0, 50, 50)},
			Background: graphics.ColorWhite,
			Clip:       geometry.RectFromXYWH(0, 0, 100, 100),
			Transform:  geometry.Identity,
		},
		TextOp{
			Text:      Text{Content: "hi", Size: 13, Color: graphics.ColorBlack},
			Position:  geometry.Pt(10, 20),
			Clip:      geometry.RectFromXYWH(0, 0, 100, 100),
			Transform: geometry.Identity,
		},
	}
	if diff := cmp.Diff(want, r.Ops()); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

// TestRecorder_Reset verifies that a reset recorder starts a fresh frame.
func TestRecorder_Reset(t *testing.T) {
	r := NewRecorder(geometry.Sz(100, 100))
	r.FillQuad(Quad{Bounds: geometry.RectFromXYWH(0, 0, 10, 10)}, graphics.ColorWhite)

	r.Reset()

	if got := len(r.Ops()); got != 0 {
		t.Fatalf("ops after reset = %d, want 0", got)
	}

	r.WithLayer(geometry.RectFromXYWH(0, 0, 100, 100), func(nested Renderer) {
		nested.FillQuad(Quad{Bounds: geometry.RectFromXYWH(0, 0, 10, 10)}, graphics.ColorWhite)
	})
	if got := r.Ops()[0].(QuadOp).Layer; got != 1 {
		t.Errorf("first layer after reset = %d, want 1", got)
	}
}

// TestRecorder_WithLayer verifies that layers get fresh identifiers, clip to
// their bounds, and share the parent op list.
func TestRecorder_WithLayer(t *testing.T) {
	r := NewRecorder(geometry.Sz(100, 100))

	r.WithLayer(geometry.RectFromXYWH(20, 20, 120, 40), func(nested Renderer) {
		nested.FillQuad(Quad{Bounds: geometry.RectFromXYWH(30, 30, 10, 10)}, graphics.ColorWhite)
	})
	r.FillQuad(Quad{Bounds: geometry.RectFromXYWH(0, 0, 10, 10)}, graphics.ColorWhite)
	r.WithLayer(geometry.RectFromXYWH(0, 0, 50, 50), func(nested Renderer) {
		nested.FillQuad(Quad{Bounds: geometry.RectFromXYWH(0, 0, 10, 10)}, graphics.ColorWhite)
	})

	ops := r.Ops()
	if len(ops) != 3 {
		t.Fatalf("ops = %d, want 3", len(ops))
	}

	first := ops[0].(QuadOp)
	if first.Layer != 1 {
		t.Errorf("first layer = %d, want 1", first.Layer)
	}
	// The layer clip never escapes the recorder bounds.
	if first.Clip != geometry.RectFromXYWH(20, 20, 80, 40) {
		t.Errorf("first clip = %v, want (20, 20, 80, 40)", first.Clip)
	}

	if outer := ops[1].(QuadOp); outer.Layer != 0 {
		t.Errorf("outer layer = %d, want 0", outer.Layer)
	}
	if second := ops[2].(QuadOp); second.Layer != 2 {
		t.Errorf("second layer = %d, want 2", second.Layer)
	}
}

// TestRecorder_WithTransformationComposes verifies nested transformations
// multiply onto each other.
func TestRecorder_WithTransformationComposes(t *testing.T) {
	r := NewRecorder(geometry.Sz(100, 100))

	r.WithTransformation(geometry.Translate(10, 5), func(nested Renderer) {
		nested.WithTransformation(geometry.Scale(2), func(inner Renderer) {
			inner.FillQuad(Quad{Bounds: geometry.RectFromXYWH(0, 0, 10, 10)}, graphics.ColorWhite)
		})
	})

	got := r.Ops()[0].(QuadOp).Transform
	want := geometry.Translate(10, 5).Mul(geometry.Scale(2))
	if got != want {
		t.Errorf("transform = %v, want %v", got, want)
	}
}

// TestRecorder_MeasureText verifies the headless text metrics.
func TestRecorder_MeasureText(t *testing.T) {
	r := NewRecorder(geometry.Sz(100, 100))

	if got := r.MeasureText("", 14); got != (geometry.Size{}) {
		t.Errorf("empty measure = %v, want zero", got)
	}

	one := r.MeasureText("a", 14)
	if one.Height != 14 {
		t.Errorf("height = %v, want the requested size", one.Height)
	}
	if one.Width <= 0 {
		t.Errorf("width = %v, want positive", one.Width)
	}

	// The base face is monospaced, so the advance scales with length.
	two := r.MeasureText("aa", 14)
	if two.Width != 2*one.Width {
		t.Errorf("two-glyph width = %v, want %v", two.Width, 2*one.Width)
	}
}
