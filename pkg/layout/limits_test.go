package layout

import (
	"testing"

	"github.com/glacier-ui/glacier/pkg/geometry"
)

// TestLimits_WidthFixedPinsBothBounds verifies that a fixed length turns the
// axis into an exact constraint, clamped to the incoming limits.
func TestLimits_WidthFixedPinsBothBounds(t *testing.T) {
	limits := LimitsWithin(geometry.Sz(200, 100)).Width(Fixed(80))

	if limits.Min.Width != 80 || limits.Max.Width != 80 {
		t.Errorf("width bounds = [%v, %v], want [80, 80]", limits.Min.Width, limits.Max.Width)
	}

	clamped := LimitsWithin(geometry.Sz(50, 100)).Width(Fixed(80))
	if clamped.Max.Width != 50 {
		t.Errorf("clamped width = %v, want 50", clamped.Max.Width)
	}
}

// TestLimits_ResolveFillTakesMax verifies that fill lengths resolve to the
// maximum regardless of intrinsic size.
func TestLimits_ResolveFillTakesMax(t *testing.T) {
	limits := LimitsWithin(geometry.Sz(200, 100))

	size := limits.Resolve(Fill, Fill, geometry.Sz(10, 10))
	if size != geometry.Sz(200, 100) {
		t.Errorf("resolved = %v, want 200x100", size)
	}
}

// TestLimits_ResolveShrinkClampsIntrinsic verifies that shrink lengths keep
// the intrinsic size within the limits.
func TestLimits_ResolveShrinkClampsIntrinsic(t *testing.T) {
	limits := NewLimits(geometry.Sz(50, 20), geometry.Sz(200, 100))

	small := limits.Resolve(Shrink, Shrink, geometry.Sz(10, 10))
	if small != geometry.Sz(50, 20) {
		t.Errorf("small intrinsic resolved = %v, want 50x20", small)
	}

	large := limits.Resolve(Shrink, Shrink, geometry.Sz(400, 300))
	if large != geometry.Sz(200, 100) {
		t.Errorf("large intrinsic resolved = %v, want 200x100", large)
	}
}

// TestLimits_ShrinkBy verifies that padding reduces both bounds without going
// negative.
func TestLimits_ShrinkBy(t *testing.T) {
	limits := NewLimits(geometry.Sz(10, 10), geometry.Sz(100, 50)).ShrinkBy(UniformPadding(8))

	if limits.Max != geometry.Sz(84, 34) {
		t.Errorf("max after shrink = %v, want 84x34", limits.Max)
	}
	if limits.Min.Width != 0 || limits.Min.Height != 0 {
		t.Errorf("min after shrink = %v, want zero", limits.Min)
	}
}

// TestNode_MoveToTranslatesBounds verifies that positioning a node leaves its
// children untouched; layouts resolve child positions relative to parents.
func TestNode_MoveToTranslatesBounds(t *testing.T) {
	child := NewNode(geometry.Sz(10, 10))
	node := NodeWithChildren(geometry.Sz(100, 100), []Node{child}).MoveTo(geometry.Pt(20, 30))

	if node.Bounds().Position() != geometry.Pt(20, 30) {
		t.Errorf("position = %v, want (20, 30)", node.Bounds().Position())
	}
}

// TestLayout_ChildrenAreAbsolute verifies that walking a layout offsets child
// bounds by every ancestor position.
func TestLayout_ChildrenAreAbsolute(t *testing.T) {
	grandchild := NewNode(geometry.Sz(10, 10)).MoveTo(geometry.Pt(5, 5))
	child := NodeWithChildren(geometry.Sz(50, 50), []Node{grandchild}).MoveTo(geometry.Pt(20, 20))
	root := NodeWithChildren(geometry.Sz(100, 100), []Node{child})

	lay := NewLayout(&root)
	inner := lay.Children()[0].Children()[0]

	if inner.Bounds().Position() != geometry.Pt(25, 25) {
		t.Errorf("grandchild position = %v, want (25, 25)", inner.Bounds().Position())
	}
}

// TestHasher_Deterministic verifies that identical write sequences produce
// identical sums and a different sequence does not.
func TestHasher_Deterministic(t *testing.T) {
	sum := func(f func(h *Hasher)) uint64 {
		h := NewHasher()
		f(h)
		return h.Sum()
	}

	a := sum(func(h *Hasher) { h.WriteFloat64(1.5); h.WriteString("row"); h.WriteBool(true) })
	b := sum(func(h *Hasher) { h.WriteFloat64(1.5); h.WriteString("row"); h.WriteBool(true) })
	c := sum(func(h *Hasher) { h.WriteFloat64(2.5); h.WriteString("row"); h.WriteBool(true) })

	if a != b {
		t.Error("identical writes should hash identically")
	}
	if a == c {
		t.Error("different writes should hash differently")
	}
}

// TestHasher_StringsAreLengthPrefixed verifies that adjacent strings do not
// collide by concatenation.
func TestHasher_StringsAreLengthPrefixed(t *testing.T) {
	h1 := NewHasher()
	h1.WriteString("ab")
	h1.WriteString("c")

	h2 := NewHasher()
	h2.WriteString("a")
	h2.WriteString("bc")

	if h1.Sum() == h2.Sum() {
		t.Error(`"ab"+"c" should not hash like "a"+"bc"`)
	}
}
