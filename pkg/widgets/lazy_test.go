package widgets

import (
	"testing"

	"github.com/glacier-ui/glacier/pkg/clipboard"
	"github.com/glacier-ui/glacier/pkg/core"
	"github.com/glacier-ui/glacier/pkg/event"
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/layout"
	"github.com/glacier-ui/glacier/pkg/mouse"
	"github.com/glacier-ui/glacier/pkg/renderer"
)

// TestLazy_ViewRunsOncePerDependencyChange verifies that the view function is
// only invoked when the dependency hash changes across frames.
func TestLazy_ViewRunsOncePerDependencyChange(t *testing.T) {
	calls := 0
	view := func() core.Element[string] {
		calls++
		return NewSpace[string](layout.Fixed(10), layout.Fixed(10)).Element()
	}

	tree := core.NewTree(NewLazy(view, "v1"))
	if calls != 1 {
		t.Fatalf("calls after first build = %d, want 1", calls)
	}

	// Same deps next frame: the cached subtree is reused untouched.
	tree.Diff(NewLazy(view, "v1"))
	if calls != 1 {
		t.Errorf("calls after unchanged diff = %d, want 1", calls)
	}

	// Changed deps: the view runs again.
	tree.Diff(NewLazy(view, "v2"))
	if calls != 2 {
		t.Errorf("calls after changed diff = %d, want 2", calls)
	}
}

// TestLazy_ParentLayoutReusesCachedView verifies that a flex parent asking
// for the lazy size after an unchanged diff does not run the view again: a
// fresh widget value must adopt the element cached in the tree.
func TestLazy_ParentLayoutReusesCachedView(t *testing.T) {
	calls := 0
	view := func() core.Element[string] {
		calls++
		return NewSpace[string](layout.Fixed(10), layout.Fixed(10)).Element()
	}
	buildRow := func() *Row[string] {
		return NewRow(NewLazy(view, "v1").Element())
	}

	r := renderer.NewRecorder(geometry.Sz(100, 100))

	first := buildRow()
	tree := core.NewTree(first)
	first.Layout(tree, r, layout.LimitsWithin(geometry.Sz(100, 100)))

	second := buildRow()
	tree.Diff(second)
	second.Layout(tree, r, layout.LimitsWithin(geometry.Sz(100, 100)))

	if calls != 1 {
		t.Errorf("view calls after second frame with unchanged deps = %d, want 1", calls)
	}
}

// TestLazy_HashCoversDependencyTypes verifies that differently typed deps
// with the same textual form still produce distinct widget hashes.
func TestLazy_HashCoversDependencyTypes(t *testing.T) {
	view := func() core.Element[string] {
		return NewSpace[string](layout.Fixed(10), layout.Fixed(10)).Element()
	}

	sum := func(l *Lazy[string]) uint64 {
		h := layout.NewHasher()
		l.HashLayout(h)
		return h.Sum()
	}

	if sum(NewLazy(view, 1, 2)) == sum(NewLazy(view, 12)) {
		t.Error("deps (1, 2) should not hash like (12)")
	}
	if sum(NewLazy(view, "a")) == sum(NewLazy(view, "b")) {
		t.Error("different string deps should hash differently")
	}
}

// TestResponsive_ViewRunsOncePerSize verifies that the responsive view is
// built lazily from the laid-out size and rebuilt only when that size
// changes.
func TestResponsive_ViewRunsOncePerSize(t *testing.T) {
	calls := 0
	var seen geometry.Size
	w := NewResponsive(func(size geometry.Size) core.Element[string] {
		calls++
		seen = size
		return NewSpace[string](layout.Fill, layout.Fill).Element()
	})

	tree := core.NewTree(w)
	r := renderer.NewRecorder(geometry.Sz(300, 200))

	node := w.Layout(tree, r, layout.LimitsWithin(geometry.Sz(300, 200)))
	if node.Size() != geometry.Sz(300, 200) {
		t.Fatalf("node size = %v, want full limits 300x200", node.Size())
	}
	if calls != 0 {
		t.Fatalf("view ran during layout, calls = %d", calls)
	}

	interact := func(n *layout.Node) {
		w.Update(
			tree, event.MouseMoved{Position: geometry.Pt(1, 1)},
			layout.NewLayout(n), mouse.Available(geometry.Pt(1, 1)),
			r, &clipboard.Memory{}, &core.Shell[string]{}, geometry.RectWithSize(geometry.Sz(300, 200)),
		)
	}

	interact(&node)
	if calls != 1 || seen != geometry.Sz(300, 200) {
		t.Fatalf("after first update calls = %d seen = %v, want 1 and 300x200", calls, seen)
	}

	// Same size next event: cached view survives.
	interact(&node)
	if calls != 1 {
		t.Errorf("calls after same-size update = %d, want 1", calls)
	}

	// New size: the view runs again.
	resized := w.Layout(tree, r, layout.LimitsWithin(geometry.Sz(100, 100)))
	interact(&resized)
	if calls != 2 || seen != geometry.Sz(100, 100) {
		t.Errorf("after resize calls = %d seen = %v, want 2 and 100x100", calls, seen)
	}
}
