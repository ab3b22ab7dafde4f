package core

// TreeSource is the slice of the widget contract the state tree needs to
// build and reconcile nodes. Every Widget implementation satisfies it.
type TreeSource interface {
	// Tag returns the type identity of the widget's state.
	Tag() Tag
	// State builds the initial state for a fresh tree node.
	State() State
	// Children builds fresh tree nodes for the widget's children.
	Children() []*Tree
	// Diff reconciles an existing tree node against this widget.
	Diff(tree *Tree)
}

// Tree is one node of the persistent state tree. The tree outlives the
// ephemeral widget values: every frame the rebuilt widgets are diffed
// against it, keeping state wherever tags still match and resetting it
// wherever the widget type changed.
type Tree struct {
	Tag      Tag
	State    State
	Children []*Tree
}

// EmptyTree returns a stateless leaf node.
func EmptyTree() *Tree {
	return &Tree{}
}

// NewTree builds the state node for a widget, including its subtree.
func NewTree(w TreeSource) *Tree {
	return &Tree{
		Tag:      w.Tag(),
		State:    w.State(),
		Children: w.Children(),
	}
}

// Diff reconciles the node against a rebuilt widget. Matching tags keep the
// state and recurse through the widget's own Diff; a mismatch resets the
// whole subtree.
func (t *Tree) Diff(w TreeSource) {
	if t.Tag == w.Tag() {
		w.Diff(t)
	} else {
		*t = *NewTree(w)
	}
}

// DiffChildren reconciles the node's children against a rebuilt child list:
// surplus state nodes are dropped from the end, the overlapping prefix is
// diffed pairwise by index, and fresh nodes are appended for new children.
func (t *Tree) DiffChildren(children []TreeSource) {
	t.DiffChildrenCustom(
		len(children),
		func(node *Tree, i int) { node.Diff(children[i]) },
		func(i int) *Tree { return NewTree(children[i]) },
	)
}

// DiffChildrenCustom is DiffChildren with the per-child operations supplied
// as closures, for containers whose children are not plain widgets.
func (t *Tree) DiffChildrenCustom(
	count int,
	diff func(node *Tree, i int),
	newNode func(i int) *Tree,
) {
	if len(t.Children) > count {
		t.Children = t.Children[:count]
	}

	for i, child := range t.Children {
		diff(child, i)
	}

	for i := len(t.Children); i < count; i++ {
		t.Children = append(t.Children, newNode(i))
	}
}

// DiffChildrenCustomWithSearch reconciles children when the caller can tell
// where the list changed. maybeChanged reports whether the child at an index
// may differ from the state stored there; removals and insertions splice at
// the first such index instead of the end, so surviving children keep their
// state even when their positions shifted.
func (t *Tree) DiffChildrenCustomWithSearch(
	count int,
	diff func(node *Tree, i int),
	newNode func(i int) *Tree,
	maybeChanged func(i int) bool,
) {
	if len(t.Children) > count {
		removed := len(t.Children) - count

		first := count
		for i := 0; i < count; i++ {
			if maybeChanged(i) {
				first = i
				break
			}
		}

		if first+removed <= len(t.Children) {
			t.Children = append(t.Children[:first], t.Children[first+removed:]...)
		} else {
			t.Children = t.Children[:count]
		}
	}

	if len(t.Children) < count {
		added := count - len(t.Children)

		first := -1
		for i := range t.Children {
			if maybeChanged(i) {
				first = i
				break
			}
		}

		if first >= 0 {
			inserted := make([]*Tree, added)
			for i := range inserted {
				inserted[i] = newNode(first + i)
			}
			t.Children = append(t.Children[:first], append(inserted, t.Children[first:]...)...)
		} else {
			for i := len(t.Children); i < count; i++ {
				t.Children = append(t.Children, newNode(i))
			}
		}
	}

	for i, child := range t.Children {
		diff(child, i)
	}
}
