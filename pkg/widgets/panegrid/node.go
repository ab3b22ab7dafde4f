package panegrid

import (
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/layout"
)

// Node is one node of the pane layout tree: either a leaf holding a pane or
// a split holding two child nodes.
type Node struct {
	split *splitNode
	pane  Pane
}

type splitNode struct {
	id    Split
	axis  Axis
	ratio float64
	a, b  *Node
}

// PaneNode builds a leaf node.
func PaneNode(pane Pane) *Node {
	return &Node{pane: pane}
}

// SplitNode builds a split node over two children.
func SplitNode(id Split, axis Axis, ratio float64, a, b *Node) *Node {
	return &Node{split: &splitNode{id: id, axis: axis, ratio: ratio, a: a, b: b}}
}

// IsSplit reports whether the node is a split.
func (n *Node) IsSplit() bool {
	return n.split != nil
}

// SplitRegion is the geometry of one split: its axis, the region it divides,
// and the ratio it divides it at.
type SplitRegion struct {
	Axis   Axis
	Bounds geometry.Rectangle
	Ratio  float64
}

// Splits returns the identifiers of every split in the tree.
func (n *Node) Splits() []Split {
	var splits []Split
	n.walk(func(node *Node) {
		if node.split != nil {
			splits = append(splits, node.split.id)
		}
	})
	return splits
}

// Panes returns every pane in the tree, left to right.
func (n *Node) Panes() []Pane {
	var panes []Pane
	n.walk(func(node *Node) {
		if node.split == nil {
			panes = append(panes, node.pane)
		}
	})
	return panes
}

// PaneRegions computes the rectangle of every pane within the given size.
// Each pane is kept at least minSize wide and tall, scaled by how many panes
// share its side of each split.
func (n *Node) PaneRegions(spacing, minSize float64, size geometry.Size) map[Pane]geometry.Rectangle {
	regions := make(map[Pane]geometry.Rectangle)
	n.computeRegions(spacing, minSize, geometry.RectWithSize(size), regions, nil)
	return regions
}

// SplitRegions computes the geometry of every split within the given size.
// The reported ratios are the ones actually applied after minimum-size
// clamping.
func (n *Node) SplitRegions(spacing, minSize float64, size geometry.Size) map[Split]SplitRegion {
	splits := make(map[Split]SplitRegion)
	n.computeRegions(spacing, minSize, geometry.RectWithSize(size), nil, splits)
	return splits
}

func (n *Node) computeRegions(
	spacing, minSize float64,
	current geometry.Rectangle,
	regions map[Pane]geometry.Rectangle,
	splits map[Split]SplitRegion,
) {
	if n.split == nil {
		if regions != nil {
			regions[n.pane] = current
		}
		return
	}

	s := n.split
	a, b, ratio := s.axis.Split(
		current, s.ratio, spacing,
		float64(s.a.paneCount())*minSize,
		float64(s.b.paneCount())*minSize,
	)

	if splits != nil {
		splits[s.id] = SplitRegion{Axis: s.axis, Bounds: current, Ratio: ratio}
	}

	s.a.computeRegions(spacing, minSize, a, regions, splits)
	s.b.computeRegions(spacing, minSize, b, regions, splits)
}

// find returns the leaf holding the given pane.
func (n *Node) find(pane Pane) *Node {
	if n.split != nil {
		if found := n.split.a.find(pane); found != nil {
			return found
		}
		return n.split.b.find(pane)
	}
	if n.pane == pane {
		return n
	}
	return nil
}

// splitLeaf turns the node into a split holding its former content on side A
// and the new pane on side B.
func (n *Node) splitLeaf(id Split, axis Axis, newPane Pane) {
	old := *n
	*n = Node{split: &splitNode{id: id, axis: axis, ratio: 0.5, a: &old, b: PaneNode(newPane)}}
}

// splitInverse is splitLeaf with the new pane on side A.
func (n *Node) splitInverse(id Split, axis Axis, newPane Pane) {
	old := *n
	*n = Node{split: &splitNode{id: id, axis: axis, ratio: 0.5, a: PaneNode(newPane), b: &old}}
}

// update applies f to every node, children first.
func (n *Node) update(f func(*Node)) {
	if n.split != nil {
		n.split.a.update(f)
		n.split.b.update(f)
	}
	f(n)
}

func (n *Node) walk(f func(*Node)) {
	f(n)
	if n.split != nil {
		n.split.a.walk(f)
		n.split.b.walk(f)
	}
}

// resize sets the ratio of the given split, reporting whether it was found.
func (n *Node) resize(split Split, ratio float64) bool {
	if n.split == nil {
		return false
	}
	if n.split.id == split {
		n.split.ratio = ratio
		return true
	}
	return n.split.a.resize(split, ratio) || n.split.b.resize(split, ratio)
}

// remove deletes the given pane, collapsing its parent split into the
// sibling. It returns the pane that took over the freed region.
func (n *Node) remove(pane Pane) (Pane, bool) {
	if n.split == nil {
		return 0, false
	}

	s := n.split
	if s.a.split == nil && s.a.pane == pane {
		*n = *s.b
		return n.firstPane(), true
	}
	if s.b.split == nil && s.b.pane == pane {
		*n = *s.a
		return n.firstPane(), true
	}

	if sibling, ok := s.a.remove(pane); ok {
		return sibling, true
	}
	return s.b.remove(pane)
}

func (n *Node) paneCount() int {
	if n.split == nil {
		return 1
	}
	return n.split.a.paneCount() + n.split.b.paneCount()
}

func (n *Node) firstPane() Pane {
	if n.split != nil {
		return n.split.a.firstPane()
	}
	return n.pane
}

// Hash folds the tree structure into a layout hash. Ratios are quantized so
// sub-pixel jitter does not defeat layout caching.
func (n *Node) Hash(h *layout.Hasher) {
	if n.split == nil {
		h.WriteInt(int(n.pane))
		return
	}
	s := n.split
	h.WriteInt(int(s.id))
	h.WriteInt(int(s.axis))
	h.WriteUint64(uint64(s.ratio * 100000))
	s.a.Hash(h)
	s.b.Hash(h)
}
