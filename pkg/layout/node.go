package layout

import "github.com/glacier-ui/glacier/pkg/geometry"

// Node is the sizing result of one widget: its bounds relative to the parent
// origin and the nodes of its children.
type Node struct {
	bounds   geometry.Rectangle
	children []Node
}

// NewNode constructs a childless node of the given size at the origin.
func NewNode(size geometry.Size) Node {
	return Node{bounds: geometry.RectWithSize(size)}
}

// NodeWithChildren constructs a node of the given size holding the given
// child nodes.
func NodeWithChildren(size geometry.Size, children []Node) Node {
	return Node{bounds: geometry.RectWithSize(size), children: children}
}

// Size returns the node dimensions.
func (n Node) Size() geometry.Size {
	return n.bounds.Size()
}

// Bounds returns the node rectangle relative to the parent origin.
func (n Node) Bounds() geometry.Rectangle {
	return n.bounds
}

// Children returns the child nodes.
func (n Node) Children() []Node {
	return n.children
}

// MoveTo positions the node at the given point within its parent.
func (n Node) MoveTo(position geometry.Point) Node {
	n.bounds.X = position.X
	n.bounds.Y = position.Y
	return n
}

// Translate displaces the node by the given vector.
func (n Node) Translate(v geometry.Vector) Node {
	n.bounds = n.bounds.Add(v)
	return n
}

// Align positions the node inside the given space according to the
// horizontal and vertical alignments.
func (n Node) Align(horizontal, vertical Alignment, space geometry.Size) Node {
	switch horizontal {
	case AlignCenter:
		n.bounds.X += (space.Width - n.bounds.Width) / 2
	case AlignEnd:
		n.bounds.X += space.Width - n.bounds.Width
	}
	switch vertical {
	case AlignCenter:
		n.bounds.Y += (space.Height - n.bounds.Height) / 2
	case AlignEnd:
		n.bounds.Y += space.Height - n.bounds.Height
	}
	return n
}

// Layout is a positioned view over a Node: it carries the absolute position
// of the node so bounds and children resolve to window coordinates.
type Layout struct {
	position geometry.Point
	node     *Node
}

// NewLayout wraps the root node at the window origin.
func NewLayout(node *Node) Layout {
	return Layout{node: node}
}

// LayoutAt wraps a node at the given absolute position. Widgets that keep a
// privately laid out subtree use it to position that subtree in window
// coordinates.
func LayoutAt(position geometry.Point, node *Node) Layout {
	return Layout{position: position, node: node}
}

// Position returns the absolute top-left corner of the node.
func (l Layout) Position() geometry.Point {
	return geometry.Point{
		X: l.position.X + l.node.bounds.X,
		Y: l.position.Y + l.node.bounds.Y,
	}
}

// Bounds returns the node rectangle in window coordinates.
func (l Layout) Bounds() geometry.Rectangle {
	p := l.Position()
	return geometry.Rectangle{
		X:      p.X,
		Y:      p.Y,
		Width:  l.node.bounds.Width,
		Height: l.node.bounds.Height,
	}
}

// Children returns positioned views over the child nodes.
func (l Layout) Children() []Layout {
	origin := l.Position()
	children := make([]Layout, len(l.node.children))
	for i := range l.node.children {
		children[i] = Layout{position: origin, node: &l.node.children[i]}
	}
	return children
}
