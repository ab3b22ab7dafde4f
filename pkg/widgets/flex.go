// Package widgets provides the built-in widget set: linear containers,
// stacks, text, interaction areas, and the caching wrappers Lazy,
// Responsive, and Float.
package widgets

import (
	"math"

	"github.com/glacier-ui/glacier/pkg/core"
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/layout"
	"github.com/glacier-ui/glacier/pkg/renderer"
)

// Axis is the main direction of a linear container.
type Axis int

const (
	// Horizontal lays children out left to right.
	Horizontal Axis = iota
	// Vertical lays children out top to bottom.
	Vertical
)

// String returns the axis name for debugging.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

func (a Axis) main(s geometry.Size) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

func (a Axis) cross(s geometry.Size) float64 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

func (a Axis) pack(main, cross float64) geometry.Size {
	if a == Horizontal {
		return geometry.Size{Width: main, Height: cross}
	}
	return geometry.Size{Width: cross, Height: main}
}

func (a Axis) mainLength(width, height layout.Length) layout.Length {
	if a == Horizontal {
		return width
	}
	return height
}

func (a Axis) crossLength(width, height layout.Length) layout.Length {
	if a == Horizontal {
		return height
	}
	return width
}

// ResolveFlex lays the children of a linear container out in two passes:
// rigid children first against loose limits, then the remaining main-axis
// space split between fill children proportionally to their fill factors.
// It is shared by Row, Column, and the keyed containers.
func ResolveFlex[M any](
	axis Axis,
	r renderer.Renderer,
	limits layout.Limits,
	width, height layout.Length,
	padding layout.Padding,
	spacing float64,
	align layout.Alignment,
	children []core.Element[M],
	trees []*core.Tree,
) layout.Node {
	limits = limits.Width(width).Height(height)
	inner := limits.ShrinkBy(padding)

	totalSpacing := spacing * float64(max(len(children)-1, 0))
	maxMain := axis.main(inner.Max)
	maxCross := axis.cross(inner.Max)

	available := maxMain - totalSpacing
	fillSum := 0
	cross := 0.0

	nodes := make([]layout.Node, len(children))

	// First pass: rigid children get loose limits bounded by what is left.
	for i, child := range children {
		w, h := child.Widget().Size()
		factor := axis.mainLength(w, h).FillFactor()
		if factor != 0 {
			fillSum += factor
			continue
		}

		childLimits := layout.NewLimits(
			geometry.Size{},
			axis.pack(math.Max(available, 0), maxCross),
		)
		node := child.Widget().Layout(trees[i], r, childLimits)
		size := node.Size()

		available -= axis.main(size)
		cross = math.Max(cross, axis.cross(size))
		nodes[i] = node
	}

	// Second pass: split the remaining space between fill children.
	if fillSum > 0 {
		remaining := math.Max(available, 0)
		for i, child := range children {
			w, h := child.Widget().Size()
			factor := axis.mainLength(w, h).FillFactor()
			if factor == 0 {
				continue
			}

			main := remaining * float64(factor) / float64(fillSum)
			minCross := 0.0
			if axis.crossLength(w, h).IsFill() {
				minCross = cross
			}
			childLimits := layout.NewLimits(
				axis.pack(main, minCross),
				axis.pack(main, maxCross),
			)
			node := child.Widget().Layout(trees[i], r, childLimits)
			cross = math.Max(cross, axis.cross(node.Size()))
			nodes[i] = node
		}
	}

	// Positioning pass.
	var mainStart, crossStart float64
	if axis == Horizontal {
		mainStart, crossStart = padding.Left, padding.Top
	} else {
		mainStart, crossStart = padding.Top, padding.Left
	}

	cursor := mainStart
	for i := range nodes {
		if i > 0 {
			cursor += spacing
		}
		var position geometry.Point
		if axis == Horizontal {
			position = geometry.Point{X: cursor, Y: crossStart}
		} else {
			position = geometry.Point{X: crossStart, Y: cursor}
		}
		nodes[i] = nodes[i].MoveTo(position)
		if axis == Horizontal {
			nodes[i] = nodes[i].Align(layout.AlignStart, align, axis.pack(axis.main(nodes[i].Size()), cross))
		} else {
			nodes[i] = nodes[i].Align(align, layout.AlignStart, axis.pack(axis.main(nodes[i].Size()), cross))
		}
		cursor += axis.main(nodes[i].Size())
	}

	intrinsic := axis.pack(cursor-mainStart, cross)
	size := inner.Resolve(width, height, intrinsic)

	return layout.NodeWithChildren(
		size.Expand(padding.Horizontal(), padding.Vertical()),
		nodes,
	)
}

// hashFlexChildren folds child layout hashes into a container hash,
// reporting false if any child does not support hashing.
func hashFlexChildren[M any](children []core.Element[M], h *layout.Hasher) bool {
	for _, child := range children {
		if !core.HashLayout(child.Widget(), h) {
			return false
		}
	}
	return true
}

// childrenHashable reports whether every child supports layout hashing.
func childrenHashable[M any](children []core.Element[M]) bool {
	for _, child := range children {
		if !widgetHashable(child.Widget()) {
			return false
		}
	}
	return true
}

func widgetHashable(w any) bool {
	if _, ok := w.(core.LayoutHasher); !ok {
		return false
	}
	if gate, ok := w.(interface{ CanHashLayout() bool }); ok {
		return gate.CanHashLayout()
	}
	return true
}
