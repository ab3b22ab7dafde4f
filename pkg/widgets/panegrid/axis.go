// Package panegrid provides a grid of panes split along a binary tree of
// axes. Panes can be dragged onto each other, resized at their splits,
// closed, and maximized, with the arrangement held in an application-owned
// State.
package panegrid

import (
	"math"

	"github.com/glacier-ui/glacier/pkg/geometry"
)

// Axis is the direction of a split line.
type Axis int

const (
	// Horizontal cuts a region into a top and a bottom half.
	Horizontal Axis = iota
	// Vertical cuts a region into a left and a right half.
	Vertical
)

// String returns the axis name for debugging.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Split cuts the rectangle at the given ratio, leaving the given spacing
// between the halves. Each half is kept at least its minimum size; the
// returned ratio is the one actually applied after clamping.
func (a Axis) Split(
	rect geometry.Rectangle,
	ratio, spacing, minA, minB float64,
) (geometry.Rectangle, geometry.Rectangle, float64) {
	if a == Horizontal {
		top := math.Min(
			math.Max(math.Round(rect.Height*ratio-spacing/2), minA),
			rect.Height-minB-spacing,
		)
		bottom := math.Max(rect.Height-top-spacing, minB)

		first := rect
		first.Height = top

		second := rect
		second.Y = rect.Y + top + spacing
		second.Height = bottom

		return first, second, (top + spacing/2) / rect.Height
	}

	left := math.Min(
		math.Max(math.Round(rect.Width*ratio-spacing/2), minA),
		rect.Width-minB-spacing,
	)
	right := math.Max(rect.Width-left-spacing, minB)

	first := rect
	first.Width = left

	second := rect
	second.X = rect.X + left + spacing
	second.Width = right

	return first, second, (left + spacing/2) / rect.Width
}

// SplitLineBounds returns the rectangle covered by the split line itself.
func (a Axis) SplitLineBounds(rect geometry.Rectangle, ratio, spacing float64) geometry.Rectangle {
	if a == Horizontal {
		return geometry.Rectangle{
			X:      rect.X,
			Y:      math.Round(rect.Y + rect.Height*ratio - spacing/2),
			Width:  rect.Width,
			Height: spacing,
		}
	}
	return geometry.Rectangle{
		X:      math.Round(rect.X + rect.Width*ratio - spacing/2),
		Y:      rect.Y,
		Width:  spacing,
		Height: rect.Height,
	}
}
