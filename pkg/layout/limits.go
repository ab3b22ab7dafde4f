package layout

import (
	"math"

	"github.com/glacier-ui/glacier/pkg/geometry"
)

// Limits are the box constraints a parent imposes on a child: the child must
// produce a size between Min and Max on both axes.
type Limits struct {
	Min geometry.Size
	Max geometry.Size
}

// NewLimits constructs limits from minimum and maximum sizes.
func NewLimits(min, max geometry.Size) Limits {
	return Limits{Min: min, Max: max}
}

// LimitsWithin constructs loose limits bounded only by the given size.
func LimitsWithin(max geometry.Size) Limits {
	return Limits{Max: max}
}

// Width constrains the limits along the horizontal axis for the given
// length. Fixed lengths pin both bounds; fills and shrink leave the limits
// untouched, since their resolution happens in Resolve.
func (l Limits) Width(width Length) Limits {
	if width.unit == unitFixed {
		w := clamp(width.value, l.Min.Width, l.Max.Width)
		l.Min.Width = w
		l.Max.Width = w
	}
	return l
}

// Height constrains the limits along the vertical axis for the given length.
func (l Limits) Height(height Length) Limits {
	if height.unit == unitFixed {
		h := clamp(height.value, l.Min.Height, l.Max.Height)
		l.Min.Height = h
		l.Max.Height = h
	}
	return l
}

// Loose drops the minimum constraints.
func (l Limits) Loose() Limits {
	l.Min = geometry.Size{}
	return l
}

// Shrink reduces the limits by the given size on both axes.
func (l Limits) Shrink(size geometry.Size) Limits {
	l.Min.Width = math.Max(l.Min.Width-size.Width, 0)
	l.Min.Height = math.Max(l.Min.Height-size.Height, 0)
	l.Max.Width = math.Max(l.Max.Width-size.Width, 0)
	l.Max.Height = math.Max(l.Max.Height-size.Height, 0)
	return l
}

// ShrinkBy reduces the limits by the given padding.
func (l Limits) ShrinkBy(padding Padding) Limits {
	return l.Shrink(geometry.Size{Width: padding.Horizontal(), Height: padding.Vertical()})
}

// Resolve produces the final size for a widget with the given length
// strategies and intrinsic content size. Fills take the maximum, fixed
// lengths clamp their pixel value, shrink clamps the intrinsic size.
func (l Limits) Resolve(width, height Length, intrinsic geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  l.resolveAxis(width, intrinsic.Width, l.Min.Width, l.Max.Width),
		Height: l.resolveAxis(height, intrinsic.Height, l.Min.Height, l.Max.Height),
	}
}

func (l Limits) resolveAxis(length Length, intrinsic, min, max float64) float64 {
	switch length.unit {
	case unitFill, unitFillPortion:
		return max
	case unitFixed:
		return clamp(length.value, min, max)
	default:
		return clamp(intrinsic, min, max)
	}
}

func clamp(v, min, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}
