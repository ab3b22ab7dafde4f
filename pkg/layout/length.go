// Package layout provides the sizing vocabulary and the geometry produced by
// laying widgets out: length strategies, box constraints, layout nodes, and
// the positioned view over them handed to widgets during dispatch.
package layout

import "fmt"

type lengthUnit int

const (
	unitShrink lengthUnit = iota
	unitFill
	unitFillPortion
	unitFixed
)

// Length is a sizing strategy along one axis.
type Length struct {
	unit  lengthUnit
	value float64
}

// Shrink sizes to the intrinsic content size.
var Shrink = Length{unit: unitShrink}

// Fill takes all the remaining space, sharing equally with sibling fills.
var Fill = Length{unit: unitFill, value: 1}

// FillPortion takes remaining space proportionally to the given weight.
func FillPortion(weight int) Length {
	if weight <= 0 {
		weight = 1
	}
	return Length{unit: unitFillPortion, value: float64(weight)}
}

// Fixed requests exactly the given number of pixels, clamped by limits.
func Fixed(pixels float64) Length {
	return Length{unit: unitFixed, value: pixels}
}

// FillFactor returns the weight of a fill length, or 0 for rigid lengths.
func (l Length) FillFactor() int {
	switch l.unit {
	case unitFill, unitFillPortion:
		return int(l.value)
	default:
		return 0
	}
}

// IsFill reports whether the length expands into remaining space.
func (l Length) IsFill() bool {
	return l.FillFactor() != 0
}

// String returns the length description for debugging.
func (l Length) String() string {
	switch l.unit {
	case unitShrink:
		return "shrink"
	case unitFill:
		return "fill"
	case unitFillPortion:
		return fmt.Sprintf("fill-portion(%d)", int(l.value))
	default:
		return fmt.Sprintf("fixed(%g)", l.value)
	}
}

// Hash folds the length into a structural layout hash.
func (l Length) Hash(h *Hasher) {
	h.WriteInt(int(l.unit))
	h.WriteFloat64(l.value)
}

// Padding is space around content, per side.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformPadding applies the same padding to every side.
func UniformPadding(amount float64) Padding {
	return Padding{Top: amount, Right: amount, Bottom: amount, Left: amount}
}

// Horizontal returns the total horizontal padding.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns the total vertical padding.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Hash folds the padding into a structural layout hash.
func (p Padding) Hash(h *Hasher) {
	h.WriteFloat64(p.Top)
	h.WriteFloat64(p.Right)
	h.WriteFloat64(p.Bottom)
	h.WriteFloat64(p.Left)
}

// Alignment positions content inside leftover space along one axis.
type Alignment int

const (
	// AlignStart packs content at the start of the axis.
	AlignStart Alignment = iota
	// AlignCenter centers content on the axis.
	AlignCenter
	// AlignEnd packs content at the end of the axis.
	AlignEnd
)

// String returns the alignment name for debugging.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unknown"
	}
}
