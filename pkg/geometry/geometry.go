// Package geometry provides the primitive 2D types used throughout the
// toolkit: points, sizes, vectors, rectangles, and affine transformations
// built from scaling and translation.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Point is a position in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt constructs a Point from x and y values.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by the given vector.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Vector {
	return Vector{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Size holds width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Sz constructs a Size from width and height values.
func Sz(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Expand grows the size by the given amounts on each axis.
func (s Size) Expand(width, height float64) Size {
	return Size{Width: s.Width + width, Height: s.Height + height}
}

// Min returns the component-wise minimum of two sizes.
func (s Size) Min(other Size) Size {
	return Size{
		Width:  math.Min(s.Width, other.Width),
		Height: math.Min(s.Height, other.Height),
	}
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{
		Width:  math.Max(s.Width, other.Width),
		Height: math.Max(s.Height, other.Height),
	}
}

// Vector is a 2D displacement.
type Vector struct {
	X float64
	Y float64
}

// Vec constructs a Vector from x and y values.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// IsZero reports whether both components are approximately zero.
func (v Vector) IsZero() bool {
	return floatEqual(v.X, 0) && floatEqual(v.Y, 0)
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromXYWH constructs a Rectangle from position and dimensions.
func RectFromXYWH(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// RectWithSize constructs a Rectangle at the origin with the given size.
func RectWithSize(size Size) Rectangle {
	return Rectangle{Width: size.Width, Height: size.Height}
}

// Position returns the top-left corner.
func (r Rectangle) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of the rectangle.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Center returns the center point of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Contains reports whether the point lies within the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Add returns the rectangle displaced by the given vector.
func (r Rectangle) Add(v Vector) Rectangle {
	return Rectangle{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}

// Shrink insets the rectangle by the given amount on every side.
func (r Rectangle) Shrink(amount float64) Rectangle {
	return Rectangle{
		X:      r.X + amount,
		Y:      r.Y + amount,
		Width:  math.Max(r.Width-2*amount, 0),
		Height: math.Max(r.Height-2*amount, 0),
	}
}

// Intersection returns the overlapping region of two rectangles, or an
// empty rectangle when they do not overlap.
func (r Rectangle) Intersection(other Rectangle) Rectangle {
	x := math.Max(r.X, other.X)
	y := math.Max(r.Y, other.Y)
	right := math.Min(r.X+r.Width, other.X+other.Width)
	bottom := math.Min(r.Y+r.Height, other.Y+other.Height)
	if x >= right || y >= bottom {
		return Rectangle{}
	}
	return Rectangle{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Intersects reports whether two rectangles overlap.
func (r Rectangle) Intersects(other Rectangle) bool {
	i := r.Intersection(other)
	return i.Width > 0 && i.Height > 0
}

// IsEmpty reports whether the rectangle has no area.
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
