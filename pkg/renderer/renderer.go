// Package renderer defines the drawing capability handed to widgets, plus a
// headless recording implementation used by tests and tooling.
package renderer

import (
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/graphics"
)

// Style is the inherited drawing style of a subtree.
type Style struct {
	// TextColor is the default text color.
	TextColor graphics.Color
}

// Border describes the stroked edge of a quad.
type Border struct {
	Color  graphics.Color
	Width  float64
	Radius float64
}

// Shadow describes the drop shadow of a quad.
type Shadow struct {
	Color  graphics.Color
	Offset geometry.Vector
	Blur   float64
}

// Quad is a styled rectangle primitive.
type Quad struct {
	Bounds geometry.Rectangle
	Border Border
	Shadow Shadow
}

// Text is a run of text to draw or measure.
type Text struct {
	Content string
	Size    float64
	Color   graphics.Color
}

// Renderer is the drawing capability passed down every draw and layout pass.
// Layers establish clipping and draw order for stacked content; the
// transformation scope repositions everything drawn inside it.
type Renderer interface {
	// FillQuad draws a styled rectangle with the given background.
	FillQuad(quad Quad, background graphics.Color)
	// FillText draws a run of text anchored at its top-left corner.
	FillText(text Text, position geometry.Point)
	// MeasureText returns the size the given text occupies.
	MeasureText(content string, size float64) geometry.Size
	// WithLayer clips and defers everything drawn by f to a fresh layer
	// above the current one.
	WithLayer(bounds geometry.Rectangle, f func(Renderer))
	// WithTransformation applies t to everything drawn by f.
	WithTransformation(t geometry.Transformation, f func(Renderer))
}
