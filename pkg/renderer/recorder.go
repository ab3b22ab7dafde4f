package renderer

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/graphics"
)

// face is the metrics source for headless text measurement.
var face = basicfont.Face7x13

// Op is one recorded drawing operation.
type Op interface {
	isOp()
}

// QuadOp records a FillQuad call.
type QuadOp struct {
	Quad       Quad
	Background graphics.Color
	Layer      int
	Clip       geometry.Rectangle
	Transform  geometry.Transformation
}

// TextOp records a FillText call.
type TextOp struct {
	Text      Text
	Position  geometry.Point
	Layer     int
	Clip      geometry.Rectangle
	Transform geometry.Transformation
}

func (QuadOp) isOp() {}
func (TextOp) isOp() {}

// Recorder is a headless Renderer that appends every primitive to a list.
// Text metrics come from the basicfont face scaled to the requested size, so
// layout behaves like a real backend without a shaping engine.
type Recorder struct {
	ops       *[]Op
	layer     int
	nextLayer *int
	clip      geometry.Rectangle
	transform geometry.Transformation
}

// NewRecorder returns an empty recording renderer covering the given bounds.
func NewRecorder(bounds geometry.Size) *Recorder {
	ops := make([]Op, 0, 64)
	next := 1
	return &Recorder{
		ops:       &ops,
		nextLayer: &next,
		clip:      geometry.RectWithSize(bounds),
		transform: geometry.Identity,
	}
}

// Ops returns the recorded operations in draw order.
func (r *Recorder) Ops() []Op {
	return *r.ops
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	*r.ops = (*r.ops)[:0]
	*r.nextLayer = 1
}

// FillQuad records a styled rectangle.
func (r *Recorder) FillQuad(quad Quad, background graphics.Color) {
	*r.ops = append(*r.ops, QuadOp{
		Quad:       quad,
		Background: background,
		Layer:      r.layer,
		Clip:       r.clip,
		Transform:  r.transform,
	})
}

// FillText records a text run.
func (r *Recorder) FillText(text Text, position geometry.Point) {
	*r.ops = append(*r.ops, TextOp{
		Text:      text,
		Position:  position,
		Layer:     r.layer,
		Clip:      r.clip,
		Transform: r.transform,
	})
}

// MeasureText returns the advance width and line height of the text at the
// given size, scaled from the base face metrics.
func (r *Recorder) MeasureText(content string, size float64) geometry.Size {
	if content == "" || size <= 0 {
		return geometry.Size{}
	}
	advance := font.MeasureString(face, content)
	baseHeight := float64(face.Metrics().Height.Ceil())
	scale := size / baseHeight
	return geometry.Size{
		Width:  float64(advance.Ceil()) * scale,
		Height: size,
	}
}

// WithLayer runs f with a fresh layer clipped to bounds.
func (r *Recorder) WithLayer(bounds geometry.Rectangle, f func(Renderer)) {
	layer := *r.nextLayer
	*r.nextLayer = layer + 1

	nested := *r
	nested.layer = layer
	nested.clip = r.clip.Intersection(bounds)
	f(&nested)
}

// WithTransformation runs f with t composed onto the current transformation.
func (r *Recorder) WithTransformation(t geometry.Transformation, f func(Renderer)) {
	nested := *r
	nested.transform = r.transform.Mul(t)
	f(&nested)
}
