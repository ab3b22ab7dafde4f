package geometry

// Transformation is an affine map composed of a uniform scale followed by a
// translation. Compositions of scales and translations stay in this form,
// which is all the toolkit needs to reposition floating content.
type Transformation struct {
	Scale       float64
	Translation Vector
}

// Identity is the transformation that maps every point to itself.
var Identity = Transformation{Scale: 1}

// Translate builds a pure translation.
func Translate(x, y float64) Transformation {
	return Transformation{Scale: 1, Translation: Vector{X: x, Y: y}}
}

// Scale builds a uniform scale about the origin.
func Scale(factor float64) Transformation {
	return Transformation{Scale: factor}
}

// Mul composes t with other, applying other first.
func (t Transformation) Mul(other Transformation) Transformation {
	return Transformation{
		Scale: t.Scale * other.Scale,
		Translation: Vector{
			X: t.Scale*other.Translation.X + t.Translation.X,
			Y: t.Scale*other.Translation.Y + t.Translation.Y,
		},
	}
}

// Inverse returns the transformation that undoes t.
func (t Transformation) Inverse() Transformation {
	inv := 1 / t.Scale
	return Transformation{
		Scale: inv,
		Translation: Vector{
			X: -t.Translation.X * inv,
			Y: -t.Translation.Y * inv,
		},
	}
}

// ApplyPoint maps a point through the transformation.
func (t Transformation) ApplyPoint(p Point) Point {
	return Point{
		X: p.X*t.Scale + t.Translation.X,
		Y: p.Y*t.Scale + t.Translation.Y,
	}
}

// ApplyRect maps a rectangle through the transformation.
func (t Transformation) ApplyRect(r Rectangle) Rectangle {
	origin := t.ApplyPoint(r.Position())
	return Rectangle{
		X:      origin.X,
		Y:      origin.Y,
		Width:  r.Width * t.Scale,
		Height: r.Height * t.Scale,
	}
}
