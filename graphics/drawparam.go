package graphics

// DrawParam is the transient per-draw-call descriptor: source rectangle,
// destination, rotation, scale, pivot offset, shear, and tint color. It is
// converted once per draw into a matrix and an instance record and is never
// stored beyond the call.
type DrawParam struct {
	// Src is the portion of the drawable to draw, as a fraction of the
	// whole image. Defaults to the whole image.
	Src Rect

	// Dest is the position to draw at.
	Dest Point2

	// Rotation is the orientation in radians.
	Rotation float32

	// Scale holds the x/y scale factors.
	Scale Point2

	// Offset is a pivot offset from the center for rotation and scaling.
	Offset Point2

	// Shear holds the x/y shear factors.
	Shear Point2

	// Color tints the drawable.
	Color Color
}

// DefaultDrawParam returns a DrawParam drawing the whole image at the
// origin, unrotated, unscaled, untinted.
func DefaultDrawParam() DrawParam {
	return DrawParam{
		Src:   RectOne(),
		Scale: Point2{X: 1, Y: 1},
		Color: White,
	}
}

// ToMatrix converts the parameters into a model transform. The composition
// order is fixed: translation, then the pivot offset, rotation, shear, and
// scale, with the pivot offset undone innermost so rotation and scaling
// happen about the offset point.
func (p DrawParam) ToMatrix() Matrix4 {
	translate := Matrix4Translation(p.Dest.X, p.Dest.Y, 0)
	offset := Matrix4Translation(p.Offset.X, p.Offset.Y, 0)
	offsetInverse := Matrix4Translation(-p.Offset.X, -p.Offset.Y, 0)
	rotation := Matrix4RotationZ(p.Rotation)
	shear := Matrix4Shear(p.Shear.X, p.Shear.Y)
	scale := Matrix4Scale(p.Scale.X, p.Scale.Y, 1)
	return translate.Mul(offset).Mul(rotation).Mul(shear).Mul(scale).Mul(offsetInverse)
}
