package graphics

// Point2 is a 2D point or vector.
type Point2 struct {
	X, Y float32
}

// NewPoint2 creates a Point2.
func NewPoint2(x, y float32) Point2 {
	return Point2{X: x, Y: y}
}

// Rect is a rectangle. For screen coordinates X and Y are the center and
// W/H may be negative to represent flipped axes. When used as a texture
// source rectangle (DrawParam.Src), X and Y are the top-left corner and all
// fields are fractions of the whole image in [0, 1].
type Rect struct {
	X, Y, W, H float32
}

// NewRect creates a Rect.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectOne returns the unit rectangle {0, 0, 1, 1}, the default source
// rectangle selecting a whole image.
func RectOne() Rect {
	return Rect{X: 0, Y: 0, W: 1, H: 1}
}

// vec4 returns the rectangle as a float32 array for GPU upload.
func (r Rect) vec4() [4]float32 {
	return [4]float32{r.X, r.Y, r.W, r.H}
}
