package graphics

import "math"

// Color represents a color with red, green, blue, and alpha components.
// Components are nominally in [0, 1] but are not clamped on construction;
// out-of-range values are forwarded to the GPU, which clamps.
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Black = Color{R: 0, G: 0, B: 0, A: 1}
)

// NewColor creates a Color from normalized float components.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NewColorFromRGBA creates a Color from 8-bit RGBA components.
func NewColorFromRGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// ToRGBA returns the color as 8-bit RGBA components, clamping to [0, 255].
func (c Color) ToRGBA() (r, g, b, a uint8) {
	return uint8(clamp255(float64(c.R) * 255)),
		uint8(clamp255(float64(c.G) * 255)),
		uint8(clamp255(float64(c.B) * 255)),
		uint8(clamp255(float64(c.A) * 255))
}

// Mul returns the component-wise product of two colors.
func (c Color) Mul(other Color) Color {
	return Color{
		R: c.R * other.R,
		G: c.G * other.G,
		B: c.B * other.B,
		A: c.A * other.A,
	}
}

// vec4 returns the color as a float32 array for GPU upload.
func (c Color) vec4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// toLinear converts the sRGB-encoded color to the linear representation
// used by the GPU clear path. Alpha is passed through unchanged.
func (c Color) toLinear() [4]float32 {
	return [4]float32{
		srgbToLinear(c.R),
		srgbToLinear(c.G),
		srgbToLinear(c.B),
		c.A,
	}
}

func srgbToLinear(v float32) float32 {
	f := float64(v)
	if f <= 0.04045 {
		return float32(f / 12.92)
	}
	return float32(math.Pow((f+0.055)/1.055, 2.4))
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
