package graphics

import (
	"math"
	"testing"
)

func TestColorRGBARoundTrip(t *testing.T) {
	c := NewColorFromRGBA(255, 128, 0, 255)
	r, g, b, a := c.ToRGBA()
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestColorNotClampedOnConstruction(t *testing.T) {
	c := NewColor(2.0, -0.5, 0.5, 1.0)
	if c.R != 2.0 || c.G != -0.5 {
		t.Errorf("components were clamped: %+v", c)
	}
}

func TestColorToRGBAClamps(t *testing.T) {
	c := NewColor(2.0, -0.5, 0.5, 1.0)
	r, g, _, _ := c.ToRGBA()
	if r != 255 {
		t.Errorf("over-range red: got %d, want 255", r)
	}
	if g != 0 {
		t.Errorf("under-range green: got %d, want 0", g)
	}
}

func TestColorMul(t *testing.T) {
	c := NewColor(0.5, 1, 0.25, 1).Mul(NewColor(0.5, 0.5, 4, 1))
	want := Color{R: 0.25, G: 0.5, B: 1, A: 1}
	if c != want {
		t.Errorf("got %+v, want %+v", c, want)
	}
}

func TestColorToLinear(t *testing.T) {
	// Below the sRGB knee the conversion is a plain divide.
	lin := Color{R: 0.04, A: 0.5}.toLinear()
	if math.Abs(float64(lin[0])-0.04/12.92) > 1e-6 {
		t.Errorf("low segment: got %v", lin[0])
	}
	if lin[3] != 0.5 {
		t.Errorf("alpha must pass through: got %v", lin[3])
	}
	// Channel value 1 maps to 1.
	lin = White.toLinear()
	if math.Abs(float64(lin[0])-1) > 1e-6 {
		t.Errorf("white: got %v", lin[0])
	}
}
