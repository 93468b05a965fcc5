package graphics

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func pointsClose(a, b Point2) bool {
	return math.Abs(float64(a.X-b.X)) < epsilon && math.Abs(float64(a.Y-b.Y)) < epsilon
}

func TestMatrix4IdentityTransform(t *testing.T) {
	m := Matrix4Identity()
	p := NewPoint2(3, -7)
	if got := m.TransformPoint2(p); !pointsClose(got, p) {
		t.Errorf("identity moved point: got %+v, want %+v", got, p)
	}
}

func TestMatrix4Translation(t *testing.T) {
	m := Matrix4Translation(5, -2, 0)
	got := m.TransformPoint2(NewPoint2(1, 1))
	want := NewPoint2(6, -1)
	if !pointsClose(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestMatrix4Scale(t *testing.T) {
	m := Matrix4Scale(2, 3, 1)
	got := m.TransformPoint2(NewPoint2(4, -1))
	want := NewPoint2(8, -3)
	if !pointsClose(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestMatrix4RotationZ(t *testing.T) {
	m := Matrix4RotationZ(math.Pi / 2)
	got := m.TransformPoint2(NewPoint2(1, 0))
	want := NewPoint2(0, 1)
	if !pointsClose(got, want) {
		t.Errorf("quarter turn of (1,0): got %+v, want %+v", got, want)
	}
}

func TestMatrix4Shear(t *testing.T) {
	m := Matrix4Shear(0.5, 0)
	got := m.TransformPoint2(NewPoint2(0, 2))
	want := NewPoint2(1, 2)
	if !pointsClose(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestMatrix4MulOrder(t *testing.T) {
	// Translate then scale reads right to left: scale applies first.
	m := Matrix4Translation(10, 0, 0).Mul(Matrix4Scale(2, 2, 1))
	got := m.TransformPoint2(NewPoint2(1, 1))
	want := NewPoint2(12, 2)
	if !pointsClose(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestMatrix4OrthographicCorners(t *testing.T) {
	m := Matrix4Orthographic(0, 800, 0, 600, -1, 1)
	cases := []struct {
		in   Point2
		want Point2
	}{
		{NewPoint2(0, 0), NewPoint2(-1, -1)},
		{NewPoint2(800, 600), NewPoint2(1, 1)},
		{NewPoint2(400, 300), NewPoint2(0, 0)},
	}
	for _, c := range cases {
		if got := m.TransformPoint2(c.in); !pointsClose(got, c.want) {
			t.Errorf("ortho(%+v): got %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestMatrix4Columns(t *testing.T) {
	m := Matrix4Translation(7, 8, 9)
	cols := m.Columns()
	if cols[3] != [4]float32{7, 8, 9, 1} {
		t.Errorf("translation column: got %v", cols[3])
	}
	if cols[0] != [4]float32{1, 0, 0, 0} {
		t.Errorf("first column: got %v", cols[0])
	}
}
