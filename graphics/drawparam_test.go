package graphics

import (
	"math"
	"testing"
)

func TestDefaultDrawParam(t *testing.T) {
	p := DefaultDrawParam()
	if p.Src != RectOne() {
		t.Errorf("default src: got %+v", p.Src)
	}
	if p.Scale != (Point2{X: 1, Y: 1}) {
		t.Errorf("default scale: got %+v", p.Scale)
	}
	if p.Color != White {
		t.Errorf("default color: got %+v", p.Color)
	}
}

func TestDrawParamDefaultMatrixIsIdentity(t *testing.T) {
	m := DefaultDrawParam().ToMatrix()
	if m != Matrix4Identity() {
		t.Errorf("got %v", m)
	}
}

func TestDrawParamDestTranslates(t *testing.T) {
	p := DefaultDrawParam()
	p.Dest = NewPoint2(10, 20)
	got := p.ToMatrix().TransformPoint2(NewPoint2(0, 0))
	if !pointsClose(got, NewPoint2(10, 20)) {
		t.Errorf("got %+v", got)
	}
}

func TestDrawParamRotationAboutDest(t *testing.T) {
	p := DefaultDrawParam()
	p.Dest = NewPoint2(10, 0)
	p.Rotation = math.Pi / 2
	got := p.ToMatrix().TransformPoint2(NewPoint2(1, 0))
	want := NewPoint2(10, 1)
	if !pointsClose(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDrawParamOffsetPivot(t *testing.T) {
	// Scaling about an offset pivot keeps the pivot point fixed.
	p := DefaultDrawParam()
	p.Offset = NewPoint2(1, 1)
	p.Scale = NewPoint2(2, 2)
	got := p.ToMatrix().TransformPoint2(NewPoint2(1, 1))
	if !pointsClose(got, NewPoint2(1, 1)) {
		t.Errorf("pivot moved: got %+v", got)
	}
	got = p.ToMatrix().TransformPoint2(NewPoint2(0, 0))
	if !pointsClose(got, NewPoint2(-1, -1)) {
		t.Errorf("origin: got %+v, want (-1,-1)", got)
	}
}

func TestDrawParamShear(t *testing.T) {
	p := DefaultDrawParam()
	p.Shear = NewPoint2(1, 0)
	got := p.ToMatrix().TransformPoint2(NewPoint2(0, 1))
	want := NewPoint2(1, 1)
	if !pointsClose(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
