package graphics

import (
	"bytes"
	"testing"
)

func TestFlipRowsRGBA(t *testing.T) {
	// Two rows of a 2x2 image.
	top := []byte{1, 1, 1, 1, 2, 2, 2, 2}
	bottom := []byte{3, 3, 3, 3, 4, 4, 4, 4}
	data := append(append([]byte(nil), top...), bottom...)
	flipRowsRGBA(data, 2, 2)
	if !bytes.Equal(data[:8], bottom) || !bytes.Equal(data[8:], top) {
		t.Errorf("rows not swapped: %v", data)
	}
}

func TestFlipRowsRGBAOddHeight(t *testing.T) {
	rows := [][]byte{
		{1, 0, 0, 0},
		{2, 0, 0, 0},
		{3, 0, 0, 0},
	}
	data := append(append(append([]byte(nil), rows[0]...), rows[1]...), rows[2]...)
	flipRowsRGBA(data, 1, 3)
	if data[0] != 3 || data[4] != 2 || data[8] != 1 {
		t.Errorf("got %v", data)
	}
}

func TestFlipSrcRect(t *testing.T) {
	cases := []struct {
		in, want Rect
	}{
		{RectOne(), RectOne()},
		{NewRect(0, 0, 1, 0.5), NewRect(0, 0.5, 1, 0.5)},
		{NewRect(0.25, 0.25, 0.5, 0.5), NewRect(0.25, 0.25, 0.5, 0.5)},
		{NewRect(0, 0.1, 1, 0.2), NewRect(0, 0.7, 1, 0.2)},
	}
	for _, c := range cases {
		if got := flipSrcRect(c.in); got != c.want {
			t.Errorf("flipSrcRect(%+v): got %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestFlipSrcRectIsInvolution(t *testing.T) {
	src := NewRect(0.1, 0.2, 0.3, 0.4)
	if got := flipSrcRect(flipSrcRect(src)); got != src {
		t.Errorf("double flip: got %+v, want %+v", got, src)
	}
}

func TestFlipMatrixVertical(t *testing.T) {
	m := flipMatrixVertical(Matrix4Identity())
	got := m.TransformPoint2(NewPoint2(0.25, 0.5))
	if !pointsClose(got, NewPoint2(0.25, -0.5)) {
		t.Errorf("got %+v, want (0.25,-0.5)", got)
	}
	// The flip composes inside any outer transform.
	outer := Matrix4Translation(10, 10, 0)
	got = flipMatrixVertical(outer).TransformPoint2(NewPoint2(0, 0.5))
	if !pointsClose(got, NewPoint2(10, 9.5)) {
		t.Errorf("composed flip: got %+v, want (10,9.5)", got)
	}
}
