package graphics

import "testing"

func TestFanTriangulate(t *testing.T) {
	points := []Point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	positions, indices := fanTriangulate(points)
	if len(positions) != 4 {
		t.Errorf("positions: got %d", len(positions))
	}
	want := []uint16{0, 1, 2, 0, 2, 3}
	if len(indices) != len(want) {
		t.Fatalf("indices: got %v", indices)
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("indices: got %v, want %v", indices, want)
		}
	}
}

func TestStrokePolylineOpen(t *testing.T) {
	points := []Point2{{0, 0}, {10, 0}, {10, 10}}
	positions, indices := strokePolyline(points, 2, false)
	if len(positions) != 2*4 {
		t.Errorf("positions: got %d, want 8", len(positions))
	}
	if len(indices) != 2*6 {
		t.Errorf("indices: got %d, want 12", len(indices))
	}
}

func TestStrokePolylineClosed(t *testing.T) {
	points := []Point2{{0, 0}, {10, 0}, {10, 10}}
	positions, indices := strokePolyline(points, 2, true)
	if len(positions) != 3*4 {
		t.Errorf("positions: got %d, want 12", len(positions))
	}
	if len(indices) != 3*6 {
		t.Errorf("indices: got %d, want 18", len(indices))
	}
}

func TestStrokePolylineExtrudesNormal(t *testing.T) {
	// A horizontal segment of width 2 extrudes one unit up and down.
	positions, _ := strokePolyline([]Point2{{0, 0}, {10, 0}}, 2, false)
	if !pointsClose(positions[0], NewPoint2(0, 1)) {
		t.Errorf("first corner: got %+v", positions[0])
	}
	if !pointsClose(positions[3], NewPoint2(0, -1)) {
		t.Errorf("last corner: got %+v", positions[3])
	}
}

func TestStrokePolylineSkipsDegenerateSegments(t *testing.T) {
	positions, indices := strokePolyline([]Point2{{5, 5}, {5, 5}}, 2, false)
	if len(positions) != 0 || len(indices) != 0 {
		t.Errorf("degenerate segment produced geometry: %d verts", len(positions))
	}
}

func TestMeshVertices(t *testing.T) {
	vertices := meshVertices([]Point2{{1, 2}, {3, 4}})
	want := []float32{1, 2, 0, 0, 3, 4, 0, 0}
	if len(vertices) != len(want) {
		t.Fatalf("got %v, want %v", vertices, want)
	}
	for i := range want {
		if vertices[i] != want[i] {
			t.Fatalf("got %v, want %v", vertices, want)
		}
	}
}
