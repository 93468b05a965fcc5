package graphics

import (
	"fmt"
	"math"

	"github.com/ggez-dev/ggez"
)

// DrawMode selects whether a mesh outlines a shape or fills it.
type DrawMode int

const (
	// DrawModeFill fills the shape's interior.
	DrawModeFill DrawMode = iota

	// DrawModeStroke outlines the shape with a given line width.
	DrawModeStroke
)

// Mesh is a vector shape uploaded as a vertex/index buffer pair and drawn
// through the standard quad shader against the context's white texture,
// tinted by the DrawParam color.
type Mesh struct {
	slice     Slice
	blendMode *BlendMode
}

var _ Drawable = (*Mesh)(nil)

// meshVertices interleaves positions into the x, y, u, v layout shared
// with the quad. Mesh uvs are fixed at the origin; the white texture makes
// them irrelevant and the DrawParam color carries the tint.
func meshVertices(positions []Point2) []float32 {
	vertices := make([]float32, 0, len(positions)*4)
	for _, p := range positions {
		vertices = append(vertices, p.X, p.Y, 0, 0)
	}
	return vertices
}

func newMesh(ctx *GraphicsContext, positions []Point2, indices []uint16) (*Mesh, error) {
	slice, err := NewSlice(ctx, meshVertices(positions), indices)
	if err != nil {
		return nil, err
	}
	return &Mesh{slice: *slice}, nil
}

// NewMeshPolygon builds a mesh from the polygon's points. Fill mode
// triangulates with a fan and requires a convex polygon; stroke mode
// outlines the closed polygon with quads of the given line width.
func NewMeshPolygon(ctx *GraphicsContext, mode DrawMode, points []Point2, lineWidth float32) (*Mesh, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 points, got %d", ggez.ErrRender, len(points))
	}
	switch mode {
	case DrawModeFill:
		positions, indices := fanTriangulate(points)
		return newMesh(ctx, positions, indices)
	case DrawModeStroke:
		positions, indices := strokePolyline(points, lineWidth, true)
		return newMesh(ctx, positions, indices)
	}
	return nil, fmt.Errorf("%w: unknown draw mode %d", ggez.ErrRender, mode)
}

// NewMeshRectangle builds a rectangle mesh from a corner-anchored bounds
// rectangle.
func NewMeshRectangle(ctx *GraphicsContext, mode DrawMode, bounds Rect, lineWidth float32) (*Mesh, error) {
	points := []Point2{
		{X: bounds.X, Y: bounds.Y},
		{X: bounds.X + bounds.W, Y: bounds.Y},
		{X: bounds.X + bounds.W, Y: bounds.Y + bounds.H},
		{X: bounds.X, Y: bounds.Y + bounds.H},
	}
	return NewMeshPolygon(ctx, mode, points, lineWidth)
}

// NewMeshCircle builds a circle mesh approximated with the given number
// of segments (minimum 3).
func NewMeshCircle(ctx *GraphicsContext, mode DrawMode, center Point2, radius float32, segments int, lineWidth float32) (*Mesh, error) {
	if segments < 3 {
		return nil, fmt.Errorf("%w: circle needs at least 3 segments, got %d", ggez.ErrRender, segments)
	}
	points := make([]Point2, segments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = Point2{
			X: center.X + radius*float32(math.Cos(angle)),
			Y: center.Y + radius*float32(math.Sin(angle)),
		}
	}
	return NewMeshPolygon(ctx, mode, points, lineWidth)
}

// NewMeshLine builds an open polyline mesh with the given line width.
func NewMeshLine(ctx *GraphicsContext, points []Point2, lineWidth float32) (*Mesh, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: line needs at least 2 points, got %d", ggez.ErrRender, len(points))
	}
	positions, indices := strokePolyline(points, lineWidth, false)
	return newMesh(ctx, positions, indices)
}

// fanTriangulate triangulates a convex polygon as a fan anchored on the
// first point.
func fanTriangulate(points []Point2) ([]Point2, []uint16) {
	indices := make([]uint16, 0, (len(points)-2)*3)
	for i := 1; i < len(points)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	return points, indices
}

// strokePolyline expands a polyline into one quad per segment, extruding
// each segment by half the line width along its normal. closed adds a
// segment from the last point back to the first.
func strokePolyline(points []Point2, lineWidth float32, closed bool) ([]Point2, []uint16) {
	half := lineWidth / 2
	segments := len(points) - 1
	if closed {
		segments = len(points)
	}
	positions := make([]Point2, 0, segments*4)
	indices := make([]uint16, 0, segments*6)
	for i := 0; i < segments; i++ {
		a := points[i]
		b := points[(i+1)%len(points)]
		dx := b.X - a.X
		dy := b.Y - a.Y
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		nx := -dy / length * half
		ny := dx / length * half
		base := uint16(len(positions))
		positions = append(positions,
			Point2{X: a.X + nx, Y: a.Y + ny},
			Point2{X: b.X + nx, Y: b.Y + ny},
			Point2{X: b.X - nx, Y: b.Y - ny},
			Point2{X: a.X - nx, Y: a.Y - ny},
		)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return positions, indices
}

// BlendMode returns the per-mesh blend override, or nil.
func (m *Mesh) BlendMode() *BlendMode {
	return m.blendMode
}

// SetBlendMode sets a per-mesh blend override. Nil clears it.
func (m *Mesh) SetBlendMode(mode *BlendMode) {
	m.blendMode = mode
}

// DrawEx draws the mesh. Vertex positions are already in pixel
// coordinates, so the param's scale is applied as-is.
func (m *Mesh) DrawEx(ctx *GraphicsContext, param DrawParam) error {
	ctx.UpdateInstanceProperties(param)
	if err := ctx.bindTexture(ctx.whiteImage.view, ctx.whiteImage.sampler); err != nil {
		return err
	}
	return ctx.withBlendOverride(m.blendMode, func() error {
		return ctx.Draw(&m.slice)
	})
}

// Destroy releases the mesh's GPU buffers.
func (m *Mesh) Destroy(ctx *GraphicsContext) {
	m.slice.destroy(ctx.device)
}
