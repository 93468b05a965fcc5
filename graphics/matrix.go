package graphics

import "math"

// Matrix4 is a 4x4 homogeneous transform matrix stored in column-major
// order: element (row, col) lives at index col*4+row. Column-major storage
// matches the layout uploaded to the GPU, where the shader reconstructs the
// matrix from four column vectors.
type Matrix4 [16]float32

// Matrix4Identity returns the identity matrix.
func Matrix4Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4Translation returns a translation matrix.
func Matrix4Translation(x, y, z float32) Matrix4 {
	m := Matrix4Identity()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Matrix4Scale returns a non-uniform scaling matrix.
func Matrix4Scale(x, y, z float32) Matrix4 {
	m := Matrix4Identity()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// Matrix4RotationZ returns a rotation about the Z axis (angle in radians).
func Matrix4RotationZ(angle float32) Matrix4 {
	sin, cos := math.Sincos(float64(angle))
	s := float32(sin)
	c := float32(cos)
	m := Matrix4Identity()
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
	return m
}

// Matrix4Shear returns a shear matrix with the given x/y shear factors.
func Matrix4Shear(x, y float32) Matrix4 {
	m := Matrix4Identity()
	m[4] = x // (row 0, col 1)
	m[1] = y // (row 1, col 0)
	return m
}

// Matrix4Orthographic returns an orthographic projection mapping the given
// volume to clip space, with depth mapped to [-1, 1].
func Matrix4Orthographic(left, right, bottom, top, near, far float32) Matrix4 {
	m := Matrix4Identity()
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	return m
}

// Mul returns the matrix product m * other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// TransformPoint2 applies the transform to a 2D point (z=0, w=1), returning
// the projected x/y after the homogeneous divide.
func (m Matrix4) TransformPoint2(p Point2) Point2 {
	x := m[0]*p.X + m[4]*p.Y + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[13]
	w := m[3]*p.X + m[7]*p.Y + m[15]
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return Point2{X: x, Y: y}
}

// Columns returns the four column vectors of the matrix, the form consumed
// by the per-draw instance record.
func (m Matrix4) Columns() [4][4]float32 {
	return [4][4]float32{
		{m[0], m[1], m[2], m[3]},
		{m[4], m[5], m[6], m[7]},
		{m[8], m[9], m[10], m[11]},
		{m[12], m[13], m[14], m[15]},
	}
}
