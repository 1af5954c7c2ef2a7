package scene

import "math"

// Rect represents a bounding rectangle.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// EmptyRect returns an empty rectangle (inverted bounds for union operations).
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat32,
		MinY: math.MaxFloat32,
		MaxX: -math.MaxFloat32,
		MaxY: -math.MaxFloat32,
	}
}

// IsEmpty returns true if the rectangle contains no point.
// A degenerate rectangle (zero width or height) counts as non-empty.
func (r Rect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: min32(r.MinX, other.MinX),
		MinY: min32(r.MinY, other.MinY),
		MaxX: max32(r.MaxX, other.MaxX),
		MaxY: max32(r.MaxY, other.MaxY),
	}
}

// UnionPoint expands the rectangle to include the point.
func (r Rect) UnionPoint(x, y float32) Rect {
	return Rect{
		MinX: min32(r.MinX, x),
		MinY: min32(r.MinY, y),
		MaxX: max32(r.MaxX, x),
		MaxY: max32(r.MaxY, y),
	}
}

// Intersects reports whether r and other share any interior area.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.MinX < other.MaxX && other.MinX < r.MaxX &&
		r.MinY < other.MaxY && other.MinY < r.MaxY
}

// Transform returns the bounds of the four corners of r mapped by m.
func (r Rect) Transform(m Matrix) Rect {
	if r.IsEmpty() {
		return r
	}
	out := EmptyRect()
	for _, c := range [4][2]float32{
		{r.MinX, r.MinY}, {r.MaxX, r.MinY}, {r.MaxX, r.MaxY}, {r.MinX, r.MaxY},
	} {
		x, y := m.TransformPoint(c[0], c[1])
		out = out.UnionPoint(x, y)
	}
	return out
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Matrix is a 3x3 homogeneous transformation matrix stored row by row:
//
//	| E11  E12  E13 |
//	| E21  E22  E23 |
//	| E31  E32  E33 |
//
// Where a point (x, y) is transformed to:
//
//	x' = E11*x + E12*y + E13
//	y' = E21*x + E22*y + E23
//
// Affine matrices keep the bottom row at (0, 0, 1).
type Matrix struct {
	E11, E12, E13 float32
	E21, E22, E23 float32
	E31, E32, E33 float32
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{E11: 1, E22: 1, E33: 1}
}

// Translate creates a translation transformation.
func Translate(x, y float32) Matrix {
	return Matrix{E11: 1, E13: x, E22: 1, E23: y, E33: 1}
}

// Scale creates a scaling transformation.
func Scale(x, y float32) Matrix {
	return Matrix{E11: x, E22: y, E33: 1}
}

// Multiply returns m * n, the transformation that applies n first and then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		E11: m.E11*n.E11 + m.E12*n.E21 + m.E13*n.E31,
		E12: m.E11*n.E12 + m.E12*n.E22 + m.E13*n.E32,
		E13: m.E11*n.E13 + m.E12*n.E23 + m.E13*n.E33,
		E21: m.E21*n.E11 + m.E22*n.E21 + m.E23*n.E31,
		E22: m.E21*n.E12 + m.E22*n.E22 + m.E23*n.E32,
		E23: m.E21*n.E13 + m.E22*n.E23 + m.E23*n.E33,
		E31: m.E31*n.E11 + m.E32*n.E21 + m.E33*n.E31,
		E32: m.E31*n.E12 + m.E32*n.E22 + m.E33*n.E32,
		E33: m.E31*n.E13 + m.E32*n.E23 + m.E33*n.E33,
	}
}

// TransformPoint transforms a point by the matrix. Only the affine part
// is used.
func (m Matrix) TransformPoint(x, y float32) (float32, float32) {
	return m.E11*x + m.E12*y + m.E13, m.E21*x + m.E22*y + m.E23
}

// Invert returns the inverse of the affine part of m.
// The second result is false if m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.E11*m.E22 - m.E12*m.E21
	if det == 0 || math.IsNaN(float64(det)) {
		return Identity(), false
	}
	inv := 1 / det
	return Matrix{
		E11: m.E22 * inv,
		E12: -m.E12 * inv,
		E13: (m.E12*m.E23 - m.E22*m.E13) * inv,
		E21: -m.E21 * inv,
		E22: m.E11 * inv,
		E23: (m.E21*m.E13 - m.E11*m.E23) * inv,
		E33: 1,
	}, true
}

// IsIdentity returns true if this is the identity transformation.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// ScaleFactor returns the geometric mean of the axis scale factors, used
// to scale stroke widths into device space.
func (m Matrix) ScaleFactor() float32 {
	det := m.E11*m.E22 - m.E12*m.E21
	return float32(math.Sqrt(math.Abs(float64(det))))
}
