package rive

import (
	"math"

	"github.com/gogpu/rive/scene"
)

// Mat2D is a 2D affine transform in the animation engine's layout:
//
//	[xx, xy, yx, yy, tx, ty]
//
// A point (x, y) is mapped to:
//
//	x' = xx*x + yx*y + tx
//	y' = xy*x + yy*y + ty
type Mat2D [6]float32

// IdentityMat2D returns the identity transform.
func IdentityMat2D() Mat2D {
	return Mat2D{1, 0, 0, 1, 0, 0}
}

// TranslateMat2D creates a translation.
func TranslateMat2D(x, y float32) Mat2D {
	return Mat2D{1, 0, 0, 1, x, y}
}

// ScaleMat2D creates a scale.
func ScaleMat2D(sx, sy float32) Mat2D {
	return Mat2D{sx, 0, 0, sy, 0, 0}
}

// RotationMat2D creates a rotation by rad radians.
func RotationMat2D(rad float32) Mat2D {
	s := float32(math.Sin(float64(rad)))
	c := float32(math.Cos(float64(rad)))
	return Mat2D{c, s, -s, c, 0, 0}
}

// Multiply returns a * b: the transform that applies b first, then a.
func (a Mat2D) Multiply(b Mat2D) Mat2D {
	return Mat2D{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}

// MapPoint transforms a point.
func (m Mat2D) MapPoint(x, y float32) (float32, float32) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Invert returns the inverse transform. The second result is false if m
// is singular.
func (m Mat2D) Invert() (Mat2D, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return IdentityMat2D(), false
	}
	inv := 1 / det
	return Mat2D{
		m[3] * inv,
		-m[1] * inv,
		-m[2] * inv,
		m[0] * inv,
		(m[2]*m[5] - m[3]*m[4]) * inv,
		(m[1]*m[4] - m[0]*m[5]) * inv,
	}, true
}

// IsIdentity returns true if this is the identity transform.
func (m Mat2D) IsIdentity() bool {
	return m == IdentityMat2D()
}

// Matrix converts m to the scene's 3x3 row-major matrix with the bottom
// row fixed at (0, 0, 1).
func (m Mat2D) Matrix() scene.Matrix {
	return scene.Matrix{
		E11: m[0], E12: m[2], E13: m[4],
		E21: m[1], E22: m[3], E23: m[5],
		E31: 0, E32: 0, E33: 1,
	}
}
