package motion

import (
	"math"
	"strconv"
	"strings"
)

// Matrix is a 2D affine transform laid out as [a, b, c, d, e, f]:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// so that x' = a*x + c*y + e and y' = b*x + d*y + f. This is the order of the
// CSS matrix(a, b, c, d, e, f) function.
type Matrix [6]float64

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Translate returns a pure translation.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns a pure scale about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation about the origin. Angle is in degrees, clockwise
// on a y-down screen.
func Rotate(deg float64) Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Multiply returns m * n: n is applied first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Invert returns the inverse of m, or Identity if m is singular.
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// deltaApply transforms (x, y) by the linear part only, ignoring translation.
func (m Matrix) deltaApply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y, m[1]*x + m[3]*y
}

// String formats m as a CSS matrix() function, the same text a computed
// transform carries.
func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("matrix(")
	for i, v := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Decomposed holds the components recovered from a Matrix. Angles are in
// degrees.
type Decomposed struct {
	TranslateX float64
	TranslateY float64
	ScaleX     float64
	ScaleY     float64
	SkewX      float64
	SkewY      float64
	Rotation   float64
}

// Decompose splits m into translate, scale, skew and rotation.
//
// Rotation is reported equal to SkewX. That is exact for pure rotations and
// wrong for transforms that combine rotation with an independent skew.
// Degenerate matrices are not special-cased and may yield NaN or zero scale.
func Decompose(m Matrix) Decomposed {
	// Basis points (0,1) and (1,0) through the linear part.
	pxX, pxY := m.deltaApply(0, 1)
	pyX, pyY := m.deltaApply(1, 0)

	skewX := (180/math.Pi)*math.Atan2(pxY, pxX) - 90
	skewY := (180 / math.Pi) * math.Atan2(pyY, pyX)

	return Decomposed{
		TranslateX: m[4],
		TranslateY: m[5],
		ScaleX:     math.Sqrt(m[0]*m[0] + m[1]*m[1]),
		ScaleY:     math.Sqrt(m[2]*m[2] + m[3]*m[3]),
		SkewX:      skewX,
		SkewY:      skewY,
		Rotation:   skewX,
	}
}
