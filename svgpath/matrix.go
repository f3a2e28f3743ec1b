package svgpath

import "math"

// Point is a 2D point or vector in user units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{x, y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Matrix is a 2D affine transform in the SVG a-f layout:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the do-nothing transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Mult composes the receiver with o; o is applied to points first.
func (m Matrix) Mult(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.C*o.B,
		B: m.B*o.A + m.D*o.B,
		C: m.A*o.C + m.C*o.D,
		D: m.B*o.C + m.D*o.D,
		E: m.A*o.E + m.C*o.F + m.E,
		F: m.B*o.E + m.D*o.F + m.F,
	}
}

// Translate appends a translation, applied to points before m.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mult(Matrix{1, 0, 0, 1, x, y})
}

// Scale appends a scale, applied to points before m.
func (m Matrix) Scale(x, y float64) Matrix {
	return m.Mult(Matrix{x, 0, 0, y, 0, 0})
}

// Rotate appends a rotation by theta radians about the origin, applied
// to points before m.
func (m Matrix) Rotate(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return m.Mult(Matrix{cos, sin, -sin, cos, 0, 0})
}

// SkewX appends an x-axis skew by theta radians.
func (m Matrix) SkewX(theta float64) Matrix {
	return m.Mult(Matrix{1, 0, math.Tan(theta), 1, 0, 0})
}

// SkewY appends a y-axis skew by theta radians.
func (m Matrix) SkewY(theta float64) Matrix {
	return m.Mult(Matrix{1, math.Tan(theta), 0, 1, 0, 0})
}

// Apply transforms the coordinate pair (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// ApplyPoint transforms p.
func (m Matrix) ApplyPoint(p Point) Point {
	x, y := m.Apply(p.X, p.Y)
	return Point{x, y}
}
