package gcode

import (
	"math"

	"github.com/plastikmind/svg2gcode/svgpath"
)

// maxSubdivisions caps the recursion when flattening; 2^18 chords is
// already far below any reachable tolerance.
const maxSubdivisions = 18

// flattenCubic approximates the cubic bezier p0-c1-c2-p1 with a chain
// of line endpoints, emitted in order and ending exactly at p1. A curve
// is considered flat enough when both control points lie within tol of
// the chord.
func flattenCubic(p0, c1, c2, p1 svgpath.Point, tol float64, emit func(svgpath.Point)) {
	flattenRec(p0, c1, c2, p1, tol, 0, emit)
}

func flattenRec(p0, c1, c2, p1 svgpath.Point, tol float64, depth int, emit func(svgpath.Point)) {
	if depth >= maxSubdivisions || flatEnough(p0, c1, c2, p1, tol) {
		emit(p1)
		return
	}
	// de Casteljau split at t = 1/2
	ab := midpoint(p0, c1)
	bc := midpoint(c1, c2)
	cd := midpoint(c2, p1)
	abc := midpoint(ab, bc)
	bcd := midpoint(bc, cd)
	mid := midpoint(abc, bcd)
	flattenRec(p0, ab, abc, mid, tol, depth+1, emit)
	flattenRec(mid, bcd, cd, p1, tol, depth+1, emit)
}

func midpoint(a, b svgpath.Point) svgpath.Point {
	return svgpath.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// flatEnough checks the control point deviation from the chord p0-p1.
func flatEnough(p0, c1, c2, p1 svgpath.Point, tol float64) bool {
	return distToChord(c1, p0, p1) <= tol && distToChord(c2, p0, p1) <= tol
}

func distToChord(p, a, b svgpath.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Dist(a)
	}
	// distance from p to the infinite line through a and b
	return math.Abs((p.X-a.X)*dy-(p.Y-a.Y)*dx) / math.Sqrt(lenSq)
}

// raiseQuadratic converts a quadratic bezier to the equivalent cubic.
func raiseQuadratic(p0, c, p1 svgpath.Point) (c1, c2 svgpath.Point) {
	c1 = svgpath.Pt(p0.X+2.0/3.0*(c.X-p0.X), p0.Y+2.0/3.0*(c.Y-p0.Y))
	c2 = svgpath.Pt(p1.X+2.0/3.0*(c.X-p1.X), p1.Y+2.0/3.0*(c.Y-p1.Y))
	return
}
