package svgpath

import "math"

// This file converts endpoint-parameterized elliptical arcs into cubic
// bezier runs, so downstream sinks only ever see lines and beziers.

// maxDx is the maximum radians a cubic spline is allowed to span when
// approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// ArcToCubics approximates the elliptical arc from start to the arc's
// absolute endpoint with cubic beziers, invoking emit once per spline
// with both control points and the spline endpoint. The final emitted
// endpoint is exactly the arc endpoint. It reports false for a
// degenerate arc (zero radius or coincident endpoints), in which case
// the caller should fall back to a straight line.
func ArcToCubics(start Point, arc ArcTo, emit func(c1, c2, end Point)) bool {
	rx, ry := math.Abs(arc.Rx), math.Abs(arc.Ry)
	if rx == 0 || ry == 0 || (start.X == arc.X && start.Y == arc.Y) {
		return false
	}
	rotX := arc.XRotation * math.Pi / 180
	cx, cy := findEllipseCenter(&rx, &ry, rotX, start.X, start.Y, arc.X, arc.Y, arc.Sweep, !arc.LargeArc)

	startAngle := math.Atan2(start.Y-cy, start.X-cx) - rotX
	endAngle := math.Atan2(arc.Y-cy, arc.X-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	// Approximate the ellipse using cubic bezier splines
	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if arcBig != arc.LargeArc {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the ellipse is
	// at the midpoint of the start and end lines.
	if deltaEta < 0 && arc.Sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !arc.Sweep {
		deltaEta -= math.Pi * 2
	}

	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs)
	// Approximate the ellipse using a set of cubic bezier curves by the
	// method of L. Maisonobe, "Drawing an elliptical arc using polylines,
	// quadratic or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := start.X, start.Y
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(rx, ry, sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			px, py = arc.X, arc.Y // no roundoff error on the endpoint
		} else {
			px, py = ellipsePointAt(rx, ry, sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, sinTheta, cosTheta, eta)
		emit(
			Point{lx + alpha*ldx, ly + alpha*ldy},
			Point{px - alpha*dx, py - alpha*dy},
			Point{px, py},
		)
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	return true
}

// ellipsePrime gives tangent vectors for the parameterized ellipse;
// a, b radii, eta parameter.
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for the parameterized ellipse; a, b radii,
// eta parameter, center cx, cy.
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the ellipse if it exists. If
// it does not exist, the radius values will be increased minimally for
// a solution to be possible while preserving the ra to rb ratio. ra and
// rb arguments are pointers that can be checked after the call to see
// if the values changed. This method uses coordinate transformations to
// reduce the problem to finding the center of a circle that includes
// the origin and an arbitrary point. The center of the circle is then
// transformed back to the original coordinates and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit. Length of
		// span is greater than max width of ellipse, must scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	// Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
