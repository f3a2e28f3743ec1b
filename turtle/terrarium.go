package turtle

import "github.com/plastikmind/svg2gcode/svgpath"

// Terrarium fences a Turtle off from SVG coordinate semantics. It owns
// the transform stack and, per drawn sequence, the current-point state
// needed to resolve relative, shorthand and smooth commands; the turtle
// below only ever sees absolute, transformed lines and beziers.
//
// Pushes and pops must pair 1:1; the stack is expected to be empty
// again when a conversion returns.
type Terrarium struct {
	Turtle Turtle

	// composed[i] is the product of entries 0..i, so the active
	// transform is always the last element.
	composed []svgpath.Matrix
}

// NewTerrarium wraps t with an empty transform stack.
func NewTerrarium(t Turtle) *Terrarium {
	return &Terrarium{Turtle: t}
}

// PushTransform composes m onto the active transform.
// m is the full local contribution of one document node.
func (t *Terrarium) PushTransform(m svgpath.Matrix) {
	t.composed = append(t.composed, t.Transform().Mult(m))
}

// PopTransform removes the most recent contribution.
func (t *Terrarium) PopTransform() {
	t.composed = t.composed[:len(t.composed)-1]
}

// Depth returns the number of open transform entries.
func (t *Terrarium) Depth() int { return len(t.composed) }

// Transform returns the active composed transform.
func (t *Terrarium) Transform() svgpath.Matrix {
	if len(t.composed) == 0 {
		return svgpath.Identity
	}
	return t.composed[len(t.composed)-1]
}

// Annotate forwards a label to the turtle.
func (t *Terrarium) Annotate(label string) {
	t.Turtle.Comment(label)
}

// drawState tracks the current point while walking one sequence.
// The SVG current point starts at the user-space origin for every
// sequence; it is unrelated to wherever the physical tool sits.
type drawState struct {
	cur          svgpath.Point
	subpathStart svgpath.Point
	// reflection sources for smooth commands; valid only when the
	// previous segment belonged to the matching curve family
	cubicCtrl svgpath.Point
	quadCtrl  svgpath.Point
	hasCubic  bool
	hasQuad   bool
}

// reference returns the base point for relative coordinates.
func (st *drawState) reference(abs bool) svgpath.Point {
	if abs {
		return svgpath.Point{}
	}
	return st.cur
}

// Draw walks one segment sequence and feeds the turtle. The sequence is
// consumed as-is and never retained.
func (t *Terrarium) Draw(path svgpath.Path) {
	m := t.Transform()
	var st drawState
	for _, seg := range path {
		switch seg := seg.(type) {
		case svgpath.MoveTo:
			p := st.reference(seg.Abs).Add(svgpath.Pt(seg.X, seg.Y))
			st.cur, st.subpathStart = p, p
			st.hasCubic, st.hasQuad = false, false
			t.Turtle.MoveTo(m.ApplyPoint(p))
		case svgpath.LineTo:
			p := st.reference(seg.Abs).Add(svgpath.Pt(seg.X, seg.Y))
			st.cur = p
			st.hasCubic, st.hasQuad = false, false
			t.Turtle.LineTo(m.ApplyPoint(p))
		case svgpath.HorizontalTo:
			p := svgpath.Pt(st.reference(seg.Abs).X+seg.X, st.cur.Y)
			st.cur = p
			st.hasCubic, st.hasQuad = false, false
			t.Turtle.LineTo(m.ApplyPoint(p))
		case svgpath.VerticalTo:
			p := svgpath.Pt(st.cur.X, st.reference(seg.Abs).Y+seg.Y)
			st.cur = p
			st.hasCubic, st.hasQuad = false, false
			t.Turtle.LineTo(m.ApplyPoint(p))
		case svgpath.CurveTo:
			ref := st.reference(seg.Abs)
			c1 := ref.Add(svgpath.Pt(seg.X1, seg.Y1))
			c2 := ref.Add(svgpath.Pt(seg.X2, seg.Y2))
			end := ref.Add(svgpath.Pt(seg.X, seg.Y))
			t.cubic(&st, m, c1, c2, end)
		case svgpath.SmoothCurveTo:
			ref := st.reference(seg.Abs)
			c1 := st.cur
			if st.hasCubic {
				c1 = reflect(st.cubicCtrl, st.cur)
			}
			c2 := ref.Add(svgpath.Pt(seg.X2, seg.Y2))
			end := ref.Add(svgpath.Pt(seg.X, seg.Y))
			t.cubic(&st, m, c1, c2, end)
		case svgpath.QuadraticTo:
			ref := st.reference(seg.Abs)
			c := ref.Add(svgpath.Pt(seg.X1, seg.Y1))
			end := ref.Add(svgpath.Pt(seg.X, seg.Y))
			t.quadratic(&st, m, c, end)
		case svgpath.SmoothQuadraticTo:
			ref := st.reference(seg.Abs)
			c := st.cur
			if st.hasQuad {
				c = reflect(st.quadCtrl, st.cur)
			}
			end := ref.Add(svgpath.Pt(seg.X, seg.Y))
			t.quadratic(&st, m, c, end)
		case svgpath.ArcTo:
			ref := st.reference(seg.Abs)
			abs := seg
			abs.Abs = true
			abs.X, abs.Y = ref.X+seg.X, ref.Y+seg.Y
			end := svgpath.Pt(abs.X, abs.Y)
			ok := svgpath.ArcToCubics(st.cur, abs, func(c1, c2, p svgpath.Point) {
				t.Turtle.CubicBezier(m.ApplyPoint(c1), m.ApplyPoint(c2), m.ApplyPoint(p))
			})
			if !ok && (end != st.cur) {
				t.Turtle.LineTo(m.ApplyPoint(end))
			}
			st.cur = end
			st.hasCubic, st.hasQuad = false, false
		case svgpath.Close:
			st.cur = st.subpathStart
			st.hasCubic, st.hasQuad = false, false
			t.Turtle.Close()
		}
	}
}

func (t *Terrarium) cubic(st *drawState, m svgpath.Matrix, c1, c2, end svgpath.Point) {
	t.Turtle.CubicBezier(m.ApplyPoint(c1), m.ApplyPoint(c2), m.ApplyPoint(end))
	st.cur = end
	st.cubicCtrl, st.hasCubic = c2, true
	st.hasQuad = false
}

func (t *Terrarium) quadratic(st *drawState, m svgpath.Matrix, c, end svgpath.Point) {
	t.Turtle.QuadraticBezier(m.ApplyPoint(c), m.ApplyPoint(end))
	st.cur = end
	st.quadCtrl, st.hasQuad = c, true
	st.hasCubic = false
}

// reflect mirrors ctrl across pivot.
func reflect(ctrl, pivot svgpath.Point) svgpath.Point {
	return svgpath.Pt(2*pivot.X-ctrl.X, 2*pivot.Y-ctrl.Y)
}
