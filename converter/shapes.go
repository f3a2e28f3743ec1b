package converter

import (
	"fmt"

	"github.com/plastikmind/svg2gcode/svgdom"
	"github.com/plastikmind/svg2gcode/svgpath"
)

// lowerShape turns the geometry a node carries into an absolute
// segment sequence and draws it under the active transform. Container
// elements contribute no geometry of their own.
func (v *ConversionVisitor) lowerShape(n svgdom.Node, kind elementKind) error {
	switch kind {
	case kindPath:
		return v.lowerPath(n)
	case kindPolyline:
		v.lowerPoly(n, false)
	case kindPolygon:
		v.lowerPoly(n, true)
	case kindRect:
		v.lowerRect(n)
	case kindCircle, kindEllipse:
		v.lowerEllipse(n)
	case kindLine:
		v.lowerLine(n)
	case kindSVG, kindGroup, kindUse, kindSymbol:
		// containers; geometry comes from children
	default:
		v.diag.Infof("unknown element <%s>", n.Tag())
	}
	return nil
}

func (v *ConversionVisitor) lowerPath(n svgdom.Node) error {
	d, ok := n.Attr("d")
	if !ok {
		v.diag.Warnf("path element carries no path data")
		return nil
	}
	path, err := svgpath.ParsePathData(d)
	if err != nil {
		return fmt.Errorf("<path>: %w", err)
	}
	v.comment(n)
	v.terrarium.Draw(path)
	return nil
}

func (v *ConversionVisitor) lowerPoly(n svgdom.Node, closed bool) {
	raw, ok := n.Attr("points")
	if !ok {
		v.diag.Warnf("<%s> element carries no points", n.Tag())
		return
	}
	pts, err := svgpath.ParsePoints(raw)
	if err != nil {
		v.diag.Warnf("<%s>: ignoring unparseable points %q", n.Tag(), raw)
		return
	}
	if len(pts) == 0 {
		return
	}
	v.comment(n)
	path := svgpath.Path{svgpath.MoveTo{Abs: true, X: pts[0].X, Y: pts[0].Y}}
	for _, p := range pts[1:] {
		path = append(path, svgpath.LineTo{Abs: true, X: p.X, Y: p.Y})
	}
	if closed {
		path = append(path, svgpath.Close{})
	}
	v.terrarium.Draw(path)
}

func (v *ConversionVisitor) lowerRect(n svgdom.Node) {
	x := orZero(v.lengthAttr(n, "x", HintHorizontal))
	y := orZero(v.lengthAttr(n, "y", HintVertical))
	width := v.lengthAttr(n, "width", HintHorizontal)
	height := v.lengthAttr(n, "height", HintVertical)
	rx := orZero(v.lengthAttr(n, "rx", HintHorizontal))
	ry := orZero(v.lengthAttr(n, "ry", HintVertical))
	if width == nil || height == nil {
		v.diag.Warnf("rect element without width and height")
		return
	}
	w, h := *width, *height
	hasRadius := rx > 0 && ry > 0

	corner := func(endX, endY float64) svgpath.Segment {
		return svgpath.ArcTo{Abs: true, Rx: rx, Ry: ry, Sweep: true, X: endX, Y: endY}
	}
	// clockwise from the top edge, corner arcs only when rounded
	full := svgpath.Path{
		svgpath.MoveTo{Abs: true, X: x + rx, Y: y},
		svgpath.HorizontalTo{Abs: true, X: x + w - rx},
		corner(x+w, y+ry),
		svgpath.VerticalTo{Abs: true, Y: y + h - ry},
		corner(x+w-rx, y+h),
		svgpath.HorizontalTo{Abs: true, X: x + rx},
		corner(x, y+h-ry),
		svgpath.VerticalTo{Abs: true, Y: y + ry},
		corner(x+rx, y),
		svgpath.Close{},
	}
	path := full
	if !hasRadius {
		path = full[:0]
		for _, seg := range full {
			if seg.Command() == svgpath.CmdArcTo {
				continue
			}
			path = append(path, seg)
		}
	}
	v.comment(n)
	v.terrarium.Draw(path)
}

func (v *ConversionVisitor) lowerEllipse(n svgdom.Node) {
	cx := orZero(v.lengthAttr(n, "cx", HintHorizontal))
	cy := orZero(v.lengthAttr(n, "cy", HintVertical))
	r := orZero(v.lengthAttr(n, "r", HintDiagonal))
	rx, ry := r, r
	if p := v.lengthAttr(n, "rx", HintHorizontal); p != nil {
		rx = *p
	}
	if p := v.lengthAttr(n, "ry", HintVertical); p != nil {
		ry = *p
	}
	if rx <= 0 || ry <= 0 {
		v.diag.Warnf("<%s> element without positive radii", n.Tag())
		return
	}
	arc := func(endX, endY float64) svgpath.Segment {
		return svgpath.ArcTo{Abs: true, Rx: rx, Ry: ry, Sweep: true, X: endX, Y: endY}
	}
	v.comment(n)
	v.terrarium.Draw(svgpath.Path{
		svgpath.MoveTo{Abs: true, X: cx + rx, Y: cy},
		arc(cx, cy+ry),
		arc(cx-rx, cy),
		arc(cx, cy-ry),
		arc(cx+rx, cy),
		svgpath.Close{},
	})
}

func (v *ConversionVisitor) lowerLine(n svgdom.Node) {
	x1 := v.lengthAttr(n, "x1", HintHorizontal)
	y1 := v.lengthAttr(n, "y1", HintVertical)
	x2 := v.lengthAttr(n, "x2", HintHorizontal)
	y2 := v.lengthAttr(n, "y2", HintVertical)
	if x1 == nil || y1 == nil || x2 == nil || y2 == nil {
		v.diag.Warnf("line element without both endpoints")
		return
	}
	v.comment(n)
	v.terrarium.Draw(svgpath.Path{
		svgpath.MoveTo{Abs: true, X: *x1, Y: *y1},
		svgpath.LineTo{Abs: true, X: *x2, Y: *y2},
	})
}
