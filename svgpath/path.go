// Implements the path-segment model shared by the converter and the
// output backends, together with the tokenizers for SVG attribute
// microsyntaxes: path data, transform lists, point lists, viewBox and
// preserveAspectRatio.
package svgpath

import (
	"fmt"
	"strings"
)

// Command discriminates the segment variants.
type Command uint8

const (
	CmdMoveTo Command = iota
	CmdLineTo
	CmdHorizontalTo
	CmdVerticalTo
	CmdCurveTo
	CmdSmoothCurveTo
	CmdQuadraticTo
	CmdSmoothQuadraticTo
	CmdArcTo
	CmdClose
)

// Segment is one parsed path command. The set of implementations is
// closed; consumers switch on the concrete type.
type Segment interface {
	Command() Command
	// Absolute reports whether coordinates are absolute rather than
	// relative to the current point.
	Absolute() bool
}

// MoveTo starts a new subpath at X, Y.
type MoveTo struct {
	Abs  bool
	X, Y float64
}

// LineTo draws a straight line to X, Y.
type LineTo struct {
	Abs  bool
	X, Y float64
}

// HorizontalTo draws a horizontal line to X.
type HorizontalTo struct {
	Abs bool
	X   float64
}

// VerticalTo draws a vertical line to Y.
type VerticalTo struct {
	Abs bool
	Y   float64
}

// CurveTo draws a cubic bezier with control points (X1,Y1), (X2,Y2).
type CurveTo struct {
	Abs            bool
	X1, Y1, X2, Y2 float64
	X, Y           float64
}

// SmoothCurveTo draws a cubic bezier whose first control point is the
// reflection of the previous one.
type SmoothCurveTo struct {
	Abs    bool
	X2, Y2 float64
	X, Y   float64
}

// QuadraticTo draws a quadratic bezier with control point (X1,Y1).
type QuadraticTo struct {
	Abs    bool
	X1, Y1 float64
	X, Y   float64
}

// SmoothQuadraticTo draws a quadratic bezier with a reflected control
// point.
type SmoothQuadraticTo struct {
	Abs  bool
	X, Y float64
}

// ArcTo draws an elliptical arc to X, Y.
type ArcTo struct {
	Abs             bool
	Rx, Ry          float64
	XRotation       float64 // degrees
	LargeArc, Sweep bool
	X, Y            float64
}

// Close closes the current subpath.
type Close struct{}

func (MoveTo) Command() Command            { return CmdMoveTo }
func (LineTo) Command() Command            { return CmdLineTo }
func (HorizontalTo) Command() Command      { return CmdHorizontalTo }
func (VerticalTo) Command() Command        { return CmdVerticalTo }
func (CurveTo) Command() Command           { return CmdCurveTo }
func (SmoothCurveTo) Command() Command     { return CmdSmoothCurveTo }
func (QuadraticTo) Command() Command       { return CmdQuadraticTo }
func (SmoothQuadraticTo) Command() Command { return CmdSmoothQuadraticTo }
func (ArcTo) Command() Command             { return CmdArcTo }
func (Close) Command() Command             { return CmdClose }

func (s MoveTo) Absolute() bool            { return s.Abs }
func (s LineTo) Absolute() bool            { return s.Abs }
func (s HorizontalTo) Absolute() bool      { return s.Abs }
func (s VerticalTo) Absolute() bool        { return s.Abs }
func (s CurveTo) Absolute() bool           { return s.Abs }
func (s SmoothCurveTo) Absolute() bool     { return s.Abs }
func (s QuadraticTo) Absolute() bool       { return s.Abs }
func (s SmoothQuadraticTo) Absolute() bool { return s.Abs }
func (s ArcTo) Absolute() bool             { return s.Abs }
func (Close) Absolute() bool               { return true }

// Path is an ordered sequence of segments. Sequences handed to a sink
// are never mutated after construction.
type Path []Segment

func letter(abs bool, upper, lower byte) byte {
	if abs {
		return upper
	}
	return lower
}

// String renders the path back to path-data syntax, mostly for
// diagnostics and tests.
func (p Path) String() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("%c%g,%g", letter(op.Abs, 'M', 'm'), op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("%c%g,%g", letter(op.Abs, 'L', 'l'), op.X, op.Y)
		case HorizontalTo:
			chunks[i] = fmt.Sprintf("%c%g", letter(op.Abs, 'H', 'h'), op.X)
		case VerticalTo:
			chunks[i] = fmt.Sprintf("%c%g", letter(op.Abs, 'V', 'v'), op.Y)
		case CurveTo:
			chunks[i] = fmt.Sprintf("%c%g,%g %g,%g %g,%g", letter(op.Abs, 'C', 'c'),
				op.X1, op.Y1, op.X2, op.Y2, op.X, op.Y)
		case SmoothCurveTo:
			chunks[i] = fmt.Sprintf("%c%g,%g %g,%g", letter(op.Abs, 'S', 's'),
				op.X2, op.Y2, op.X, op.Y)
		case QuadraticTo:
			chunks[i] = fmt.Sprintf("%c%g,%g %g,%g", letter(op.Abs, 'Q', 'q'),
				op.X1, op.Y1, op.X, op.Y)
		case SmoothQuadraticTo:
			chunks[i] = fmt.Sprintf("%c%g,%g", letter(op.Abs, 'T', 't'), op.X, op.Y)
		case ArcTo:
			chunks[i] = fmt.Sprintf("%c%g,%g %g %d %d %g,%g", letter(op.Abs, 'A', 'a'),
				op.Rx, op.Ry, op.XRotation, boolFlag(op.LargeArc), boolFlag(op.Sweep), op.X, op.Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

func boolFlag(v bool) int {
	if v {
		return 1
	}
	return 0
}
