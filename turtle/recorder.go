package turtle

import (
	"fmt"
	"strings"

	"github.com/plastikmind/svg2gcode/svgpath"
)

// Op is one recorded turtle operation.
type Op struct {
	Kind   string // "begin", "end", "comment", "move", "line", "cubic", "quad", "close"
	Points []svgpath.Point
	Text   string
}

// Recorder is a Turtle that remembers every operation verbatim.
// Useful in tests and for dry-running a conversion.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) record(kind string, text string, pts ...svgpath.Point) {
	r.Ops = append(r.Ops, Op{Kind: kind, Points: pts, Text: text})
}

func (r *Recorder) Begin()                                  { r.record("begin", "") }
func (r *Recorder) End()                                    { r.record("end", "") }
func (r *Recorder) Comment(text string)                     { r.record("comment", text) }
func (r *Recorder) MoveTo(p svgpath.Point)                  { r.record("move", "", p) }
func (r *Recorder) LineTo(p svgpath.Point)                  { r.record("line", "", p) }
func (r *Recorder) CubicBezier(c1, c2, end svgpath.Point)   { r.record("cubic", "", c1, c2, end) }
func (r *Recorder) QuadraticBezier(c, end svgpath.Point)    { r.record("quad", "", c, end) }
func (r *Recorder) Close()                                  { r.record("close", "") }

// DrawOps returns only the geometry-producing operations.
func (r *Recorder) DrawOps() []Op {
	var out []Op
	for _, op := range r.Ops {
		switch op.Kind {
		case "move", "line", "cubic", "quad", "close":
			out = append(out, op)
		}
	}
	return out
}

// String renders the recording one operation per line, stable across
// runs for identical input.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, op := range r.Ops {
		b.WriteString(op.Kind)
		if op.Text != "" {
			fmt.Fprintf(&b, " %q", op.Text)
		}
		for _, p := range op.Points {
			fmt.Fprintf(&b, " (%.6f,%.6f)", p.X, p.Y)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
