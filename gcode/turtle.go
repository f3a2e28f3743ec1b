package gcode

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/plastikmind/svg2gcode/svgpath"
)

// DefaultTolerance is the maximum chord deviation, in user units, when
// flattening beziers into linear moves.
const DefaultTolerance = 0.002

// Turtle accumulates a g-code program from drawing operations.
// Create one with NewTurtle, feed it through a Terrarium, then call
// WriteTo (or String) after End.
type Turtle struct {
	Machine   Machine
	Tolerance float64
	Precision int // decimal places for coordinates

	buf          bytes.Buffer
	pos          svgpath.Point
	subpathStart svgpath.Point
	toolDown     bool
}

// NewTurtle returns a turtle with default tolerance and 3 decimal
// places of coordinate precision.
func NewTurtle(machine Machine) *Turtle {
	return &Turtle{
		Machine:   machine,
		Tolerance: DefaultTolerance,
		Precision: 3,
	}
}

func (t *Turtle) line(words ...string) {
	t.buf.WriteString(strings.Join(words, " "))
	t.buf.WriteByte('\n')
}

func (t *Turtle) num(v float64) string {
	s := strconv.FormatFloat(v, 'f', t.Precision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}

func (t *Turtle) toolOn() {
	if !t.toolDown {
		for _, l := range t.Machine.ToolOn {
			t.line(l)
		}
		t.toolDown = true
	}
}

func (t *Turtle) toolOff() {
	if t.toolDown {
		for _, l := range t.Machine.ToolOff {
			t.line(l)
		}
		t.toolDown = false
	}
}

func (t *Turtle) Begin() {
	for _, l := range t.Machine.Begin {
		t.line(l)
	}
	t.line(t.Machine.Units.word())
	t.line("G90")
	for _, l := range t.Machine.ToolOff {
		t.line(l)
	}
}

func (t *Turtle) End() {
	t.toolOff()
	for _, l := range t.Machine.End {
		t.line(l)
	}
	t.line("M2")
}

// Comment emits a parenthesized g-code comment. Parentheses inside the
// text cannot be represented and are replaced.
func (t *Turtle) Comment(text string) {
	clean := strings.NewReplacer("(", "[", ")", "]").Replace(text)
	t.line("(" + clean + ")")
}

func (t *Turtle) MoveTo(p svgpath.Point) {
	t.toolOff()
	words := []string{"G0", "X" + t.num(p.X), "Y" + t.num(p.Y)}
	if t.Machine.TravelRate > 0 {
		words = append(words, "F"+t.num(t.Machine.TravelRate))
	}
	t.line(words...)
	t.pos = p
	t.subpathStart = p
}

func (t *Turtle) LineTo(p svgpath.Point) {
	t.cut(p)
}

func (t *Turtle) cut(p svgpath.Point) {
	wasUp := !t.toolDown
	t.toolOn()
	words := []string{"G1", "X" + t.num(p.X), "Y" + t.num(p.Y)}
	if wasUp && t.Machine.FeedRate > 0 {
		words = append(words, "F"+t.num(t.Machine.FeedRate))
	}
	t.line(words...)
	t.pos = p
}

func (t *Turtle) CubicBezier(c1, c2, end svgpath.Point) {
	flattenCubic(t.pos, c1, c2, end, t.Tolerance, t.cut)
}

func (t *Turtle) QuadraticBezier(c, end svgpath.Point) {
	c1, c2 := raiseQuadratic(t.pos, c, end)
	flattenCubic(t.pos, c1, c2, end, t.Tolerance, t.cut)
}

func (t *Turtle) Close() {
	if t.pos != t.subpathStart {
		t.cut(t.subpathStart)
	}
}

// WriteTo writes the accumulated program.
func (t *Turtle) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.buf.Bytes())
	return int64(n), err
}

// String returns the accumulated program.
func (t *Turtle) String() string { return t.buf.String() }
