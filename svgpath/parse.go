package svgpath

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	errBadNumber  = errors.New("invalid number")
	errBadFlag    = errors.New("arc flag must be 0 or 1")
	errBadCommand = errors.New("invalid path command")
	errNoMoveTo   = errors.New("path data must start with a moveto")
)

// scanner walks an attribute value by byte; all the microsyntaxes here
// are plain ASCII.
type scanner struct {
	s   string
	pos int
}

func isWsp(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func isNumberStart(b byte) bool {
	return (b >= '0' && b <= '9') || b == '+' || b == '-' || b == '.'
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) peek() byte { return sc.s[sc.pos] }

func (sc *scanner) skipWsp() {
	for !sc.eof() && isWsp(sc.peek()) {
		sc.pos++
	}
}

// skipCommaWsp consumes optional whitespace with at most one comma.
func (sc *scanner) skipCommaWsp() {
	sc.skipWsp()
	if !sc.eof() && sc.peek() == ',' {
		sc.pos++
		sc.skipWsp()
	}
}

// number scans one floating point literal, including exponent forms.
func (sc *scanner) number() (float64, error) {
	start := sc.pos
	if !sc.eof() && (sc.peek() == '+' || sc.peek() == '-') {
		sc.pos++
	}
	digits := 0
	for !sc.eof() && sc.peek() >= '0' && sc.peek() <= '9' {
		sc.pos++
		digits++
	}
	if !sc.eof() && sc.peek() == '.' {
		sc.pos++
		for !sc.eof() && sc.peek() >= '0' && sc.peek() <= '9' {
			sc.pos++
			digits++
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w at offset %d in %q", errBadNumber, start, sc.s)
	}
	if !sc.eof() && (sc.peek() == 'e' || sc.peek() == 'E') {
		mark := sc.pos
		sc.pos++
		if !sc.eof() && (sc.peek() == '+' || sc.peek() == '-') {
			sc.pos++
		}
		expDigits := 0
		for !sc.eof() && sc.peek() >= '0' && sc.peek() <= '9' {
			sc.pos++
			expDigits++
		}
		if expDigits == 0 {
			// "1em" style suffix: the e belongs to the unit, not an exponent.
			sc.pos = mark
		}
	}
	v, err := strconv.ParseFloat(sc.s[start:sc.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadNumber, sc.s[start:sc.pos])
	}
	return v, nil
}

func (sc *scanner) coordPair() (x, y float64, err error) {
	if x, err = sc.number(); err != nil {
		return
	}
	sc.skipCommaWsp()
	y, err = sc.number()
	return
}

// flag scans an arc flag, which is a bare 0 or 1 even when glued to the
// following number.
func (sc *scanner) flag() (bool, error) {
	if sc.eof() || (sc.peek() != '0' && sc.peek() != '1') {
		return false, fmt.Errorf("%w at offset %d in %q", errBadFlag, sc.pos, sc.s)
	}
	v := sc.peek() == '1'
	sc.pos++
	return v, nil
}

// ParsePathData parses the value of a "d" attribute into segments.
// Commands are validated strictly: a malformed value is an error, not a
// partial result.
func ParsePathData(d string) (Path, error) {
	sc := &scanner{s: d}
	var path Path

	sc.skipWsp()
	if sc.eof() {
		return nil, nil
	}
	if c := sc.peek(); c != 'M' && c != 'm' {
		return nil, fmt.Errorf("%w: starts with %q", errNoMoveTo, c)
	}

	for {
		sc.skipWsp()
		if sc.eof() {
			return path, nil
		}
		cmd := sc.peek()
		sc.pos++
		abs := cmd >= 'A' && cmd <= 'Z'
		lower := cmd | 0x20

		if lower == 'z' {
			path = append(path, Close{})
			continue
		}

		// Each parameter set may repeat without restating the command.
		first := true
		for {
			sc.skipCommaWsp()
			if !first && (sc.eof() || !isNumberStart(sc.peek())) {
				break
			}
			var seg Segment
			var err error
			switch lower {
			case 'm':
				var x, y float64
				if x, y, err = sc.coordPair(); err == nil {
					if first {
						seg = MoveTo{Abs: abs, X: x, Y: y}
					} else {
						// extra pairs after a moveto are implicit linetos
						seg = LineTo{Abs: abs, X: x, Y: y}
					}
				}
			case 'l':
				var x, y float64
				if x, y, err = sc.coordPair(); err == nil {
					seg = LineTo{Abs: abs, X: x, Y: y}
				}
			case 'h':
				var x float64
				if x, err = sc.number(); err == nil {
					seg = HorizontalTo{Abs: abs, X: x}
				}
			case 'v':
				var y float64
				if y, err = sc.number(); err == nil {
					seg = VerticalTo{Abs: abs, Y: y}
				}
			case 'c':
				seg, err = sc.curveTo(abs)
			case 's':
				seg, err = sc.smoothCurveTo(abs)
			case 'q':
				seg, err = sc.quadraticTo(abs)
			case 't':
				var x, y float64
				if x, y, err = sc.coordPair(); err == nil {
					seg = SmoothQuadraticTo{Abs: abs, X: x, Y: y}
				}
			case 'a':
				seg, err = sc.arcTo(abs)
			default:
				return nil, fmt.Errorf("%w: %q in %q", errBadCommand, cmd, d)
			}
			if err != nil {
				return nil, err
			}
			path = append(path, seg)
			first = false
		}
	}
}

func (sc *scanner) curveTo(abs bool) (Segment, error) {
	x1, y1, err := sc.coordPair()
	if err != nil {
		return nil, err
	}
	sc.skipCommaWsp()
	x2, y2, err := sc.coordPair()
	if err != nil {
		return nil, err
	}
	sc.skipCommaWsp()
	x, y, err := sc.coordPair()
	if err != nil {
		return nil, err
	}
	return CurveTo{Abs: abs, X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y}, nil
}

func (sc *scanner) smoothCurveTo(abs bool) (Segment, error) {
	x2, y2, err := sc.coordPair()
	if err != nil {
		return nil, err
	}
	sc.skipCommaWsp()
	x, y, err := sc.coordPair()
	if err != nil {
		return nil, err
	}
	return SmoothCurveTo{Abs: abs, X2: x2, Y2: y2, X: x, Y: y}, nil
}

func (sc *scanner) quadraticTo(abs bool) (Segment, error) {
	x1, y1, err := sc.coordPair()
	if err != nil {
		return nil, err
	}
	sc.skipCommaWsp()
	x, y, err := sc.coordPair()
	if err != nil {
		return nil, err
	}
	return QuadraticTo{Abs: abs, X1: x1, Y1: y1, X: x, Y: y}, nil
}

func (sc *scanner) arcTo(abs bool) (Segment, error) {
	rx, ry, err := sc.coordPair()
	if err != nil {
		return nil, err
	}
	sc.skipCommaWsp()
	rot, err := sc.number()
	if err != nil {
		return nil, err
	}
	sc.skipCommaWsp()
	large, err := sc.flag()
	if err != nil {
		return nil, err
	}
	sc.skipCommaWsp()
	sweep, err := sc.flag()
	if err != nil {
		return nil, err
	}
	sc.skipCommaWsp()
	x, y, err := sc.coordPair()
	if err != nil {
		return nil, err
	}
	return ArcTo{Abs: abs, Rx: rx, Ry: ry, XRotation: rot, LargeArc: large, Sweep: sweep, X: x, Y: y}, nil
}
