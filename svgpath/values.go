package svgpath

import (
	"errors"
	"fmt"
	"strings"
)

// Unit enumerates the length units the converter understands.
type Unit uint8

const (
	UnitNone Unit = iota // bare user units, same as px
	UnitPx
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
	UnitQ
	UnitEm
	UnitEx
	UnitPercent
)

var unitNames = map[string]Unit{
	"":   UnitNone,
	"px": UnitPx,
	"in": UnitIn,
	"cm": UnitCm,
	"mm": UnitMm,
	"pt": UnitPt,
	"pc": UnitPc,
	"q":  UnitQ,
	"em": UnitEm,
	"ex": UnitEx,
	"%":  UnitPercent,
}

// Length is a parsed CSS length: a value with a unit.
type Length struct {
	Value float64
	Unit  Unit
}

var errBadLength = errors.New("invalid length")

// ParseLength parses values such as "10", "2.5mm" or "40%".
func ParseLength(s string) (Length, error) {
	sc := &scanner{s: strings.TrimSpace(s)}
	v, err := sc.number()
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q", errBadLength, s)
	}
	unit, ok := unitNames[strings.ToLower(strings.TrimSpace(sc.s[sc.pos:]))]
	if !ok {
		return Length{}, fmt.Errorf("%w: unknown unit in %q", errBadLength, s)
	}
	return Length{Value: v, Unit: unit}, nil
}

// ViewBox is the "min-x min-y width height" rectangle mapped onto a
// viewport.
type ViewBox struct {
	MinX, MinY, W, H float64
}

var errBadViewBox = errors.New("invalid viewBox")

// ParseViewBox parses a viewBox attribute value. Validity of the
// dimensions is the caller's concern; only syntax is checked here.
func ParseViewBox(s string) (ViewBox, error) {
	nums, err := ParseNumberList(s)
	if err != nil || len(nums) != 4 {
		return ViewBox{}, fmt.Errorf("%w: %q", errBadViewBox, s)
	}
	return ViewBox{MinX: nums[0], MinY: nums[1], W: nums[2], H: nums[3]}, nil
}

// Align is the alignment half of a preserveAspectRatio value.
type Align uint8

const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

// Factors returns the fraction of leftover space placed before the
// content on each axis.
func (a Align) Factors() (fx, fy float64) {
	switch a {
	case AlignXMidYMin, AlignXMidYMid, AlignXMidYMax:
		fx = 0.5
	case AlignXMaxYMin, AlignXMaxYMid, AlignXMaxYMax:
		fx = 1
	}
	switch a {
	case AlignXMinYMid, AlignXMidYMid, AlignXMaxYMid:
		fy = 0.5
	case AlignXMinYMax, AlignXMidYMax, AlignXMaxYMax:
		fy = 1
	}
	return
}

// AspectRatio is a parsed preserveAspectRatio value.
type AspectRatio struct {
	Align Align
	Slice bool
}

// DefaultAspectRatio is the value used when the attribute is absent.
var DefaultAspectRatio = AspectRatio{Align: AlignXMidYMid}

var errBadAspectRatio = errors.New("invalid preserveAspectRatio")

var alignNames = map[string]Align{
	"none":     AlignNone,
	"xMinYMin": AlignXMinYMin,
	"xMidYMin": AlignXMidYMin,
	"xMaxYMin": AlignXMaxYMin,
	"xMinYMid": AlignXMinYMid,
	"xMidYMid": AlignXMidYMid,
	"xMaxYMid": AlignXMaxYMid,
	"xMinYMax": AlignXMinYMax,
	"xMidYMax": AlignXMidYMax,
	"xMaxYMax": AlignXMaxYMax,
}

// ParseAspectRatio parses a preserveAspectRatio attribute value.
func ParseAspectRatio(s string) (AspectRatio, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return AspectRatio{}, fmt.Errorf("%w: %q", errBadAspectRatio, s)
	}
	align, ok := alignNames[fields[0]]
	if !ok {
		return AspectRatio{}, fmt.Errorf("%w: %q", errBadAspectRatio, s)
	}
	out := AspectRatio{Align: align}
	if len(fields) == 2 {
		switch fields[1] {
		case "meet":
		case "slice":
			out.Slice = true
		default:
			return AspectRatio{}, fmt.Errorf("%w: %q", errBadAspectRatio, s)
		}
	}
	return out, nil
}

// ParseNumberList parses comma-or-whitespace separated numbers, the
// grammar shared by viewBox and points attributes.
func ParseNumberList(s string) ([]float64, error) {
	sc := &scanner{s: s}
	var out []float64
	sc.skipWsp()
	for !sc.eof() {
		v, err := sc.number()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		sc.skipCommaWsp()
	}
	return out, nil
}

// ParsePoints parses a points attribute into coordinate pairs.
// A trailing odd coordinate is an error.
func ParsePoints(s string) ([]Point, error) {
	nums, err := ParseNumberList(s)
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates in points list %q", s)
	}
	pts := make([]Point, len(nums)/2)
	for i := range pts {
		pts[i] = Point{X: nums[2*i], Y: nums[2*i+1]}
	}
	return pts, nil
}
