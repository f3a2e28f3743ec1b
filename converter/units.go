package converter

import (
	"math"

	"github.com/plastikmind/svg2gcode/svgdom"
	"github.com/plastikmind/svg2gcode/svgpath"
)

// DefaultDPI is the CSS reference pixel density used to resolve
// physical units when the caller does not override it.
const DefaultDPI = 96.0

// DimensionHint selects the viewport dimension a percentage length is
// resolved against.
type DimensionHint uint8

const (
	HintHorizontal DimensionHint = iota
	HintVertical
	// HintDiagonal is the normalized diagonal, used for lengths that
	// belong to neither axis, such as a circle radius.
	HintDiagonal
)

// length resolves a parsed length to user units. Physical units go
// through the configured DPI; percentages resolve against the current
// viewport dimension selected by hint.
func (v *ConversionVisitor) length(l svgpath.Length, hint DimensionHint) float64 {
	dpi := v.config.DPI
	switch l.Unit {
	case svgpath.UnitNone, svgpath.UnitPx:
		return l.Value
	case svgpath.UnitIn:
		return l.Value * dpi
	case svgpath.UnitCm:
		return l.Value * dpi / 2.54
	case svgpath.UnitMm:
		return l.Value * dpi / 25.4
	case svgpath.UnitPt:
		return l.Value * dpi / 72
	case svgpath.UnitPc:
		return l.Value * dpi / 6
	case svgpath.UnitQ:
		return l.Value * dpi / 101.6
	case svgpath.UnitPercent:
		return l.Value / 100 * v.viewportDim(hint)
	default:
		// em and ex depend on font metrics, which have no meaning here
		return l.Value
	}
}

// viewportDim returns the current viewport dimension for hint.
func (v *ConversionVisitor) viewportDim(hint DimensionHint) float64 {
	dims := [2]float64{1, 1}
	if n := len(v.viewportStack); n > 0 {
		dims = v.viewportStack[n-1]
	}
	switch hint {
	case HintHorizontal:
		return dims[0]
	case HintVertical:
		return dims[1]
	default:
		return math.Sqrt((dims[0]*dims[0] + dims[1]*dims[1]) / 2)
	}
}

// lengthAttr resolves the named length attribute to user units.
// An absent attribute returns nil; a malformed or font-relative value
// is reported and treated as absent.
func (v *ConversionVisitor) lengthAttr(n svgdom.Node, name string, hint DimensionHint) *float64 {
	raw, ok := n.Attr(name)
	if !ok {
		return nil
	}
	l, err := svgpath.ParseLength(raw)
	if err != nil {
		v.diag.Warnf("<%s>: ignoring unparseable %s=%q", n.Tag(), name, raw)
		return nil
	}
	if l.Unit == svgpath.UnitEm || l.Unit == svgpath.UnitEx {
		v.diag.Warnf("<%s>: font-relative %s=%q is not supported", n.Tag(), name, raw)
		return nil
	}
	out := v.length(l, hint)
	return &out
}
