package converter

// elementKind is the closed set of element names the converter
// understands. Everything else falls through to the default arm of the
// dispatch switch.
type elementKind uint8

const (
	kindUnknown elementKind = iota
	kindSVG
	kindGroup
	kindUse
	kindSymbol
	kindDefs
	kindMarker
	kindClipPath
	kindPath
	kindPolyline
	kindPolygon
	kindRect
	kindCircle
	kindEllipse
	kindLine
)

var elementKinds = map[string]elementKind{
	"svg":      kindSVG,
	"g":        kindGroup,
	"use":      kindUse,
	"symbol":   kindSymbol,
	"defs":     kindDefs,
	"marker":   kindMarker,
	"clipPath": kindClipPath,
	"path":     kindPath,
	"polyline": kindPolyline,
	"polygon":  kindPolygon,
	"rect":     kindRect,
	"circle":   kindCircle,
	"ellipse":  kindEllipse,
	"line":     kindLine,
}

func kindOf(tag string) elementKind {
	return elementKinds[tag]
}

// establishesViewport reports whether entering the element pushes a new
// viewport onto the dimension stack.
func (k elementKind) establishesViewport() bool {
	return k == kindSVG || k == kindSymbol
}
