// Lowers an SVG document tree into absolute drawing operations on a
// turtle sink: depth-first traversal with use/symbol indirection,
// viewport establishment, transform flattening, and shape lowering
// into move/line/bezier segments.
package converter

import (
	"fmt"

	"github.com/plastikmind/svg2gcode/svgdom"
	"github.com/plastikmind/svg2gcode/svgpath"
	"github.com/plastikmind/svg2gcode/turtle"
)

// Config carries the caller-tunable knobs of a conversion.
// The zero value is usable.
type Config struct {
	// WidthOverride and HeightOverride replace the corresponding
	// dimension of every svg viewport, independently per axis.
	WidthOverride  *svgpath.Length
	HeightOverride *svgpath.Length

	// LabelAttribute names an attribute whose value, when present,
	// labels a node in annotations instead of its tag name.
	LabelAttribute string

	// DPI resolves physical units; 0 means DefaultDPI.
	DPI float64
}

// Convert walks doc and feeds the lowered drawing operations to sink,
// bracketed by Begin and End. A nil diag discards diagnostics.
// The document is read only; converting the same document twice
// produces identical operations.
func Convert(doc *svgdom.Document, cfg Config, sink turtle.Turtle, diag Diagnostics) error {
	v := NewConversionVisitor(cfg, sink, diag)
	sink.Begin()
	if err := DepthFirstVisit(doc, v); err != nil {
		return err
	}
	if d := v.terrarium.Depth(); d != 0 {
		return fmt.Errorf("converter: transform stack not unwound, depth %d", d)
	}
	sink.End()
	return nil
}
