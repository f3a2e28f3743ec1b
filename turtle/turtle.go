// Provides the drawing sinks fed by the converter: the Turtle contract,
// the Terrarium that grounds path segments into absolute transformed
// coordinates, a recording turtle, and a raster preview backend.
package turtle

import "github.com/plastikmind/svg2gcode/svgpath"

// Turtle receives fully resolved drawing operations: every coordinate
// is absolute and already carries the composed document transform.
// Implementations own the actual emission (g-code words, raster
// strokes, test records) and need no SVG knowledge.
type Turtle interface {
	// Begin is called once before the first operation.
	Begin()

	// End is called once after the last operation.
	End()

	// Comment annotates the following operations; purely informational.
	Comment(text string)

	// MoveTo starts a new subpath; the pen travels without drawing.
	MoveTo(p svgpath.Point)

	// LineTo draws a straight line from the current position.
	LineTo(p svgpath.Point)

	// CubicBezier draws a cubic bezier from the current position.
	CubicBezier(c1, c2, end svgpath.Point)

	// QuadraticBezier draws a quadratic bezier from the current position.
	QuadraticBezier(c, end svgpath.Point)

	// Close draws back to the start of the current subpath.
	Close()
}
