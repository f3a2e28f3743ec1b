package converter

import (
	"math"

	"github.com/plastikmind/svg2gcode/svgpath"
)

// viewportTransform maps the viewBox rectangle onto a viewport of the
// given size at the given position, honoring the preserveAspectRatio
// alignment and meet/slice fit.
// https://www.w3.org/TR/SVG/coords.html#ComputingAViewportsTransform
func viewportTransform(box svgpath.ViewBox, aspect svgpath.AspectRatio, size [2]float64, pos [2]float64) svgpath.Matrix {
	sx := size[0] / box.W
	sy := size[1] / box.H
	fx, fy := 0.0, 0.0
	if aspect.Align != svgpath.AlignNone {
		s := math.Min(sx, sy)
		if aspect.Slice {
			s = math.Max(sx, sy)
		}
		sx, sy = s, s
		fx, fy = aspect.Align.Factors()
	}
	tx := pos[0] - box.MinX*sx + fx*(size[0]-box.W*sx)
	ty := pos[1] - box.MinY*sy + fy*(size[1]-box.H*sy)
	return svgpath.Identity.Translate(tx, ty).Scale(sx, sy)
}
