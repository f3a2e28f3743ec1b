package turtle

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/plastikmind/svg2gcode/svgpath"
)

// RasterPreview strokes the lowered document into an RGBA image, which
// lets a conversion be eyeballed without driving a machine. Lowered
// coordinates live in the Y-up quadrant below the X axis, so the
// preview mirrors them back into image space.
type RasterPreview struct {
	img    *image.RGBA
	dasher *rasterx.Dasher
	scale  float64
	open   bool
	pen    color.Color
}

// NewRasterPreview allocates a white width x height canvas. scale is
// pixels per user unit.
func NewRasterPreview(width, height int, scale float64) *RasterPreview {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	dasher.SetStroke(fixed.I(1), fixed.I(4),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel, nil, 0)
	return &RasterPreview{
		img:    img,
		dasher: dasher,
		scale:  scale,
		pen:    color.Black,
	}
}

// SetPen changes the stroke color for subsequent drawing.
func (r *RasterPreview) SetPen(c color.Color) { r.pen = c }

func (r *RasterPreview) fixedPoint(p svgpath.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(p.X * r.scale * 64),
		Y: fixed.Int26_6(-p.Y * r.scale * 64), // mirror Y-up back onto the raster grid
	}
}

func (r *RasterPreview) Begin() {}

func (r *RasterPreview) End() {
	if r.open {
		r.dasher.Stop(false)
		r.open = false
	}
	r.dasher.SetColor(r.pen)
	r.dasher.Draw()
}

func (r *RasterPreview) Comment(string) {}

func (r *RasterPreview) MoveTo(p svgpath.Point) {
	if r.open {
		r.dasher.Stop(false)
	}
	r.dasher.Start(r.fixedPoint(p))
	r.open = true
}

func (r *RasterPreview) LineTo(p svgpath.Point) {
	r.dasher.Line(r.fixedPoint(p))
}

func (r *RasterPreview) CubicBezier(c1, c2, end svgpath.Point) {
	r.dasher.CubeBezier(r.fixedPoint(c1), r.fixedPoint(c2), r.fixedPoint(end))
}

func (r *RasterPreview) QuadraticBezier(c, end svgpath.Point) {
	r.dasher.QuadBezier(r.fixedPoint(c), r.fixedPoint(end))
}

func (r *RasterPreview) Close() {
	if r.open {
		r.dasher.Stop(true)
		r.open = false
	}
}

// Image returns the canvas; call after End.
func (r *RasterPreview) Image() *image.RGBA { return r.img }
