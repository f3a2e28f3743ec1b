package converter

import (
	"fmt"
	"strings"

	"github.com/plastikmind/svg2gcode/svgdom"
	"github.com/plastikmind/svg2gcode/svgpath"
	"github.com/plastikmind/svg2gcode/turtle"
)

// ConversionVisitor lowers document nodes into drawing operations as
// the walk enters and exits them. It owns the viewport-dimension stack
// and the annotation name stack; the transform stack lives in the
// terrarium.
type ConversionVisitor struct {
	config    Config
	terrarium *turtle.Terrarium
	diag      Diagnostics

	nameStack     []string
	viewportStack [][2]float64
}

// NewConversionVisitor wires a visitor to a sink. Callers normally use
// Convert instead.
func NewConversionVisitor(cfg Config, sink turtle.Turtle, diag Diagnostics) *ConversionVisitor {
	if diag == nil {
		diag = NopDiagnostics()
	}
	if cfg.DPI == 0 {
		cfg.DPI = DefaultDPI
	}
	return &ConversionVisitor{
		config:    cfg,
		terrarium: turtle.NewTerrarium(sink),
		diag:      diag,
	}
}

// Enter computes the node's full local transform contribution, pushes
// it, and lowers any shape the node carries.
func (v *ConversionVisitor) Enter(n svgdom.Node) error {
	kind := kindOf(n.Tag())

	if kind == kindClipPath {
		v.diag.Warnf("clip paths are not supported: <%s>", n.Tag())
	}
	if _, ok := n.Attr("transform-origin"); ok {
		v.diag.Warnf("<%s>: transform-origin is not supported", n.Tag())
	}

	flattened := svgpath.Identity
	if raw, ok := n.Attr("transform"); ok {
		list, err := svgpath.ParseTransformList(raw)
		if err != nil {
			return fmt.Errorf("<%s>: %w", n.Tag(), err)
		}
		// rightmost transform applies to points first
		for _, m := range list {
			flattened = flattened.Mult(m)
		}
	}

	switch kind {
	case kindSVG:
		m, err := v.enterSVGViewport(n, flattened)
		if err != nil {
			return err
		}
		flattened = m
	case kindUse:
		// x/y translate after the element's own transform
		// https://www.w3.org/TR/SVG2/struct.html#UseLayout
		x := orZero(v.lengthAttr(n, "x", HintHorizontal))
		y := orZero(v.lengthAttr(n, "y", HintVertical))
		flattened = svgpath.Identity.Translate(x, y).Mult(flattened)
	case kindSymbol:
		m, err := v.enterSymbolViewport(n, flattened)
		if err != nil {
			return err
		}
		flattened = m
	default:
		if n.HasAttr("viewBox") {
			v.diag.Warnf("viewBox is not supported on a <%s>", n.Tag())
		}
	}

	v.terrarium.PushTransform(flattened)

	if err := v.lowerShape(n, kind); err != nil {
		return err
	}

	v.nameStack = append(v.nameStack, v.nodeName(n))
	return nil
}

// Exit unwinds whatever Enter pushed.
func (v *ConversionVisitor) Exit(n svgdom.Node) error {
	v.terrarium.PopTransform()
	v.nameStack = v.nameStack[:len(v.nameStack)-1]
	if kindOf(n.Tag()).establishesViewport() {
		v.viewportStack = v.viewportStack[:len(v.viewportStack)-1]
	}
	return nil
}

// enterSVGViewport establishes the viewport of an svg element:
// size resolution with caller overrides, the viewBox fit transform, and
// the flip from SVG's Y-down coordinates into Y-up output coordinates.
// https://www.w3.org/TR/SVG/coords.html#EstablishingANewSVGViewport
func (v *ConversionVisitor) enterSVGViewport(n svgdom.Node, flattened svgpath.Matrix) (svgpath.Matrix, error) {
	box, aspect, err := v.viewBoxAndAspect(n)
	if err != nil {
		return svgpath.Matrix{}, err
	}

	size := [2]*float64{
		v.lengthAttr(n, "width", HintHorizontal),
		v.lengthAttr(n, "height", HintVertical),
	}

	// https://www.w3.org/TR/SVG/coords.html#SizingSVGInCSS
	// intrinsic ratio comes from the element's own attributes, before
	// any caller override
	var ratio *float64
	switch {
	case box != nil:
		r := box.W / box.H
		ratio = &r
	case size[0] != nil && size[1] != nil:
		r := *size[0] / *size[1]
		ratio = &r
	}

	// dimension overrides apply to the outermost svg element only
	if v.terrarium.Depth() == 0 {
		overrides := [2]*svgpath.Length{v.config.WidthOverride, v.config.HeightOverride}
		for i, o := range overrides {
			if o != nil {
				resolved := v.length(*o, HintHorizontal)
				size[i] = &resolved
			}
		}
	}

	resolved := resolveViewportSize(size, ratio, box)

	pos := [2]float64{
		orZero(v.lengthAttr(n, "x", HintHorizontal)),
		orZero(v.lengthAttr(n, "y", HintVertical)),
	}

	if box != nil {
		v.viewportStack = append(v.viewportStack, [2]float64{box.W, box.H})
		flattened = viewportTransform(*box, aspect, resolved, pos).Mult(flattened)
	} else {
		v.viewportStack = append(v.viewportStack, resolved)
	}

	// Y-axis flip into output coordinates; the second half of the flip
	// is the sign change baked into the translation itself.
	return svgpath.Identity.Translate(0, -(resolved[1] + pos[1])).Mult(flattened), nil
}

// enterSymbolViewport establishes the viewport of a referenced symbol.
// Symbols have no position and live inside an already flipped
// coordinate system, so only the fit transform applies.
func (v *ConversionVisitor) enterSymbolViewport(n svgdom.Node, flattened svgpath.Matrix) (svgpath.Matrix, error) {
	box, aspect, err := v.viewBoxAndAspect(n)
	if err != nil {
		return svgpath.Matrix{}, err
	}

	width := v.lengthAttr(n, "width", HintHorizontal)
	height := v.lengthAttr(n, "height", HintVertical)

	var size [2]float64
	switch {
	case width != nil && height != nil:
		size = [2]float64{*width, *height}
	case box != nil:
		size = [2]float64{box.W, box.H}
	case len(v.viewportStack) > 0:
		size = v.viewportStack[len(v.viewportStack)-1]
	default:
		size = [2]float64{1, 1}
	}
	v.viewportStack = append(v.viewportStack, size)

	if box != nil {
		flattened = viewportTransform(*box, aspect, size, [2]float64{}).Mult(flattened)
	}
	return flattened, nil
}

// viewBoxAndAspect parses the two viewport attributes. A syntactically
// broken value is fatal; a viewBox with non-positive extent is reported
// and treated as absent.
func (v *ConversionVisitor) viewBoxAndAspect(n svgdom.Node) (*svgpath.ViewBox, svgpath.AspectRatio, error) {
	var box *svgpath.ViewBox
	if raw, ok := n.Attr("viewBox"); ok {
		parsed, err := svgpath.ParseViewBox(raw)
		if err != nil {
			return nil, svgpath.AspectRatio{}, fmt.Errorf("<%s>: %w", n.Tag(), err)
		}
		if parsed.W <= 0 || parsed.H <= 0 {
			v.diag.Warnf("<%s>: ignoring viewBox %q with non-positive extent", n.Tag(), raw)
		} else {
			box = &parsed
		}
	}
	aspect := svgpath.DefaultAspectRatio
	if raw, ok := n.Attr("preserveAspectRatio"); ok {
		parsed, err := svgpath.ParseAspectRatio(raw)
		if err != nil {
			return nil, svgpath.AspectRatio{}, fmt.Errorf("<%s>: %w", n.Tag(), err)
		}
		aspect = parsed
	}
	return box, aspect, nil
}

// resolveViewportSize fills in missing viewport dimensions following
// the CSS default sizing algorithm.
// https://www.w3.org/TR/css-images-3/#default-sizing
func resolveViewportSize(size [2]*float64, ratio *float64, box *svgpath.ViewBox) [2]float64 {
	switch {
	case size[0] != nil && size[1] != nil:
		return [2]float64{*size[0], *size[1]}
	case size[0] != nil && ratio != nil:
		return [2]float64{*size[0], *size[0] / *ratio}
	case size[1] != nil && ratio != nil:
		return [2]float64{*size[1] * *ratio, *size[1]}
	case size[0] == nil && size[1] == nil && box != nil:
		// no width or height at all; assume the coordinate system is
		// pixels on the viewport
		return [2]float64{box.W, box.H}
	case size[0] != nil:
		return [2]float64{*size[0], *size[0]}
	case size[1] != nil:
		return [2]float64{*size[1], *size[1]}
	default:
		return [2]float64{1, 1}
	}
}

// nodeName labels a node for annotation: the configured attribute's
// value when present, the tag name otherwise.
func (v *ConversionVisitor) nodeName(n svgdom.Node) string {
	if v.config.LabelAttribute != "" {
		if label, ok := n.Attr(v.config.LabelAttribute); ok && label != "" {
			return label
		}
	}
	if id, ok := n.Attr("id"); ok && id != "" {
		return n.Tag() + "#" + id
	}
	return n.Tag()
}

// comment annotates the sink with the node's place in the document.
func (v *ConversionVisitor) comment(n svgdom.Node) {
	parts := append(append([]string{}, v.nameStack...), v.nodeName(n))
	v.terrarium.Annotate(strings.Join(parts, " > "))
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
