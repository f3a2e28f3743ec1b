package converter

import (
	"fmt"
	"strings"

	"github.com/plastikmind/svg2gcode/svgdom"
)

// XMLVisitor observes a depth-first walk over rendered document nodes.
// Every successful Enter is paired with an Exit; a returned error
// aborts the walk immediately.
type XMLVisitor interface {
	Enter(n svgdom.Node) error
	Exit(n svgdom.Node) error
}

// DepthFirstVisit walks the rendered parts of doc. Containers that do
// not render directly (defs, marker, symbol) and nodes styled
// display:none are skipped; use elements expand their referenced node
// in place of their children. Reference cycles are reported as errors.
func DepthFirstVisit(doc *svgdom.Document, visitor XMLVisitor) error {
	w := &walker{doc: doc, visitor: visitor, expanding: make(map[svgdom.NodeID]bool)}
	for _, child := range doc.Root().Children() {
		if err := w.visit(child); err != nil {
			return err
		}
	}
	return nil
}

type walker struct {
	doc     *svgdom.Document
	visitor XMLVisitor
	// use elements on the active expansion chain; re-entering one of
	// them means the document references itself
	expanding map[svgdom.NodeID]bool
}

// shouldRender filters nodes the walk never enters: non-elements,
// display:none, and containers that render only when referenced.
func shouldRender(n svgdom.Node) bool {
	if !n.IsElement() || isHidden(n) {
		return false
	}
	switch kindOf(n.Tag()) {
	case kindDefs, kindMarker, kindSymbol:
		return false
	}
	return true
}

func isHidden(n svgdom.Node) bool {
	style, ok := n.Attr("style")
	return ok && strings.Contains(style, "display:none")
}

// resolveUseHref resolves href (or the legacy xlink:href alias) on a
// use element. Only same-document fragment references are supported.
func resolveUseHref(doc *svgdom.Document, n svgdom.Node) (svgdom.Node, bool) {
	href, ok := n.Attr("href")
	if !ok {
		return svgdom.Node{}, false
	}
	id, ok := strings.CutPrefix(href, "#")
	if !ok {
		return svgdom.Node{}, false
	}
	return doc.ElementByID(id)
}

func (w *walker) visit(n svgdom.Node) error {
	if !shouldRender(n) {
		return nil
	}
	if err := w.visitor.Enter(n); err != nil {
		return err
	}
	if kindOf(n.Tag()) == kindUse {
		if referenced, ok := resolveUseHref(w.doc, n); ok {
			if w.expanding[n.ID()] {
				return fmt.Errorf("converter: reference cycle through <use href=%q>", mustAttr(n, "href"))
			}
			w.expanding[n.ID()] = true
			err := w.visitReferenced(referenced)
			delete(w.expanding, n.ID())
			if err != nil {
				return err
			}
			return w.visitor.Exit(n)
		}
	}
	for _, child := range n.Children() {
		if err := w.visit(child); err != nil {
			return err
		}
	}
	return w.visitor.Exit(n)
}

// visitReferenced enters a node targeted by a use element. The usual
// container filter does not apply here, which is how symbols become
// visible; children are walked with the ordinary filter again.
func (w *walker) visitReferenced(n svgdom.Node) error {
	if !n.IsElement() || isHidden(n) {
		return nil
	}
	if err := w.visitor.Enter(n); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := w.visit(child); err != nil {
			return err
		}
	}
	return w.visitor.Exit(n)
}

func mustAttr(n svgdom.Node, name string) string {
	v, _ := n.Attr(name)
	return v
}
