package svgdom

import (
	"strings"
	"testing"
)

const sample = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 10 10">
  <defs>
    <circle id="dot" r="1"/>
  </defs>
  <g id="layer">
    <title>Layer one</title>
    <use xlink:href="#dot" x="2"/>
    <rect id="dot" width="3" height="3"/>
  </g>
</svg>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestParseStructure(t *testing.T) {
	doc := parseSample(t)

	root := doc.Root()
	if root.IsElement() {
		t.Error("document root is not an element")
	}

	var svg Node
	for _, child := range root.Children() {
		if child.IsElement() {
			svg = child
			break
		}
	}
	if svg.Tag() != "svg" {
		t.Fatalf("top element is %q", svg.Tag())
	}
	if v, ok := svg.Attr("viewBox"); !ok || v != "0 0 10 10" {
		t.Errorf("viewBox = %q, %v", v, ok)
	}

	var tags []string
	for _, child := range svg.Children() {
		if child.IsElement() {
			tags = append(tags, child.Tag())
		}
	}
	if got, want := strings.Join(tags, " "), "defs g"; got != want {
		t.Errorf("svg children = %q, want %q", got, want)
	}
}

func TestParentChildLinks(t *testing.T) {
	doc := parseSample(t)
	layer, ok := doc.ElementByID("layer")
	if !ok {
		t.Fatal("no #layer")
	}
	for _, child := range layer.Children() {
		parent, ok := child.Parent()
		if !ok || parent.ID() != layer.ID() {
			t.Errorf("child %v has parent %v", child.ID(), parent.ID())
		}
	}
	if _, ok := doc.Root().Parent(); ok {
		t.Error("document root should have no parent")
	}
}

func TestElementByID(t *testing.T) {
	doc := parseSample(t)

	// duplicate ids resolve to the first in document order
	n, ok := doc.ElementByID("dot")
	if !ok {
		t.Fatal("no #dot")
	}
	if n.Tag() != "circle" {
		t.Errorf("first #dot is a %q, want circle", n.Tag())
	}

	if _, ok := doc.ElementByID("missing"); ok {
		t.Error("found an element for a missing id")
	}
	if _, ok := doc.ElementByID(""); ok {
		t.Error("empty id must not resolve")
	}
}

func TestAttrNamespaces(t *testing.T) {
	doc := parseSample(t)
	layer, _ := doc.ElementByID("layer")

	var use Node
	for _, child := range layer.Children() {
		if child.IsElement() && child.Tag() == "use" {
			use = child
		}
	}
	// local-name lookup sees the xlink-prefixed attribute
	if href, ok := use.Attr("href"); !ok || href != "#dot" {
		t.Errorf("Attr(href) = %q, %v", href, ok)
	}
	if href, ok := use.AttrNS(XLinkNamespace, "href"); !ok || href != "#dot" {
		t.Errorf("AttrNS(xlink, href) = %q, %v", href, ok)
	}
	if _, ok := use.AttrNS("http://example.com", "href"); ok {
		t.Error("AttrNS with wrong namespace must not match")
	}
}

func TestCharDataKept(t *testing.T) {
	doc := parseSample(t)
	layer, _ := doc.ElementByID("layer")
	var title Node
	for _, child := range layer.Children() {
		if child.IsElement() && child.Tag() == "title" {
			title = child
		}
	}
	var text strings.Builder
	for _, child := range title.Children() {
		if !child.IsElement() {
			text.WriteString(child.Text())
		}
	}
	if text.String() != "Layer one" {
		t.Errorf("title text = %q", text.String())
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Error("empty input: expected error")
	}
	if _, err := Parse(strings.NewReader("<svg><unclosed></svg>")); err == nil {
		t.Error("mismatched tags: expected error")
	}
}
