// Provides an immutable, randomly addressable SVG document tree.
// The raw markup is decoded once into an arena of nodes; every node
// is identified by a stable index into that arena, so traversal code
// can hold on to plain handles instead of pointers into decoder state.
package svgdom

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

// XLinkNamespace is the namespace of the legacy href alias (xlink:href).
const XLinkNamespace = "http://www.w3.org/1999/xlink"

// NodeID indexes a node inside its Document arena.
// IDs are assigned in document order, starting at 0 for the
// synthetic document root.
type NodeID int

const nilID NodeID = -1

type nodeKind uint8

const (
	kindDocument nodeKind = iota
	kindElement
	kindText
)

// Attr is a single decoded attribute. Space holds the resolved
// namespace URI, or the raw prefix when the document never declared it.
type Attr struct {
	Space, Local, Value string
}

type node struct {
	kind        nodeKind
	tag         string
	attrs       []Attr
	text        string
	parent      NodeID
	firstChild  NodeID
	lastChild   NodeID
	nextSibling NodeID
}

// Document is an owned arena of nodes. It is immutable after Parse
// and safe for concurrent reads.
type Document struct {
	nodes []node
}

// Node is a cheap value handle into a Document.
// The zero Node is invalid; obtain nodes from Document methods.
type Node struct {
	doc *Document
	id  NodeID
}

var errNoContent = errors.New("svgdom: document contains no elements")

// Parse decodes an XML document from stream into an arena tree.
// Character data is kept (titles and descriptions live there), comments
// and processing instructions are dropped.
func Parse(stream io.Reader) (*Document, error) {
	doc := &Document{}
	doc.nodes = append(doc.nodes, node{
		kind:        kindDocument,
		parent:      nilID,
		firstChild:  nilID,
		lastChild:   nilID,
		nextSibling: nilID,
	})

	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	open := []NodeID{0}
	seenElement := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenElement = true
			attrs := make([]Attr, len(se.Attr))
			for i, a := range se.Attr {
				attrs[i] = Attr{Space: a.Name.Space, Local: a.Name.Local, Value: a.Value}
			}
			id := doc.append(open[len(open)-1], node{
				kind:  kindElement,
				tag:   se.Name.Local,
				attrs: attrs,
			})
			open = append(open, id)
		case xml.EndElement:
			open = open[:len(open)-1]
		case xml.CharData:
			doc.append(open[len(open)-1], node{
				kind: kindText,
				text: string(se),
			})
		}
	}
	if !seenElement {
		return nil, errNoContent
	}
	return doc, nil
}

// ParseFile decodes the named file.
func ParseFile(path string) (*Document, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return Parse(fin)
}

func (d *Document) append(parent NodeID, n node) NodeID {
	id := NodeID(len(d.nodes))
	n.parent = parent
	n.firstChild = nilID
	n.lastChild = nilID
	n.nextSibling = nilID
	d.nodes = append(d.nodes, n)
	p := &d.nodes[parent]
	if p.firstChild == nilID {
		p.firstChild = id
	} else {
		d.nodes[p.lastChild].nextSibling = id
	}
	p.lastChild = id
	return id
}

// Root returns the synthetic document root. Its children are the
// top-level nodes of the markup.
func (d *Document) Root() Node {
	return Node{doc: d, id: 0}
}

// ElementByID returns the first element in document order whose "id"
// attribute equals id. Arena order is document order, so a linear scan
// gives the right answer.
func (d *Document) ElementByID(id string) (Node, bool) {
	if id == "" {
		return Node{}, false
	}
	for i := range d.nodes {
		if d.nodes[i].kind != kindElement {
			continue
		}
		n := Node{doc: d, id: NodeID(i)}
		if v, ok := n.Attr("id"); ok && v == id {
			return n, true
		}
	}
	return Node{}, false
}

// ID returns the arena index of the node.
func (n Node) ID() NodeID { return n.id }

// IsElement reports whether the node is an element (as opposed to
// character data or the document root).
func (n Node) IsElement() bool {
	return n.doc != nil && n.doc.nodes[n.id].kind == kindElement
}

// Tag returns the local element name, or "" for non-elements.
func (n Node) Tag() string { return n.doc.nodes[n.id].tag }

// Text returns the character data of a text node.
func (n Node) Text() string { return n.doc.nodes[n.id].text }

// Attr looks an attribute up by local name, ignoring its namespace.
// This mirrors how SVG processors treat href and xlink:href alike.
func (n Node) Attr(local string) (string, bool) {
	for _, a := range n.doc.nodes[n.id].attrs {
		if a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrNS looks an attribute up by exact (namespace, local) pair.
func (n Node) AttrNS(space, local string) (string, bool) {
	for _, a := range n.doc.nodes[n.id].attrs {
		if a.Space == space && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether an attribute with the local name is present.
func (n Node) HasAttr(local string) bool {
	_, ok := n.Attr(local)
	return ok
}

// Attrs returns the node's attributes in document order.
func (n Node) Attrs() []Attr { return n.doc.nodes[n.id].attrs }

// Parent returns the parent node; ok is false on the document root.
func (n Node) Parent() (Node, bool) {
	p := n.doc.nodes[n.id].parent
	if p == nilID {
		return Node{}, false
	}
	return Node{doc: n.doc, id: p}, true
}

// Children returns the node's direct children in document order.
func (n Node) Children() []Node {
	var out []Node
	for id := n.doc.nodes[n.id].firstChild; id != nilID; id = n.doc.nodes[id].nextSibling {
		out = append(out, Node{doc: n.doc, id: id})
	}
	return out
}

// Document returns the owning document.
func (n Node) Document() *Document { return n.doc }
