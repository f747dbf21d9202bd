// Package node implements the tree data model described in the HTML5
// tree-construction stage: a small set of node kinds sharing one struct,
// linked by parent/first-child/last-child/next-sibling/prev-sibling
// pointers. The tree owns its nodes; the open-elements stack and the
// active-formatting-elements list (package tree) hold non-owning
// references into it.
package node

import "github.com/loxia-dev/html5/atom"

// Type identifies which variant a Node is.
type Type int

const (
	ErrorNode Type = iota
	DocumentNode
	DocumentFragmentNode
	DoctypeNode
	ElementNode
	TextNode
	CommentNode

	// ScopeMarkerNode is not produced by the parser: the tree builder marks
	// scope boundaries (applet, object, marquee, template, td, th, caption)
	// in its active-formatting-elements list with entries that hold no node.
	// It is never part of the document tree itself.
	ScopeMarkerNode
)

// Namespace identifies the three namespaces the tree builder juggles.
type Namespace string

const (
	HTML  Namespace = ""
	SVG   Namespace = "svg"
	MathML Namespace = "math"
)

// Attribute is one name/value pair. Namespace and Prefix are set for
// foreign (xlink:, xml:, xmlns:) attributes; Name is always the local name.
type Attribute struct {
	Namespace string
	Prefix    string
	Name      string
	Val       string
}

// Doctype holds the payload of a DoctypeNode.
type Doctype struct {
	Name        string
	PublicID    string
	SystemID    string
	ForceQuirks bool
}

// Node is a single node in the document tree. Which fields are meaningful
// depends on Type: Data holds text for TextNode/CommentNode, Doctype holds
// the doctype payload for DoctypeNode, and Attr/Namespace/TemplateContent
// apply to ElementNode.
type Node struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	Type      Type
	Namespace Namespace

	// Data is the tag name for ElementNode, the text for TextNode, the
	// comment body for CommentNode, and unused otherwise.
	Data string
	Attr []Attribute

	Doctype *Doctype

	// TemplateContent is the owned document fragment backing a <template>
	// element's content, kept outside the normal child list per spec.
	TemplateContent *Node
}

// NewDocument creates an empty document root node.
func NewDocument() *Node { return &Node{Type: DocumentNode} }

// NewDocumentFragment creates an empty document-fragment root node.
func NewDocumentFragment() *Node { return &Node{Type: DocumentFragmentNode} }

// NewElement creates an element node with the given HTML-namespace tag
// name and a copy of attrs.
func NewElement(tag string, attrs []Attribute) *Node {
	return &Node{Type: ElementNode, Data: tag, Attr: append([]Attribute(nil), attrs...)}
}

// NewElementNS is like NewElement but sets a foreign namespace.
func NewElementNS(tag string, ns Namespace, attrs []Attribute) *Node {
	return &Node{Type: ElementNode, Data: tag, Namespace: ns, Attr: append([]Attribute(nil), attrs...)}
}

// NewText creates a text node.
func NewText(s string) *Node { return &Node{Type: TextNode, Data: s} }

// NewComment creates a comment node.
func NewComment(s string) *Node { return &Node{Type: CommentNode, Data: s} }

// Attribute returns the value and presence of the named attribute (local
// name, HTML-namespace lookup — does not match foreign-namespaced ones).
func (n *Node) Attribute(name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Name == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets an attribute's value if not already present
// (first-writer-wins), preserving insertion order; it is a no-op if name
// is already set.
func (n *Node) SetAttribute(name, val string) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Name == name {
			return
		}
	}
	n.Attr = append(n.Attr, Attribute{Name: name, Val: val})
}

// IsElement reports whether n is an ElementNode with the given HTML tag.
func (n *Node) IsElement(tag string) bool {
	return n != nil && n.Type == ElementNode && n.Namespace == HTML && n.Data == tag
}

// IsVoid reports whether n is one of the 14 HTML void elements, which the
// tree builder never gives children.
func (n *Node) IsVoid() bool {
	return n.Type == ElementNode && n.Namespace == HTML && atom.Lookup(n.Data).IsVoid()
}

// AppendChild appends child as n's last child, coalescing adjacent text
// nodes per the text-coalescing invariant.
func (n *Node) AppendChild(child *Node) {
	if child.Parent != nil || child.PrevSibling != nil || child.NextSibling != nil {
		panic("node: AppendChild called for an already-attached child")
	}
	if child.Type == TextNode && n.LastChild != nil && n.LastChild.Type == TextNode {
		n.LastChild.Data += child.Data
		return
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = child
	} else {
		n.FirstChild = child
	}
	child.PrevSibling = last
	child.Parent = n
	n.LastChild = child
}

// InsertBefore inserts newChild as a child of n, immediately before
// oldChild. If oldChild is nil, newChild is appended. It coalesces
// adjacent text nodes like AppendChild.
func (n *Node) InsertBefore(newChild, oldChild *Node) {
	if oldChild == nil {
		n.AppendChild(newChild)
		return
	}
	if newChild.Parent != nil || newChild.PrevSibling != nil || newChild.NextSibling != nil {
		panic("node: InsertBefore called for an already-attached child")
	}
	if newChild.Type == TextNode {
		if prev := oldChild.PrevSibling; prev != nil && prev.Type == TextNode {
			prev.Data += newChild.Data
			return
		}
	}
	prev := oldChild.PrevSibling
	if prev != nil {
		prev.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	newChild.PrevSibling = prev
	newChild.NextSibling = oldChild
	oldChild.PrevSibling = newChild
	newChild.Parent = n
}

// RemoveChild detaches child from n. child must currently be a child of n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("node: RemoveChild called for a non-child")
	}
	if n.FirstChild == child {
		n.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PrevSibling = child.PrevSibling
	}
	if n.LastChild == child {
		n.LastChild = child.PrevSibling
	}
	if child.PrevSibling != nil {
		child.PrevSibling.NextSibling = child.NextSibling
	}
	child.Parent = nil
	child.PrevSibling = nil
	child.NextSibling = nil
}

// Children returns n's children as a slice, for callers that prefer
// iteration over the sibling pointers.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Clone returns a new node with the same type, namespace, data, doctype
// and a copy of the attribute slice. The clone has no parent, siblings,
// children, or template content — used by the adoption agency algorithm
// to create a fresh formatting element to reparent under.
func Clone(n *Node) *Node {
	m := &Node{
		Type:      n.Type,
		Namespace: n.Namespace,
		Data:      n.Data,
		Attr:      append([]Attribute(nil), n.Attr...),
	}
	if n.Doctype != nil {
		d := *n.Doctype
		m.Doctype = &d
	}
	return m
}

// ReparentChildren moves all of src's children to the end of dst's child
// list, in order.
func ReparentChildren(dst, src *Node) {
	for {
		c := src.FirstChild
		if c == nil {
			break
		}
		src.RemoveChild(c)
		dst.AppendChild(c)
	}
}
