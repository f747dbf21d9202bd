// Package tree implements the tree construction stage (C5-C7): the
// insertion-mode state machine, the open-elements stack and active
// formatting elements list with their scope rules, the adoption agency
// algorithm, and foreign-content (SVG/MathML) handling.
package tree

import "github.com/loxia-dev/html5/node"

// elementStack is the "stack of open elements": a LIFO list of element
// nodes, referenced non-owning into the tree the Builder is constructing.
type elementStack []*node.Node

func (s *elementStack) push(n *node.Node) { *s = append(*s, n) }

func (s *elementStack) pop() *node.Node {
	n := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return n
}

func (s elementStack) top() *node.Node {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

func (s elementStack) index(n *node.Node) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == n {
			return i
		}
	}
	return -1
}

func (s elementStack) contains(tag string) bool {
	for _, n := range s {
		if n.IsElement(tag) {
			return true
		}
	}
	return false
}

// popUntil pops elements (inclusive) until one matching any of tags (in
// the HTML namespace) is popped, and reports whether such an element was
// found at all.
func (s *elementStack) popUntil(tags ...string) bool {
	for i := len(*s) - 1; i >= 0; i-- {
		n := (*s)[i]
		*s = (*s)[:i]
		for _, tag := range tags {
			if n.IsElement(tag) {
				return true
			}
		}
	}
	return false
}

// scope enumerates the five scope variants over the stack of open
// elements, differing only in which elements stop the walk.
type scope int

const (
	defaultScope scope = iota
	listItemScope
	buttonScope
	tableScope
	selectScope
)

var defaultScopeStop = map[string]bool{
	"applet": true, "caption": true, "html": true, "table": true,
	"td": true, "th": true, "marquee": true, "object": true,
	"template": true,
}

var defaultScopeStopMathML = map[string]bool{
	"mi": true, "mo": true, "mn": true, "ms": true, "mtext": true, "annotation-xml": true,
}

var defaultScopeStopSVG = map[string]bool{
	"foreignObject": true, "desc": true, "title": true,
}

func stopsScope(n *node.Node, sc scope) bool {
	switch n.Namespace {
	case node.MathML:
		if defaultScopeStopMathML[n.Data] {
			return true
		}
	case node.SVG:
		if defaultScopeStopSVG[n.Data] {
			return true
		}
	}
	if n.Namespace != node.HTML {
		return false
	}
	switch sc {
	case tableScope:
		return n.Data == "html" || n.Data == "table" || n.Data == "template"
	case selectScope:
		return n.Data != "optgroup" && n.Data != "option"
	case listItemScope:
		if defaultScopeStop[n.Data] || n.Data == "ol" || n.Data == "ul" {
			return true
		}
		return false
	case buttonScope:
		if defaultScopeStop[n.Data] || n.Data == "button" {
			return true
		}
		return false
	default:
		return defaultScopeStop[n.Data]
	}
}

// elementInScope reports whether an element matching tags is found on
// the stack before any scope-stopping element, per the named scope
// variant. selectScope is inverted: every element it meets must itself
// be "optgroup" or "option", else scope is broken immediately.
func (s elementStack) elementInScope(sc scope, tags ...string) bool {
	for i := len(s) - 1; i >= 0; i-- {
		n := s[i]
		if n.Namespace == node.HTML {
			for _, tag := range tags {
				if n.Data == tag {
					return true
				}
			}
		}
		if sc == selectScope {
			if n.Data != "optgroup" && n.Data != "option" {
				return false
			}
			continue
		}
		if stopsScope(n, sc) {
			return false
		}
	}
	return false
}

var impliedEndTags = map[string]bool{
	"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
	"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
}

// generateImpliedEndTags pops elements off the stack whose tag is one of
// the "implied end tag" set, skipping any tag equal to except.
func (b *Builder) generateImpliedEndTags(except string) {
	for {
		top := b.oe.top()
		if top == nil || top.Namespace != node.HTML {
			return
		}
		if top.Data == except {
			return
		}
		if !impliedEndTags[top.Data] {
			return
		}
		b.oe.pop()
	}
}

var impliedEndTagsThorough = map[string]bool{
	"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
	"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true, "tr": true,
	"caption": true, "colgroup": true,
}

func (b *Builder) generateImpliedEndTagsThoroughly() {
	for {
		top := b.oe.top()
		if top == nil || top.Namespace != node.HTML || !impliedEndTagsThorough[top.Data] {
			return
		}
		b.oe.pop()
	}
}

// --- active formatting elements ---

// afEntry is one entry in the active formatting elements list: either a
// formatting element reference, or a scope marker (node is nil) inserted
// at the start of applet/object/marquee/template/td/th/caption content.
type afEntry struct {
	node *node.Node
	tok  startTagSnapshot
}

// startTagSnapshot preserves enough of the original start tag to
// recreate an equivalent element during reconstruction/adoption.
type startTagSnapshot struct {
	name string
	attr []node.Attribute
	ns   node.Namespace
}

func (b *Builder) pushScopeMarker() {
	b.afe = append(b.afe, afEntry{})
}

func (b *Builder) clearActiveFormattingToMarker() {
	for len(b.afe) > 0 {
		e := b.afe[len(b.afe)-1]
		b.afe = b.afe[:len(b.afe)-1]
		if e.node == nil {
			return
		}
	}
}

// addFormattingElement appends n (with its originating tag snapshot) to
// the active formatting elements list, enforcing the Noah's Ark clause:
// if three elements with the same tag, namespace and attribute set
// already appear since the last marker, the earliest is removed.
func (b *Builder) addFormattingElement(n *node.Node, snap startTagSnapshot) {
	count := 0
	earliest := -1
	for i := len(b.afe) - 1; i >= 0; i-- {
		e := b.afe[i]
		if e.node == nil {
			break
		}
		if sameFormattingElement(e.tok, snap) {
			count++
			earliest = i
			if count >= 3 {
				break
			}
		}
	}
	if count >= 3 && earliest >= 0 {
		b.afe = append(b.afe[:earliest], b.afe[earliest+1:]...)
	}
	b.afe = append(b.afe, afEntry{node: n, tok: snap})
}

func sameFormattingElement(a, b startTagSnapshot) bool {
	if a.name != b.name || a.ns != b.ns || len(a.attr) != len(b.attr) {
		return false
	}
	for _, av := range a.attr {
		found := false
		for _, bv := range b.attr {
			if av.Name == bv.Name && av.Namespace == bv.Namespace && av.Val == bv.Val {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (b *Builder) afeIndex(n *node.Node) int {
	for i := len(b.afe) - 1; i >= 0; i-- {
		if b.afe[i].node == n {
			return i
		}
	}
	return -1
}

func (b *Builder) removeFromActiveFormatting(n *node.Node) {
	i := b.afeIndex(n)
	if i >= 0 {
		b.afe = append(b.afe[:i], b.afe[i+1:]...)
	}
}

// reconstructActiveFormattingElements re-inserts, in order, any
// formatting elements that fell out of the stack of open elements (e.g.
// because a table foster-parented content around them) since the last
// marker or the bottom of the list.
func (b *Builder) reconstructActiveFormattingElements() {
	if len(b.afe) == 0 {
		return
	}
	last := len(b.afe) - 1
	if b.afe[last].node == nil || b.oe.index(b.afe[last].node) != -1 {
		return
	}
	i := last
	for {
		if i == 0 {
			break
		}
		i--
		if b.afe[i].node == nil || b.oe.index(b.afe[i].node) != -1 {
			i++
			break
		}
	}
	for ; i <= last; i++ {
		clone := node.Clone(b.afe[i].node)
		b.insertElementNode(clone)
		b.afe[i].node = clone
	}
}
