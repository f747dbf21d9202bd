package tree

import (
	"github.com/loxia-dev/html5/node"
	"github.com/loxia-dev/html5/token"
)

// Sink is the tokenizer-facing half of the contract between package
// token and package tree: the builder pushes state-switch calls and
// the per-token CDATA-allowed flag it derives from its current node.
type Sink interface {
	SwitchToRCDATA()
	SwitchToRawtext()
	SwitchToScriptData()
	SwitchToPlaintext()
	SetAllowCDATA(bool)
}

// insertionMode processes one token under the current insertion mode. It
// returns false to mean "reprocess this same token", true to mean the
// token was consumed (the common case).
type insertionMode func(b *Builder, t token.Token) bool

// Builder is the tree construction stage: it owns the document (or
// fragment) under construction and drives it from a token.Tokenizer
// according to the current insertion mode.
type Builder struct {
	tok Sink

	Document *node.Node

	oe  elementStack
	afe []afEntry

	head *node.Node
	form *node.Node

	im         insertionMode
	originalIM insertionMode

	templateIM []insertionMode

	fosterParenting bool
	framesetOK      bool
	scriptingFlag   bool

	fragmentContext *node.Node
	isFragment      bool

	pendingTableChars      []string
	pendingTableCharsNulls bool

	quirks node.QuirksMode
	iframeSrcdoc bool

	errs []token.ParseError
}

// New creates a Builder for a full-document parse. scripting sets the
// "scripting flag" used to decide how <noscript> is tokenized.
func New(tok Sink, iframeSrcdoc, scripting bool) *Builder {
	b := &Builder{
		tok:           tok,
		Document:      node.NewDocument(),
		framesetOK:    true,
		iframeSrcdoc:  iframeSrcdoc,
		scriptingFlag: scripting,
	}
	b.im = initialIM
	return b
}

// NewFragment creates a Builder for fragment parsing rooted at context
// (an element never itself part of the resulting tree), per the HTML5
// "fragment parsing algorithm".
func NewFragment(tok Sink, context *node.Node, iframeSrcdoc, scripting bool) *Builder {
	b := &Builder{
		tok:             tok,
		Document:        node.NewDocument(),
		framesetOK:      true,
		fragmentContext: context,
		isFragment:      true,
		iframeSrcdoc:    iframeSrcdoc,
		scriptingFlag:   scripting,
	}

	root := node.NewElement("html", nil)
	b.Document.AppendChild(root)
	b.oe.push(root)

	switch context.Data {
	case "title", "textarea":
		b.tok.SwitchToRCDATA()
	case "style", "xmp", "iframe", "noembed", "noframes":
		b.tok.SwitchToRawtext()
	case "script":
		b.tok.SwitchToScriptData()
	case "noscript":
		if b.scriptingFlag {
			b.tok.SwitchToRawtext()
		}
	case "plaintext":
		b.tok.SwitchToPlaintext()
	}

	if context.Data == "form" {
		b.form = &node.Node{Type: node.ElementNode, Data: "form"}
	}

	b.resetInsertionMode()

	for n := context; n != nil; n = n.Parent {
		if n.Data == "form" {
			b.form = n
			break
		}
	}
	return b
}

// resetInsertionMode implements the "reset the insertion mode
// appropriately" algorithm, used by fragment parsing and by </select>,
// </table> and similar pops that can change the applicable mode mid-stream.
func (b *Builder) resetInsertionMode() {
	last := false
	for i := len(b.oe) - 1; i >= 0; i-- {
		n := b.oe[i]
		if i == 0 {
			last = true
			if b.isFragment {
				n = b.fragmentContext
			}
		}
		if n.Namespace != node.HTML {
			continue
		}
		switch n.Data {
		case "select":
			for j := i - 1; j > 0 && !last; j-- {
				anc := b.oe[j]
				if anc.IsElement("template") {
					break
				}
				if anc.IsElement("table") {
					b.im = inSelectInTableIM
					return
				}
			}
			b.im = inSelectIM
			return
		case "td", "th":
			if !last {
				b.im = inCellIM
				return
			}
		case "tr":
			b.im = inRowIM
			return
		case "tbody", "thead", "tfoot":
			b.im = inTableBodyIM
			return
		case "caption":
			b.im = inCaptionIM
			return
		case "colgroup":
			b.im = inColumnGroupIM
			return
		case "table":
			b.im = inTableIM
			return
		case "template":
			if len(b.templateIM) > 0 {
				b.im = b.templateIM[len(b.templateIM)-1]
				return
			}
		case "head":
			if !last {
				b.im = inHeadIM
				return
			}
		case "body":
			b.im = inBodyIM
			return
		case "frameset":
			b.im = inFramesetIM
			return
		case "html":
			if b.head == nil {
				b.im = beforeHeadIM
			} else {
				b.im = afterHeadIM
			}
			return
		}
		if last {
			b.im = inBodyIM
			return
		}
	}
}

// ProcessToken drives one token through the insertion-mode machine, which
// may itself reprocess the token several times (each returning false).
func (b *Builder) ProcessToken(t token.Token) {
	b.updateAllowCDATA()
	for {
		var handled bool
		adjusted := b.adjustedCurrentNode()
		if adjusted != nil && adjusted.Namespace != node.HTML &&
			!isHTMLIntegrationOrMathMLText(adjusted) &&
			!(t.Type == token.StartTag && isMathMLTextBreakout(adjusted, t)) &&
			t.Type != token.EOF {
			handled = foreignContentIM(b, t)
		} else {
			handled = b.im(b, t)
		}
		if handled {
			return
		}
	}
}

func (b *Builder) updateAllowCDATA() {
	n := b.currentNode()
	b.tok.SetAllowCDATA(n != nil && n.Namespace != node.HTML)
}

func (b *Builder) currentNode() *node.Node { return b.oe.top() }

func (b *Builder) currentNamespace() node.Namespace {
	if n := b.currentNode(); n != nil {
		return n.Namespace
	}
	return node.HTML
}

// adjustedCurrentNode is the context element when parsing a fragment
// with exactly one node on the stack, else the current node.
func (b *Builder) adjustedCurrentNode() *node.Node {
	if b.isFragment && len(b.oe) == 1 {
		return b.fragmentContext
	}
	return b.currentNode()
}

// --- insertion helpers ---

func (b *Builder) appropriatePlaceForInsertion(override *node.Node) (parent *node.Node, before *node.Node) {
	target := override
	if target == nil {
		target = b.currentNode()
	}
	if b.fosterParenting && target.Namespace == node.HTML &&
		(target.Data == "table" || target.Data == "tbody" || target.Data == "tfoot" ||
			target.Data == "thead" || target.Data == "tr") {
		return b.fosterParentLocation()
	}
	if target.Type == node.ElementNode && target.Data == "template" && target.Namespace == node.HTML {
		return target.TemplateContent, nil
	}
	return target, nil
}

func (b *Builder) fosterParentLocation() (parent, before *node.Node) {
	var lastTemplate, lastTable *node.Node
	templateIdx, tableIdx := -1, -1
	for i := len(b.oe) - 1; i >= 0; i-- {
		if b.oe[i].IsElement("template") && lastTemplate == nil {
			lastTemplate = b.oe[i]
			templateIdx = i
		}
		if b.oe[i].IsElement("table") && lastTable == nil {
			lastTable = b.oe[i]
			tableIdx = i
		}
	}
	if lastTemplate != nil && (lastTable == nil || templateIdx > tableIdx) {
		return lastTemplate.TemplateContent, nil
	}
	if lastTable == nil {
		return b.oe[0], nil
	}
	if lastTable.Parent != nil {
		return lastTable.Parent, lastTable
	}
	return b.oe[tableIdx-1], nil
}

func (b *Builder) insertElementNode(n *node.Node) {
	parent, before := b.appropriatePlaceForInsertion(nil)
	parent.InsertBefore(n, before)
	b.oe.push(n)
}

// insertHTMLElement creates an element for a start tag in the HTML
// namespace, inserts it at the appropriate place, and pushes it.
func (b *Builder) insertHTMLElement(t token.Token) *node.Node {
	n := node.NewElement(t.Name, t.Attr)
	b.insertElementNode(n)
	return n
}

func (b *Builder) insertForeignElement(t token.Token, ns node.Namespace) *node.Node {
	n := node.NewElementNS(t.Name, ns, t.Attr)
	b.insertElementNode(n)
	return n
}

func (b *Builder) insertText(s string) {
	if s == "" {
		return
	}
	parent, before := b.appropriatePlaceForInsertion(nil)
	if before != nil {
		if prev := before.PrevSibling; prev != nil && prev.Type == node.TextNode {
			prev.Data += s
			return
		}
		parent.InsertBefore(node.NewText(s), before)
		return
	}
	parent.AppendChild(node.NewText(s))
}

func (b *Builder) insertComment(s string, override *node.Node) {
	parent, before := b.appropriatePlaceForInsertion(override)
	parent.InsertBefore(node.NewComment(s), before)
}

func (b *Builder) errorf(code string) {
	b.errs = append(b.errs, token.ParseError{Code: code})
}

// Errors returns the tree-construction errors recorded so far.
func (b *Builder) Errors() []token.ParseError { return b.errs }

// Quirks returns the document's quirks mode, resolved once the DOCTYPE
// (or its absence) has been seen.
func (b *Builder) Quirks() node.QuirksMode { return b.quirks }
