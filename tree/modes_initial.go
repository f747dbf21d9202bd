package tree

import (
	"github.com/loxia-dev/html5/node"
	"github.com/loxia-dev/html5/token"
)

func isAllWhitespace(s string) bool {
	for _, c := range s {
		switch c {
		case ' ', '\t', '\n', '\f', '\r':
		default:
			return false
		}
	}
	return true
}

func splitLeadingWhitespace(s string) (ws, rest string) {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\f', '\r':
			i++
			continue
		}
		break
	}
	return s[:i], s[i:]
}

func initialIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		ws, rest := splitLeadingWhitespace(t.Data)
		_ = ws
		if rest == "" {
			return true
		}
		t.Data = rest
		return false
	case token.Comment:
		b.insertComment(t.Data, b.Document)
		return true
	case token.Doctype:
		b.Document.AppendChild(&node.Node{Type: node.DoctypeNode, Doctype: t.Doctype})
		b.quirks = node.DetectQuirksMode(t.Doctype, b.iframeSrcdoc)
		b.im = beforeHTMLIM
		return true
	default:
		if !b.iframeSrcdoc {
			b.quirks = node.Quirks
		}
		b.im = beforeHTMLIM
		return false
	}
}

func beforeHTMLIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Doctype:
		b.errorf("doctype-in-before-html")
		return true
	case token.Comment:
		b.insertComment(t.Data, b.Document)
		return true
	case token.Text:
		ws, rest := splitLeadingWhitespace(t.Data)
		_ = ws
		if rest == "" {
			return true
		}
		t.Data = rest
		return newHTMLRootAndReprocess(b, t)
	case token.StartTag:
		if t.Name == "html" {
			b.insertHTMLElement(t)
			b.im = beforeHeadIM
			return true
		}
		return newHTMLRootAndReprocess(b, t)
	case token.EndTag:
		switch t.Name {
		case "head", "body", "html", "br":
			return newHTMLRootAndReprocess(b, t)
		default:
			b.errorf("unexpected-end-tag-before-html")
			return true
		}
	default:
		return newHTMLRootAndReprocess(b, t)
	}
}

func newHTMLRootAndReprocess(b *Builder, t token.Token) bool {
	root := node.NewElement("html", nil)
	b.Document.AppendChild(root)
	b.oe.push(root)
	b.im = beforeHeadIM
	return false
}

func beforeHeadIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		ws, rest := splitLeadingWhitespace(t.Data)
		_ = ws
		if rest == "" {
			return true
		}
		t.Data = rest
		return insertHeadAndReprocess(b, t)
	case token.Comment:
		b.insertComment(t.Data, nil)
		return true
	case token.Doctype:
		b.errorf("doctype-in-before-head")
		return true
	case token.StartTag:
		switch t.Name {
		case "html":
			return inBodyIM(b, t)
		case "head":
			h := b.insertHTMLElement(t)
			b.head = h
			b.im = inHeadIM
			return true
		}
		return insertHeadAndReprocess(b, t)
	case token.EndTag:
		switch t.Name {
		case "head", "body", "html", "br":
			return insertHeadAndReprocess(b, t)
		default:
			b.errorf("unexpected-end-tag-before-head")
			return true
		}
	default:
		return insertHeadAndReprocess(b, t)
	}
}

func insertHeadAndReprocess(b *Builder, t token.Token) bool {
	h := node.NewElement("head", nil)
	b.insertElementNode(h)
	b.head = h
	b.im = inHeadIM
	return false
}

func inHeadIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		ws, rest := splitLeadingWhitespace(t.Data)
		if ws != "" {
			b.insertText(ws)
		}
		if rest == "" {
			return true
		}
		t.Data = rest
		return popHeadAndReprocess(b, t)
	case token.Comment:
		b.insertComment(t.Data, nil)
		return true
	case token.Doctype:
		b.errorf("doctype-in-head")
		return true
	case token.StartTag:
		switch t.Name {
		case "html":
			return inBodyIM(b, t)
		case "base", "basefont", "bgsound", "link", "meta":
			b.insertHTMLElement(t)
			b.oe.pop()
			return true
		case "title":
			b.insertHTMLElement(t)
			b.tok.SwitchToRCDATA()
			b.originalIM = b.im
			b.im = textIM
			return true
		case "noscript":
			if b.scriptingFlag {
				b.insertHTMLElement(t)
				b.tok.SwitchToRawtext()
				b.originalIM = b.im
				b.im = textIM
				return true
			}
			b.insertHTMLElement(t)
			b.im = inHeadNoscriptIM
			return true
		case "noframes", "style":
			b.insertHTMLElement(t)
			b.tok.SwitchToRawtext()
			b.originalIM = b.im
			b.im = textIM
			return true
		case "script":
			parent, before := b.appropriatePlaceForInsertion(nil)
			n := node.NewElement("script", t.Attr)
			parent.InsertBefore(n, before)
			b.oe.push(n)
			b.tok.SwitchToScriptData()
			b.originalIM = b.im
			b.im = textIM
			return true
		case "template":
			n := b.insertHTMLElement(t)
			n.TemplateContent = node.NewDocumentFragment()
			b.pushScopeMarker()
			b.framesetOK = false
			b.im = inTemplateIM
			b.templateIM = append(b.templateIM, inTemplateIM)
			return true
		case "head":
			b.errorf("unexpected-start-tag-head")
			return true
		}
		return popHeadAndReprocess(b, t)
	case token.EndTag:
		switch t.Name {
		case "head":
			b.oe.pop()
			b.im = afterHeadIM
			return true
		case "body", "html", "br":
			return popHeadAndReprocess(b, t)
		case "template":
			if !b.oe.contains("template") {
				b.errorf("unexpected-end-tag-template")
				return true
			}
			b.generateImpliedEndTagsThoroughly()
			if top := b.oe.top(); top != nil && !top.IsElement("template") {
				b.errorf("unexpected-end-tag-template")
			}
			b.oe.popUntil("template")
			b.clearActiveFormattingToMarker()
			if len(b.templateIM) > 0 {
				b.templateIM = b.templateIM[:len(b.templateIM)-1]
			}
			b.resetInsertionMode()
			return true
		default:
			b.errorf("unexpected-end-tag-in-head")
			return true
		}
	default:
		return popHeadAndReprocess(b, t)
	}
}

func popHeadAndReprocess(b *Builder, t token.Token) bool {
	b.oe.pop()
	b.im = afterHeadIM
	return false
}

func inHeadNoscriptIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Doctype:
		b.errorf("doctype-in-head-noscript")
		return true
	case token.StartTag:
		switch t.Name {
		case "html":
			return inBodyIM(b, t)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return inHeadIM(b, t)
		case "head", "noscript":
			b.errorf("unexpected-start-tag-in-head-noscript")
			return true
		}
	case token.EndTag:
		switch t.Name {
		case "noscript":
			b.oe.pop()
			b.im = inHeadIM
			return true
		case "br":
			return popNoscriptAndReprocess(b, t)
		default:
			b.errorf("unexpected-end-tag-in-head-noscript")
			return true
		}
	case token.Text:
		if isAllWhitespace(t.Data) {
			return inHeadIM(b, t)
		}
	case token.Comment:
		return inHeadIM(b, t)
	}
	return popNoscriptAndReprocess(b, t)
}

func popNoscriptAndReprocess(b *Builder, t token.Token) bool {
	b.errorf("unexpected-token-in-head-noscript")
	b.oe.pop()
	b.im = inHeadIM
	return false
}

func afterHeadIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		ws, rest := splitLeadingWhitespace(t.Data)
		if ws != "" {
			b.insertText(ws)
		}
		if rest == "" {
			return true
		}
		t.Data = rest
		return insertBodyAndReprocess(b, t)
	case token.Comment:
		b.insertComment(t.Data, nil)
		return true
	case token.Doctype:
		b.errorf("doctype-after-head")
		return true
	case token.StartTag:
		switch t.Name {
		case "html":
			return inBodyIM(b, t)
		case "body":
			b.insertHTMLElement(t)
			b.framesetOK = false
			b.im = inBodyIM
			return true
		case "frameset":
			b.insertHTMLElement(t)
			b.im = inFramesetIM
			return true
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
			"style", "template", "title":
			b.errorf("unexpected-start-tag-after-head")
			b.oe.push(b.head)
			handled := inHeadIM(b, t)
			b.oe.removeOE(b.head)
			return handled
		case "head":
			b.errorf("unexpected-start-tag-head-after-head")
			return true
		}
		return insertBodyAndReprocess(b, t)
	case token.EndTag:
		switch t.Name {
		case "body", "html", "br":
			return insertBodyAndReprocess(b, t)
		case "template":
			return inHeadIM(b, t)
		default:
			b.errorf("unexpected-end-tag-after-head")
			return true
		}
	default:
		return insertBodyAndReprocess(b, t)
	}
}

func insertBodyAndReprocess(b *Builder, t token.Token) bool {
	body := node.NewElement("body", nil)
	b.insertElementNode(body)
	b.im = inBodyIM
	return false
}

// removeOE removes n from the stack of open elements wherever it is,
// used by afterHeadIM's "insert an HTML element for a 'head' token that
// isn't a start tag" workaround for definitions like <title> appearing
// after </head>.
func (s *elementStack) removeOE(n *node.Node) {
	idx := s.index(n)
	if idx < 0 {
		return
	}
	*s = append((*s)[:idx], (*s)[idx+1:]...)
}

func textIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		b.insertText(t.Data)
		return true
	case token.EOF:
		b.errorf("eof-in-text-mode")
		b.oe.pop()
		b.im = b.originalIM
		return false
	case token.EndTag:
		if t.Name == "script" {
			b.oe.pop()
			b.im = b.originalIM
			return true
		}
		b.oe.pop()
		b.im = b.originalIM
		return true
	}
	return true
}
