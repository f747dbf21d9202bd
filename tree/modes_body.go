package tree

import (
	"github.com/loxia-dev/html5/atom"
	"github.com/loxia-dev/html5/node"
	"github.com/loxia-dev/html5/token"
)

// isSpecial reports the "special" category the spec uses to decide where
// implicit </p> closing and table foster-parenting apply. Every name in
// the category is one of the interned atoms; unrecognized names (never
// special) don't round-trip through the string table at all.
func isSpecial(tag string) bool {
	return atom.Lookup(tag).IsSpecial()
}

var formattingTags = map[string]bool{
	"a": true, "b": true, "big": true, "code": true, "em": true, "font": true,
	"i": true, "nobr": true, "s": true, "small": true, "strike": true, "strong": true,
	"tt": true, "u": true,
}

var headingTags = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true}

func (b *Builder) closePElementIfInButtonScope() {
	if b.oe.elementInScope(buttonScope, "p") {
		b.closePElement()
	}
}

func (b *Builder) closePElement() {
	b.generateImpliedEndTags("p")
	if top := b.oe.top(); top != nil && !top.IsElement("p") {
		b.errorf("unexpected-implied-end-tag-p")
	}
	b.oe.popUntil("p")
}

func inBodyIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		if containsNull(t.Data) {
			t.Data = stripNull(t.Data)
			b.errorf("unexpected-null-character")
		}
		if t.Data == "" {
			return true
		}
		b.reconstructActiveFormattingElements()
		b.insertText(t.Data)
		if !isAllWhitespace(t.Data) {
			b.framesetOK = false
		}
		return true
	case token.Comment:
		b.insertComment(t.Data, nil)
		return true
	case token.Doctype:
		b.errorf("unexpected-doctype")
		return true
	case token.StartTag:
		return inBodyStartTag(b, t)
	case token.EndTag:
		return inBodyEndTag(b, t)
	case token.EOF:
		if len(b.templateIM) > 0 {
			return inTemplateIM(b, t)
		}
		return true
	}
	return true
}

func containsNull(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return true
		}
	}
	return false
}

func stripNull(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != 0 {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func inBodyStartTag(b *Builder, t token.Token) bool {
	switch t.Name {
	case "html":
		b.errorf("unexpected-start-tag-html")
		if len(b.oe) > 0 {
			root := b.oe[0]
			for _, a := range t.Attr {
				root.SetAttribute(a.Name, a.Val)
			}
		}
		return true
	case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
		"style", "template", "title":
		return inHeadIM(b, t)
	case "body":
		b.errorf("unexpected-start-tag-body")
		if len(b.oe) >= 2 && b.oe[1].IsElement("body") {
			b.framesetOK = false
			for _, a := range t.Attr {
				b.oe[1].SetAttribute(a.Name, a.Val)
			}
		}
		return true
	case "frameset":
		b.errorf("unexpected-start-tag-frameset")
		if !b.framesetOK || len(b.oe) < 2 || !b.oe[1].IsElement("body") {
			return true
		}
		body := b.oe[1]
		if body.Parent != nil {
			body.Parent.RemoveChild(body)
		}
		b.oe = b.oe[:1]
		b.insertHTMLElement(t)
		b.im = inFramesetIM
		return true
	case "address", "article", "aside", "blockquote", "center", "details", "dialog",
		"dir", "div", "dl", "fieldset", "figcaption", "figure", "footer", "header",
		"hgroup", "main", "menu", "nav", "ol", "p", "section", "summary", "ul":
		b.closePElementIfInButtonScope()
		b.insertHTMLElement(t)
		return true
	case "h1", "h2", "h3", "h4", "h5", "h6":
		b.closePElementIfInButtonScope()
		if top := b.oe.top(); top != nil && headingTags[top.Data] {
			b.errorf("unexpected-start-tag-heading")
			b.oe.pop()
		}
		b.insertHTMLElement(t)
		return true
	case "pre", "listing":
		b.closePElementIfInButtonScope()
		b.insertHTMLElement(t)
		b.framesetOK = false
		return true
	case "form":
		if b.form != nil && !b.oe.contains("template") {
			b.errorf("unexpected-start-tag-form")
			return true
		}
		b.closePElementIfInButtonScope()
		n := b.insertHTMLElement(t)
		if !b.oe.contains("template") {
			b.form = n
		}
		return true
	case "li":
		b.framesetOK = false
		for i := len(b.oe) - 1; i >= 0; i-- {
			n := b.oe[i]
			if n.IsElement("li") {
				b.generateImpliedEndTags("li")
				if top := b.oe.top(); top != nil && !top.IsElement("li") {
					b.errorf("unexpected-implied-end-tag-li")
				}
				b.oe.popUntil("li")
				break
			}
			if n.Namespace == node.HTML && isSpecial(n.Data) &&
				n.Data != "address" && n.Data != "div" && n.Data != "p" {
				break
			}
		}
		b.closePElementIfInButtonScope()
		b.insertHTMLElement(t)
		return true
	case "dd", "dt":
		b.framesetOK = false
		for i := len(b.oe) - 1; i >= 0; i-- {
			n := b.oe[i]
			if n.Data == "dd" || n.Data == "dt" {
				b.generateImpliedEndTags(n.Data)
				if top := b.oe.top(); top != nil && top.Data != n.Data {
					b.errorf("unexpected-implied-end-tag")
				}
				b.oe.popUntil(n.Data)
				break
			}
			if n.Namespace == node.HTML && isSpecial(n.Data) &&
				n.Data != "address" && n.Data != "div" && n.Data != "p" {
				break
			}
		}
		b.closePElementIfInButtonScope()
		b.insertHTMLElement(t)
		return true
	case "plaintext":
		b.closePElementIfInButtonScope()
		b.insertHTMLElement(t)
		b.tok.SwitchToPlaintext()
		return true
	case "button":
		if b.oe.elementInScope(defaultScope, "button") {
			b.errorf("unexpected-start-tag-button")
			b.generateImpliedEndTags("")
			b.oe.popUntil("button")
		}
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(t)
		b.framesetOK = false
		return true
	case "a":
		if idx := b.afeIndexByTag("a"); idx >= 0 {
			b.errorf("unexpected-start-tag-a-in-a-scope")
			n := b.afe[idx].node
			adoptionAgency(b, "a")
			b.removeFromActiveFormatting(n)
			b.oe.removeOE(n)
		}
		b.reconstructActiveFormattingElements()
		n := b.insertHTMLElement(t)
		b.addFormattingElement(n, snapshotOf(t, node.HTML))
		return true
	case "b", "big", "code", "em", "font", "i", "s", "small", "strike", "strong", "tt", "u":
		b.reconstructActiveFormattingElements()
		n := b.insertHTMLElement(t)
		b.addFormattingElement(n, snapshotOf(t, node.HTML))
		return true
	case "nobr":
		b.reconstructActiveFormattingElements()
		if b.oe.elementInScope(defaultScope, "nobr") {
			b.errorf("unexpected-start-tag-nobr-in-scope")
			adoptionAgency(b, "nobr")
			b.reconstructActiveFormattingElements()
		}
		n := b.insertHTMLElement(t)
		b.addFormattingElement(n, snapshotOf(t, node.HTML))
		return true
	case "applet", "marquee", "object":
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(t)
		b.pushScopeMarker()
		b.framesetOK = false
		return true
	case "table":
		if b.quirks != node.Quirks {
			b.closePElementIfInButtonScope()
		}
		b.insertHTMLElement(t)
		b.framesetOK = false
		b.im = inTableIM
		return true
	case "area", "br", "embed", "img", "keygen", "wbr":
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(t)
		b.oe.pop()
		b.framesetOK = false
		return true
	case "input":
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(t)
		b.oe.pop()
		if typ, _ := lastInsertedAttr(t, "type"); !equalFoldASCII(typ, "hidden") {
			b.framesetOK = false
		}
		return true
	case "param", "source", "track":
		b.insertHTMLElement(t)
		b.oe.pop()
		return true
	case "hr":
		b.closePElementIfInButtonScope()
		b.insertHTMLElement(t)
		b.oe.pop()
		b.framesetOK = false
		return true
	case "image":
		b.errorf("unexpected-start-tag-image")
		t.Name = "img"
		return inBodyStartTag(b, t)
	case "textarea":
		b.insertHTMLElement(t)
		b.tok.SwitchToRCDATA()
		b.originalIM = b.im
		b.framesetOK = false
		b.im = textIM
		return true
	case "xmp":
		b.closePElementIfInButtonScope()
		b.reconstructActiveFormattingElements()
		b.framesetOK = false
		b.insertHTMLElement(t)
		b.tok.SwitchToRawtext()
		b.originalIM = b.im
		b.im = textIM
		return true
	case "iframe":
		b.framesetOK = false
		b.insertHTMLElement(t)
		b.tok.SwitchToRawtext()
		b.originalIM = b.im
		b.im = textIM
		return true
	case "noembed":
		b.insertHTMLElement(t)
		b.tok.SwitchToRawtext()
		b.originalIM = b.im
		b.im = textIM
		return true
	case "select":
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(t)
		b.framesetOK = false
		switch b.im {
		case inTableIM, inCaptionIM, inTableBodyIM, inRowIM, inCellIM:
			b.im = inSelectInTableIM
		default:
			b.im = inSelectIM
		}
		return true
	case "optgroup", "option":
		if b.oe.top().IsElement("option") {
			b.oe.pop()
		}
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(t)
		return true
	case "rb", "rtc":
		if b.oe.elementInScope(defaultScope, "ruby") {
			b.generateImpliedEndTags("")
		}
		b.insertHTMLElement(t)
		return true
	case "rp", "rt":
		if b.oe.elementInScope(defaultScope, "ruby") {
			b.generateImpliedEndTags("rtc")
		}
		b.insertHTMLElement(t)
		return true
	case "math":
		b.reconstructActiveFormattingElements()
		adjustForeignAttributes(t.Attr)
		b.insertForeignElement(t, node.MathML)
		if t.SelfClosing {
			b.oe.pop()
		}
		return true
	case "svg":
		b.reconstructActiveFormattingElements()
		adjustSVGTagName(&t)
		adjustSVGAttributes(t.Attr)
		adjustForeignAttributes(t.Attr)
		b.insertForeignElement(t, node.SVG)
		if t.SelfClosing {
			b.oe.pop()
		}
		return true
	case "caption", "col", "colgroup", "frame", "head", "tbody", "td", "tfoot", "th",
		"thead", "tr":
		b.errorf("unexpected-start-tag-in-body")
		return true
	default:
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(t)
		return true
	}
}

func snapshotOf(t token.Token, ns node.Namespace) startTagSnapshot {
	return startTagSnapshot{name: t.Name, attr: append([]node.Attribute(nil), t.Attr...), ns: ns}
}

func (b *Builder) afeIndexByTag(tag string) int {
	for i := len(b.afe) - 1; i >= 0; i-- {
		if b.afe[i].node == nil {
			return -1
		}
		if b.afe[i].node.Data == tag {
			return i
		}
	}
	return -1
}

func lastInsertedAttr(t token.Token, name string) (string, bool) {
	for _, a := range t.Attr {
		if a.Name == name {
			return a.Val, true
		}
	}
	return "", false
}

func equalFoldASCII(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if toLowerASCII(s[i]) != toLowerASCII(t[i]) {
			return false
		}
	}
	return true
}

func toLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 0x20
	}
	return b
}

func inBodyEndTag(b *Builder, t token.Token) bool {
	switch t.Name {
	case "template":
		return inHeadIM(b, t)
	case "body":
		if !b.oe.elementInScope(defaultScope, "body") {
			b.errorf("unexpected-end-tag-body")
			return true
		}
		checkAllClosedInBody(b)
		b.im = afterBodyIM
		return true
	case "html":
		if !b.oe.elementInScope(defaultScope, "body") {
			b.errorf("unexpected-end-tag-html")
			return true
		}
		checkAllClosedInBody(b)
		b.im = afterBodyIM
		return false
	case "address", "article", "aside", "blockquote", "button", "center", "details",
		"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure", "footer",
		"header", "hgroup", "listing", "main", "menu", "nav", "ol", "pre", "section",
		"summary", "ul":
		if !b.oe.elementInScope(defaultScope, t.Name) {
			b.errorf("unexpected-end-tag")
			return true
		}
		b.generateImpliedEndTags("")
		if top := b.oe.top(); top != nil && !top.IsElement(t.Name) {
			b.errorf("unexpected-implied-end-tag")
		}
		b.oe.popUntil(t.Name)
		return true
	case "form":
		if b.oe.contains("template") {
			if !b.oe.elementInScope(defaultScope, "form") {
				b.errorf("unexpected-end-tag-form")
				return true
			}
			b.generateImpliedEndTags("")
			if top := b.oe.top(); top != nil && !top.IsElement("form") {
				b.errorf("unexpected-implied-end-tag-form")
			}
			b.oe.popUntil("form")
			return true
		}
		formNode := b.form
		b.form = nil
		if formNode == nil || !b.oe.elementInScope(defaultScope, formNode.Data) || b.oe.index(formNode) == -1 {
			b.errorf("unexpected-end-tag-form")
			return true
		}
		b.generateImpliedEndTags("")
		if top := b.oe.top(); top != nil && top != formNode {
			b.errorf("unexpected-implied-end-tag-form")
		}
		b.oe.removeOE(formNode)
		return true
	case "p":
		if !b.oe.elementInScope(buttonScope, "p") {
			b.errorf("unexpected-end-tag-p")
			b.insertHTMLElement(token.Token{Type: token.StartTag, Name: "p"})
		}
		b.closePElement()
		return true
	case "li":
		if !b.oe.elementInScope(listItemScope, "li") {
			b.errorf("unexpected-end-tag-li")
			return true
		}
		b.generateImpliedEndTags("li")
		if top := b.oe.top(); top != nil && !top.IsElement("li") {
			b.errorf("unexpected-implied-end-tag-li")
		}
		b.oe.popUntil("li")
		return true
	case "dd", "dt":
		if !b.oe.elementInScope(defaultScope, t.Name) {
			b.errorf("unexpected-end-tag")
			return true
		}
		b.generateImpliedEndTags(t.Name)
		if top := b.oe.top(); top != nil && !top.IsElement(t.Name) {
			b.errorf("unexpected-implied-end-tag")
		}
		b.oe.popUntil(t.Name)
		return true
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if !b.oe.elementInScope(defaultScope, "h1", "h2", "h3", "h4", "h5", "h6") {
			b.errorf("unexpected-end-tag-heading")
			return true
		}
		b.generateImpliedEndTags("")
		if top := b.oe.top(); top != nil && !headingTags[top.Data] {
			b.errorf("unexpected-implied-end-tag-heading")
		}
		b.oe.popUntil("h1", "h2", "h3", "h4", "h5", "h6")
		return true
	case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small", "strike",
		"strong", "tt", "u":
		adoptionAgency(b, t.Name)
		return true
	case "applet", "marquee", "object":
		if !b.oe.elementInScope(defaultScope, t.Name) {
			b.errorf("unexpected-end-tag")
			return true
		}
		b.generateImpliedEndTags("")
		if top := b.oe.top(); top != nil && !top.IsElement(t.Name) {
			b.errorf("unexpected-implied-end-tag")
		}
		b.oe.popUntil(t.Name)
		b.clearActiveFormattingToMarker()
		return true
	case "br":
		b.errorf("unexpected-end-tag-br")
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(token.Token{Type: token.StartTag, Name: "br"})
		b.oe.pop()
		b.framesetOK = false
		return true
	default:
		inBodyEndTagOther(b, t)
		return true
	}
}

func checkAllClosedInBody(b *Builder) {
	allowed := map[string]bool{
		"dd": true, "dt": true, "li": true, "optgroup": true, "option": true, "p": true,
		"rb": true, "rp": true, "rt": true, "rtc": true, "tbody": true, "td": true,
		"tfoot": true, "th": true, "thead": true, "tr": true, "body": true, "html": true,
	}
	for _, n := range b.oe {
		if !allowed[n.Data] {
			b.errorf("end-tag-body-not-all-closed")
			return
		}
	}
}

// inBodyEndTagOther implements "any other end tag": walk the stack from
// the top looking for a same-named element, closing everything above it
// once found, unless a "special" element is met first.
func inBodyEndTagOther(b *Builder, t token.Token) {
	for i := len(b.oe) - 1; i >= 0; i-- {
		n := b.oe[i]
		if n.Namespace == node.HTML && n.Data == t.Name {
			b.generateImpliedEndTags(t.Name)
			if top := b.oe.top(); top != nil && top != n {
				b.errorf("unexpected-implied-end-tag")
			}
			for len(b.oe) > i {
				b.oe.pop()
			}
			return
		}
		if n.Namespace == node.HTML && isSpecial(n.Data) {
			b.errorf("unexpected-end-tag")
			return
		}
	}
}
