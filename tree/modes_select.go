package tree

import "github.com/loxia-dev/html5/token"

func inSelectIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		if containsNull(t.Data) {
			b.errorf("unexpected-null-character")
			t.Data = stripNull(t.Data)
		}
		b.insertText(t.Data)
		return true
	case token.Comment:
		b.insertComment(t.Data, nil)
		return true
	case token.Doctype:
		b.errorf("unexpected-doctype-in-select")
		return true
	case token.StartTag:
		switch t.Name {
		case "html":
			return inBodyIM(b, t)
		case "option":
			if b.oe.top().IsElement("option") {
				b.oe.pop()
			}
			b.insertHTMLElement(t)
			return true
		case "optgroup":
			if b.oe.top().IsElement("option") {
				b.oe.pop()
			}
			if b.oe.top().IsElement("optgroup") {
				b.oe.pop()
			}
			b.insertHTMLElement(t)
			return true
		case "select":
			b.errorf("unexpected-start-tag-select-in-select")
			if !b.oe.elementInScope(selectScope, "select") {
				return true
			}
			b.oe.popUntil("select")
			b.resetInsertionMode()
			return true
		case "input", "keygen", "textarea":
			b.errorf("unexpected-start-tag-in-select")
			if !b.oe.elementInScope(selectScope, "select") {
				return true
			}
			b.oe.popUntil("select")
			b.resetInsertionMode()
			return false
		case "script", "template":
			return inHeadIM(b, t)
		default:
			b.errorf("unexpected-start-tag-in-select")
			return true
		}
	case token.EndTag:
		switch t.Name {
		case "optgroup":
			if b.oe.top().IsElement("option") && len(b.oe) >= 2 && b.oe[len(b.oe)-2].IsElement("optgroup") {
				b.oe.pop()
			}
			if b.oe.top().IsElement("optgroup") {
				b.oe.pop()
			} else {
				b.errorf("unexpected-end-tag-optgroup")
			}
			return true
		case "option":
			if b.oe.top().IsElement("option") {
				b.oe.pop()
			} else {
				b.errorf("unexpected-end-tag-option")
			}
			return true
		case "select":
			if !b.oe.elementInScope(selectScope, "select") {
				b.errorf("unexpected-end-tag-select")
				return true
			}
			b.oe.popUntil("select")
			b.resetInsertionMode()
			return true
		case "template":
			return inHeadIM(b, t)
		default:
			b.errorf("unexpected-end-tag-in-select")
			return true
		}
	case token.EOF:
		return inBodyIM(b, t)
	}
	return true
}

func inSelectInTableIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.StartTag:
		switch t.Name {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			b.errorf("unexpected-start-tag-in-select-in-table")
			b.oe.popUntil("select")
			b.resetInsertionMode()
			return false
		}
	case token.EndTag:
		switch t.Name {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			b.errorf("unexpected-end-tag-in-select-in-table")
			if !b.oe.elementInScope(tableScope, t.Name) {
				return true
			}
			b.oe.popUntil("select")
			b.resetInsertionMode()
			return false
		}
	}
	return inSelectIM(b, t)
}

func inTemplateIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text, token.Comment, token.Doctype:
		return inBodyIM(b, t)
	case token.StartTag:
		switch t.Name {
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
			"style", "template", "title":
			return inHeadIM(b, t)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			b.templateIM[len(b.templateIM)-1] = inTableIM
			b.im = inTableIM
			return false
		case "col":
			b.templateIM[len(b.templateIM)-1] = inColumnGroupIM
			b.im = inColumnGroupIM
			return false
		case "tr":
			b.templateIM[len(b.templateIM)-1] = inTableBodyIM
			b.im = inTableBodyIM
			return false
		case "td", "th":
			b.templateIM[len(b.templateIM)-1] = inRowIM
			b.im = inRowIM
			return false
		default:
			b.templateIM[len(b.templateIM)-1] = inBodyIM
			b.im = inBodyIM
			return false
		}
	case token.EndTag:
		if t.Name == "template" {
			return inHeadIM(b, t)
		}
		b.errorf("unexpected-end-tag-in-template")
		return true
	case token.EOF:
		if !b.oe.contains("template") {
			return true
		}
		b.errorf("eof-in-template")
		b.oe.popUntil("template")
		b.clearActiveFormattingToMarker()
		if len(b.templateIM) > 0 {
			b.templateIM = b.templateIM[:len(b.templateIM)-1]
		}
		b.resetInsertionMode()
		return false
	}
	return true
}
