package tree

import "github.com/loxia-dev/html5/token"

func inTableIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		switch b.oe.top().Data {
		case "table", "tbody", "tfoot", "thead", "tr":
			b.pendingTableChars = nil
			b.pendingTableCharsNulls = false
			b.originalIM = b.im
			b.im = inTableTextIM
			return false
		}
	case token.Comment:
		b.insertComment(t.Data, nil)
		return true
	case token.Doctype:
		b.errorf("unexpected-doctype-in-table")
		return true
	case token.StartTag:
		switch t.Name {
		case "caption":
			b.clearStackBackToTableContext()
			b.pushScopeMarker()
			b.insertHTMLElement(t)
			b.im = inCaptionIM
			return true
		case "colgroup":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(t)
			b.im = inColumnGroupIM
			return true
		case "col":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(token.Token{Type: token.StartTag, Name: "colgroup"})
			b.im = inColumnGroupIM
			return false
		case "tbody", "tfoot", "thead":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(t)
			b.im = inTableBodyIM
			return true
		case "td", "th", "tr":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(token.Token{Type: token.StartTag, Name: "tbody"})
			b.im = inTableBodyIM
			return false
		case "table":
			b.errorf("unexpected-start-tag-table-in-table")
			if !b.oe.elementInScope(tableScope, "table") {
				return true
			}
			b.oe.popUntil("table")
			b.resetInsertionMode()
			return false
		case "style", "script", "template":
			return inHeadIM(b, t)
		case "input":
			if typ, ok := lastInsertedAttr(t, "type"); ok && equalFoldASCII(typ, "hidden") {
				b.errorf("unexpected-hidden-input-in-table")
				b.insertHTMLElement(t)
				b.oe.pop()
				return true
			}
		case "form":
			b.errorf("unexpected-form-in-table")
			if b.form != nil || b.oe.contains("template") {
				return true
			}
			n := b.insertHTMLElement(t)
			b.form = n
			b.oe.pop()
			return true
		}
	case token.EndTag:
		switch t.Name {
		case "table":
			if !b.oe.elementInScope(tableScope, "table") {
				b.errorf("unexpected-end-tag-table")
				return true
			}
			b.oe.popUntil("table")
			b.resetInsertionMode()
			return true
		case "body", "caption", "col", "colgroup", "html", "tbody", "td", "tfoot",
			"th", "thead", "tr":
			b.errorf("unexpected-end-tag-in-table")
			return true
		case "template":
			return inHeadIM(b, t)
		}
	case token.EOF:
		return inBodyIM(b, t)
	}
	b.errorf("foster-parenting-in-table")
	b.fosterParenting = true
	handled := inBodyIM(b, t)
	b.fosterParenting = false
	return handled
}

func (b *Builder) clearStackBackToTableContext() {
	for {
		top := b.oe.top()
		if top == nil || top.Data == "table" || top.Data == "template" || top.Data == "html" {
			return
		}
		b.oe.pop()
	}
}

func (b *Builder) clearStackBackToTableBodyContext() {
	for {
		top := b.oe.top()
		if top == nil {
			return
		}
		switch top.Data {
		case "tbody", "tfoot", "thead", "template", "html":
			return
		}
		b.oe.pop()
	}
}

func (b *Builder) clearStackBackToTableRowContext() {
	for {
		top := b.oe.top()
		if top == nil || top.Data == "tr" || top.Data == "template" || top.Data == "html" {
			return
		}
		b.oe.pop()
	}
}

func inTableTextIM(b *Builder, t token.Token) bool {
	if t.Type == token.Text {
		if containsNull(t.Data) {
			b.errorf("unexpected-null-character")
			t.Data = stripNull(t.Data)
		}
		b.pendingTableChars = append(b.pendingTableChars, t.Data)
		return true
	}
	allWS := true
	for _, s := range b.pendingTableChars {
		if !isAllWhitespace(s) {
			allWS = false
			break
		}
	}
	if !allWS {
		b.errorf("unexpected-character-in-table")
		b.fosterParenting = true
		for _, s := range b.pendingTableChars {
			b.reconstructActiveFormattingElements()
			b.insertText(s)
		}
		b.fosterParenting = false
	} else {
		for _, s := range b.pendingTableChars {
			b.insertText(s)
		}
	}
	b.im = b.originalIM
	return false
}

func inCaptionIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.EndTag:
		switch t.Name {
		case "caption":
			return closeCaption(b)
		case "table":
			if !closeCaption(b) {
				return true
			}
			return false
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			b.errorf("unexpected-end-tag-in-caption")
			return true
		}
	case token.StartTag:
		switch t.Name {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !closeCaption(b) {
				return true
			}
			return false
		}
	}
	return inBodyIM(b, t)
}

func closeCaption(b *Builder) bool {
	if !b.oe.elementInScope(tableScope, "caption") {
		return false
	}
	b.generateImpliedEndTags("")
	if top := b.oe.top(); top != nil && !top.IsElement("caption") {
		b.errorf("unexpected-implied-end-tag-caption")
	}
	b.oe.popUntil("caption")
	b.clearActiveFormattingToMarker()
	b.im = inTableIM
	return true
}

func inColumnGroupIM(b *Builder, t token.Token) bool {
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
	case token.Comment:
		b.insertComment(t.Data, nil)
		return true
	case token.Doctype:
		b.errorf("unexpected-doctype-in-colgroup")
		return true
	case token.StartTag:
		switch t.Name {
		case "html":
			return inBodyIM(b, t)
		case "col":
			b.insertHTMLElement(t)
			b.oe.pop()
			return true
		case "template":
			return inHeadIM(b, t)
		}
	case token.EndTag:
		switch t.Name {
		case "colgroup":
			if !b.oe.top().IsElement("colgroup") {
				b.errorf("unexpected-end-tag-colgroup")
				return true
			}
			b.oe.pop()
			b.im = inTableIM
			return true
		case "col":
			b.errorf("unexpected-end-tag-col")
			return true
		case "template":
			return inHeadIM(b, t)
		}
	case token.EOF:
		return inBodyIM(b, t)
	}
	if !b.oe.top().IsElement("colgroup") {
		b.errorf("unexpected-token-in-colgroup")
		return true
	}
	b.oe.pop()
	b.im = inTableIM
	return false
}

func inTableBodyIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.StartTag:
		switch t.Name {
		case "tr":
			b.clearStackBackToTableBodyContext()
			b.insertHTMLElement(t)
			b.im = inRowIM
			return true
		case "th", "td":
			b.errorf("unexpected-cell-in-table-body")
			b.clearStackBackToTableBodyContext()
			b.insertHTMLElement(token.Token{Type: token.StartTag, Name: "tr"})
			b.im = inRowIM
			return false
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !b.oe.elementInScope(tableScope, "tbody", "thead", "tfoot") {
				return true
			}
			b.clearStackBackToTableBodyContext()
			b.oe.pop()
			b.im = inTableIM
			return false
		}
	case token.EndTag:
		switch t.Name {
		case "tbody", "tfoot", "thead":
			if !b.oe.elementInScope(tableScope, t.Name) {
				b.errorf("unexpected-end-tag")
				return true
			}
			b.clearStackBackToTableBodyContext()
			b.oe.pop()
			b.im = inTableIM
			return true
		case "table":
			if !b.oe.elementInScope(tableScope, "tbody", "thead", "tfoot") {
				return true
			}
			b.clearStackBackToTableBodyContext()
			b.oe.pop()
			b.im = inTableIM
			return false
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			b.errorf("unexpected-end-tag-in-table-body")
			return true
		}
	}
	return inTableIM(b, t)
}

func inRowIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.StartTag:
		switch t.Name {
		case "th", "td":
			b.clearStackBackToTableRowContext()
			b.insertHTMLElement(t)
			b.im = inCellIM
			b.pushScopeMarker()
			return true
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !b.oe.elementInScope(tableScope, "tr") {
				return true
			}
			b.clearStackBackToTableRowContext()
			b.oe.pop()
			b.im = inTableBodyIM
			return false
		}
	case token.EndTag:
		switch t.Name {
		case "tr":
			if !b.oe.elementInScope(tableScope, "tr") {
				b.errorf("unexpected-end-tag-tr")
				return true
			}
			b.clearStackBackToTableRowContext()
			b.oe.pop()
			b.im = inTableBodyIM
			return true
		case "table":
			if !b.oe.elementInScope(tableScope, "tr") {
				return true
			}
			b.clearStackBackToTableRowContext()
			b.oe.pop()
			b.im = inTableBodyIM
			return false
		case "tbody", "tfoot", "thead":
			if !b.oe.elementInScope(tableScope, t.Name) || !b.oe.elementInScope(tableScope, "tr") {
				return true
			}
			b.clearStackBackToTableRowContext()
			b.oe.pop()
			b.im = inTableBodyIM
			return false
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			b.errorf("unexpected-end-tag-in-row")
			return true
		}
	}
	return inTableIM(b, t)
}

func inCellIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.StartTag:
		switch t.Name {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !b.oe.elementInScope(defaultScope, "td") && !b.oe.elementInScope(defaultScope, "th") {
				return true
			}
			closeCell(b)
			return false
		}
	case token.EndTag:
		switch t.Name {
		case "td", "th":
			if !b.oe.elementInScope(defaultScope, t.Name) {
				b.errorf("unexpected-end-tag-cell")
				return true
			}
			b.generateImpliedEndTags("")
			if top := b.oe.top(); top != nil && !top.IsElement(t.Name) {
				b.errorf("unexpected-implied-end-tag-cell")
			}
			b.oe.popUntil(t.Name)
			b.clearActiveFormattingToMarker()
			b.im = inRowIM
			return true
		case "body", "caption", "col", "colgroup", "html":
			b.errorf("unexpected-end-tag-in-cell")
			return true
		case "table", "tbody", "tfoot", "thead", "tr":
			if !b.oe.elementInScope(tableScope, t.Name) {
				return true
			}
			closeCell(b)
			return false
		}
	}
	return inBodyIM(b, t)
}

func closeCell(b *Builder) {
	var tag string
	if b.oe.elementInScope(defaultScope, "td") {
		tag = "td"
	} else {
		tag = "th"
	}
	b.generateImpliedEndTags("")
	b.oe.popUntil(tag)
	b.clearActiveFormattingToMarker()
	b.im = inRowIM
}
