package tree

import "github.com/loxia-dev/html5/token"

func afterBodyIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		if isAllWhitespace(t.Data) {
			return inBodyIM(b, t)
		}
	case token.Comment:
		b.insertComment(t.Data, b.oe[0])
		return true
	case token.Doctype:
		b.errorf("unexpected-doctype-after-body")
		return true
	case token.StartTag:
		if t.Name == "html" {
			return inBodyIM(b, t)
		}
	case token.EndTag:
		if t.Name == "html" {
			if b.isFragment {
				b.errorf("unexpected-end-tag-html-in-fragment")
				return true
			}
			b.im = afterAfterBodyIM
			return true
		}
	case token.EOF:
		return true
	}
	b.errorf("unexpected-token-after-body")
	b.im = inBodyIM
	return false
}

func inFramesetIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		ws := onlyWhitespace(t.Data)
		if ws != "" {
			b.insertText(ws)
		}
		return true
	case token.Comment:
		b.insertComment(t.Data, nil)
		return true
	case token.Doctype:
		b.errorf("unexpected-doctype-in-frameset")
		return true
	case token.StartTag:
		switch t.Name {
		case "html":
			return inBodyIM(b, t)
		case "frameset":
			b.insertHTMLElement(t)
			return true
		case "frame":
			b.insertHTMLElement(t)
			b.oe.pop()
			return true
		case "noframes":
			return inHeadIM(b, t)
		default:
			b.errorf("unexpected-start-tag-in-frameset")
			return true
		}
	case token.EndTag:
		if t.Name == "frameset" {
			if len(b.oe) == 1 && b.oe[0].IsElement("html") {
				b.errorf("unexpected-end-tag-frameset")
				return true
			}
			b.oe.pop()
			if !b.isFragment && !b.oe.top().IsElement("frameset") {
				b.im = afterFramesetIM
			}
			return true
		}
		b.errorf("unexpected-end-tag-in-frameset")
		return true
	case token.EOF:
		return true
	}
	return true
}

// onlyWhitespace returns just the ASCII whitespace characters of s, per
// the frameset insertion modes' rule of inserting whitespace characters
// from a text token and discarding the rest as a parse error.
func onlyWhitespace(s string) string {
	var sb []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\f', '\r':
			sb = append(sb, s[i])
		}
	}
	return string(sb)
}

func afterFramesetIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		ws := onlyWhitespace(t.Data)
		if ws != "" {
			b.insertText(ws)
		}
		return true
	case token.Comment:
		b.insertComment(t.Data, nil)
		return true
	case token.Doctype:
		b.errorf("unexpected-doctype-after-frameset")
		return true
	case token.StartTag:
		switch t.Name {
		case "html":
			return inBodyIM(b, t)
		case "noframes":
			return inHeadIM(b, t)
		default:
			b.errorf("unexpected-start-tag-after-frameset")
			return true
		}
	case token.EndTag:
		if t.Name == "html" {
			b.im = afterAfterFramesetIM
			return true
		}
		b.errorf("unexpected-end-tag-after-frameset")
		return true
	case token.EOF:
		return true
	}
	return true
}

func afterAfterBodyIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Comment:
		b.insertComment(t.Data, b.Document)
		return true
	case token.Doctype:
		return inBodyIM(b, t)
	case token.Text:
		if isAllWhitespace(t.Data) {
			return inBodyIM(b, t)
		}
	case token.StartTag:
		if t.Name == "html" {
			return inBodyIM(b, t)
		}
	case token.EOF:
		return true
	}
	b.errorf("unexpected-token-after-after-body")
	b.im = inBodyIM
	return false
}

func afterAfterFramesetIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Comment:
		b.insertComment(t.Data, b.Document)
		return true
	case token.Doctype:
		return inBodyIM(b, t)
	case token.Text:
		ws := onlyWhitespace(t.Data)
		if ws != "" {
			return inBodyIM(b, t)
		}
		return true
	case token.StartTag:
		switch t.Name {
		case "html":
			return inBodyIM(b, t)
		case "noframes":
			return inHeadIM(b, t)
		}
	case token.EOF:
		return true
	}
	b.errorf("unexpected-token-after-after-frameset")
	return true
}
