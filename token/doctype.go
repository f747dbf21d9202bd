package token

import "github.com/loxia-dev/html5/node"

// doctypeState and its siblings implement the DOCTYPE-related states of
// the tokenizer, culminating in an emitted Doctype token carrying a
// *node.Doctype payload ready for node.DetectQuirksMode.

func (t *Tokenizer) resetDoctype() {
	t.doctype = node.Doctype{}
	t.doctypeHasPub = false
	t.doctypeHasSys = false
}

func doctypeState(t *Tokenizer) {
	t.resetDoctype()
	if t.eof() {
		t.errorf("eof-in-doctype")
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emit(Token{Type: EOF})
		return
	}
	if isWhitespace(t.peek()) {
		t.advance()
		t.state = beforeDoctypeNameState
		return
	}
	if t.peek() == '>' {
		t.state = beforeDoctypeNameState
		return
	}
	t.errorf("missing-whitespace-before-doctype-name")
	t.state = beforeDoctypeNameState
}

func beforeDoctypeNameState(t *Tokenizer) {
	for {
		if t.eof() {
			t.errorf("eof-in-doctype")
			t.doctype.ForceQuirks = true
			t.emitDoctype()
			t.emit(Token{Type: EOF})
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c):
			t.advance()
		case isUpper(c):
			t.advance()
			t.doctype.Name += string(toLower(c))
			t.state = doctypeNameState
			return
		case c == 0:
			t.advance()
			t.errorf("unexpected-null-character")
			t.doctype.Name += "�"
			t.state = doctypeNameState
			return
		case c == '>':
			t.errorf("missing-doctype-name")
			t.advance()
			t.doctype.ForceQuirks = true
			t.emitDoctype()
			t.state = dataState
			return
		default:
			t.advance()
			t.doctype.Name += string(c)
			t.state = doctypeNameState
			return
		}
	}
}

func doctypeNameState(t *Tokenizer) {
	for {
		if t.eof() {
			t.errorf("eof-in-doctype")
			t.doctype.ForceQuirks = true
			t.emitDoctype()
			t.emit(Token{Type: EOF})
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c):
			t.advance()
			t.state = afterDoctypeNameState
			return
		case c == '>':
			t.advance()
			t.emitDoctype()
			t.state = dataState
			return
		case c == 0:
			t.advance()
			t.errorf("unexpected-null-character")
			t.doctype.Name += "�"
		case isUpper(c):
			t.advance()
			t.doctype.Name += string(toLower(c))
		default:
			t.doctype.Name += string(t.advance())
		}
	}
}

func afterDoctypeNameState(t *Tokenizer) {
	for {
		if t.eof() {
			t.errorf("eof-in-doctype")
			t.doctype.ForceQuirks = true
			t.emitDoctype()
			t.emit(Token{Type: EOF})
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c):
			t.advance()
		case c == '>':
			t.advance()
			t.emitDoctype()
			t.state = dataState
			return
		case hasPrefixAtFold(t.buf, t.pos, "PUBLIC"):
			t.advanceN(6)
			t.state = afterDoctypePublicKeywordState
			return
		case hasPrefixAtFold(t.buf, t.pos, "SYSTEM"):
			t.advanceN(6)
			t.state = afterDoctypeSystemKeywordState
			return
		default:
			t.errorf("invalid-character-sequence-after-doctype-name")
			t.doctype.ForceQuirks = true
			t.comment.Reset()
			t.state = bogusDoctypeState
			return
		}
	}
}

func afterDoctypePublicKeywordState(t *Tokenizer) {
	if t.eof() {
		t.doctypeEOF()
		return
	}
	c := t.peek()
	switch {
	case isWhitespace(c):
		t.advance()
		t.state = beforeDoctypePublicIDState
	case c == '"' || c == '\'':
		t.errorf("missing-whitespace-after-doctype-public-keyword")
		t.quoted.Reset()
		t.attrQuote = c
		t.advance()
		t.doctypeHasPub = true
		t.state = doctypePublicIDQuotedState
	case c == '>':
		t.errorf("missing-doctype-public-identifier")
		t.advance()
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.state = dataState
	default:
		t.errorf("missing-quote-before-doctype-public-identifier")
		t.doctype.ForceQuirks = true
		t.comment.Reset()
		t.state = bogusDoctypeState
	}
}

func beforeDoctypePublicIDState(t *Tokenizer) {
	for {
		if t.eof() {
			t.doctypeEOF()
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c):
			t.advance()
		case c == '"' || c == '\'':
			t.quoted.Reset()
			t.attrQuote = c
			t.advance()
			t.doctypeHasPub = true
			t.state = doctypePublicIDQuotedState
			return
		case c == '>':
			t.errorf("missing-doctype-public-identifier")
			t.advance()
			t.doctype.ForceQuirks = true
			t.emitDoctype()
			t.state = dataState
			return
		default:
			t.errorf("missing-quote-before-doctype-public-identifier")
			t.doctype.ForceQuirks = true
			t.comment.Reset()
			t.state = bogusDoctypeState
			return
		}
	}
}

func doctypePublicIDQuotedState(t *Tokenizer) {
	for {
		if t.eof() {
			t.doctype.PublicID = t.quoted.String()
			t.doctypeEOF()
			return
		}
		c := t.peek()
		switch {
		case c == t.attrQuote:
			t.advance()
			t.doctype.PublicID = t.quoted.String()
			t.state = afterDoctypePublicIDState
			return
		case c == 0:
			t.advance()
			t.errorf("unexpected-null-character")
			t.quoted.WriteRune('�')
		case c == '>':
			t.errorf("abrupt-doctype-public-identifier")
			t.advance()
			t.doctype.PublicID = t.quoted.String()
			t.doctype.ForceQuirks = true
			t.emitDoctype()
			t.state = dataState
			return
		default:
			t.quoted.WriteByte(t.advance())
		}
	}
}

func afterDoctypePublicIDState(t *Tokenizer) {
	if t.eof() {
		t.doctypeEOF()
		return
	}
	c := t.peek()
	switch {
	case isWhitespace(c):
		t.advance()
		t.state = betweenDoctypePublicAndSystemState
	case c == '>':
		t.advance()
		t.emitDoctype()
		t.state = dataState
	case c == '"' || c == '\'':
		t.errorf("missing-whitespace-between-doctype-public-and-system-identifiers")
		t.quoted.Reset()
		t.attrQuote = c
		t.advance()
		t.doctypeHasSys = true
		t.state = doctypeSystemIDQuotedState
	default:
		t.errorf("missing-quote-before-doctype-system-identifier")
		t.doctype.ForceQuirks = true
		t.comment.Reset()
		t.state = bogusDoctypeState
	}
}

func betweenDoctypePublicAndSystemState(t *Tokenizer) {
	for {
		if t.eof() {
			t.doctypeEOF()
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c):
			t.advance()
		case c == '>':
			t.advance()
			t.emitDoctype()
			t.state = dataState
			return
		case c == '"' || c == '\'':
			t.quoted.Reset()
			t.attrQuote = c
			t.advance()
			t.doctypeHasSys = true
			t.state = doctypeSystemIDQuotedState
			return
		default:
			t.errorf("missing-quote-before-doctype-system-identifier")
			t.doctype.ForceQuirks = true
			t.comment.Reset()
			t.state = bogusDoctypeState
			return
		}
	}
}

func afterDoctypeSystemKeywordState(t *Tokenizer) {
	if t.eof() {
		t.doctypeEOF()
		return
	}
	c := t.peek()
	switch {
	case isWhitespace(c):
		t.advance()
		t.state = beforeDoctypeSystemIDState
	case c == '"' || c == '\'':
		t.errorf("missing-whitespace-after-doctype-system-keyword")
		t.quoted.Reset()
		t.attrQuote = c
		t.advance()
		t.doctypeHasSys = true
		t.state = doctypeSystemIDQuotedState
	case c == '>':
		t.errorf("missing-doctype-system-identifier")
		t.advance()
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.state = dataState
	default:
		t.errorf("missing-quote-before-doctype-system-identifier")
		t.doctype.ForceQuirks = true
		t.comment.Reset()
		t.state = bogusDoctypeState
	}
}

func beforeDoctypeSystemIDState(t *Tokenizer) {
	for {
		if t.eof() {
			t.doctypeEOF()
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c):
			t.advance()
		case c == '"' || c == '\'':
			t.quoted.Reset()
			t.attrQuote = c
			t.advance()
			t.doctypeHasSys = true
			t.state = doctypeSystemIDQuotedState
			return
		case c == '>':
			t.errorf("missing-doctype-system-identifier")
			t.advance()
			t.doctype.ForceQuirks = true
			t.emitDoctype()
			t.state = dataState
			return
		default:
			t.errorf("missing-quote-before-doctype-system-identifier")
			t.doctype.ForceQuirks = true
			t.comment.Reset()
			t.state = bogusDoctypeState
			return
		}
	}
}

func doctypeSystemIDQuotedState(t *Tokenizer) {
	for {
		if t.eof() {
			t.doctype.SystemID = t.quoted.String()
			t.doctypeEOF()
			return
		}
		c := t.peek()
		switch {
		case c == t.attrQuote:
			t.advance()
			t.doctype.SystemID = t.quoted.String()
			t.state = afterDoctypeSystemIDState
			return
		case c == 0:
			t.advance()
			t.errorf("unexpected-null-character")
			t.quoted.WriteRune('�')
		case c == '>':
			t.errorf("abrupt-doctype-system-identifier")
			t.advance()
			t.doctype.SystemID = t.quoted.String()
			t.doctype.ForceQuirks = true
			t.emitDoctype()
			t.state = dataState
			return
		default:
			t.quoted.WriteByte(t.advance())
		}
	}
}

func afterDoctypeSystemIDState(t *Tokenizer) {
	for {
		if t.eof() {
			t.doctypeEOF()
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c):
			t.advance()
		case c == '>':
			t.advance()
			t.emitDoctype()
			t.state = dataState
			return
		default:
			t.errorf("unexpected-character-after-doctype-system-identifier")
			t.comment.Reset()
			t.state = bogusDoctypeState
			return
		}
	}
}

func bogusDoctypeState(t *Tokenizer) {
	for {
		if t.eof() {
			t.emitDoctype()
			t.emit(Token{Type: EOF})
			return
		}
		c := t.advance()
		switch c {
		case '>':
			t.emitDoctype()
			t.state = dataState
			return
		case 0:
			t.errorf("unexpected-null-character")
		}
	}
}

func (t *Tokenizer) doctypeEOF() {
	t.errorf("eof-in-doctype")
	t.doctype.ForceQuirks = true
	t.emitDoctype()
	t.emit(Token{Type: EOF})
}

func (t *Tokenizer) emitDoctype() {
	d := t.doctype
	if !t.doctypeHasPub {
		d.PublicID = ""
	}
	if !t.doctypeHasSys {
		d.SystemID = ""
	}
	t.emit(Token{Type: Doctype, Doctype: &d})
}
