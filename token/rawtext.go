package token

// This file implements the "escapable raw text" (RCDATA), "raw text"
// (RAWTEXT), script data, and plaintext state families. Each follows the
// same shape: scan for '<', try to match a matching end tag against
// lastStartTag, otherwise fall through to data-like text accumulation.
// Script data additionally tracks the "<script>" escape sub-states that
// let a script contain a commented-out nested "</script>".

func plaintextState(t *Tokenizer) {
	for {
		if t.eof() {
			t.flushText()
			t.emit(Token{Type: EOF})
			return
		}
		c := t.advance()
		if c == 0 {
			t.errorf("unexpected-null-character")
			t.text.WriteRune('�')
		} else {
			t.text.WriteByte(c)
		}
	}
}

func rcdataState(t *Tokenizer) {
	for {
		if t.eof() {
			t.flushText()
			t.emit(Token{Type: EOF})
			return
		}
		switch t.peek() {
		case '&':
			t.advance()
			t.returnState = rcdataState
			t.charRefInAttr = false
			t.state = characterReferenceState
			return
		case '<':
			t.advance()
			t.state = makeLessThanSignState(rcdataState, rcdataEndTagOpenBuilder)
			return
		case 0:
			t.advance()
			t.errorf("unexpected-null-character")
			t.text.WriteRune('�')
		default:
			t.text.WriteByte(t.advance())
		}
	}
}

func rawtextState(t *Tokenizer) {
	for {
		if t.eof() {
			t.flushText()
			t.emit(Token{Type: EOF})
			return
		}
		switch t.peek() {
		case '<':
			t.advance()
			t.state = makeLessThanSignState(rawtextState, rawtextEndTagOpenBuilder)
			return
		case 0:
			t.advance()
			t.errorf("unexpected-null-character")
			t.text.WriteRune('�')
		default:
			t.text.WriteByte(t.advance())
		}
	}
}

// Go's closures make the classic "rawtext end tag open" / "rawtext end
// tag name" state pair simpler to express as one parametrized pair of
// state-returning constructors instead of four nearly-identical states.

func makeLessThanSignState(base stateFn, endTagOpen func() stateFn) stateFn {
	return func(t *Tokenizer) {
		if !t.eof() && t.peek() == '/' {
			t.advance()
			t.tagName.Reset()
			t.state = endTagOpen()
			return
		}
		t.text.WriteByte('<')
		t.state = base
	}
}

func rcdataEndTagOpenBuilder() stateFn  { return endTagOpenBuilder(rcdataState) }
func rawtextEndTagOpenBuilder() stateFn { return endTagOpenBuilder(rawtextState) }

func endTagOpenBuilder(fallback stateFn) stateFn {
	var nameState stateFn
	nameState = func(t *Tokenizer) {
		if !t.eof() && isAlpha(t.peek()) {
			c := t.advance()
			t.tagName.WriteByte(toLower(c))
			t.state = nameState
			return
		}
		name := t.tagName.String()
		if name == t.lastStartTag {
			t.flushText()
			switch {
			case !t.eof() && isWhitespace(t.peek()):
				t.advance()
				t.resetTag(true)
				t.tagName.WriteString(name)
				t.state = beforeAttributeNameState
				return
			case !t.eof() && t.peek() == '/':
				t.advance()
				t.resetTag(true)
				t.tagName.WriteString(name)
				t.state = selfClosingStartTagState
				return
			case !t.eof() && t.peek() == '>':
				t.advance()
				t.emit(Token{Type: EndTag, Name: name})
				t.state = dataState
				return
			}
		}
		t.text.WriteString("</")
		t.text.WriteString(name)
		t.state = fallback
	}
	return nameState
}
