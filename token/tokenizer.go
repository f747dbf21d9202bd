package token

import (
	"strings"

	"github.com/loxia-dev/html5/node"
)

// stateFn is one tokenizer state. It inspects/consumes bytes from t.buf
// starting at t.pos, mutates t's in-progress token fields, and sets
// t.state to the next state to run. A state may push zero or more
// completed tokens onto t.queue; Next drains that queue before running
// the state machine further.
type stateFn func(t *Tokenizer)

// Tokenizer turns a text/html document (as text, already decoded by
// package charset) into a stream of Tokens. State switching for RCDATA,
// RAWTEXT, script data and plaintext content is driven externally by the
// tree construction stage, via SwitchTo*, exactly when the "original"
// insertion mode requires it — the tokenizer never infers it from tag
// names itself.
type Tokenizer struct {
	buf []byte
	pos int

	line, col int

	state        stateFn
	returnState  stateFn
	queue        []Token
	allowCDATA   bool
	lastStartTag string

	text strings.Builder

	tagIsEnd    bool
	tagName     strings.Builder
	selfClosing bool
	attrs       []node.Attribute
	attrName    strings.Builder
	attrVal     strings.Builder
	attrQuote   byte
	dupAttr     bool

	comment strings.Builder

	doctype       node.Doctype
	doctypeHasPub bool
	doctypeHasSys bool
	quoted        strings.Builder

	charRefCode   int
	charRefBuf    strings.Builder
	charRefInAttr bool

	errs    []ParseError
	collect bool
}

// New creates a Tokenizer over src, positioned in the data state.
func New(src string) *Tokenizer {
	t := &Tokenizer{buf: []byte(src), line: 1, col: 1}
	t.state = dataState
	return t
}

// CollectErrors turns on recording of recoverable parse errors (retrieve
// with Errors); tokenization behavior is identical either way.
func (t *Tokenizer) CollectErrors(on bool) { t.collect = on }

// Errors returns the parse errors recorded so far, if CollectErrors(true)
// was called.
func (t *Tokenizer) Errors() []ParseError { return t.errs }

// SetAllowCDATA tells the tokenizer whether a CDATA section ("<![CDATA[")
// encountered in the data state should be tokenized as such (true, inside
// foreign content) or treated as a bogus comment (false, in HTML
// content) — pushed by the tree builder once per token, mirroring its
// current-node namespace.
func (t *Tokenizer) SetAllowCDATA(allow bool) { t.allowCDATA = allow }

// SwitchToRCDATA, SwitchToRawtext, SwitchToScriptData and SwitchToPlaintext
// move the tokenizer out of the data state for the content of elements
// like <title>, <style>, <script> and <plaintext>, per the
// "using the rules for" directives the tree construction stage issues
// after inserting the matching start tag.
func (t *Tokenizer) SwitchToRCDATA()    { t.state = rcdataState }
func (t *Tokenizer) SwitchToRawtext()   { t.state = rawtextState }
func (t *Tokenizer) SwitchToScriptData() { t.state = scriptDataState }
func (t *Tokenizer) SwitchToPlaintext() { t.state = plaintextState }

// Next runs the state machine until a complete Token is ready and
// returns it. Once an EOF token has been returned, Next keeps returning
// EOF tokens.
func (t *Tokenizer) Next() Token {
	for len(t.queue) == 0 {
		t.state(t)
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	return tok
}

func (t *Tokenizer) eof() bool { return t.pos >= len(t.buf) }

func (t *Tokenizer) peek() byte {
	if t.eof() {
		return 0
	}
	return t.buf[t.pos]
}

func (t *Tokenizer) peekAt(n int) byte {
	if t.pos+n >= len(t.buf) {
		return 0
	}
	return t.buf[t.pos+n]
}

func (t *Tokenizer) advance() byte {
	b := t.buf[t.pos]
	t.pos++
	if b == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return b
}

func (t *Tokenizer) errorf(code string) {
	if t.collect {
		t.errs = append(t.errs, ParseError{Code: code, Line: t.line, Column: t.col})
	}
}

func (t *Tokenizer) emit(tok Token) { t.queue = append(t.queue, tok) }

// flushText pushes any buffered character data as a Text token.
func (t *Tokenizer) flushText() {
	if t.text.Len() == 0 {
		return
	}
	s := t.text.String()
	t.text.Reset()
	t.emit(Token{Type: Text, Data: s})
}

func (t *Tokenizer) resetTag(isEnd bool) {
	t.tagIsEnd = isEnd
	t.tagName.Reset()
	t.selfClosing = false
	t.attrs = nil
}

func (t *Tokenizer) finishAttr() {
	if t.attrName.Len() == 0 {
		return
	}
	name := t.attrName.String()
	for _, a := range t.attrs {
		if a.Name == name {
			t.dupAttr = true
		}
	}
	if !t.dupAttr {
		t.attrs = append(t.attrs, node.Attribute{Name: name, Val: t.attrVal.String()})
	} else {
		t.errorf("duplicate-attribute")
	}
	t.attrName.Reset()
	t.attrVal.Reset()
	t.dupAttr = false
}

func (t *Tokenizer) emitTag() {
	name := t.tagName.String()
	if t.tagIsEnd {
		if t.selfClosing {
			t.errorf("end-tag-with-trailing-solidus")
		}
		if len(t.attrs) != 0 {
			t.errorf("end-tag-with-attributes")
		}
		t.emit(Token{Type: EndTag, Name: name})
		return
	}
	t.lastStartTag = name
	t.emit(Token{Type: StartTag, Name: name, Attr: t.attrs, SelfClosing: t.selfClosing})
}

func isWhitespace(b byte) bool {
	switch b {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func toLower(b byte) byte {
	if isUpper(b) {
		return b + 0x20
	}
	return b
}

// --- data state ---

func dataState(t *Tokenizer) {
	for {
		if t.eof() {
			t.flushText()
			t.emit(Token{Type: EOF})
			return
		}
		switch t.peek() {
		case '&':
			t.advance()
			t.returnState = dataState
			t.charRefInAttr = false
			t.state = characterReferenceState
			return
		case '<':
			t.advance()
			t.flushText()
			t.state = tagOpenState
			return
		case 0:
			t.errorf("unexpected-null-character")
			t.advance()
			t.text.WriteByte(0)
		default:
			t.text.WriteByte(t.advance())
		}
	}
}

func tagOpenState(t *Tokenizer) {
	if t.eof() {
		t.errorf("eof-before-tag-name")
		t.text.WriteByte('<')
		t.flushText()
		t.emit(Token{Type: EOF})
		return
	}
	c := t.peek()
	switch {
	case c == '!':
		t.advance()
		t.state = markupDeclarationOpenState
	case c == '/':
		t.advance()
		t.state = endTagOpenState
	case isAlpha(c):
		t.resetTag(false)
		t.state = tagNameState
	case c == '?':
		t.errorf("unexpected-question-mark-instead-of-tag-name")
		t.comment.Reset()
		t.state = bogusCommentState
	default:
		t.errorf("invalid-first-character-of-tag-name")
		t.text.WriteByte('<')
		t.state = dataState
	}
}

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func endTagOpenState(t *Tokenizer) {
	if t.eof() {
		t.errorf("eof-before-tag-name")
		t.text.WriteString("</")
		t.flushText()
		t.emit(Token{Type: EOF})
		return
	}
	c := t.peek()
	switch {
	case isAlpha(c):
		t.resetTag(true)
		t.state = tagNameState
	case c == '>':
		t.errorf("missing-end-tag-name")
		t.advance()
		t.state = dataState
	default:
		t.errorf("invalid-first-character-of-tag-name")
		t.comment.Reset()
		t.state = bogusCommentState
	}
}

func tagNameState(t *Tokenizer) {
	for {
		if t.eof() {
			t.errorf("eof-in-tag")
			t.emit(Token{Type: EOF})
			return
		}
		c := t.advance()
		switch {
		case isWhitespace(c):
			t.state = beforeAttributeNameState
			return
		case c == '/':
			t.state = selfClosingStartTagState
			return
		case c == '>':
			t.emitTag()
			t.state = dataState
			return
		case c == 0:
			t.errorf("unexpected-null-character")
			t.tagName.WriteRune('�')
		case isUpper(c):
			t.tagName.WriteByte(toLower(c))
		default:
			t.tagName.WriteByte(c)
		}
	}
}

func beforeAttributeNameState(t *Tokenizer) {
	for {
		if t.eof() {
			t.state = afterAttributeNameStateEOF
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c):
			t.advance()
		case c == '/' || c == '>':
			t.state = afterAttributeNameState
			return
		case c == '=':
			t.errorf("unexpected-equals-sign-before-attribute-name")
			t.advance()
			t.attrName.WriteByte('=')
			t.state = attributeNameState
			return
		default:
			t.state = attributeNameState
			return
		}
	}
}

func afterAttributeNameStateEOF(t *Tokenizer) {
	t.errorf("eof-in-tag")
	t.emit(Token{Type: EOF})
}

func attributeNameState(t *Tokenizer) {
	for {
		if t.eof() {
			t.finishAttr()
			t.state = afterAttributeNameStateEOF
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c) || c == '/' || c == '>':
			t.finishAttr()
			t.state = afterAttributeNameState
			return
		case c == '=':
			t.advance()
			t.state = beforeAttributeValueState
			return
		case c == 0:
			t.advance()
			t.errorf("unexpected-null-character")
			t.attrName.WriteRune('�')
		case isUpper(c):
			t.advance()
			t.attrName.WriteByte(toLower(c))
		case c == '"' || c == '\'' || c == '<':
			t.advance()
			t.errorf("unexpected-character-in-attribute-name")
			t.attrName.WriteByte(c)
		default:
			t.advance()
			t.attrName.WriteByte(c)
		}
	}
}

func afterAttributeNameState(t *Tokenizer) {
	for {
		if t.eof() {
			t.state = afterAttributeNameStateEOF
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c):
			t.advance()
		case c == '/':
			t.advance()
			t.state = selfClosingStartTagState
			return
		case c == '=':
			t.advance()
			t.state = beforeAttributeValueState
			return
		case c == '>':
			t.advance()
			t.finishAttr()
			t.emitTag()
			t.state = dataState
			return
		default:
			t.state = attributeNameState
			return
		}
	}
}

func beforeAttributeValueState(t *Tokenizer) {
	for {
		if t.eof() {
			t.state = attributeValueUnquotedState
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c):
			t.advance()
		case c == '"':
			t.advance()
			t.attrQuote = '"'
			t.state = attributeValueQuotedState
			return
		case c == '\'':
			t.advance()
			t.attrQuote = '\''
			t.state = attributeValueQuotedState
			return
		case c == '>':
			t.errorf("missing-attribute-value")
			t.advance()
			t.finishAttr()
			t.emitTag()
			t.state = dataState
			return
		default:
			t.state = attributeValueUnquotedState
			return
		}
	}
}

func attributeValueQuotedState(t *Tokenizer) {
	for {
		if t.eof() {
			t.errorf("eof-in-tag")
			t.emit(Token{Type: EOF})
			return
		}
		c := t.peek()
		switch {
		case c == t.attrQuote:
			t.advance()
			t.state = afterAttributeValueQuotedState
			return
		case c == '&':
			t.advance()
			t.returnState = attributeValueQuotedStateReturn
			t.charRefInAttr = true
			t.state = characterReferenceState
			return
		case c == 0:
			t.advance()
			t.errorf("unexpected-null-character")
			t.attrVal.WriteRune('�')
		default:
			t.attrVal.WriteByte(t.advance())
		}
	}
}

func attributeValueQuotedStateReturn(t *Tokenizer) { t.state = attributeValueQuotedState }

func attributeValueUnquotedState(t *Tokenizer) {
	for {
		if t.eof() {
			t.finishAttr()
			t.emitTag()
			t.emit(Token{Type: EOF})
			return
		}
		c := t.peek()
		switch {
		case isWhitespace(c):
			t.advance()
			t.finishAttr()
			t.state = beforeAttributeNameState
			return
		case c == '&':
			t.advance()
			t.returnState = attributeValueUnquotedStateReturn
			t.charRefInAttr = true
			t.state = characterReferenceState
			return
		case c == '>':
			t.advance()
			t.finishAttr()
			t.emitTag()
			t.state = dataState
			return
		case c == 0:
			t.advance()
			t.errorf("unexpected-null-character")
			t.attrVal.WriteRune('�')
		case c == '"' || c == '\'' || c == '<' || c == '=' || c == '`':
			t.advance()
			t.errorf("unexpected-character-in-unquoted-attribute-value")
			t.attrVal.WriteByte(c)
		default:
			t.attrVal.WriteByte(t.advance())
		}
	}
}

func attributeValueUnquotedStateReturn(t *Tokenizer) { t.state = attributeValueUnquotedState }

func afterAttributeValueQuotedState(t *Tokenizer) {
	t.finishAttr()
	if t.eof() {
		t.errorf("eof-in-tag")
		t.emit(Token{Type: EOF})
		return
	}
	c := t.peek()
	switch {
	case isWhitespace(c):
		t.advance()
		t.state = beforeAttributeNameState
	case c == '/':
		t.advance()
		t.state = selfClosingStartTagState
	case c == '>':
		t.advance()
		t.emitTag()
		t.state = dataState
	default:
		t.errorf("missing-whitespace-between-attributes")
		t.state = beforeAttributeNameState
	}
}

func selfClosingStartTagState(t *Tokenizer) {
	if t.eof() {
		t.errorf("eof-in-tag")
		t.emit(Token{Type: EOF})
		return
	}
	c := t.peek()
	if c == '>' {
		t.advance()
		t.selfClosing = true
		t.emitTag()
		t.state = dataState
		return
	}
	t.errorf("unexpected-solidus-in-tag")
	t.state = beforeAttributeNameState
}

// --- bogus comment, markup declaration, comment states ---

func bogusCommentState(t *Tokenizer) {
	for {
		if t.eof() {
			t.emit(Token{Type: Comment, Data: t.comment.String()})
			t.emit(Token{Type: EOF})
			return
		}
		c := t.advance()
		switch c {
		case '>':
			t.emit(Token{Type: Comment, Data: t.comment.String()})
			t.state = dataState
			return
		case 0:
			t.comment.WriteRune('�')
		default:
			t.comment.WriteByte(c)
		}
	}
}

func markupDeclarationOpenState(t *Tokenizer) {
	if hasPrefixAt(t.buf, t.pos, "--") {
		t.advanceN(2)
		t.comment.Reset()
		t.state = commentStartState
		return
	}
	if hasPrefixAtFold(t.buf, t.pos, "DOCTYPE") {
		t.advanceN(7)
		t.state = doctypeState
		return
	}
	if t.allowCDATA && hasPrefixAt(t.buf, t.pos, "[CDATA[") {
		t.advanceN(7)
		t.state = cdataSectionState
		return
	}
	t.errorf("incorrectly-opened-comment")
	t.comment.Reset()
	t.state = bogusCommentState
}

func hasPrefixAt(buf []byte, pos int, s string) bool {
	if pos+len(s) > len(buf) {
		return false
	}
	return string(buf[pos:pos+len(s)]) == s
}

func hasPrefixAtFold(buf []byte, pos int, s string) bool {
	if pos+len(s) > len(buf) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if toLower(buf[pos+i]) != toLower(s[i]) {
			return false
		}
	}
	return true
}

func (t *Tokenizer) advanceN(n int) {
	for i := 0; i < n; i++ {
		t.advance()
	}
}

func commentStartState(t *Tokenizer) {
	if t.eof() {
		t.state = commentState
		return
	}
	c := t.peek()
	switch c {
	case '-':
		t.advance()
		t.state = commentStartDashState
	case '>':
		t.errorf("abrupt-closing-of-empty-comment")
		t.advance()
		t.emit(Token{Type: Comment, Data: t.comment.String()})
		t.state = dataState
	default:
		t.state = commentState
	}
}

func commentStartDashState(t *Tokenizer) {
	if t.eof() {
		t.errorf("eof-in-comment")
		t.emit(Token{Type: Comment, Data: t.comment.String()})
		t.emit(Token{Type: EOF})
		return
	}
	c := t.peek()
	switch c {
	case '-':
		t.advance()
		t.state = commentEndState
	case '>':
		t.errorf("abrupt-closing-of-empty-comment")
		t.advance()
		t.emit(Token{Type: Comment, Data: t.comment.String()})
		t.state = dataState
	default:
		t.comment.WriteByte('-')
		t.state = commentState
	}
}

func commentState(t *Tokenizer) {
	for {
		if t.eof() {
			t.errorf("eof-in-comment")
			t.emit(Token{Type: Comment, Data: t.comment.String()})
			t.emit(Token{Type: EOF})
			return
		}
		c := t.peek()
		switch c {
		case '<':
			t.advance()
			t.comment.WriteByte('<')
			t.state = commentLessThanSignState
			return
		case '-':
			t.advance()
			t.state = commentEndDashState
			return
		case 0:
			t.advance()
			t.errorf("unexpected-null-character")
			t.comment.WriteRune('�')
		default:
			t.comment.WriteByte(t.advance())
		}
	}
}

func commentLessThanSignState(t *Tokenizer) {
	if !t.eof() && t.peek() == '!' {
		t.advance()
		t.comment.WriteByte('!')
		t.state = commentLessThanSignBangState
		return
	}
	if !t.eof() && t.peek() == '<' {
		t.advance()
		t.comment.WriteByte('<')
		return
	}
	t.state = commentState
}

func commentLessThanSignBangState(t *Tokenizer) {
	if !t.eof() && t.peek() == '-' {
		t.advance()
		t.state = commentLessThanSignBangDashState
		return
	}
	t.state = commentState
}

func commentLessThanSignBangDashState(t *Tokenizer) {
	if !t.eof() && t.peek() == '-' {
		t.advance()
		t.state = commentLessThanSignBangDashDashState
		return
	}
	t.state = commentEndDashState
}

func commentLessThanSignBangDashDashState(t *Tokenizer) {
	t.state = commentEndState
}

func commentEndDashState(t *Tokenizer) {
	if t.eof() {
		t.errorf("eof-in-comment")
		t.emit(Token{Type: Comment, Data: t.comment.String()})
		t.emit(Token{Type: EOF})
		return
	}
	if t.peek() == '-' {
		t.advance()
		t.state = commentEndState
		return
	}
	t.comment.WriteByte('-')
	t.state = commentState
}

func commentEndState(t *Tokenizer) {
	if t.eof() {
		t.errorf("eof-in-comment")
		t.emit(Token{Type: Comment, Data: t.comment.String()})
		t.emit(Token{Type: EOF})
		return
	}
	c := t.peek()
	switch c {
	case '>':
		t.advance()
		t.emit(Token{Type: Comment, Data: t.comment.String()})
		t.state = dataState
	case '!':
		t.advance()
		t.state = commentEndBangState
	case '-':
		t.advance()
		t.comment.WriteByte('-')
	default:
		t.comment.WriteString("--")
		t.state = commentState
	}
}

func commentEndBangState(t *Tokenizer) {
	if t.eof() {
		t.errorf("eof-in-comment")
		t.emit(Token{Type: Comment, Data: t.comment.String()})
		t.emit(Token{Type: EOF})
		return
	}
	c := t.peek()
	switch c {
	case '-':
		t.advance()
		t.comment.WriteString("--!")
		t.state = commentEndDashState
	case '>':
		t.errorf("incorrectly-closed-comment")
		t.advance()
		t.emit(Token{Type: Comment, Data: t.comment.String()})
		t.state = dataState
	default:
		t.comment.WriteString("--!")
		t.state = commentState
	}
}

// --- CDATA section (foreign content only) ---

func cdataSectionState(t *Tokenizer) {
	for {
		if t.eof() {
			t.errorf("eof-in-cdata")
			t.flushText()
			t.emit(Token{Type: EOF})
			return
		}
		if hasPrefixAt(t.buf, t.pos, "]]>") {
			t.advanceN(3)
			t.state = dataState
			return
		}
		c := t.advance()
		if c == 0 {
			t.text.WriteRune('�')
		} else {
			t.text.WriteByte(c)
		}
	}
}
