package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectAll(tok *Tokenizer) []Token {
	var out []Token
	for {
		tk := tok.Next()
		out = append(out, tk)
		if tk.Type == EOF {
			return out
		}
	}
}

func TestDataStateProducesText(t *testing.T) {
	tok := New("hello world")
	toks := collectAll(tok)
	require.Len(t, toks, 2)
	assert.Equal(t, Text, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Data)
	assert.Equal(t, EOF, toks[1].Type)
}

func TestStartTagWithAttributes(t *testing.T) {
	tok := New(`<a href="/x" class='y'>`)
	toks := collectAll(tok)
	require.Len(t, toks, 2)
	require.Equal(t, StartTag, toks[0].Type)
	assert.Equal(t, "a", toks[0].Name)
	require.Len(t, toks[0].Attr, 2)
	assert.Equal(t, "href", toks[0].Attr[0].Name)
	assert.Equal(t, "/x", toks[0].Attr[0].Val)
	assert.Equal(t, "class", toks[0].Attr[1].Name)
	assert.Equal(t, "y", toks[0].Attr[1].Val)
}

func TestDuplicateAttributeKeepsFirst(t *testing.T) {
	tok := New(`<a href="/x" href="/y">`)
	toks := collectAll(tok)
	require.Len(t, toks[0].Attr, 1)
	assert.Equal(t, "/x", toks[0].Attr[0].Val)
}

func TestEndTagIgnoresAttributesAndSelfClosing(t *testing.T) {
	tok := New(`</div a="b"/>`)
	tok.CollectErrors(true)
	toks := collectAll(tok)
	require.Equal(t, EndTag, toks[0].Type)
	assert.Equal(t, "div", toks[0].Name)
	errs := tok.Errors()
	require.NotEmpty(t, errs)
	assert.Contains(t, errCodes(errs), "end-tag-with-attributes")
}

func errCodes(errs []ParseError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestSelfClosingVoidTag(t *testing.T) {
	tok := New(`<br/>`)
	toks := collectAll(tok)
	require.Equal(t, StartTag, toks[0].Type)
	assert.True(t, toks[0].SelfClosing)
}

func TestCommentBasic(t *testing.T) {
	tok := New(`<!-- hi -->`)
	toks := collectAll(tok)
	require.Equal(t, Comment, toks[0].Type)
	assert.Equal(t, " hi ", toks[0].Data)
}

func TestAbruptClosingOfEmptyComment(t *testing.T) {
	tok := New(`<!--->`)
	tok.CollectErrors(true)
	toks := collectAll(tok)
	require.Equal(t, Comment, toks[0].Type)
	assert.Contains(t, errCodes(tok.Errors()), "abrupt-closing-of-empty-comment")
}

func TestBogusCommentFromMarkupDeclaration(t *testing.T) {
	tok := New(`<!weird>`)
	tok.CollectErrors(true)
	toks := collectAll(tok)
	require.Equal(t, Comment, toks[0].Type)
	assert.Contains(t, errCodes(tok.Errors()), "incorrectly-opened-comment")
}

func TestDoctypeBasic(t *testing.T) {
	tok := New(`<!DOCTYPE html>`)
	toks := collectAll(tok)
	require.Equal(t, Doctype, toks[0].Type)
	require.NotNil(t, toks[0].Doctype)
	assert.Equal(t, "html", toks[0].Doctype.Name)
	assert.False(t, toks[0].Doctype.ForceQuirks)
}

func TestDoctypeWithPublicAndSystemID(t *testing.T) {
	tok := New(`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`)
	toks := collectAll(tok)
	require.Equal(t, Doctype, toks[0].Type)
	assert.Equal(t, "-//W3C//DTD HTML 4.01//EN", toks[0].Doctype.PublicID)
	assert.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", toks[0].Doctype.SystemID)
}

func TestDoctypeMissingNameForcesQuirks(t *testing.T) {
	tok := New(`<!DOCTYPE >`)
	tok.CollectErrors(true)
	toks := collectAll(tok)
	require.Equal(t, Doctype, toks[0].Type)
	assert.True(t, toks[0].Doctype.ForceQuirks)
}

func TestNamedCharacterReferenceInData(t *testing.T) {
	tok := New(`a&amp;b`)
	toks := collectAll(tok)
	require.Equal(t, Text, toks[0].Type)
	assert.Equal(t, "a&b", toks[0].Data)
}

func TestNamedCharacterReferenceWithoutSemicolon(t *testing.T) {
	tok := New(`&amp rest`)
	toks := collectAll(tok)
	require.Equal(t, Text, toks[0].Type)
	assert.Equal(t, "& rest", toks[0].Data)
}

func TestAmbiguousAmpersandInAttributeIsLiteral(t *testing.T) {
	tok := New(`<a href="?a=1&ampersand=2">`)
	toks := collectAll(tok)
	require.Equal(t, StartTag, toks[0].Type)
	assert.Equal(t, "?a=1&ampersand=2", toks[0].Attr[0].Val)
}

func TestDecimalNumericCharacterReference(t *testing.T) {
	tok := New(`&#65;`)
	toks := collectAll(tok)
	assert.Equal(t, "A", toks[0].Data)
}

func TestHexNumericCharacterReference(t *testing.T) {
	tok := New(`&#x41;`)
	toks := collectAll(tok)
	assert.Equal(t, "A", toks[0].Data)
}

func TestNumericCharacterReferenceNullSubstitutesReplacementChar(t *testing.T) {
	tok := New(`&#0;`)
	tok.CollectErrors(true)
	toks := collectAll(tok)
	assert.Equal(t, "�", toks[0].Data)
	assert.Contains(t, errCodes(tok.Errors()), "null-character-reference")
}

func TestNumericCharacterReferenceWindows1252Fixup(t *testing.T) {
	tok := New(`&#128;`)
	toks := collectAll(tok)
	assert.Equal(t, "€", toks[0].Data, "0x80 fixes up to EURO SIGN per the windows-1252 table")
}

func TestRCDATADoesNotParseTags(t *testing.T) {
	tok := New(`<b>not a tag</title>`)
	tok.SwitchToRCDATA()
	tok.lastStartTag = "title"
	toks := collectAll(tok)
	require.Equal(t, Text, toks[0].Type)
	assert.Equal(t, "<b>not a tag", toks[0].Data)
	assert.Equal(t, EndTag, toks[1].Type)
	assert.Equal(t, "title", toks[1].Name)
}

func TestRCDATADecodesCharacterReferences(t *testing.T) {
	tok := New(`a&amp;b</title>`)
	tok.SwitchToRCDATA()
	tok.lastStartTag = "title"
	toks := collectAll(tok)
	assert.Equal(t, "a&b", toks[0].Data)
}

func TestRawtextDoesNotDecodeCharacterReferences(t *testing.T) {
	tok := New(`a&amp;b</style>`)
	tok.SwitchToRawtext()
	tok.lastStartTag = "style"
	toks := collectAll(tok)
	assert.Equal(t, "a&amp;b", toks[0].Data)
}

func TestScriptDataEndTagMustMatchLastStartTag(t *testing.T) {
	tok := New(`var x = "</scrip>"; </script>`)
	tok.SwitchToScriptData()
	tok.lastStartTag = "script"
	toks := collectAll(tok)
	require.Equal(t, Text, toks[0].Type)
	assert.Contains(t, toks[0].Data, `</scrip>`)
	assert.Equal(t, EndTag, toks[1].Type)
	assert.Equal(t, "script", toks[1].Name)
}

func TestPlaintextConsumesEverythingLiterally(t *testing.T) {
	tok := New(`<b>still text`)
	tok.SwitchToPlaintext()
	toks := collectAll(tok)
	require.Equal(t, Text, toks[0].Type)
	assert.Equal(t, "<b>still text", toks[0].Data)
}

func TestCDATASectionWhenAllowed(t *testing.T) {
	tok := New(`<![CDATA[<not a tag>]]>`)
	tok.SetAllowCDATA(true)
	toks := collectAll(tok)
	require.Equal(t, Text, toks[0].Type)
	assert.Equal(t, "<not a tag>", toks[0].Data)
}

func TestCDATABecomesBogusCommentWhenDisallowed(t *testing.T) {
	tok := New(`<![CDATA[x]]>`)
	tok.SetAllowCDATA(false)
	toks := collectAll(tok)
	require.Equal(t, Comment, toks[0].Type)
}

func TestUnexpectedNullInDataIsKeptNotDropped(t *testing.T) {
	tok := New("a\x00b")
	tok.CollectErrors(true)
	toks := collectAll(tok)
	assert.Equal(t, "a\x00b", toks[0].Data)
	assert.Contains(t, errCodes(tok.Errors()), "unexpected-null-character")
}

func TestEOFInTagIsReported(t *testing.T) {
	tok := New(`<div`)
	tok.CollectErrors(true)
	toks := collectAll(tok)
	assert.Equal(t, EOF, toks[len(toks)-1].Type)
	assert.Contains(t, errCodes(tok.Errors()), "eof-in-tag")
}
