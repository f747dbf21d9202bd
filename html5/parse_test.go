package html5

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxia-dev/html5/node"
)

func mustParse(t *testing.T, src string) *ParsedDocument {
	t.Helper()
	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func findFirst(n *node.Node, tag string) *node.Node {
	if n.Type == node.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestParseImpliesHtmlHeadBody(t *testing.T) {
	doc := mustParse(t, "<p>hi")
	html := doc.Root.FirstChild
	require.NotNil(t, html)
	assert.Equal(t, "html", html.Data)
	assert.NotNil(t, findFirst(doc.Root, "head"))
	assert.NotNil(t, findFirst(doc.Root, "body"))
}

func TestParseAdoptionAgencyReparentsFormatting(t *testing.T) {
	doc := mustParse(t, "<p>1<b>2<i>3</b>4</i>5")
	body := findFirst(doc.Root, "body")
	require.NotNil(t, body)
	out := Serialize(body)
	assert.Contains(t, out, "<b>")
	assert.Contains(t, out, "<i>")
}

func TestParseTableFostersStrayText(t *testing.T) {
	doc := mustParse(t, "<table>foo<tr><td>bar</td></tr></table>")
	body := findFirst(doc.Root, "body")
	require.NotNil(t, body)
	table := findFirst(body, "table")
	require.NotNil(t, table)
	require.NotNil(t, body.FirstChild)
	assert.Equal(t, "foo", body.FirstChild.Data)
	assert.Same(t, table, body.FirstChild.NextSibling, "foster-parented text precedes the table rather than nesting inside it")
}

func TestParseMisnestedFormattingTagsClosedInBody(t *testing.T) {
	doc := mustParse(t, "<b><p>bold and inside a paragraph</b> normal</p>")
	body := findFirst(doc.Root, "body")
	require.NotNil(t, body)
	p := findFirst(body, "p")
	require.NotNil(t, p)
}

func TestParseSVGForeignContent(t *testing.T) {
	doc := mustParse(t, "<svg><rect></rect></svg>")
	body := findFirst(doc.Root, "body")
	require.NotNil(t, body)
	rect := findFirst(body, "rect")
	require.NotNil(t, rect)
	assert.Equal(t, node.SVG, rect.Namespace)
}

func TestParseSVGBreakoutTagReturnsToHTML(t *testing.T) {
	doc := mustParse(t, "<svg><p>breaks out</p></svg>")
	body := findFirst(doc.Root, "body")
	require.NotNil(t, body)
	p := findFirst(body, "p")
	require.NotNil(t, p)
	assert.Equal(t, node.HTML, p.Namespace, "p inside svg is one of the foreign-content breakout tags")
}

func TestParseDoctypeSetsQuirksMode(t *testing.T) {
	doc := mustParse(t, "<!DOCTYPE html><p>ok")
	assert.Equal(t, node.NoQuirks, doc.Quirks)
}

func TestParseMissingDoctypeIsQuirks(t *testing.T) {
	doc := mustParse(t, "<p>ok")
	assert.Equal(t, node.Quirks, doc.Quirks)
}

func TestParseTemplateContentIsSeparateTree(t *testing.T) {
	doc := mustParse(t, "<template><div>inside</div></template>")
	body := findFirst(doc.Root, "body")
	require.NotNil(t, body)
	tmpl := findFirst(doc.Root, "template")
	require.NotNil(t, tmpl)
	require.NotNil(t, tmpl.TemplateContent)
	assert.Nil(t, tmpl.FirstChild, "template content never becomes a direct child of the template element")
	assert.NotNil(t, findFirst(tmpl.TemplateContent, "div"))
}

func TestParseFragmentForTextarea(t *testing.T) {
	ctx := node.NewElement("textarea", nil)
	frag, _, err := ParseFragment("plain &amp; text", ctx)
	require.NoError(t, err)
	require.NotNil(t, frag.FirstChild)
	assert.Equal(t, "plain & text", frag.FirstChild.Data)
}

func TestParseFragmentForTable(t *testing.T) {
	ctx := node.NewElement("table", nil)
	frag, _, err := ParseFragment("<tr><td>x</td></tr>", ctx)
	require.NoError(t, err)
	tr := findFirst(frag, "tr")
	require.NotNil(t, tr)
}

func TestParseErrorsAreCollected(t *testing.T) {
	doc := mustParse(t, `<a href="x" href="y">`)
	require.NotEmpty(t, doc.Errors)
	found := false
	for _, e := range doc.Errors {
		if e.Code == "duplicate-attribute" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseErrorMessageFallsBackToCode(t *testing.T) {
	e := ParseError{Code: "not-a-real-code"}
	assert.Equal(t, "not-a-real-code", e.Message())
}

func TestParseCharsetFromMetaTag(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<meta charset="iso-8859-2"><p>x`))
	require.NoError(t, err)
	require.NotNil(t, doc.Encoding)
	assert.Equal(t, "iso-8859-2", doc.Encoding.Name)
}
