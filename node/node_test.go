package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChildCoalescesText(t *testing.T) {
	parent := NewElement("p", nil)
	parent.AppendChild(NewText("foo"))
	parent.AppendChild(NewText("bar"))

	require.NotNil(t, parent.FirstChild)
	assert.Same(t, parent.FirstChild, parent.LastChild)
	assert.Equal(t, "foobar", parent.FirstChild.Data)
}

func TestInsertBeforeCoalescesText(t *testing.T) {
	parent := NewElement("p", nil)
	span := NewElement("span", nil)
	parent.AppendChild(NewText("foo"))
	parent.AppendChild(span)

	parent.InsertBefore(NewText("bar"), span)

	assert.Equal(t, "foobar", parent.FirstChild.Data)
	assert.Same(t, span, parent.FirstChild.NextSibling)
}

func TestRemoveChildRelinksSiblings(t *testing.T) {
	parent := NewElement("div", nil)
	a := NewElement("a", nil)
	b := NewElement("b", nil)
	c := NewElement("c", nil)
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.AppendChild(c)

	parent.RemoveChild(b)

	assert.Same(t, c, a.NextSibling)
	assert.Same(t, a, c.PrevSibling)
	assert.Nil(t, b.Parent)
	assert.Equal(t, []*Node{a, c}, parent.Children())
}

func TestAttributeFirstWriterWins(t *testing.T) {
	n := NewElement("input", []Attribute{{Name: "type", Val: "text"}})
	n.SetAttribute("type", "hidden")
	n.SetAttribute("name", "q")

	v, ok := n.Attribute("type")
	require.True(t, ok)
	assert.Equal(t, "text", v, "SetAttribute must not overwrite an existing attribute")

	v, ok = n.Attribute("name")
	require.True(t, ok)
	assert.Equal(t, "q", v)
}

func TestIsVoid(t *testing.T) {
	assert.True(t, NewElement("br", nil).IsVoid())
	assert.False(t, NewElement("div", nil).IsVoid())
	assert.False(t, NewElementNS("br", SVG, nil).IsVoid(), "void-ness is an HTML-namespace concept")
}

func TestCloneIsDetachedCopy(t *testing.T) {
	orig := NewElement("a", []Attribute{{Name: "href", Val: "/x"}})
	orig.Parent = NewDocument()

	clone := Clone(orig)

	assert.Nil(t, clone.Parent)
	assert.Nil(t, clone.FirstChild)
	require.Len(t, clone.Attr, 1)
	assert.Equal(t, orig.Attr[0], clone.Attr[0])

	clone.Attr[0].Val = "/y"
	assert.Equal(t, "/x", orig.Attr[0].Val, "Clone must copy the attribute slice, not alias it")
}

func TestReparentChildren(t *testing.T) {
	src := NewElement("template-content", nil)
	dst := NewElement("div", nil)
	src.AppendChild(NewElement("a", nil))
	src.AppendChild(NewElement("b", nil))

	ReparentChildren(dst, src)

	assert.Nil(t, src.FirstChild)
	require.Len(t, dst.Children(), 2)
	assert.Equal(t, "a", dst.Children()[0].Data)
	assert.Same(t, dst, dst.Children()[0].Parent)
}

func TestDetectQuirksMode(t *testing.T) {
	cases := []struct {
		name string
		doc  *Doctype
		want QuirksMode
	}{
		{"no_doctype", nil, Quirks},
		{"force_quirks", &Doctype{Name: "html", ForceQuirks: true}, Quirks},
		{"non_html_name", &Doctype{Name: "foo"}, Quirks},
		{"plain_html5", &Doctype{Name: "html"}, NoQuirks},
		{"legacy_html2_public_id", &Doctype{
			Name:     "html",
			PublicID: "-//IETF//DTD HTML 2.0//EN",
		}, Quirks},
		{"xhtml_transitional_limited", &Doctype{
			Name:     "html",
			PublicID: "-//W3C//DTD XHTML 1.0 Transitional//EN",
		}, LimitedQuirks},
		{"html4_transitional_with_system_id_limited", &Doctype{
			Name:     "html",
			PublicID: "-//W3C//DTD HTML 4.01 Transitional//EN",
			SystemID: "http://www.w3.org/TR/html4/loose.dtd",
		}, LimitedQuirks},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectQuirksMode(tc.doc, false))
		})
	}
}

func TestDetectQuirksModeIFrameSrcdocSuppressesQuirks(t *testing.T) {
	assert.Equal(t, NoQuirks, DetectQuirksMode(nil, true))
}
