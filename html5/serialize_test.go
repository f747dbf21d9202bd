package html5

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxia-dev/html5/node"
)

func TestSerializeBasicElementWithAttributes(t *testing.T) {
	root := node.NewDocument()
	p := node.NewElement("p", []node.Attribute{{Name: "class", Val: "x"}, {Name: "id", Val: "y"}})
	p.AppendChild(node.NewText("hi"))
	root.AppendChild(p)

	out := Serialize(root)
	assert.Equal(t, "| <p>\n|   class=\"x\"\n|   id=\"y\"\n|   \"hi\"\n", out)
}

func TestSerializeSortsAttributesByName(t *testing.T) {
	root := node.NewDocument()
	p := node.NewElement("p", []node.Attribute{{Name: "z", Val: "1"}, {Name: "a", Val: "2"}})
	root.AppendChild(p)

	out := Serialize(root)
	zIdx := indexOf(out, "z=")
	aIdx := indexOf(out, "a=")
	assert.True(t, aIdx < zIdx, "attributes must serialize in sorted order regardless of insertion order")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestSerializeForeignElementHasNamespacePrefix(t *testing.T) {
	root := node.NewDocument()
	svg := node.NewElementNS("svg", node.SVG, nil)
	rect := node.NewElementNS("rect", node.SVG, nil)
	svg.AppendChild(rect)
	root.AppendChild(svg)

	out := Serialize(root)
	assert.Contains(t, out, "<svg svg>")
	assert.Contains(t, out, "<svg rect>")
}

func TestSerializeDoctypeWithPublicAndSystemID(t *testing.T) {
	root := node.NewDocument()
	dt := &node.Node{Type: node.DoctypeNode, Doctype: &node.Doctype{Name: "html", PublicID: "p", SystemID: "s"}}
	root.AppendChild(dt)

	out := Serialize(root)
	assert.Equal(t, `| <!DOCTYPE html "p" "s">`+"\n", out)
}

func TestSerializeDoctypeWithoutPublicOrSystemID(t *testing.T) {
	root := node.NewDocument()
	dt := &node.Node{Type: node.DoctypeNode, Doctype: &node.Doctype{Name: "html"}}
	root.AppendChild(dt)

	out := Serialize(root)
	assert.Equal(t, "| <!DOCTYPE html>\n", out)
}

func TestSerializeTemplateContentUsesContentLine(t *testing.T) {
	root := node.NewDocument()
	tmpl := node.NewElement("template", nil)
	tmpl.TemplateContent = node.NewDocumentFragment()
	tmpl.TemplateContent.AppendChild(node.NewElement("div", nil))
	root.AppendChild(tmpl)

	out := Serialize(root)
	assert.Contains(t, out, "content\n")
	assert.Contains(t, out, "<div>")
}

func TestSerializeCommentHasSurroundingSpaces(t *testing.T) {
	root := node.NewDocument()
	root.AppendChild(node.NewComment("hi"))

	out := Serialize(root)
	assert.Equal(t, "| <!-- hi -->\n", out)
}

func TestSerializeNestedDepthIndentation(t *testing.T) {
	root := node.NewDocument()
	html := node.NewElement("html", nil)
	body := node.NewElement("body", nil)
	div := node.NewElement("div", nil)
	body.AppendChild(div)
	html.AppendChild(body)
	root.AppendChild(html)

	out := Serialize(root)
	assert.Contains(t, out, "| <html>\n|   <body>\n|     <div>\n")
}
