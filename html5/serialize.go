package html5

import (
	"fmt"
	"sort"
	"strings"

	"github.com/loxia-dev/html5/node"
)

// Serialize renders root in the html5lib tree-construction test
// format: one line per node, "| " plus two spaces of indent per depth,
// attributes sorted by name, and namespace-prefixed tag names for
// foreign elements, matching the format the reference html5lib test
// suite expects from a conforming parser.
func Serialize(root *node.Node) string {
	var sb strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		serializeNode(&sb, c, 0)
	}
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *node.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Type {
	case node.DoctypeNode:
		fmt.Fprintf(sb, "| %s<!DOCTYPE %s", indent, n.Doctype.Name)
		if n.Doctype.PublicID != "" || n.Doctype.SystemID != "" {
			fmt.Fprintf(sb, " %q %q", n.Doctype.PublicID, n.Doctype.SystemID)
		}
		sb.WriteString(">\n")
	case node.CommentNode:
		fmt.Fprintf(sb, "| %s<!-- %s -->\n", indent, n.Data)
	case node.TextNode:
		fmt.Fprintf(sb, "| %s%q\n", indent, n.Data)
	case node.ElementNode:
		fmt.Fprintf(sb, "| %s<%s>\n", indent, formatTagName(n))
		attrIndent := strings.Repeat("  ", depth+1)
		for _, a := range sortedAttrs(n.Attr) {
			fmt.Fprintf(sb, "| %s%s=%q\n", attrIndent, formatAttrName(a), a.Val)
		}
		if n.Namespace == node.HTML && n.Data == "template" && n.TemplateContent != nil {
			fmt.Fprintf(sb, "| %scontent\n", attrIndent)
			for c := n.TemplateContent.FirstChild; c != nil; c = c.NextSibling {
				serializeNode(sb, c, depth+2)
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		serializeNode(sb, c, depth+1)
	}
}

func formatTagName(n *node.Node) string {
	switch n.Namespace {
	case node.SVG:
		return "svg " + n.Data
	case node.MathML:
		return "math " + n.Data
	default:
		return n.Data
	}
}

func formatAttrName(a node.Attribute) string {
	if a.Prefix != "" {
		return a.Prefix + " " + a.Name
	}
	return a.Name
}

func sortedAttrs(attrs []node.Attribute) []node.Attribute {
	out := append([]node.Attribute(nil), attrs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Prefix != out[j].Prefix {
			return out[i].Prefix < out[j].Prefix
		}
		return out[i].Name < out[j].Name
	})
	return out
}
