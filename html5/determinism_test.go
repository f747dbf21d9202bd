package html5

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/loxia-dev/html5/node"
)

// nodeComparer compares the shape of a tree that matters for equivalence
// under round-tripping: kind, namespace, data, attributes and children.
// It deliberately ignores Parent/PrevSibling/NextSibling (cmp would
// otherwise walk into a reference cycle through Parent) and
// TemplateContent is compared as its own subtree via Children().
var nodeComparer = cmp.Comparer(func(a, b *node.Node) bool {
	return nodesEqual(a, b)
})

func nodesEqual(a, b *node.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Namespace != b.Namespace || a.Data != b.Data {
		return false
	}
	if !attrsEqual(a.Attr, b.Attr) {
		return false
	}
	if (a.TemplateContent == nil) != (b.TemplateContent == nil) {
		return false
	}
	if a.TemplateContent != nil && !childrenEqual(a.TemplateContent, b.TemplateContent) {
		return false
	}
	return childrenEqual(a, b)
}

func childrenEqual(a, b *node.Node) bool {
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !nodesEqual(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

func attrsEqual(a, b []node.Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// assertParseIsDeterministic checks the round-trip property the parser
// actually offers: parsing is a pure function of its input, and
// Serialize is a pure function of the tree it's given. Parsing src
// twice must give structurally equivalent trees, and serializing either
// of them twice must give byte-identical output. (Serialize renders the
// html5lib tree-construction test format, not HTML markup, so it is not
// itself a valid re-parse target.)
func assertParseIsDeterministic(t *testing.T, src string) {
	t.Helper()
	doc1, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	doc2, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	if diff := cmp.Diff(doc1.Root, doc2.Root, nodeComparer); diff != "" {
		t.Errorf("parsing %q twice produced different trees:\n%s", src, diff)
	}

	require.Equal(t, Serialize(doc1.Root), Serialize(doc2.Root))
	require.Equal(t, Serialize(doc1.Root), Serialize(doc1.Root), "Serialize must not mutate the tree it renders")
}

func TestParseIsDeterministicForSimpleDocument(t *testing.T) {
	assertParseIsDeterministic(t, "<!DOCTYPE html><html><head><title>x</title></head><body><p>hi</p></body></html>")
}

func TestParseIsDeterministicForMisnestedFormatting(t *testing.T) {
	assertParseIsDeterministic(t, "<p>1<b>2<i>3</b>4</i>5")
}

func TestParseIsDeterministicForTable(t *testing.T) {
	assertParseIsDeterministic(t, "<table><tr><td>a</td><td>b</td></tr></table>")
}

func TestParseIsDeterministicForForeignContent(t *testing.T) {
	assertParseIsDeterministic(t, `<svg><rect width="1" height="2"></rect></svg>`)
}

func TestParseIsDeterministicForTemplate(t *testing.T) {
	assertParseIsDeterministic(t, "<template><div>x</div></template>")
}

// TestNodeComparerDetectsStructuralDifferences guards against the
// comparer vacuously reporting equality for trees that do differ.
func TestNodeComparerDetectsStructuralDifferences(t *testing.T) {
	doc1, err := Parse(strings.NewReader("<p>a</p>"))
	require.NoError(t, err)
	doc2, err := Parse(strings.NewReader("<p>b</p>"))
	require.NoError(t, err)

	diff := cmp.Diff(doc1.Root, doc2.Root, nodeComparer)
	require.NotEmpty(t, diff)
}
