package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxia-dev/html5/node"
)

func TestElementStackPushPopTop(t *testing.T) {
	var s elementStack
	a := node.NewElement("a", nil)
	b := node.NewElement("b", nil)
	s.push(a)
	s.push(b)

	assert.Same(t, b, s.top())
	assert.Equal(t, 0, s.index(a))
	popped := s.pop()
	assert.Same(t, b, popped)
	assert.Same(t, a, s.top())
}

func TestElementStackPopUntil(t *testing.T) {
	var s elementStack
	s.push(node.NewElement("html", nil))
	s.push(node.NewElement("body", nil))
	s.push(node.NewElement("div", nil))
	s.push(node.NewElement("p", nil))

	found := s.popUntil("body")
	require.True(t, found)
	assert.Equal(t, 1, len(s))
	assert.Equal(t, "html", s.top().Data)
}

func TestElementStackPopUntilNotFoundEmptiesStack(t *testing.T) {
	var s elementStack
	s.push(node.NewElement("html", nil))
	s.push(node.NewElement("body", nil))

	found := s.popUntil("table")
	assert.False(t, found)
	assert.Equal(t, 0, len(s))
}

func TestElementInScopeDefault(t *testing.T) {
	var s elementStack
	s.push(node.NewElement("html", nil))
	s.push(node.NewElement("body", nil))
	s.push(node.NewElement("table", nil))
	s.push(node.NewElement("div", nil))

	assert.False(t, s.elementInScope(defaultScope, "body"), "table stops the default scope walk")
}

func TestElementInScopeListItem(t *testing.T) {
	var s elementStack
	s.push(node.NewElement("html", nil))
	s.push(node.NewElement("li", nil))
	s.push(node.NewElement("ul", nil))

	assert.False(t, s.elementInScope(listItemScope, "li"), "ul stops list-item scope before a second li would be reached")
}

func TestElementInScopeSelectIsInverted(t *testing.T) {
	var s elementStack
	s.push(node.NewElement("select", nil))
	s.push(node.NewElement("optgroup", nil))
	s.push(node.NewElement("option", nil))

	assert.True(t, s.elementInScope(selectScope, "select"))

	var s2 elementStack
	s2.push(node.NewElement("select", nil))
	s2.push(node.NewElement("div", nil))
	assert.False(t, s2.elementInScope(selectScope, "select"), "any element other than optgroup/option breaks select scope")
}

func TestStopsScopeForeignElements(t *testing.T) {
	mi := node.NewElementNS("mi", node.MathML, nil)
	assert.True(t, stopsScope(mi, defaultScope))

	title := node.NewElementNS("title", node.SVG, nil)
	assert.True(t, stopsScope(title, defaultScope))

	rect := node.NewElementNS("rect", node.SVG, nil)
	assert.False(t, stopsScope(rect, defaultScope))
}

func TestGenerateImpliedEndTags(t *testing.T) {
	b := &Builder{}
	b.oe.push(node.NewElement("ul", nil))
	b.oe.push(node.NewElement("li", nil))
	b.oe.push(node.NewElement("p", nil))

	b.generateImpliedEndTags("")

	require.Equal(t, 1, len(b.oe))
	assert.Equal(t, "ul", b.oe.top().Data)
}

func TestGenerateImpliedEndTagsExceptStopsAtNamedTag(t *testing.T) {
	b := &Builder{}
	b.oe.push(node.NewElement("dl", nil))
	b.oe.push(node.NewElement("dd", nil))

	b.generateImpliedEndTags("dd")

	require.Equal(t, 2, len(b.oe))
	assert.Equal(t, "dd", b.oe.top().Data)
}

func TestAddFormattingElementNoahsArkClause(t *testing.T) {
	b := &Builder{}
	snap := startTagSnapshot{name: "b", ns: node.HTML}

	for i := 0; i < 3; i++ {
		b.addFormattingElement(node.NewElement("b", nil), snap)
	}
	require.Len(t, b.afe, 3)

	b.addFormattingElement(node.NewElement("b", nil), snap)
	assert.Len(t, b.afe, 3, "a fourth identical formatting element must evict the earliest")
}

func TestAddFormattingElementMarkerResetsCount(t *testing.T) {
	b := &Builder{}
	snap := startTagSnapshot{name: "b", ns: node.HTML}
	b.addFormattingElement(node.NewElement("b", nil), snap)
	b.addFormattingElement(node.NewElement("b", nil), snap)
	b.pushScopeMarker()
	b.addFormattingElement(node.NewElement("b", nil), snap)
	b.addFormattingElement(node.NewElement("b", nil), snap)

	assert.Len(t, b.afe, 5, "entries before a marker don't count toward Noah's Ark")
}

func TestClearActiveFormattingToMarker(t *testing.T) {
	b := &Builder{}
	snap := startTagSnapshot{name: "i", ns: node.HTML}
	b.addFormattingElement(node.NewElement("i", nil), snap)
	b.pushScopeMarker()
	b.addFormattingElement(node.NewElement("i", nil), snap)

	b.clearActiveFormattingToMarker()

	require.Len(t, b.afe, 1)
	assert.NotNil(t, b.afe[0].node)
}

func TestReconstructActiveFormattingElementsReinsertsFallenOffEntries(t *testing.T) {
	b := &Builder{}
	body := node.NewElement("body", nil)
	b.oe.push(body)

	em := node.NewElement("em", []node.Attribute{{Name: "id", Val: "e1"}})
	body.AppendChild(em)
	b.oe.push(em)
	snap := startTagSnapshot{name: "em", ns: node.HTML, attr: em.Attr}
	b.addFormattingElement(em, snap)

	b.oe.pop()

	b.reconstructActiveFormattingElements()

	require.Len(t, b.afe, 1)
	assert.NotSame(t, em, b.afe[0].node, "reconstruction clones rather than reusing the detached node")
	assert.Same(t, b.afe[0].node, b.oe.top())
}

func TestSameFormattingElementComparesAttributesUnordered(t *testing.T) {
	a := startTagSnapshot{name: "a", ns: node.HTML, attr: []node.Attribute{
		{Name: "href", Val: "/x"}, {Name: "id", Val: "y"},
	}}
	b := startTagSnapshot{name: "a", ns: node.HTML, attr: []node.Attribute{
		{Name: "id", Val: "y"}, {Name: "href", Val: "/x"},
	}}
	assert.True(t, sameFormattingElement(a, b))

	c := startTagSnapshot{name: "a", ns: node.HTML, attr: []node.Attribute{
		{Name: "href", Val: "/z"}, {Name: "id", Val: "y"},
	}}
	assert.False(t, sameFormattingElement(a, c))
}
