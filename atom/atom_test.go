package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupAndString(t *testing.T) {
	a := Lookup("table")
	assert.Equal(t, Table, a)
	assert.Equal(t, "table", a.String())

	assert.Equal(t, Zero, Lookup("not-a-real-tag"))
	assert.Equal(t, "", Zero.String())
}

func TestIsVoid(t *testing.T) {
	for _, tag := range []string{"area", "br", "img", "input", "meta"} {
		assert.True(t, Lookup(tag).IsVoid(), tag)
	}
	for _, tag := range []string{"div", "span", "table"} {
		assert.False(t, Lookup(tag).IsVoid(), tag)
	}
}

func TestIsSpecial(t *testing.T) {
	for _, tag := range []string{"div", "table", "p", "html", "body"} {
		assert.True(t, Lookup(tag).IsSpecial(), tag)
	}
	for _, tag := range []string{"span", "a", "b", "em"} {
		assert.False(t, Lookup(tag).IsSpecial(), tag)
	}
}
