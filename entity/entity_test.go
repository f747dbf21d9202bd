package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongestPrefix(t *testing.T) {
	cases := []struct {
		name        string
		in          string
		wantMatched string
		wantDecoded string
		wantOK      bool
	}{
		{"exact_with_semicolon", "amp;rest", "amp;", "&", true},
		{"legacy_without_semicolon", "ampersand", "amp", "&", true},
		{"longest_of_two_prefixes", "notin;", "notin;", "∉", true},
		{"unknown_name", "zzzzz;", "", "", false},
		{"empty_input", "", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matched, decoded, ok := LongestPrefix(tc.in)
			require.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				return
			}
			assert.Equal(t, tc.wantMatched, matched)
			assert.Equal(t, tc.wantDecoded, decoded)
		})
	}
}

func TestLegacySubsetOfNamed(t *testing.T) {
	for name := range Legacy {
		_, ok := Named[name]
		assert.True(t, ok, "legacy entity %q must also appear in Named", name)
	}
}

func TestWindows1252FixupLength(t *testing.T) {
	require.Len(t, Windows1252Fixup, 32)
	assert.Equal(t, rune(0x20AC), Windows1252Fixup[0], "0x80 fixes up to EURO SIGN")
	assert.Equal(t, rune(0x0178), Windows1252Fixup[31], "0x9F fixes up to LATIN CAPITAL LETTER Y WITH DIAERESIS")
}
