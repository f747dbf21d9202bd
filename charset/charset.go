// Package charset implements the byte-sniffing encoding detector (C2):
// given raw bytes and an optional transport-declared label, it picks a
// canonical encoding per the precedence spec.md §4.2 defines (transport
// label, then BOM, then a bounded <meta> prescan, then windows-1252) and
// decodes the bytes to text in that encoding.
package charset

import (
	"strings"
)

// Encoding is a canonical character encoding: a name plus the set of
// labels the WHATWG Encoding Standard maps onto it.
type Encoding struct {
	Name   string
	Labels []string
}

var (
	UTF8 = &Encoding{
		Name: "utf-8",
		Labels: []string{
			"utf-8", "utf8", "unicode-1-1-utf-8",
			"unicode11utf8", "unicode20utf8", "x-unicode20utf8",
		},
	}
	Windows1252 = &Encoding{
		Name: "windows-1252",
		Labels: []string{
			"windows-1252", "windows1252", "cp1252", "x-cp1252",
			"ansi_x3.4-1968", "ascii", "us-ascii",
			"iso-ir-100", "csisolatin1",
		},
	}
	ISO88591 = &Encoding{
		Name: "iso-8859-1",
		Labels: []string{
			"iso-8859-1", "iso8859-1", "iso88591",
			"iso_8859-1", "iso_8859-1:1987",
			"latin1", "latin-1", "l1",
			"cp819", "ibm819",
		},
	}
	ISO88592 = &Encoding{
		Name: "iso-8859-2",
		Labels: []string{
			"iso-8859-2", "iso8859-2", "iso88592",
			"iso_8859-2", "iso_8859-2:1987",
			"iso-ir-101", "csisolatin2",
			"latin2", "latin-2", "l2",
		},
	}
	EUCJP = &Encoding{
		Name: "euc-jp",
		Labels: []string{
			"euc-jp", "eucjp", "cseucpkdfmtjapanese", "x-euc-jp",
		},
	}
	UTF16   = &Encoding{Name: "utf-16", Labels: []string{"utf-16", "utf16"}}
	UTF16LE = &Encoding{Name: "utf-16le", Labels: []string{"utf-16le", "utf16le"}}
	UTF16BE = &Encoding{Name: "utf-16be", Labels: []string{"utf-16be", "utf16be"}}

	allEncodings = []*Encoding{UTF8, Windows1252, ISO88591, ISO88592, EUCJP, UTF16, UTF16LE, UTF16BE}
)

const (
	maxNonCommentScan = 1024
	maxTotalScan      = 65536
)

// Result describes the outcome of Detect: the chosen encoding, how many
// leading bytes were a byte-order mark (already stripped from the caller's
// perspective), and the decoded text.
type Result struct {
	Encoding *Encoding
	BOMLen   int
	Text     string
}

// Detect implements the precedence order of spec.md §4.2: a recognized
// transport label wins outright, then a BOM, then a bounded <meta>
// prescan, then windows-1252 as the default. transportLabel may be empty.
func Detect(data []byte, transportLabel string) Result {
	if transportLabel != "" {
		if enc := normalizeLabel(transportLabel); enc != nil {
			return decode(data, enc, 0)
		}
	}

	if enc, n := detectBOM(data); enc != nil {
		return decode(data, enc, n)
	}

	if enc := prescanMetaCharset(data); enc != nil {
		return decode(data, enc, 0)
	}

	return decode(data, Windows1252, 0)
}

func decode(data []byte, enc *Encoding, bomLen int) Result {
	text := decodeBytes(data[bomLen:], enc)
	return Result{Encoding: enc, BOMLen: bomLen, Text: text}
}

func detectBOM(data []byte) (*Encoding, int) {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return UTF8, 3
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return UTF16LE, 2
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return UTF16BE, 2
	default:
		return nil, 0
	}
}

// normalizeLabel maps an encoding label (transport-declared or meta
// declared) onto a canonical Encoding, folding WHATWG Encoding Standard
// aliases (iso-8859-1 family collapses to windows-1252; the utf-7 family
// is rejected outright for security, also falling back to windows-1252;
// a bare "utf-16" with no endianness hint falls back to little-endian).
func normalizeLabel(label string) *Encoding {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return nil
	}
	switch label {
	case "utf-7", "utf7", "x-utf-7", "csunicode11utf7", "unicode-1-1-utf-7":
		return Windows1252
	}
	for _, enc := range allEncodings {
		for _, l := range enc.Labels {
			if l == label {
				if enc == ISO88591 {
					return Windows1252
				}
				return enc
			}
		}
	}
	return nil
}

// normalizeMetaDeclared is normalizeLabel plus the meta-specific rule that
// a declared UTF-16/UTF-32 variant is coerced to UTF-8, per spec.md.
func normalizeMetaDeclared(label string) *Encoding {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-32", "utf-32le", "utf-32be":
		return UTF8
	}
	enc := normalizeLabel(label)
	if enc == nil {
		return nil
	}
	switch enc.Name {
	case "utf-16", "utf-16le", "utf-16be", "utf-32", "utf-32le", "utf-32be":
		return UTF8
	}
	return enc
}
