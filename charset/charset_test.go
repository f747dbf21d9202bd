package charset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTransportLabelWins(t *testing.T) {
	data := []byte(`<meta charset="iso-8859-2">hello`)
	res := Detect(data, "utf-8")
	require.NotNil(t, res.Encoding)
	assert.Equal(t, UTF8, res.Encoding, "a recognized transport label must win outright over a <meta> declaration")
}

func TestDetectBOM(t *testing.T) {
	cases := []struct {
		name   string
		data   []byte
		want   *Encoding
		bomLen int
	}{
		{"utf8_bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, UTF8, 3},
		{"utf16le_bom", []byte{0xFF, 0xFE, 'h', 0}, UTF16LE, 2},
		{"utf16be_bom", []byte{0xFE, 0xFF, 0, 'h'}, UTF16BE, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Detect(tc.data, "")
			assert.Equal(t, tc.want, res.Encoding)
			assert.Equal(t, tc.bomLen, res.BOMLen)
		})
	}
}

func TestDetectMetaCharsetPrescan(t *testing.T) {
	data := []byte(`<html><head><meta charset="iso-8859-2"></head></html>`)
	res := Detect(data, "")
	assert.Equal(t, ISO88592, res.Encoding)
}

func TestDetectMetaHTTPEquivContentType(t *testing.T) {
	data := []byte(`<head><meta http-equiv="Content-Type" content="text/html; charset=iso-8859-2"></head>`)
	res := Detect(data, "")
	assert.Equal(t, ISO88592, res.Encoding)
}

func TestDetectDefaultsToWindows1252(t *testing.T) {
	res := Detect([]byte("<html><body>plain</body></html>"), "")
	assert.Equal(t, Windows1252, res.Encoding)
}

func TestDetectMetaPrescanSkipsComments(t *testing.T) {
	data := []byte(`<!-- <meta charset="iso-8859-2"> --><meta charset="euc-jp">`)
	res := Detect(data, "")
	assert.Equal(t, EUCJP, res.Encoding, "a charset declaration inside a comment must not be honored")
}

func TestNormalizeLabelFoldsISO88591ToWindows1252(t *testing.T) {
	res := Detect([]byte("x"), "ISO-8859-1")
	assert.Equal(t, Windows1252, res.Encoding)
}

func TestNormalizeLabelRejectsUTF7(t *testing.T) {
	res := Detect([]byte("x"), "utf-7")
	assert.Equal(t, Windows1252, res.Encoding, "utf-7 is rejected outright for security")
}

func TestPrescanBoundedByTotalScan(t *testing.T) {
	padding := strings.Repeat("a", maxTotalScan+10)
	data := []byte("<html>" + padding + `<meta charset="iso-8859-2">`)
	res := Detect(data, "")
	assert.Equal(t, Windows1252, res.Encoding, "a declaration past the total scan bound must not be found")
}
