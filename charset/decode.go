package charset

import (
	"strings"
	"unicode/utf8"

	"github.com/loxia-dev/html5/entity"
)

// decodeBytes decodes data under enc. utf-8 is validated byte-by-byte,
// substituting U+FFFD for invalid sequences, matching how a browser would
// hand the tokenizer valid scalar values even over malformed input.
func decodeBytes(data []byte, enc *Encoding) string {
	switch enc.Name {
	case "utf-8":
		return decodeUTF8(data)
	case "windows-1252":
		return decodeSingleByte(data, windows1252Decode)
	case "iso-8859-1":
		return decodeSingleByte(data, identityDecode)
	case "iso-8859-2":
		return decodeSingleByte(data, iso88592Decode)
	case "euc-jp":
		return decodeEUCJP(data)
	case "utf-16le":
		return decodeUTF16(data, false)
	case "utf-16be":
		return decodeUTF16(data, true)
	case "utf-16":
		if len(data) >= 2 {
			if data[0] == 0xFF && data[1] == 0xFE {
				return decodeUTF16(data[2:], false)
			}
			if data[0] == 0xFE && data[1] == 0xFF {
				return decodeUTF16(data[2:], true)
			}
		}
		return decodeUTF16(data, false)
	default:
		return decodeSingleByte(data, windows1252Decode)
	}
}

func decodeUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	var sb strings.Builder
	sb.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		sb.WriteRune(r)
		data = data[size:]
	}
	return sb.String()
}

func decodeSingleByte(data []byte, mapByte func(byte) rune) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(mapByte(b))
	}
	return sb.String()
}

func identityDecode(b byte) rune { return rune(b) }

func windows1252Decode(b byte) rune {
	if b >= 0x80 && b <= 0x9F {
		return entity.Windows1252Fixup[b-0x80]
	}
	return rune(b)
}

func iso88592Decode(b byte) rune {
	if b < 0x80 {
		return rune(b)
	}
	return iso88592Table[b-0x80]
}

// decodeEUCJP handles the ASCII subset exactly and replaces each byte with
// the high bit set, together with at most one high-bit byte right after
// it, by a single U+FFFD,
// matching the bounded-effort EUC-JP handling spec.md allows ("at least"
// support, not a full JIS X 0208 table).
func decodeEUCJP(data []byte) string {
	var sb strings.Builder
	i := 0
	for i < len(data) {
		if data[i] < 0x80 {
			sb.WriteByte(data[i])
			i++
			continue
		}
		sb.WriteRune(utf8.RuneError)
		i++
		if i < len(data) && data[i] >= 0x80 {
			i++
		}
	}
	return sb.String()
}

func decodeUTF16(data []byte, bigEndian bool) string {
	if len(data)%2 != 0 {
		data = append(data[:len(data):len(data)], 0)
	}
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		if bigEndian {
			units = append(units, uint16(data[i])<<8|uint16(data[i+1]))
		} else {
			units = append(units, uint16(data[i])|uint16(data[i+1])<<8)
		}
	}
	var sb strings.Builder
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] <= 0xDFFF:
			r := (rune(u-0xD800)<<10 | rune(units[i+1]-0xDC00)) + 0x10000
			sb.WriteRune(r)
			i++
		case u >= 0xD800 && u <= 0xDFFF:
			sb.WriteRune(utf8.RuneError)
		default:
			sb.WriteRune(rune(u))
		}
	}
	return sb.String()
}

// iso88592Table maps bytes 0x80-0xFF to their Unicode code points for
// ISO-8859-2 (Latin-2).
var iso88592Table = [128]rune{
	0x0080, 0x0081, 0x0082, 0x0083, 0x0084, 0x0085, 0x0086, 0x0087,
	0x0088, 0x0089, 0x008A, 0x008B, 0x008C, 0x008D, 0x008E, 0x008F,
	0x0090, 0x0091, 0x0092, 0x0093, 0x0094, 0x0095, 0x0096, 0x0097,
	0x0098, 0x0099, 0x009A, 0x009B, 0x009C, 0x009D, 0x009E, 0x009F,
	0x00A0, 0x0104, 0x02D8, 0x0141, 0x00A4, 0x013D, 0x015A, 0x00A7,
	0x00A8, 0x0160, 0x015E, 0x0164, 0x0179, 0x00AD, 0x017D, 0x017B,
	0x00B0, 0x0105, 0x02DB, 0x0142, 0x00B4, 0x013E, 0x015B, 0x02C7,
	0x00B8, 0x0161, 0x015F, 0x0165, 0x017A, 0x02DD, 0x017E, 0x017C,
	0x0154, 0x00C1, 0x00C2, 0x0102, 0x00C4, 0x0139, 0x0106, 0x00C7,
	0x010C, 0x00C9, 0x0118, 0x00CB, 0x011A, 0x00CD, 0x00CE, 0x010E,
	0x0110, 0x0143, 0x0147, 0x00D3, 0x00D4, 0x0150, 0x00D6, 0x00D7,
	0x0158, 0x016E, 0x00DA, 0x0170, 0x00DC, 0x00DD, 0x0162, 0x00DF,
	0x0155, 0x00E1, 0x00E2, 0x0103, 0x00E4, 0x013A, 0x0107, 0x00E7,
	0x010D, 0x00E9, 0x0119, 0x00EB, 0x011B, 0x00ED, 0x00EE, 0x010F,
	0x0111, 0x0144, 0x0148, 0x00F3, 0x00F4, 0x0151, 0x00F6, 0x00F7,
	0x0159, 0x016F, 0x00FA, 0x0171, 0x00FC, 0x00FD, 0x0163, 0x02D9,
}
