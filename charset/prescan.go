package charset

import "bytes"

// prescanMetaCharset scans at most maxNonCommentScan non-comment bytes (and
// never more than maxTotalScan bytes total) looking for a <meta charset>
// or <meta http-equiv=Content-Type content=...charset=...> declaration,
// per spec.md §4.2. It returns nil if none is found within the bounds.
func prescanMetaCharset(data []byte) *Encoding {
	n := len(data)
	i, nonComment := 0, 0

	for i < n && i < maxTotalScan && nonComment < maxNonCommentScan {
		if data[i] != '<' {
			i++
			nonComment++
			continue
		}

		if i+3 < n && data[i+1] == '!' && data[i+2] == '-' && data[i+3] == '-' {
			end := bytes.Index(data[i+4:], []byte("-->"))
			if end == -1 {
				return nil
			}
			i = i + 4 + end + 3
			continue
		}

		j := i + 1
		if j < n && data[j] == '/' {
			k := skipTag(data, i, n, &nonComment)
			i = k
			continue
		}

		if j >= n || !isASCIIAlpha(data[j]) {
			i++
			nonComment++
			continue
		}

		nameStart := j
		for j < n && isASCIIAlpha(data[j]) {
			j++
		}
		if !bytes.EqualFold(data[nameStart:j], []byte("meta")) {
			i = skipTag(data, i, n, &nonComment)
			continue
		}

		charset, httpEquiv, content, sawGT, consumedTo := scanMetaAttrs(data, j, n)
		if sawGT {
			if charset != "" {
				if enc := normalizeMetaDeclared(charset); enc != nil {
					return enc
				}
			}
			if httpEquiv != "" && equalFoldString(httpEquiv, "content-type") && content != "" {
				if extracted := extractCharsetFromContent(content); extracted != "" {
					if enc := normalizeMetaDeclared(extracted); enc != nil {
						return enc
					}
				}
			}
			nonComment += consumedTo - i
			i = consumedTo
		} else {
			i++
			nonComment++
		}
	}

	return nil
}

// skipTag advances past an end tag or a non-meta start tag, respecting
// quoted attribute values, and returns the new scan position.
func skipTag(data []byte, i, n int, nonComment *int) int {
	k := i
	var quote byte
	for k < n && k < maxTotalScan && *nonComment < maxNonCommentScan {
		ch := data[k]
		if quote == 0 {
			if ch == '"' || ch == '\'' {
				quote = ch
			} else if ch == '>' {
				k++
				*nonComment++
				break
			}
		} else if ch == quote {
			quote = 0
		}
		k++
		*nonComment++
	}
	return k
}

// scanMetaAttrs parses attributes of a <meta ...> tag starting at position
// j (just after "meta"), collecting charset/http-equiv/content, bounded by
// maxTotalScan. It returns the three attribute values (empty if absent),
// whether a closing '>' was found, and the position just past it.
func scanMetaAttrs(data []byte, j, n int) (charset, httpEquiv, content string, sawGT bool, pos int) {
	k := j
	for k < n && k < maxTotalScan {
		ch := data[k]
		if ch == '>' {
			return charset, httpEquiv, content, true, k + 1
		}
		if ch == '<' {
			return "", "", "", false, k
		}
		if isASCIIWhitespace(ch) || ch == '/' {
			k++
			continue
		}

		attrStart := k
		for k < n {
			ch = data[k]
			if isASCIIWhitespace(ch) || ch == '=' || ch == '>' || ch == '/' || ch == '<' {
				break
			}
			k++
		}
		attrName := asciiLowerString(data[attrStart:k])
		k = skipASCIIWhitespace(data, k, n)

		var value []byte
		if k < n && data[k] == '=' {
			k++
			k = skipASCIIWhitespace(data, k, n)
			if k >= n {
				break
			}
			if data[k] == '"' || data[k] == '\'' {
				quote := data[k]
				k++
				valStart := k
				end := bytes.IndexByte(data[k:], quote)
				if end == -1 {
					return "", "", "", false, k
				}
				value = data[valStart : k+end]
				k = k + end + 1
			} else {
				valStart := k
				for k < n && !isASCIIWhitespace(data[k]) && data[k] != '>' && data[k] != '<' {
					k++
				}
				value = data[valStart:k]
			}
		}

		switch attrName {
		case "charset":
			charset = string(stripASCIIWhitespace(value))
		case "http-equiv":
			httpEquiv = string(value)
		case "content":
			content = string(value)
		}
	}
	return "", "", "", false, k
}

// extractCharsetFromContent pulls a charset= value out of a meta
// http-equiv="Content-Type" content="text/html; charset=..." attribute.
func extractCharsetFromContent(content string) string {
	b := []byte(content)
	norm := make([]byte, len(b))
	for i, c := range b {
		if isASCIIWhitespace(c) {
			norm[i] = ' '
		} else {
			norm[i] = asciiLower(c)
		}
	}

	idx := bytes.Index(norm, []byte("charset"))
	if idx == -1 {
		return ""
	}
	i := idx + len("charset")
	n := len(norm)

	for i < n && norm[i] == ' ' {
		i++
	}
	if i >= n || norm[i] != '=' {
		return ""
	}
	i++
	for i < n && norm[i] == ' ' {
		i++
	}
	if i >= n {
		return ""
	}

	var quote byte
	if norm[i] == '"' || norm[i] == '\'' {
		quote = norm[i]
		i++
	}
	start := i
	for i < n {
		ch := norm[i]
		if quote != 0 {
			if ch == quote {
				break
			}
		} else if ch == ' ' || ch == ';' {
			break
		}
		i++
	}
	if quote != 0 && (i >= n || norm[i] != quote) {
		return ""
	}
	return string(norm[start:i])
}

func isASCIIWhitespace(b byte) bool {
	return b == 0x09 || b == 0x0A || b == 0x0C || b == 0x0D || b == 0x20
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b | 0x20
	}
	return b
}

func asciiLowerString(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = asciiLower(c)
	}
	return string(out)
}

func skipASCIIWhitespace(data []byte, i, n int) int {
	for i < n && isASCIIWhitespace(data[i]) {
		i++
	}
	return i
}

func stripASCIIWhitespace(value []byte) []byte {
	start, end := 0, len(value)
	for start < end && isASCIIWhitespace(value[start]) {
		start++
	}
	for end > start && isASCIIWhitespace(value[end-1]) {
		end--
	}
	return value[start:end]
}

func equalFoldString(a, b string) bool {
	return bytes.EqualFold([]byte(a), []byte(b))
}
