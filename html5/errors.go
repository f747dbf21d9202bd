package html5

import "github.com/loxia-dev/html5/token"

// ParseError is one recoverable error surfaced from tokenization or tree
// construction. Parsing a real-world document invariably produces a
// handful of these; they never stop the parse, only record what
// deviated from well-formed input.
type ParseError struct {
	Code   string
	Line   int
	Column int
}

// Message returns a human-readable description of a known error code,
// falling back to the bare code for anything not in the table below.
func (e ParseError) Message() string {
	if m, ok := errorMessages[e.Code]; ok {
		return m
	}
	return e.Code
}

func (e ParseError) Error() string { return e.Message() }

var errorMessages = map[string]string{
	"unexpected-null-character":                    "unexpected NULL character",
	"eof-before-tag-name":                          "end of file before a tag name",
	"eof-in-tag":                                    "end of file inside a tag",
	"invalid-first-character-of-tag-name":           "invalid first character of a tag name",
	"unexpected-question-mark-instead-of-tag-name":  "\"?\" instead of a tag name",
	"missing-end-tag-name":                          "missing end tag name",
	"duplicate-attribute":                           "duplicate attribute on a tag",
	"unexpected-equals-sign-before-attribute-name":  "\"=\" before an attribute name",
	"unexpected-character-in-attribute-name":        "unexpected character in an attribute name",
	"missing-attribute-value":                       "missing attribute value",
	"unexpected-character-in-unquoted-attribute-value": "unexpected character in an unquoted attribute value",
	"missing-whitespace-between-attributes":         "missing whitespace between attributes",
	"unexpected-solidus-in-tag":                     "unexpected \"/\" in a tag",
	"incorrectly-opened-comment":                     "incorrectly opened comment",
	"abrupt-closing-of-empty-comment":               "abrupt closing of an empty comment",
	"eof-in-comment":                                "end of file inside a comment",
	"incorrectly-closed-comment":                    "incorrectly closed comment",
	"eof-in-doctype":                                "end of file inside a DOCTYPE",
	"missing-whitespace-before-doctype-name":        "missing whitespace before a DOCTYPE name",
	"missing-doctype-name":                          "missing DOCTYPE name",
	"missing-whitespace-after-doctype-public-keyword": "missing whitespace after \"PUBLIC\"",
	"missing-doctype-public-identifier":             "missing DOCTYPE public identifier",
	"missing-quote-before-doctype-public-identifier": "missing quote before a DOCTYPE public identifier",
	"abrupt-doctype-public-identifier":              "abrupt DOCTYPE public identifier",
	"missing-whitespace-between-doctype-public-and-system-identifiers": "missing whitespace between DOCTYPE public and system identifiers",
	"missing-whitespace-after-doctype-system-keyword": "missing whitespace after \"SYSTEM\"",
	"missing-doctype-system-identifier":             "missing DOCTYPE system identifier",
	"missing-quote-before-doctype-system-identifier": "missing quote before a DOCTYPE system identifier",
	"abrupt-doctype-system-identifier":              "abrupt DOCTYPE system identifier",
	"unexpected-character-after-doctype-system-identifier": "unexpected character after a DOCTYPE system identifier",
	"invalid-character-sequence-after-doctype-name": "invalid character sequence after a DOCTYPE name",
	"eof-in-cdata":                                  "end of file inside CDATA",
	"end-tag-with-trailing-solidus":                 "end tag with trailing solidus",
	"end-tag-with-attributes":                       "end tag with attributes",
	"eof-in-script-html-comment-like-text":          "end of file in script HTML comment-like text",
	"missing-semicolon-after-character-reference":   "missing semicolon after a character reference",
	"absence-of-digits-in-numeric-character-reference": "no digits in a numeric character reference",
	"null-character-reference":                      "character reference resolved to NULL",
	"character-reference-outside-unicode-range":     "character reference outside the Unicode range",
	"surrogate-character-reference":                 "character reference resolved to a surrogate",
	"control-character-reference":                   "character reference resolved to a control character",
	"noncharacter-character-reference":              "character reference resolved to a noncharacter",
	"unknown-named-character-reference":             "unknown named character reference",
	"doctype-in-before-html":                        "DOCTYPE in the before html insertion mode",
	"unexpected-end-tag-before-html":                "unexpected end tag before html",
	"doctype-in-before-head":                        "DOCTYPE in the before head insertion mode",
	"unexpected-end-tag-before-head":                "unexpected end tag before head",
	"doctype-in-head":                               "DOCTYPE in the in head insertion mode",
	"unexpected-start-tag-head":                      "unexpected start tag head",
	"unexpected-end-tag-in-head":                     "unexpected end tag in the in head insertion mode",
	"unexpected-end-tag-template":                   "unexpected end tag template",
	"unexpected-start-tag-in-head-noscript":         "unexpected start tag in the in head noscript insertion mode",
	"unexpected-end-tag-in-head-noscript":           "unexpected end tag in the in head noscript insertion mode",
	"unexpected-token-in-head-noscript":             "unexpected token in the in head noscript insertion mode",
	"doctype-after-head":                            "DOCTYPE after head",
	"unexpected-start-tag-after-head":               "unexpected start tag after head",
	"unexpected-start-tag-head-after-head":          "unexpected start tag head after head",
	"unexpected-end-tag-after-head":                 "unexpected end tag after head",
	"eof-in-text-mode":                              "end of file in text insertion mode",
	"unexpected-doctype":                            "unexpected DOCTYPE",
	"unexpected-start-tag-html":                     "unexpected start tag html",
	"unexpected-start-tag-body":                     "unexpected start tag body",
	"unexpected-start-tag-frameset":                 "unexpected start tag frameset",
	"unexpected-start-tag-heading":                  "unexpected heading start tag",
	"unexpected-start-tag-form":                     "unexpected start tag form",
	"unexpected-implied-end-tag-li":                 "unexpected implied end tag while closing li",
	"unexpected-implied-end-tag":                     "unexpected implied end tag",
	"unexpected-start-tag-button":                   "unexpected start tag button",
	"unexpected-start-tag-a-in-a-scope":             "unexpected start tag a in an a element's scope",
	"unexpected-start-tag-nobr-in-scope":            "unexpected start tag nobr while one is in scope",
	"unexpected-start-tag-image":                    "unexpected start tag image",
	"unexpected-hidden-input-in-table":              "unexpected hidden input inside a table",
	"unexpected-form-in-table":                       "unexpected form start tag inside a table",
	"unexpected-start-tag-table-in-table":           "unexpected start tag table inside a table",
	"unexpected-end-tag-table":                       "unexpected end tag table",
	"unexpected-end-tag-in-table":                    "unexpected end tag in the in table insertion mode",
	"foster-parenting-in-table":                      "foster parenting a token out of a table",
	"unexpected-doctype-in-table":                    "unexpected DOCTYPE in a table",
	"unexpected-character-in-table":                 "unexpected non-whitespace character in a table",
	"unexpected-end-tag-in-caption":                 "unexpected end tag in a caption",
	"unexpected-doctype-in-colgroup":                "unexpected DOCTYPE in a column group",
	"unexpected-end-tag-colgroup":                    "unexpected end tag colgroup",
	"unexpected-end-tag-col":                         "unexpected end tag col",
	"unexpected-cell-in-table-body":                 "unexpected table cell start tag in table body",
	"unexpected-end-tag-in-table-body":              "unexpected end tag in table body",
	"unexpected-end-tag-tr":                          "unexpected end tag tr",
	"unexpected-end-tag-in-row":                      "unexpected end tag in table row",
	"unexpected-end-tag-cell":                        "unexpected end tag for a table cell",
	"unexpected-end-tag-in-cell":                     "unexpected end tag in a table cell",
	"unexpected-start-tag-select-in-select":         "unexpected start tag select while one is open",
	"unexpected-start-tag-in-select":                "unexpected start tag in select",
	"unexpected-end-tag-optgroup":                    "unexpected end tag optgroup",
	"unexpected-end-tag-option":                      "unexpected end tag option",
	"unexpected-end-tag-select":                      "unexpected end tag select",
	"unexpected-end-tag-in-select":                    "unexpected end tag in select",
	"unexpected-start-tag-in-select-in-table":       "unexpected start tag in select inside a table",
	"unexpected-end-tag-in-select-in-table":         "unexpected end tag in select inside a table",
	"unexpected-end-tag-in-template":                "unexpected end tag in a template",
	"eof-in-template":                                "end of file inside a template",
	"unexpected-end-tag-body":                        "unexpected end tag body",
	"unexpected-end-tag-html":                        "unexpected end tag html",
	"unexpected-end-tag-form":                        "unexpected end tag form",
	"unexpected-end-tag-p":                           "unexpected end tag p",
	"unexpected-end-tag-li":                          "unexpected end tag li",
	"unexpected-end-tag-heading":                     "unexpected heading end tag",
	"unexpected-end-tag-br":                          "unexpected end tag br",
	"unexpected-end-tag":                              "unexpected end tag",
	"end-tag-body-not-all-closed":                    "end tag body with unclosed elements remaining",
	"unexpected-token-after-body":                    "unexpected token after body",
	"unexpected-doctype-after-body":                  "unexpected DOCTYPE after body",
	"unexpected-token-after-after-body":              "unexpected token after the body has already been closed",
	"unexpected-doctype-in-frameset":                 "unexpected DOCTYPE in a frameset",
	"unexpected-start-tag-in-frameset":               "unexpected start tag in a frameset",
	"unexpected-end-tag-frameset":                     "unexpected end tag frameset",
	"unexpected-end-tag-in-frameset":                 "unexpected end tag in a frameset",
	"unexpected-doctype-after-frameset":              "unexpected DOCTYPE after frameset",
	"unexpected-start-tag-after-frameset":            "unexpected start tag after frameset",
	"unexpected-end-tag-after-frameset":              "unexpected end tag after frameset",
	"unexpected-token-after-after-frameset":          "unexpected token after a frameset document is complete",
	"unexpected-doctype-in-foreign-content":          "unexpected DOCTYPE in foreign content",
	"html-start-tag-in-foreign-content":              "HTML start tag breaking out of foreign content",
	"unexpected-end-tag-in-foreign-content":          "unexpected end tag in foreign content",
	"adoption-agency-formatting-not-in-stack":        "adoption agency: formatting element not on the stack of open elements",
	"adoption-agency-formatting-not-in-scope":        "adoption agency: formatting element not in scope",
	"adoption-agency-formatting-not-current":         "adoption agency: formatting element is not the current node",
	"unexpected-start-tag-in-body":                   "unexpected start tag in the in body insertion mode",
}

// convertTokenErrors adapts the tokenizer's error type into ParseError;
// both share the same Code/Line/Column shape, kept as distinct types so
// package token doesn't need to depend on package html5.
func convertTokenErrors(errs []token.ParseError) []ParseError {
	out := make([]ParseError, len(errs))
	for i, e := range errs {
		out[i] = ParseError{Code: e.Code, Line: e.Line, Column: e.Column}
	}
	return out
}
