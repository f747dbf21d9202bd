// Package token implements the byte-level HTML5 tokenizer (C3): the 70+
// states of the WHATWG tokenization algorithm, batch-scanned for
// throughput, with in-band character-reference decoding and external
// state switching driven by the tree construction stage.
package token

import "github.com/loxia-dev/html5/node"

// Type identifies a token kind.
type Type int

const (
	EOF Type = iota
	Text
	StartTag
	EndTag
	Comment
	Doctype
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Text:
		return "Text"
	case StartTag:
		return "StartTag"
	case EndTag:
		return "EndTag"
	case Comment:
		return "Comment"
	case Doctype:
		return "Doctype"
	default:
		return "Unknown"
	}
}

// Token is the tokenizer's output unit. Which fields apply depends on
// Type: Data holds the run of text for Text, or the comment body for
// Comment; Name and Attr apply to StartTag/EndTag; Doctype applies to
// Doctype tokens.
type Token struct {
	Type        Type
	Name        string
	Data        string
	Attr        []node.Attribute
	SelfClosing bool
	Doctype     *node.Doctype
}

// ParseError is a recoverable tokenization error. The tokenizer always
// applies the spec-mandated recovery regardless of whether errors are
// being collected; CollectErrors just controls whether instances are recorded.
type ParseError struct {
	Code   string
	Line   int
	Column int
}

func (e ParseError) Error() string { return e.Code }
