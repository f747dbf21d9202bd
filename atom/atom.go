// Package atom interns the HTML/SVG/MathML tag names the tree builder
// and tokenizer dispatch on, so hot-path comparisons are
// integer comparisons instead of string comparisons — the same tradeoff
// golang.org/x/net/html/atom makes, sized here to the set of names this
// module's insertion-mode and foreign-content tables actually switch on.
package atom

// Atom identifies an interned, lowercase tag name. The zero
// value, Zero, means "not one of the interned names" — callers fall back
// to comparing the original string in that case.
type Atom int

const (
	Zero Atom = iota

	A
	Address
	Altglyph
	Annotationxml
	Applet
	Area
	Article
	Aside
	B
	Base
	Basefont
	Bgsound
	Big
	Blockquote
	Body
	Br
	Button
	Caption
	Center
	Clipath
	Code
	Col
	Colgroup
	Dd
	Details
	Dialog
	Dir
	Div
	Dl
	Dt
	Em
	Embed
	Fieldset
	Figcaption
	Figure
	Font
	Footer
	Foreignobject
	Form
	Frame
	Frameset
	H1
	H2
	H3
	H4
	H5
	H6
	Head
	Header
	Hgroup
	Hr
	Html
	I
	Iframe
	Image
	Img
	Input
	Isindex
	Keygen
	Li
	Link
	Listing
	Main
	Malignmark
	Marquee
	Math
	Menu
	Meta
	Mglyph
	Mi
	Mn
	Mo
	Ms
	Mtext
	Nav
	Nobr
	Noembed
	Noframes
	Noscript
	Object
	Ol
	Optgroup
	Option
	P
	Param
	Plaintext
	Pre
	Rb
	Rp
	Rt
	Rtc
	Ruby
	S
	Script
	Section
	Select
	Small
	Source
	Span
	Strike
	Strong
	Style
	Summary
	Sup
	Svg
	Table
	Tbody
	Td
	Template
	Textarea
	Tfoot
	Th
	Thead
	Title
	Tr
	Track
	Tt
	U
	Ul
	Var
	Wbr
	Xmp

	maxAtom
)

var names = [maxAtom]string{
	Zero:          "",
	A:             "a",
	Address:       "address",
	Altglyph:      "altglyph",
	Annotationxml: "annotation-xml",
	Applet:        "applet",
	Area:          "area",
	Article:       "article",
	Aside:         "aside",
	B:             "b",
	Base:          "base",
	Basefont:      "basefont",
	Bgsound:       "bgsound",
	Big:           "big",
	Blockquote:    "blockquote",
	Body:          "body",
	Br:            "br",
	Button:        "button",
	Caption:       "caption",
	Center:        "center",
	Clipath:       "clippath",
	Code:          "code",
	Col:           "col",
	Colgroup:      "colgroup",
	Dd:            "dd",
	Details:       "details",
	Dialog:        "dialog",
	Dir:           "dir",
	Div:           "div",
	Dl:            "dl",
	Dt:            "dt",
	Em:            "em",
	Embed:         "embed",
	Fieldset:      "fieldset",
	Figcaption:    "figcaption",
	Figure:        "figure",
	Font:          "font",
	Footer:        "footer",
	Foreignobject: "foreignobject",
	Form:          "form",
	Frame:         "frame",
	Frameset:      "frameset",
	H1:            "h1",
	H2:            "h2",
	H3:            "h3",
	H4:            "h4",
	H5:            "h5",
	H6:            "h6",
	Head:          "head",
	Header:        "header",
	Hgroup:        "hgroup",
	Hr:            "hr",
	Html:          "html",
	I:             "i",
	Iframe:        "iframe",
	Image:         "image",
	Img:           "img",
	Input:         "input",
	Isindex:       "isindex",
	Keygen:        "keygen",
	Li:            "li",
	Link:          "link",
	Listing:       "listing",
	Main:          "main",
	Malignmark:    "malignmark",
	Marquee:       "marquee",
	Math:          "math",
	Menu:          "menu",
	Meta:          "meta",
	Mglyph:        "mglyph",
	Mi:            "mi",
	Mn:            "mn",
	Mo:            "mo",
	Ms:            "ms",
	Mtext:         "mtext",
	Nav:           "nav",
	Nobr:          "nobr",
	Noembed:       "noembed",
	Noframes:      "noframes",
	Noscript:      "noscript",
	Object:        "object",
	Ol:            "ol",
	Optgroup:      "optgroup",
	Option:        "option",
	P:             "p",
	Param:         "param",
	Plaintext:     "plaintext",
	Pre:           "pre",
	Rb:            "rb",
	Rp:            "rp",
	Rt:            "rt",
	Rtc:           "rtc",
	Ruby:          "ruby",
	S:             "s",
	Script:        "script",
	Section:       "section",
	Select:        "select",
	Small:         "small",
	Source:        "source",
	Span:          "span",
	Strike:        "strike",
	Strong:        "strong",
	Style:         "style",
	Summary:       "summary",
	Sup:           "sup",
	Svg:           "svg",
	Table:         "table",
	Tbody:         "tbody",
	Td:            "td",
	Template:      "template",
	Textarea:      "textarea",
	Tfoot:         "tfoot",
	Th:            "th",
	Thead:         "thead",
	Title:         "title",
	Tr:            "tr",
	Track:         "track",
	Tt:            "tt",
	U:             "u",
	Ul:            "ul",
	Var:           "var",
	Wbr:           "wbr",
	Xmp:           "xmp",
}

var byName map[string]Atom

func init() {
	byName = make(map[string]Atom, len(names))
	for a, n := range names {
		if n != "" {
			byName[n] = Atom(a)
		}
	}
}

// String returns the interned name, or "" for Zero.
func (a Atom) String() string {
	if a < 0 || int(a) >= len(names) {
		return ""
	}
	return names[a]
}

// Lookup returns the Atom for an already-lowercased tag name,
// or Zero if it is not interned.
func Lookup(name string) Atom {
	return byName[name]
}

var voidAtoms = map[Atom]bool{
	Area: true, Base: true, Br: true, Col: true, Embed: true,
	Hr: true, Img: true, Input: true, Link: true, Meta: true,
	Param: true, Source: true, Track: true, Wbr: true,
}

// IsVoid reports whether a is one of the 14 HTML void elements.
func (a Atom) IsVoid() bool { return voidAtoms[a] }

var specialAtoms = map[Atom]bool{
	Address: true, Applet: true, Area: true, Article: true, Aside: true,
	Base: true, Basefont: true, Bgsound: true, Blockquote: true, Body: true,
	Br: true, Button: true, Caption: true, Center: true, Col: true,
	Colgroup: true, Dd: true, Details: true, Dir: true, Div: true, Dl: true,
	Dt: true, Embed: true, Fieldset: true, Figcaption: true, Figure: true,
	Footer: true, Form: true, Frame: true, Frameset: true, H1: true, H2: true,
	H3: true, H4: true, H5: true, H6: true, Head: true, Header: true,
	Hgroup: true, Hr: true, Html: true, Iframe: true, Img: true, Input: true,
	Keygen: true, Li: true, Link: true, Listing: true, Main: true,
	Marquee: true, Menu: true, Meta: true, Nav: true, Noembed: true,
	Noframes: true, Noscript: true, Object: true, Ol: true, P: true,
	Param: true, Plaintext: true, Pre: true, Script: true, Section: true,
	Select: true, Source: true, Style: true, Summary: true, Table: true,
	Tbody: true, Td: true, Template: true, Textarea: true, Tfoot: true,
	Th: true, Thead: true, Title: true, Tr: true, Track: true, Ul: true,
	Wbr: true, Xmp: true,
}

// IsSpecial reports whether a is one of the tree construction stage's
// "special" elements, which bound implicit-close and scope algorithms.
func (a Atom) IsSpecial() bool { return specialAtoms[a] }
