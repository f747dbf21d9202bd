package tree

import (
	"strings"

	"github.com/loxia-dev/html5/node"
	"github.com/loxia-dev/html5/token"
)

// isHTMLIntegrationOrMathMLText reports whether n is an "HTML
// integration point" or a MathML text integration point, either of
// which causes the tokenizer/tree-builder pair to treat its content as
// regular HTML rather than foreign content.
func isHTMLIntegrationOrMathMLText(n *node.Node) bool {
	if n == nil {
		return false
	}
	switch n.Namespace {
	case node.MathML:
		switch n.Data {
		case "mi", "mo", "mn", "ms", "mtext":
			return true
		case "annotation-xml":
			if enc, ok := n.Attribute("encoding"); ok {
				le := strings.ToLower(enc)
				if le == "text/html" || le == "application/xhtml+xml" {
					return true
				}
			}
		}
	case node.SVG:
		switch n.Data {
		case "foreignObject", "desc", "title":
			return true
		}
	}
	return false
}

// isMathMLTextBreakout reports the narrow carve-out where an mglyph or
// malignmark start tag inside a MathML text integration point is still
// processed as foreign content instead of HTML.
func isMathMLTextBreakout(n *node.Node, t token.Token) bool {
	if n.Namespace != node.MathML {
		return false
	}
	switch n.Data {
	case "mi", "mo", "mn", "ms", "mtext":
		return t.Name == "mglyph" || t.Name == "malignmark"
	}
	return false
}

var svgBreakoutTags = map[string]bool{
	"b": true, "big": true, "blockquote": true, "body": true, "br": true, "center": true,
	"code": true, "dd": true, "div": true, "dl": true, "dt": true, "em": true,
	"embed": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "hr": true, "i": true, "img": true, "li": true, "listing": true,
	"menu": true, "meta": true, "nobr": true, "ol": true, "p": true, "pre": true,
	"ruby": true, "s": true, "small": true, "span": true, "strong": true, "strike": true,
	"sub": true, "sup": true, "table": true, "tt": true, "u": true, "ul": true, "var": true,
}

// foreignContentIM implements the "tree construction rules for text and
// elements in foreign content" algorithm. It runs instead of the normal
// insertion-mode table whenever the adjusted current node is foreign and
// the token isn't one of the small set that always breaks out to HTML.
func foreignContentIM(b *Builder, t token.Token) bool {
	switch t.Type {
	case token.Text:
		if containsNull(t.Data) {
			t.Data = stripNull(t.Data)
			b.errorf("unexpected-null-character")
		}
		b.insertText(t.Data)
		if !isAllWhitespace(t.Data) {
			b.framesetOK = false
		}
		return true
	case token.Comment:
		b.insertComment(t.Data, nil)
		return true
	case token.Doctype:
		b.errorf("unexpected-doctype-in-foreign-content")
		return true
	case token.StartTag:
		if isForeignBreakout(t) {
			b.errorf("html-start-tag-in-foreign-content")
			for b.currentNode() != nil && !isHTMLIntegrationOrMathMLText(b.currentNode()) &&
				b.currentNode().Namespace != node.HTML {
				b.oe.pop()
			}
			return false
		}
		ns := b.currentNode().Namespace
		if ns == node.SVG {
			adjustSVGTagName(&t)
			adjustSVGAttributes(t.Attr)
		}
		adjustForeignAttributes(t.Attr)
		b.insertForeignElement(t, ns)
		if t.SelfClosing {
			if ns == node.SVG && t.Name == "script" {
				b.oe.pop()
			} else {
				b.oe.pop()
			}
		}
		return true
	case token.EndTag:
		return foreignEndTag(b, t)
	}
	return true
}

func isForeignBreakout(t token.Token) bool {
	switch t.Name {
	case "b", "big", "blockquote", "body", "br", "center", "code", "dd", "div", "dl",
		"dt", "em", "embed", "h1", "h2", "h3", "h4", "h5", "h6", "head", "hr", "i",
		"img", "li", "listing", "menu", "meta", "nobr", "ol", "p", "pre", "ruby", "s",
		"small", "span", "strong", "strike", "sub", "sup", "table", "tt", "u", "ul", "var":
		return true
	case "font":
		for _, a := range t.Attr {
			if a.Name == "color" || a.Name == "face" || a.Name == "size" {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func foreignEndTag(b *Builder, t token.Token) bool {
	if t.Name == "script" && b.currentNode().Namespace == node.SVG && b.currentNode().Data == "script" {
		b.oe.pop()
		return true
	}
	i := len(b.oe) - 1
	n := b.oe[i]
	if !strings.EqualFold(n.Data, t.Name) {
		b.errorf("unexpected-end-tag-in-foreign-content")
	}
	for {
		if strings.EqualFold(n.Data, t.Name) {
			for len(b.oe) > i {
				b.oe.pop()
			}
			return true
		}
		i--
		if i < 0 {
			return true
		}
		n = b.oe[i]
		if n.Namespace == node.HTML {
			return b.im(b, t)
		}
	}
}

var svgTagNameAdjustments = map[string]string{
	"altglyph": "altGlyph", "altglyphdef": "altGlyphDef", "altglyphitem": "altGlyphItem",
	"animatecolor": "animateColor", "animatemotion": "animateMotion",
	"animatetransform": "animateTransform", "clippath": "clipPath",
	"feblend": "feBlend", "fecolormatrix": "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer", "fecomposite": "feComposite",
	"feconvolvematrix": "feConvolveMatrix", "fediffuselighting": "feDiffuseLighting",
	"fedisplacementmap": "feDisplacementMap", "fedistantlight": "feDistantLight",
	"fedropshadow": "feDropShadow", "feflood": "feFlood", "fefunca": "feFuncA",
	"fefuncb": "feFuncB", "fefuncg": "feFuncG", "fefuncr": "feFuncR",
	"fegaussianblur": "feGaussianBlur", "feimage": "feImage", "femerge": "feMerge",
	"femergenode": "feMergeNode", "femorphology": "feMorphology", "feoffset": "feOffset",
	"fepointlight": "fePointLight", "fespecularlighting": "feSpecularLighting",
	"fespotlight": "feSpotLight", "fetile": "feTile", "feturbulence": "feTurbulence",
	"foreignobject": "foreignObject", "glyphref": "glyphRef", "lineargradient": "linearGradient",
	"radialgradient": "radialGradient", "textpath": "textPath",
}

func adjustSVGTagName(t *token.Token) {
	if adj, ok := svgTagNameAdjustments[t.Name]; ok {
		t.Name = adj
	}
}

var foreignAttrNamespaces = map[string][2]string{
	"xlink:actuate": {"xlink", "actuate"}, "xlink:arcrole": {"xlink", "arcrole"},
	"xlink:href": {"xlink", "href"}, "xlink:role": {"xlink", "role"},
	"xlink:show": {"xlink", "show"}, "xlink:title": {"xlink", "title"},
	"xlink:type": {"xlink", "type"}, "xml:lang": {"xml", "lang"},
	"xml:space": {"xml", "space"}, "xmlns": {"", "xmlns"}, "xmlns:xlink": {"xmlns", "xlink"},
}

// adjustForeignAttributes assigns namespace/prefix to the handful of
// foreign attributes (xlink:*, xml:*, xmlns*) the spec special-cases,
// leaving every other attribute's name untouched.
func adjustForeignAttributes(attrs []node.Attribute) {
	for i := range attrs {
		if np, ok := foreignAttrNamespaces[attrs[i].Name]; ok {
			attrs[i].Prefix = np[0]
			attrs[i].Name = np[1]
		}
	}
}

var svgAttrNameAdjustments = map[string]string{
	"attributename": "attributeName", "attributetype": "attributeType",
	"basefrequency": "baseFrequency", "baseprofile": "baseProfile", "calcmode": "calcMode",
	"clippathunits": "clipPathUnits", "diffuseconstant": "diffuseConstant",
	"edgemode": "edgeMode", "filterunits": "filterUnits", "glyphref": "glyphRef",
	"gradienttransform": "gradientTransform", "gradientunits": "gradientUnits",
	"kernelmatrix": "kernelMatrix", "kernelunitlength": "kernelUnitLength",
	"keypoints": "keyPoints", "keysplines": "keySplines", "keytimes": "keyTimes",
	"lengthadjust": "lengthAdjust", "limitingconeangle": "limitingConeAngle",
	"markerheight": "markerHeight", "markerunits": "markerUnits", "markerwidth": "markerWidth",
	"maskcontentunits": "maskContentUnits", "maskunits": "maskUnits",
	"numoctaves": "numOctaves", "pathlength": "pathLength",
	"patterncontentunits": "patternContentUnits", "patterntransform": "patternTransform",
	"patternunits": "patternUnits", "points": "points", "preservealpha": "preserveAlpha",
	"preserveaspectratio": "preserveAspectRatio", "primitiveunits": "primitiveUnits",
	"refx": "refX", "refy": "refY", "repeatcount": "repeatCount", "repeatdur": "repeatDur",
	"requiredextensions": "requiredExtensions", "requiredfeatures": "requiredFeatures",
	"specularconstant": "specularConstant", "specularexponent": "specularExponent",
	"spreadmethod": "spreadMethod", "startoffset": "startOffset",
	"stddeviation": "stdDeviation", "stitchtiles": "stitchTiles",
	"surfacescale": "surfaceScale", "systemlanguage": "systemLanguage",
	"tablevalues": "tableValues", "targetx": "targetX", "targety": "targetY",
	"textlength": "textLength", "viewbox": "viewBox", "viewtarget": "viewTarget",
	"xchannelselector": "xChannelSelector", "ychannelselector": "yChannelSelector",
	"zoomandpan": "zoomAndPan",
}

func adjustSVGAttributes(attrs []node.Attribute) {
	for i := range attrs {
		if adj, ok := svgAttrNameAdjustments[attrs[i].Name]; ok {
			attrs[i].Name = adj
		}
	}
}
