// Package html5 is the public entry point of the parser: Parse and
// ParseFragment drive package charset, package token and package tree
// together and hand back a parsed document tree plus any recoverable
// errors encountered along the way.
package html5

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/loxia-dev/html5/charset"
	"github.com/loxia-dev/html5/node"
	"github.com/loxia-dev/html5/token"
	"github.com/loxia-dev/html5/tree"
)

// ParsedDocument is the result of a successful Parse: the document tree
// (node.DocumentNode at the root), the detected encoding, the resolved
// quirks mode, and every recoverable parse error encountered.
type ParsedDocument struct {
	Root     *node.Node
	Encoding *charset.Encoding
	Quirks   node.QuirksMode
	Errors   []ParseError
}

type config struct {
	transportLabel string
	iframeSrcdoc   bool
	scripting      bool
	logger         *logrus.Logger
}

// Option configures a Parse/ParseFragment call.
type Option func(*config)

// WithTransportEncoding supplies the label a transport protocol (HTTP
// Content-Type charset parameter, for example) declared for the
// document, which takes precedence over BOM and <meta> sniffing.
func WithTransportEncoding(label string) Option {
	return func(c *config) { c.transportLabel = label }
}

// WithIFrameSrcdoc marks the document as being parsed from an iframe's
// srcdoc attribute, which suppresses quirks-mode detection.
func WithIFrameSrcdoc() Option {
	return func(c *config) { c.iframeSrcdoc = true }
}

// WithScriptingEnabled toggles the "scripting flag" the spec uses to
// choose how <noscript> is tokenized (as RAWTEXT vs. as ordinary
// content). Off by default, matching a scriptless user agent.
func WithScriptingEnabled() Option {
	return func(c *config) { c.scripting = true }
}

// WithLogger attaches a logrus logger. The parser logs only the detected
// encoding to it, at Debug level; parse errors are not logged and are
// returned in ParsedDocument.Errors. A nil logger (the default) disables it.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Parse reads r fully, sniffs its encoding per package charset, and
// parses it as a full HTML document.
func Parse(r io.Reader, opts ...Option) (*ParsedDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, opts...)
}

// ParseBytes is Parse over an in-memory byte slice.
func ParseBytes(data []byte, opts ...Option) (*ParsedDocument, error) {
	c := newConfig(opts)
	result := charset.Detect(data, c.transportLabel)
	if c.logger != nil {
		c.logger.WithField("encoding", result.Encoding.Name).Debug("html5: encoding detected")
	}

	tok := token.New(result.Text)
	tok.CollectErrors(true)

	b := tree.New(tok, c.iframeSrcdoc, c.scripting)

	runBuilder(tok, b, c.logger)

	return &ParsedDocument{
		Root:     b.Document,
		Encoding: result.Encoding,
		Quirks:   b.Quirks(),
		Errors:   append(convertTokenErrors(tok.Errors()), convertTokenErrors(b.Errors())...),
	}, nil
}

// ParseFragment parses input as the children of context, per the HTML5
// "fragment parsing algorithm" (used by innerHTML-style assignment).
// context is consulted for its tag name, its namespace and its nearest
// form ancestor; it is never itself attached to the returned fragment.
func ParseFragment(input string, context *node.Node, opts ...Option) (*node.Node, []ParseError, error) {
	c := newConfig(opts)
	result := charset.Detect([]byte(input), c.transportLabel)

	tok := token.New(result.Text)
	tok.CollectErrors(true)

	b := tree.NewFragment(tok, context, c.iframeSrcdoc, c.scripting)

	runBuilder(tok, b, c.logger)

	root := b.Document.FirstChild
	frag := node.NewDocumentFragment()
	if root != nil {
		node.ReparentChildren(frag, root)
	}
	errs := append(convertTokenErrors(tok.Errors()), convertTokenErrors(b.Errors())...)
	return frag, errs, nil
}

func runBuilder(tok *token.Tokenizer, b *tree.Builder, logger *logrus.Logger) {
	for {
		t := tok.Next()
		b.ProcessToken(t)
		if t.Type == token.EOF {
			return
		}
	}
}
