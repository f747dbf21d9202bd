// Command html5dump parses an HTML document and prints it in the
// html5lib tree-construction test format, optionally filtering which
// elements are shown by an expr-lang expression evaluated against each
// element's tag name and attributes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/expr-lang/expr"
	"github.com/sirupsen/logrus"

	"github.com/loxia-dev/html5/html5"
	"github.com/loxia-dev/html5/node"
)

func main() {
	var (
		encoding  = flag.String("encoding", "", "transport-declared charset label, e.g. utf-8")
		srcdoc    = flag.Bool("iframe-srcdoc", false, "parse as an iframe srcdoc document (suppresses quirks mode)")
		scripting = flag.Bool("scripting", false, "enable the scripting flag (affects <noscript> tokenization)")
		filterSrc = flag.String("filter", "", "expr-lang expression over {tag, attrs}; elements where it's false are dropped")
		verbose   = flag.Bool("v", false, "log encoding detection and parse errors to stderr")
	)
	flag.Parse()

	logger := logrus.New()
	if !*verbose {
		logger.SetOutput(io.Discard)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	var opts []html5.Option
	if *encoding != "" {
		opts = append(opts, html5.WithTransportEncoding(*encoding))
	}
	if *srcdoc {
		opts = append(opts, html5.WithIFrameSrcdoc())
	}
	if *scripting {
		opts = append(opts, html5.WithScriptingEnabled())
	}
	opts = append(opts, html5.WithLogger(logger))

	var filterProgram *vmProgram
	if *filterSrc != "" {
		p, err := compileFilter(*filterSrc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "html5dump: bad --filter expression: %v\n", err)
			os.Exit(2)
		}
		filterProgram = p
	}

	doc, err := html5.Parse(os.Stdin, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "html5dump: %v\n", err)
		os.Exit(1)
	}

	for _, e := range doc.Errors {
		logger.WithField("line", e.Line).WithField("col", e.Column).Warn(e.Message())
	}

	root := doc.Root
	if filterProgram != nil {
		root = filterTree(root, filterProgram)
	}
	fmt.Print(html5.Serialize(root))
}

type vmProgram struct {
	run func(tag string, attrs map[string]string) (bool, error)
}

func compileFilter(src string) (*vmProgram, error) {
	env := map[string]any{"tag": "", "attrs": map[string]string{}}
	program, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &vmProgram{
		run: func(tag string, attrs map[string]string) (bool, error) {
			out, err := expr.Run(program, map[string]any{"tag": tag, "attrs": attrs})
			if err != nil {
				return false, err
			}
			return out.(bool), nil
		},
	}, nil
}

// filterTree returns a copy of root in which every element the filter
// expression rejects is dropped together with its whole subtree (its
// text, comments and any descendants that would have matched); all other
// nodes are kept.
func filterTree(root *node.Node, p *vmProgram) *node.Node {
	out := node.NewDocument()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := filterNode(c, p); n != nil {
			out.AppendChild(n)
		}
	}
	return out
}

func filterNode(n *node.Node, p *vmProgram) *node.Node {
	if n.Type == node.ElementNode {
		attrs := make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			attrs[a.Name] = a.Val
		}
		keep, err := p.run(n.Data, attrs)
		if err != nil || !keep {
			return nil
		}
	}
	clone := node.Clone(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if fc := filterNode(c, p); fc != nil {
			clone.AppendChild(fc)
		}
	}
	return clone
}
