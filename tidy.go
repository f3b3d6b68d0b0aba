package md2html

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlTidier abstracts HTML pretty-printing.
type htmlTidier interface {
	TidyHTML(content string) (string, error)
}

// treeTidier reformats an HTML fragment by reparsing it and laying it
// out again: block elements one per line with automatic indentation,
// runs of inline content kept on a single line, <pre> subtrees
// serialized untouched. Output is body-only markup with no generator
// comments, and tidying is idempotent: the structural whitespace the
// printer inserts is exactly the whitespace it drops on reparse.
type treeTidier struct {
	indent string
}

// newTreeTidier creates a tidier indenting by width spaces per level.
func newTreeTidier(width int) *treeTidier {
	return &treeTidier{indent: strings.Repeat(" ", width)}
}

// blockTags lists elements always placed on their own line. Everything
// else (text, spans, links, code, images) is inline and stays within
// its parent's line.
var blockTags = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true,
	atom.Blockquote: true, atom.Details: true, atom.Div: true,
	atom.Dd: true, atom.Dl: true, atom.Dt: true,
	atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true,
	atom.Footer: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true,
	atom.Main: true, atom.Nav: true, atom.Ol: true,
	atom.P: true, atom.Pre: true, atom.Section: true,
	atom.Table: true, atom.Tbody: true, atom.Td: true,
	atom.Tfoot: true, atom.Th: true, atom.Thead: true,
	atom.Tr: true, atom.Ul: true,
}

// TidyHTML parses content as body content and pretty-prints it.
func (t *treeTidier) TidyHTML(content string) (string, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTidy, err)
	}

	var b strings.Builder
	t.writeNodes(&b, nodes, 0)
	return strings.TrimRight(b.String(), "\n"), nil
}

// writeNodes lays out a sibling list: block elements one per line,
// maximal runs of consecutive inline nodes grouped onto a single line.
// Whitespace-only text between blocks is structural and dropped.
func (t *treeTidier) writeNodes(b *strings.Builder, nodes []*html.Node, depth int) {
	var run []*html.Node

	flush := func() {
		if len(run) == 0 {
			return
		}
		t.writeIndent(b, depth)
		for i, n := range run {
			t.renderInline(b, n, i == 0, i == len(run)-1)
		}
		b.WriteString("\n")
		run = nil
	}

	for _, n := range nodes {
		if isBlankText(n) {
			continue
		}
		if isBlock(n) {
			flush()
			t.writeBlock(b, n, depth)
			continue
		}
		run = append(run, n)
	}
	flush()
}

// writeBlock emits one block element. Elements whose content is purely
// inline are serialized onto a single line; elements containing nested
// blocks open and close on their own lines with children indented one
// level deeper. Pre content is significant whitespace and is never
// reflowed.
func (t *treeTidier) writeBlock(b *strings.Builder, n *html.Node, depth int) {
	t.writeIndent(b, depth)

	if n.DataAtom == atom.Pre || !hasBlockChildren(n) {
		// html.Render handles attribute and text escaping.
		_ = html.Render(b, n)
		b.WriteString("\n")
		return
	}

	writeOpenTag(b, n)
	b.WriteString("\n")
	t.writeNodes(b, childNodes(n), depth+1)
	t.writeIndent(b, depth)
	fmt.Fprintf(b, "</%s>\n", n.Data)
}

// renderInline emits one node of an inline run. Text at the edges of a
// run is trimmed of the structural whitespace a previous tidy pass (or
// the renderer) may have inserted, which keeps tidying idempotent.
func (t *treeTidier) renderInline(b *strings.Builder, n *html.Node, first, last bool) {
	if n.Type == html.TextNode {
		text := n.Data
		if first {
			text = strings.TrimLeft(text, " \t\n")
		}
		if last {
			text = strings.TrimRight(text, " \t\n")
		}
		b.WriteString(html.EscapeString(text))
		return
	}
	// strings.Builder never returns a write error.
	_ = html.Render(b, n)
}

func (t *treeTidier) writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(t.indent)
	}
}

func writeOpenTag(b *strings.Builder, n *html.Node) {
	b.WriteString("<")
	b.WriteString(n.Data)
	for _, a := range n.Attr {
		fmt.Fprintf(b, " %s=\"%s\"", a.Key, html.EscapeString(a.Val))
	}
	b.WriteString(">")
}

func childNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

func isBlock(n *html.Node) bool {
	return n.Type == html.ElementNode && blockTags[n.DataAtom]
}

func hasBlockChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isBlock(c) {
			return true
		}
	}
	return false
}

func isBlankText(n *html.Node) bool {
	return n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
}
