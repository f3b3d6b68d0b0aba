package md2html

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownRenderer abstracts Markdown to HTML conversion.
type markdownRenderer interface {
	RenderHTML(content string) (string, error)
}

// goldmarkRenderer converts Markdown to an HTML fragment using goldmark
// (pure Go).
type goldmarkRenderer struct {
	md goldmark.Markdown
}

// newGoldmarkRenderer creates a renderer with GFM extensions, smart
// punctuation, and raw-HTML passthrough.
//
// WithUnsafe is required: the fence extractor injects highlighted
// blocks as raw HTML ahead of rendering, and escaping them here would
// destroy the highlighting.
func newGoldmarkRenderer() *goldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,         // Tables, strikethrough, autolinks, task lists
			extension.Typographer, // Curly quotes, en/em dashes, ellipses
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // Pass injected highlight blocks through untouched
			html.WithXHTML(),  // Self-closing tags
		),
	)
	return &goldmarkRenderer{md: md}
}

// RenderHTML converts Markdown content to an HTML fragment. The tidier
// owns final document shaping, so no <html>/<body> wrapper is added.
func (r *goldmarkRenderer) RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}
