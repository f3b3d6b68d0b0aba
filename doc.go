// Package md2html converts Markdown documents to tidied, syntax-highlighted HTML.
//
// # Quick Start
//
// Create a service and render markdown:
//
//	svc := md2html.New()
//	out, err := svc.Render("# Hello\n\nWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
// The result is an indented, body-only HTML fragment ready to embed in
// a page or a knowledge base.
//
// # Conversion Pipeline
//
// Rendering follows three stages, each consuming the complete output of
// the previous one:
//
//  1. Fence extraction: fenced code blocks are replaced in the raw
//     Markdown with highlighted HTML via Chroma (inline styles, no CSS
//     classes). Unknown or missing language tags degrade to plain text.
//  2. Markdown to HTML conversion via Goldmark (GFM extensions, smart
//     punctuation, raw-HTML passthrough for the injected blocks).
//  3. HTML tidying: the fragment is reparsed and pretty-printed with
//     one block element per line and automatic indentation.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2html.New(
//	    md2html.WithTheme("monokai"),
//	    md2html.WithIndent(4),
//	)
//
// # Concurrency
//
// The pipeline is fully synchronous and holds no shared mutable state:
// every stage takes an immutable input string and returns a new output
// string. A Render call never spawns goroutines, blocks on I/O, or
// needs cancellation.
package md2html
