package md2html

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// codeHighlighter abstracts syntax highlighting of code bodies.
type codeHighlighter interface {
	Highlight(code, lang string) (string, error)
}

// chromaHighlighter renders code as an HTML fragment of inline-styled
// token spans. Styling is fully self-contained: no CSS classes, no
// stylesheet dependency, no outer wrapping element.
type chromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// newChromaHighlighter creates a highlighter for the named color theme.
// styles.Get falls back to the default style for unknown names.
func newChromaHighlighter(theme string) *chromaHighlighter {
	return &chromaHighlighter{
		style:     styles.Get(theme),
		formatter: chromahtml.New(chromahtml.PreventSurroundingPre(true)),
	}
}

// Highlight converts code to highlighted HTML. The lexer is resolved by
// the declared language name; an unknown or empty name degrades to the
// plaintext fallback lexer, which emits the body HTML-escaped with no
// token coloring. The caller owns any wrapper element.
func (h *chromaHighlighter) Highlight(code, lang string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	// Blank lines left over from the fence delimiters carry no code.
	code = strings.Trim(code, "\n")
	code += "\n"

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	return buf.String(), nil
}
