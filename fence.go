package md2html

import (
	"fmt"
	"strings"
)

// fenceDelimiter opens and closes a fenced code block when it occupies
// a full line.
const fenceDelimiter = "```"

// fenceExtractor abstracts the fence extraction stage.
type fenceExtractor interface {
	ExtractFences(content string) (string, error)
}

// scannerExtractor replaces fenced code blocks with highlighted HTML
// using a single-pass line scanner. Matching is deliberately strict: a
// fence line is exactly three backticks at the start of its own line,
// optionally followed by a lowercase ASCII language identifier, with
// nothing else on the line. Indented fences (list items, blockquotes)
// and CRLF-terminated fence lines are left for the Markdown renderer.
type scannerExtractor struct {
	highlighter codeHighlighter
}

// ExtractFences returns content with every well-formed fence replaced
// by one highlighted block, in document order. Text outside matched
// fences passes through unchanged, and a fence left open at EOF is
// replayed verbatim.
func (e *scannerExtractor) ExtractFences(content string) (string, error) {
	if !strings.Contains(content, fenceDelimiter) {
		return content, nil
	}

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		lang, ok := parseFenceOpen(lines[i])
		if !ok {
			out = append(out, lines[i])
			continue
		}

		// Non-greedy: the first closing line ends the block. Lines that
		// merely start with backticks (```go, ````) are body content.
		end := -1
		for j := i + 1; j < len(lines); j++ {
			if lines[j] == fenceDelimiter {
				end = j
				break
			}
		}
		if end < 0 {
			out = append(out, lines[i])
			continue
		}

		block, err := e.renderBlock(strings.Join(lines[i+1:end], "\n"), lang)
		if err != nil {
			return "", err
		}
		out = append(out, block)
		i = end
	}

	return strings.Join(out, "\n"), nil
}

// renderBlock wraps the highlighted body in the block markup the rest
// of the pipeline expects. The language class carries the declared
// identifier literally, even when it is empty or unrecognized.
func (e *scannerExtractor) renderBlock(body, lang string) (string, error) {
	highlighted, err := e.highlighter.Highlight(body, lang)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<pre class=\"highlight\"><code class=\"language-%s\">%s</code></pre>", lang, highlighted), nil
}

// parseFenceOpen reports whether line opens a fence and returns the
// declared language identifier (empty for a bare fence). No whitespace
// is trimmed: anything but three backticks plus [a-z]* is not a fence
// line.
func parseFenceOpen(line string) (lang string, ok bool) {
	if !strings.HasPrefix(line, fenceDelimiter) {
		return "", false
	}
	lang = line[len(fenceDelimiter):]
	for _, r := range lang {
		if r < 'a' || r > 'z' {
			return "", false
		}
	}
	return lang, true
}
