package md2html

import (
	"strings"
	"testing"
)

func TestGoldmarkRenderer_RenderHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "basic heading",
			input: "# Hello World",
			wantContains: []string{
				"<h1",
				"Hello World",
				"</h1>",
			},
			wantNot: []string{"<!DOCTYPE", "<html", "<body"},
		},
		{
			name:  "GFM table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{
				"<table>",
				"<thead>",
				"<tbody>",
				"<th>",
				"<td>",
			},
		},
		{
			name:  "GFM strikethrough",
			input: "~~deleted~~",
			wantContains: []string{
				"<del>",
				"deleted",
				"</del>",
			},
		},
		{
			name:  "GFM autolink",
			input: "Visit https://example.com for more",
			wantContains: []string{
				`<a href="https://example.com"`,
			},
		},
		{
			name:  "GFM task list",
			input: "- [x] Done\n- [ ] Todo",
			wantContains: []string{
				`type="checkbox"`,
			},
		},
		{
			name:  "smart quotes",
			input: `She said "hello" and left.`,
			wantContains: []string{
				"&ldquo;hello&rdquo;",
			},
			wantNot: []string{`"hello"`},
		},
		{
			name:  "smart apostrophe",
			input: "it's fine",
			wantContains: []string{
				"it&rsquo;s",
			},
		},
		{
			name:  "double hyphen becomes en dash",
			input: "pages 10 -- 20",
			wantContains: []string{
				"&ndash;",
			},
		},
		{
			name:  "triple hyphen becomes em dash",
			input: "wait --- now",
			wantContains: []string{
				"&mdash;",
			},
		},
		{
			name:  "raw html passes through",
			input: "before\n\n<div class=\"note\">kept</div>\n\nafter",
			wantContains: []string{
				`<div class="note">kept</div>`,
			},
			wantNot: []string{"&lt;div"},
		},
		{
			name:  "injected highlight block passes through",
			input: "<pre class=\"highlight\"><code class=\"language-go\"><span style=\"color:#008\">func</span>\n</code></pre>\n",
			wantContains: []string{
				`<pre class="highlight">`,
				`<span style="color:#008">func</span>`,
			},
			wantNot: []string{"&lt;span"},
		},
		{
			name:  "single newline stays a soft break",
			input: "Line one\nLine two",
			wantNot: []string{
				"<br",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newGoldmarkRenderer().RenderHTML(tt.input)
			if err != nil {
				t.Fatalf("RenderHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\noutput: %s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q\noutput: %s", not, got)
				}
			}
		})
	}
}

func TestGoldmarkRenderer_EmptyInput(t *testing.T) {
	t.Parallel()

	got, err := newGoldmarkRenderer().RenderHTML("")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("empty input should render empty output, got %q", got)
	}
}
