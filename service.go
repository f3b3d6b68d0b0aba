package md2html

import "fmt"

// Service orchestrates the markdown-to-HTML pipeline.
type Service struct {
	cfg      serviceConfig
	fences   fenceExtractor
	renderer markdownRenderer
	tidier   htmlTidier
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTheme, WithIndent).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			theme:  DefaultTheme,
			indent: DefaultIndent,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create stages if not injected (e.g., by tests).
	if s.fences == nil {
		s.fences = &scannerExtractor{highlighter: newChromaHighlighter(s.cfg.theme)}
	}
	if s.renderer == nil {
		s.renderer = newGoldmarkRenderer()
	}
	if s.tidier == nil {
		s.tidier = newTreeTidier(s.cfg.indent)
	}

	return s
}

// Render runs the full pipeline in strict order: fence extraction,
// Markdown rendering, HTML tidying. Each stage consumes the complete
// output of the previous one; there is no streaming or partial
// processing.
func (s *Service) Render(markdown string) (string, error) {
	content, err := s.fences.ExtractFences(markdown)
	if err != nil {
		return "", fmt.Errorf("extracting fences: %w", err)
	}

	htmlContent, err := s.renderer.RenderHTML(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	tidied, err := s.tidier.TidyHTML(htmlContent)
	if err != nil {
		return "", fmt.Errorf("tidying HTML: %w", err)
	}

	return tidied, nil
}
