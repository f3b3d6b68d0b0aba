package md2html

// Default pipeline configuration values.
const (
	// DefaultTheme is the Chroma style applied to highlighted code.
	DefaultTheme = "colorful"

	// DefaultIndent is the number of spaces per indentation level in
	// tidied output.
	DefaultIndent = 2

	// MaxIndent bounds WithIndent.
	MaxIndent = 8
)

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	theme  string
	indent int
}

// WithTheme selects the Chroma color theme used for highlighted code
// blocks. Unknown theme names fall back to Chroma's default style
// rather than failing.
func WithTheme(name string) Option {
	return func(s *Service) {
		s.cfg.theme = name
	}
}

// WithIndent sets the number of spaces per indentation level in tidied
// output. Zero disables indentation.
// Panics if width is negative or greater than MaxIndent (programmer
// error, similar to strings.Repeat).
func WithIndent(width int) Option {
	if width < 0 || width > MaxIndent {
		panic("md2html: WithIndent width out of range")
	}
	return func(s *Service) {
		s.cfg.indent = width
	}
}
