package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrHighlight = errors.New("code highlighting failed")
	ErrRender    = errors.New("markdown rendering failed")
	ErrTidy      = errors.New("HTML tidying failed")
)
