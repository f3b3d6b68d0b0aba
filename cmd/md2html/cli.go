package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs  = errors.New("usage: md2html <file.md>")
	ErrReadMarkdown = errors.New("failed to read markdown file")
)

// run parses arguments, reads the input file, and drives the pipeline.
// The rendered HTML goes to env.Stdout followed by a trailing newline.
func run(args []string, env *Environment) error {
	path, err := parseArgs(args, env)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided by design
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	cfg, err := config.Load(env.Getenv)
	if err != nil {
		return err
	}

	svc := md2html.New(
		md2html.WithTheme(cfg.Theme),
		md2html.WithIndent(cfg.Indent),
	)

	out, err := svc.Render(string(content))
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, out)
	return nil
}

// parseArgs accepts exactly one positional argument: the input path.
// There are no other flags, no output-file option, and no stdin mode.
func parseArgs(args []string, env *Environment) (string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(env.Stderr, "usage: md2html <file.md>")
	}

	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", ErrInvalidArgs
	}
	return fs.Arg(0), nil
}
