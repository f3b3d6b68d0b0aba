package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	err := run(os.Args[1:], DefaultEnv())
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		// Usage already printed by pflag.
		return
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitCodeFor(err))
}
