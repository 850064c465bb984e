package main

import (
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-relnotes/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	args := os.Args[1:]

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags, err := parseFlags(args); err == nil && flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(logging.Printf(logging.New(os.Stderr, logging.Verbose))))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(args, DefaultEnv()))
}
