package main

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs       = errors.New("invalid arguments")
	ErrMissingOutput     = errors.New("output path is required")
	ErrChangelogNotFound = errors.New("changelog not found")
	ErrWriteOutput       = errors.New("failed to write output")
)

// errUnexpectedArgs reports positional arguments, which relnotes never takes.
func errUnexpectedArgs(args []string) error {
	return fmt.Errorf("%w: unexpected argument(s) %s", ErrInvalidArgs, strings.Join(args, " "))
}
