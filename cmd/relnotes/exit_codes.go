package main

import (
	"errors"
	"os"

	relnotes "github.com/alnah/go-relnotes"
	"github.com/alnah/go-relnotes/internal/config"
	"github.com/alnah/go-relnotes/internal/dateutil"
	"github.com/alnah/go-relnotes/internal/gitref"
)

// Exit codes for relnotes CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Page written
	ExitGeneral = 1 // Version not found, unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Changelog missing, output not writable
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, relnotes.ErrBrowserConnect) ||
		errors.Is(err, relnotes.ErrPageCreate) ||
		errors.Is(err, relnotes.ErrPageLoad) ||
		errors.Is(err, relnotes.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrChangelogNotFound) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrMissingOutput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, relnotes.ErrInvalidPageSize) ||
		errors.Is(err, relnotes.ErrEmptyTag) ||
		errors.Is(err, gitref.ErrNoTagAtHead) ||
		errors.Is(err, gitref.ErrOpenRepository) {
		return ExitUsage
	}

	return ExitGeneral
}
