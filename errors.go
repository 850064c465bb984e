package relnotes

import (
	"errors"

	"github.com/alnah/go-relnotes/internal/changelog"
)

// Sentinel errors for library operations.
var (
	ErrEmptyTag = errors.New("release tag cannot be empty")

	// ErrSectionNotFound indicates the changelog has no heading for the
	// requested version.
	ErrSectionNotFound = changelog.ErrSectionNotFound

	// Page settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")

	// Browser errors, raised only when PDF export is requested.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
