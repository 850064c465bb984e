package relnotes

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// Page size constants for PDF export.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// DefaultProductName prefixes the page title unless WithProductName says otherwise.
const DefaultProductName = "Helm"

// defaultTimeout bounds PDF rendering when no timeout is specified.
const defaultTimeout = 30 * time.Second

// Input describes one release notes page to generate.
type Input struct {
	Changelog          string // Full changelog text
	Tag                string // Release tag; one leading "v" is stripped
	CanonicalURL       string // Optional, trimmed; empty omits the <link>
	FallbackReleaseURL string // Optional, trimmed; empty omits the footer link
	Source             string // Changelog name in the footer (default: CHANGELOG.md)
	PDF                bool   // Also render the page to PDF
}

// Result holds the generated page.
type Result struct {
	Version string // Normalized version looked up in the changelog
	RawDate string // Date exactly as written in the heading
	Date    string // Display date
	HTML    string // Complete HTML document
	PDF     []byte // Set only when Input.PDF is true
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	productName string
	dateFormat  string
	timeout     time.Duration
	pageSize    string
	logger      *zap.Logger
}

// WithProductName sets the title prefix. An empty name yields
// "<version> Release Notes".
func WithProductName(name string) Option {
	return func(g *Generator) {
		g.cfg.productName = name
	}
}

// WithDateFormat sets the display date format: a preset (iso, european,
// us, long) or a token format such as "D MMMM YYYY". Validated by NewGenerator.
func WithDateFormat(format string) Option {
	return func(g *Generator) {
		g.cfg.dateFormat = format
	}
}

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("relnotes: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithPageSize sets the PDF paper size (letter, a4, legal).
// Validated by NewGenerator.
func WithPageSize(size string) Option {
	return func(g *Generator) {
		g.cfg.pageSize = strings.ToLower(size)
	}
}

// WithLogger routes debug diagnostics to logger. Nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.cfg.logger = logger
		}
	}
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}
