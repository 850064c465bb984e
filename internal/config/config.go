// Package config loads relnotes settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/alnah/go-relnotes/internal/dateutil"
	"github.com/alnah/go-relnotes/internal/fileutil"
	"github.com/alnah/go-relnotes/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// appDirName is the directory under the user config dir searched for configs.
const appDirName = "relnotes"

// Field length limits.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxURLLength         = 2048 // Browser limit
	MaxProductNameLength = 100
	MaxDateFormatLength  = dateutil.MaxDateFormatLength
	MaxPageSizeLength    = 10 // "letter", "a4", "legal"
)

// DefaultProductName prefixes the page title.
const DefaultProductName = "Helm"

// Valid PDF page sizes.
var validPageSizes = []string{"letter", "a4", "legal"}

// Config holds all configuration for release notes generation.
type Config struct {
	ChangelogPath      string    `yaml:"changelogPath"`      // Default: CHANGELOG.md
	OutputPath         string    `yaml:"outputPath"`         // Destination HTML file
	ProductName        string    `yaml:"productName"`        // Title prefix (default: "Helm")
	CanonicalURL       string    `yaml:"canonicalURL"`       // Optional <link rel="canonical">
	FallbackReleaseURL string    `yaml:"fallbackReleaseURL"` // Optional footer link
	DateFormat         string    `yaml:"dateFormat"`         // Preset or tokens (default: "long")
	PDF                PDFConfig `yaml:"pdf"`
}

// PDFConfig defines optional PDF export.
type PDFConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Path     string `yaml:"path"`     // Empty = output path with .pdf extension
	PageSize string `yaml:"pageSize"` // "letter", "a4", "legal" (default: "letter")
	Timeout  string `yaml:"timeout"`  // Go duration, e.g. "45s" (default: 30s)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		ChangelogPath: "CHANGELOG.md",
		ProductName:   DefaultProductName,
		DateFormat:    dateutil.DefaultDisplayFormat,
		PDF:           PDFConfig{PageSize: "letter"},
	}
}

// PDFPath returns the PDF destination, deriving it from OutputPath when
// PDF export is enabled without an explicit path. Returns "" when disabled.
func (c *Config) PDFPath() string {
	if c.PDF.Path != "" {
		return c.PDF.Path
	}
	if !c.PDF.Enabled || c.OutputPath == "" {
		return ""
	}
	return strings.TrimSuffix(c.OutputPath, filepath.Ext(c.OutputPath)) + ".pdf"
}

// Validate checks field lengths and values.
// All problems are reported together, combined with multierr.
func (c *Config) Validate() error {
	var err error

	err = multierr.Append(err, validateFieldLength("changelogPath", c.ChangelogPath, MaxPathLength))
	err = multierr.Append(err, validateFieldLength("outputPath", c.OutputPath, MaxPathLength))
	err = multierr.Append(err, validateFieldLength("productName", c.ProductName, MaxProductNameLength))
	err = multierr.Append(err, validateFieldLength("canonicalURL", c.CanonicalURL, MaxURLLength))
	err = multierr.Append(err, validateFieldLength("fallbackReleaseURL", c.FallbackReleaseURL, MaxURLLength))
	err = multierr.Append(err, validateFieldLength("pdf.path", c.PDF.Path, MaxPathLength))
	err = multierr.Append(err, validateFieldLength("pdf.pageSize", c.PDF.PageSize, MaxPageSizeLength))

	if c.DateFormat != "" {
		if _, dErr := dateutil.ResolveLayout(c.DateFormat); dErr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: dateFormat: %v", ErrInvalidValue, dErr))
		}
	}

	if c.PDF.PageSize != "" && !isValidPageSize(c.PDF.PageSize) {
		err = multierr.Append(err, fmt.Errorf("%w: pdf.pageSize %q (must be %s)",
			ErrInvalidValue, c.PDF.PageSize, strings.Join(validPageSizes, ", ")))
	}

	if c.PDF.Timeout != "" {
		d, tErr := time.ParseDuration(c.PDF.Timeout)
		if tErr != nil || d <= 0 {
			err = multierr.Append(err, fmt.Errorf("%w: pdf.timeout %q (must be a positive duration like 30s)",
				ErrInvalidValue, c.PDF.Timeout))
		}
	}

	return err
}

// Timeout returns the parsed PDF timeout, or 0 when unset or invalid.
func (c *Config) Timeout() time.Duration {
	if c.PDF.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.PDF.Timeout)
	if err != nil || d <= 0 {
		return 0
	}
	return d
}

func isValidPageSize(size string) bool {
	for _, s := range validPageSizes {
		if strings.EqualFold(size, s) {
			return true
		}
	}
	return false
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
// Values absent from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// the current directory, then ~/.config/relnotes/, each with .yaml and .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
