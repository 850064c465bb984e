package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/alnah/go-relnotes/internal/config"
)

// envPrefix marks relnotes environment variables.
const envPrefix = "RELNOTES_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath         string // RELNOTES_CONFIG: config file name or path
	ChangelogPath      string // RELNOTES_CHANGELOG_PATH
	OutputPath         string // RELNOTES_OUTPUT_PATH
	CanonicalURL       string // RELNOTES_CANONICAL_URL
	FallbackReleaseURL string // RELNOTES_FALLBACK_RELEASE_URL
	ProductName        string // RELNOTES_PRODUCT_NAME
	DateFormat         string // RELNOTES_DATE_FORMAT
	PDFPath            string // RELNOTES_PDF_PATH
	Timeout            string // RELNOTES_TIMEOUT: validated with the merged config
	Unknown            []string
}

// knownEnvKeys lists valid RELNOTES_* variables by their koanf key
// (prefix stripped, lowercased). Used to detect typos.
var knownEnvKeys = map[string]bool{
	"config":               true,
	"changelog_path":       true,
	"output_path":          true,
	"canonical_url":        true,
	"fallback_release_url": true,
	"product_name":         true,
	"date_format":          true,
	"pdf_path":             true,
	"timeout":              true,
}

// envKey maps RELNOTES_CHANGELOG_PATH to changelog_path.
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// loadEnvConfig reads RELNOTES_* variables through the koanf env provider.
func loadEnvConfig() (*envConfig, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	cfg := &envConfig{
		ConfigPath:         k.String("config"),
		ChangelogPath:      k.String("changelog_path"),
		OutputPath:         k.String("output_path"),
		CanonicalURL:       k.String("canonical_url"),
		FallbackReleaseURL: k.String("fallback_release_url"),
		ProductName:        k.String("product_name"),
		DateFormat:         k.String("date_format"),
		PDFPath:            k.String("pdf_path"),
		Timeout:            k.String("timeout"),
	}

	for _, key := range k.Keys() {
		if !knownEnvKeys[key] {
			cfg.Unknown = append(cfg.Unknown, envPrefix+strings.ToUpper(key))
		}
	}
	sort.Strings(cfg.Unknown)

	return cfg, nil
}

// applyEnvConfig overlays non-empty environment values onto cfg.
// Environment beats the config file; CLI flags are applied later via mergeFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ChangelogPath != "" {
		cfg.ChangelogPath = env.ChangelogPath
	}
	if env.OutputPath != "" {
		cfg.OutputPath = env.OutputPath
	}
	if env.CanonicalURL != "" {
		cfg.CanonicalURL = env.CanonicalURL
	}
	if env.FallbackReleaseURL != "" {
		cfg.FallbackReleaseURL = env.FallbackReleaseURL
	}
	if env.ProductName != "" {
		cfg.ProductName = env.ProductName
	}
	if env.DateFormat != "" {
		cfg.DateFormat = env.DateFormat
	}
	if env.PDFPath != "" {
		cfg.PDF.Path = env.PDFPath
	}
	if env.Timeout != "" {
		cfg.PDF.Timeout = env.Timeout
	}
}
