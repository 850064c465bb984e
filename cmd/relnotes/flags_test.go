package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if f.changelogPath != "CHANGELOG.md" {
		t.Errorf("changelogPath = %q, want CHANGELOG.md", f.changelogPath)
	}
	if f.productName != "Helm" {
		t.Errorf("productName = %q, want Helm", f.productName)
	}
	if f.dateFormat != "long" {
		t.Errorf("dateFormat = %q, want long", f.dateFormat)
	}
	if len(f.changed) != 0 {
		t.Errorf("changed = %v, want empty", f.changed)
	}
}

func TestParseFlags_Values(t *testing.T) {
	t.Parallel()

	f, err := parseFlags([]string{
		"--changelog-path", "docs/CHANGELOG.md",
		"--tag", "v1.2.0",
		"--output-path", "site/index.html",
		"--canonical-url", "https://example.com",
		"--fallback-release-url", "https://github.com/org/repo/releases",
		"--pdf-path", "site/notes.pdf",
		"--product-name", "Acme",
		"--date-format", "iso",
		"-t", "45s",
		"-c", "work",
		"-q", "-v",
		"--list",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	checks := []struct {
		name string
		got  string
		want string
	}{
		{"changelogPath", f.changelogPath, "docs/CHANGELOG.md"},
		{"tag", f.tag, "v1.2.0"},
		{"outputPath", f.outputPath, "site/index.html"},
		{"canonicalURL", f.canonicalURL, "https://example.com"},
		{"fallbackReleaseURL", f.fallbackReleaseURL, "https://github.com/org/repo/releases"},
		{"pdfPath", f.pdfPath, "site/notes.pdf"},
		{"productName", f.productName, "Acme"},
		{"dateFormat", f.dateFormat, "iso"},
		{"timeout", f.timeout, "45s"},
		{"config", f.common.config, "work"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if !f.common.quiet || !f.common.verbose || !f.list {
		t.Errorf("bool flags not set: quiet=%v verbose=%v list=%v", f.common.quiet, f.common.verbose, f.list)
	}
	for _, name := range []string{"tag", "output-path", "product-name", "timeout", "config"} {
		if !f.changed[name] {
			t.Errorf("changed[%q] = false, want true", name)
		}
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantHelp bool
		wantArgs bool
	}{
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "missing value", args: []string{"--tag"}},
		{name: "help", args: []string{"--help"}, wantHelp: true},
		{name: "short help", args: []string{"-h"}, wantHelp: true},
		{name: "positional argument", args: []string{"CHANGELOG.md"}, wantArgs: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseFlags(tt.args)
			if err == nil {
				t.Fatal("parseFlags() error = nil, want error")
			}
			if got := errors.Is(err, flag.ErrHelp); got != tt.wantHelp {
				t.Errorf("errors.Is(err, ErrHelp) = %v, want %v (%v)", got, tt.wantHelp, err)
			}
			if got := errors.Is(err, ErrInvalidArgs); got != tt.wantArgs {
				t.Errorf("errors.Is(err, ErrInvalidArgs) = %v, want %v (%v)", got, tt.wantArgs, err)
			}
		})
	}
}
