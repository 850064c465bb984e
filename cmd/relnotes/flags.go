package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds config and verbosity flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// cliFlags holds every relnotes flag.
// Values only override config and environment when changed[name] is set,
// so flag defaults never mask a config file value.
type cliFlags struct {
	common             commonFlags
	changelogPath      string
	tag                string
	outputPath         string
	canonicalURL       string
	fallbackReleaseURL string
	pdfPath            string
	productName        string
	dateFormat         string
	timeout            string
	list               bool
	version            bool
	changed            map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug details")
}

// newFlagSet declares all flags on a fresh FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("relnotes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.changelogPath, "changelog-path", "CHANGELOG.md", "changelog to read")
	fs.StringVar(&f.tag, "tag", "", "release tag, e.g. v1.2.0 (default: tag at git HEAD)")
	fs.StringVar(&f.outputPath, "output-path", "", "destination HTML file")
	fs.StringVar(&f.canonicalURL, "canonical-url", "", "canonical URL for the page")
	fs.StringVar(&f.fallbackReleaseURL, "fallback-release-url", "", "link to the full release")
	fs.StringVar(&f.pdfPath, "pdf-path", "", "also write a PDF to this path")
	fs.StringVar(&f.productName, "product-name", "Helm", "title prefix")
	fs.StringVar(&f.dateFormat, "date-format", "long", "display date format or preset")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.list, "list", false, "list versions in the changelog and exit")
	fs.BoolVar(&f.version, "version", false, "show version information")

	addCommonFlags(fs, &f.common)
	return fs
}

// parseFlags parses relnotes flags. Positional arguments are rejected.
// Returns flag.ErrHelp (wrapped by pflag) for -h/--help.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{changed: make(map[string]bool)}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errUnexpectedArgs(fs.Args())
	}

	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })
	return f, nil
}
