package main

import (
	"fmt"
	"io"
)

// printUsage prints the relnotes usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: relnotes --output-path <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one release of a Keep a Changelog file as a standalone HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --changelog-path <path>      Changelog to read (default: CHANGELOG.md)")
	fmt.Fprintln(w, "      --tag <s>                    Release tag, e.g. v1.2.0 (default: tag at git HEAD)")
	fmt.Fprintln(w, "      --output-path <path>         Destination HTML file (required)")
	fmt.Fprintln(w, "      --pdf-path <path>            Also write a PDF (requires Chrome)")
	fmt.Fprintln(w, "      --list                       List versions in the changelog and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --product-name <s>           Title prefix (default: Helm)")
	fmt.Fprintln(w, "      --date-format <s>            Display date format (default: long)")
	fmt.Fprintln(w, "                                   Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                                   Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "                                   Use [text] to escape literals: [Released] D MMMM YYYY")
	fmt.Fprintln(w, "      --canonical-url <url>        Canonical URL for the page")
	fmt.Fprintln(w, "      --fallback-release-url <url> Link to the full release")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>              Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <duration>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet                      Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                    Show debug details")
	fmt.Fprintln(w, "      --version                    Show version information")
	fmt.Fprintln(w, "  -h, --help                       Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RELNOTES_CONFIG, RELNOTES_CHANGELOG_PATH, RELNOTES_OUTPUT_PATH,")
	fmt.Fprintln(w, "  RELNOTES_CANONICAL_URL, RELNOTES_FALLBACK_RELEASE_URL, RELNOTES_PRODUCT_NAME,")
	fmt.Fprintln(w, "  RELNOTES_DATE_FORMAT, RELNOTES_PDF_PATH, RELNOTES_TIMEOUT")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: defaults < config file < environment < flags.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  Page written")
	fmt.Fprintln(w, "  1  Version not found or unexpected error")
	fmt.Fprintln(w, "  2  Invalid flags or config")
	fmt.Fprintln(w, "  3  Changelog missing or output not writable")
	fmt.Fprintln(w, "  4  Browser error during PDF export")
}
