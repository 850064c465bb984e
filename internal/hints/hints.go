// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-relnotes/internal/fileutil"
)

// maxListedVersions caps how many versions ForVersionNotFound lists.
const maxListedVersions = 8

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow PDF rendering.
func ForTimeout() string {
	return format("for slow machines, raise the PDF timeout with --timeout")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/relnotes/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/relnotes") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMissingChangelog returns a hint for an unreadable changelog path.
func ForMissingChangelog() string {
	return format("point --changelog-path at the changelog file")
}

// ForVersionNotFound lists the versions the changelog does contain.
// The list is truncated after a few entries; an empty list suggests the
// heading format instead.
func ForVersionNotFound(available []string) string {
	if len(available) == 0 {
		return format("no version headings found; expected lines like \"## [1.2.0] - 2024-03-05\"")
	}

	listed := available
	suffix := ""
	if len(listed) > maxListedVersions {
		listed = listed[:maxListedVersions]
		suffix = ", ..."
	}
	return format("available: " + strings.Join(listed, ", ") + suffix)
}

// ForNoTagAtHead returns a hint for a missing --tag outside a tagged checkout.
func ForNoTagAtHead() string {
	return format("pass --tag explicitly or run from a tagged commit")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
