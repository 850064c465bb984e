// Package changelog locates release sections in a Keep a Changelog document.
//
// A section starts after a version heading of the form
//
//	## [1.2.0] - 2024-03-05
//
// and runs until the next line starting with "## [" or the end of the
// document. Matching is literal: the version between the brackets is an
// opaque token compared with exact string equality.
package changelog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrSectionNotFound indicates no heading matched the requested version.
var ErrSectionNotFound = errors.New("release section not found")

// headingPrefix marks the start of any version heading.
const headingPrefix = "## ["

// headingPattern matches a trimmed version heading line.
// The date only needs the NNNN-NN-NN digit shape; calendar validity is
// checked later, at display time.
var headingPattern = regexp.MustCompile(`^## \[([^\]]+)\] - (\d{4}-\d{2}-\d{2})\s*$`)

// Section is the body of one release in the changelog.
type Section struct {
	Version string   // Version as written in the heading
	Date    string   // Raw heading date, YYYY-MM-DD shaped
	Lines   []string // Content lines, outer blank lines trimmed
}

// Heading is a version heading found in the changelog.
type Heading struct {
	Version string
	Date    string
	Line    int // 1-based line number
}

// NormalizeVersion turns a release tag into a changelog version key by
// stripping a single leading "v". A bare "v" is returned unchanged.
func NormalizeVersion(tag string) string {
	if len(tag) > 1 && tag[0] == 'v' {
		return tag[1:]
	}
	return tag
}

// Extract returns the section for version.
// The first matching heading wins when a version appears more than once.
// Returns an error wrapping ErrSectionNotFound if no heading matches.
func Extract(text, version string) (*Section, error) {
	lines := SplitLines(text)

	start := -1
	var date string
	for i, line := range lines {
		v, d, ok := parseHeading(line)
		if ok && v == version {
			start = i + 1
			date = d
			break
		}
	}

	if start == -1 {
		return nil, fmt.Errorf("%w: could not find release section for version '%s' in changelog", ErrSectionNotFound, version)
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], headingPrefix) {
			end = i
			break
		}
	}

	return &Section{
		Version: version,
		Date:    date,
		Lines:   trimBlankLines(lines[start:end]),
	}, nil
}

// Headings lists every version heading in document order.
// Duplicate versions are reported as they appear.
func Headings(text string) []Heading {
	var headings []Heading
	for i, line := range SplitLines(text) {
		if v, d, ok := parseHeading(line); ok {
			headings = append(headings, Heading{Version: v, Date: d, Line: i + 1})
		}
	}
	return headings
}

// Versions returns the version of every heading in document order.
func Versions(text string) []string {
	headings := Headings(text)
	versions := make([]string, 0, len(headings))
	for _, h := range headings {
		versions = append(versions, h.Version)
	}
	return versions
}

// SplitLines splits text on \n, \r\n and \r.
// A trailing line terminator does not produce an empty final line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// parseHeading reports whether line is a version heading and returns its parts.
func parseHeading(line string) (version, date string, ok bool) {
	m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// trimBlankLines drops whitespace-only lines from both ends.
func trimBlankLines(lines []string) []string {
	first := 0
	for first < len(lines) && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	last := len(lines)
	for last > first && strings.TrimSpace(lines[last-1]) == "" {
		last--
	}
	return lines[first:last]
}
