// Package dateutil formats changelog release dates for display.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// ISOLayout is the Go layout of changelog heading dates.
const ISOLayout = "2006-01-02"

// DefaultDisplayFormat renders dates as "March 5, 2024".
const DefaultDisplayFormat = "long"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// longLayout is the Go layout for the "long" preset.
const longLayout = "January 2, 2006"

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ResolveLayout turns a preset name (case-insensitive) or token format into
// a Go layout. An empty value selects DefaultDisplayFormat.
func ResolveLayout(formatOrPreset string) (string, error) {
	if formatOrPreset == "" {
		formatOrPreset = DefaultDisplayFormat
	}
	if preset, ok := DatePresets[strings.ToLower(formatOrPreset)]; ok {
		formatOrPreset = preset
	}
	return ParseDateFormat(formatOrPreset)
}

// FormatReleaseDate renders an ISO YYYY-MM-DD date as "March 5, 2024".
// Input that is not a valid calendar date from year 1 on is returned
// unchanged: the date is display-only and a bad one must not fail the page.
// The year is not zero padded ("January 5, 99").
func FormatReleaseDate(raw string) string {
	t, ok := parseISO(raw)
	if !ok {
		return raw
	}
	return t.Month().String() + " " + strconv.Itoa(t.Day()) + ", " + strconv.Itoa(t.Year())
}

// FormatReleaseDateWith renders an ISO date using a preset or token format.
// Returns ErrInvalidDateFormat if the format is invalid. A malformed date
// is passed through unchanged, as in FormatReleaseDate.
func FormatReleaseDateWith(raw, formatOrPreset string) (string, error) {
	layout, err := ResolveLayout(formatOrPreset)
	if err != nil {
		return "", err
	}
	if layout == longLayout {
		return FormatReleaseDate(raw), nil
	}

	t, ok := parseISO(raw)
	if !ok {
		return raw, nil
	}
	return t.Format(layout), nil
}

// parseISO parses a heading date. Year 0 is rejected.
func parseISO(raw string) (time.Time, bool) {
	t, err := time.Parse(ISOLayout, raw)
	if err != nil || t.Year() < 1 {
		return time.Time{}, false
	}
	return t, true
}
