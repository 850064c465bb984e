package pipeline

import (
	"html"
	"strings"
)

// codeDelimiter separates plain text from inline code within a line.
const codeDelimiter = "`"

// RenderInline escapes a single line of text and wraps code spans in <code>.
//
// The line is split at every backtick: even pieces are plain text, odd pieces
// are code. An odd number of backticks therefore leaves the last code span
// open until the end of the line.
func RenderInline(text string) string {
	parts := strings.Split(text, codeDelimiter)

	var b strings.Builder
	b.Grow(len(text) + 16)
	for i, part := range parts {
		escaped := html.EscapeString(part)
		if i%2 == 1 {
			b.WriteString("<code>")
			b.WriteString(escaped)
			b.WriteString("</code>")
			continue
		}
		b.WriteString(escaped)
	}
	return b.String()
}
