package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

// subHeadingPrefix starts a sub-heading line such as "### Added".
const subHeadingPrefix = "### "

// bulletPattern matches "- item", with optional indentation.
var bulletPattern = regexp.MustCompile(`^\s*-\s+(.*)$`)

// Indentation of rendered blocks inside the page's <article>.
const (
	blockIndent = "    "
	itemIndent  = "      "
)

// RenderBody groups section lines into sub-headings, bullet lists and
// paragraphs, and returns the rendered blocks joined by newlines.
//
// Grouping is a single pass: blank lines, sub-headings and paragraphs close
// an open list, bullets open one. Adjacent paragraphs are never merged and
// lists never nest.
func RenderBody(lines []string) string {
	r := &bodyRenderer{}
	for _, raw := range lines {
		r.line(raw)
	}
	r.closeList()
	return strings.Join(r.blocks, "\n")
}

type bodyRenderer struct {
	blocks   []string
	listOpen bool
}

func (r *bodyRenderer) line(raw string) {
	line := strings.TrimRightFunc(raw, unicode.IsSpace)
	stripped := strings.TrimSpace(line)

	if stripped == "" {
		r.closeList()
		return
	}

	if strings.HasPrefix(stripped, subHeadingPrefix) {
		r.closeList()
		heading := RenderInline(strings.TrimSpace(stripped[len(subHeadingPrefix):]))
		r.emit(blockIndent + "<h2>" + heading + "</h2>")
		return
	}

	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		if !r.listOpen {
			r.emit(blockIndent + "<ul>")
			r.listOpen = true
		}
		r.emit(itemIndent + "<li>" + RenderInline(strings.TrimSpace(m[1])) + "</li>")
		return
	}

	r.closeList()
	r.emit(blockIndent + "<p>" + RenderInline(stripped) + "</p>")
}

func (r *bodyRenderer) closeList() {
	if r.listOpen {
		r.emit(blockIndent + "</ul>")
		r.listOpen = false
	}
}

func (r *bodyRenderer) emit(block string) {
	r.blocks = append(r.blocks, block)
}
