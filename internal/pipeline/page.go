package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alnah/go-relnotes/internal/assets"
)

// ErrPageRender indicates the page template failed to parse or execute.
var ErrPageRender = errors.New("page template rendering failed")

// DefaultSource names the changelog in the page footer when none is given.
const DefaultSource = "CHANGELOG.md"

// Page holds the values placed into the release notes document.
type Page struct {
	Product      string // Title prefix, e.g. "Helm"; empty omits it
	Version      string // Normalized version, e.g. "1.2.0"
	Date         string // Display date, already formatted
	Body         string // Rendered block markup, inserted verbatim
	CanonicalURL string // Optional <link rel="canonical">
	FallbackURL  string // Optional "View this release" footer link
	Source       string // Changelog file name shown in the footer
}

// Title returns "<Product> <Version> Release Notes".
func (p Page) Title() string {
	if p.Product == "" {
		return p.Version + " Release Notes"
	}
	return p.Product + " " + p.Version + " Release Notes"
}

// pageData is the template view of a Page.
type pageData struct {
	Title         string
	Date          string
	Body          template.HTML
	CSS           template.CSS
	CanonicalLink template.HTML
	FallbackLink  template.HTML
	Source        string
}

// PageAssembler renders complete release notes documents.
type PageAssembler struct {
	tmpl *template.Template
	css  template.CSS
}

// NewPageAssembler parses the page template and loads the stylesheet.
// Returns error if either asset is missing or the template cannot be parsed.
func NewPageAssembler(loader assets.AssetLoader) (*PageAssembler, error) {
	tmplContent, err := loader.LoadTemplate(assets.PageTemplateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	css, err := loader.LoadStyle(assets.StyleName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing page template: %v", ErrPageRender, err)
	}

	return &PageAssembler{
		tmpl: tmpl,
		// #nosec G203 -- stylesheet is an embedded asset, not user input
		css: template.CSS(strings.TrimRight(css, "\n")),
	}, nil
}

// Assemble renders p into a complete HTML document.
// Free-text values are escaped by html/template; Body is trusted markup
// produced by RenderBody. URLs are trimmed and HTML-escaped but otherwise
// kept as given; empty URLs omit their elements.
func (a *PageAssembler) Assemble(p Page) (string, error) {
	source := p.Source
	if source == "" {
		source = DefaultSource
	}

	data := pageData{
		Title: p.Title(),
		Date:  p.Date,
		// #nosec G203 -- body is escaped line by line in RenderInline
		Body:          template.HTML(p.Body),
		CSS:           a.css,
		CanonicalLink: linkElement(`<link rel="canonical" href="%s">`, p.CanonicalURL),
		FallbackLink:  linkElement(`<a href="%s" rel="noopener noreferrer">View this release on GitHub</a>`, p.FallbackURL),
		Source:        source,
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// linkElement fills format with the trimmed, HTML-escaped url.
// Returns "" when url is blank.
func linkElement(format, url string) template.HTML {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	// #nosec G203 -- url is escaped with html.EscapeString
	return template.HTML(fmt.Sprintf(format, html.EscapeString(url)))
}
