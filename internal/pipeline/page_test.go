package pipeline

// Notes:
// - Assemble: we test the observable document (escaping, optional elements,
//   determinism) rather than the exact stylesheet text.
// - NewPageAssembler error paths use a stub loader; the embedded assets are
//   covered in internal/assets.

import (
	"errors"
	"html"
	"strings"
	"testing"

	"github.com/alnah/go-relnotes/internal/assets"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

type stubLoader struct {
	style    string
	tmpl     string
	styleErr error
	tmplErr  error
}

func (s *stubLoader) LoadStyle(string) (string, error)    { return s.style, s.styleErr }
func (s *stubLoader) LoadTemplate(string) (string, error) { return s.tmpl, s.tmplErr }

func newTestAssembler(t *testing.T) *PageAssembler {
	t.Helper()

	a, err := NewPageAssembler(assets.NewEmbeddedLoader())
	if err != nil {
		t.Fatalf("NewPageAssembler() unexpected error: %v", err)
	}
	return a
}

func basePage() Page {
	return Page{
		Product: "Helm",
		Version: "1.2.0",
		Date:    "March 5, 2024",
		Body:    "    <h2>Added</h2>\n    <ul>\n      <li>Feature X</li>\n    </ul>",
	}
}

// ---------------------------------------------------------------------------
// TestPageAssembler_Assemble
// ---------------------------------------------------------------------------

func TestPageAssembler_Assemble_Document(t *testing.T) {
	t.Parallel()

	got, err := newTestAssembler(t).Assemble(basePage())
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}

	wantContains := []string{
		"<!doctype html>",
		"<title>Helm 1.2.0 Release Notes</title>",
		"<h1>Helm 1.2.0 Release Notes</h1>",
		`<p class="meta">Release date: March 5, 2024</p>`,
		"    <h2>Added</h2>\n    <ul>\n      <li>Feature X</li>\n    </ul>",
		"<footer>Generated from <code>CHANGELOG.md</code>.</footer>",
		"prefers-color-scheme: dark",
		"</html>",
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("document should contain %q\n%s", want, got)
		}
	}

	for _, unwanted := range []string{`rel="canonical"`, "Need full context?", "<script", "http-equiv"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("document should not contain %q", unwanted)
		}
	}
}

func TestPageAssembler_Assemble_CanonicalURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		url       string
		wantCount int
		wantHref  string
	}{
		{name: "empty omits link", url: "", wantCount: 0},
		{name: "whitespace omits link", url: "   ", wantCount: 0},
		{
			name:      "url is escaped once",
			url:       "https://example.com/notes?a=1&b=2",
			wantCount: 1,
			wantHref:  `<link rel="canonical" href="https://example.com/notes?a=1&amp;b=2">`,
		},
		{
			name:      "surrounding whitespace trimmed",
			url:       "  https://example.com/v1.2.0  ",
			wantCount: 1,
			wantHref:  `<link rel="canonical" href="https://example.com/v1.2.0">`,
		},
		{
			name:      "quotes and spaces are escaped not percent encoded",
			url:       `https://ex.com/a b?q="x"&r='y'`,
			wantCount: 1,
			wantHref:  `<link rel="canonical" href="https://ex.com/a b?q=&#34;x&#34;&amp;r=&#39;y&#39;">`,
		},
		{
			name:      "non-http scheme kept",
			url:       "ftp://mirror.example.com/notes",
			wantCount: 1,
			wantHref:  `<link rel="canonical" href="ftp://mirror.example.com/notes">`,
		},
	}

	a := newTestAssembler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := basePage()
			p.CanonicalURL = tt.url
			got, err := a.Assemble(p)
			if err != nil {
				t.Fatalf("Assemble() unexpected error: %v", err)
			}

			if n := strings.Count(got, `rel="canonical"`); n != tt.wantCount {
				t.Errorf("canonical link count = %d, want %d", n, tt.wantCount)
			}
			if tt.wantHref != "" && !strings.Contains(got, tt.wantHref) {
				t.Errorf("document should contain %q", tt.wantHref)
			}
			if tt.wantCount == 1 {
				escaped := html.EscapeString(strings.TrimSpace(tt.url))
				if n := strings.Count(got, escaped); n != 1 {
					t.Errorf("escaped url %q appears %d times, want 1", escaped, n)
				}
			}
		})
	}
}

func TestPageAssembler_Assemble_FallbackURL(t *testing.T) {
	t.Parallel()

	a := newTestAssembler(t)

	p := basePage()
	p.FallbackURL = "https://github.com/org/repo/releases/tag/v1.2.0"
	got, err := a.Assemble(p)
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}

	want := `<p class="meta">Need full context? <a href="https://github.com/org/repo/releases/tag/v1.2.0" rel="noopener noreferrer">View this release on GitHub</a>.</p>`
	if strings.Count(got, want) != 1 {
		t.Errorf("document should contain fallback paragraph once:\n%s", got)
	}

	p.FallbackURL = `https://ex.com/a b?q="x"`
	got, err = a.Assemble(p)
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}
	if !strings.Contains(got, `<a href="https://ex.com/a b?q=&#34;x&#34;" rel="noopener noreferrer">`) {
		t.Errorf("fallback url should be HTML-escaped verbatim:\n%s", got)
	}

	p.FallbackURL = " "
	got, err = a.Assemble(p)
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}
	if strings.Contains(got, "Need full context?") {
		t.Error("blank fallback URL should omit the paragraph")
	}
}

func TestPageAssembler_Assemble_EscapesMetadata(t *testing.T) {
	t.Parallel()

	p := basePage()
	p.Version = `1.0<script>`
	p.Date = `"soon" & later`
	p.Source = "<NEWS>"

	got, err := newTestAssembler(t).Assemble(p)
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}

	if strings.Contains(got, "<script>") {
		t.Error("version should be escaped")
	}
	if !strings.Contains(got, "<h1>Helm 1.0&lt;script&gt; Release Notes</h1>") {
		t.Errorf("escaped heading missing:\n%s", got)
	}
	if !strings.Contains(got, "Release date: &#34;soon&#34; &amp; later") {
		t.Errorf("escaped date missing:\n%s", got)
	}
	if !strings.Contains(got, "<code>&lt;NEWS&gt;</code>") {
		t.Errorf("escaped source missing:\n%s", got)
	}
}

func TestPageAssembler_Assemble_EmptyProduct(t *testing.T) {
	t.Parallel()

	p := basePage()
	p.Product = ""
	got, err := newTestAssembler(t).Assemble(p)
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}
	if !strings.Contains(got, "<title>1.2.0 Release Notes</title>") {
		t.Errorf("title without product missing:\n%s", got)
	}
}

func TestPageAssembler_Assemble_Deterministic(t *testing.T) {
	t.Parallel()

	a := newTestAssembler(t)
	p := basePage()
	p.CanonicalURL = "https://example.com/notes"
	p.FallbackURL = "https://example.com/release"

	first, err := a.Assemble(p)
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}
	second, err := a.Assemble(p)
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}
	if first != second {
		t.Error("Assemble() should be deterministic for identical input")
	}
}

// ---------------------------------------------------------------------------
// TestNewPageAssembler - Asset errors
// ---------------------------------------------------------------------------

func TestNewPageAssembler_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		loader *stubLoader
	}{
		{name: "missing template", loader: &stubLoader{tmplErr: assets.ErrTemplateNotFound}},
		{name: "missing style", loader: &stubLoader{tmpl: "{{.Body}}", styleErr: assets.ErrStyleNotFound}},
		{name: "unparseable template", loader: &stubLoader{tmpl: "{{.Body", style: "body{}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewPageAssembler(tt.loader)
			if !errors.Is(err, ErrPageRender) {
				t.Errorf("NewPageAssembler() error = %v, want ErrPageRender", err)
			}
		})
	}
}

func TestPage_Title(t *testing.T) {
	t.Parallel()

	if got := (Page{Product: "Helm", Version: "0.17.0-rc.3"}).Title(); got != "Helm 0.17.0-rc.3 Release Notes" {
		t.Errorf("Title() = %q", got)
	}
}
