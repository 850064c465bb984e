package relnotes

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-relnotes/internal/assets"
	"github.com/alnah/go-relnotes/internal/changelog"
	"github.com/alnah/go-relnotes/internal/dateutil"
	"github.com/alnah/go-relnotes/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// Generator turns a changelog section into a release notes page.
// Create with NewGenerator, call Generate per release, and Close when done.
// The browser used for PDF export is only started on the first PDF request.
type Generator struct {
	cfg          generatorConfig
	assembler    *pipeline.PageAssembler
	pdfConverter pdfConverter
}

// NewGenerator creates a Generator with default configuration.
// Returns error if the date format or page size is invalid, or if the
// embedded page assets cannot be loaded.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			productName: DefaultProductName,
			dateFormat:  dateutil.DefaultDisplayFormat,
			timeout:     defaultTimeout,
			pageSize:    PageSizeLetter,
			logger:      zap.NewNop(),
		},
	}

	for _, opt := range opts {
		opt(g)
	}

	if _, err := dateutil.ResolveLayout(g.cfg.dateFormat); err != nil {
		return nil, err
	}

	if !isValidPageSize(g.cfg.pageSize) {
		return nil, fmt.Errorf("%w: %q (must be letter, a4, or legal)", ErrInvalidPageSize, g.cfg.pageSize)
	}

	var err error
	g.assembler, err = pipeline.NewPageAssembler(assets.NewEmbeddedLoader())
	if err != nil {
		return nil, fmt.Errorf("initializing page assembler: %w", err)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if g.pdfConverter == nil {
		g.pdfConverter = newRodConverter(g.cfg.timeout, g.cfg.logger)
	}

	return g, nil
}

// Generate extracts the section for input.Tag and renders the page.
// The context only matters for PDF export, which it bounds and cancels.
// Returns an error wrapping ErrSectionNotFound when the changelog has no
// heading for the version, including when it is empty. Recovers from internal panics to prevent
// crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	log := g.cfg.logger
	version := changelog.NormalizeVersion(input.Tag)

	section, err := changelog.Extract(input.Changelog, version)
	if err != nil {
		return nil, err
	}
	log.Debug("located release section",
		zap.String("version", section.Version),
		zap.String("date", section.Date),
		zap.Int("lines", len(section.Lines)))

	displayDate, err := dateutil.FormatReleaseDateWith(section.Date, g.cfg.dateFormat)
	if err != nil {
		return nil, err
	}

	page, err := g.assembler.Assemble(pipeline.Page{
		Product:      g.cfg.productName,
		Version:      version,
		Date:         displayDate,
		Body:         pipeline.RenderBody(section.Lines),
		CanonicalURL: input.CanonicalURL,
		FallbackURL:  input.FallbackReleaseURL,
		Source:       input.Source,
	})
	if err != nil {
		return nil, fmt.Errorf("assembling page: %w", err)
	}
	log.Debug("assembled page", zap.Int("bytes", len(page)))

	res := &Result{
		Version: version,
		RawDate: section.Date,
		Date:    displayDate,
		HTML:    page,
	}

	if !input.PDF {
		return res, nil
	}

	start := time.Now()
	pdfBytes, err := g.pdfConverter.ToPDF(ctx, page, &pdfOptions{PageSize: g.cfg.pageSize})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	log.Debug("rendered PDF",
		zap.Int("bytes", len(pdfBytes)),
		zap.Duration("elapsed", time.Since(start)))

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.pdfConverter != nil {
		return g.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present.
func validateInput(input Input) error {
	if input.Tag == "" {
		return ErrEmptyTag
	}
	return nil
}
