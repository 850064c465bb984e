// Package relnotes renders one release of a Keep a Changelog document as a
// standalone HTML page.
//
// # Quick Start
//
// Create a generator, generate the page for a tag, and close when done:
//
//	gen, err := relnotes.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	result, err := gen.Generate(ctx, relnotes.Input{
//	    Changelog: changelogText,
//	    Tag:       "v1.2.0",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("release-notes.html", []byte(result.HTML), 0644)
//
// # Pipeline
//
//  1. Tag normalization (one leading "v" stripped)
//  2. Section extraction: the lines between "## [VERSION] - YYYY-MM-DD"
//     and the next "## [" heading
//  3. Block rendering: "### " sub-headings, "- " bullets, paragraphs,
//     with backtick code spans inside each line
//  4. Date formatting ("2024-03-05" becomes "March 5, 2024"; malformed
//     dates pass through)
//  5. Page assembly from the embedded template and stylesheet
//  6. Optional PDF rendering via headless Chrome (go-rod)
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := relnotes.NewGenerator(
//	    relnotes.WithProductName("Acme"),
//	    relnotes.WithDateFormat("iso"),
//	    relnotes.WithPageSize(relnotes.PageSizeA4),
//	    relnotes.WithTimeout(time.Minute),
//	)
//
// # Errors
//
// A missing version yields an error wrapping ErrSectionNotFound whose
// message names the version. Browser failures during PDF export wrap
// ErrBrowserConnect, ErrPageCreate, ErrPageLoad, or ErrPDFGeneration.
package relnotes
