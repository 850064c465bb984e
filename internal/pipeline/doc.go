// Package pipeline renders a changelog section into a release notes page.
//
// The stages run in order, each a pure function of its input:
//   - RenderInline escapes one line and wraps `code` spans in <code>
//   - RenderBody groups section lines into sub-headings, lists and paragraphs
//   - PageAssembler.Assemble places the body and metadata into the embedded
//     page template
//
// Block detection is deliberately literal ("### ", "- ", blank lines) and is
// not a Markdown parser: tables, emphasis, links and nested lists are rendered
// as plain paragraphs or flat list items.
package pipeline
