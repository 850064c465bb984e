// Package assets provides the stylesheet and HTML template of the release
// notes page.
//
// Assets are embedded at compile time and organized by type:
//
//	styles/
//	└── release.css      # Inline page stylesheet (light and dark schemes)
//	templates/
//	└── page.html        # html/template for the complete document
//
// Asset names are validated before lookup so callers cannot reach outside
// the embedded directories.
package assets
