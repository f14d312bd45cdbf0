package signup

import (
	"io/fs"

	vanilla "github.com/goliatone/go-signup/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in page template so callers can reuse
// or extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the stylesheet, resize script and logo the page links to.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(signup.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
