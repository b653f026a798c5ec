package formdesk

import (
	"io/fs"

	"github.com/goliatone/go-formdesk/pkg/registry"
	"github.com/goliatone/go-formdesk/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the HTML renderer templates so callers can copy
// or extend them and pass them back with vanilla.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the HTML renderer stylesheet. Typical mount:
//
//	mux.Handle("/assets/formdesk/",
//	  http.StripPrefix("/assets/formdesk/",
//	    http.FileServerFS(formdesk.EmbeddedAssets()),
//	  ),
//	)
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}

// EmbeddedForms exposes the bundled form documents.
func EmbeddedForms() fs.FS {
	return registry.EmbeddedFS()
}
