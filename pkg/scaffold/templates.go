package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embeddedTemplates embed.FS

func defaultTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The embed directive guarantees the directory exists.
		return embeddedTemplates
	}
	return sub
}
