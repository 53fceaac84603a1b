package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// TemplatesFS returns the embedded page templates.
func TemplatesFS() fs.FS {
	return templatesFS
}

// StaticFS returns the embedded stylesheet and script assets.
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
