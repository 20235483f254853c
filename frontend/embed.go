package frontend

import (
	"embed"
	"io/fs"
	"net/http"
)

// Templates embeds the server-rendered pages
//
//go:embed templates/*.html
var Templates embed.FS

// Static embeds stylesheets and other assets served under /static
//
//go:embed static
var Static embed.FS

// GetHTTPFS returns the embedded static filesystem for HTTP serving
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(Static, "static")
	if err != nil {
		return nil, err
	}

	// A stylesheet marks a complete asset bundle
	if !isStaticBuilt(sub) {
		return nil, &fs.PathError{Op: "stat", Path: "style.css", Err: fs.ErrNotExist}
	}

	return http.FS(sub), nil
}

func isStaticBuilt(fsys fs.FS) bool {
	if _, err := fs.Stat(fsys, "style.css"); err != nil {
		return false
	}
	return true
}
