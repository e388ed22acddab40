// ABOUTME: Embedded static front end for the moodboard generator
// ABOUTME: Serves the attribute form, preview page, and embed relay script

package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var assets embed.FS

// Handler serves the embedded front end at the root path
func Handler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// The static directory is compiled in; a failure here is a build defect.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
