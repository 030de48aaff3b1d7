// Package templates renders the user-facing pages. Rendering is deliberately
// thin; the pages are static shells over the JSON API.
package templates

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed pages/*.html
var pagesFS embed.FS

var pages = template.Must(template.ParseFS(pagesFS, "pages/*.html"))

// PageData is what every page template receives.
type PageData struct {
	Flash string
	Phone string
}

// Render writes the named page. Render errors are logged, not surfaced: by
// the time execution fails, headers may already be out.
func Render(w http.ResponseWriter, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}
