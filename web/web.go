// Package web carries the embedded HTML templates for the list and
// detail pages.
package web

import (
	"embed"
	"html/template"
	"time"

	"github.com/shulware/gabbaibackend/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates holds every parsed page template, keyed by file name.
var Templates = template.Must(template.New("").Funcs(template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format(models.DateLayout)
	},
}).ParseFS(templatesFS, "templates/*.html"))
