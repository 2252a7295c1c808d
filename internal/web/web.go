// Package web holds the embedded HTML templates of the public site.
package web

import (
	"embed"
	"html/template"
	"time"

	"github.com/blogicum/blogicum/internal/models"
	"github.com/blogicum/blogicum/internal/pkg/markdown"
)

//go:embed templates
var files embed.FS

// DateLayout is how publication dates are printed on the site.
const DateLayout = "2 January 2006, 15:04"

// Funcs are available in every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": markdown.Render,
		"label": func(v models.Labeled) string {
			return v.Label()
		},
		"date": func(t time.Time) string {
			return t.In(time.Local).Format(DateLayout)
		},
	}
}

// Templates parses every embedded template. Each file defines itself under its
// path relative to templates/, e.g. "blog/index.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files,
		"templates/includes/*.html",
		"templates/blog/*.html",
		"templates/pages/*.html",
	)
}
