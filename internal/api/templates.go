package api

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*
var templateFS embed.FS

// newTemplates creates and parses the HTML templates with custom functions.
func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"shortTime": func(iso string) string {
			// "2026-08-29T14:00" -> "14:00"
			if i := strings.IndexByte(iso, 'T'); i >= 0 {
				return iso[i+1:]
			}
			return iso
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
