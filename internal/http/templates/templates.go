// Package templates embeds the console's HTML views so the binary ships
// self-contained.
package templates

import (
	"embed"
	"html/template"
	"strconv"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"money": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	},
}

// Load parses every embedded view. Called once at startup; a parse error is
// a build defect, so callers treat it as fatal.
func Load() (*template.Template, error) {
	return template.New("console").Funcs(funcs).ParseFS(files, "*.html")
}
