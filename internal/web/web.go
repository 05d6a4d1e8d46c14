package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"stars": func(n int) string {
		if n < 0 {
			n = 0
		}
		if n > 5 {
			n = 5
		}
		return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
	},
	"join": strings.Join,
	"dict": dict,
	// ratingLabel mirrors the captions shown under the star pickers.
	"ratingLabel": func(n int) string {
		switch n {
		case 1:
			return "Muy malo"
		case 2:
			return "Malo"
		case 3:
			return "Regular"
		case 4:
			return "Bueno"
		case 5:
			return "Excelente"
		}
		return ""
	},
}

// Templates parses every page. The layout is named "base" and picks the
// page body from .Page.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}

// dict builds the argument map for a nested template call.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[k] = pairs[i+1]
	}
	return m, nil
}
