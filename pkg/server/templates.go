package server

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// pageTemplates maps a page name to its parsed base+content template set.
type pageTemplates map[string]*template.Template

func parseTemplates() (pageTemplates, error) {
	funcs := template.FuncMap{
		// css admits a resolved #RRGGBB value into a style attribute.
		"css": func(s string) template.CSS {
			if len(s) != 7 || s[0] != '#' {
				return template.CSS("transparent")
			}
			for _, c := range s[1:] {
				if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
					return template.CSS("transparent")
				}
			}
			return template.CSS(s)
		},
	}
	out := make(pageTemplates)
	for _, name := range []string{"index", "result"} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/base.gohtml", "templates/"+name+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

func (p pageTemplates) render(w io.Writer, name string, data any) error {
	t, ok := p[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "base", data)
}
