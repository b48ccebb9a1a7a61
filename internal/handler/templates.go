package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
)

const (
	baseTemplate     = "base.html"
	partialsTemplate = "partials.html"
)

func sub(a, b int) int { return a - b }
func add(a, b int) int { return a + b }

func dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("invalid dict call: number of arguments must be even")
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		m[key] = values[i+1]
	}
	return m, nil
}

var templateFuncs = template.FuncMap{
	"sub":   sub,
	"add":   add,
	"dict":  dict,
	"money": Money,
	"date":  Date,
}

// LoadTemplates parses every page in fsys together with the base layout and
// the shared partials. Pages are keyed by file name.
func LoadTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, f := range files {
		name := f.Name()
		if path.Ext(name) != ".html" || name == baseTemplate || name == partialsTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).Funcs(templateFuncs).ParseFS(fsys, baseTemplate, name, partialsTemplate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}
