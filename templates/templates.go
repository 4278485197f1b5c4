package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
)

//go:embed *.html
var pageFS embed.FS

//go:embed static
var staticFS embed.FS

// Pages rendered inside base.html
var Pages = []string{"index"}

// Parse builds one template set per page, each paired with base.html. An
// empty dir uses the embedded copies.
func Parse(dir string) (map[string]*template.Template, error) {
	var fsys fs.FS = pageFS
	if dir != "" {
		fsys = os.DirFS(dir)
	}

	funcMap := template.FuncMap{
		"weekLabel": func(w int) string { return fmt.Sprintf("Week %d", w) },
	}

	templates := make(map[string]*template.Template, len(Pages))
	for _, page := range Pages {
		t, err := template.New("").Funcs(funcMap).ParseFS(fsys, "base.html", page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		templates[page] = t
	}
	return templates, nil
}

// Static returns the stylesheet and script served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
