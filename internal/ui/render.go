package ui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Each page is parsed together with the shared layout so {{template "layout"}}
// resolves per page.
var pages = map[string]*template.Template{
	"home":   parse("home.html"),
	"login":  parse("login.html"),
	"signup": parse("signup.html"),
	"files":  parse("files.html"),
}

func parse(page string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page))
}

// Render writes the named page. Render failures log and return a 500.
func Render(w http.ResponseWriter, page string, data any) {
	tmpl, ok := pages[page]
	if !ok {
		slog.Error("render failed, unknown page", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := tmpl.ExecuteTemplate(w, "layout", data)
	if err != nil {
		slog.Error("render failed", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
