package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/okian/fabcar-web/internal/domain/model"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	viewIndex = "index.html"
	viewCars  = "cars.html"
)

// errorPage is written verbatim so a failing template cannot break it.
const errorPage = `<!doctype html>
<html>
  <head><meta charset="utf-8"><title>Internal Server Error</title></head>
  <body><h1>Internal Server Error</h1><p><a href="/">Back</a></p></body>
</html>
`

type views struct {
	tmpl *template.Template
}

// carsView is the data handed to the cars template.
type carsView struct {
	Cars []model.Car
}

func mustParseViews() *views {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		panic(fmt.Sprintf("parse view templates: %v", err))
	}
	return &views{tmpl: t}
}

// render executes name into a buffer first so a failed render never leaves a
// partial page behind.
func (v *views) render(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRender, name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	return nil
}

func (v *views) renderCars(w http.ResponseWriter, cars []model.Car) error {
	if cars == nil {
		cars = []model.Car{}
	}
	return v.render(w, viewCars, carsView{Cars: cars})
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(errorPage))
}
