package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/sefazor/pricing-web/pkg/ui"
)

//go:embed templates/*.html
var templateFS embed.FS

// Engine renders the embedded page templates. It satisfies fiber.Views.
type Engine struct {
	templates *template.Template
}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) Load() error {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"input": ui.Input,
		"cn":    ui.Merge,
		"when":  ui.If,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	e.templates = tmpl
	return nil
}

// Render executes the named template. Layouts are composed inside the
// templates themselves, so extra layout names are ignored.
func (e *Engine) Render(w io.Writer, name string, binding interface{}, _ ...string) error {
	if e.templates == nil {
		if err := e.Load(); err != nil {
			return err
		}
	}
	return e.templates.ExecuteTemplate(w, name, binding)
}
