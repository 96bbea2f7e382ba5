// html рендерит view-модели диалогов во фрагменты разметки.
//
// Шаблоны встроены в бинарь; имя шаблона совпадает с ролью диалога
// (view.Identity) плюс расширение .html.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/hanstar/webfront/internal/view"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer — реализация front.Renderer поверх html/template.
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

// Render исполняет шаблон роли id над моделью data.
func (r *Renderer) Render(id view.Identity, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, string(id)+".html", data); err != nil {
		return "", fmt.Errorf("render %s: %w", id, err)
	}

	return buf.String(), nil
}
