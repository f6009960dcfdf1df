package api

import (
	"embed"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/milkdigit/internal/api/controller"
	"github.com/ougirez/milkdigit/internal/domain"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

type renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"date": func(t *time.Time) string {
		if t == nil {
			return "—"
		}
		return t.Format(domain.DateLayout)
	},
	"id": func(v *int64) string {
		if v == nil {
			return "—"
		}
		return strconv.FormatInt(*v, 10)
	},
	"num": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"join": strings.Join,
	"selected": func(nav domain.Navigation, stepID string) bool {
		return nav.StepID == stepID
	},
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer() (echo.Renderer, error) {
	r := &renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{controller.TemplateHome, controller.TemplateProduct, controller.TemplateAnalytics} {
		t, err := template.New(page).Funcs(templateFuncs).ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %s is not registered", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
