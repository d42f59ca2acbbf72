package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"finch/internal/scoring"

	"github.com/charmbracelet/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handlers carries the process-wide read-only state every request needs:
// the scoring pipeline around the loaded classifier, and the parsed views.
// Injected once at startup instead of reaching for ambient globals.
type Handlers struct {
	pipeline *scoring.Pipeline
	views    *template.Template
}

func NewHandlers(classifier scoring.Classifier) (*Handlers, error) {
	views, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("server: parse templates: %w", err)
	}

	return &Handlers{
		pipeline: scoring.NewPipeline(classifier),
		views:    views,
	}, nil
}

func (h *Handlers) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.views.ExecuteTemplate(w, name, data); err != nil {
		log.Error("Failed to render view", "view", name, "error", err)
	}
}

func (h *Handlers) renderError(w http.ResponseWriter, status int, msg string) {
	h.render(w, status, "error.html", map[string]string{"Error": msg})
}
