package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rmachado/landing-intake/internal/logger"
)

//go:embed templates/*.html
var templateFiles embed.FS

// pageTemplates holds the parsed embedded HTML pages. Parsing happens once
// at package load; a malformed embedded template is a programming error and
// fails immediately.
var pageTemplates = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// renderPage executes the named embedded template with data. A render
// failure after headers were written cannot be recovered, so it is only
// logged.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, statusCode int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("error rendering page")
	}
}
