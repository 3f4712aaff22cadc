package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/rmachado/landing-intake/internal/utils"
	"github.com/rmachado/landing-intake/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSecurityHeaders)
	router.Use(middleware.Recoverer)
	router.Use(h.rateLimit(h.limits.GlobalPerMinute))

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/", h.formPage)
		r.With(
			middleware.RequestSize(maxUploadBytes),
			h.rateLimit(h.limits.SubmitPerMinute),
			h.withCSRF,
		).Post("/enviar", h.submit)
	})

	// admin routes
	router.Route("/admin", func(r chi.Router) {
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(h.withAdminAuth)
			r.Get("/dashboard", h.dashboard)
			r.Get("/resposta/{id}", h.responseDetail)
		})
	})

	// stored images, referenced by admin detail pages
	router.Handle("/"+h.uploadDir+"/*", http.StripPrefix("/"+h.uploadDir+"/", http.FileServer(http.Dir(h.uploadDir))))

	return router
}

// rateLimit builds a per-client-address quota middleware over a one-minute
// window. Over-quota requests get a structured 429 body.
func (h *Handler) rateLimit(requestsPerMinute int) func(next http.Handler) http.Handler {
	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteJSON(w, models.ErrorResponse{Error: "Muitas requisições. Aguarde um minuto e tente novamente."}, http.StatusTooManyRequests)
		}),
	)
}
