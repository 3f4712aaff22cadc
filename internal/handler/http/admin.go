package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/service"
	"github.com/rmachado/landing-intake/internal/store"
	"github.com/rmachado/landing-intake/models"
)

// loginPageData backs the login template.
type loginPageData struct {
	CSRFToken string
	Flash     string
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "login.html", http.StatusOK, loginPageData{
		CSRFToken: h.issueCSRFToken(),
	})
}

// login handles POST /admin/login. The CSRF check is inline rather than in
// middleware because every failure here re-renders the HTML login page with
// a flash message instead of returning JSON.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.validCSRFToken(r.FormValue(csrfFormField)) {
		log.Warn().Msg("login rejected: missing or invalid csrf token")
		h.renderPage(w, r, "login.html", http.StatusForbidden, loginPageData{
			CSRFToken: h.issueCSRFToken(),
			Flash:     "Sessão expirada. Tente novamente.",
		})
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	token, err := h.services.AdminService.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Debug().Str("username", username).Msg("login rejected: invalid credentials")
			h.renderPage(w, r, "login.html", http.StatusUnauthorized, loginPageData{
				CSRFToken: h.issueCSRFToken(),
				Flash:     "Usuário ou senha inválidos.",
			})
			return
		}

		log.Err(err).Msg("unexpected error occurred during admin login")
		h.renderPage(w, r, "login.html", http.StatusInternalServerError, loginPageData{
			CSRFToken: h.issueCSRFToken(),
			Flash:     "Erro interno. Tente novamente.",
		})
		return
	}

	setSessionCookie(w, token.SignedString)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// dashboardPageData backs the dashboard template.
type dashboardPageData struct {
	Page     models.Page
	Search   string
	PrevPage int
	NextPage int
}

// dashboard handles GET /admin/dashboard?page=N&search=Q.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	search := r.URL.Query().Get("search")
	pageNumber, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || pageNumber < 1 {
		pageNumber = 1
	}

	page, err := h.services.AdminService.Search(ctx, search, pageNumber)
	if err != nil {
		log.Err(err).Msg("dashboard search rejected")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	h.renderPage(w, r, "dashboard.html", http.StatusOK, dashboardPageData{
		Page:     page,
		Search:   search,
		PrevPage: page.Number - 1,
		NextPage: page.Number + 1,
	})
}

// responseDetail handles GET /admin/resposta/{id}.
func (h *Handler) responseDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	found, err := h.services.AdminService.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoResponseWasFound):
			http.NotFound(w, r)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		default:
			log.Err(err).Int64("id", id).Msg("unexpected error occurred loading response")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.renderPage(w, r, "response.html", http.StatusOK, struct {
		Response models.Response
	}{
		Response: found,
	})
}
