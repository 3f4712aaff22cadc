package http

import (
	"context"
	"net/http"

	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/utils"
)

// sessionCookieName is the cookie carrying the admin session token.
const sessionCookieName = "admin_session"

// withAdminAuth guards the admin pages behind the session cookie.
//
// It reads the session cookie, validates the JWT it carries via
// [service.AdminService.ParseToken], and — on success — stores the
// authenticated operator's ID in the request context under
// [utils.AdminIDCtxKey] before delegating to the next handler.
//
// Any failure (no cookie, expired or tampered token) redirects the browser
// to the login page rather than returning a bare 401: the admin surface is
// HTML, not an API.
func (h *Handler) withAdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Debug().Str("uri", r.RequestURI).Msg("no session cookie, redirecting to login")
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		ctx := r.Context()
		token, err := h.services.AdminService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("session token rejected, redirecting to login")
			clearSessionCookie(w)
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		// Store the operator's ID in the context so downstream handlers and
		// the service-level capability checks can retrieve it without
		// re-parsing the token.
		ctx = context.WithValue(ctx, utils.AdminIDCtxKey, token.AdminID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// setSessionCookie installs the signed session token in the browser.
// HttpOnly keeps it away from page scripts; SameSite=Strict keeps it off
// cross-site requests.
func setSessionCookie(w http.ResponseWriter, signedToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signedToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
