package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/utils"
	"github.com/rmachado/landing-intake/models"
)

// csrfFormField is the hidden input carrying the anti-forgery token on the
// public form and the admin login page.
const csrfFormField = "csrf_token"

// issueCSRFToken mints a fresh anti-forgery token: a random nonce joined
// with its HMAC-SHA256 signature under the server's CSRF key. The token is
// stateless; possession of a validly signed token proves it was issued by
// this server's pages.
func (h *Handler) issueCSRFToken() string {
	nonce := uuid.NewString()
	return nonce + "." + utils.HashString(nonce, h.csrfKey)
}

// validCSRFToken verifies a token previously minted by issueCSRFToken.
func (h *Handler) validCSRFToken(token string) bool {
	nonce, signature, found := strings.Cut(token, ".")
	if !found || nonce == "" {
		return false
	}

	return utils.ValidMAC(nonce, signature, h.csrfKey)
}

// withCSRF rejects form POSTs that do not carry a validly signed
// anti-forgery token. The request form must already be parseable; the
// token is read via FormValue so both url-encoded and multipart bodies
// are covered.
//
// Rejections are written as JSON because the protected endpoints respond
// with JSON on every other failure as well.
func (h *Handler) withCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if !h.validCSRFToken(r.FormValue(csrfFormField)) {
			log.Warn().Str("uri", r.RequestURI).Msg("request rejected: missing or invalid csrf token")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid or missing csrf token"}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
