package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmachado/landing-intake/internal/service"
	"github.com/rmachado/landing-intake/internal/store"
	"github.com/rmachado/landing-intake/internal/utils"
	"github.com/rmachado/landing-intake/models"
)

// postLogin sends a url-encoded POST /admin/login through the full router.
func postLogin(t *testing.T, h *Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)
	return rec
}

// sessionCookie extracts the admin session cookie from a recorded response,
// or nil when none was set.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// GET /admin/login
// ─────────────────────────────────────────────

func TestLoginPage(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/admin/login"`)
	assert.Contains(t, rec.Body.String(), `name="csrf_token"`)
}

// ─────────────────────────────────────────────
// POST /admin/login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	admin := &mockAdminService{
		authenticateFn: func(_ context.Context, username, password string) (models.Token, error) {
			assert.Equal(t, "admin", username)
			assert.Equal(t, "s3cret", password)
			return models.Token{SignedString: "signed.jwt.token", AdminID: 1}, nil
		},
	}
	h := newTestHandler(t, nil, admin)

	rec := postLogin(t, h, url.Values{
		csrfFormField: {h.issueCSRFToken()},
		"username":    {"admin"},
		"password":    {"s3cret"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	admin := &mockAdminService{
		authenticateFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return models.Token{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, nil, admin)

	rec := postLogin(t, h, url.Values{
		csrfFormField: {h.issueCSRFToken()},
		"username":    {"admin"},
		"password":    {"wrong"},
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuário ou senha inválidos.")
	assert.Nil(t, sessionCookie(rec))
}

func TestLogin_BadCSRFToken(t *testing.T) {
	authCalled := false
	admin := &mockAdminService{
		authenticateFn: func(_ context.Context, _, _ string) (models.Token, error) {
			authCalled = true
			return models.Token{}, nil
		},
	}
	h := newTestHandler(t, nil, admin)

	rec := postLogin(t, h, url.Values{
		csrfFormField: {"forged"},
		"username":    {"admin"},
		"password":    {"s3cret"},
	})

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, authCalled)
	// the login page is re-rendered so the operator can retry
	assert.Contains(t, rec.Body.String(), `action="/admin/login"`)
}

// ─────────────────────────────────────────────
// GET /admin/logout
// ─────────────────────────────────────────────

func TestLogout(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

// ─────────────────────────────────────────────
// GET /admin/dashboard
// ─────────────────────────────────────────────

func TestDashboard_RedirectsWithoutSession(t *testing.T) {
	searchCalled := false
	admin := &mockAdminService{
		searchFn: func(_ context.Context, _ string, _ int) (models.Page, error) {
			searchCalled = true
			return models.Page{}, nil
		},
	}
	h := newTestHandler(t, nil, admin)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	assert.False(t, searchCalled)
}

func TestDashboard_RedirectsOnRejectedToken(t *testing.T) {
	admin := &mockAdminService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(t, nil, admin)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "expired.jwt"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	// the dead cookie is cleared on the way out
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}

func TestDashboard_Success(t *testing.T) {
	var gotQuery string
	var gotPage int
	admin := &mockAdminService{
		searchFn: func(ctx context.Context, query string, page int) (models.Page, error) {
			adminID, ok := utils.GetAdminIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, int64(1), adminID)

			gotQuery = query
			gotPage = page
			return models.Page{
				Responses: []models.Response{
					{ID: 5, FirstName: "Maria", LastName: "Silva", Email: "maria.silva@example.com", CreatedAt: time.Now()},
				},
				Number:       page,
				TotalRecords: 21,
				TotalPages:   2,
				HasPrev:      true,
			}, nil
		},
	}
	h := newTestHandler(t, nil, admin)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard?page=2&search=maria", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.jwt"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "maria", gotQuery)
	assert.Equal(t, 2, gotPage)
	assert.Contains(t, rec.Body.String(), "maria.silva@example.com")
	assert.Contains(t, rec.Body.String(), "/admin/resposta/5")
}

func TestDashboard_InvalidPageDefaultsToOne(t *testing.T) {
	var gotPage int
	admin := &mockAdminService{
		searchFn: func(_ context.Context, _ string, page int) (models.Page, error) {
			gotPage = page
			return models.EmptyPage(page), nil
		},
	}
	h := newTestHandler(t, nil, admin)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard?page=abc", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.jwt"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gotPage)
	assert.Contains(t, rec.Body.String(), "Nenhuma resposta encontrada.")
}

// ─────────────────────────────────────────────
// GET /admin/resposta/{id}
// ─────────────────────────────────────────────

func TestResponseDetail_Success(t *testing.T) {
	admin := &mockAdminService{
		getByIDFn: func(_ context.Context, id int64) (models.Response, error) {
			return models.Response{
				ID:        id,
				FirstName: "Maria",
				LastName:  "Silva",
				Email:     "maria.silva@example.com",
				ImagePath: "static/uploads/abc_carteirinha.png",
				CreatedAt: time.Now(),
			}, nil
		},
	}
	h := newTestHandler(t, nil, admin)

	req := httptest.NewRequest(http.MethodGet, "/admin/resposta/42", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.jwt"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Resposta #42")
	assert.Contains(t, rec.Body.String(), "/static/uploads/abc_carteirinha.png")
}

func TestResponseDetail_NotFound(t *testing.T) {
	admin := &mockAdminService{
		getByIDFn: func(_ context.Context, _ int64) (models.Response, error) {
			return models.Response{}, store.ErrNoResponseWasFound
		},
	}
	h := newTestHandler(t, nil, admin)

	req := httptest.NewRequest(http.MethodGet, "/admin/resposta/999", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.jwt"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseDetail_NonNumericID(t *testing.T) {
	getCalled := false
	admin := &mockAdminService{
		getByIDFn: func(_ context.Context, _ int64) (models.Response, error) {
			getCalled = true
			return models.Response{}, nil
		},
	}
	h := newTestHandler(t, nil, admin)

	req := httptest.NewRequest(http.MethodGet, "/admin/resposta/abc", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.jwt"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, getCalled)
}
