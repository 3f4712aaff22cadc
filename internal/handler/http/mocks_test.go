package http

import (
	"context"
	"testing"

	"github.com/rmachado/landing-intake/internal/config"
	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/service"
	"github.com/rmachado/landing-intake/models"
)

// ─────────────────────────────────────────────
// Mock IntakeService
// ─────────────────────────────────────────────

// mockIntakeService implements service.IntakeService for unit tests.
// Each method field can be overridden per test case.
type mockIntakeService struct {
	submitFn func(ctx context.Context, submission models.Submission, image *models.UploadedImage, clientIP string) (models.Response, error)
}

func (m *mockIntakeService) Submit(ctx context.Context, submission models.Submission, image *models.UploadedImage, clientIP string) (models.Response, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, submission, image, clientIP)
	}
	return models.Response{ID: 1}, nil
}

// ─────────────────────────────────────────────
// Mock AdminService
// ─────────────────────────────────────────────

// mockAdminService implements service.AdminService for unit tests.
type mockAdminService struct {
	authenticateFn       func(ctx context.Context, username, password string) (models.Token, error)
	parseTokenFn         func(ctx context.Context, tokenString string) (models.Token, error)
	searchFn             func(ctx context.Context, query string, page int) (models.Page, error)
	getByIDFn            func(ctx context.Context, id int64) (models.Response, error)
	ensureDefaultAdminFn func(ctx context.Context) error
}

func (m *mockAdminService) Authenticate(ctx context.Context, username, password string) (models.Token, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, username, password)
	}
	return models.Token{SignedString: "signed.jwt.token", AdminID: 1}, nil
}

func (m *mockAdminService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{SignedString: tokenString, AdminID: 1}, nil
}

func (m *mockAdminService) Search(ctx context.Context, query string, page int) (models.Page, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, page)
	}
	return models.EmptyPage(page), nil
}

func (m *mockAdminService) GetByID(ctx context.Context, id int64) (models.Response, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Response{ID: id}, nil
}

func (m *mockAdminService) EnsureDefaultAdmin(ctx context.Context) error {
	if m.ensureDefaultAdminFn != nil {
		return m.ensureDefaultAdminFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks and generous
// default rate limits.
func newTestHandler(t *testing.T, intake service.IntakeService, admin service.AdminService) *Handler {
	t.Helper()

	if intake == nil {
		intake = &mockIntakeService{}
	}
	if admin == nil {
		admin = &mockAdminService{}
	}

	svcs := &service.Services{
		IntakeService: intake,
		AdminService:  admin,
	}

	limits := config.Limits{GlobalPerMinute: 1000, SubmitPerMinute: 100}
	return NewHandler(svcs, "test-csrf-key", limits, "static/uploads", logger.Nop())
}
