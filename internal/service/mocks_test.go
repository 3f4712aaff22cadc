package service

import (
	"context"
	"io"

	"github.com/rmachado/landing-intake/models"
)

// sampleSubmission returns a submission that passes every intake check,
// optionally adjusted by the given mutators.
func sampleSubmission(mutators ...func(*models.Submission)) models.Submission {
	submission := models.Submission{
		FirstName:   "Maria",
		LastName:    "Silva",
		Email:       "maria.silva@example.com",
		WhatsApp:    "11987654321",
		City:        "Campinas",
		State:       "SP",
		Movement:    "Movimento Estudantil",
		Union:       "Sindicato dos Metalúrgicos",
		Category:    "Metalúrgica",
		Employer:    "Oficina Central",
		Studying:    "sim",
		Course:      "Engenharia",
		Institution: "Unicamp",
		Message:     "Quero participar.",
	}

	for _, mutate := range mutators {
		mutate(&submission)
	}

	return submission
}

// ─────────────────────────────────────────────
// Mock: store.ResponseRepository
// ─────────────────────────────────────────────

type mockResponseRepository struct {
	createFn   func(ctx context.Context, response models.Response) (models.Response, error)
	findByIDFn func(ctx context.Context, id int64) (models.Response, error)
	searchFn   func(ctx context.Context, query string, limit, offset int) ([]models.Response, int, error)
}

func (m *mockResponseRepository) Create(ctx context.Context, response models.Response) (models.Response, error) {
	if m.createFn != nil {
		return m.createFn(ctx, response)
	}
	response.ID = 1
	return response, nil
}

func (m *mockResponseRepository) FindByID(ctx context.Context, id int64) (models.Response, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Response{}, nil
}

func (m *mockResponseRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.Response, int, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit, offset)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.AdminUserRepository
// ─────────────────────────────────────────────

type mockAdminUserRepository struct {
	createFn          func(ctx context.Context, admin models.AdminUser) (models.AdminUser, error)
	findByUsernameFn  func(ctx context.Context, username string) (models.AdminUser, error)
	countFn           func(ctx context.Context) (int, error)
	updateLastLoginFn func(ctx context.Context, id int64) error
}

func (m *mockAdminUserRepository) Create(ctx context.Context, admin models.AdminUser) (models.AdminUser, error) {
	if m.createFn != nil {
		return m.createFn(ctx, admin)
	}
	admin.ID = 1
	return admin, nil
}

func (m *mockAdminUserRepository) FindByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.AdminUser{}, nil
}

func (m *mockAdminUserRepository) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockAdminUserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	if m.updateLastLoginFn != nil {
		return m.updateLastLoginFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ImageStorage
// ─────────────────────────────────────────────

type mockImageStorage struct {
	saveFn func(ctx context.Context, originalFilename string, content io.Reader) (string, error)
}

func (m *mockImageStorage) Save(ctx context.Context, originalFilename string, content io.Reader) (string, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, originalFilename, content)
	}
	return "static/uploads/stored_" + originalFilename, nil
}
