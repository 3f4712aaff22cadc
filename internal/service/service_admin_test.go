package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rmachado/landing-intake/internal/config"
	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/store"
	"github.com/rmachado/landing-intake/internal/utils"
	"github.com/rmachado/landing-intake/models"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "landing-intake-test",
		TokenDuration: time.Hour,
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}
}

func newTestAdminService(admins *mockAdminUserRepository, responses *mockResponseRepository) AdminService {
	return NewAdminService(admins, responses, testAppConfig(), logger.Nop())
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), utils.AdminIDCtxKey, int64(1))
}

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAdminService_Authenticate_Success(t *testing.T) {
	lastLoginBumped := false
	admins := &mockAdminUserRepository{
		findByUsernameFn: func(ctx context.Context, username string) (models.AdminUser, error) {
			return models.AdminUser{ID: 7, Username: username, PasswordHash: bcryptHash(t, "s3cret"), IsActive: true}, nil
		},
		updateLastLoginFn: func(ctx context.Context, id int64) error {
			lastLoginBumped = true
			assert.Equal(t, int64(7), id)
			return nil
		},
	}
	admin := newTestAdminService(admins, &mockResponseRepository{})

	token, err := admin.Authenticate(context.Background(), "admin", "s3cret")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(7), token.AdminID)
	assert.True(t, lastLoginBumped)
}

func TestAdminService_Authenticate_FailuresAreIndistinguishable(t *testing.T) {
	// Unknown user, inactive account, and wrong password must all return
	// the exact same sentinel.
	tests := []struct {
		name   string
		admins *mockAdminUserRepository
	}{
		{
			name: "unknown username",
			admins: &mockAdminUserRepository{
				findByUsernameFn: func(ctx context.Context, username string) (models.AdminUser, error) {
					return models.AdminUser{}, store.ErrNoAdminWasFound
				},
			},
		},
		{
			name: "inactive account",
			admins: &mockAdminUserRepository{
				findByUsernameFn: func(ctx context.Context, username string) (models.AdminUser, error) {
					return models.AdminUser{ID: 1, PasswordHash: bcryptHash(t, "s3cret"), IsActive: false}, nil
				},
			},
		},
		{
			name: "wrong password",
			admins: &mockAdminUserRepository{
				findByUsernameFn: func(ctx context.Context, username string) (models.AdminUser, error) {
					return models.AdminUser{ID: 1, PasswordHash: bcryptHash(t, "different"), IsActive: true}, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admin := newTestAdminService(tt.admins, &mockResponseRepository{})

			_, err := admin.Authenticate(context.Background(), "admin", "s3cret")

			assert.Equal(t, ErrInvalidCredentials, err)
		})
	}
}

func TestAdminService_Authenticate_EmptyCredentials(t *testing.T) {
	lookupCalled := false
	admins := &mockAdminUserRepository{
		findByUsernameFn: func(ctx context.Context, username string) (models.AdminUser, error) {
			lookupCalled = true
			return models.AdminUser{}, nil
		},
	}
	admin := newTestAdminService(admins, &mockResponseRepository{})

	_, err := admin.Authenticate(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, lookupCalled)
}

func TestAdminService_Authenticate_LookupFailure(t *testing.T) {
	admins := &mockAdminUserRepository{
		findByUsernameFn: func(ctx context.Context, username string) (models.AdminUser, error) {
			return models.AdminUser{}, errors.New("database is locked")
		},
	}
	admin := newTestAdminService(admins, &mockResponseRepository{})

	_, err := admin.Authenticate(context.Background(), "admin", "s3cret")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminService_Authenticate_LastLoginFailure(t *testing.T) {
	admins := &mockAdminUserRepository{
		findByUsernameFn: func(ctx context.Context, username string) (models.AdminUser, error) {
			return models.AdminUser{ID: 1, PasswordHash: bcryptHash(t, "s3cret"), IsActive: true}, nil
		},
		updateLastLoginFn: func(ctx context.Context, id int64) error {
			return errors.New("database is locked")
		},
	}
	admin := newTestAdminService(admins, &mockResponseRepository{})

	_, err := admin.Authenticate(context.Background(), "admin", "s3cret")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// ParseToken
// ─────────────────────────────────────────────

func TestAdminService_ParseToken_RoundTrip(t *testing.T) {
	cfg := testAppConfig()
	admin := newTestAdminService(&mockAdminUserRepository{}, &mockResponseRepository{})

	issued, err := utils.GenerateJWTToken(cfg.TokenIssuer, 7, cfg.TokenDuration, cfg.TokenSignKey)
	require.NoError(t, err)

	parsed, err := admin.ParseToken(context.Background(), issued.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.AdminID)
}

func TestAdminService_ParseToken_Invalid(t *testing.T) {
	cfg := testAppConfig()
	admin := newTestAdminService(&mockAdminUserRepository{}, &mockResponseRepository{})

	expired, err := utils.GenerateJWTToken(cfg.TokenIssuer, 7, -time.Hour, cfg.TokenSignKey)
	require.NoError(t, err)

	wrongKey, err := utils.GenerateJWTToken(cfg.TokenIssuer, 7, time.Hour, "other-key")
	require.NoError(t, err)

	wrongIssuer, err := utils.GenerateJWTToken("someone-else", 7, time.Hour, cfg.TokenSignKey)
	require.NoError(t, err)

	for name, tokenString := range map[string]string{
		"garbage":      "not.a.token",
		"expired":      expired.SignedString,
		"wrong key":    wrongKey.SignedString,
		"wrong issuer": wrongIssuer.SignedString,
	} {
		_, err := admin.ParseToken(context.Background(), tokenString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid, name)
	}
}

// ─────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────

func TestAdminService_Search_RequiresAdminContext(t *testing.T) {
	searchCalled := false
	responses := &mockResponseRepository{
		searchFn: func(ctx context.Context, query string, limit, offset int) ([]models.Response, int, error) {
			searchCalled = true
			return nil, 0, nil
		},
	}
	admin := newTestAdminService(&mockAdminUserRepository{}, responses)

	_, err := admin.Search(context.Background(), "", 1)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, searchCalled)
}

func TestAdminService_Search_PaginationMath(t *testing.T) {
	responses := &mockResponseRepository{
		searchFn: func(ctx context.Context, query string, limit, offset int) ([]models.Response, int, error) {
			assert.Equal(t, models.PageSize, limit)
			assert.Equal(t, 2*models.PageSize, offset)
			return []models.Response{{ID: 41}, {ID: 42}}, 45, nil
		},
	}
	admin := newTestAdminService(&mockAdminUserRepository{}, responses)

	page, err := admin.Search(adminContext(), "", 3)

	require.NoError(t, err)
	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 45, page.TotalRecords)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
	assert.Len(t, page.Responses, 2)
}

func TestAdminService_Search_FirstPage(t *testing.T) {
	responses := &mockResponseRepository{
		searchFn: func(ctx context.Context, query string, limit, offset int) ([]models.Response, int, error) {
			assert.Equal(t, 0, offset)
			return []models.Response{{ID: 1}}, 45, nil
		},
	}
	admin := newTestAdminService(&mockAdminUserRepository{}, responses)

	page, err := admin.Search(adminContext(), "maria", 1)

	require.NoError(t, err)
	assert.False(t, page.HasPrev)
	assert.True(t, page.HasNext)
}

func TestAdminService_Search_NormalizesPageBelowOne(t *testing.T) {
	var gotOffset int
	responses := &mockResponseRepository{
		searchFn: func(ctx context.Context, query string, limit, offset int) ([]models.Response, int, error) {
			gotOffset = offset
			return nil, 0, nil
		},
	}
	admin := newTestAdminService(&mockAdminUserRepository{}, responses)

	page, err := admin.Search(adminContext(), "", 0)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 0, gotOffset)
}

func TestAdminService_Search_PageBeyondRange(t *testing.T) {
	responses := &mockResponseRepository{
		searchFn: func(ctx context.Context, query string, limit, offset int) ([]models.Response, int, error) {
			return nil, 45, nil
		},
	}
	admin := newTestAdminService(&mockAdminUserRepository{}, responses)

	page, err := admin.Search(adminContext(), "", 9)

	require.NoError(t, err)
	assert.Empty(t, page.Responses)
	assert.Equal(t, 45, page.TotalRecords)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.HasNext)
}

func TestAdminService_Search_StorageFailureDegradesToEmptyPage(t *testing.T) {
	responses := &mockResponseRepository{
		searchFn: func(ctx context.Context, query string, limit, offset int) ([]models.Response, int, error) {
			return nil, 0, errors.New("database is locked")
		},
	}
	admin := newTestAdminService(&mockAdminUserRepository{}, responses)

	page, err := admin.Search(adminContext(), "maria", 2)

	require.NoError(t, err)
	assert.Empty(t, page.Responses)
	assert.Equal(t, 2, page.Number)
	assert.Zero(t, page.TotalRecords)
	assert.Zero(t, page.TotalPages)
}

// ─────────────────────────────────────────────
// GetByID
// ─────────────────────────────────────────────

func TestAdminService_GetByID_RequiresAdminContext(t *testing.T) {
	admin := newTestAdminService(&mockAdminUserRepository{}, &mockResponseRepository{})

	_, err := admin.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminService_GetByID_Found(t *testing.T) {
	responses := &mockResponseRepository{
		findByIDFn: func(ctx context.Context, id int64) (models.Response, error) {
			return models.Response{ID: id, FirstName: "Maria"}, nil
		},
	}
	admin := newTestAdminService(&mockAdminUserRepository{}, responses)

	found, err := admin.GetByID(adminContext(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), found.ID)
	assert.Equal(t, "Maria", found.FirstName)
}

func TestAdminService_GetByID_NotFound(t *testing.T) {
	responses := &mockResponseRepository{
		findByIDFn: func(ctx context.Context, id int64) (models.Response, error) {
			return models.Response{}, store.ErrNoResponseWasFound
		},
	}
	admin := newTestAdminService(&mockAdminUserRepository{}, responses)

	_, err := admin.GetByID(adminContext(), 42)

	assert.ErrorIs(t, err, store.ErrNoResponseWasFound)
}

// ─────────────────────────────────────────────
// EnsureDefaultAdmin
// ─────────────────────────────────────────────

func TestAdminService_EnsureDefaultAdmin_SeedsWhenEmpty(t *testing.T) {
	var created models.AdminUser
	admins := &mockAdminUserRepository{
		countFn: func(ctx context.Context) (int, error) { return 0, nil },
		createFn: func(ctx context.Context, admin models.AdminUser) (models.AdminUser, error) {
			created = admin
			admin.ID = 1
			return admin, nil
		},
	}
	admin := newTestAdminService(admins, &mockResponseRepository{})

	err := admin.EnsureDefaultAdmin(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "admin", created.Username)
	assert.True(t, created.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("admin123")))
}

func TestAdminService_EnsureDefaultAdmin_SkipsWhenAccountsExist(t *testing.T) {
	createCalled := false
	admins := &mockAdminUserRepository{
		countFn: func(ctx context.Context) (int, error) { return 3, nil },
		createFn: func(ctx context.Context, admin models.AdminUser) (models.AdminUser, error) {
			createCalled = true
			return admin, nil
		},
	}
	admin := newTestAdminService(admins, &mockResponseRepository{})

	err := admin.EnsureDefaultAdmin(context.Background())

	require.NoError(t, err)
	assert.False(t, createCalled)
}

func TestAdminService_EnsureDefaultAdmin_Idempotent(t *testing.T) {
	// Simulate a real store: the first call seeds, the second sees the
	// seeded account and does nothing.
	var accounts []models.AdminUser
	admins := &mockAdminUserRepository{
		countFn: func(ctx context.Context) (int, error) { return len(accounts), nil },
		createFn: func(ctx context.Context, admin models.AdminUser) (models.AdminUser, error) {
			admin.ID = int64(len(accounts) + 1)
			accounts = append(accounts, admin)
			return admin, nil
		},
	}
	admin := newTestAdminService(admins, &mockResponseRepository{})

	require.NoError(t, admin.EnsureDefaultAdmin(context.Background()))
	require.NoError(t, admin.EnsureDefaultAdmin(context.Background()))

	assert.Len(t, accounts, 1)
}

func TestAdminService_EnsureDefaultAdmin_LostRaceIsSuccess(t *testing.T) {
	admins := &mockAdminUserRepository{
		countFn: func(ctx context.Context) (int, error) { return 0, nil },
		createFn: func(ctx context.Context, admin models.AdminUser) (models.AdminUser, error) {
			return models.AdminUser{}, store.ErrUsernameAlreadyExists
		},
	}
	admin := newTestAdminService(admins, &mockResponseRepository{})

	assert.NoError(t, admin.EnsureDefaultAdmin(context.Background()))
}

func TestAdminService_EnsureDefaultAdmin_CountFailure(t *testing.T) {
	admins := &mockAdminUserRepository{
		countFn: func(ctx context.Context) (int, error) { return 0, errors.New("database is locked") },
	}
	admin := newTestAdminService(admins, &mockResponseRepository{})

	assert.Error(t, admin.EnsureDefaultAdmin(context.Background()))
}
