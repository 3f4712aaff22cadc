package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rmachado/landing-intake/internal/config"
	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/store"
	"github.com/rmachado/landing-intake/internal/utils"
	"github.com/rmachado/landing-intake/models"
)

// adminService is the concrete implementation of [AdminService].
// It handles operator authentication, session token lifecycle, and
// read-only paginated access to stored responses.
//
// The capability check for query methods lives here rather than in routing
// middleware: Search and GetByID verify the caller's admin identity in ctx
// themselves, so the access rule holds no matter how the service is reached.
type adminService struct {
	// admins is the data-access layer for operator accounts.
	admins store.AdminUserRepository

	// responses is the data-access layer for stored submissions.
	responses store.ResponseRepository

	// tokenSignKey is the HMAC secret used to sign and verify session
	// tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session
	// token. Tokens whose issuer does not match are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session remains valid.
	tokenDuration time.Duration

	// defaultUsername and defaultPassword describe the account seeded by
	// EnsureDefaultAdmin when no operator exists yet.
	defaultUsername string
	defaultPassword string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAdminService constructs an [AdminService] wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAdminService(admins store.AdminUserRepository, responses store.ResponseRepository, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		admins:          admins,
		responses:       responses,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		defaultUsername: cfg.AdminUsername,
		defaultPassword: cfg.AdminPassword,
		logger:          logger,
	}
}

// Authenticate verifies an operator credential pair.
//
// Unknown username, inactive account, and bcrypt mismatch are all collapsed
// into ErrInvalidCredentials so a caller cannot probe which accounts exist.
// The password comparison is delegated to bcrypt's constant-time compare.
//
// On success the account's last-login timestamp is bumped and a signed
// session token is returned.
func (a *adminService) Authenticate(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.Token{}, ErrInvalidCredentials
	}

	admin, err := a.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoAdminWasFound) {
			log.Debug().Str("username", username).Msg("login attempt for unknown username")
			return models.Token{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("admin lookup failed")
		return models.Token{}, fmt.Errorf("admin lookup failed: %w", err)
	}

	if !admin.IsActive {
		log.Debug().Str("username", username).Msg("login attempt for inactive account")
		return models.Token{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("username", username).Msg("login attempt with wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	if err := a.admins.UpdateLastLogin(ctx, admin.ID); err != nil {
		log.Err(err).Int64("id", admin.ID).Msg("error updating last login timestamp")
		return models.Token{}, fmt.Errorf("error updating last login: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, admin.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", admin.ID).Msg("error issuing session token")
		return models.Token{}, fmt.Errorf("error issuing session token: %w", err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *adminService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Search returns one page of responses matching the optional query.
//
// Pages are 1-based and hold [models.PageSize] rows. A page beyond the last
// available range yields an empty row set with correct totals. A storage
// failure deliberately degrades to an empty page — the dashboard must
// always render — with the failure logged server-side.
func (a *adminService) Search(ctx context.Context, query string, page int) (models.Page, error) {
	log := logger.FromContext(ctx)

	if _, ok := utils.GetAdminIDFromContext(ctx); !ok {
		return models.Page{}, ErrInvalidCredentials
	}

	if page < 1 {
		page = 1
	}

	offset := (page - 1) * models.PageSize
	responses, total, err := a.responses.Search(ctx, query, models.PageSize, offset)
	if err != nil {
		log.Err(err).Str("query", query).Int("page", page).Msg("search failed, degrading to empty page")
		return models.EmptyPage(page), nil
	}

	totalPages := (total + models.PageSize - 1) / models.PageSize

	return models.Page{
		Responses:    responses,
		Number:       page,
		TotalRecords: total,
		TotalPages:   totalPages,
		HasPrev:      page > 1,
		HasNext:      page < totalPages,
	}, nil
}

// GetByID returns a single response by primary key. Absence surfaces as
// store.ErrNoResponseWasFound, a normal not-found outcome.
func (a *adminService) GetByID(ctx context.Context, id int64) (models.Response, error) {
	if _, ok := utils.GetAdminIDFromContext(ctx); !ok {
		return models.Response{}, ErrInvalidCredentials
	}

	found, err := a.responses.FindByID(ctx, id)
	if err != nil {
		return models.Response{}, err
	}

	return found, nil
}
