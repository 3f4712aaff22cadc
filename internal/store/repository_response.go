package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/models"
)

// responseRepository is the SQLite-backed implementation of
// [ResponseRepository]. It handles submission inserts and read-only lookups
// against the "responses" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type responseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResponseRepository constructs a [ResponseRepository] backed by the
// provided database connection and logger.
func NewResponseRepository(db *DB, logger *logger.Logger) ResponseRepository {
	logger.Debug().Msg("creating response repository")
	return &responseRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new response row and returns the fully populated
// [models.Response] with server-assigned fields (ID, CreatedAt).
//
// The insert is a single statement, so atomicity comes from the storage
// engine itself: either the whole row is written or nothing is.
//
// Error handling:
//   - SQLite CHECK violation (email_format) → [ErrEmailConstraintViolated].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *responseRepository) Create(ctx context.Context, response models.Response) (models.Response, error) {
	log := logger.FromContext(ctx)

	response.CreatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, insertResponse,
		response.FirstName,
		response.LastName,
		response.Email,
		response.WhatsApp,
		response.City,
		response.State,
		response.Movement,
		response.Union,
		response.Category,
		response.Employer,
		response.Studying,
		response.Course,
		response.Institution,
		response.Message,
		response.ImagePath,
		response.IPAddress,
		response.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*responseRepository.Create").Msg("error: insert failed")

		if isSQLiteConstraint(err, sqlite3.ErrConstraintCheck) {
			return models.Response{}, ErrEmailConstraintViolated
		}
		return models.Response{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*responseRepository.Create").Msg("error: reading inserted id")
		return models.Response{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	response.ID = id
	return response, nil
}

// FindByID retrieves one response row by primary key.
//
// Error handling:
//   - No matching row → [ErrNoResponseWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *responseRepository) FindByID(ctx context.Context, id int64) (models.Response, error) {
	log := logger.FromContext(ctx)

	var found models.Response
	row := r.db.QueryRowContext(ctx, getResponseByID, id)

	if err := scanResponse(row.Scan, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Response{}, ErrNoResponseWasFound
		}

		log.Err(err).Str("func", "*responseRepository.FindByID").Msg("error: scanning error")
		return models.Response{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// Search returns one page of responses matching the optional query plus the
// total number of matching rows. Ordering is newest-first. An offset beyond
// the last row yields an empty slice with the correct total.
func (r *responseRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.Response, int, error) {
	log := logger.FromContext(ctx)

	countSQL, countArgs, err := buildCountQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*responseRepository.Search").Msg("error: building count query")
		return nil, 0, fmt.Errorf("error building count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*responseRepository.Search").Msg("error: counting matches")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	searchSQL, searchArgs, err := buildSearchQuery(query, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*responseRepository.Search").Msg("error: building search query")
		return nil, 0, fmt.Errorf("error building search query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, searchSQL, searchArgs...)
	if err != nil {
		log.Err(err).Str("func", "*responseRepository.Search").Msg("error: querying matches")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	found := make([]models.Response, 0, limit)
	for rows.Next() {
		var response models.Response
		if err := scanResponse(rows.Scan, &response); err != nil {
			log.Err(err).Str("func", "*responseRepository.Search").Msg("error: scanning error")
			return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
		}
		found = append(found, response)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*responseRepository.Search").Msg("error: iterating rows")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, total, nil
}

// scanResponse maps one row in [responseColumns] order onto response.
// The scan parameter abstracts over *sql.Row and *sql.Rows.
func scanResponse(scan func(dest ...any) error, response *models.Response) error {
	return scan(
		&response.ID,
		&response.FirstName,
		&response.LastName,
		&response.Email,
		&response.WhatsApp,
		&response.City,
		&response.State,
		&response.Movement,
		&response.Union,
		&response.Category,
		&response.Employer,
		&response.Studying,
		&response.Course,
		&response.Institution,
		&response.Message,
		&response.ImagePath,
		&response.IPAddress,
		&response.CreatedAt,
	)
}
