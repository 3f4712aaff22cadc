package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/store"
	"github.com/rmachado/landing-intake/models"
)

// emailPattern is the permissive local@domain.tld shape check. Full RFC
// validation is deliberately out of scope; the schema-level CHECK
// constraint is the backstop.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// phonePattern requires exactly 11 ASCII digits: a 2-digit area code plus
// a 9-digit number.
var phonePattern = regexp.MustCompile(`^[0-9]{11}$`)

// allowedImageExtensions is the upload allow-list, matched
// case-insensitively against the substring after the final dot.
var allowedImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// intakeService is the concrete implementation of [IntakeService].
// It owns the sanitize → validate → store-image → insert pipeline.
type intakeService struct {
	// responses is the data-access layer used to persist accepted
	// submissions.
	responses store.ResponseRepository

	// images stores uploaded files outside the database and yields the
	// relative reference path recorded on the row.
	images store.ImageStorage

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewIntakeService constructs an [IntakeService] wired to the given
// repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewIntakeService(responses store.ResponseRepository, images store.ImageStorage, logger *logger.Logger) IntakeService {
	return &intakeService{
		responses: responses,
		images:    images,
		logger:    logger,
	}
}

// Submit runs the full intake pipeline for one submission.
//
// Sanitization is applied to every text field before any validation or
// storage. Validation is ordered and fails fast:
//  1. required fields → ErrMissingRequiredFields
//  2. email shape → ErrInvalidEmail
//  3. phone shape → ErrInvalidPhone
//  4. image extension allow-list → ErrDisallowedFileType
//
// Side effects: at most one file write and one row insert per call. A
// validation failure performs neither. There are no retries — the caller
// must resubmit.
func (s *intakeService) Submit(ctx context.Context, submission models.Submission, image *models.UploadedImage, clientIP string) (models.Response, error) {
	log := logger.FromContext(ctx)

	response := sanitizeSubmission(submission)

	if err := validateResponse(response); err != nil {
		log.Debug().Err(err).Str("email", response.Email).Msg("submission rejected by validation")
		return models.Response{}, err
	}

	if image != nil {
		if err := validateImage(image); err != nil {
			log.Debug().Err(err).Str("filename", image.Filename).Msg("uploaded image rejected")
			return models.Response{}, err
		}

		imagePath, err := s.images.Save(ctx, image.Filename, image.Content)
		if err != nil {
			log.Err(err).Msg("error storing uploaded image")
			return models.Response{}, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
		}
		response.ImagePath = imagePath
	}

	response.IPAddress = clientIP

	created, err := s.responses.Create(ctx, response)
	if err != nil {
		log.Err(err).Msg("error inserting response")
		return models.Response{}, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	return created, nil
}

// validateResponse applies the ordered field checks to an already
// sanitized response.
func validateResponse(response models.Response) error {
	if response.FirstName == "" || response.LastName == "" || response.Email == "" || response.WhatsApp == "" {
		return ErrMissingRequiredFields
	}

	if !emailPattern.MatchString(response.Email) {
		return ErrInvalidEmail
	}

	if !phonePattern.MatchString(response.WhatsApp) {
		return ErrInvalidPhone
	}

	return nil
}

// validateImage rejects attachments without a filename or with an
// extension outside the allow-list.
func validateImage(image *models.UploadedImage) error {
	if image.Filename == "" {
		return ErrDisallowedFileType
	}

	dot := strings.LastIndex(image.Filename, ".")
	if dot < 0 || dot == len(image.Filename)-1 {
		return ErrDisallowedFileType
	}

	extension := strings.ToLower(image.Filename[dot+1:])
	if _, ok := allowedImageExtensions[extension]; !ok {
		return ErrDisallowedFileType
	}

	return nil
}
