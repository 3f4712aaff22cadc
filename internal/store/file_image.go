package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmachado/landing-intake/internal/config"
	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/utils"
)

// imageStorage is the file-system implementation of [ImageStorage].
//
// Stored names are "<uuid>_<sanitized original name>": the random token
// guarantees two uploads of same-named files never collide, while keeping
// the original name visible for operators browsing the upload directory.
type imageStorage struct {
	dir        string
	generateID func() string
	logger     *logger.Logger
}

// NewImageStorage constructs an [ImageStorage] rooted at the configured
// upload directory, creating the directory if it does not exist yet.
func NewImageStorage(cfg config.Files, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewImageStorage").Msg("error creating upload directory")
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.UploadDir).Msg("creating image storage")
	return &imageStorage{
		dir:        cfg.UploadDir,
		generateID: utils.NewUUIDGenerator().Generate,
		logger:     logger,
	}, nil
}

// Save writes content into the upload directory and returns the relative
// path to persist on the response row. A partially written file is removed
// if the copy fails, so a failed upload leaves no stray bytes behind.
func (s *imageStorage) Save(ctx context.Context, originalFilename string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	storedName := s.generateID() + "_" + sanitizeFilename(originalFilename)
	destination := filepath.Join(s.dir, storedName)

	file, err := os.Create(destination)
	if err != nil {
		log.Err(err).Str("func", "*imageStorage.Save").Msg("error creating image file")
		return "", fmt.Errorf("error creating image file: %w", err)
	}

	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(destination)
		log.Err(err).Str("func", "*imageStorage.Save").Msg("error writing image file")
		return "", fmt.Errorf("error writing image file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(destination)
		log.Err(err).Str("func", "*imageStorage.Save").Msg("error closing image file")
		return "", fmt.Errorf("error closing image file: %w", err)
	}

	return filepath.ToSlash(destination), nil
}

// sanitizeFilename strips any path components from name and replaces every
// character outside [a-zA-Z0-9._-] with an underscore. An empty result
// falls back to "file" so the stored name never ends with a bare token.
func sanitizeFilename(name string) string {
	base := filepath.Base(filepath.ToSlash(name))
	if base == "." || base == string(filepath.Separator) || base == "/" {
		base = ""
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	// no hidden files in the upload directory
	sanitized := strings.TrimLeft(b.String(), ".")
	if sanitized == "" {
		return "file"
	}

	return sanitized
}
