package http

import (
	"github.com/rmachado/landing-intake/internal/config"
	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/service"
)

type Handler struct {
	services *service.Services

	// csrfKey signs the anti-forgery tokens embedded in the public form
	// and the admin login page.
	csrfKey string

	// limits holds the per-client-address request quotas enforced by the
	// rate limiting middleware.
	limits config.Limits

	// uploadDir is the directory holding stored images; it is mounted as a
	// read-only static file route so admin pages can display uploads.
	uploadDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, csrfKey string, limits config.Limits, uploadDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		csrfKey:   csrfKey,
		limits:    limits,
		uploadDir: uploadDir,
		logger:    logger,
	}
}
