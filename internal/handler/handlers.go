package handler

import (
	"github.com/rmachado/landing-intake/internal/config"
	"github.com/rmachado/landing-intake/internal/handler/http"
	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App.CSRFKey, cfg.Limits, cfg.Storage.Files.UploadDir, logger),
	}, nil
}
