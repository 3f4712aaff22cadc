package main

import (
	"context"
	"fmt"

	"github.com/rmachado/landing-intake/internal/config"
	"github.com/rmachado/landing-intake/internal/handler"
	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/server"
	"github.com/rmachado/landing-intake/internal/service"
	"github.com/rmachado/landing-intake/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("landing-intake-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.UsesDevSecrets() {
		log.Warn().Msg("running with built-in development secrets, set APP_TOKEN_SIGN_KEY / APP_CSRF_KEY / APP_ADMIN_PASSWORD in production")
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg.App, log)

	// provisioning must finish before the server accepts traffic
	if err := services.AdminService.EnsureDefaultAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error provisioning default admin account")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
