package service

import (
	"github.com/rmachado/landing-intake/internal/config"
	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/store"
)

type Services struct {
	IntakeService IntakeService
	AdminService  AdminService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		IntakeService: NewIntakeService(storages.ResponseRepository, storages.ImageStorage, logger),
		AdminService:  NewAdminService(storages.AdminUserRepository, storages.ResponseRepository, cfg, logger),
	}
}
