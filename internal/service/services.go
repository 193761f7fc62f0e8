package service

import (
	"github.com/eventgate/checkin/internal/config"
	"github.com/eventgate/checkin/internal/logger"
	"github.com/eventgate/checkin/internal/store"
)

type Services struct {
	AuthService    AuthService
	CheckinService CheckinService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CheckinService: NewCheckinService(storages.AttendanceRepository, logger),
	}
}
