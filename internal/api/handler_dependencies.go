package api

import (
	"gorm.io/gorm"

	"github.com/mira-app/mira/internal/db"
	"github.com/mira-app/mira/internal/services"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, handler.location)
	handler.cycleConfig = services.NewCycleConfigService(handler.repositories.CycleSettings, handler.location)
	handler.cycleLogs = services.NewCycleLogService(handler.repositories.CycleLogs, handler.location)
	return handler
}
