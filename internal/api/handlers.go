package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/mira-app/mira/internal/db"
	"github.com/mira-app/mira/internal/services"
)

const (
	authCookieName       = "mira_session"
	defaultAuthTokenTTL  = 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
	contextUserKey       = "mira_user"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories
	authService  *services.AuthService
	cycleConfig  *services.CycleConfigService
	cycleLogs    *services.CycleLogService
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
	return handler.withDependencies(database)
}
