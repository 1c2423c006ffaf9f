package services

import (
	"time"

	"github.com/mira-app/mira/internal/models"
)

type CycleSettingsRepository interface {
	FindByUser(userID uint) (models.CycleSettings, bool, error)
	Create(settings *models.CycleSettings) error
	Save(settings *models.CycleSettings) error
}

// CycleConfigService persists per-user cycle configuration. The row is
// created implicitly on the first update; until then the user counts as
// unconfigured.
type CycleConfigService struct {
	settings CycleSettingsRepository
	location *time.Location
}

func NewCycleConfigService(settings CycleSettingsRepository, location *time.Location) *CycleConfigService {
	if location == nil {
		location = time.UTC
	}
	return &CycleConfigService{settings: settings, location: location}
}

func (service *CycleConfigService) Load(userID uint) (models.CycleSettings, bool, error) {
	return service.settings.FindByUser(userID)
}

// Apply merges a validated patch into the stored settings and persists
// the result. Fields absent from the patch keep their stored values.
func (service *CycleConfigService) Apply(userID uint, patch CycleSettingsPatch) (models.CycleSettings, error) {
	settings, found, err := service.settings.FindByUser(userID)
	if err != nil {
		return models.CycleSettings{}, err
	}

	if patch.CycleLength != nil {
		settings.CycleLength = *patch.CycleLength
	}
	if patch.PeriodLength != nil {
		settings.PeriodLength = *patch.PeriodLength
	}
	if patch.PeriodStartDate != nil {
		day := *patch.PeriodStartDate
		settings.PeriodStartDate = &day
	}

	if !found {
		settings.UserID = userID
		if err := service.settings.Create(&settings); err != nil {
			return models.CycleSettings{}, err
		}
		return settings, nil
	}

	if err := service.settings.Save(&settings); err != nil {
		return models.CycleSettings{}, err
	}
	return settings, nil
}

// PredictionConfig converts stored settings into predictor input. The
// second result is false while any required field is missing; callers
// must branch on it instead of feeding defaults into the predictor.
func (service *CycleConfigService) PredictionConfig(settings models.CycleSettings) (CycleConfig, bool) {
	return PredictionConfigAt(settings, service.location)
}

func PredictionConfigAt(settings models.CycleSettings, location *time.Location) (CycleConfig, bool) {
	if settings.PeriodStartDate == nil || settings.CycleLength <= 0 || settings.PeriodLength <= 0 {
		return CycleConfig{}, false
	}
	return CycleConfig{
		PeriodStartDate: DateAtLocation(*settings.PeriodStartDate, location),
		CycleLength:     settings.CycleLength,
		PeriodLength:    settings.PeriodLength,
	}, true
}
