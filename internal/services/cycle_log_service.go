package services

import (
	"errors"
	"strings"
	"time"

	"github.com/mira-app/mira/internal/models"
)

const maxLogNoteLength = 500

var (
	ErrLogFlowInvalid  = errors.New("log flow value invalid")
	ErrLogMoodInvalid  = errors.New("log mood value invalid")
	ErrLogNoteTooLong  = errors.New("log note too long")
	ErrLogMonthInvalid = errors.New("log month filter invalid")
)

type CycleLogRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.CycleLog, bool, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CycleLog, error)
	ListByUserDesc(userID uint) ([]models.CycleLog, error)
	Create(entry *models.CycleLog) error
	Save(entry *models.CycleLog) error
}

// CycleLogPatch carries the fields of a log save. A nil Symptoms slice
// means the list was absent; a present list replaces the stored one
// wholesale (no element-level merge). Same per-field presence rule for
// the pointer fields.
type CycleLogPatch struct {
	Symptoms []string
	Mood     *string
	Flow     *string
	Note     *string
}

type CycleLogService struct {
	logs     CycleLogRepository
	location *time.Location
}

func NewCycleLogService(logs CycleLogRepository, location *time.Location) *CycleLogService {
	if location == nil {
		location = time.UTC
	}
	return &CycleLogService{logs: logs, location: location}
}

func ValidateCycleLogPatch(patch CycleLogPatch) error {
	if patch.Flow != nil && !models.IsValidFlow(*patch.Flow) {
		return ErrLogFlowInvalid
	}
	if patch.Mood != nil && !models.IsValidMood(*patch.Mood) {
		return ErrLogMoodInvalid
	}
	if patch.Note != nil && len([]rune(*patch.Note)) > maxLogNoteLength {
		return ErrLogNoteTooLong
	}
	return nil
}

// UpsertLog stores the log for the calendar day of date, creating the row
// on first write. Present fields fully replace stored values; omitted
// fields stay untouched.
func (service *CycleLogService) UpsertLog(userID uint, date time.Time, patch CycleLogPatch) (models.CycleLog, error) {
	if err := ValidateCycleLogPatch(patch); err != nil {
		return models.CycleLog{}, err
	}

	dayStart, dayEnd := DayRange(date, service.location)
	entry, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.CycleLog{}, err
	}

	if !found {
		entry = models.CycleLog{
			UserID:   userID,
			Date:     dayStart,
			Symptoms: []string{},
		}
	}

	if patch.Symptoms != nil {
		entry.Symptoms = normalizeSymptoms(patch.Symptoms)
	}
	if patch.Mood != nil {
		entry.Mood = *patch.Mood
	}
	if patch.Flow != nil {
		entry.Flow = *patch.Flow
	}
	if patch.Note != nil {
		entry.Note = strings.TrimSpace(*patch.Note)
	}

	if !found {
		if err := service.logs.Create(&entry); err != nil {
			return models.CycleLog{}, err
		}
		return entry, nil
	}

	if err := service.logs.Save(&entry); err != nil {
		return models.CycleLog{}, err
	}
	return entry, nil
}

// LogsForMonth returns the logs whose day falls inside the YYYY-MM month.
func (service *CycleLogService) LogsForMonth(userID uint, rawMonth string) ([]models.CycleLog, error) {
	monthStart, monthEnd, err := MonthRange(rawMonth, service.location)
	if err != nil {
		return nil, ErrLogMonthInvalid
	}
	return service.logs.ListByUserRange(userID, monthStart, monthEnd)
}

func (service *CycleLogService) LogsForRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CycleLog, error) {
	return service.logs.ListByUserRange(userID, fromStart, toEnd)
}

// AllLogs returns every log for the user, most recent first. Acceptable
// while per-user volumes stay small; callers that can bound the range
// should prefer LogsForMonth.
func (service *CycleLogService) AllLogs(userID uint) ([]models.CycleLog, error) {
	return service.logs.ListByUserDesc(userID)
}

func (service *CycleLogService) LogForDay(userID uint, date time.Time) (models.CycleLog, bool, error) {
	dayStart, dayEnd := DayRange(date, service.location)
	return service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
}

func normalizeSymptoms(values []string) []string {
	cleaned := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		symptom := strings.TrimSpace(value)
		if symptom == "" {
			continue
		}
		if _, duplicate := seen[symptom]; duplicate {
			continue
		}
		seen[symptom] = struct{}{}
		cleaned = append(cleaned, symptom)
	}
	return cleaned
}
