package services

import (
	"time"

	"github.com/mira-app/mira/internal/models"
)

// CycleCalendarDay is one cell of the calendar overlay for a month view.
type CycleCalendarDay struct {
	Date              time.Time
	Day               int
	IsToday           bool
	HasLog            bool
	IsPeriod          bool
	IsPredictedPeriod bool
	IsOvulation       bool
	Phase             Phase
}

// BuildCycleCalendar produces a cell per day of the month. Logged days
// carry what the user recorded; days at or after the period start are
// classified with the same modular day numbering the predictor uses, so
// the overlay cannot disagree with the dashboard or the tracker page.
// Predicted period days are only marked in the future; the past shows
// logs, not predictions. config may be nil when the user has not set up
// tracking.
func BuildCycleCalendar(monthStart time.Time, logs []models.CycleLog, config *CycleConfig, now time.Time, location *time.Location) []CycleCalendarDay {
	if location == nil {
		location = time.UTC
	}
	monthStart = DateAtLocation(monthStart, location)
	monthEnd := monthStart.AddDate(0, 1, 0)
	today := DateAtLocation(now, location)

	logByDate := make(map[string]models.CycleLog, len(logs))
	for _, entry := range logs {
		logByDate[DateAtLocation(entry.Date, location).Format("2006-01-02")] = entry
	}

	days := make([]CycleCalendarDay, 0, 31)
	for day := monthStart; day.Before(monthEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		entry, hasLog := logByDate[key]

		cell := CycleCalendarDay{
			Date:     day,
			Day:      day.Day(),
			IsToday:  day.Equal(today),
			HasLog:   hasLog,
			IsPeriod: hasLog && entry.Flow != "" && entry.Flow != models.FlowNone,
		}

		if config != nil && !day.Before(DateAtLocation(config.PeriodStartDate, location)) {
			if dayNumber, err := CycleDayNumber(*config, day); err == nil {
				phase := PhaseForDay(*config, dayNumber)
				cell.Phase = phase
				cell.IsOvulation = phase == PhaseOvulation
				if day.After(today) && dayNumber <= config.PeriodLength {
					cell.IsPredictedPeriod = true
				}
			}
		}

		days = append(days, cell)
	}

	return days
}
