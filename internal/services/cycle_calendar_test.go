package services

import (
	"testing"
	"time"

	"github.com/mira-app/mira/internal/models"
)

func TestBuildCycleCalendarCoversWholeMonth(t *testing.T) {
	monthStart := mustParseDay("2025-02-01")
	days := BuildCycleCalendar(monthStart, nil, nil, mustParseDay("2025-02-10"), time.UTC)

	if len(days) != 28 {
		t.Fatalf("expected 28 cells for February, got %d", len(days))
	}
	if days[0].Day != 1 || days[27].Day != 28 {
		t.Fatalf("unexpected day numbering: first=%d last=%d", days[0].Day, days[27].Day)
	}
	for _, cell := range days {
		if cell.Phase != "" {
			t.Fatalf("unconfigured calendar must carry no phase, got %s on day %d", cell.Phase, cell.Day)
		}
	}
}

func TestBuildCycleCalendarMarksTodayAndLogs(t *testing.T) {
	monthStart := mustParseDay("2025-01-01")
	logs := []models.CycleLog{
		{UserID: 1, Date: mustParseDay("2025-01-03"), Flow: models.FlowMedium},
		{UserID: 1, Date: mustParseDay("2025-01-07"), Flow: models.FlowNone, Mood: models.MoodCalm},
	}

	days := BuildCycleCalendar(monthStart, logs, nil, mustParseDay("2025-01-07"), time.UTC)

	third := days[2]
	if !third.HasLog || !third.IsPeriod {
		t.Fatalf("day 3 should be a logged period day: %+v", third)
	}
	seventh := days[6]
	if !seventh.IsToday {
		t.Fatal("day 7 should be today")
	}
	if !seventh.HasLog || seventh.IsPeriod {
		t.Fatalf("flow none must not count as a period day: %+v", seventh)
	}
}

func TestBuildCycleCalendarPhasesMatchPredictor(t *testing.T) {
	config := standardConfig()
	monthStart := mustParseDay("2025-01-01")
	now := mustParseDay("2025-01-10")

	days := BuildCycleCalendar(monthStart, nil, &config, now, time.UTC)

	for _, cell := range days {
		dayNumber, err := CycleDayNumber(config, cell.Date)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := PhaseForDay(config, dayNumber)
		if cell.Phase != expected {
			t.Fatalf("day %d: calendar phase %s disagrees with predictor %s", cell.Day, cell.Phase, expected)
		}
		if cell.IsOvulation != (expected == PhaseOvulation) {
			t.Fatalf("day %d: ovulation flag out of sync", cell.Day)
		}
	}
}

func TestBuildCycleCalendarPredictsOnlyFuturePeriodDays(t *testing.T) {
	config := standardConfig()
	monthStart := mustParseDay("2025-01-01")
	now := mustParseDay("2025-01-15")

	days := BuildCycleCalendar(monthStart, nil, &config, now, time.UTC)

	for _, cell := range days {
		if cell.IsPredictedPeriod && !cell.Date.After(now) {
			t.Fatalf("day %d: predicted period marked in the past", cell.Day)
		}
	}

	// Days 29..31 are days 1..3 of the next cycle and lie in the future.
	for _, index := range []int{28, 29, 30} {
		if !days[index].IsPredictedPeriod {
			t.Fatalf("day %d should be a predicted period day", days[index].Day)
		}
	}
}

func TestBuildCycleCalendarIgnoresDaysBeforeTracking(t *testing.T) {
	config := standardConfig()
	config.PeriodStartDate = mustParseDay("2025-01-15")
	monthStart := mustParseDay("2025-01-01")

	days := BuildCycleCalendar(monthStart, nil, &config, mustParseDay("2025-01-20"), time.UTC)

	for _, cell := range days[:14] {
		if cell.Phase != "" || cell.IsOvulation || cell.IsPredictedPeriod {
			t.Fatalf("day %d precedes tracking and must stay unclassified: %+v", cell.Day, cell)
		}
	}
	if days[14].Phase != PhaseMenstruation {
		t.Fatalf("tracking start day should be menstruation, got %s", days[14].Phase)
	}
}
