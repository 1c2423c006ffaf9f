package services

import (
	"errors"
	"time"
)

// ErrInvalidCycleLength signals a non-positive cycle length reaching the
// predictor. The config store validates ranges before persisting, so this
// is a caller bug rather than a user-facing condition.
var ErrInvalidCycleLength = errors.New("cycle length must be positive")

type Phase string

const (
	PhaseMenstruation Phase = "menstruation"
	PhaseFollicular   Phase = "follicular"
	PhaseOvulation    Phase = "ovulation"
	PhaseLuteal       Phase = "luteal"
)

// lutealPhaseDays is the assumed gap between ovulation and the next
// period start.
const lutealPhaseDays = 14

// CycleConfig is the validated input of the predictor: the first day of
// the most recently recorded period plus average cycle and period lengths.
type CycleConfig struct {
	PeriodStartDate time.Time
	CycleLength     int
	PeriodLength    int
}

// CycleState is derived on demand and never persisted.
type CycleState struct {
	CurrentDay               int
	Phase                    Phase
	PredictedNextPeriodStart time.Time
	DaysUntilNext            int
}

// ComputeCycleState derives the current cycle day, phase and next
// predicted period start from a config and a reference instant. It is
// pure: every caller that renders cycle information goes through it so
// the views cannot drift apart.
//
// A period start in the future degrades to day 1 rather than producing a
// negative day; the function does not predict past cycles.
func ComputeCycleState(config CycleConfig, now time.Time) (CycleState, error) {
	if config.CycleLength <= 0 {
		return CycleState{}, ErrInvalidCycleLength
	}

	location := now.Location()
	today := DateAtLocation(now, location)
	start := DateAtLocation(config.PeriodStartDate, location)

	daysSinceStart := WholeDaysBetween(start, today)
	if daysSinceStart < 0 {
		daysSinceStart = 0
	}

	currentDay := daysSinceStart%config.CycleLength + 1
	cyclesElapsed := daysSinceStart / config.CycleLength
	nextStart := start.AddDate(0, 0, (cyclesElapsed+1)*config.CycleLength)

	daysUntilNext := WholeDaysBetween(today, nextStart)
	if daysUntilNext < 0 {
		daysUntilNext = 0
	}

	return CycleState{
		CurrentDay:               currentDay,
		Phase:                    PhaseForDay(config, currentDay),
		PredictedNextPeriodStart: nextStart,
		DaysUntilNext:            daysUntilNext,
	}, nil
}

// PhaseForDay classifies a 1-based cycle day. Ovulation is estimated at
// lutealPhaseDays before the next period; the ovulation window spans
// three days before through one day after that estimate. The same
// window is the canonical one everywhere in the app.
func PhaseForDay(config CycleConfig, cycleDay int) Phase {
	ovulationDay := config.CycleLength - lutealPhaseDays
	switch {
	case cycleDay <= config.PeriodLength:
		return PhaseMenstruation
	case cycleDay >= ovulationDay-3 && cycleDay <= ovulationDay+1:
		return PhaseOvulation
	case cycleDay > ovulationDay:
		return PhaseLuteal
	default:
		return PhaseFollicular
	}
}

// CycleDayNumber returns the 1-based cycle day for an arbitrary calendar
// day, using the same modular projection as ComputeCycleState. Days
// before the period start map to day 1.
func CycleDayNumber(config CycleConfig, day time.Time) (int, error) {
	if config.CycleLength <= 0 {
		return 0, ErrInvalidCycleLength
	}
	start := DateAtLocation(config.PeriodStartDate, day.Location())
	daysSinceStart := WholeDaysBetween(start, DateAtLocation(day, day.Location()))
	if daysSinceStart < 0 {
		daysSinceStart = 0
	}
	return daysSinceStart%config.CycleLength + 1, nil
}
