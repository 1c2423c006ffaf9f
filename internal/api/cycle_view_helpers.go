package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mira-app/mira/internal/models"
	"github.com/mira-app/mira/internal/services"
)

// resolveCycleState loads the user's settings and derives the current
// cycle state. Every view that shows cycle information goes through this
// one path so the dashboard, tracker and calendar always agree.
func (handler *Handler) resolveCycleState(userID uint, now time.Time) (models.CycleSettings, *services.CycleState, error) {
	settings, found, err := handler.cycleConfig.Load(userID)
	if err != nil {
		return models.CycleSettings{}, nil, err
	}
	if !found {
		return models.CycleSettings{}, nil, nil
	}

	config, ready := handler.cycleConfig.PredictionConfig(settings)
	if !ready {
		return settings, nil, nil
	}

	state, err := services.ComputeCycleState(config, now.In(handler.location))
	if err != nil {
		return settings, nil, err
	}
	return settings, &state, nil
}

func cycleStateView(state *services.CycleState) fiber.Map {
	if state == nil {
		return fiber.Map{"configured": false}
	}
	return fiber.Map{
		"configured":               true,
		"currentDay":               state.CurrentDay,
		"phase":                    string(state.Phase),
		"predictedNextPeriodStart": formatDay(state.PredictedNextPeriodStart),
		"daysUntilNext":            state.DaysUntilNext,
	}
}
