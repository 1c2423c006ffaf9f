package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CycleTracker returns the full tracker page payload: derived state, the
// stored config, this month's logs and today's log if any.
func (handler *Handler) CycleTracker(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)

	settings, state, err := handler.resolveCycleState(user.ID, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle tracker")
	}

	monthLogs, err := handler.cycleLogs.LogsForMonth(user.ID, now.Format("2006-01"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle tracker")
	}

	logViews := make([]fiber.Map, 0, len(monthLogs))
	for _, entry := range monthLogs {
		logViews = append(logViews, cycleLogView(entry))
	}

	payload := fiber.Map{
		"cycle":     cycleStateView(state),
		"settings":  cycleSettingsView(settings),
		"monthLogs": logViews,
	}

	todayLog, found, err := handler.cycleLogs.LogForDay(user.ID, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle tracker")
	}
	if found {
		payload["todayLog"] = cycleLogView(todayLog)
	}

	return c.JSON(payload)
}
