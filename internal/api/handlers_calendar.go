package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mira-app/mira/internal/services"
)

// CalendarMonth returns the day-overlay grid for a month: logged period
// days, predicted period days, the ovulation window and phase per day,
// plus the user's calendar events in the same range.
func (handler *Handler) CalendarMonth(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)
	rawMonth := strings.TrimSpace(c.Query("month"))
	if rawMonth == "" {
		rawMonth = now.Format("2006-01")
	}

	monthStart, monthEnd, err := services.MonthRange(rawMonth, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "month must be formatted YYYY-MM")
	}

	settings, _, err := handler.resolveCycleState(user.ID, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load calendar")
	}

	logs, err := handler.cycleLogs.LogsForRange(user.ID, monthStart, monthEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load calendar")
	}

	events, err := handler.repositories.Events.ListByUserRange(user.ID, monthStart, monthEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load calendar")
	}

	var config *services.CycleConfig
	if predictionConfig, ready := handler.cycleConfig.PredictionConfig(settings); ready {
		config = &predictionConfig
	}

	days := services.BuildCycleCalendar(monthStart, logs, config, now, handler.location)
	dayViews := make([]fiber.Map, 0, len(days))
	for _, day := range days {
		dayViews = append(dayViews, calendarDayView(day))
	}

	eventViews := make([]fiber.Map, 0, len(events))
	for _, event := range events {
		eventViews = append(eventViews, eventView(event))
	}

	return c.JSON(fiber.Map{
		"month":  monthStart.Format("2006-01"),
		"days":   dayViews,
		"events": eventViews,
	})
}

func calendarDayView(day services.CycleCalendarDay) fiber.Map {
	view := fiber.Map{
		"date":              formatDay(day.Date),
		"day":               day.Day,
		"isToday":           day.IsToday,
		"hasLog":            day.HasLog,
		"isPeriod":          day.IsPeriod,
		"isPredictedPeriod": day.IsPredictedPeriod,
		"isOvulation":       day.IsOvulation,
	}
	if day.Phase != "" {
		view["phase"] = string(day.Phase)
	}
	return view
}
