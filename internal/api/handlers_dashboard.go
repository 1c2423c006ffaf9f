package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mira-app/mira/internal/services"
)

func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)

	_, state, err := handler.resolveCycleState(user.ID, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	openTodos, err := handler.repositories.Todos.CountOpenByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	pinnedNotes, err := handler.repositories.Notes.ListPinnedByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	dayStart, dayEnd := services.DayRange(now, handler.location)
	todayEvents, err := handler.repositories.Events.ListByUserRange(user.ID, dayStart, dayEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	unread, err := handler.repositories.Notifications.CountUnreadByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	noteViews := make([]fiber.Map, 0, len(pinnedNotes))
	for _, note := range pinnedNotes {
		noteViews = append(noteViews, noteView(note))
	}
	eventViews := make([]fiber.Map, 0, len(todayEvents))
	for _, event := range todayEvents {
		eventViews = append(eventViews, eventView(event))
	}

	return c.JSON(fiber.Map{
		"todos":         fiber.Map{"open": openTodos},
		"pinnedNotes":   noteViews,
		"todayEvents":   eventViews,
		"notifications": fiber.Map{"unread": unread},
		"cycle":         cycleStateView(state),
	})
}
