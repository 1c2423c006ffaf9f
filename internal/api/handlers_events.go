package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mira-app/mira/internal/models"
	"github.com/mira-app/mira/internal/services"
)

type eventInput struct {
	Title     *string `json:"title"`
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	AllDay    *bool   `json:"allDay"`
	Color     *string `json:"color"`
}

func (handler *Handler) ListEvents(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rawMonth := strings.TrimSpace(c.Query("month"))
	if rawMonth == "" {
		rawMonth = time.Now().In(handler.location).Format("2006-01")
	}
	monthStart, monthEnd, err := services.MonthRange(rawMonth, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "month must be formatted YYYY-MM")
	}

	events, err := handler.repositories.Events.ListByUserRange(user.ID, monthStart, monthEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load events")
	}

	views := make([]fiber.Map, 0, len(events))
	for _, event := range events {
		views = append(views, eventView(event))
	}
	return c.JSON(fiber.Map{"events": views})
}

func (handler *Handler) CreateEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := eventInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event input")
	}
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}
	if input.Date == nil {
		return apiError(c, fiber.StatusBadRequest, "date is required")
	}
	day, err := parseDayValue(*input.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	event := models.CalendarEvent{
		UserID: user.ID,
		Title:  strings.TrimSpace(*input.Title),
		Date:   services.DateAtLocation(day, handler.location),
	}
	applyEventInput(&event, input)

	if err := handler.repositories.Events.Create(&event); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create event")
	}
	return c.Status(fiber.StatusCreated).JSON(eventView(event))
}

func (handler *Handler) UpdateEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	eventID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	input := eventInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event input")
	}

	event, found, err := handler.repositories.Events.FindByIDAndUser(eventID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load event")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "event not found")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return apiError(c, fiber.StatusBadRequest, "title is required")
		}
		event.Title = title
	}
	if input.Date != nil {
		day, err := parseDayValue(*input.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		event.Date = services.DateAtLocation(day, handler.location)
	}
	applyEventInput(&event, input)

	if err := handler.repositories.Events.Save(&event); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update event")
	}
	return c.JSON(eventView(event))
}

func (handler *Handler) DeleteEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	eventID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	if err := handler.repositories.Events.DeleteByIDAndUser(eventID, user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete event")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func applyEventInput(event *models.CalendarEvent, input eventInput) {
	if input.StartTime != nil {
		event.StartTime = strings.TrimSpace(*input.StartTime)
	}
	if input.EndTime != nil {
		event.EndTime = strings.TrimSpace(*input.EndTime)
	}
	if input.AllDay != nil {
		event.AllDay = *input.AllDay
	}
	if input.Color != nil {
		event.Color = strings.TrimSpace(*input.Color)
	}
}

func eventView(event models.CalendarEvent) fiber.Map {
	return fiber.Map{
		"id":        event.ID,
		"title":     event.Title,
		"date":      formatDay(event.Date),
		"startTime": event.StartTime,
		"endTime":   event.EndTime,
		"allDay":    event.AllDay,
		"color":     event.Color,
	}
}
