package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mira-app/mira/internal/models"
)

const notificationListLimit = 50

func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	notifications, err := handler.repositories.Notifications.ListByUser(user.ID, notificationListLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notifications")
	}

	views := make([]fiber.Map, 0, len(notifications))
	for _, notification := range notifications {
		views = append(views, notificationView(notification))
	}
	return c.JSON(fiber.Map{"notifications": views})
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	now := time.Now().In(handler.location)
	if err := handler.repositories.Notifications.MarkRead(notificationID, user.ID, now); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update notification")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)
	if err := handler.repositories.Notifications.MarkAllRead(user.ID, now); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update notifications")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func notificationView(notification models.Notification) fiber.Map {
	view := fiber.Map{
		"id":        notification.ID,
		"kind":      notification.Kind,
		"title":     notification.Title,
		"body":      notification.Body,
		"createdAt": notification.CreatedAt.Format(time.RFC3339),
		"read":      notification.ReadAt != nil,
	}
	return view
}
