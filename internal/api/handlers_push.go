package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mira-app/mira/internal/models"
)

type pushSubscriptionInput struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// RegisterPushSubscription stores a browser push endpoint. Re-registering
// an existing endpoint refreshes its keys instead of duplicating it.
func (handler *Handler) RegisterPushSubscription(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := pushSubscriptionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid subscription input")
	}

	endpoint := strings.TrimSpace(input.Endpoint)
	if endpoint == "" || input.Keys.P256dh == "" || input.Keys.Auth == "" {
		return apiError(c, fiber.StatusBadRequest, "endpoint and keys are required")
	}

	existing, found, err := handler.repositories.Subscriptions.FindByUserAndEndpoint(user.ID, endpoint)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save subscription")
	}
	if found {
		existing.P256dh = input.Keys.P256dh
		existing.Auth = input.Keys.Auth
		if err := handler.repositories.Subscriptions.Save(&existing); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to save subscription")
		}
		return c.JSON(fiber.Map{"id": existing.ID})
	}

	subscription := models.PushSubscription{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Endpoint: endpoint,
		P256dh:   input.Keys.P256dh,
		Auth:     input.Keys.Auth,
	}
	if err := handler.repositories.Subscriptions.Create(&subscription); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save subscription")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": subscription.ID})
}

func (handler *Handler) DeletePushSubscription(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	subscriptionID := strings.TrimSpace(c.Params("id"))
	if subscriptionID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid subscription id")
	}

	if err := handler.repositories.Subscriptions.DeleteByIDAndUser(subscriptionID, user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete subscription")
	}
	return c.JSON(fiber.Map{"ok": true})
}
