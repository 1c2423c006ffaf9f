package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mira-app/mira/internal/models"
	"github.com/mira-app/mira/internal/services"
)

type cycleSettingsInput struct {
	CycleLength     *int    `json:"cycleLength"`
	PeriodLength    *int    `json:"periodLength"`
	PeriodStartDate *string `json:"periodStartDate"`
}

func (handler *Handler) GetCycleSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	settings, found, err := handler.cycleConfig.Load(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle settings")
	}
	if !found {
		return c.JSON(fiber.Map{})
	}

	return c.JSON(cycleSettingsView(settings))
}

func (handler *Handler) UpdateCycleSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := cycleSettingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid settings input")
	}

	patch, err := services.ValidateCycleSettingsPatch(services.CycleSettingsPatchInput{
		CycleLength:        input.CycleLength,
		PeriodLength:       input.PeriodLength,
		PeriodStartDateRaw: input.PeriodStartDate,
	}, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, cycleSettingsErrorMessage(err))
	}

	settings, err := handler.cycleConfig.Apply(user.ID, patch)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update cycle settings")
	}

	return c.JSON(cycleSettingsView(settings))
}

func cycleSettingsErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrCycleLengthOutOfRange):
		return "Cycle length must be between 20 and 45"
	case errors.Is(err, services.ErrPeriodLengthOutOfRange):
		return "Period length must be between 2 and 10"
	case errors.Is(err, services.ErrPeriodStartDateInvalid):
		return "Period start date must be a valid YYYY-MM-DD date"
	default:
		return "invalid settings input"
	}
}

// cycleSettingsView renders only the fields the user has actually set,
// so an incomplete config stays distinguishable from zero values.
func cycleSettingsView(settings models.CycleSettings) fiber.Map {
	view := fiber.Map{}
	if settings.CycleLength > 0 {
		view["cycleLength"] = settings.CycleLength
	}
	if settings.PeriodLength > 0 {
		view["periodLength"] = settings.PeriodLength
	}
	if settings.PeriodStartDate != nil {
		view["periodStartDate"] = formatDay(*settings.PeriodStartDate)
	}
	return view
}
