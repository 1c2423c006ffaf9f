package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mira-app/mira/internal/models"
	"github.com/mira-app/mira/internal/services"
)

type cycleLogInput struct {
	Date          string   `json:"date"`
	Symptoms      []string `json:"symptoms"`
	Mood          *string  `json:"mood"`
	FlowIntensity *string  `json:"flowIntensity"`
	Note          *string  `json:"note"`
}

func (handler *Handler) UpsertCycleLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := cycleLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log input")
	}

	day, err := parseDayValue(input.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.cycleLogs.UpsertLog(user.ID, day, services.CycleLogPatch{
		Symptoms: input.Symptoms,
		Mood:     input.Mood,
		Flow:     input.FlowIntensity,
		Note:     input.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLogFlowInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid flow intensity")
		case errors.Is(err, services.ErrLogMoodInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid mood")
		case errors.Is(err, services.ErrLogNoteTooLong):
			return apiError(c, fiber.StatusBadRequest, "note must be 500 characters or less")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save log")
		}
	}

	return c.JSON(cycleLogView(entry))
}

func (handler *Handler) GetCycleLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var logs []models.CycleLog
	var err error
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		logs, err = handler.cycleLogs.LogsForMonth(user.ID, month)
		if errors.Is(err, services.ErrLogMonthInvalid) {
			return apiError(c, fiber.StatusBadRequest, "month must be formatted YYYY-MM")
		}
	} else {
		logs, err = handler.cycleLogs.AllLogs(user.ID)
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load logs")
	}

	views := make([]fiber.Map, 0, len(logs))
	for _, entry := range logs {
		views = append(views, cycleLogView(entry))
	}
	return c.JSON(fiber.Map{"logs": views})
}

func cycleLogView(entry models.CycleLog) fiber.Map {
	symptoms := entry.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	view := fiber.Map{
		"date":     formatDay(entry.Date),
		"symptoms": symptoms,
	}
	if entry.Mood != "" {
		view["mood"] = entry.Mood
	}
	if entry.Flow != "" {
		view["flowIntensity"] = entry.Flow
	}
	if entry.Note != "" {
		view["note"] = entry.Note
	}
	return view
}
