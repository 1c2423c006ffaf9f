package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mira-app/mira/internal/models"
)

type noteInput struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	Pinned *bool   `json:"pinned"`
}

func (handler *Handler) ListNotes(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	notes, err := handler.repositories.Notes.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notes")
	}

	views := make([]fiber.Map, 0, len(notes))
	for _, note := range notes {
		views = append(views, noteView(note))
	}
	return c.JSON(fiber.Map{"notes": views})
}

func (handler *Handler) CreateNote(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := noteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid note input")
	}
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}

	note := models.Note{
		UserID: user.ID,
		Title:  strings.TrimSpace(*input.Title),
	}
	if input.Body != nil {
		note.Body = *input.Body
	}
	if input.Pinned != nil {
		note.Pinned = *input.Pinned
	}

	if err := handler.repositories.Notes.Create(&note); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create note")
	}
	return c.Status(fiber.StatusCreated).JSON(noteView(note))
}

func (handler *Handler) UpdateNote(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	noteID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid note id")
	}

	input := noteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid note input")
	}

	note, found, err := handler.repositories.Notes.FindByIDAndUser(noteID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load note")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "note not found")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return apiError(c, fiber.StatusBadRequest, "title is required")
		}
		note.Title = title
	}
	if input.Body != nil {
		note.Body = *input.Body
	}
	if input.Pinned != nil {
		note.Pinned = *input.Pinned
	}

	if err := handler.repositories.Notes.Save(&note); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update note")
	}
	return c.JSON(noteView(note))
}

func (handler *Handler) DeleteNote(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	noteID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid note id")
	}

	if err := handler.repositories.Notes.DeleteByIDAndUser(noteID, user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete note")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func noteView(note models.Note) fiber.Map {
	return fiber.Map{
		"id":     note.ID,
		"title":  note.Title,
		"body":   note.Body,
		"pinned": note.Pinned,
	}
}
