package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mira-app/mira/internal/models"
)

type todoInput struct {
	Title    *string `json:"title"`
	Done     *bool   `json:"done"`
	DueDate  *string `json:"dueDate"`
	Position *int    `json:"position"`
}

func (handler *Handler) ListTodos(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	todos, err := handler.repositories.Todos.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load todos")
	}

	views := make([]fiber.Map, 0, len(todos))
	for _, todo := range todos {
		views = append(views, todoView(todo))
	}
	return c.JSON(fiber.Map{"todos": views})
}

func (handler *Handler) CreateTodo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := todoInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid todo input")
	}
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}

	todo := models.Todo{
		UserID: user.ID,
		Title:  strings.TrimSpace(*input.Title),
	}
	if input.Position != nil {
		todo.Position = *input.Position
	}
	if input.DueDate != nil {
		day, err := parseDayValue(*input.DueDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid due date")
		}
		todo.DueDate = &day
	}

	if err := handler.repositories.Todos.Create(&todo); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create todo")
	}
	return c.Status(fiber.StatusCreated).JSON(todoView(todo))
}

func (handler *Handler) UpdateTodo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	todoID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid todo id")
	}

	input := todoInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid todo input")
	}

	todo, found, err := handler.repositories.Todos.FindByIDAndUser(todoID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load todo")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "todo not found")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return apiError(c, fiber.StatusBadRequest, "title is required")
		}
		todo.Title = title
	}
	if input.Done != nil {
		todo.Done = *input.Done
	}
	if input.Position != nil {
		todo.Position = *input.Position
	}
	if input.DueDate != nil {
		if strings.TrimSpace(*input.DueDate) == "" {
			todo.DueDate = nil
		} else {
			day, err := parseDayValue(*input.DueDate, handler.location)
			if err != nil {
				return apiError(c, fiber.StatusBadRequest, "invalid due date")
			}
			todo.DueDate = &day
		}
	}

	if err := handler.repositories.Todos.Save(&todo); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update todo")
	}
	return c.JSON(todoView(todo))
}

func (handler *Handler) DeleteTodo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	todoID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid todo id")
	}

	if err := handler.repositories.Todos.DeleteByIDAndUser(todoID, user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete todo")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func todoView(todo models.Todo) fiber.Map {
	view := fiber.Map{
		"id":       todo.ID,
		"title":    todo.Title,
		"done":     todo.Done,
		"position": todo.Position,
	}
	if todo.DueDate != nil {
		view["dueDate"] = formatDay(*todo.DueDate)
	}
	return view
}
