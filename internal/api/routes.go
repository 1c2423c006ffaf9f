package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Get("/dashboard", handler.AuthRequired, handler.Dashboard)
	api.Get("/calendar", handler.AuthRequired, handler.CalendarMonth)

	cycle := api.Group("/cycle", handler.AuthRequired)
	cycle.Get("", handler.CycleTracker)
	cycle.Get("/settings", handler.GetCycleSettings)
	cycle.Patch("/settings", handler.UpdateCycleSettings)
	cycle.Get("/logs", handler.GetCycleLogs)
	cycle.Post("/logs", handler.UpsertCycleLog)

	todos := api.Group("/todos", handler.AuthRequired)
	todos.Get("", handler.ListTodos)
	todos.Post("", handler.CreateTodo)
	todos.Patch("/:id", handler.UpdateTodo)
	todos.Delete("/:id", handler.DeleteTodo)

	notes := api.Group("/notes", handler.AuthRequired)
	notes.Get("", handler.ListNotes)
	notes.Post("", handler.CreateNote)
	notes.Patch("/:id", handler.UpdateNote)
	notes.Delete("/:id", handler.DeleteNote)

	events := api.Group("/events", handler.AuthRequired)
	events.Get("", handler.ListEvents)
	events.Post("", handler.CreateEvent)
	events.Patch("/:id", handler.UpdateEvent)
	events.Delete("/:id", handler.DeleteEvent)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.ListNotifications)
	notifications.Post("/read-all", handler.MarkAllNotificationsRead)
	notifications.Post("/:id/read", handler.MarkNotificationRead)

	push := api.Group("/push", handler.AuthRequired)
	push.Post("/subscriptions", handler.RegisterPushSubscription)
	push.Delete("/subscriptions/:id", handler.DeletePushSubscription)
}
