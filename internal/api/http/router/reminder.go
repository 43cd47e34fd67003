package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tenangapp/tenang_backend/internal/api/http/handler"
)

func (r *Router) registerReminderRoutes(
	api fiber.Router,
	rh *handler.ReminderHandler,
	authRequired fiber.Handler,
) {
	reminders := api.Group("/reminders", authRequired)

	reminders.Post("/video", rh.SendVideoReminder)
}
