package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/tenangapp/tenang_backend/internal/service/reminder"
	"github.com/tenangapp/tenang_backend/pkg/reqctx"
)

type ReminderHandler struct {
	svc reminder.Service
}

func NewReminderHandler(svc reminder.Service) *ReminderHandler {
	return &ReminderHandler{svc: svc}
}

// POST /reminders/video
func (h *ReminderHandler) SendVideoReminder(c fiber.Ctx) error {
	var body struct {
		AppointmentID    string `json:"appointmentId"`
		UserID           string `json:"userId"`
		PsychologistName string `json:"psychologistName"`
		TimeRange        string `json:"timeRange"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Send(c.Context(), reminder.Request{
		AppointmentID:    body.AppointmentID,
		UserID:           body.UserID,
		PsychologistName: body.PsychologistName,
		TimeRange:        body.TimeRange,
	})
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrInvalidArgument):
			return badRequest(c, err.Error())
		case errors.Is(err, reminder.ErrNotFound):
			return notFound(c, err.Error())
		default:
			slog.Error("video reminder dispatch failed",
				"error", err,
				"request_id", reqctx.RequestIDFromContext(c.Context()),
				"trace_id", reqctx.TraceIDFromContext(c.Context()),
			)
			return internalError(c)
		}
	}

	return c.JSON(res)
}
