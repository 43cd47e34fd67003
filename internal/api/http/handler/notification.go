package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/tenangapp/tenang_backend/internal/service/notification"
	"github.com/tenangapp/tenang_backend/pkg/reqctx"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func mapNotificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, notification.ErrUnauthorized):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// GET /notifications
func (h *NotificationHandler) List(c fiber.Ctx) error {
	accountID, authOK := reqctx.UserIDFromContext(c.Context())
	if !authOK {
		return unauthorized(c)
	}

	var q struct {
		UnreadOnly bool `query:"unread_only"`
		Page       int  `query:"page"`
		PerPage    int  `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	notifs, err := h.svc.List(c.Context(), accountID, q.UnreadOnly, q.Page, q.PerPage)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, notifs)
}

// PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	accountID, authOK := reqctx.UserIDFromContext(c.Context())
	if !authOK {
		return unauthorized(c)
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	if err := h.svc.MarkRead(c.Context(), notifID, accountID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	accountID, authOK := reqctx.UserIDFromContext(c.Context())
	if !authOK {
		return unauthorized(c)
	}

	if err := h.svc.MarkAllRead(c.Context(), accountID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// GET /users/me/notification-prefs
func (h *NotificationHandler) GetPrefs(c fiber.Ctx) error {
	accountID, authOK := reqctx.UserIDFromContext(c.Context())
	if !authOK {
		return unauthorized(c)
	}

	prefs, err := h.svc.GetPrefs(c.Context(), accountID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, prefs)
}

// PUT /users/me/notification-prefs
func (h *NotificationHandler) UpdatePrefs(c fiber.Ctx) error {
	accountID, authOK := reqctx.UserIDFromContext(c.Context())
	if !authOK {
		return unauthorized(c)
	}

	var body struct {
		MessagePush      bool `json:"message_push"`
		AppointmentPush  bool `json:"appointment_push"`
		AppointmentSMS   bool `json:"appointment_sms"`
		AppointmentEmail bool `json:"appointment_email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	prefs, err := h.svc.UpsertPrefs(c.Context(), accountID, notification.UpsertPrefsRequest{
		MessagePush:      body.MessagePush,
		AppointmentPush:  body.AppointmentPush,
		AppointmentSMS:   body.AppointmentSMS,
		AppointmentEmail: body.AppointmentEmail,
	})
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, prefs)
}

// POST /notifications/register-device
func (h *NotificationHandler) RegisterDevice(c fiber.Ctx) error {
	accountID, authOK := reqctx.UserIDFromContext(c.Context())
	if !authOK {
		return unauthorized(c)
	}

	var body struct {
		DeviceToken string `json:"device_token"`
		Platform    string `json:"platform"`
		AccountRole string `json:"account_role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DeviceToken == "" || body.Platform == "" {
		return badRequest(c, "device_token and platform are required")
	}
	if body.AccountRole == "" {
		body.AccountRole = "patient"
	}

	device, err := h.svc.RegisterDevice(c.Context(), notification.RegisterDeviceRequest{
		AccountID:   accountID,
		AccountRole: body.AccountRole,
		DeviceToken: body.DeviceToken,
		Platform:    body.Platform,
	})
	if err != nil {
		return mapNotificationError(c, err)
	}

	return created(c, device)
}

// DELETE /notifications/register-device
func (h *NotificationHandler) DeactivateDevice(c fiber.Ctx) error {
	accountID, authOK := reqctx.UserIDFromContext(c.Context())
	if !authOK {
		return unauthorized(c)
	}

	var body struct {
		DeviceToken string `json:"device_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DeviceToken == "" {
		return badRequest(c, "device_token is required")
	}

	if err := h.svc.DeactivateDevice(c.Context(), accountID, body.DeviceToken); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}
