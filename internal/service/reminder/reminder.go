package reminder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/tenangapp/tenang_backend/config"
	"github.com/tenangapp/tenang_backend/internal/service/dispatch"
	"github.com/tenangapp/tenang_backend/pkg/email"
	"github.com/tenangapp/tenang_backend/pkg/push"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Request struct {
	AppointmentID    string
	UserID           string
	PsychologistName string
	TimeRange        string // human-readable, e.g. "10:00-10:30"
}

// Result is the caller-facing outcome. Success=false with a nil error means
// the user is unreachable by push (no registered token) — an expected state,
// not an API failure.
type Result struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
}

// User is the slice of a user record the reminder dispatcher reads.
type User struct {
	ID          uuid.UUID
	DisplayName string
	Email       *string
	Phone       *string
	Locale      string
}

// Prefs are the delivery-channel switches for one account.
type Prefs struct {
	Push  bool
	SMS   bool
	Email bool
}

// Mirror is the in-app copy persisted alongside each reminder attempt.
type Mirror struct {
	AccountID uuid.UUID
	Title     string
	Body      string
	Data      map[string]any
	Pushed    bool
}

// ---------------------------------------------------------------------------
// Ports
// ---------------------------------------------------------------------------

// Store is the lookup surface the reminder dispatcher needs.
type Store interface {
	// User returns ErrNotFound when no user record exists.
	User(ctx context.Context, id uuid.UUID) (*User, error)
	ReminderPrefs(ctx context.Context, id uuid.UUID) (Prefs, error)
	// ActiveDeviceToken returns "" when the account has no active device.
	ActiveDeviceToken(ctx context.Context, id uuid.UUID) (string, error)
	SaveMirror(ctx context.Context, m Mirror) error
}

// SMSChannel is the fallback SMS reminder sender (see pkg/sms).
type SMSChannel interface {
	SendAppointmentReminder(ctx context.Context, phone, psychologistName, timeRange string) error
	IsEnabled() bool
}

// EmailChannel is the fallback email reminder sender (see pkg/email).
type EmailChannel interface {
	Send(ctx context.Context, m email.Message) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service interface {
	Send(ctx context.Context, req Request) (*Result, error)
}

type reminderService struct {
	store  Store
	sender push.Sender
	sms    SMSChannel
	mail   EmailChannel
	app    config.AppConfig
}

func New(store Store, sender push.Sender, sms SMSChannel, mail EmailChannel, app config.AppConfig) Service {
	return &reminderService{store: store, sender: sender, sms: sms, mail: mail, app: app}
}

// Send dispatches one video-session reminder. Exactly one push attempt is
// made per call; a tokenless user gets the SMS/email fallback channels
// (per prefs) and a soft Success=false result.
func (s *reminderService) Send(ctx context.Context, req Request) (*Result, error) {
	switch {
	case req.AppointmentID == "":
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidArgument)
	case req.UserID == "":
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidArgument)
	case req.PsychologistName == "":
		return nil, fmt.Errorf("%w: psychologist name is required", ErrInvalidArgument)
	case req.TimeRange == "":
		return nil, fmt.Errorf("%w: time range is required", ErrInvalidArgument)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user id", ErrInvalidArgument)
	}

	user, err := s.store.User(ctx, userID)
	if err != nil {
		return nil, err
	}

	title := "Pengingat Sesi Video"
	body := fmt.Sprintf("Sesi konsultasi Anda bersama %s akan dimulai pada %s.", req.PsychologistName, req.TimeRange)

	mirror := Mirror{
		AccountID: user.ID,
		Title:     title,
		Body:      body,
		Data:      map[string]any{"appointment_id": req.AppointmentID},
	}

	prefs, err := s.store.ReminderPrefs(ctx, user.ID)
	if err != nil {
		slog.Warn("reminder: pref lookup failed", "user_id", user.ID, "err", err)
		prefs = Prefs{Push: true}
	}

	token := ""
	if prefs.Push {
		token, err = s.store.ActiveDeviceToken(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: device lookup: %v", ErrInternal, err)
		}
	}

	if token == "" {
		s.sendFallbacks(ctx, user, prefs, req)
		s.saveMirror(ctx, mirror)
		return &Result{Success: false}, nil
	}

	receipt, err := s.sender.Send(ctx, push.Payload{
		Token: token,
		Notification: push.Notification{
			Title:       title,
			Body:        body,
			Icon:        s.app.DefaultIcon,
			ClickAction: s.app.BaseURL + "/appointments",
		},
		Data: map[string]string{
			"appointmentId": req.AppointmentID,
			"type":          dispatch.TypeVideoReminder,
			"url":           "/appointments",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: push send: %v", ErrInternal, err)
	}

	mirror.Pushed = true
	s.saveMirror(ctx, mirror)

	return &Result{Success: true, MessageID: receipt.MessageID}, nil
}

// sendFallbacks makes best-effort SMS/email attempts for tokenless users.
// Failures here never change the caller-facing result.
func (s *reminderService) sendFallbacks(ctx context.Context, user *User, prefs Prefs, req Request) {
	if prefs.SMS && s.sms != nil && s.sms.IsEnabled() && user.Phone != nil {
		phone, err := validPhone(*user.Phone)
		if err != nil {
			slog.Debug("reminder: skipping SMS, invalid phone", "user_id", user.ID, "err", err)
		} else if err := s.sms.SendAppointmentReminder(ctx, phone, req.PsychologistName, req.TimeRange); err != nil {
			slog.Warn("reminder: SMS fallback failed", "user_id", user.ID, "err", err)
		}
	}

	if prefs.Email && s.mail != nil && user.Email != nil {
		msg := email.ReminderMessage(email.ReminderParams{
			To:               *user.Email,
			PatientName:      user.DisplayName,
			PsychologistName: req.PsychologistName,
			TimeRange:        req.TimeRange,
			Locale:           user.Locale,
		})
		if err := s.mail.Send(ctx, msg); err != nil {
			slog.Warn("reminder: email fallback failed", "user_id", user.ID, "err", err)
		}
	}
}

func (s *reminderService) saveMirror(ctx context.Context, m Mirror) {
	if err := s.store.SaveMirror(ctx, m); err != nil {
		slog.Warn("reminder: save in-app notification failed", "account_id", m.AccountID, "err", err)
	}
}

// validPhone normalizes a stored phone number to E.164, defaulting to the
// Indonesian region for national-format numbers.
func validPhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, "ID")
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number")
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
