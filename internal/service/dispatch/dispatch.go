package dispatch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tenangapp/tenang_backend/config"
	"github.com/tenangapp/tenang_backend/internal/service/identity"
	"github.com/tenangapp/tenang_backend/pkg/push"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Appointment is the slice of an appointment record the dispatcher reads.
type Appointment struct {
	ID             uuid.UUID
	PatientID      uuid.UUID
	PsychologistID uuid.UUID
}

// Message is the slice of a message record the dispatcher reads.
type Message struct {
	ID            uuid.UUID
	AppointmentID uuid.UUID
	SenderID      uuid.UUID
	Content       *string
}

// Mirror is the in-app copy persisted alongside each dispatch attempt.
type Mirror struct {
	AccountID uuid.UUID
	Type      string
	Title     string
	Body      string
	Data      map[string]any
	Pushed    bool
}

// ---------------------------------------------------------------------------
// Store
// ---------------------------------------------------------------------------

// Store is the read/write surface the dispatcher needs. Backed by ent in
// production (see store.go) and by fakes in tests.
type Store interface {
	Appointment(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Message(ctx context.Context, id uuid.UUID) (*Message, error)
	// ActiveDeviceToken returns "" when the account has no active device.
	ActiveDeviceToken(ctx context.Context, accountID uuid.UUID) (string, error)
	MessagePushAllowed(ctx context.Context, accountID uuid.UUID) (bool, error)
	SaveMirror(ctx context.Context, m Mirror) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the chat notification dispatcher. It has no synchronous caller:
// every failure path degrades to a logged no-op and a nil receipt.
type Service interface {
	HandleMessageCreated(ctx context.Context, appointmentID, messageID uuid.UUID) *push.Receipt
}

type dispatchService struct {
	store    Store
	identity identity.Service
	sender   push.Sender
	app      config.AppConfig
}

func New(store Store, ident identity.Service, sender push.Sender, app config.AppConfig) Service {
	return &dispatchService{store: store, identity: ident, sender: sender, app: app}
}

// HandleMessageCreated resolves sender and recipient for a newly created chat
// message and makes exactly one push attempt. Replaying the same event sends
// again: there is no dedup and no retry.
func (s *dispatchService) HandleMessageCreated(ctx context.Context, appointmentID, messageID uuid.UUID) *push.Receipt {
	appt, err := s.store.Appointment(ctx, appointmentID)
	if err != nil {
		slog.Warn("dispatch: appointment not found", "appointment_id", appointmentID, "err", err)
		return nil
	}

	msg, err := s.store.Message(ctx, messageID)
	if err != nil {
		slog.Warn("dispatch: message not found", "message_id", messageID, "err", err)
		return nil
	}

	sender, err := s.identity.Resolve(ctx, msg.SenderID)
	if err != nil {
		if errors.Is(err, identity.ErrUnknownActor) {
			slog.Warn("dispatch: sender matches no known role", "sender_id", msg.SenderID)
		} else {
			slog.Warn("dispatch: sender resolution failed", "sender_id", msg.SenderID, "err", err)
		}
		return nil
	}

	recipientID := appt.PatientID
	if sender.Role == identity.RolePatient {
		recipientID = appt.PsychologistID
	}

	title := chatTitle(sender)
	body := chatBody(msg)
	chatURL := "/chat/" + appt.ID.String()

	mirror := Mirror{
		AccountID: recipientID,
		Type:      TypeChatMessage,
		Title:     title,
		Body:      body,
		Data: map[string]any{
			"appointment_id": appt.ID.String(),
			"sender_id":      sender.ID.String(),
		},
	}

	allowed, err := s.store.MessagePushAllowed(ctx, recipientID)
	if err != nil {
		slog.Warn("dispatch: pref lookup failed", "account_id", recipientID, "err", err)
		allowed = true
	}
	if !allowed {
		slog.Debug("dispatch: message push disabled by prefs", "account_id", recipientID)
		s.saveMirror(ctx, mirror)
		return nil
	}

	token, err := s.store.ActiveDeviceToken(ctx, recipientID)
	if err != nil {
		slog.Warn("dispatch: device lookup failed", "account_id", recipientID, "err", err)
		s.saveMirror(ctx, mirror)
		return nil
	}
	if token == "" {
		slog.Debug("dispatch: recipient has no push token", "account_id", recipientID)
		s.saveMirror(ctx, mirror)
		return nil
	}

	receipt, err := s.sender.Send(ctx, push.Payload{
		Token: token,
		Notification: push.Notification{
			Title:       title,
			Body:        body,
			Icon:        s.app.DefaultIcon,
			ClickAction: s.app.BaseURL + chatURL,
		},
		Data: map[string]string{
			"appointmentId": appt.ID.String(),
			"senderId":      sender.ID.String(),
			"senderName":    sender.DisplayName,
			"type":          TypeChatMessage,
			"url":           chatURL,
		},
	})
	if err != nil {
		slog.Warn("dispatch: push send failed", "account_id", recipientID, "err", err)
		s.saveMirror(ctx, mirror)
		return nil
	}

	mirror.Pushed = true
	s.saveMirror(ctx, mirror)

	return receipt
}

func (s *dispatchService) saveMirror(ctx context.Context, m Mirror) {
	if err := s.store.SaveMirror(ctx, m); err != nil {
		slog.Warn("dispatch: save in-app notification failed", "account_id", m.AccountID, "err", err)
	}
}

func chatTitle(sender *identity.Actor) string {
	name := sender.DisplayName
	if name == "" {
		name = sender.Role.Label()
	}
	return "Pesan baru dari " + name
}

func chatBody(msg *Message) string {
	if msg.Content == nil || *msg.Content == "" {
		return "Anda menerima pesan baru"
	}
	return *msg.Content
}
