package dispatch

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/tenangapp/tenang_backend/internal/repo"
	entappt "github.com/tenangapp/tenang_backend/internal/repo/appointment"
	entmsg "github.com/tenangapp/tenang_backend/internal/repo/message"
	entpref "github.com/tenangapp/tenang_backend/internal/repo/notificationpref"
	entdevice "github.com/tenangapp/tenang_backend/internal/repo/userdevice"
	"github.com/tenangapp/tenang_backend/internal/service/notification"
)

type entStore struct {
	db     *repo.Client
	notifs notification.Service
}

// NewStore returns the ent-backed Store used in production. Mirror rows go
// through the notification service so the in-app feed owns that write path.
func NewStore(db *repo.Client, notifs notification.Service) Store {
	return &entStore{db: db, notifs: notifs}
}

func (s *entStore) Appointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := s.db.Appointment.Query().
		Where(entappt.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &Appointment{
		ID:             a.ID,
		PatientID:      a.PatientID,
		PsychologistID: a.PsychologistID,
	}, nil
}

func (s *entStore) Message(ctx context.Context, id uuid.UUID) (*Message, error) {
	m, err := s.db.Message.Query().
		Where(entmsg.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	return &Message{
		ID:            m.ID,
		AppointmentID: m.AppointmentID,
		SenderID:      m.SenderID,
		Content:       m.Content,
	}, nil
}

func (s *entStore) ActiveDeviceToken(ctx context.Context, accountID uuid.UUID) (string, error) {
	d, err := s.db.UserDevice.Query().
		Where(
			entdevice.AccountID(accountID),
			entdevice.IsActive(true),
		).
		Order(entdevice.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("get device: %w", err)
	}
	return d.DeviceToken, nil
}

func (s *entStore) MessagePushAllowed(ctx context.Context, accountID uuid.UUID) (bool, error) {
	pref, err := s.db.NotificationPref.Query().
		Where(entpref.AccountID(accountID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Missing prefs default to on.
			return true, nil
		}
		return false, fmt.Errorf("get prefs: %w", err)
	}
	return pref.MessagePush, nil
}

func (s *entStore) SaveMirror(ctx context.Context, m Mirror) error {
	if _, err := s.notifs.Create(ctx, mirrorCreateRequest(m)); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func mirrorCreateRequest(m Mirror) notification.CreateRequest {
	req := notification.CreateRequest{
		AccountID: m.AccountID,
		Type:      m.Type,
		Title:     m.Title,
		Data:      m.Data,
		Pushed:    m.Pushed,
	}
	if m.Body != "" {
		req.Body = &m.Body
	}
	return req
}
