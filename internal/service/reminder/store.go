package reminder

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/tenangapp/tenang_backend/internal/repo"
	entpref "github.com/tenangapp/tenang_backend/internal/repo/notificationpref"
	entuser "github.com/tenangapp/tenang_backend/internal/repo/user"
	entdevice "github.com/tenangapp/tenang_backend/internal/repo/userdevice"
	"github.com/tenangapp/tenang_backend/internal/service/dispatch"
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

func (s *entStore) User(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: get user: %v", ErrInternal, err)
	}
	return &User{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Phone:       u.Phone,
		Locale:      u.Locale,
	}, nil
}

func (s *entStore) ReminderPrefs(ctx context.Context, id uuid.UUID) (Prefs, error) {
	pref, err := s.db.NotificationPref.Query().
		Where(entpref.AccountID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Missing row: push on, fallback channels off.
			return Prefs{Push: true}, nil
		}
		return Prefs{}, fmt.Errorf("get prefs: %w", err)
	}
	return Prefs{
		Push:  pref.AppointmentPush,
		SMS:   pref.AppointmentSms,
		Email: pref.AppointmentEmail,
	}, nil
}

func (s *entStore) ActiveDeviceToken(ctx context.Context, id uuid.UUID) (string, error) {
	d, err := s.db.UserDevice.Query().
		Where(
			entdevice.AccountID(id),
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

func (s *entStore) SaveMirror(ctx context.Context, m Mirror) error {
	if _, err := s.notifs.Create(ctx, mirrorCreateRequest(m)); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func mirrorCreateRequest(m Mirror) notification.CreateRequest {
	req := notification.CreateRequest{
		AccountID: m.AccountID,
		Type:      dispatch.TypeVideoReminder,
		Title:     m.Title,
		Data:      m.Data,
		Pushed:    m.Pushed,
	}
	if m.Body != "" {
		req.Body = &m.Body
	}
	return req
}
