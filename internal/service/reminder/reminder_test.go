package reminder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tenangapp/tenang_backend/config"
	"github.com/tenangapp/tenang_backend/internal/service/dispatch"
	"github.com/tenangapp/tenang_backend/pkg/email"
	"github.com/tenangapp/tenang_backend/pkg/push"
)

// ---------------------------------------------------------------------------
// fakes
// ---------------------------------------------------------------------------

type fakeStore struct {
	users   map[uuid.UUID]*User
	prefs   map[uuid.UUID]Prefs
	tokens  map[uuid.UUID]string
	mirrors []Mirror
}

func (f *fakeStore) User(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) ReminderPrefs(_ context.Context, id uuid.UUID) (Prefs, error) {
	p, ok := f.prefs[id]
	if !ok {
		return Prefs{Push: true}, nil
	}
	return p, nil
}

func (f *fakeStore) ActiveDeviceToken(_ context.Context, id uuid.UUID) (string, error) {
	return f.tokens[id], nil
}

func (f *fakeStore) SaveMirror(_ context.Context, m Mirror) error {
	f.mirrors = append(f.mirrors, m)
	return nil
}

type fakeSender struct {
	sent []push.Payload
	err  error
}

func (f *fakeSender) Send(_ context.Context, p push.Payload) (*push.Receipt, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, p)
	return &push.Receipt{MessageID: "0:98765"}, nil
}

type fakeSMS struct {
	enabled bool
	calls   []string
}

func (f *fakeSMS) SendAppointmentReminder(_ context.Context, phone, _, _ string) error {
	f.calls = append(f.calls, phone)
	return nil
}

func (f *fakeSMS) IsEnabled() bool { return f.enabled }

type fakeMail struct {
	sent []email.Message
}

func (f *fakeMail) Send(_ context.Context, m email.Message) error {
	f.sent = append(f.sent, m)
	return nil
}

// ---------------------------------------------------------------------------
// fixture
// ---------------------------------------------------------------------------

var (
	patientID = uuid.MustParse("7b41c9e2-3f5a-4d6b-8c1e-2a9f0d4e6b13")
	apptID    = "a1b2c3d4-0000-4000-8000-000000000001"
)

func fixture() (*fakeStore, *fakeSender, *fakeSMS, *fakeMail, Service) {
	phone := "+6281234567890"
	mail := "budi@example.com"
	store := &fakeStore{
		users: map[uuid.UUID]*User{
			patientID: {
				ID:          patientID,
				DisplayName: "Budi",
				Email:       &mail,
				Phone:       &phone,
				Locale:      "id",
			},
		},
		prefs:  map[uuid.UUID]Prefs{},
		tokens: map[uuid.UUID]string{patientID: "tok-456"},
	}
	sender := &fakeSender{}
	sms := &fakeSMS{enabled: true}
	mailer := &fakeMail{}
	svc := New(store, sender, sms, mailer, config.AppConfig{
		BaseURL:     "https://app.tenang.id",
		DefaultIcon: "/icons/logo.png",
	})
	return store, sender, sms, mailer, svc
}

func request() Request {
	return Request{
		AppointmentID:    apptID,
		UserID:           patientID.String(),
		PsychologistName: "Sari",
		TimeRange:        "10:00-10:30",
	}
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestSendDeliversPush(t *testing.T) {
	store, sender, _, _, svc := fixture()

	res, err := svc.Send(context.Background(), request())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !res.Success {
		t.Fatal("expected Success=true")
	}
	if res.MessageID != "0:98765" {
		t.Fatalf("message id = %q", res.MessageID)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("push sends = %d, want 1", len(sender.sent))
	}
	p := sender.sent[0]
	if p.Token != "tok-456" {
		t.Fatalf("token = %q", p.Token)
	}
	if p.Notification.Title != "Pengingat Sesi Video" {
		t.Fatalf("title = %q", p.Notification.Title)
	}
	if !strings.Contains(p.Notification.Body, "Sari") || !strings.Contains(p.Notification.Body, "10:00-10:30") {
		t.Fatalf("body = %q", p.Notification.Body)
	}
	if p.Data["type"] != "video-reminder" {
		t.Fatalf("data type = %q", p.Data["type"])
	}
	if p.Data["appointmentId"] != apptID {
		t.Fatalf("data appointmentId = %q", p.Data["appointmentId"])
	}
	if p.Notification.ClickAction != "https://app.tenang.id/appointments" {
		t.Fatalf("click action = %q", p.Notification.ClickAction)
	}

	if len(store.mirrors) != 1 || !store.mirrors[0].Pushed {
		t.Fatalf("mirrors = %+v", store.mirrors)
	}
}

func TestSendValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing appointment id", func(r *Request) { r.AppointmentID = "" }},
		{"missing user id", func(r *Request) { r.UserID = "" }},
		{"missing psychologist name", func(r *Request) { r.PsychologistName = "" }},
		{"missing time range", func(r *Request) { r.TimeRange = "" }},
		{"malformed user id", func(r *Request) { r.UserID = "not-a-uuid" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, sender, _, _, svc := fixture()
			req := request()
			tc.mutate(&req)

			_, err := svc.Send(context.Background(), req)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
			if len(sender.sent) != 0 {
				t.Fatalf("push sends = %d, want 0", len(sender.sent))
			}
		})
	}
}

func TestSendUnknownUser(t *testing.T) {
	_, sender, _, _, svc := fixture()

	req := request()
	req.UserID = uuid.New().String()

	_, err := svc.Send(context.Background(), req)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(sender.sent) != 0 {
		t.Fatal("expected no push sends")
	}
}

func TestSendNoDeviceToken(t *testing.T) {
	store, sender, _, _, svc := fixture()
	store.tokens = map[uuid.UUID]string{}

	res, err := svc.Send(context.Background(), request())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res.Success {
		t.Fatal("expected Success=false for tokenless user")
	}
	if res.MessageID != "" {
		t.Fatalf("message id = %q, want empty", res.MessageID)
	}
	if len(sender.sent) != 0 {
		t.Fatal("expected no push sends")
	}
	if len(store.mirrors) != 1 || store.mirrors[0].Pushed {
		t.Fatalf("mirrors = %+v", store.mirrors)
	}
}

func TestSendFallbackChannels(t *testing.T) {
	store, _, sms, mailer, svc := fixture()
	store.tokens = map[uuid.UUID]string{}
	store.prefs[patientID] = Prefs{Push: true, SMS: true, Email: true}

	res, err := svc.Send(context.Background(), request())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res.Success {
		t.Fatal("expected Success=false")
	}

	if len(sms.calls) != 1 || sms.calls[0] != "+6281234567890" {
		t.Fatalf("sms calls = %v", sms.calls)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("emails = %d, want 1", len(mailer.sent))
	}
	if len(mailer.sent[0].To) != 1 || mailer.sent[0].To[0] != "budi@example.com" {
		t.Fatalf("email to = %v", mailer.sent[0].To)
	}
}

func TestSendFallbacksRespectPrefs(t *testing.T) {
	store, _, sms, mailer, svc := fixture()
	store.tokens = map[uuid.UUID]string{}
	store.prefs[patientID] = Prefs{Push: true, SMS: false, Email: false}

	if _, err := svc.Send(context.Background(), request()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(sms.calls) != 0 || len(mailer.sent) != 0 {
		t.Fatalf("fallbacks fired despite disabled prefs: sms=%v mail=%d", sms.calls, len(mailer.sent))
	}
}

func TestSendPushFailure(t *testing.T) {
	_, sender, _, _, svc := fixture()
	sender.err = errors.New("gateway timeout")

	_, err := svc.Send(context.Background(), request())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"+6281234567890", "+6281234567890", false},
		{"081234567890", "+6281234567890", false},
		{"not a phone", "", true},
	}
	for _, tc := range tests {
		got, err := validPhone(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("validPhone(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("validPhone(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("validPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMirrorCreateRequest(t *testing.T) {
	accountID := uuid.New()

	req := mirrorCreateRequest(Mirror{
		AccountID: accountID,
		Title:     "Pengingat Sesi Video",
		Body:      "Sesi konsultasi Anda akan segera dimulai.",
		Pushed:    true,
	})
	if req.Type != dispatch.TypeVideoReminder {
		t.Errorf("Expected type %q, got %q", dispatch.TypeVideoReminder, req.Type)
	}
	if req.Body == nil || *req.Body == "" {
		t.Error("Expected body pointer for non-empty mirror body")
	}
	if !req.Pushed {
		t.Error("Expected pushed flag to carry over")
	}

	req = mirrorCreateRequest(Mirror{AccountID: accountID, Title: "Pengingat Sesi Video"})
	if req.Body != nil {
		t.Errorf("Expected nil body for empty mirror body, got %q", *req.Body)
	}
}
