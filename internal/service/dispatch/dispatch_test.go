package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/tenangapp/tenang_backend/config"
	"github.com/tenangapp/tenang_backend/internal/service/identity"
	"github.com/tenangapp/tenang_backend/pkg/push"
)

// ---------------------------------------------------------------------------
// fakes
// ---------------------------------------------------------------------------

type fakeStore struct {
	appointments map[uuid.UUID]*Appointment
	messages     map[uuid.UUID]*Message
	tokens       map[uuid.UUID]string
	pushDisabled map[uuid.UUID]bool
	mirrors      []Mirror
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		appointments: map[uuid.UUID]*Appointment{},
		messages:     map[uuid.UUID]*Message{},
		tokens:       map[uuid.UUID]string{},
		pushDisabled: map[uuid.UUID]bool{},
	}
}

func (f *fakeStore) Appointment(_ context.Context, id uuid.UUID) (*Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, errors.New("appointment not found")
	}
	return a, nil
}

func (f *fakeStore) Message(_ context.Context, id uuid.UUID) (*Message, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, errors.New("message not found")
	}
	return m, nil
}

func (f *fakeStore) ActiveDeviceToken(_ context.Context, accountID uuid.UUID) (string, error) {
	return f.tokens[accountID], nil
}

func (f *fakeStore) MessagePushAllowed(_ context.Context, accountID uuid.UUID) (bool, error) {
	return !f.pushDisabled[accountID], nil
}

func (f *fakeStore) SaveMirror(_ context.Context, m Mirror) error {
	f.mirrors = append(f.mirrors, m)
	return nil
}

type fakeIdentity struct {
	actors map[uuid.UUID]*identity.Actor
}

func (f *fakeIdentity) Resolve(_ context.Context, id uuid.UUID) (*identity.Actor, error) {
	a, ok := f.actors[id]
	if !ok {
		return nil, identity.ErrUnknownActor
	}
	return a, nil
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
	return &push.Receipt{MessageID: "0:msg-1"}, nil
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func strptr(s string) *string { return &s }

type fixture struct {
	store  *fakeStore
	ident  *fakeIdentity
	sender *fakeSender
	svc    Service

	apptID    uuid.UUID
	msgID     uuid.UUID
	patientID uuid.UUID
	psyID     uuid.UUID
}

// newFixture sets up one appointment where the psychologist sends "Halo"
// and the patient holds device token "tok-123".
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:     newFakeStore(),
		ident:     &fakeIdentity{actors: map[uuid.UUID]*identity.Actor{}},
		sender:    &fakeSender{},
		apptID:    uuid.New(),
		msgID:     uuid.New(),
		patientID: uuid.New(),
		psyID:     uuid.New(),
	}

	f.store.appointments[f.apptID] = &Appointment{
		ID:             f.apptID,
		PatientID:      f.patientID,
		PsychologistID: f.psyID,
	}
	f.store.messages[f.msgID] = &Message{
		ID:            f.msgID,
		AppointmentID: f.apptID,
		SenderID:      f.psyID,
		Content:       strptr("Halo"),
	}
	f.ident.actors[f.psyID] = &identity.Actor{
		ID:          f.psyID,
		Role:        identity.RolePsychologist,
		DisplayName: "Sari",
	}
	f.store.tokens[f.patientID] = "tok-123"

	f.svc = New(f.store, f.ident, f.sender, config.AppConfig{
		BaseURL:     "https://app.tenang.id",
		DefaultIcon: "/icons/tenang-192.png",
	})
	return f
}

func TestHandleMessageCreated_ClinicianToPatient(t *testing.T) {
	f := newFixture(t)

	receipt := f.svc.HandleMessageCreated(context.Background(), f.apptID, f.msgID)
	if receipt == nil {
		t.Fatal("Expected a delivery receipt")
	}

	if len(f.sender.sent) != 1 {
		t.Fatalf("Expected exactly one push, got %d", len(f.sender.sent))
	}
	p := f.sender.sent[0]

	if p.Token != "tok-123" {
		t.Errorf("Expected push to tok-123, got %q", p.Token)
	}
	if want := "Pesan baru dari Sari"; p.Notification.Title != want {
		t.Errorf("Expected title %q, got %q", want, p.Notification.Title)
	}
	if p.Notification.Body != "Halo" {
		t.Errorf("Expected body Halo, got %q", p.Notification.Body)
	}
	if p.Data["type"] != TypeChatMessage {
		t.Errorf("Expected type tag %q, got %q", TypeChatMessage, p.Data["type"])
	}
	if p.Data["appointmentId"] != f.apptID.String() {
		t.Errorf("Expected appointment id in data bag, got %q", p.Data["appointmentId"])
	}

	if len(f.store.mirrors) != 1 || !f.store.mirrors[0].Pushed {
		t.Error("Expected one in-app mirror marked pushed")
	}
}

func TestHandleMessageCreated_PatientToClinician(t *testing.T) {
	f := newFixture(t)

	// Re-point the message at the patient as sender.
	f.store.messages[f.msgID].SenderID = f.patientID
	f.ident.actors[f.patientID] = &identity.Actor{
		ID:   f.patientID,
		Role: identity.RolePatient,
		// no display name: falls back to role label
	}
	f.store.tokens[f.psyID] = "tok-psy"

	receipt := f.svc.HandleMessageCreated(context.Background(), f.apptID, f.msgID)
	if receipt == nil {
		t.Fatal("Expected a delivery receipt")
	}

	p := f.sender.sent[0]
	if p.Token != "tok-psy" {
		t.Errorf("Expected push routed to the psychologist, got token %q", p.Token)
	}
	if want := "Pesan baru dari Pasien"; p.Notification.Title != want {
		t.Errorf("Expected role-label fallback title %q, got %q", want, p.Notification.Title)
	}
}

func TestHandleMessageCreated_UnknownSenderSendsNothing(t *testing.T) {
	f := newFixture(t)
	f.store.messages[f.msgID].SenderID = uuid.New() // in neither collection

	receipt := f.svc.HandleMessageCreated(context.Background(), f.apptID, f.msgID)
	if receipt != nil {
		t.Error("Expected nil receipt for unknown sender")
	}
	if len(f.sender.sent) != 0 {
		t.Errorf("Expected zero pushes, got %d", len(f.sender.sent))
	}
}

func TestHandleMessageCreated_MissingAppointmentSendsNothing(t *testing.T) {
	f := newFixture(t)

	receipt := f.svc.HandleMessageCreated(context.Background(), uuid.New(), f.msgID)
	if receipt != nil || len(f.sender.sent) != 0 {
		t.Error("Expected silent no-op for missing appointment")
	}
}

func TestHandleMessageCreated_NoTokenSendsNothing(t *testing.T) {
	f := newFixture(t)
	delete(f.store.tokens, f.patientID)

	receipt := f.svc.HandleMessageCreated(context.Background(), f.apptID, f.msgID)
	if receipt != nil {
		t.Error("Expected nil receipt when recipient has no token")
	}
	if len(f.sender.sent) != 0 {
		t.Errorf("Expected zero pushes, got %d", len(f.sender.sent))
	}
	// In-app mirror still written so the feed stays complete.
	if len(f.store.mirrors) != 1 || f.store.mirrors[0].Pushed {
		t.Error("Expected one unpushed in-app mirror")
	}
}

func TestHandleMessageCreated_PrefDisabledSkipsPush(t *testing.T) {
	f := newFixture(t)
	f.store.pushDisabled[f.patientID] = true

	receipt := f.svc.HandleMessageCreated(context.Background(), f.apptID, f.msgID)
	if receipt != nil || len(f.sender.sent) != 0 {
		t.Error("Expected no push when message_push pref is off")
	}
	if len(f.store.mirrors) != 1 {
		t.Error("Expected the in-app mirror regardless of pref")
	}
}

func TestHandleMessageCreated_EmptyBodyUsesPlaceholder(t *testing.T) {
	f := newFixture(t)
	f.store.messages[f.msgID].Content = nil

	f.svc.HandleMessageCreated(context.Background(), f.apptID, f.msgID)
	if len(f.sender.sent) != 1 {
		t.Fatal("Expected one push")
	}
	if want := "Anda menerima pesan baru"; f.sender.sent[0].Notification.Body != want {
		t.Errorf("Expected placeholder body %q, got %q", want, f.sender.sent[0].Notification.Body)
	}
}

func TestHandleMessageCreated_SendFailureIsSilent(t *testing.T) {
	f := newFixture(t)
	f.sender.err = errors.New("gateway down")

	receipt := f.svc.HandleMessageCreated(context.Background(), f.apptID, f.msgID)
	if receipt != nil {
		t.Error("Expected nil receipt on send failure")
	}
}

func TestHandleMessageCreated_ReplayIsNotDeduplicated(t *testing.T) {
	f := newFixture(t)

	f.svc.HandleMessageCreated(context.Background(), f.apptID, f.msgID)
	f.svc.HandleMessageCreated(context.Background(), f.apptID, f.msgID)

	if len(f.sender.sent) != 2 {
		t.Errorf("Expected two pushes for a replayed event, got %d", len(f.sender.sent))
	}
}

func TestMirrorCreateRequest(t *testing.T) {
	accountID := uuid.New()

	req := mirrorCreateRequest(Mirror{
		AccountID: accountID,
		Type:      TypeChatMessage,
		Title:     "Pesan baru dari Sari",
		Body:      "Halo",
		Data:      map[string]any{"appointmentId": "a1"},
		Pushed:    true,
	})
	if req.AccountID != accountID || req.Type != TypeChatMessage || !req.Pushed {
		t.Errorf("Unexpected request %+v", req)
	}
	if req.Body == nil || *req.Body != "Halo" {
		t.Errorf("Expected body pointer to %q, got %v", "Halo", req.Body)
	}

	req = mirrorCreateRequest(Mirror{AccountID: accountID, Type: TypeChatMessage, Title: "Pesan Baru"})
	if req.Body != nil {
		t.Errorf("Expected nil body for empty mirror body, got %q", *req.Body)
	}
	if req.Pushed {
		t.Error("Expected unpushed mirror to stay unpushed")
	}
}
