package presenter

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// fakes
// ---------------------------------------------------------------------------

type fakeDisplay struct {
	shown  []Notification
	closed []string
}

func (f *fakeDisplay) Show(n Notification) error {
	f.shown = append(f.shown, n)
	return nil
}

func (f *fakeDisplay) Close(id string) error {
	f.closed = append(f.closed, id)
	return nil
}

type fakeWindow struct {
	route   Route
	focused bool
	posted  []NavigateMessage
}

func (w *fakeWindow) Matches(r Route) bool {
	return w.route.View == r.View && w.route.AppointmentID == r.AppointmentID
}

func (w *fakeWindow) Focus() error {
	w.focused = true
	return nil
}

func (w *fakeWindow) Post(m NavigateMessage) error {
	w.posted = append(w.posted, m)
	return nil
}

type fakeWindows struct {
	windows []Window
	opened  []string
}

func (f *fakeWindows) List() []Window { return f.windows }

func (f *fakeWindows) Open(url string) error {
	f.opened = append(f.opened, url)
	return nil
}

func fixture(windows ...Window) (*fakeDisplay, *fakeWindows, *Presenter) {
	d := &fakeDisplay{}
	w := &fakeWindows{windows: windows}
	return d, w, New(d, w, "/icons/logo.png")
}

// ---------------------------------------------------------------------------
// display decisions
// ---------------------------------------------------------------------------

func TestHandlePushPrefersPayloadContent(t *testing.T) {
	d, _, p := fixture()

	id, err := p.HandlePush(PushPayload{
		Notification: &PushNotification{Title: "Pesan baru dari Sari", Body: "Halo"},
		Data:         PushData{AppointmentID: "a1", Type: "chat-message"},
	})
	if err != nil {
		t.Fatalf("HandlePush: %v", err)
	}

	if len(d.shown) != 1 {
		t.Fatalf("shown = %d, want 1", len(d.shown))
	}
	n := d.shown[0]
	if n.Title != "Pesan baru dari Sari" || n.Body != "Halo" {
		t.Fatalf("notification = %q / %q", n.Title, n.Body)
	}
	if !n.RequireInteraction {
		t.Fatal("expected RequireInteraction")
	}
	if len(n.Actions) != 2 || n.Actions[0].Action != ActionView || n.Actions[1].Action != ActionClose {
		t.Fatalf("actions = %+v", n.Actions)
	}

	if state, ok := p.State(id); !ok || state != StateDisplayed {
		t.Fatalf("state = %q, %v", state, ok)
	}
}

func TestHandlePushTemplateFallback(t *testing.T) {
	tests := []struct {
		name      string
		typeTag   string
		wantTitle string
	}{
		{"video reminder", "video-reminder", "Pengingat Sesi Video"},
		{"chat default", "chat-message", "Pesan Baru"},
		{"unknown type", "", "Pesan Baru"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, _, p := fixture()

			_, err := p.HandlePush(PushPayload{
				Data: PushData{AppointmentID: "a1", Type: tc.typeTag},
			})
			if err != nil {
				t.Fatalf("HandlePush: %v", err)
			}
			if d.shown[0].Title != tc.wantTitle {
				t.Fatalf("title = %q, want %q", d.shown[0].Title, tc.wantTitle)
			}
		})
	}
}

func TestHandleShowVideoReminder(t *testing.T) {
	d, _, p := fixture()

	_, err := p.HandleShowVideoReminder(ShowVideoReminder{
		Title:         "Sesi 10:00",
		Body:          "Bersama Sari",
		AppointmentID: "a1",
	})
	if err != nil {
		t.Fatalf("HandleShowVideoReminder: %v", err)
	}

	n := d.shown[0]
	if n.Title != "Sesi 10:00" || n.Body != "Bersama Sari" {
		t.Fatalf("notification = %q / %q", n.Title, n.Body)
	}
	if n.Data.Type != "video-reminder" || n.Data.AppointmentID != "a1" {
		t.Fatalf("data = %+v", n.Data)
	}
}

// ---------------------------------------------------------------------------
// click routing
// ---------------------------------------------------------------------------

func TestClickCloseDismisses(t *testing.T) {
	d, w, p := fixture()

	id, _ := p.HandlePush(PushPayload{Data: PushData{AppointmentID: "a1"}})

	if err := p.HandleClick(id, ActionClose); err != nil {
		t.Fatalf("HandleClick: %v", err)
	}

	if state, _ := p.State(id); state != StateDismissed {
		t.Fatalf("state = %q, want dismissed", state)
	}
	if len(d.closed) != 1 || d.closed[0] != id {
		t.Fatalf("closed = %v", d.closed)
	}
	if len(w.opened) != 0 {
		t.Fatalf("opened = %v, want none", w.opened)
	}
}

func TestClickViewOpensNewWindow(t *testing.T) {
	_, w, p := fixture()

	id, _ := p.HandlePush(PushPayload{
		Data: PushData{AppointmentID: "a1", Type: "chat-message", URL: "/chat/a1"},
	})

	if err := p.HandleClick(id, ActionView); err != nil {
		t.Fatalf("HandleClick: %v", err)
	}

	if state, _ := p.State(id); state != StateRouted {
		t.Fatalf("state = %q, want routed", state)
	}
	if len(w.opened) != 1 || w.opened[0] != "/chat/a1" {
		t.Fatalf("opened = %v", w.opened)
	}
}

func TestClickViewFocusesMatchingWindow(t *testing.T) {
	chat := &fakeWindow{route: Route{View: ViewChat, AppointmentID: "a1"}}
	_, w, p := fixture(chat)

	id, _ := p.HandlePush(PushPayload{
		Data: PushData{AppointmentID: "a1", Type: "chat-message"},
	})

	if err := p.HandleClick(id, ActionView); err != nil {
		t.Fatalf("HandleClick: %v", err)
	}

	if !chat.focused {
		t.Fatal("expected matching window focused")
	}
	if len(chat.posted) != 1 {
		t.Fatalf("posted = %d, want 1", len(chat.posted))
	}
	msg := chat.posted[0]
	if msg.Type != NavigateToChat || msg.AppointmentID != "a1" {
		t.Fatalf("navigate = %+v", msg)
	}
	if len(w.opened) != 0 {
		t.Fatalf("opened = %v, want none", w.opened)
	}
}

func TestVideoReminderClickRoutesToAppointments(t *testing.T) {
	// A chat window for the same appointment must not match a reminder
	// route; the click goes to the appointment view.
	chat := &fakeWindow{route: Route{View: ViewChat, AppointmentID: "a1"}}
	appts := &fakeWindow{route: Route{View: ViewAppointments, AppointmentID: "a1"}}
	_, _, p := fixture(chat, appts)

	id, _ := p.HandlePush(PushPayload{
		Data: PushData{AppointmentID: "a1", Type: "video-reminder"},
	})

	if err := p.HandleClick(id, ActionView); err != nil {
		t.Fatalf("HandleClick: %v", err)
	}

	if chat.focused {
		t.Fatal("chat window focused for a reminder click")
	}
	if !appts.focused {
		t.Fatal("appointment window not focused")
	}
	if appts.posted[0].Type != NavigateToAppointment {
		t.Fatalf("navigate = %+v", appts.posted[0])
	}
}

func TestBodyClickRoutesLikeView(t *testing.T) {
	_, w, p := fixture()

	id, _ := p.HandlePush(PushPayload{
		Data: PushData{AppointmentID: "a1", Type: "video-reminder"},
	})

	// A direct body click arrives with no action string.
	if err := p.HandleClick(id, ""); err != nil {
		t.Fatalf("HandleClick: %v", err)
	}

	if len(w.opened) != 1 || w.opened[0] != "/appointments" {
		t.Fatalf("opened = %v", w.opened)
	}
}

func TestClickUnknownNotification(t *testing.T) {
	_, _, p := fixture()

	if err := p.HandleClick("missing", ActionView); err == nil {
		t.Fatal("expected error for unknown notification")
	}
}

func TestClickTwiceIsRejected(t *testing.T) {
	_, _, p := fixture()

	id, _ := p.HandlePush(PushPayload{Data: PushData{AppointmentID: "a1"}})

	if err := p.HandleClick(id, ActionClose); err != nil {
		t.Fatalf("first click: %v", err)
	}
	if err := p.HandleClick(id, ActionView); err == nil {
		t.Fatal("expected error clicking a dismissed notification")
	}
}

// clickingDisplay clicks its own notification from inside Show, like a user
// reacting before the display call has returned.
type clickingDisplay struct {
	fakeDisplay
	p      *Presenter
	action string
	err    error
}

func (d *clickingDisplay) Show(n Notification) error {
	if err := d.fakeDisplay.Show(n); err != nil {
		return err
	}
	d.err = d.p.HandleClick(n.ID, d.action)
	return nil
}

func TestClickDuringShowIsAccepted(t *testing.T) {
	d := &clickingDisplay{action: ActionClose}
	w := &fakeWindows{}
	p := New(d, w, "/icons/logo.png")
	d.p = p

	id, err := p.HandlePush(PushPayload{Data: PushData{AppointmentID: "a1"}})
	if err != nil {
		t.Fatalf("HandlePush: %v", err)
	}
	if d.err != nil {
		t.Fatalf("click during show rejected: %v", d.err)
	}
	if st, ok := p.State(id); !ok || st != StateDismissed {
		t.Fatalf("state = %v, %v; want dismissed", st, ok)
	}
}

type failingDisplay struct {
	fakeDisplay
	lastID string
}

func (d *failingDisplay) Show(n Notification) error {
	d.lastID = n.ID
	return errors.New("display unavailable")
}

func TestFailedShowLeavesNoState(t *testing.T) {
	d := &failingDisplay{}
	w := &fakeWindows{}
	p := New(d, w, "/icons/logo.png")

	if _, err := p.HandlePush(PushPayload{Data: PushData{AppointmentID: "a1"}}); err == nil {
		t.Fatal("expected error when display fails")
	}
	if _, ok := p.State(d.lastID); ok {
		t.Fatal("failed show left a state entry behind")
	}
}

func TestRouteFor(t *testing.T) {
	tests := []struct {
		name     string
		data     PushData
		wantView View
		wantURL  string
	}{
		{"reminder", PushData{Type: "video-reminder", AppointmentID: "a1"}, ViewAppointments, "/appointments"},
		{"reminder with url", PushData{Type: "video-reminder", URL: "/appointments?tab=today"}, ViewAppointments, "/appointments?tab=today"},
		{"chat", PushData{Type: "chat-message", AppointmentID: "a1"}, ViewChat, "/chat/a1"},
		{"chat with url", PushData{AppointmentID: "a1", URL: "/chat/a1?m=5"}, ViewChat, "/chat/a1?m=5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := routeFor(tc.data)
			if r.View != tc.wantView || r.URL != tc.wantURL {
				t.Fatalf("routeFor(%+v) = %+v", tc.data, r)
			}
		})
	}
}
