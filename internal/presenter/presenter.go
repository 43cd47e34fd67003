// Package presenter renders push payloads as system notifications and routes
// notification clicks to in-app navigation. It runs inside the companion
// agent process, independent of any foreground session.
package presenter

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/tenangapp/tenang_backend/internal/service/dispatch"
)

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

// PushNotification is the display block of an inbound push payload.
type PushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PushData is the key-value bag carried alongside a push.
type PushData struct {
	AppointmentID string `json:"appointmentId"`
	SenderID      string `json:"senderId,omitempty"`
	SenderName    string `json:"senderName,omitempty"`
	Type          string `json:"type,omitempty"`
	URL           string `json:"url,omitempty"`
}

// PushPayload is one inbound push message.
type PushPayload struct {
	Notification *PushNotification `json:"notification,omitempty"`
	Data         PushData          `json:"data"`
}

// ShowVideoReminder is the direct in-process request to display a reminder
// notification with caller-supplied content, bypassing the push-decision
// logic.
type ShowVideoReminder struct {
	Title         string `json:"title"`
	Body          string `json:"body"`
	AppointmentID string `json:"appointmentId"`
}

// View identifies an in-app destination.
type View string

const (
	ViewChat         View = "chat"
	ViewAppointments View = "appointments"
)

// Route is a resolved in-app navigation target. The view kind and
// appointment id are explicit fields so foreground sessions can own the
// match decision instead of substring-comparing URLs.
type Route struct {
	View          View
	AppointmentID string
	URL           string
}

// NavigateMessage is posted to a focused foreground session to trigger
// in-app navigation.
type NavigateMessage struct {
	Type          string `json:"type"`
	AppointmentID string `json:"appointmentId"`
}

const (
	NavigateToChat        = "NAVIGATE_TO_CHAT"
	NavigateToAppointment = "NAVIGATE_TO_APPOINTMENT"
)

// ---------------------------------------------------------------------------
// Ports
// ---------------------------------------------------------------------------

// Notification is a rendered system notification.
type Notification struct {
	ID                 string
	Title              string
	Body               string
	Icon               string
	Actions            []Action
	RequireInteraction bool
	Data               PushData
}

// Action is one button on a system notification.
type Action struct {
	Action string
	Title  string
}

const (
	ActionView  = "view"
	ActionClose = "close"
)

// Display shows and closes system notifications.
type Display interface {
	Show(n Notification) error
	Close(id string) error
}

// Window is one open foreground session.
type Window interface {
	Matches(r Route) bool
	Focus() error
	Post(m NavigateMessage) error
}

// Windows enumerates foreground sessions and opens new ones.
type Windows interface {
	List() []Window
	Open(url string) error
}

// ---------------------------------------------------------------------------
// Presenter
// ---------------------------------------------------------------------------

// State is the lifecycle position of one received push.
type State string

const (
	StateDisplayed State = "displayed"
	StateDismissed State = "dismissed"
	StateRouted    State = "routed"
)

type shown struct {
	state State
	data  PushData
}

// Presenter is the notification state machine. One instance serves all
// pushes received by the agent; per-push state lives in the active map.
type Presenter struct {
	display Display
	windows Windows
	icon    string

	mu     sync.Mutex
	active map[string]*shown
}

func New(display Display, windows Windows, icon string) *Presenter {
	return &Presenter{
		display: display,
		windows: windows,
		icon:    icon,
		active:  map[string]*shown{},
	}
}

// HandlePush decides notification content and displays it. Payload-supplied
// title and body win; otherwise a template keyed by the data type tag is
// used. Returns the notification id for later click handling.
func (p *Presenter) HandlePush(payload PushPayload) (string, error) {
	title, body := templateFor(payload.Data.Type)
	if payload.Notification != nil {
		if payload.Notification.Title != "" {
			title = payload.Notification.Title
		}
		if payload.Notification.Body != "" {
			body = payload.Notification.Body
		}
	}
	return p.show(title, body, payload.Data)
}

// HandleShowVideoReminder displays a reminder notification with the given
// content directly, used for reminders scheduled agent-side rather than
// delivered via push.
func (p *Presenter) HandleShowVideoReminder(msg ShowVideoReminder) (string, error) {
	title := msg.Title
	body := msg.Body
	if title == "" {
		title, _ = templateFor(dispatch.TypeVideoReminder)
	}
	if body == "" {
		_, body = templateFor(dispatch.TypeVideoReminder)
	}
	return p.show(title, body, PushData{
		AppointmentID: msg.AppointmentID,
		Type:          dispatch.TypeVideoReminder,
	})
}

// HandleClick routes one click event on a displayed notification. A close
// action dismisses; anything else (the view action or a direct body click)
// closes the notification and focuses a matching foreground session or
// opens a new one. The session enumeration and the focus-or-open decision
// run as one uninterrupted step under the lock.
func (p *Presenter) HandleClick(id, action string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.active[id]
	if !ok || s.state != StateDisplayed {
		return fmt.Errorf("no displayed notification %q", id)
	}

	if err := p.display.Close(id); err != nil {
		slog.Warn("presenter: close failed", "id", id, "err", err)
	}

	if action == ActionClose {
		s.state = StateDismissed
		return nil
	}

	route := routeFor(s.data)
	for _, w := range p.windows.List() {
		if !w.Matches(route) {
			continue
		}
		if err := w.Focus(); err != nil {
			slog.Warn("presenter: focus failed", "err", err)
			continue
		}
		if err := w.Post(navigateFor(route)); err != nil {
			return fmt.Errorf("post navigation: %w", err)
		}
		s.state = StateRouted
		return nil
	}

	if err := p.windows.Open(route.URL); err != nil {
		return fmt.Errorf("open %s: %w", route.URL, err)
	}
	s.state = StateRouted
	return nil
}

// State reports the lifecycle position of a shown notification.
func (p *Presenter) State(id string) (State, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.active[id]
	if !ok {
		return "", false
	}
	return s.state, true
}

func (p *Presenter) show(title, body string, data PushData) (string, error) {
	id := uuid.New().String()

	// The entry must exist before the display call returns, or a click
	// arriving while Show is in flight finds no displayed notification.
	p.mu.Lock()
	p.active[id] = &shown{state: StateDisplayed, data: data}
	p.mu.Unlock()

	err := p.display.Show(Notification{
		ID:    id,
		Title: title,
		Body:  body,
		Icon:  p.icon,
		Actions: []Action{
			{Action: ActionView, Title: "Lihat"},
			{Action: ActionClose, Title: "Tutup"},
		},
		RequireInteraction: true,
		Data:               data,
	})
	if err != nil {
		p.mu.Lock()
		delete(p.active, id)
		p.mu.Unlock()
		return "", fmt.Errorf("show notification: %w", err)
	}

	return id, nil
}

// ---------------------------------------------------------------------------
// Content and routing decisions
// ---------------------------------------------------------------------------

func templateFor(typeTag string) (title, body string) {
	switch typeTag {
	case dispatch.TypeVideoReminder:
		return "Pengingat Sesi Video", "Sesi video Anda akan segera dimulai."
	default:
		return "Pesan Baru", "Anda menerima pesan baru."
	}
}

func routeFor(data PushData) Route {
	if data.Type == dispatch.TypeVideoReminder {
		url := data.URL
		if url == "" {
			url = "/appointments"
		}
		return Route{View: ViewAppointments, AppointmentID: data.AppointmentID, URL: url}
	}

	url := data.URL
	if url == "" {
		url = "/chat/" + data.AppointmentID
	}
	return Route{View: ViewChat, AppointmentID: data.AppointmentID, URL: url}
}

func navigateFor(r Route) NavigateMessage {
	if r.View == ViewAppointments {
		return NavigateMessage{Type: NavigateToAppointment, AppointmentID: r.AppointmentID}
	}
	return NavigateMessage{Type: NavigateToChat, AppointmentID: r.AppointmentID}
}
