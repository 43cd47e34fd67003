package presenter

import "log/slog"

// ConsoleDisplay renders notifications as log lines. It is the display used
// by the headless agent command; desktop integrations implement Display
// against their own notification APIs.
type ConsoleDisplay struct{}

func (ConsoleDisplay) Show(n Notification) error {
	slog.Info("notification",
		"id", n.ID,
		"title", n.Title,
		"body", n.Body,
		"type", n.Data.Type,
		"appointment_id", n.Data.AppointmentID,
	)
	return nil
}

func (ConsoleDisplay) Close(id string) error {
	slog.Info("notification closed", "id", id)
	return nil
}

// ConsoleWindows has no foreground sessions; every routed click falls
// through to Open, which logs the target URL.
type ConsoleWindows struct{}

func (ConsoleWindows) List() []Window { return nil }

func (ConsoleWindows) Open(url string) error {
	slog.Info("open", "url", url)
	return nil
}
