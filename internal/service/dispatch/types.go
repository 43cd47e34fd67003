package dispatch

// Notification type tags carried in the push data bag. The presenter keys its
// templates and click routing on these.
const (
	TypeChatMessage   = "chat-message"
	TypeVideoReminder = "video-reminder"
)
