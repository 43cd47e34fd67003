package email

import (
	"fmt"
)

// ReminderParams contains the data needed for the appointment reminder email.
type ReminderParams struct {
	To               string
	PatientName      string
	PsychologistName string
	TimeRange        string
	Locale           string // "id" or "en"
}

// ReminderMessage creates a video-session reminder email message.
func ReminderMessage(p ReminderParams) Message {
	name := p.PatientName
	if name == "" {
		if p.Locale == "en" {
			name = "there"
		} else {
			name = "Anda"
		}
	}

	var subject, greeting, line1, line2, closing string

	if p.Locale == "en" {
		subject = "Video Session Reminder | Pengingat Sesi Video"
		greeting = fmt.Sprintf("Hi %s,", name)
		line1 = fmt.Sprintf("This is a reminder that your consultation session with %s starts at %s.", p.PsychologistName, p.TimeRange)
		line2 = "Please open the app a few minutes early to join the video room."
		closing = "The Tenang Team"
	} else {
		subject = "Pengingat Sesi Video | Video Session Reminder"
		greeting = fmt.Sprintf("Halo %s,", name)
		line1 = fmt.Sprintf("Ini pengingat bahwa sesi konsultasi Anda bersama %s akan dimulai pada %s.", p.PsychologistName, p.TimeRange)
		line2 = "Silakan buka aplikasi beberapa menit lebih awal untuk bergabung ke ruang video."
		closing = "Tim Tenang"
	}

	textBody := fmt.Sprintf(`%s

%s

%s

%s`, greeting, line1, line2, closing)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">%s</h2>
    <p>%s</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 12px; color: #6b7280;">%s</span><br>
        <span style="font-size: 24px; font-weight: bold; color: #000;">%s</span>
    </p>
    <p>%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px; border-top: 1px solid #e5e7eb; padding-top: 20px;">
        %s
    </p>
</body>
</html>`, greeting, line1, p.PsychologistName, p.TimeRange, line2, closing)

	return Message{
		To:       []string{p.To},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
