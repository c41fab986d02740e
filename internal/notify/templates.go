package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"easymed-booking/internal/domain/entity"
)

const (
	brandName = "EasyMed Appointments"

	subjectConfirmation = "Appointment Confirmation - EasyMed Appointments"
	subjectReminder     = "Appointment Reminder - Tomorrow"
	subjectDoctor       = "New Appointment Booked"
	subjectDefault      = "EasyMed Appointments Notification"
)

var (
	confirmationTemplate = template.Must(template.New("confirmation").Option("missingkey=error").Parse(`<h2>Appointment Confirmed</h2>
<p>Dear {{.PatientName}},</p>
<p>Your appointment has been successfully booked:</p>
<ul>
  <li><strong>Doctor:</strong> {{.DoctorName}}</li>
  <li><strong>Date:</strong> {{.Date}}</li>
  <li><strong>Time:</strong> {{.Time}}</li>
  <li><strong>Location:</strong> {{.Location}}</li>
{{- if .ConsultationFee}}
  <li><strong>Consultation Fee:</strong> {{.ConsultationFee}}</li>
{{- end}}
{{- if .Reason}}
  <li><strong>Reason:</strong> {{.Reason}}</li>
{{- end}}
</ul>
<p>Please arrive 15 minutes early for your appointment.</p>
<p>Best regards,<br>EasyMed Appointments Team</p>
`))

	reminderTemplate = template.Must(template.New("reminder").Option("missingkey=error").Parse(`<h2>Appointment Reminder</h2>
<p>Dear {{.PatientName}},</p>
<p>This is a reminder that you have an appointment tomorrow:</p>
<ul>
  <li><strong>Doctor:</strong> {{.DoctorName}}</li>
  <li><strong>Date:</strong> {{.Date}}</li>
  <li><strong>Time:</strong> {{.Time}}</li>
  <li><strong>Location:</strong> {{.Location}}</li>
</ul>
<p>Please don't forget to bring your ID and insurance card.</p>
<p>Best regards,<br>EasyMed Appointments Team</p>
`))

	doctorTemplate = template.Must(template.New("doctor_notification").Option("missingkey=error").Parse(`<h2>New Appointment Scheduled</h2>
<p>Dear {{.DoctorName}},</p>
<p>A new appointment has been booked with you:</p>
<ul>
  <li><strong>Patient:</strong> {{.PatientName}}</li>
  <li><strong>Date:</strong> {{.Date}}</li>
  <li><strong>Time:</strong> {{.Time}}</li>
  <li><strong>Reason:</strong> {{if .Reason}}{{.Reason}}{{else}}Not specified{{end}}</li>
</ul>
<p>Please review the appointment details in your dashboard.</p>
<p>Best regards,<br>EasyMed Appointments System</p>
`))
)

// Content is a rendered notification body.
type Content struct {
	Subject string
	HTML    string
	Text    string
}

// Render builds the email content for a notification kind.
// Unknown kinds get a generic notice rather than an error.
func Render(kind entity.NotificationType, appointment entity.AppointmentDetails) (Content, error) {
	var (
		subject string
		tmpl    *template.Template
	)
	switch kind {
	case entity.NotificationConfirmation:
		subject, tmpl = subjectConfirmation, confirmationTemplate
	case entity.NotificationReminder:
		subject, tmpl = subjectReminder, reminderTemplate
	case entity.NotificationDoctorNotification:
		subject, tmpl = subjectDoctor, doctorTemplate
	default:
		return Content{
			Subject: subjectDefault,
			HTML:    "<p>You have a new notification from " + brandName + ".</p>",
			Text:    "You have a new notification from " + brandName + ".",
		}, nil
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, appointment); err != nil {
		return Content{}, fmt.Errorf("notify: render %s: %w", kind, err)
	}

	return Content{
		Subject: subject,
		HTML:    buf.String(),
		Text:    plainText(kind, appointment),
	}, nil
}

func plainText(kind entity.NotificationType, a entity.AppointmentDetails) string {
	switch kind {
	case entity.NotificationDoctorNotification:
		reason := a.Reason
		if reason == "" {
			reason = "Not specified"
		}
		return fmt.Sprintf("New appointment: %s on %s at %s. Reason: %s.", a.PatientName, a.Date, a.Time, reason)
	case entity.NotificationReminder:
		return fmt.Sprintf("Reminder: appointment with %s on %s at %s, %s.", a.DoctorName, a.Date, a.Time, a.Location)
	default:
		return fmt.Sprintf("Confirmed: appointment with %s on %s at %s, %s.", a.DoctorName, a.Date, a.Time, a.Location)
	}
}
