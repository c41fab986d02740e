package entity

// NotificationType represents the kind of appointment email
type NotificationType string

const (
	NotificationConfirmation       NotificationType = "confirmation"
	NotificationReminder           NotificationType = "reminder"
	NotificationDoctorNotification NotificationType = "doctor_notification"
)

// IsValid checks if the type is one of the known kinds
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationConfirmation, NotificationReminder, NotificationDoctorNotification:
		return true
	}
	return false
}

// AppointmentDetails is the appointment payload rendered into notifications
type AppointmentDetails struct {
	PatientName     string
	DoctorName      string
	Date            string
	Time            string
	Location        string
	Reason          string
	ConsultationFee string
}

// Recipient is the addressee of a notification
type Recipient struct {
	Email string
	Name  string
}

// Notification is a single appointment email waiting to be sent
type Notification struct {
	Type        NotificationType
	Appointment AppointmentDetails
	Recipient   Recipient
}
