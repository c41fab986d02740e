package dto

// Request DTOs

type AppointmentDetailsRequest struct {
	PatientName     string `json:"patient_name" validate:"required"`
	DoctorName      string `json:"doctor_name" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	Location        string `json:"location" validate:"required"`
	Reason          string `json:"reason" validate:"omitempty,max=1000"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty,numeric"`
}

type RecipientRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

type SendNotificationRequest struct {
	Type        string                    `json:"type" validate:"required"`
	Appointment AppointmentDetailsRequest `json:"appointment"`
	Recipient   RecipientRequest          `json:"recipient"`
}
