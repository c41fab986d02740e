package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	DoctorID     int    `json:"doctor_id" validate:"required,gt=0"`
	Date         string `json:"date" validate:"required,iso_date"`
	Time         string `json:"time" validate:"required"`
	PatientName  string `json:"patient_name" validate:"required,max=200"`
	PatientEmail string `json:"patient_email" validate:"required,email"`
	PatientPhone string `json:"patient_phone" validate:"required,max=20"`
	Symptoms     string `json:"symptoms" validate:"omitempty,max=1000"`
}

// Response DTOs

type BookingResponse struct {
	ID              uuid.UUID       `json:"id"`
	Status          string          `json:"status"`
	DoctorID        int             `json:"doctor_id"`
	DoctorName      string          `json:"doctor_name"`
	Specialty       string          `json:"specialty"`
	Location        string          `json:"location"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	PatientName     string          `json:"patient_name"`
	PatientEmail    string          `json:"patient_email"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}
