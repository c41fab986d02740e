package dto

import "github.com/google/uuid"

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"user_type" validate:"required,oneof=patient doctor"`
}

// RegisterRequest is the sign-up form. Nothing is stored beyond the mock session values.
type RegisterRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,max=20"`
	Password        string `json:"password" validate:"required,strong_password"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	UserType        string `json:"user_type" validate:"required,oneof=patient doctor"`
	AgreeToTerms    bool   `json:"agree_to_terms"`
}

// Response DTOs

type ClientTokenResponse struct {
	ClientID  uuid.UUID `json:"client_id"`
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expires_in"`
}

type SessionResponse struct {
	UserType  string `json:"user_type"`
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name,omitempty"`
}
