package dto

import "github.com/shopspring/decimal"

// Request DTOs

// DoctorSearchRequest mirrors the query string of GET /doctors. Values stay raw strings so the
// validator can report every malformed parameter at once.
type DoctorSearchRequest struct {
	Query          string `json:"q" validate:"omitempty,max=100"`
	Specialty      string `json:"specialty" validate:"omitempty,max=100"`
	AvailableToday string `json:"available_today" validate:"omitempty,boolean"`
	PriceMin       string `json:"price_min" validate:"omitempty,numeric"`
	PriceMax       string `json:"price_max" validate:"omitempty,numeric"`
	ExperienceMin  string `json:"exp_min" validate:"omitempty,number"`
	ExperienceMax  string `json:"exp_max" validate:"omitempty,number"`
	MinRating      string `json:"min_rating" validate:"omitempty,numeric"`
	Insurance      string `json:"insurance" validate:"omitempty,boolean"`
	Verified       string `json:"verified" validate:"omitempty,boolean"`
	Sort           string `json:"sort" validate:"omitempty,oneof=rating price-low price-high experience reviews name"`
}

// Response DTOs

type DoctorResponse struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Specialty        string          `json:"specialty"`
	Rating           float64         `json:"rating"`
	ReviewCount      int             `json:"review_count"`
	ExperienceYears  int             `json:"experience_years"`
	Location         string          `json:"location"`
	Address          string          `json:"address"`
	ConsultationFee  decimal.Decimal `json:"consultation_fee"`
	Languages        []string        `json:"languages"`
	AcceptsInsurance bool            `json:"accepts_insurance"`
	IsVerified       bool            `json:"is_verified"`
	AvailableToday   bool            `json:"available_today"`
	NextAvailable    string          `json:"next_available"`
	TimeSlots        []string        `json:"time_slots"`
}

type DoctorDetailResponse struct {
	DoctorResponse
	About     string `json:"about,omitempty"`
	Education string `json:"education,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
	Sort    string           `json:"sort"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
}
