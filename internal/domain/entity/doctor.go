package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

var ErrInvalidDoctor = errors.New("invalid doctor")

const MaxRating = 5.0

// Doctor is an immutable catalog record. Build it with NewDoctor so every invariant holds.
type Doctor struct {
	ID               int             `gorm:"primaryKey" json:"id"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name"`
	Specialty        string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Rating           float64         `gorm:"type:numeric(2,1);not null" json:"rating"`
	ReviewCount      int             `gorm:"not null;default:0" json:"review_count"`
	ExperienceYears  int             `gorm:"not null;default:0" json:"experience_years"`
	Location         string          `gorm:"type:varchar(255)" json:"location"`
	Address          string          `gorm:"type:text" json:"address"`
	ConsultationFee  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	Languages        pq.StringArray  `gorm:"type:text[]" json:"languages"`
	AcceptsInsurance bool            `gorm:"not null;default:false" json:"accepts_insurance"`
	IsVerified       bool            `gorm:"not null;default:false" json:"is_verified"`
	AvailableToday   bool            `gorm:"not null;default:false" json:"available_today"`
	NextAvailable    string          `gorm:"type:varchar(100)" json:"next_available"`
	TimeSlots        pq.StringArray  `gorm:"type:text[]" json:"time_slots"`
	Email            string          `gorm:"type:varchar(255)" json:"email,omitempty"`
	About            string          `gorm:"type:text" json:"about,omitempty"`
	Education        string          `gorm:"type:text" json:"education,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorParams carries the raw fields accepted by NewDoctor.
type DoctorParams struct {
	ID               int
	Name             string
	Specialty        string
	Rating           float64
	ReviewCount      int
	ExperienceYears  int
	Location         string
	Address          string
	ConsultationFee  decimal.Decimal
	Languages        []string
	AcceptsInsurance bool
	IsVerified       bool
	AvailableToday   bool
	NextAvailable    string
	TimeSlots        []string
	Email            string
	About            string
	Education        string
}

// NewDoctor validates params and returns a Doctor that owns copies of the slice fields.
func NewDoctor(p DoctorParams) (Doctor, error) {
	d := Doctor{
		ID:               p.ID,
		Name:             strings.TrimSpace(p.Name),
		Specialty:        strings.TrimSpace(p.Specialty),
		Rating:           p.Rating,
		ReviewCount:      p.ReviewCount,
		ExperienceYears:  p.ExperienceYears,
		Location:         p.Location,
		Address:          p.Address,
		ConsultationFee:  p.ConsultationFee,
		Languages:        append(pq.StringArray{}, p.Languages...),
		AcceptsInsurance: p.AcceptsInsurance,
		IsVerified:       p.IsVerified,
		AvailableToday:   p.AvailableToday,
		NextAvailable:    p.NextAvailable,
		TimeSlots:        append(pq.StringArray{}, p.TimeSlots...),
		Email:            p.Email,
		About:            p.About,
		Education:        p.Education,
	}
	if err := d.Validate(); err != nil {
		return Doctor{}, err
	}
	return d, nil
}

// Validate reports the first violated invariant wrapped in ErrInvalidDoctor.
func (d Doctor) Validate() error {
	switch {
	case d.ID <= 0:
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidDoctor, d.ID)
	case strings.TrimSpace(d.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidDoctor)
	case strings.TrimSpace(d.Specialty) == "":
		return fmt.Errorf("%w: specialty is required", ErrInvalidDoctor)
	case d.Rating < 0 || d.Rating > MaxRating:
		return fmt.Errorf("%w: rating %.1f outside 0-5", ErrInvalidDoctor, d.Rating)
	case d.ReviewCount < 0:
		return fmt.Errorf("%w: review count must not be negative", ErrInvalidDoctor)
	case d.ExperienceYears < 0:
		return fmt.Errorf("%w: experience must not be negative", ErrInvalidDoctor)
	case d.ConsultationFee.IsNegative():
		return fmt.Errorf("%w: consultation fee must not be negative", ErrInvalidDoctor)
	}
	return nil
}

// HasTimeSlot reports whether label is one of the doctor's bookable slot labels.
func (d Doctor) HasTimeSlot(label string) bool {
	for _, slot := range d.TimeSlots {
		if slot == label {
			return true
		}
	}
	return false
}
