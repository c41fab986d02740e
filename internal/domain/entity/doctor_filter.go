package entity

import "github.com/shopspring/decimal"

// SpecialtyAll disables the specialty predicate.
const SpecialtyAll = "all"

// DoctorFilter is a domain-level criteria value for searching the catalog.
// The zero value of every field except Specialty means "no restriction";
// use DefaultDoctorFilter to get a fully unrestricted value.
type DoctorFilter struct {
	Search            string
	Specialty         string
	AvailableToday    bool
	PriceMin          decimal.Decimal
	PriceMax          *decimal.Decimal // nil = unbounded
	ExperienceMin     int
	ExperienceMax     *int // nil = unbounded
	MinRating         float64
	InsuranceRequired bool
	VerifiedOnly      bool
}

func DefaultDoctorFilter() DoctorFilter {
	return DoctorFilter{
		Specialty: SpecialtyAll,
		PriceMin:  decimal.Zero,
	}
}
