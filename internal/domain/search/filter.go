// Package search implements the pure doctor filter and sort engines applied to the catalog.
package search

import (
	"strings"

	"easymed-booking/internal/domain/entity"
)

// Filter returns the doctors satisfying every predicate of f, preserving input order.
// The input is never modified and the result is never nil.
func Filter(doctors []entity.Doctor, f entity.DoctorFilter) []entity.Doctor {
	needle := strings.ToLower(f.Search)
	specialty := strings.TrimSpace(f.Specialty)

	result := make([]entity.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if matches(doctor, f, needle, specialty) {
			result = append(result, doctor)
		}
	}
	return result
}

// Matches reports whether a single doctor satisfies f.
func Matches(doctor entity.Doctor, f entity.DoctorFilter) bool {
	return matches(doctor, f, strings.ToLower(f.Search), strings.TrimSpace(f.Specialty))
}

func matches(d entity.Doctor, f entity.DoctorFilter, needle, specialty string) bool {
	if needle != "" &&
		!strings.Contains(strings.ToLower(d.Name), needle) &&
		!strings.Contains(strings.ToLower(d.Specialty), needle) &&
		!strings.Contains(strings.ToLower(d.Location), needle) {
		return false
	}
	if specialty != "" && !strings.EqualFold(specialty, entity.SpecialtyAll) && !strings.EqualFold(d.Specialty, specialty) {
		return false
	}
	if f.AvailableToday && !d.AvailableToday {
		return false
	}
	if d.ConsultationFee.LessThan(f.PriceMin) {
		return false
	}
	if f.PriceMax != nil && d.ConsultationFee.GreaterThan(*f.PriceMax) {
		return false
	}
	if d.ExperienceYears < f.ExperienceMin {
		return false
	}
	if f.ExperienceMax != nil && d.ExperienceYears > *f.ExperienceMax {
		return false
	}
	if d.Rating < f.MinRating {
		return false
	}
	if f.InsuranceRequired && !d.AcceptsInsurance {
		return false
	}
	if f.VerifiedOnly && !d.IsVerified {
		return false
	}
	return true
}
