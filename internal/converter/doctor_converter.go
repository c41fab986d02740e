package converter

import (
	"slices"

	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/domain/entity"
)

// DoctorToResponse converts a catalog Doctor to DoctorResponse DTO
func DoctorToResponse(doctor entity.Doctor) dto.DoctorResponse {
	return dto.DoctorResponse{
		ID:               doctor.ID,
		Name:             doctor.Name,
		Specialty:        doctor.Specialty,
		Rating:           doctor.Rating,
		ReviewCount:      doctor.ReviewCount,
		ExperienceYears:  doctor.ExperienceYears,
		Location:         doctor.Location,
		Address:          doctor.Address,
		ConsultationFee:  doctor.ConsultationFee,
		Languages:        nonNil(doctor.Languages),
		AcceptsInsurance: doctor.AcceptsInsurance,
		IsVerified:       doctor.IsVerified,
		AvailableToday:   doctor.AvailableToday,
		NextAvailable:    doctor.NextAvailable,
		TimeSlots:        nonNil(doctor.TimeSlots),
	}
}

// DoctorToDetailResponse adds the profile text shown on the doctor page
func DoctorToDetailResponse(doctor entity.Doctor) *dto.DoctorDetailResponse {
	return &dto.DoctorDetailResponse{
		DoctorResponse: DoctorToResponse(doctor),
		About:          doctor.About,
		Education:      doctor.Education,
	}
}

// DoctorsToResponses converts a slice of Doctor entities, keeping their order
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = DoctorToResponse(doctor)
	}
	return responses
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}
