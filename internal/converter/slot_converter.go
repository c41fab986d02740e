package converter

import (
	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/domain/entity"
)

// SlotsToAvailabilityResponse numbers slots by their position in the day
func SlotsToAvailabilityResponse(doctorID int, date string, slots []entity.Slot) *dto.AvailabilityResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = SlotToResponse(i, slot)
	}
	return &dto.AvailabilityResponse{
		DoctorID: doctorID,
		Date:     date,
		Slots:    responses,
	}
}

func SlotToResponse(index int, slot entity.Slot) dto.SlotResponse {
	return dto.SlotResponse{
		Index:     index,
		Time:      slot.Time,
		Available: slot.Available,
	}
}
