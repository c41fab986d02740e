package repository

import (
	"easymed-booking/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// SampleDoctors returns the built-in demo catalog. It panics only if the literal data is invalid.
func SampleDoctors() []entity.Doctor {
	slots := entity.DefaultTimeSlotLabels()
	params := []entity.DoctorParams{
		{
			ID:               1,
			Name:             "Dr. Sarah Johnson",
			Specialty:        "Cardiology",
			Rating:           4.9,
			ReviewCount:      127,
			ExperienceYears:  15,
			Location:         "Downtown Medical Center",
			Address:          "123 Main Street, Suite 400",
			ConsultationFee:  decimal.NewFromInt(150),
			Languages:        []string{"English", "Spanish"},
			AcceptsInsurance: true,
			IsVerified:       true,
			AvailableToday:   true,
			NextAvailable:    "Today 2:00 PM",
			TimeSlots:        slots,
			Email:            "sarah.johnson@easymed.example",
			About:            "Board-certified cardiologist specializing in preventive cardiology.",
			Education:        "MD from Harvard Medical School, Residency at Johns Hopkins Hospital",
		},
		{
			ID:               2,
			Name:             "Dr. Michael Chen",
			Specialty:        "Dermatology",
			Rating:           4.8,
			ReviewCount:      89,
			ExperienceYears:  12,
			Location:         "Skin Care Clinic",
			Address:          "45 Oak Avenue",
			ConsultationFee:  decimal.NewFromInt(120),
			Languages:        []string{"English", "Mandarin"},
			AcceptsInsurance: true,
			IsVerified:       true,
			AvailableToday:   true,
			NextAvailable:    "Today 3:30 PM",
			TimeSlots:        slots,
			Email:            "michael.chen@easymed.example",
		},
		{
			ID:               3,
			Name:             "Dr. Emily Rodriguez",
			Specialty:        "Pediatrics",
			Rating:           4.9,
			ReviewCount:      203,
			ExperienceYears:  10,
			Location:         "Children's Hospital",
			Address:          "800 Maple Drive",
			ConsultationFee:  decimal.NewFromInt(100),
			Languages:        []string{"English", "Spanish"},
			AcceptsInsurance: true,
			IsVerified:       true,
			AvailableToday:   false,
			NextAvailable:    "Tomorrow 9:00 AM",
			TimeSlots:        slots,
			Email:            "emily.rodriguez@easymed.example",
		},
		{
			ID:               4,
			Name:             "Dr. James Wilson",
			Specialty:        "Orthopedics",
			Rating:           4.7,
			ReviewCount:      156,
			ExperienceYears:  18,
			Location:         "Sports Medicine Center",
			Address:          "12 Stadium Road",
			ConsultationFee:  decimal.NewFromInt(180),
			Languages:        []string{"English"},
			AcceptsInsurance: false,
			IsVerified:       true,
			AvailableToday:   true,
			NextAvailable:    "Today 4:15 PM",
			TimeSlots:        slots,
		},
		{
			ID:               5,
			Name:             "Dr. Lisa Thompson",
			Specialty:        "Neurology",
			Rating:           4.8,
			ReviewCount:      312,
			ExperienceYears:  14,
			Location:         "Brain & Spine Institute",
			Address:          "300 Cedar Boulevard",
			ConsultationFee:  decimal.NewFromInt(200),
			Languages:        []string{"English", "French"},
			AcceptsInsurance: true,
			IsVerified:       true,
			AvailableToday:   false,
			NextAvailable:    "Tomorrow 11:30 AM",
			TimeSlots:        slots,
			Email:            "lisa.thompson@easymed.example",
		},
		{
			ID:               6,
			Name:             "Dr. Robert Kumar",
			Specialty:        "General Medicine",
			Rating:           4.6,
			ReviewCount:      98,
			ExperienceYears:  8,
			Location:         "Family Health Clinic",
			Address:          "9 Elm Street",
			ConsultationFee:  decimal.NewFromInt(80),
			Languages:        []string{"English", "Hindi"},
			AcceptsInsurance: true,
			IsVerified:       false,
			AvailableToday:   true,
			NextAvailable:    "Today 1:45 PM",
			TimeSlots:        slots,
		},
	}

	doctors := make([]entity.Doctor, len(params))
	for i, p := range params {
		doctor, err := entity.NewDoctor(p)
		if err != nil {
			panic(err)
		}
		doctors[i] = doctor
	}
	return doctors
}
