package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() DoctorParams {
	return DoctorParams{
		ID:              1,
		Name:            "  Dr. Sarah Johnson ",
		Specialty:       "Cardiology",
		Rating:          4.9,
		ReviewCount:     127,
		ExperienceYears: 15,
		ConsultationFee: decimal.NewFromInt(150),
		Languages:       []string{"English"},
		TimeSlots:       []string{"9:00 AM", "9:30 AM"},
	}
}

func TestNewDoctor_Valid(t *testing.T) {
	params := validParams()
	doctor, err := NewDoctor(params)
	require.NoError(t, err)

	assert.Equal(t, "Dr. Sarah Johnson", doctor.Name)
	assert.True(t, doctor.HasTimeSlot("9:30 AM"))
	assert.False(t, doctor.HasTimeSlot("5:00 PM"))

	params.Languages[0] = "Spanish"
	assert.Equal(t, "English", doctor.Languages[0], "doctor must not alias caller slices")
}

func TestNewDoctor_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *DoctorParams)
	}{
		{"zero id", func(p *DoctorParams) { p.ID = 0 }},
		{"blank name", func(p *DoctorParams) { p.Name = "   " }},
		{"blank specialty", func(p *DoctorParams) { p.Specialty = "" }},
		{"rating above five", func(p *DoctorParams) { p.Rating = 5.1 }},
		{"negative rating", func(p *DoctorParams) { p.Rating = -0.1 }},
		{"negative reviews", func(p *DoctorParams) { p.ReviewCount = -1 }},
		{"negative experience", func(p *DoctorParams) { p.ExperienceYears = -2 }},
		{"negative fee", func(p *DoctorParams) { p.ConsultationFee = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)
			_, err := NewDoctor(params)
			assert.ErrorIs(t, err, ErrInvalidDoctor)
		})
	}
}

func TestDefaultSlotPattern_ReturnsFreshCopy(t *testing.T) {
	first := DefaultSlotPattern()
	first[0].Available = !first[0].Available

	second := DefaultSlotPattern()
	assert.NotEqual(t, first[0].Available, second[0].Available)
	assert.Len(t, DefaultTimeSlotLabels(), 12)
	assert.Equal(t, "9:00 AM", DefaultTimeSlotLabels()[0])
}

func TestSlotPatternFor(t *testing.T) {
	slots := SlotPatternFor([]string{"8:00 AM", "9:30 AM", "9:00 AM"})
	assert.Equal(t, []Slot{
		{Time: "8:00 AM", Available: true},
		{Time: "9:30 AM", Available: false},
		{Time: "9:00 AM", Available: true},
	}, slots)

	assert.Equal(t, DefaultSlotPattern(), SlotPatternFor(nil))
}

func TestNotificationType_IsValid(t *testing.T) {
	assert.True(t, NotificationConfirmation.IsValid())
	assert.True(t, NotificationReminder.IsValid())
	assert.True(t, NotificationDoctorNotification.IsValid())
	assert.False(t, NotificationType("sms").IsValid())
}
