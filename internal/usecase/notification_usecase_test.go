package usecase

import (
	"context"
	"errors"
	"testing"

	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notificationRequest(kind string) *dto.SendNotificationRequest {
	return &dto.SendNotificationRequest{
		Type: kind,
		Appointment: dto.AppointmentDetailsRequest{
			PatientName: "John Smith",
			DoctorName:  "Dr. Sarah Johnson",
			Date:        "2026-10-20",
			Time:        "9:00 AM",
			Location:    "Downtown Medical Center",
		},
		Recipient: dto.RecipientRequest{Email: "john@example.com", Name: "John Smith"},
	}
}

func TestSendNotification_Success(t *testing.T) {
	sender := &recordingSender{}
	dispatcher := notify.NewDispatcher(sender, quietLogger(), nil)
	t.Cleanup(dispatcher.Close)
	uc := NewNotificationUsecase(quietLogger(), dispatcher)

	message, err := uc.SendNotification(context.Background(), notificationRequest("reminder"))
	require.NoError(t, err)
	assert.Equal(t, "reminder notification sent successfully", message)

	sent := sender.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Appointment Reminder - Tomorrow", sent[0].Subject)
	assert.Equal(t, "John Smith", sent[0].ToName)
}

func TestSendNotification_Failure(t *testing.T) {
	dispatcher := notify.NewDispatcher(&recordingSender{err: errors.New("smtp down")}, quietLogger(), nil)
	t.Cleanup(dispatcher.Close)
	uc := NewNotificationUsecase(quietLogger(), dispatcher)

	_, err := uc.SendNotification(context.Background(), notificationRequest("confirmation"))
	assert.ErrorIs(t, err, ErrNotificationFailed)
}
