package converter

import (
	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/domain/entity"
)

// NotificationRequestToEntity converts the notification endpoint payload
func NotificationRequestToEntity(req *dto.SendNotificationRequest) entity.Notification {
	return entity.Notification{
		Type: entity.NotificationType(req.Type),
		Appointment: entity.AppointmentDetails{
			PatientName:     req.Appointment.PatientName,
			DoctorName:      req.Appointment.DoctorName,
			Date:            req.Appointment.Date,
			Time:            req.Appointment.Time,
			Location:        req.Appointment.Location,
			Reason:          req.Appointment.Reason,
			ConsultationFee: req.Appointment.ConsultationFee,
		},
		Recipient: entity.Recipient{
			Email: req.Recipient.Email,
			Name:  req.Recipient.Name,
		},
	}
}
