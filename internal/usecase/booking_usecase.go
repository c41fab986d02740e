package usecase

import (
	"context"
	"errors"
	"fmt"

	"easymed-booking/internal/availability"
	"easymed-booking/internal/catalog"
	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/domain/entity"
	"easymed-booking/internal/notify"
	"easymed-booking/internal/observability/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const BookingStatusConfirmed = "confirmed"

var ErrSlotUnavailable = errors.New("time slot is not available")

type BookingUsecase interface {
	CreateBooking(ctx context.Context, clientID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	log        *logrus.Logger
	catalog    *catalog.Catalog
	registry   *availability.Registry
	dispatcher *notify.Dispatcher
	metrics    *metrics.BookingMetrics
}

func NewBookingUsecase(
	log *logrus.Logger,
	catalog *catalog.Catalog,
	registry *availability.Registry,
	dispatcher *notify.Dispatcher,
	metrics *metrics.BookingMetrics,
) BookingUsecase {
	return &bookingUsecase{
		log:        log,
		catalog:    catalog,
		registry:   registry,
		dispatcher: dispatcher,
		metrics:    metrics,
	}
}

// CreateBooking confirms a slot the client currently sees as available. Nothing is stored and
// the slot keeps its state; the confirmation emails are sent without waiting for them.
func (u *bookingUsecase) CreateBooking(ctx context.Context, clientID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	doctor, ok := u.catalog.FindByID(req.DoctorID)
	if !ok {
		u.metrics.ObserveBooking("rejected")
		return nil, ErrDoctorNotFound
	}

	if !doctor.HasTimeSlot(req.Time) {
		u.metrics.ObserveBooking("rejected")
		return nil, fmt.Errorf("%w: %q", ErrSlotNotFound, req.Time)
	}

	available, err := u.registry.ForClient(clientID).IsAvailable(doctor, req.Date, req.Time)
	if err != nil {
		u.metrics.ObserveBooking("rejected")
		return nil, err
	}
	if !available {
		u.metrics.ObserveBooking("rejected")
		return nil, ErrSlotUnavailable
	}

	booking := &dto.BookingResponse{
		ID:              uuid.New(),
		Status:          BookingStatusConfirmed,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		Specialty:       doctor.Specialty,
		Location:        doctor.Location,
		Date:            req.Date,
		Time:            req.Time,
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		ConsultationFee: doctor.ConsultationFee,
	}

	appointment := entity.AppointmentDetails{
		PatientName:     req.PatientName,
		DoctorName:      doctor.Name,
		Date:            req.Date,
		Time:            req.Time,
		Location:        doctor.Location,
		Reason:          req.Symptoms,
		ConsultationFee: doctor.ConsultationFee.StringFixed(2),
	}

	u.dispatcher.Dispatch(ctx, entity.Notification{
		Type:        entity.NotificationConfirmation,
		Appointment: appointment,
		Recipient:   entity.Recipient{Email: req.PatientEmail, Name: req.PatientName},
	})
	if doctor.Email != "" {
		u.dispatcher.Dispatch(ctx, entity.Notification{
			Type:        entity.NotificationDoctorNotification,
			Appointment: appointment,
			Recipient:   entity.Recipient{Email: doctor.Email, Name: doctor.Name},
		})
	} else {
		u.log.Debugf("Doctor %d has no email, skipping doctor notification", doctor.ID)
	}

	u.metrics.ObserveBooking(BookingStatusConfirmed)
	u.log.Infof("Booking %s confirmed for doctor %d on %s at %s", booking.ID, doctor.ID, req.Date, req.Time)

	return booking, nil
}
