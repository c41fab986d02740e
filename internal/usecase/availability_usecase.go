package usecase

import (
	"context"

	"easymed-booking/internal/availability"
	"easymed-booking/internal/catalog"
	"easymed-booking/internal/converter"
	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/observability/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSlotNotFound = availability.ErrSlotNotFound
	ErrDateRequired = availability.ErrDateRequired
)

type AvailabilityUsecase interface {
	GetAvailability(ctx context.Context, clientID uuid.UUID, doctorID int, date string) (*dto.AvailabilityResponse, error)
	ToggleSlot(ctx context.Context, clientID uuid.UUID, doctorID int, date string, index int) (*dto.SlotResponse, error)
}

type availabilityUsecase struct {
	log      *logrus.Logger
	catalog  *catalog.Catalog
	registry *availability.Registry
	metrics  *metrics.BookingMetrics
}

func NewAvailabilityUsecase(
	log *logrus.Logger,
	catalog *catalog.Catalog,
	registry *availability.Registry,
	metrics *metrics.BookingMetrics,
) AvailabilityUsecase {
	return &availabilityUsecase{
		log:      log,
		catalog:  catalog,
		registry: registry,
		metrics:  metrics,
	}
}

func (u *availabilityUsecase) GetAvailability(ctx context.Context, clientID uuid.UUID, doctorID int, date string) (*dto.AvailabilityResponse, error) {
	doctor, ok := u.catalog.FindByID(doctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}

	slots, err := u.registry.ForClient(clientID).Slots(doctor, date)
	if err != nil {
		return nil, err
	}

	return converter.SlotsToAvailabilityResponse(doctorID, date, slots), nil
}

func (u *availabilityUsecase) ToggleSlot(ctx context.Context, clientID uuid.UUID, doctorID int, date string, index int) (*dto.SlotResponse, error) {
	doctor, ok := u.catalog.FindByID(doctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}

	slot, err := u.registry.ForClient(clientID).Toggle(doctor, date, index)
	if err != nil {
		return nil, err
	}

	u.metrics.ObserveSlotToggle()
	u.log.Debugf("Client %s toggled slot %d of doctor %d on %s to %t", clientID, index, doctorID, date, slot.Available)

	resp := converter.SlotToResponse(index, slot)
	return &resp, nil
}
