package usecase

import (
	"context"
	"errors"

	"easymed-booking/internal/converter"
	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/domain/entity"
	"easymed-booking/internal/notify"

	"github.com/sirupsen/logrus"
)

var ErrNotificationFailed = errors.New("failed to send notification")

type NotificationUsecase interface {
	SendNotification(ctx context.Context, req *dto.SendNotificationRequest) (string, error)
}

type notificationUsecase struct {
	log        *logrus.Logger
	dispatcher *notify.Dispatcher
}

func NewNotificationUsecase(log *logrus.Logger, dispatcher *notify.Dispatcher) NotificationUsecase {
	return &notificationUsecase{
		log:        log,
		dispatcher: dispatcher,
	}
}

// SendNotification waits for the send and returns its success message.
func (u *notificationUsecase) SendNotification(ctx context.Context, req *dto.SendNotificationRequest) (string, error) {
	if !entity.NotificationType(req.Type).IsValid() {
		u.log.Debugf("Unknown notification type %q, sending the generic notice", req.Type)
	}

	result := u.dispatcher.Dispatch(ctx, converter.NotificationRequestToEntity(req)).Wait(ctx)
	if !result.Success {
		u.log.Warnf("Failed to send %s notification: %+v", req.Type, result.Err)
		return "", ErrNotificationFailed
	}
	return result.Message, nil
}
