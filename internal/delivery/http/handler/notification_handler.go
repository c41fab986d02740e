package handler

import (
	"encoding/json"
	"net/http"

	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/usecase"
	"easymed-booking/pkg/response"
	"easymed-booking/pkg/validator"
)

const notificationFailure = "Failed to send notification"

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	validator           *validator.CustomValidator
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, validator *validator.CustomValidator) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		validator:           validator,
	}
}

// SendNotification answers with the send outcome. Malformed, invalid and failed requests all
// get the same 500 failure body.
func (h *NotificationHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req dto.SendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeNotificationFailure(w)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		writeNotificationFailure(w)
		return
	}

	message, err := h.notificationUsecase.SendNotification(r.Context(), &req)
	if err != nil {
		writeNotificationFailure(w)
		return
	}

	response.JSON(w, http.StatusOK, response.Response{
		Success: true,
		Message: message,
	})
}

func writeNotificationFailure(w http.ResponseWriter) {
	response.JSON(w, http.StatusInternalServerError, response.Response{
		Success: false,
		Error:   notificationFailure,
	})
}
