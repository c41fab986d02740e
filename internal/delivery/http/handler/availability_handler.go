package handler

import (
	"errors"
	"net/http"
	"strconv"

	"easymed-booking/internal/delivery/http/middleware"
	"easymed-booking/internal/usecase"
	"easymed-booking/pkg/response"

	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	doctorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	slots, err := h.availabilityUsecase.GetAvailability(r.Context(), clientID, doctorID, r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", slots)
}

func (h *AvailabilityHandler) ToggleSlot(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	doctorID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		response.BadRequest(w, "Invalid slot index")
		return
	}

	slot, err := h.availabilityUsecase.ToggleSlot(r.Context(), clientID, doctorID, r.URL.Query().Get("date"), index)
	if err != nil {
		h.writeError(w, err, "Failed to toggle slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot updated successfully", slot)
}

func (h *AvailabilityHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrSlotNotFound):
		response.NotFound(w, "Slot not found")
	case errors.Is(err, usecase.ErrDateRequired):
		response.BadRequest(w, "Date is required")
	default:
		response.InternalServerError(w, fallback)
	}
}
