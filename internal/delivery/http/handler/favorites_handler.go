package handler

import (
	"errors"
	"net/http"
	"strconv"

	"easymed-booking/internal/delivery/http/middleware"
	"easymed-booking/internal/usecase"
	"easymed-booking/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FavoritesHandler struct {
	favoritesUsecase usecase.FavoritesUsecase
}

func NewFavoritesHandler(favoritesUsecase usecase.FavoritesUsecase) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesUsecase: favoritesUsecase,
	}
}

func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	favorites, err := h.favoritesUsecase.ListFavorites(r.Context(), clientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get favorites")
		return
	}

	response.Success(w, http.StatusOK, "Favorites retrieved successfully", favorites)
}

func (h *FavoritesHandler) GetFavoriteStatus(w http.ResponseWriter, r *http.Request) {
	clientID, doctorID, ok := h.parseTarget(w, r)
	if !ok {
		return
	}

	status, err := h.favoritesUsecase.GetFavoriteStatus(r.Context(), clientID, doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get favorite")
		return
	}

	response.Success(w, http.StatusOK, "Favorite retrieved successfully", status)
}

func (h *FavoritesHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	clientID, doctorID, ok := h.parseTarget(w, r)
	if !ok {
		return
	}

	status, err := h.favoritesUsecase.AddFavorite(r.Context(), clientID, doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to add favorite")
		return
	}

	response.Success(w, http.StatusOK, "Doctor added to favorites", status)
}

func (h *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	clientID, doctorID, ok := h.parseTarget(w, r)
	if !ok {
		return
	}

	status, err := h.favoritesUsecase.RemoveFavorite(r.Context(), clientID, doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to remove favorite")
		return
	}

	response.Success(w, http.StatusOK, "Doctor removed from favorites", status)
}

func (h *FavoritesHandler) parseTarget(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	clientID, ok := middleware.GetClientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return uuid.Nil, 0, false
	}

	doctorID, err := strconv.Atoi(mux.Vars(r)["doctorId"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return uuid.Nil, 0, false
	}

	return clientID, doctorID, true
}
