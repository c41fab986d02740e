package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/delivery/http/middleware"
	"easymed-booking/internal/usecase"
	"easymed-booking/pkg/response"
	"easymed-booking/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) IssueClientToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.authUsecase.IssueClientToken(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to issue client token")
		return
	}

	response.Success(w, http.StatusCreated, "Client token issued", token)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.authUsecase.Register(r.Context(), clientID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrTermsNotAccepted) {
			response.BadRequest(w, "Please agree to the terms and conditions.")
			return
		}
		response.InternalServerError(w, "Failed to register")
		return
	}

	response.Success(w, http.StatusCreated, "Your account has been created", session)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.authUsecase.Login(r.Context(), clientID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to login")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", session)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), clientID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

func (h *AuthHandler) GetCurrentSession(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	session, err := h.authUsecase.GetSession(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotLoggedIn) {
			response.NotFound(w, "Not logged in")
			return
		}
		response.InternalServerError(w, "Failed to get session")
		return
	}

	response.Success(w, http.StatusOK, "Session retrieved successfully", session)
}
