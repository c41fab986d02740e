package handler

import (
	"errors"
	"net/http"
	"strconv"

	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/usecase"
	"easymed-booking/pkg/response"
	"easymed-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorSearchUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorSearchUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// SearchDoctors handles catalog search
// @Summary Search doctors
// @Description Filter the doctor catalog and order the result
// @Tags Doctors
// @Produce json
// @Param q query string false "Text matched against name, specialty and location"
// @Param specialty query string false "Specialty, or all" default(all)
// @Param available_today query bool false "Only doctors available today"
// @Param price_min query number false "Minimum consultation fee"
// @Param price_max query number false "Maximum consultation fee"
// @Param exp_min query int false "Minimum years of experience"
// @Param exp_max query int false "Maximum years of experience"
// @Param min_rating query number false "Minimum rating"
// @Param insurance query bool false "Only doctors accepting insurance"
// @Param verified query bool false "Only verified doctors"
// @Param sort query string false "rating, price-low, price-high, experience, reviews or name" default(rating)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.DoctorSearchRequest{
		Query:          query.Get("q"),
		Specialty:      query.Get("specialty"),
		AvailableToday: query.Get("available_today"),
		PriceMin:       query.Get("price_min"),
		PriceMax:       query.Get("price_max"),
		ExperienceMin:  query.Get("exp_min"),
		ExperienceMax:  query.Get("exp_max"),
		MinRating:      query.Get("min_rating"),
		Insurance:      query.Get("insurance"),
		Verified:       query.Get("verified"),
		Sort:           query.Get("sort"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.doctorUsecase.SearchDoctors(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSearchParams) {
			response.BadRequest(w, "Invalid search parameters")
			return
		}
		response.InternalServerError(w, "Failed to search doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", result.Doctors, &response.Meta{
		Total: result.Total,
		Sort:  result.Sort,
	})
}

// GetDoctor handles a single catalog entry
// @Summary Get doctor
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.doctorUsecase.ListSpecialties(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
