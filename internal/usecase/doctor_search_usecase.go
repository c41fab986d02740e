package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"easymed-booking/internal/catalog"
	"easymed-booking/internal/converter"
	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/domain/entity"
	"easymed-booking/internal/domain/search"
	"easymed-booking/internal/observability/metrics"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrInvalidSearchParams = errors.New("invalid search parameters")
)

type DoctorSearchUsecase interface {
	SearchDoctors(ctx context.Context, req *dto.DoctorSearchRequest) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorDetailResponse, error)
	ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type doctorSearchUsecase struct {
	log     *logrus.Logger
	catalog *catalog.Catalog
	metrics *metrics.BookingMetrics
}

func NewDoctorSearchUsecase(log *logrus.Logger, catalog *catalog.Catalog, metrics *metrics.BookingMetrics) DoctorSearchUsecase {
	return &doctorSearchUsecase{
		log:     log,
		catalog: catalog,
		metrics: metrics,
	}
}

func (u *doctorSearchUsecase) SearchDoctors(ctx context.Context, req *dto.DoctorSearchRequest) (*dto.DoctorListResponse, error) {
	filter, err := BuildDoctorFilter(req)
	if err != nil {
		u.log.Warnf("Failed to parse search parameters: %+v", err)
		return nil, err
	}

	key, err := search.ParseSortKey(req.Sort)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSearchParams, err)
	}

	doctors := search.Sort(search.Filter(u.catalog.All(), filter), key)
	u.metrics.ObserveSearch(string(key), len(doctors))

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
		Sort:    string(key),
	}, nil
}

func (u *doctorSearchUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorDetailResponse, error) {
	doctor, ok := u.catalog.FindByID(doctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToDetailResponse(doctor), nil
}

func (u *doctorSearchUsecase) ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	return &dto.SpecialtyListResponse{Specialties: u.catalog.Specialties()}, nil
}

// BuildDoctorFilter converts raw query values into filter criteria. Absent values leave
// the matching criterion unrestricted.
func BuildDoctorFilter(req *dto.DoctorSearchRequest) (entity.DoctorFilter, error) {
	filter := entity.DefaultDoctorFilter()
	filter.Search = req.Query
	if req.Specialty != "" {
		filter.Specialty = req.Specialty
	}

	var err error
	if filter.AvailableToday, err = parseFlag("available_today", req.AvailableToday); err != nil {
		return filter, err
	}
	if filter.InsuranceRequired, err = parseFlag("insurance", req.Insurance); err != nil {
		return filter, err
	}
	if filter.VerifiedOnly, err = parseFlag("verified", req.Verified); err != nil {
		return filter, err
	}

	if req.PriceMin != "" {
		if filter.PriceMin, err = decimal.NewFromString(req.PriceMin); err != nil {
			return filter, fmt.Errorf("%w: price_min: %w", ErrInvalidSearchParams, err)
		}
	}
	if req.PriceMax != "" {
		priceMax, err := decimal.NewFromString(req.PriceMax)
		if err != nil {
			return filter, fmt.Errorf("%w: price_max: %w", ErrInvalidSearchParams, err)
		}
		filter.PriceMax = &priceMax
	}

	if req.ExperienceMin != "" {
		if filter.ExperienceMin, err = strconv.Atoi(req.ExperienceMin); err != nil {
			return filter, fmt.Errorf("%w: exp_min: %w", ErrInvalidSearchParams, err)
		}
	}
	if req.ExperienceMax != "" {
		experienceMax, err := strconv.Atoi(req.ExperienceMax)
		if err != nil {
			return filter, fmt.Errorf("%w: exp_max: %w", ErrInvalidSearchParams, err)
		}
		filter.ExperienceMax = &experienceMax
	}

	if req.MinRating != "" {
		if filter.MinRating, err = strconv.ParseFloat(req.MinRating, 64); err != nil {
			return filter, fmt.Errorf("%w: min_rating: %w", ErrInvalidSearchParams, err)
		}
	}

	return filter, nil
}

func parseFlag(name, raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrInvalidSearchParams, name, err)
	}
	return v, nil
}
