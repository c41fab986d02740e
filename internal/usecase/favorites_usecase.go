package usecase

import (
	"context"

	"easymed-booking/internal/catalog"
	"easymed-booking/internal/converter"
	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/domain/entity"
	"easymed-booking/internal/domain/repository"
	"easymed-booking/internal/favorites"
	"easymed-booking/internal/observability/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type FavoritesUsecase interface {
	ListFavorites(ctx context.Context, clientID uuid.UUID) (*dto.FavoritesResponse, error)
	AddFavorite(ctx context.Context, clientID uuid.UUID, doctorID int) (*dto.FavoriteStatusResponse, error)
	RemoveFavorite(ctx context.Context, clientID uuid.UUID, doctorID int) (*dto.FavoriteStatusResponse, error)
	GetFavoriteStatus(ctx context.Context, clientID uuid.UUID, doctorID int) (*dto.FavoriteStatusResponse, error)
}

type favoritesUsecase struct {
	log     *logrus.Logger
	catalog *catalog.Catalog
	store   repository.ClientStore
	metrics *metrics.BookingMetrics
}

func NewFavoritesUsecase(
	log *logrus.Logger,
	catalog *catalog.Catalog,
	store repository.ClientStore,
	metrics *metrics.BookingMetrics,
) FavoritesUsecase {
	return &favoritesUsecase{
		log:     log,
		catalog: catalog,
		store:   store,
		metrics: metrics,
	}
}

// ListFavorites returns the stored IDs and the catalog entries they still resolve to.
func (u *favoritesUsecase) ListFavorites(ctx context.Context, clientID uuid.UUID) (*dto.FavoritesResponse, error) {
	favs, err := favorites.Load(ctx, u.store, clientID, u.log)
	if err != nil {
		u.log.Warnf("Failed to load favorites: %+v", err)
		return nil, err
	}

	ids := favs.List()
	doctors := make([]entity.Doctor, 0, len(ids))
	for _, id := range ids {
		if doctor, ok := u.catalog.FindByID(id); ok {
			doctors = append(doctors, doctor)
		}
	}

	return &dto.FavoritesResponse{
		DoctorIDs: ids,
		Doctors:   converter.DoctorsToResponses(doctors),
	}, nil
}

func (u *favoritesUsecase) AddFavorite(ctx context.Context, clientID uuid.UUID, doctorID int) (*dto.FavoriteStatusResponse, error) {
	if _, ok := u.catalog.FindByID(doctorID); !ok {
		return nil, ErrDoctorNotFound
	}

	favs, err := favorites.Load(ctx, u.store, clientID, u.log)
	if err != nil {
		u.log.Warnf("Failed to load favorites: %+v", err)
		return nil, err
	}
	if err := favs.Add(ctx, doctorID); err != nil {
		u.log.Warnf("Failed to add favorite: %+v", err)
		return nil, err
	}

	u.metrics.ObserveFavoriteChange("add")
	return &dto.FavoriteStatusResponse{DoctorID: doctorID, IsFavorite: true}, nil
}

// RemoveFavorite succeeds for IDs that are not in the set, including unknown doctors.
func (u *favoritesUsecase) RemoveFavorite(ctx context.Context, clientID uuid.UUID, doctorID int) (*dto.FavoriteStatusResponse, error) {
	favs, err := favorites.Load(ctx, u.store, clientID, u.log)
	if err != nil {
		u.log.Warnf("Failed to load favorites: %+v", err)
		return nil, err
	}
	if err := favs.Remove(ctx, doctorID); err != nil {
		u.log.Warnf("Failed to remove favorite: %+v", err)
		return nil, err
	}

	u.metrics.ObserveFavoriteChange("remove")
	return &dto.FavoriteStatusResponse{DoctorID: doctorID, IsFavorite: false}, nil
}

func (u *favoritesUsecase) GetFavoriteStatus(ctx context.Context, clientID uuid.UUID, doctorID int) (*dto.FavoriteStatusResponse, error) {
	favs, err := favorites.Load(ctx, u.store, clientID, u.log)
	if err != nil {
		u.log.Warnf("Failed to load favorites: %+v", err)
		return nil, err
	}
	return &dto.FavoriteStatusResponse{DoctorID: doctorID, IsFavorite: favs.IsFavorite(doctorID)}, nil
}
