package usecase

import (
	"context"
	"testing"

	"easymed-booking/internal/domain/entity"
	"easymed-booking/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites_AddListRemove(t *testing.T) {
	store := repository.NewMemoryClientStore()
	uc := NewFavoritesUsecase(quietLogger(), sampleCatalog(t), store, testMetrics())
	ctx := context.Background()
	client := uuid.New()

	for _, id := range []int{3, 1, 3} {
		status, err := uc.AddFavorite(ctx, client, id)
		require.NoError(t, err)
		assert.True(t, status.IsFavorite)
	}

	list, err := uc.ListFavorites(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, list.DoctorIDs)
	require.Len(t, list.Doctors, 2)
	assert.Equal(t, "Dr. Sarah Johnson", list.Doctors[0].Name)
	assert.Equal(t, "Dr. Emily Rodriguez", list.Doctors[1].Name)

	status, err := uc.RemoveFavorite(ctx, client, 3)
	require.NoError(t, err)
	assert.False(t, status.IsFavorite)

	status, err = uc.GetFavoriteStatus(ctx, client, 3)
	require.NoError(t, err)
	assert.False(t, status.IsFavorite)

	status, err = uc.GetFavoriteStatus(ctx, client, 1)
	require.NoError(t, err)
	assert.True(t, status.IsFavorite)

	raw, found, err := store.Get(ctx, entity.ClientStateKey(client, entity.ClientKeyFavoriteDoctors))
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[1]`, raw)
}

func TestFavorites_UnknownDoctor(t *testing.T) {
	uc := NewFavoritesUsecase(quietLogger(), sampleCatalog(t), repository.NewMemoryClientStore(), testMetrics())
	ctx := context.Background()
	client := uuid.New()

	_, err := uc.AddFavorite(ctx, client, 99)
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	status, err := uc.RemoveFavorite(ctx, client, 99)
	require.NoError(t, err)
	assert.False(t, status.IsFavorite)
}

func TestFavorites_MalformedStateResets(t *testing.T) {
	store := repository.NewMemoryClientStore()
	uc := NewFavoritesUsecase(quietLogger(), sampleCatalog(t), store, testMetrics())
	ctx := context.Background()
	client := uuid.New()

	require.NoError(t, store.Set(ctx, entity.ClientStateKey(client, entity.ClientKeyFavoriteDoctors), "{not json"))

	list, err := uc.ListFavorites(ctx, client)
	require.NoError(t, err)
	assert.Empty(t, list.DoctorIDs)
	assert.Empty(t, list.Doctors)

	_, err = uc.AddFavorite(ctx, client, 2)
	require.NoError(t, err)

	list, err = uc.ListFavorites(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, list.DoctorIDs)
}
