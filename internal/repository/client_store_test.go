package repository

import (
	"context"
	"testing"
	"time"

	domainRepo "easymed-booking/internal/domain/repository"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientStores(t *testing.T) map[string]domainRepo.ClientStore {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return map[string]domainRepo.ClientStore{
		"memory": NewMemoryClientStore(),
		"redis":  NewRedisClientStore(client, 0),
	}
}

func TestClientStore_SetGetDelete(t *testing.T) {
	for name, store := range clientStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, found, err := store.Get(ctx, "client:a:userName")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.Set(ctx, "client:a:userName", "John Smith"))
			value, found, err := store.Get(ctx, "client:a:userName")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "John Smith", value)

			require.NoError(t, store.Delete(ctx, "client:a:userName", "client:a:missing"))
			_, found, err = store.Get(ctx, "client:a:userName")
			require.NoError(t, err)
			assert.False(t, found)

			assert.NoError(t, store.Delete(ctx))
		})
	}
}

func TestClientStore_DeletePrefix(t *testing.T) {
	for name, store := range clientStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "client:a:userType", "patient"))
			require.NoError(t, store.Set(ctx, "client:a:favoriteDoctors", "[1,2]"))
			require.NoError(t, store.Set(ctx, "client:b:userType", "doctor"))

			require.NoError(t, store.DeletePrefix(ctx, "client:a:"))

			_, found, _ := store.Get(ctx, "client:a:userType")
			assert.False(t, found)
			_, found, _ = store.Get(ctx, "client:a:favoriteDoctors")
			assert.False(t, found)
			value, found, _ := store.Get(ctx, "client:b:userType")
			assert.True(t, found)
			assert.Equal(t, "doctor", value)
		})
	}
}

func TestRedisClientStore_AppliesTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisClientStore(client, time.Hour)
	require.NoError(t, store.Set(context.Background(), "client:a:userEmail", "john@example.com"))

	assert.Equal(t, time.Hour, mr.TTL("client:a:userEmail"))

	mr.FastForward(2 * time.Hour)
	_, found, err := store.Get(context.Background(), "client:a:userEmail")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisClientStore_UnavailableServer(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	store := NewRedisClientStore(client, 0)

	mr.Close()

	_, _, err = store.Get(context.Background(), "client:a:userType")
	assert.Error(t, err)
	assert.Error(t, store.Set(context.Background(), "client:a:userType", "patient"))
}
