package repository

import "context"

// ClientStore is the load/save store that holds per-client state (mock session, favorites).
// Keys are opaque strings; callers namespace them per client.
type ClientStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}
