// Package kvstore implements the durable per-device key-value store that all
// client state (accounts, session, carts, wishlists, orders) persists into.
package kvstore

import "context"

// Store is a flat key-value store. Values are UTF-8 text; Get returns
// (nil, nil) for an absent key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
