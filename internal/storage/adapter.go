// Package storage is the typed persistence adapter between the domain
// aggregates and the raw key-value store. Values are stored as JSON text.
//
// Load never fails: an absent key, a malformed stored value, or a store
// error all yield the caller's fallback, so one corrupted bucket can not
// block further use of the client.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/kvstore"
)

// Load reads and decodes the value stored under key. The fallback is
// returned when the key is absent or the stored text does not decode as T.
func Load[T any](ctx context.Context, st kvstore.Store, key string, fallback T) T {
	data, err := st.Get(ctx, key)
	if err != nil || data == nil {
		return fallback
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback
	}
	return v
}

// Save encodes v as JSON and overwrites the value under key.
func Save[T any](ctx context.Context, st kvstore.Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := st.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Clear removes the value under key. Clearing an absent key is a no-op.
func Clear(ctx context.Context, st kvstore.Store, key string) error {
	if err := st.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", key, err)
	}
	return nil
}
