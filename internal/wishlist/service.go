// Package wishlist implements the per-bucket wishlist aggregate: a set of
// product snapshots deduplicated by product id, plus the one-time guest-to-
// user merge performed at login.
package wishlist

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/kvstore"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/models"
	"github.com/dmitrijs2005/shopkeeper/internal/storage"
)

type Service struct {
	st  kvstore.Store
	log logging.Logger
}

func NewService(st kvstore.Store, log logging.Logger) *Service {
	return &Service{st: st, log: log.With("component", "wishlist")}
}

// Entries returns the bucket's wishlist in insertion order.
func (s *Service) Entries(ctx context.Context, bucket string) []models.WishlistEntry {
	return storage.Load(ctx, s.st, models.WishlistKey(bucket), []models.WishlistEntry{})
}

func (s *Service) save(ctx context.Context, bucket string, entries []models.WishlistEntry) error {
	return storage.Save(ctx, s.st, models.WishlistKey(bucket), entries)
}

// Add appends the product snapshot unless its id is already present.
func (s *Service) Add(ctx context.Context, bucket string, p models.Product) error {
	entries := s.Entries(ctx, bucket)
	for _, e := range entries {
		if e.ID == p.ID {
			return nil
		}
	}

	if err := s.save(ctx, bucket, append(entries, p)); err != nil {
		return err
	}
	s.log.Debug(ctx, "wishlist entry added", "bucket", bucket, "productId", p.ID)
	return nil
}

// Remove deletes the entry with the given product id if present.
func (s *Service) Remove(ctx context.Context, bucket string, productID int64) error {
	entries := s.Entries(ctx, bucket)

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != productID {
			kept = append(kept, e)
		}
	}
	return s.save(ctx, bucket, kept)
}

// Contains reports whether the bucket's wishlist holds the product.
func (s *Service) Contains(ctx context.Context, bucket string, productID int64) bool {
	for _, e := range s.Entries(ctx, bucket) {
		if e.ID == productID {
			return true
		}
	}
	return false
}

// Toggle removes the product if present, adds it otherwise.
func (s *Service) Toggle(ctx context.Context, bucket string, p models.Product) error {
	if s.Contains(ctx, bucket, p.ID) {
		return s.Remove(ctx, bucket, p.ID)
	}
	return s.Add(ctx, bucket, p)
}

// Clear empties the bucket's wishlist.
func (s *Service) Clear(ctx context.Context, bucket string) error {
	return s.save(ctx, bucket, []models.WishlistEntry{})
}

// Count returns the number of entries in the bucket's wishlist.
func (s *Service) Count(ctx context.Context, bucket string) int {
	return len(s.Entries(ctx, bucket))
}

// MergeGuest folds the guest wishlist into the account's bucket. It runs
// once per login, before any read of the new bucket:
//
//   - guest bucket empty: nothing happens, the user bucket stays
//     authoritative;
//   - user bucket never written: the guest list is moved over verbatim;
//   - both non-empty: user entries keep their position and win on duplicate
//     product ids, guest entries absent from the user list are appended.
//
// The guest bucket is cleared only after the merged result is persisted.
func (s *Service) MergeGuest(ctx context.Context, accountID string) error {
	guestKey := models.WishlistKey(models.GuestBucket)
	userBucket := models.BucketKey(accountID)

	guest := storage.Load(ctx, s.st, guestKey, []models.WishlistEntry{})
	if len(guest) == 0 {
		return nil
	}

	userRaw, err := s.st.Get(ctx, models.WishlistKey(userBucket))
	if err != nil {
		return err
	}

	merged := guest
	if userRaw != nil {
		user := s.Entries(ctx, userBucket)
		merged = user
		for _, g := range guest {
			exists := false
			for _, u := range user {
				if u.ID == g.ID {
					exists = true
					break
				}
			}
			if !exists {
				merged = append(merged, g)
			}
		}
	}

	if err := s.save(ctx, userBucket, merged); err != nil {
		return err
	}
	if err := storage.Clear(ctx, s.st, guestKey); err != nil {
		return err
	}

	s.log.Info(ctx, "guest wishlist merged", "accountId", accountID,
		"guestEntries", len(guest), "mergedEntries", len(merged))
	return nil
}
