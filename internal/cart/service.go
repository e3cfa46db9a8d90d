// Package cart implements the per-bucket cart aggregate. Every operation
// takes the bucket key explicitly; the aggregate holds no identity state of
// its own. Mutations are write-through: the updated list is persisted before
// the call returns.
package cart

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
	return &Service{st: st, log: log.With("component", "cart")}
}

// Items returns the bucket's cart. A bucket with no stored cart is empty.
func (s *Service) Items(ctx context.Context, bucket string) []models.CartItem {
	return storage.Load(ctx, s.st, models.CartKey(bucket), []models.CartItem{})
}

func (s *Service) save(ctx context.Context, bucket string, items []models.CartItem) error {
	return storage.Save(ctx, s.st, models.CartKey(bucket), items)
}

// Add puts quantity units of the product into the bucket's cart,
// incrementing the existing line if the product is already present.
// Callers are expected to pass quantity >= 1.
func (s *Service) Add(ctx context.Context, bucket string, p models.Product, quantity int) error {
	items := s.Items(ctx, bucket)

	found := false
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItemFromProduct(p, quantity))
	}

	if err := s.save(ctx, bucket, items); err != nil {
		return err
	}
	s.log.Debug(ctx, "cart item added", "bucket", bucket, "productId", p.ID, "quantity", quantity)
	return nil
}

// UpdateQuantity sets the line's quantity. A value of zero or less removes
// the line; a quantity below one is never persisted.
func (s *Service) UpdateQuantity(ctx context.Context, bucket string, productID int64, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, bucket, productID)
	}

	items := s.Items(ctx, bucket)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return s.save(ctx, bucket, items)
}

// Remove deletes the matching line if present; removing an absent product is
// a no-op.
func (s *Service) Remove(ctx context.Context, bucket string, productID int64) error {
	items := s.Items(ctx, bucket)

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return s.save(ctx, bucket, kept)
}

// Clear empties the bucket's cart.
func (s *Service) Clear(ctx context.Context, bucket string) error {
	return s.save(ctx, bucket, []models.CartItem{})
}

// Total returns the sum of price*quantity over the bucket's cart. Derived,
// never persisted.
func (s *Service) Total(ctx context.Context, bucket string) float64 {
	var total float64
	for _, item := range s.Items(ctx, bucket) {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over the bucket's cart.
func (s *Service) ItemCount(ctx context.Context, bucket string) int {
	var n int
	for _, item := range s.Items(ctx, bucket) {
		n += item.Quantity
	}
	return n
}
