// Package checkout turns a bucket's cart into an order. Placing an order is
// a terminal side effect for the cart: the order is appended to the orders
// log and the cart is cleared.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/cart"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/kvstore"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/models"
	"github.com/dmitrijs2005/shopkeeper/internal/storage"
)

const (
	flatShipping = 10.0
	taxRate      = 0.1
)

type Service struct {
	st   kvstore.Store
	cart *cart.Service
	log  logging.Logger

	now func() time.Time
}

func NewService(st kvstore.Store, cartSvc *cart.Service, log logging.Logger) *Service {
	return &Service{
		st:   st,
		cart: cartSvc,
		log:  log.With("component", "checkout"),
		now:  time.Now,
	}
}

// Orders returns the full order log, oldest first.
func (s *Service) Orders(ctx context.Context) []models.Order {
	return storage.Load(ctx, s.st, models.KeyOrders, []models.Order{})
}

// PlaceOrder snapshots the bucket's cart into a completed order, appends it
// to the order log, and clears the cart. The total is the cart subtotal plus
// a flat shipping charge and tax.
func (s *Service) PlaceOrder(ctx context.Context, bucket, email string, shipping models.ShippingInfo) (*models.Order, error) {
	items := s.cart.Items(ctx, bucket)
	if len(items) == 0 {
		return nil, common.ErrEmptyCart
	}

	subtotal := s.cart.Total(ctx, bucket)
	now := s.now().UTC()

	order := models.Order{
		ID:       fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Email:    email,
		Items:    items,
		Total:    subtotal + flatShipping + subtotal*taxRate,
		Shipping: shipping,
		Date:     now,
		Status:   models.OrderStatusCompleted,
	}

	orders := append(s.Orders(ctx), order)
	if err := storage.Save(ctx, s.st, models.KeyOrders, orders); err != nil {
		return nil, err
	}
	if err := s.cart.Clear(ctx, bucket); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "order placed", "orderId", order.ID, "bucket", bucket, "total", order.Total)
	return &order, nil
}
