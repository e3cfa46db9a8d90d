package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/shopkeeper/internal/models"
)

var errAdminOnly = errors.New("admin access required")

// Checkout prompts for shipping details and places an order from the
// current bucket's cart.
func (a *App) Checkout(ctx context.Context) error {
	bucket := a.coord.Bucket()
	if len(a.cart.Items(ctx, bucket)) == 0 {
		printlnFn("Cart is empty")
		return nil
	}

	email := ""
	if sess := a.coord.Session(ctx); sess != nil {
		email = sess.Email
	} else {
		var err error
		email, err = getSimpleText(a.reader, "Enter email", os.Stdout)
		if err != nil {
			return err
		}
	}

	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Enter address", os.Stdout)
	if err != nil {
		return err
	}
	city, err := getSimpleText(a.reader, "Enter city", os.Stdout)
	if err != nil {
		return err
	}
	zip, err := getSimpleText(a.reader, "Enter zip code", os.Stdout)
	if err != nil {
		return err
	}

	order, err := a.checkout.PlaceOrder(ctx, bucket, email, models.ShippingInfo{
		Name:    name,
		Address: address,
		City:    city,
		ZipCode: zip,
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Order %s placed, total %.2f", order.ID, order.Total))
	return nil
}

// Orders prints the order log. Admin only.
func (a *App) Orders(ctx context.Context) error {
	if !a.coord.IsAdmin(ctx) {
		return errAdminOnly
	}

	orders := a.checkout.Orders(ctx)
	if len(orders) == 0 {
		printlnFn("No orders yet")
		return nil
	}
	for _, o := range orders {
		printlnFn(fmt.Sprintf("%s  %-28s %8.2f  %s  %s",
			o.ID, o.Email, o.Total, o.Date.Format("2006-01-02"), o.Status))
	}
	return nil
}
