package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

var errUsage = errors.New("invalid arguments")

func parseProductID(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errUsage
	}
	return id, nil
}

// Shop lists the catalog.
func (a *App) Shop(ctx context.Context) error {
	for _, p := range a.catalog.All() {
		stock := ""
		if !p.InStock {
			stock = " (out of stock)"
		}
		printlnFn(fmt.Sprintf("%3d  %-28s %8.2f  %s%s", p.ID, p.Name, p.Price, p.Category, stock))
	}
	return nil
}

// ShowCart prints the current bucket's cart with totals.
func (a *App) ShowCart(ctx context.Context) error {
	bucket := a.coord.Bucket()
	items := a.cart.Items(ctx, bucket)
	if len(items) == 0 {
		printlnFn("Cart is empty")
		return nil
	}

	for _, item := range items {
		printlnFn(fmt.Sprintf("%3d  %-28s %8.2f x %d", item.ProductID, item.Name, item.Price, item.Quantity))
	}
	printlnFn(fmt.Sprintf("Items: %d  Subtotal: %.2f",
		a.cart.ItemCount(ctx, bucket), a.cart.Total(ctx, bucket)))
	return nil
}

// AddToCart handles "add <id> [qty]".
func (a *App) AddToCart(ctx context.Context, args []string) error {
	id, err := parseProductID(args)
	if err != nil {
		printlnFn("Usage: add <productId> [quantity]")
		return nil
	}

	quantity := 1
	if len(args) > 1 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil || quantity < 1 {
			printlnFn("Usage: add <productId> [quantity]")
			return nil
		}
	}

	p, err := a.catalog.ByID(id)
	if err != nil {
		return err
	}

	if err := a.cart.Add(ctx, a.coord.Bucket(), p, quantity); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Added %s x %d", p.Name, quantity))
	return nil
}

// UpdateQuantity handles "qty <id> <n>". A non-positive n removes the item.
func (a *App) UpdateQuantity(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: qty <productId> <quantity>")
		return nil
	}

	id, err := parseProductID(args)
	if err != nil {
		printlnFn("Usage: qty <productId> <quantity>")
		return nil
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		printlnFn("Usage: qty <productId> <quantity>")
		return nil
	}

	return a.cart.UpdateQuantity(ctx, a.coord.Bucket(), id, quantity)
}

// RemoveFromCart handles "remove <id>".
func (a *App) RemoveFromCart(ctx context.Context, args []string) error {
	id, err := parseProductID(args)
	if err != nil {
		printlnFn("Usage: remove <productId>")
		return nil
	}
	return a.cart.Remove(ctx, a.coord.Bucket(), id)
}
