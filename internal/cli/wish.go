package cli

import (
	"context"
	"fmt"
)

// ToggleWishlist handles "wish <id>": removes the product if wished, adds it
// otherwise.
func (a *App) ToggleWishlist(ctx context.Context, args []string) error {
	id, err := parseProductID(args)
	if err != nil {
		printlnFn("Usage: wish <productId>")
		return nil
	}

	p, err := a.catalog.ByID(id)
	if err != nil {
		return err
	}

	bucket := a.coord.Bucket()
	wished := a.wishlist.Contains(ctx, bucket, p.ID)
	if err := a.wishlist.Toggle(ctx, bucket, p); err != nil {
		return err
	}

	if wished {
		printlnFn(fmt.Sprintf("Removed %s from wishlist", p.Name))
	} else {
		printlnFn(fmt.Sprintf("Added %s to wishlist", p.Name))
	}
	return nil
}

// ShowWishlist prints the current bucket's wishlist.
func (a *App) ShowWishlist(ctx context.Context) error {
	entries := a.wishlist.Entries(ctx, a.coord.Bucket())
	if len(entries) == 0 {
		printlnFn("Wishlist is empty")
		return nil
	}
	for _, e := range entries {
		printlnFn(fmt.Sprintf("%3d  %-28s %8.2f", e.ID, e.Name, e.Price))
	}
	return nil
}
