package models

// Product is a read-only catalog record. It is referenced by cart items and
// snapshotted wholesale into the wishlist.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	InStock     bool    `json:"inStock"`
}

// WishlistEntry is a stored product snapshot. On a duplicate product id the
// entry already in the user's wishlist wins over a guest one, so the snapshot
// may lag behind the catalog.
type WishlistEntry = Product
