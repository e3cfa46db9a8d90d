package models

// CartItem is one line of a bucket's cart. Quantity is always >= 1; an item
// reaching zero is removed rather than stored.
type CartItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// CartItemFromProduct builds a cart line for the given product and quantity.
func CartItemFromProduct(p Product, quantity int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
	}
}
