package models

import "time"

// OrderStatusCompleted is the only status the client writes today; the admin
// dashboard reads it back as-is.
const OrderStatusCompleted = "completed"

// ShippingInfo is the delivery block captured at checkout.
type ShippingInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// Order is a completed checkout: a snapshot of the cart at submission time
// plus totals and shipping details. Orders are append-only.
type Order struct {
	ID       string       `json:"id"`
	Email    string       `json:"email"`
	Items    []CartItem   `json:"items"`
	Total    float64      `json:"total"`
	Shipping ShippingInfo `json:"shipping"`
	Date     time.Time    `json:"date"`
	Status   string       `json:"status"`
}
