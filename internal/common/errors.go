// Package common defines shared constants and sentinel errors used across
// the shopkeeper client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Identity errors surfaced to the UI verbatim.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")

	// Session-dependent operations called while logged out.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Catalog lookups.
	ErrProductNotFound = errors.New("product not found")

	// Checkout over an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)
