package service

import "errors"

// Sentinel errors shared by the storefront services. Handlers map these to
// HTTP statuses and translated messages.
var (
	// ErrCartNotFound is returned for an unknown cart ID.
	ErrCartNotFound = errors.New("cart not found")
	// ErrItemNotFound is returned for an unknown catalog item ID.
	ErrItemNotFound = errors.New("item not found")
	// ErrGateNotFound is returned for an unknown, cancelled, or expired risk gate.
	ErrGateNotFound = errors.New("risk gate not found")
	// ErrCartEmpty is returned when checkout is attempted on an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrCheckoutInFlight is returned when a settlement is already running
	// for the cart.
	ErrCheckoutInFlight = errors.New("checkout already in progress")
	// ErrSettlementFailed wraps a failed settlement attempt. The failure is
	// retryable; the cart is left untouched.
	ErrSettlementFailed = errors.New("settlement failed")
)
