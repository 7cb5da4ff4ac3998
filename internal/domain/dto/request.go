// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strings"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingBuyerInfo is returned when buyer name or email is empty.
	ErrMissingBuyerInfo = &ValidationError{
		Field:   "buyer",
		Message: "name and email are required",
	}
	// ErrMissingCoBuyerInfo is returned when split mode has no co-buyer email.
	ErrMissingCoBuyerInfo = &ValidationError{
		Field:   "co_buyer_email",
		Message: "required for split checkout",
	}
	// ErrInvalidMode is returned for an unknown checkout mode.
	ErrInvalidMode = &ValidationError{
		Field:   "mode",
		Message: "must be \"solo\" or \"split\"",
	}
	// ErrInvalidTheme is returned for a theme other than dark or light.
	ErrInvalidTheme = &ValidationError{
		Field:   "theme",
		Message: "must be \"dark\" or \"light\"",
	}
)

// OpenGateRequest asks the risk gate to analyze an item before it can be
// added to a cart.
//
// @Description Request to open a risk-gate analysis for an item
// @Example {"cart_id": "01JFXS6VNDA2P8EXAMPLE0CART", "item_id": "3"}
type OpenGateRequest struct {
	// CartID is the cart the item would be added to.
	CartID string `json:"cart_id" binding:"required" example:"01JFXS6VNDA2P8EXAMPLE0CART"`
	// ItemID is the candidate item.
	ItemID string `json:"item_id" binding:"required" example:"3"`
} // @name OpenGateRequest

// ConfirmGateRequest confirms a resolved gate, optionally choosing one of
// the suggested alternatives instead of the analyzed item.
//
// @Description Confirmation of a resolved risk-gate analysis
type ConfirmGateRequest struct {
	// ItemID optionally selects an alternative; empty confirms the
	// originally analyzed item.
	ItemID string `json:"item_id,omitempty" example:"6"`
} // @name ConfirmGateRequest

// SetQuantityRequest sets a cart line to an exact quantity. A quantity of
// zero or below removes the line.
//
// @Description Exact quantity for a cart line; <= 0 removes the line
type SetQuantityRequest struct {
	// Quantity is the exact new quantity.
	Quantity int `json:"quantity" example:"3"`
} // @name SetQuantityRequest

// CheckoutRequest is the JSON body for the checkout endpoint.
//
// @Description Checkout submission with buyer details and optional split
// @Example {"cart_id": "01JFXS6VNDA2P8EXAMPLE0CART", "buyer_name": "Ada", "buyer_email": "ada@example.com", "mode": "split", "co_buyer_email": "friend@example.com", "split_percent": 70}
type CheckoutRequest struct {
	// CartID is the cart to settle.
	CartID string `json:"cart_id" binding:"required"`
	// BuyerName is the buyer's full name.
	BuyerName string `json:"buyer_name" example:"Ada Lovelace"`
	// BuyerEmail is the buyer's email address.
	BuyerEmail string `json:"buyer_email" example:"ada@example.com"`
	// Mode is "solo" or "split"; empty defaults to solo.
	Mode string `json:"mode" example:"split"`
	// CoBuyerEmail is required iff mode is split.
	CoBuyerEmail string `json:"co_buyer_email,omitempty" example:"friend@example.com"`
	// SplitPercent is the buyer's share; clamped to [10, 90], default 50.
	SplitPercent int `json:"split_percent,omitempty" example:"70" minimum:"10" maximum:"90"`
} // @name CheckoutRequest

// Validate checks buyer fields in order, short-circuiting at the first
// failure. Percentages are clamped, never rejected.
func (r *CheckoutRequest) Validate() error {
	if strings.TrimSpace(r.BuyerName) == "" || strings.TrimSpace(r.BuyerEmail) == "" {
		return ErrMissingBuyerInfo
	}
	if !r.CheckoutMode().Valid() {
		return ErrInvalidMode
	}
	if r.CheckoutMode() == model.ModeSplit && strings.TrimSpace(r.CoBuyerEmail) == "" {
		return ErrMissingCoBuyerInfo
	}
	return nil
}

// CheckoutMode returns the typed mode, defaulting empty input to solo.
func (r *CheckoutRequest) CheckoutMode() model.CheckoutMode {
	if r.Mode == "" {
		return model.ModeSolo
	}
	return model.CheckoutMode(r.Mode)
}

// BuyerPercent returns the clamped buyer share, applying the default when
// the field was omitted.
func (r *CheckoutRequest) BuyerPercent() int {
	if r.SplitPercent == 0 {
		return model.DefaultSplitPercent
	}
	return model.ClampSplitPercent(r.SplitPercent)
}

// SetThemeRequest stores the theme preference slot.
//
// @Description Theme preference, "dark" or "light"
type SetThemeRequest struct {
	// Theme is "dark" or "light".
	Theme string `json:"theme" binding:"required" example:"dark"`
} // @name SetThemeRequest

// Validate rejects anything but the two known themes.
func (r *SetThemeRequest) Validate() error {
	if r.Theme != "dark" && r.Theme != "light" {
		return ErrInvalidTheme
	}
	return nil
}
