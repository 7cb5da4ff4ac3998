package model

import "time"

// CheckoutMode is the typed checkout variant. Representing the mode as an
// enum keeps the two call sites (validation, amount computation)
// exhaustive: adding a third mode is a compile-visible change.
type CheckoutMode string

const (
	// ModeSolo charges the buyer for the full cart total.
	ModeSolo CheckoutMode = "solo"
	// ModeSplit divides the total between buyer and co-buyer by percentage.
	ModeSplit CheckoutMode = "split"
)

// Valid reports whether the mode is a known variant.
func (m CheckoutMode) Valid() bool {
	switch m {
	case ModeSolo, ModeSplit:
		return true
	}
	return false
}

// Split percentage bounds. The buyer's share is clamped into this range
// at input time; 50 is only ever the initial default, never a
// normalization target.
const (
	MinSplitPercent     = 10
	MaxSplitPercent     = 90
	DefaultSplitPercent = 50
)

// ClampSplitPercent clamps a buyer-share percentage into [10, 90].
func ClampSplitPercent(pct int) int {
	if pct < MinSplitPercent {
		return MinSplitPercent
	}
	if pct > MaxSplitPercent {
		return MaxSplitPercent
	}
	return pct
}

// PaymentSplit is the derived pair of amounts for a checkout. The two
// amounts always sum exactly to the cart total.
//
// @Description Buyer and co-buyer amounts summing exactly to the total
type PaymentSplit struct {
	// BuyerAmount is the buyer's share in cents.
	BuyerAmount Cents `json:"buyer_amount_cents" example:"7000"`
	// CoBuyerAmount is the co-buyer's share in cents; 0 in solo mode.
	CoBuyerAmount Cents `json:"co_buyer_amount_cents" example:"3000"`
}

// ComputeSplit derives the payment split for a total and mode. In split
// mode the co-buyer amount is computed by subtraction, not by the inverse
// percentage, so the pair is exactly complementary regardless of integer
// rounding of the buyer's share.
func ComputeSplit(total Cents, mode CheckoutMode, buyerPercent int) PaymentSplit {
	switch mode {
	case ModeSplit:
		buyer := total * Cents(buyerPercent) / 100
		return PaymentSplit{BuyerAmount: buyer, CoBuyerAmount: total - buyer}
	default: // ModeSolo
		return PaymentSplit{BuyerAmount: total, CoBuyerAmount: 0}
	}
}

// Order records a settled checkout.
//
// @Description Settled checkout with buyer details and payment split
type Order struct {
	// ID is the server-issued order identifier (ULID).
	ID string `json:"id" bson:"_id"`
	// CartID is the cart this order was settled from.
	CartID string `json:"cart_id" bson:"cart_id"`
	// Lines is the cart content at settlement time.
	Lines []CartLine `json:"lines" bson:"lines"`
	// Total is the grand total in cents.
	Total Cents `json:"total_cents" bson:"total_cents"`
	// Mode is the checkout mode the order settled under.
	Mode CheckoutMode `json:"mode" bson:"mode"`
	// BuyerName is the buyer's full name.
	BuyerName string `json:"buyer_name" bson:"buyer_name"`
	// BuyerEmail is the buyer's email address.
	BuyerEmail string `json:"buyer_email" bson:"buyer_email"`
	// CoBuyerEmail is set iff Mode is split.
	CoBuyerEmail string `json:"co_buyer_email,omitempty" bson:"co_buyer_email,omitempty"`
	// SplitPercent is the buyer's share percentage; 100 in solo mode.
	SplitPercent int `json:"split_percent" bson:"split_percent"`
	// Split is the derived payment split.
	Split PaymentSplit `json:"split" bson:"split"`
	// InviteToken is the signed co-buyer payment invitation, split mode only.
	InviteToken string `json:"invite_token,omitempty" bson:"invite_token,omitempty"`
	// CreatedAt is the settlement time.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
