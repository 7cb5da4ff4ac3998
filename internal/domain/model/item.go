// Package model defines the core domain entities for the storefront service.
package model

// RiskFactors holds the four static per-item return-risk attributes.
// Each value is an independent percentage score in [0, 100].
//
// @Description Static per-item return-risk attributes
type RiskFactors struct {
	// SizingIssues is the share of returns attributed to fit and sizing.
	SizingIssues int `json:"sizing_issues" bson:"sizing_issues" example:"35"`
	// QualityIssues is the share of returns attributed to material quality.
	QualityIssues int `json:"quality_issues" bson:"quality_issues" example:"5"`
	// ExpectationMismatch is the share attributed to description/reality gaps.
	ExpectationMismatch int `json:"expectation_mismatch" bson:"expectation_mismatch" example:"15"`
	// ShippingDamage is the share attributed to shipping and packaging.
	ShippingDamage int `json:"shipping_damage" bson:"shipping_damage" example:"1"`
}

// Item is a catalog entry available for purchase.
//
// Items are immutable reference data for the session: created from the
// seed set (or an external loader), never mutated, never destroyed.
//
// @Description Purchasable catalog item with static risk attributes
type Item struct {
	// ID uniquely identifies the item.
	ID string `json:"id" bson:"id" example:"1"`
	// Name is the display name.
	Name string `json:"name" bson:"name" example:"Wireless Bluetooth Headphones Pro"`
	// Price is the unit price in cents.
	Price Cents `json:"price_cents" bson:"price_cents" example:"19999"`
	// Description is free-text marketing copy.
	Description string `json:"description" bson:"description"`
	// Category groups items for search and alternative suggestions.
	Category string `json:"category" bson:"category" example:"Electronics"`
	// ImageURL points at the product photo.
	ImageURL string `json:"image_url,omitempty" bson:"image_url,omitempty"`
	// Rating is the aggregate review rating in [0, 5].
	Rating float64 `json:"rating" bson:"rating" example:"4.5"`
	// Reviews is the review count backing the rating.
	Reviews int `json:"reviews" bson:"reviews" example:"1247"`
	// ReturnRate is the historical return rate as a fraction in [0, 1].
	ReturnRate float64 `json:"return_rate" bson:"return_rate" example:"0.08"`
	// Tags are free-form labels.
	Tags []string `json:"tags,omitempty" bson:"tags,omitempty"`
	// RiskFactors are the static per-item risk attributes.
	RiskFactors RiskFactors `json:"risk_factors" bson:"risk_factors"`
}
