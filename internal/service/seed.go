package service

import (
	"context"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// SeedLoader returns the built-in demo catalog. Prices are in cents.
func SeedLoader(_ context.Context) ([]model.Item, error) {
	return []model.Item{
		{
			ID:          "1",
			Name:        "Wireless Bluetooth Headphones Pro",
			Price:       19999,
			Description: "Premium noise-canceling wireless headphones with 30-hour battery life and crystal-clear audio quality.",
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
			Rating:      4.5,
			Reviews:     1247,
			ReturnRate:  0.08,
			Tags:        []string{"wireless", "noise-canceling", "premium"},
			RiskFactors: model.RiskFactors{
				SizingIssues:        5,
				QualityIssues:       3,
				ExpectationMismatch: 8,
				ShippingDamage:      2,
			},
		},
		{
			ID:          "2",
			Name:        "Smart Fitness Watch",
			Price:       29999,
			Description: "Advanced fitness tracker with heart rate monitoring, GPS, and 7-day battery life. Water resistant up to 50m.",
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=300&fit=crop",
			Rating:      4.2,
			Reviews:     892,
			ReturnRate:  0.15,
			Tags:        []string{"fitness", "smartwatch", "waterproof"},
			RiskFactors: model.RiskFactors{
				SizingIssues:        20,
				QualityIssues:       8,
				ExpectationMismatch: 12,
				ShippingDamage:      3,
			},
		},
		{
			ID:          "3",
			Name:        "Organic Cotton T-Shirt",
			Price:       2999,
			Description: "Sustainable and comfortable organic cotton t-shirt. Perfect for everyday wear with a relaxed fit.",
			Category:    "Clothing",
			ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=300&fit=crop",
			Rating:      4.7,
			Reviews:     2156,
			ReturnRate:  0.22,
			Tags:        []string{"organic", "cotton", "casual"},
			RiskFactors: model.RiskFactors{
				SizingIssues:        35,
				QualityIssues:       5,
				ExpectationMismatch: 15,
				ShippingDamage:      1,
			},
		},
		{
			ID:          "4",
			Name:        "Premium Coffee Maker",
			Price:       14999,
			Description: "Professional-grade coffee maker with programmable settings and thermal carafe. Makes perfect coffee every time.",
			Category:    "Home & Kitchen",
			ImageURL:    "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400&h=300&fit=crop",
			Rating:      4.6,
			Reviews:     743,
			ReturnRate:  0.06,
			Tags:        []string{"coffee", "kitchen", "programmable"},
			RiskFactors: model.RiskFactors{
				SizingIssues:        2,
				QualityIssues:       4,
				ExpectationMismatch: 6,
				ShippingDamage:      8,
			},
		},
		{
			ID:          "5",
			Name:        "Gaming Mechanical Keyboard",
			Price:       12999,
			Description: "RGB backlit mechanical keyboard with tactile switches. Perfect for gaming and professional typing.",
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=400&h=300&fit=crop",
			Rating:      4.4,
			Reviews:     567,
			ReturnRate:  0.11,
			Tags:        []string{"gaming", "mechanical", "rgb"},
			RiskFactors: model.RiskFactors{
				SizingIssues:        3,
				QualityIssues:       12,
				ExpectationMismatch: 10,
				ShippingDamage:      5,
			},
		},
		{
			ID:          "6",
			Name:        "Yoga Mat Premium",
			Price:       7999,
			Description: "Extra thick yoga mat with superior grip and cushioning. Made from eco-friendly materials.",
			Category:    "Sports & Outdoors",
			ImageURL:    "https://images.unsplash.com/photo-1506629905607-c5533c2d1861?w=400&h=300&fit=crop",
			Rating:      4.8,
			Reviews:     1834,
			ReturnRate:  0.04,
			Tags:        []string{"yoga", "fitness", "eco-friendly"},
			RiskFactors: model.RiskFactors{
				SizingIssues:        1,
				QualityIssues:       2,
				ExpectationMismatch: 3,
				ShippingDamage:      4,
			},
		},
		{
			ID:          "7",
			Name:        "Wireless Charging Pad",
			Price:       3999,
			Description: "Fast wireless charging pad compatible with all Qi-enabled devices. Sleek design with LED indicator.",
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1586816001966-79b736744398?w=400&h=300&fit=crop",
			Rating:      4.3,
			Reviews:     421,
			ReturnRate:  0.09,
			Tags:        []string{"wireless", "charging", "qi"},
			RiskFactors: model.RiskFactors{
				SizingIssues:        2,
				QualityIssues:       8,
				ExpectationMismatch: 9,
				ShippingDamage:      6,
			},
		},
		{
			ID:          "8",
			Name:        "Running Shoes Elite",
			Price:       15999,
			Description: "High-performance running shoes with advanced cushioning technology and breathable mesh upper.",
			Category:    "Sports & Outdoors",
			ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=300&fit=crop",
			Rating:      4.1,
			Reviews:     698,
			ReturnRate:  0.28,
			Tags:        []string{"running", "shoes", "performance"},
			RiskFactors: model.RiskFactors{
				SizingIssues:        45,
				QualityIssues:       8,
				ExpectationMismatch: 18,
				ShippingDamage:      2,
			},
		},
	}, nil
}
