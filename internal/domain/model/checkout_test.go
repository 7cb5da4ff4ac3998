package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutMode_Valid(t *testing.T) {
	assert.True(t, ModeSolo.Valid())
	assert.True(t, ModeSplit.Valid())
	assert.False(t, CheckoutMode("friend").Valid())
	assert.False(t, CheckoutMode("").Valid())
}

func TestClampSplitPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"below minimum clamps to 10", 3, 10},
		{"minimum passes through", 10, 10},
		{"mid-range passes through", 70, 70},
		{"maximum passes through", 90, 90},
		{"above maximum clamps to 90", 95, 90},
		{"negative clamps to 10", -20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampSplitPercent(tt.input))
		})
	}
}

func TestComputeSplit(t *testing.T) {
	t.Run("solo mode charges the buyer everything", func(t *testing.T) {
		split := ComputeSplit(42997, ModeSolo, 100)
		assert.Equal(t, Cents(42997), split.BuyerAmount)
		assert.Equal(t, Cents(0), split.CoBuyerAmount)
	})

	t.Run("split shares are exactly complementary", func(t *testing.T) {
		split := ComputeSplit(9999, ModeSplit, 70)
		assert.Equal(t, Cents(6999), split.BuyerAmount)
		assert.Equal(t, Cents(3000), split.CoBuyerAmount)
		assert.Equal(t, Cents(9999), split.BuyerAmount+split.CoBuyerAmount)
	})

	t.Run("complementarity holds for every allowed percentage", func(t *testing.T) {
		totals := []Cents{1, 99, 101, 9999, 42997, 123457}
		for _, total := range totals {
			for pct := MinSplitPercent; pct <= MaxSplitPercent; pct++ {
				split := ComputeSplit(total, ModeSplit, pct)
				assert.Equal(t, total, split.BuyerAmount+split.CoBuyerAmount,
					"total %d at %d%%", total, pct)
			}
		}
	})

	t.Run("even split of an odd total favors the co-buyer by one cent", func(t *testing.T) {
		split := ComputeSplit(101, ModeSplit, 50)
		assert.Equal(t, Cents(50), split.BuyerAmount)
		assert.Equal(t, Cents(51), split.CoBuyerAmount)
	})
}
