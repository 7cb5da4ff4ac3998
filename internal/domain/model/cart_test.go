package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testItem(id string, price Cents) Item {
	return Item{ID: id, Name: "Item " + id, Price: price, Category: "Electronics"}
}

func TestCart_AddOrIncrement(t *testing.T) {
	t.Run("appends a new line with quantity one", func(t *testing.T) {
		cart := &Cart{}
		cart.AddOrIncrement(testItem("1", 19999))

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
	})

	t.Run("increments an existing line instead of duplicating it", func(t *testing.T) {
		cart := &Cart{}
		cart.AddOrIncrement(testItem("1", 19999))
		cart.AddOrIncrement(testItem("1", 19999))

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
	})

	t.Run("keeps lines in first-add order", func(t *testing.T) {
		cart := &Cart{}
		cart.AddOrIncrement(testItem("2", 100))
		cart.AddOrIncrement(testItem("1", 200))
		cart.AddOrIncrement(testItem("2", 100))

		assert.Equal(t, "2", cart.Lines[0].Item.ID)
		assert.Equal(t, "1", cart.Lines[1].Item.ID)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("sets the exact quantity", func(t *testing.T) {
		cart := &Cart{}
		cart.AddOrIncrement(testItem("1", 100))
		cart.SetQuantity("1", 5)

		assert.Equal(t, 5, cart.Lines[0].Quantity)
	})

	t.Run("removes the line at zero", func(t *testing.T) {
		cart := &Cart{}
		cart.AddOrIncrement(testItem("1", 100))
		cart.SetQuantity("1", 0)

		assert.Empty(t, cart.Lines)
	})

	t.Run("removes the line below zero", func(t *testing.T) {
		cart := &Cart{}
		cart.AddOrIncrement(testItem("1", 100))
		cart.SetQuantity("1", -3)

		assert.Empty(t, cart.Lines)
	})

	t.Run("ignores unknown item IDs", func(t *testing.T) {
		cart := &Cart{}
		cart.AddOrIncrement(testItem("1", 100))
		cart.SetQuantity("99", 7)

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
	})
}

func TestCart_Remove(t *testing.T) {
	cart := &Cart{}
	cart.AddOrIncrement(testItem("1", 100))
	cart.AddOrIncrement(testItem("2", 200))

	cart.Remove("1")

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, "2", cart.Lines[0].Item.ID)
}

func TestCart_Totals(t *testing.T) {
	cart := &Cart{}
	cart.AddOrIncrement(testItem("1", 19999))
	cart.AddOrIncrement(testItem("1", 19999))
	cart.AddOrIncrement(testItem("2", 2999))

	assert.Equal(t, 3, cart.TotalQuantity())
	assert.Equal(t, Cents(42997), cart.TotalPrice())
}

func TestCart_Clear(t *testing.T) {
	cart := &Cart{}
	cart.AddOrIncrement(testItem("1", 100))
	assert.False(t, cart.IsEmpty())

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalQuantity())
	assert.Equal(t, Cents(0), cart.TotalPrice())
}
