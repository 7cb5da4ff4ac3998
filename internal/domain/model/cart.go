package model

import "time"

// CartLine pairs an item snapshot with a positive quantity.
//
// Invariant: at most one line per item ID, quantity >= 1. A line driven
// to quantity <= 0 is removed, never retained at zero.
//
// @Description One item's quantity within a cart
type CartLine struct {
	// Item is the full item snapshot at the time of the first add.
	Item Item `json:"item" bson:"item"`
	// Quantity is the number of units, always >= 1.
	Quantity int `json:"quantity" bson:"quantity" example:"2"`
}

// LineTotal returns quantity x unit price in cents.
func (l CartLine) LineTotal() Cents {
	return l.Item.Price.Mul(l.Quantity)
}

// Cart is an ordered collection of cart lines. Line order is the
// insertion order of each item's first add.
//
// @Description Shopping cart with ordered lines and derived totals
type Cart struct {
	// ID is the server-issued cart identifier (ULID).
	ID string `json:"id" bson:"_id" example:"01JFXS6VNDA2P8EXAMPLE0CART"`
	// Lines are the cart lines in insertion order.
	Lines []CartLine `json:"lines" bson:"lines"`
	// CreatedAt is when the cart was created.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	// UpdatedAt is bumped on every mutation.
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// find returns the index of the line holding itemID, or -1.
func (c *Cart) find(itemID string) int {
	for i := range c.Lines {
		if c.Lines[i].Item.ID == itemID {
			return i
		}
	}
	return -1
}

// AddOrIncrement adds one unit of item: an existing line is incremented,
// otherwise a new line with quantity 1 is appended.
func (c *Cart) AddOrIncrement(item Item) {
	if i := c.find(item.ID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, CartLine{Item: item, Quantity: 1})
}

// SetQuantity sets the line for itemID to qty exactly. A qty <= 0 removes
// the line. Unknown item IDs are a no-op.
func (c *Cart) SetQuantity(itemID string, qty int) {
	i := c.find(itemID)
	if i < 0 {
		return
	}
	if qty <= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return
	}
	c.Lines[i].Quantity = qty
}

// Remove deletes the line for itemID if present.
func (c *Cart) Remove(itemID string) {
	c.SetQuantity(itemID, 0)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// TotalQuantity returns the sum of all line quantities.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice returns the sum of all line totals in cents.
func (c *Cart) TotalPrice() Cents {
	var total Cents
	for _, l := range c.Lines {
		total += l.LineTotal()
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
