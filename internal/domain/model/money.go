package model

import "fmt"

// Cents is a monetary amount in US dollar cents.
//
// All price arithmetic in the service is done on integer cents so that
// totals and payment splits are exact; amounts are rendered as currency
// only at the presentation edge.
type Cents int64

// Format renders the amount as a currency string, e.g. 19999 -> "$199.99".
func (c Cents) Format() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}

// Mul returns the amount multiplied by a non-negative integer quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}
