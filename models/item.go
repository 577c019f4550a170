package models

import "github.com/shopspring/decimal"

// Item is a single purchasable line within a payment request.
type Item struct {
	Name        string
	Description string
	Amount      decimal.NullDecimal
	Quantity    int

	// CustomFields maps template wire keys to values. A key may contain the
	// placeholder token `{n}`, which is replaced with the item's zero-based
	// position and upper-cased when the request is encoded, e.g.
	// "l_surveychoice{n}" becomes L_SURVEYCHOICE0 for the first item.
	CustomFields map[string]string
}

// Subtotal is the item's contribution to the request item total.
func (i Item) Subtotal() decimal.Decimal {
	if !i.Amount.Valid {
		return decimal.Zero
	}
	return i.Amount.Decimal.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
