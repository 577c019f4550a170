package models

import "github.com/shopspring/decimal"

// PaymentRequest describes one payment to be set up or executed through
// Express Checkout. A single API call may carry several of these, each
// encoded under its own positional index.
type PaymentRequest struct {
	Amount        Amount
	Description   string
	CurrencyCode  string
	NotifyURL     string
	InvoiceNumber string
	Custom        string
	Items         []Item
}

// ItemsAmount is the sum of amount * quantity across all items, rounded to
// two decimal places half away from zero. Decimal arithmetic keeps
// 130.45 * 3 at 391.35 rather than the 391.34999... binary floats produce.
func (r PaymentRequest) ItemsAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.Subtotal())
	}
	return total.Round(2)
}
