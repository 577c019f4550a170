package models

import "github.com/shopspring/decimal"

// Amount is the monetary breakdown attached to a payment request or parsed
// out of an NVP response. Every field is optional; NullDecimal keeps the
// present/absent distinction so the encoder can tell a genuine zero from an
// unset field.
type Amount struct {
	Total     decimal.NullDecimal
	Item      decimal.NullDecimal
	Handling  decimal.NullDecimal
	Insurance decimal.NullDecimal
	ShipDisc  decimal.NullDecimal
	Shipping  decimal.NullDecimal
	Tax       decimal.NullDecimal
	Fee       decimal.NullDecimal
}

// RefundAmount is the breakdown returned on RefundTransaction responses.
type RefundAmount struct {
	Total decimal.NullDecimal
	Fee   decimal.NullDecimal
	Gross decimal.NullDecimal
	Net   decimal.NullDecimal
}

// FormatAmount renders an amount field for the wire: always two decimal
// places, `.` separator, no thousands separators. An unset value formats as
// "0.00", which is what the required AMT/TAXAMT/SHIPPINGAMT fields default
// to. Callers emitting optional fields must check Valid before formatting.
func FormatAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return "0.00"
	}
	return d.Decimal.StringFixed(2)
}

// DecimalFrom wraps a decimal in a set NullDecimal. Convenience for building
// requests without spelling out decimal.NewNullDecimal everywhere.
func DecimalFrom(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}

// DecimalFromString parses a wire amount string into a set NullDecimal.
// An empty or unparseable value yields an unset NullDecimal; response
// tolerance for malformed provider data belongs in the transformer, not here.
func DecimalFromString(value string) decimal.NullDecimal {
	if value == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
