package models

import "github.com/shopspring/decimal"

// Address is a shipping or billing address parsed from a response. Both
// addresses are always constructed, even when every field is empty.
type Address struct {
	Owner       string
	Status      string
	Name        string
	Zip         string
	Street      string
	Street2     string
	City        string
	State       string
	CountryCode string
	CountryName string
}

// Payer identifies the paying account. Only present on a response when the
// provider sent a payer identifier.
type Payer struct {
	Identifier  string
	Status      string
	FirstName   string
	LastName    string
	Email       string
	Company     string
	PhoneNumber string
}

// Refund is returned by RefundTransaction calls. Only present when the
// provider sent a refund transaction id.
type Refund struct {
	TransactionID string
	Amount        RefundAmount
}

// ResponseItem is one line item reconstructed from L_<FIELD><n> response keys.
type ResponseItem struct {
	Name        string
	Description string
	Amount      decimal.NullDecimal
	Quantity    int
	Number      string
	Category    string
}

// PaymentInfo is the per-payment execution detail returned under
// PAYMENTINFO_<n>_ keys by DoExpressCheckoutPayment.
type PaymentInfo struct {
	Ack                       string
	TransactionID             string
	TransactionType           string
	PaymentType               string
	OrderTime                 string
	PaymentStatus             string
	PendingReason             string
	ReasonCode                string
	ProtectionEligibility     string
	ProtectionEligibilityType string
	ErrorCode                 string
	ReceiptID                 string
	ReceiverID                string
	SecureMerchantAccountID   string
	SellerPayPalAccountID     string
	CurrencyCode              string
	ExchangeRate              string
	Amount                    decimal.NullDecimal
	Fee                       decimal.NullDecimal
	Tax                       decimal.NullDecimal
	SettleAmount              decimal.NullDecimal
}

// PaymentResponse is the per-request detail returned under
// PAYMENTREQUEST_<n>_ (or PAYMENTREQUESTINFO_<n>_ and L_PAYMENTREQUEST_<n>_)
// keys. It carries its own amount breakdown, ship-to address and line items.
type PaymentResponse struct {
	Description            string
	CurrencyCode           string
	NotifyURL              string
	InvoiceNumber          string
	Custom                 string
	Note                   string
	TransactionID          string
	RequestID              string
	SellerID               string
	SellerPayPalAccountID  string
	InsuranceOptionOffered string
	ErrorCode              string
	Amount                 Amount
	ShipTo                 Address
	Items                  []ResponseItem
}
