package models

// NVPResponse is the structured form of a flat NVP response body. It is
// assembled once by the transformers package and not mutated afterwards.
type NVPResponse struct {
	Ack                            string
	Build                          string
	BillingAgreementAcceptedStatus string
	CheckoutStatus                 string
	CorrelationID                  string
	CountryCode                    string
	CurrencyCode                   string
	Description                    string
	NotifyURL                      string
	Timestamp                      string
	Token                          string
	Version                        string

	// PayPal does not prefix the fields below with PAYMENTREQUEST on
	// GetTransactionDetails responses, so they also exist at the top level.
	ReceiverEmail             string
	ReceiverID                string
	Subject                   string
	TransactionID             string
	TransactionType           string
	PaymentType               string
	OrderTime                 string
	PaymentStatus             string
	PendingReason             string
	ReasonCode                string
	ProtectionEligibility     string
	ProtectionEligibilityType string
	AddressOwner              string
	AddressStatus             string
	InvoiceNumber             string
	Custom                    string

	ShippingOptionIsDefault      bool
	SuccessPageRedirectRequested bool
	InsuranceOptionSelected      bool

	Amount Amount
	ShipTo Address
	BillTo Address
	Payer  *Payer
	Refund *Refund

	PaymentResponses []PaymentResponse
	PaymentInfo      []PaymentInfo
	Items            []ResponseItem
}

// Success reports whether ACK was exactly "Success". SuccessWithWarning is
// deliberately excluded here; the dispatch layer accepts it when deciding
// whether to surface an APIError.
func (r *NVPResponse) Success() bool {
	return r.Ack == "Success"
}
