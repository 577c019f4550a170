package service

import (
	"github.com/companieshouse/paypal-express.go/config"
	"github.com/companieshouse/paypal-express.go/mappers"
	"github.com/companieshouse/paypal-express.go/models"
	"github.com/companieshouse/paypal-express.go/transformers"
	"github.com/shopspring/decimal"
)

// ExpressService drives the Express Checkout redirect flow on top of the raw
// NVP request cycle.
type ExpressService struct {
	Client NVPClient
	Config config.Config
}

// NewExpressService validates the configured credentials and returns a
// service backed by a real NVPService.
func NewExpressService(cfg config.Config) (*ExpressService, error) {
	nvp, err := NewNVPService(cfg)
	if err != nil {
		return nil, err
	}
	return &ExpressService{Client: nvp, Config: cfg}, nil
}

// SetupOptions tunes the SetExpressCheckout call. Zero values emit nothing.
type SetupOptions struct {
	NoShipping      bool
	AllowNote       *bool
	SolutionType    string
	LandingPage     string
	Email           string
	Brand           string
	Locale          string
	Logo            string
	CartBorderColor string
	PayflowColor    string
}

// RefundOptions tunes the RefundTransaction call. Leaving Type empty issues
// a full refund; a typed refund carries its own amount and currency.
type RefundOptions struct {
	Type         string
	Amount       decimal.NullDecimal
	CurrencyCode string
	InvoiceID    string
	Note         string
}

// SetExpressCheckout registers one or more payment requests and obtains the
// token the payer is redirected with.
func (s *ExpressService) SetExpressCheckout(paymentRequests []models.PaymentRequest, returnURL, cancelURL string, options SetupOptions) (*models.NVPResponse, error) {
	params := models.Params{
		"RETURNURL": returnURL,
		"CANCELURL": cancelURL,
	}
	if options.NoShipping {
		params["REQCONFIRMSHIPPING"] = "0"
		params["NOSHIPPING"] = "1"
	}
	if options.AllowNote != nil && !*options.AllowNote {
		params["ALLOWNOTE"] = "0"
	}
	for paramKey, value := range map[string]string{
		"SOLUTIONTYPE":    options.SolutionType,
		"LANDINGPAGE":     options.LandingPage,
		"EMAIL":           options.Email,
		"BRANDNAME":       options.Brand,
		"LOCALECODE":      options.Locale,
		"LOGOIMG":         options.Logo,
		"CARTBORDERCOLOR": options.CartBorderColor,
		"PAYFLOWCOLOR":    options.PayflowColor,
	} {
		if value != "" {
			params[paramKey] = value
		}
	}
	params.Merge(mappers.PaymentRequestsParams(paymentRequests))

	return s.request("SetExpressCheckout", params)
}

// GetExpressCheckoutDetails looks up the checkout state for a token,
// including the payer details once the payer has approved.
func (s *ExpressService) GetExpressCheckoutDetails(token string) (*models.NVPResponse, error) {
	return s.request("GetExpressCheckoutDetails", models.Params{
		"TOKEN": token,
	})
}

// GetTransactionDetails looks up a completed transaction.
func (s *ExpressService) GetTransactionDetails(transactionID string) (*models.NVPResponse, error) {
	return s.request("GetTransactionDetails", models.Params{
		"TRANSACTIONID": transactionID,
	})
}

// DoExpressCheckoutPayment finalises the payment after the payer has
// returned. The payment requests must match those given at setup.
func (s *ExpressService) DoExpressCheckoutPayment(token, payerID string, paymentRequests []models.PaymentRequest) (*models.NVPResponse, error) {
	params := models.Params{
		"TOKEN":   token,
		"PAYERID": payerID,
	}
	params.Merge(mappers.PaymentRequestsParams(paymentRequests))

	return s.request("DoExpressCheckoutPayment", params)
}

// DoCapture captures a previously authorised amount. An empty completeType
// captures in full with "Complete".
func (s *ExpressService) DoCapture(authorizationID string, amount decimal.Decimal, currencyCode, completeType string) (*models.NVPResponse, error) {
	if completeType == "" {
		completeType = "Complete"
	}
	return s.request("DoCapture", models.Params{
		"AUTHORIZATIONID": authorizationID,
		"COMPLETETYPE":    completeType,
		"AMT":             amount.StringFixed(2),
		"CURRENCYCODE":    currencyCode,
	})
}

// DoVoid voids a previously authorised payment.
func (s *ExpressService) DoVoid(authorizationID, note string) (*models.NVPResponse, error) {
	params := models.Params{
		"AUTHORIZATIONID": authorizationID,
	}
	if note != "" {
		params["NOTE"] = note
	}
	return s.request("DoVoid", params)
}

// RefundTransaction refunds a completed transaction, fully by default.
func (s *ExpressService) RefundTransaction(transactionID string, options RefundOptions) (*models.NVPResponse, error) {
	params := models.Params{
		"TRANSACTIONID": transactionID,
		"REFUNDTYPE":    "Full",
	}
	if options.InvoiceID != "" {
		params["INVOICEID"] = options.InvoiceID
	}
	if options.Type != "" {
		params["REFUNDTYPE"] = options.Type
		params["AMT"] = models.FormatAmount(options.Amount)
		params["CURRENCYCODE"] = options.CurrencyCode
	}
	if options.Note != "" {
		params["NOTE"] = options.Note
	}
	return s.request("RefundTransaction", params)
}

// RedirectURL returns the URL the payer should be sent to for the given
// checkout token.
func (s *ExpressService) RedirectURL(token string) string {
	return s.Config.RedirectURL(token)
}

func (s *ExpressService) request(method string, params models.Params) (*models.NVPResponse, error) {
	response, err := s.Client.Request(method, params)
	if err != nil {
		return nil, err
	}
	return transformers.NVPResponse(response), nil
}
