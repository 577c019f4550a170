package transformers

import (
	"regexp"
	"strconv"

	"github.com/companieshouse/paypal-express.go/models"
)

var paymentResponseMapping = []struct {
	key    string
	assign func(*models.PaymentResponse, string)
}{
	{"CURRENCYCODE", func(r *models.PaymentResponse, v string) { r.CurrencyCode = v }},
	{"DESC", func(r *models.PaymentResponse, v string) { r.Description = v }},
	{"INVNUM", func(r *models.PaymentResponse, v string) { r.InvoiceNumber = v }},
	{"CUSTOM", func(r *models.PaymentResponse, v string) { r.Custom = v }},
	{"NOTETEXT", func(r *models.PaymentResponse, v string) { r.Note = v }},
	{"NOTIFYURL", func(r *models.PaymentResponse, v string) { r.NotifyURL = v }},
	{"TRANSACTIONID", func(r *models.PaymentResponse, v string) { r.TransactionID = v }},
	{"PAYMENTREQUESTID", func(r *models.PaymentResponse, v string) { r.RequestID = v }},
	{"SELLERID", func(r *models.PaymentResponse, v string) { r.SellerID = v }},
	{"SELLERPAYPALACCOUNTID", func(r *models.PaymentResponse, v string) { r.SellerPayPalAccountID = v }},
	{"INSURANCEOPTIONOFFERED", func(r *models.PaymentResponse, v string) { r.InsuranceOptionOffered = v }},
	{"ERRORCODE", func(r *models.PaymentResponse, v string) { r.ErrorCode = v }},
}

// Keys inside a payment response group have already had their prefix and
// request index stripped, so an item key is just the field name followed by
// the item's position.
var nestedItemKey = regexp.MustCompile(`^(\D+)(\d+)$`)

// PaymentResponse builds one per-request response from a group of keys that
// extractPaymentResponses collected under a single request index.
func PaymentResponse(attrs models.Params) *models.PaymentResponse {
	rest := attrs.Copy()
	response := &models.PaymentResponse{}

	for _, mapping := range paymentResponseMapping {
		if value, ok := rest[mapping.key]; ok {
			mapping.assign(response, value)
			delete(rest, mapping.key)
		}
	}

	response.Amount = models.Amount{
		Total:     models.DecimalFromString(pop(rest, "AMT")),
		Item:      models.DecimalFromString(pop(rest, "ITEMAMT")),
		Handling:  models.DecimalFromString(pop(rest, "HANDLINGAMT")),
		Insurance: models.DecimalFromString(pop(rest, "INSURANCEAMT")),
		ShipDisc:  models.DecimalFromString(pop(rest, "SHIPDISCAMT")),
		Shipping:  models.DecimalFromString(pop(rest, "SHIPPINGAMT")),
		Tax:       models.DecimalFromString(pop(rest, "TAXAMT")),
		Fee:       models.DecimalFromString(pop(rest, "FEEAMT")),
	}

	response.ShipTo = models.Address{
		Name:        pop(rest, "SHIPTONAME"),
		Zip:         pop(rest, "SHIPTOZIP"),
		Street:      pop(rest, "SHIPTOSTREET"),
		Street2:     pop(rest, "SHIPTOSTREET2"),
		City:        pop(rest, "SHIPTOCITY"),
		State:       pop(rest, "SHIPTOSTATE"),
		CountryCode: pop(rest, "SHIPTOCOUNTRYCODE"),
		CountryName: pop(rest, "SHIPTOCOUNTRYNAME"),
	}

	response.Items = extractNestedItems(rest)

	warnIgnored("PaymentResponse", rest)

	return response
}

// extractNestedItems re-parses the item suffixes a payment response carries
// for its own line items, using the same field-then-index decomposition as
// the generic list rule.
func extractNestedItems(rest models.Params) []models.ResponseItem {
	groups := make(map[int]models.Params)
	for key := range rest {
		match := nestedItemKey.FindStringSubmatch(key)
		if match == nil {
			continue
		}
		index, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		if groups[index] == nil {
			groups[index] = models.Params{}
		}
		groups[index][match[1]] = pop(rest, key)
	}

	items := make([]models.ResponseItem, 0, len(groups))
	for _, index := range sortedIndices(groups) {
		items = append(items, *ResponseItem(groups[index]))
	}
	return items
}
