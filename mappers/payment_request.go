// Package mappers builds flat NVP parameter maps from the request models.
package mappers

import (
	"strconv"
	"strings"

	"github.com/companieshouse/paypal-express.go/models"
)

// PaymentRequestParams encodes a payment request into its index-scoped NVP
// parameters. The index is the request's position among the payment requests
// carried by a single API call; item keys additionally carry the item's
// position within this request. Both are zero-based and dense, which is what
// lets the response transformer round-trip the encoding.
func PaymentRequestParams(request models.PaymentRequest, index int) models.Params {
	prefix := "PAYMENTREQUEST_" + strconv.Itoa(index) + "_"
	params := models.Params{
		prefix + "AMT":         models.FormatAmount(request.Amount.Total),
		prefix + "TAXAMT":      models.FormatAmount(request.Amount.Tax),
		prefix + "SHIPPINGAMT": models.FormatAmount(request.Amount.Shipping),
	}

	if request.CurrencyCode != "" {
		params[prefix+"CURRENCYCODE"] = request.CurrencyCode
	}
	if request.Description != "" {
		params[prefix+"DESC"] = request.Description
	}
	if request.NotifyURL != "" {
		params[prefix+"NOTIFYURL"] = request.NotifyURL
	}
	if itemAmount, ok := itemAmount(request); ok {
		params[prefix+"ITEMAMT"] = itemAmount
	}
	if request.InvoiceNumber != "" {
		params[prefix+"INVNUM"] = request.InvoiceNumber
	}
	if request.Custom != "" {
		params[prefix+"CUSTOM"] = request.Custom
	}

	for itemIndex, item := range request.Items {
		params.Merge(itemParams(item, index, itemIndex))
	}

	return params
}

// PaymentRequestsParams encodes several payment requests at sequential
// indices and merges the results. Indices differ per request, so the merge
// never overwrites earlier keys.
func PaymentRequestsParams(requests []models.PaymentRequest) models.Params {
	params := models.Params{}
	for index, request := range requests {
		params.Merge(PaymentRequestParams(request, index))
	}
	return params
}

// itemAmount resolves the ITEMAMT value: an explicitly set item total wins,
// otherwise the computed items amount is used when items are present.
func itemAmount(request models.PaymentRequest) (string, bool) {
	if request.Amount.Item.Valid {
		return models.FormatAmount(request.Amount.Item), true
	}
	if len(request.Items) > 0 {
		return request.ItemsAmount().StringFixed(2), true
	}
	return "", false
}

func itemParams(item models.Item, index, itemIndex int) models.Params {
	prefix := "L_PAYMENTREQUEST_" + strconv.Itoa(index) + "_"
	suffix := strconv.Itoa(itemIndex)
	params := models.Params{}

	if item.Name != "" {
		params[prefix+"NAME"+suffix] = item.Name
	}
	if item.Description != "" {
		params[prefix+"DESC"+suffix] = item.Description
	}
	if item.Amount.Valid {
		params[prefix+"AMT"+suffix] = models.FormatAmount(item.Amount)
	}
	// Quantity is a raw integer on the wire, never amount-formatted.
	params[prefix+"QTY"+suffix] = strconv.Itoa(item.Quantity)

	for template, value := range item.CustomFields {
		key := strings.ToUpper(strings.ReplaceAll(template, "{n}", suffix))
		params[key] = value
	}

	return params
}
