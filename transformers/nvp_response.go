// Package transformers reconstructs structured response models from the flat
// NVP maps the PayPal endpoint returns. Extraction works on a private copy of
// the input, removing each consumed key so whatever is left at the end can be
// reported as ignored.
package transformers

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/companieshouse/paypal-express.go/models"
)

// attributeMapping is the static table of top-level scalar wire keys. Keeping
// it as an explicit list makes the mapping auditable against the provider
// documentation.
var attributeMapping = []struct {
	key    string
	assign func(*models.NVPResponse, string)
}{
	{"ACK", func(r *models.NVPResponse, v string) { r.Ack = v }},
	{"BUILD", func(r *models.NVPResponse, v string) { r.Build = v }},
	{"BILLINGAGREEMENTACCEPTEDSTATUS", func(r *models.NVPResponse, v string) { r.BillingAgreementAcceptedStatus = v }},
	{"CHECKOUTSTATUS", func(r *models.NVPResponse, v string) { r.CheckoutStatus = v }},
	{"CORRELATIONID", func(r *models.NVPResponse, v string) { r.CorrelationID = v }},
	{"COUNTRYCODE", func(r *models.NVPResponse, v string) { r.CountryCode = v }},
	{"CURRENCYCODE", func(r *models.NVPResponse, v string) { r.CurrencyCode = v }},
	{"DESC", func(r *models.NVPResponse, v string) { r.Description = v }},
	{"NOTIFYURL", func(r *models.NVPResponse, v string) { r.NotifyURL = v }},
	{"TIMESTAMP", func(r *models.NVPResponse, v string) { r.Timestamp = v }},
	{"TOKEN", func(r *models.NVPResponse, v string) { r.Token = v }},
	{"VERSION", func(r *models.NVPResponse, v string) { r.Version = v }},
	// PayPal does not prefix the fields below with PAYMENTREQUEST when
	// issuing a GetTransactionDetails response, so they also arrive at the
	// top level.
	{"RECEIVEREMAIL", func(r *models.NVPResponse, v string) { r.ReceiverEmail = v }},
	{"RECEIVERID", func(r *models.NVPResponse, v string) { r.ReceiverID = v }},
	{"SUBJECT", func(r *models.NVPResponse, v string) { r.Subject = v }},
	{"TRANSACTIONID", func(r *models.NVPResponse, v string) { r.TransactionID = v }},
	{"TRANSACTIONTYPE", func(r *models.NVPResponse, v string) { r.TransactionType = v }},
	{"PAYMENTTYPE", func(r *models.NVPResponse, v string) { r.PaymentType = v }},
	{"ORDERTIME", func(r *models.NVPResponse, v string) { r.OrderTime = v }},
	{"PAYMENTSTATUS", func(r *models.NVPResponse, v string) { r.PaymentStatus = v }},
	{"PENDINGREASON", func(r *models.NVPResponse, v string) { r.PendingReason = v }},
	{"REASONCODE", func(r *models.NVPResponse, v string) { r.ReasonCode = v }},
	{"PROTECTIONELIGIBILITY", func(r *models.NVPResponse, v string) { r.ProtectionEligibility = v }},
	{"PROTECTIONELIGIBILITYTYPE", func(r *models.NVPResponse, v string) { r.ProtectionEligibilityType = v }},
	{"ADDRESSOWNER", func(r *models.NVPResponse, v string) { r.AddressOwner = v }},
	{"ADDRESSSTATUS", func(r *models.NVPResponse, v string) { r.AddressStatus = v }},
	{"INVNUM", func(r *models.NVPResponse, v string) { r.InvoiceNumber = v }},
	{"CUSTOM", func(r *models.NVPResponse, v string) { r.Custom = v }},
}

var genericItemKey = regexp.MustCompile(`^L_(.+?)(\d+)$`)

// NVPResponse builds the structured response from a flat, URL-decoded params
// map. Unknown keys are reported through LogWarning and discarded; this
// function never fails.
func NVPResponse(attrs models.Params) *models.NVPResponse {
	rest := attrs.Copy()
	response := &models.NVPResponse{}

	for _, mapping := range attributeMapping {
		if value, ok := rest[mapping.key]; ok {
			mapping.assign(response, value)
			delete(rest, mapping.key)
		}
	}

	response.ShippingOptionIsDefault = pop(rest, "SHIPPINGOPTIONISDEFAULT") == "true"
	response.SuccessPageRedirectRequested = pop(rest, "SUCCESSPAGEREDIRECTREQUESTED") == "true"
	response.InsuranceOptionSelected = pop(rest, "INSURANCEOPTIONSELECTED") == "true"

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
		Owner:       pop(rest, "SHIPADDRESSOWNER"),
		Status:      pop(rest, "SHIPADDRESSSTATUS"),
		Name:        pop(rest, "SHIPTONAME"),
		Zip:         pop(rest, "SHIPTOZIP"),
		Street:      pop(rest, "SHIPTOSTREET"),
		Street2:     pop(rest, "SHIPTOSTREET2"),
		City:        pop(rest, "SHIPTOCITY"),
		State:       pop(rest, "SHIPTOSTATE"),
		CountryCode: pop(rest, "SHIPTOCOUNTRYCODE"),
		CountryName: pop(rest, "SHIPTOCOUNTRYNAME"),
	}

	response.BillTo = models.Address{
		Owner:       pop(rest, "ADDRESSID"),
		Status:      pop(rest, "ADDRESSSTATUS"),
		Name:        pop(rest, "BILLINGNAME"),
		Zip:         pop(rest, "ZIP"),
		Street:      pop(rest, "STREET"),
		Street2:     pop(rest, "STREET2"),
		City:        pop(rest, "CITY"),
		State:       pop(rest, "STATE"),
		CountryCode: pop(rest, "COUNTRY"),
	}

	// The payer block only exists when the identifier itself was returned. A
	// stray PAYERSTATUS without a PAYERID falls through to the ignored set.
	if _, ok := rest["PAYERID"]; ok {
		response.Payer = &models.Payer{
			Identifier:  pop(rest, "PAYERID"),
			Status:      pop(rest, "PAYERSTATUS"),
			FirstName:   pop(rest, "FIRSTNAME"),
			LastName:    pop(rest, "LASTNAME"),
			Email:       pop(rest, "EMAIL"),
			Company:     pop(rest, "BUSINESS"),
			PhoneNumber: pop(rest, "PHONENUM"),
		}
	}

	if _, ok := rest["REFUNDTRANSACTIONID"]; ok {
		response.Refund = &models.Refund{
			TransactionID: pop(rest, "REFUNDTRANSACTIONID"),
			Amount: models.RefundAmount{
				Total: models.DecimalFromString(pop(rest, "TOTALREFUNDEDAMOUNT")),
				Fee:   models.DecimalFromString(pop(rest, "FEEREFUNDAMT")),
				Gross: models.DecimalFromString(pop(rest, "GROSSREFUNDAMT")),
				Net:   models.DecimalFromString(pop(rest, "NETREFUNDAMT")),
			},
		}
	}

	response.PaymentResponses = extractPaymentResponses(rest)
	response.PaymentInfo = extractPaymentInfo(rest)
	response.Items = extractItems(rest)

	// SHIPTOCOUNTRY duplicates SHIPTOCOUNTRYCODE and SALESTAX duplicates
	// TAXAMT; both are dropped without a warning.
	delete(rest, "SHIPTOCOUNTRY")
	delete(rest, "SALESTAX")

	warnIgnored("NVPResponse", rest)

	return response
}

// extractPaymentResponses folds the two alternate wire encodings of the
// per-request list into one grouping. PAYMENTREQUEST_<i>_<FIELD> and
// PAYMENTREQUESTINFO_<i>_<FIELD> keys contribute <FIELD> directly;
// L_PAYMENTREQUEST_<i>_<FIELD><j> keys drop the leading L_ and contribute
// <FIELD><j> intact, leaving the per-item suffix for the nested transformer.
func extractPaymentResponses(rest models.Params) []models.PaymentResponse {
	groups := make(map[int]models.Params)
	for key := range rest {
		var parts []string
		switch {
		case strings.HasPrefix(key, "PAYMENTREQUEST_"), strings.HasPrefix(key, "PAYMENTREQUESTINFO_"):
			parts = strings.SplitN(key, "_", 3)
		case strings.HasPrefix(key, "L_PAYMENTREQUEST_"):
			parts = strings.SplitN(key, "_", 4)[1:]
		default:
			continue
		}
		if len(parts) != 3 {
			continue
		}
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		if groups[index] == nil {
			groups[index] = models.Params{}
		}
		groups[index][parts[2]] = pop(rest, key)
	}

	responses := make([]models.PaymentResponse, 0, len(groups))
	for _, index := range sortedIndices(groups) {
		responses = append(responses, *PaymentResponse(groups[index]))
	}
	return responses
}

func extractPaymentInfo(rest models.Params) []models.PaymentInfo {
	groups := make(map[int]models.Params)
	for key := range rest {
		if !strings.HasPrefix(key, "PAYMENTINFO_") {
			continue
		}
		parts := strings.SplitN(key, "_", 3)
		if len(parts) != 3 {
			continue
		}
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		if groups[index] == nil {
			groups[index] = models.Params{}
		}
		groups[index][parts[2]] = pop(rest, key)
	}

	info := make([]models.PaymentInfo, 0, len(groups))
	for _, index := range sortedIndices(groups) {
		info = append(info, *PaymentInfo(groups[index]))
	}
	return info
}

// extractItems applies the generic L_<FIELD><index> fallback rule to whatever
// list keys remain once the payment-request-scoped rules have taken theirs.
// The field name is everything before the trailing digit run.
func extractItems(rest models.Params) []models.ResponseItem {
	groups := make(map[int]models.Params)
	for key := range rest {
		match := genericItemKey.FindStringSubmatch(key)
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

// sortedIndices returns the group indices in ascending order. Gaps in the
// numbering are not expected, but simply compact away here.
func sortedIndices(groups map[int]models.Params) []int {
	indices := make([]int, 0, len(groups))
	for index := range groups {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}
