package transformers

import (
	"strconv"

	"github.com/companieshouse/paypal-express.go/models"
)

var paymentInfoMapping = []struct {
	key    string
	assign func(*models.PaymentInfo, string)
}{
	{"ACK", func(i *models.PaymentInfo, v string) { i.Ack = v }},
	{"TRANSACTIONID", func(i *models.PaymentInfo, v string) { i.TransactionID = v }},
	{"TRANSACTIONTYPE", func(i *models.PaymentInfo, v string) { i.TransactionType = v }},
	{"PAYMENTTYPE", func(i *models.PaymentInfo, v string) { i.PaymentType = v }},
	{"ORDERTIME", func(i *models.PaymentInfo, v string) { i.OrderTime = v }},
	{"PAYMENTSTATUS", func(i *models.PaymentInfo, v string) { i.PaymentStatus = v }},
	{"PENDINGREASON", func(i *models.PaymentInfo, v string) { i.PendingReason = v }},
	{"REASONCODE", func(i *models.PaymentInfo, v string) { i.ReasonCode = v }},
	{"PROTECTIONELIGIBILITY", func(i *models.PaymentInfo, v string) { i.ProtectionEligibility = v }},
	{"PROTECTIONELIGIBILITYTYPE", func(i *models.PaymentInfo, v string) { i.ProtectionEligibilityType = v }},
	{"ERRORCODE", func(i *models.PaymentInfo, v string) { i.ErrorCode = v }},
	{"RECEIPTID", func(i *models.PaymentInfo, v string) { i.ReceiptID = v }},
	{"RECEIVERID", func(i *models.PaymentInfo, v string) { i.ReceiverID = v }},
	{"SECUREMERCHANTACCOUNTID", func(i *models.PaymentInfo, v string) { i.SecureMerchantAccountID = v }},
	{"SELLERPAYPALACCOUNTID", func(i *models.PaymentInfo, v string) { i.SellerPayPalAccountID = v }},
	{"CURRENCYCODE", func(i *models.PaymentInfo, v string) { i.CurrencyCode = v }},
	{"EXCHANGERATE", func(i *models.PaymentInfo, v string) { i.ExchangeRate = v }},
}

var itemMapping = []struct {
	key    string
	assign func(*models.ResponseItem, string)
}{
	{"NAME", func(i *models.ResponseItem, v string) { i.Name = v }},
	{"DESC", func(i *models.ResponseItem, v string) { i.Description = v }},
	{"NUMBER", func(i *models.ResponseItem, v string) { i.Number = v }},
	{"ITEMCATEGORY", func(i *models.ResponseItem, v string) { i.Category = v }},
}

// PaymentInfo builds one per-payment execution detail from a group of keys
// collected under a single PAYMENTINFO index.
func PaymentInfo(attrs models.Params) *models.PaymentInfo {
	rest := attrs.Copy()
	info := &models.PaymentInfo{}

	for _, mapping := range paymentInfoMapping {
		if value, ok := rest[mapping.key]; ok {
			mapping.assign(info, value)
			delete(rest, mapping.key)
		}
	}

	info.Amount = models.DecimalFromString(pop(rest, "AMT"))
	info.Fee = models.DecimalFromString(pop(rest, "FEEAMT"))
	info.Tax = models.DecimalFromString(pop(rest, "TAXAMT"))
	info.SettleAmount = models.DecimalFromString(pop(rest, "SETTLEAMT"))

	warnIgnored("PaymentInfo", rest)

	return info
}

// ResponseItem builds one line item from a group of field keys collected
// under a single item index.
func ResponseItem(attrs models.Params) *models.ResponseItem {
	rest := attrs.Copy()
	item := &models.ResponseItem{}

	for _, mapping := range itemMapping {
		if value, ok := rest[mapping.key]; ok {
			mapping.assign(item, value)
			delete(rest, mapping.key)
		}
	}

	item.Amount = models.DecimalFromString(pop(rest, "AMT"))
	if quantity, err := strconv.Atoi(pop(rest, "QTY")); err == nil {
		item.Quantity = quantity
	}

	warnIgnored("ResponseItem", rest)

	return item
}
