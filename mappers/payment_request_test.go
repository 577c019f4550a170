package mappers

import (
	"testing"

	"github.com/companieshouse/paypal-express.go/models"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

func instantRequest() models.PaymentRequest {
	return models.PaymentRequest{
		Amount: models.Amount{
			Total:    models.DecimalFrom(decimal.NewFromFloat(25.7)),
			Tax:      models.DecimalFrom(decimal.NewFromFloat(0.4)),
			Shipping: models.DecimalFrom(decimal.NewFromFloat(1.5)),
		},
		CurrencyCode:  "JPY",
		Description:   "Instant Payment Request",
		NotifyURL:     "http://merchant.example.com/notify",
		InvoiceNumber: "ABC123",
		Custom:        "Custom",
		Items: []models.Item{
			{
				Quantity:    2,
				Name:        "Item1",
				Description: "Awesome Item 1!",
				Amount:      models.DecimalFrom(decimal.NewFromFloat(10.25)),
				CustomFields: map[string]string{
					"l_surveychoice{n}": "abcd",
				},
			},
			{
				Quantity:    3,
				Name:        "Item2",
				Description: "Awesome Item 2!",
				Amount:      models.DecimalFrom(decimal.NewFromFloat(1.1)),
			},
		},
	}
}

func TestUnitPaymentRequestParams(t *testing.T) {
	Convey("An instant payment request encodes every index-scoped key", t, func() {
		So(PaymentRequestParams(instantRequest(), 0), ShouldResemble, models.Params{
			"PAYMENTREQUEST_0_AMT":          "25.70",
			"PAYMENTREQUEST_0_TAXAMT":       "0.40",
			"PAYMENTREQUEST_0_SHIPPINGAMT":  "1.50",
			"PAYMENTREQUEST_0_CURRENCYCODE": "JPY",
			"PAYMENTREQUEST_0_DESC":         "Instant Payment Request",
			"PAYMENTREQUEST_0_NOTIFYURL":    "http://merchant.example.com/notify",
			"PAYMENTREQUEST_0_ITEMAMT":      "23.80",
			"PAYMENTREQUEST_0_INVNUM":       "ABC123",
			"PAYMENTREQUEST_0_CUSTOM":       "Custom",
			"L_PAYMENTREQUEST_0_NAME0":      "Item1",
			"L_PAYMENTREQUEST_0_DESC0":      "Awesome Item 1!",
			"L_PAYMENTREQUEST_0_AMT0":       "10.25",
			"L_PAYMENTREQUEST_0_QTY0":       "2",
			"L_PAYMENTREQUEST_0_NAME1":      "Item2",
			"L_PAYMENTREQUEST_0_DESC1":      "Awesome Item 2!",
			"L_PAYMENTREQUEST_0_AMT1":       "1.10",
			"L_PAYMENTREQUEST_0_QTY1":       "3",
			"L_SURVEYCHOICE0":               "abcd",
		})
	})

	Convey("Required amounts default to 0.00 when unset", t, func() {
		params := PaymentRequestParams(models.PaymentRequest{
			Amount:      models.Amount{Total: models.DecimalFrom(decimal.NewFromInt(1000))},
			Description: "Instant Payment Request",
		}, 0)

		So(params, ShouldResemble, models.Params{
			"PAYMENTREQUEST_0_AMT":         "1000.00",
			"PAYMENTREQUEST_0_TAXAMT":      "0.00",
			"PAYMENTREQUEST_0_SHIPPINGAMT": "0.00",
			"PAYMENTREQUEST_0_DESC":        "Instant Payment Request",
		})
	})

	Convey("An explicit item total wins over the computed one", t, func() {
		request := instantRequest()
		request.Amount.Item = models.DecimalFrom(decimal.NewFromFloat(99.99))

		params := PaymentRequestParams(request, 0)

		So(params["PAYMENTREQUEST_0_ITEMAMT"], ShouldEqual, "99.99")
	})

	Convey("The request index scopes every key", t, func() {
		params := PaymentRequestParams(instantRequest(), 1)

		So(params["PAYMENTREQUEST_1_AMT"], ShouldEqual, "25.70")
		So(params["L_PAYMENTREQUEST_1_NAME0"], ShouldEqual, "Item1")
		So(params, ShouldNotContainKey, "PAYMENTREQUEST_0_AMT")
	})
}

func TestUnitPaymentRequestsParams(t *testing.T) {
	Convey("Multiple requests encode at sequential indices without collision", t, func() {
		first := instantRequest()
		second := models.PaymentRequest{
			Amount:      models.Amount{Total: models.DecimalFrom(decimal.NewFromInt(50))},
			Description: "Second Request",
		}

		params := PaymentRequestsParams([]models.PaymentRequest{first, second})

		So(params["PAYMENTREQUEST_0_AMT"], ShouldEqual, "25.70")
		So(params["PAYMENTREQUEST_0_DESC"], ShouldEqual, "Instant Payment Request")
		So(params["PAYMENTREQUEST_1_AMT"], ShouldEqual, "50.00")
		So(params["PAYMENTREQUEST_1_DESC"], ShouldEqual, "Second Request")
	})
}
