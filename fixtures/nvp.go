// Package fixtures provides canned NVP response bodies, as returned by the
// PayPal sandbox, for service and handler tests.
package fixtures

import (
	"fmt"
	"strings"
)

// SetExpressCheckoutSuccess is the body returned when a checkout session has
// been registered and a token issued.
func SetExpressCheckoutSuccess() string {
	return "TOKEN=EC%2d5YJ90598G69065317&TIMESTAMP=2011%2d05%2d26T05%3a27%3a35Z&CORRELATIONID=5549ea3a78af1&ACK=Success&VERSION=88%2e0&BUILD=1882144"
}

// SetExpressCheckoutFailure is the body returned when credentials fail.
func SetExpressCheckoutFailure() string {
	return "TIMESTAMP=2011%2d05%2d26T05%3a27%3a35Z&CORRELATIONID=fe2dbd4f5bf5a&ACK=Failure&VERSION=88%2e0&BUILD=1882144" +
		"&L_ERRORCODE0=10002&L_SHORTMESSAGE0=Security%20error&L_LONGMESSAGE0=Security%20header%20is%20not%20valid&L_SEVERITYCODE0=Error"
}

// GetExpressCheckoutDetailsSuccess is the body returned once the payer has
// approved the checkout. It carries the payer block, both address encodings
// of the payment request, and the duplicated SHIPTOCOUNTRY key.
func GetExpressCheckoutDetailsSuccess() string {
	return strings.Join([]string{
		"TOKEN=EC%2d5YJ90598G69065317",
		"CHECKOUTSTATUS=PaymentActionNotInitiated",
		"TIMESTAMP=2011%2d05%2d26T05%3a52%3a51Z",
		"CORRELATIONID=7e111f8ab7b16",
		"ACK=Success",
		"VERSION=88%2e0",
		"BUILD=1882144",
		"EMAIL=payer%40example%2ecom",
		"PAYERID=9RWDTMRKKHQ8S",
		"PAYERSTATUS=verified",
		"FIRSTNAME=Test",
		"LASTNAME=User",
		"COUNTRYCODE=US",
		"SHIPTONAME=Test%20User",
		"SHIPTOSTREET=1%20Main%20St",
		"SHIPTOCITY=San%20Jose",
		"SHIPTOSTATE=CA",
		"SHIPTOZIP=95131",
		"SHIPTOCOUNTRYCODE=US",
		"SHIPTOCOUNTRY=US",
		"SHIPTOCOUNTRYNAME=United%20States",
		"ADDRESSSTATUS=Confirmed",
		"CURRENCYCODE=JPY",
		"AMT=1000",
		"SHIPPINGAMT=0%2e00",
		"HANDLINGAMT=0%2e00",
		"TAXAMT=0%2e00",
		"INSURANCEAMT=0%2e00",
		"SHIPDISCAMT=0%2e00",
		"PAYMENTREQUEST_0_CURRENCYCODE=JPY",
		"PAYMENTREQUEST_0_AMT=1000",
		"PAYMENTREQUEST_0_SHIPPINGAMT=0%2e00",
		"PAYMENTREQUEST_0_HANDLINGAMT=0%2e00",
		"PAYMENTREQUEST_0_TAXAMT=0%2e00",
		"PAYMENTREQUEST_0_DESC=Instant%20Payment%20Request",
		"PAYMENTREQUEST_0_INSURANCEAMT=0%2e00",
		"PAYMENTREQUEST_0_SHIPDISCAMT=0%2e00",
		"PAYMENTREQUEST_0_INSURANCEOPTIONOFFERED=false",
		"PAYMENTREQUESTINFO_0_ERRORCODE=0",
	}, "&")
}

// DoExpressCheckoutPaymentSuccess is the body returned when a payment has
// been executed. Execution detail arrives under the PAYMENTINFO prefix.
func DoExpressCheckoutPaymentSuccess() string {
	return strings.Join([]string{
		"TOKEN=EC%2d5YJ90598G69065317",
		"SUCCESSPAGEREDIRECTREQUESTED=false",
		"TIMESTAMP=2011%2d05%2d26T06%3a09%3a18Z",
		"CORRELATIONID=e0d0a6dc22779",
		"ACK=Success",
		"VERSION=88%2e0",
		"BUILD=1882144",
		"INSURANCEOPTIONSELECTED=false",
		"SHIPPINGOPTIONISDEFAULT=false",
		"PAYMENTINFO_0_TRANSACTIONID=3R787955HU478333S",
		"PAYMENTINFO_0_TRANSACTIONTYPE=expresscheckout",
		"PAYMENTINFO_0_PAYMENTTYPE=instant",
		"PAYMENTINFO_0_ORDERTIME=2011%2d05%2d26T06%3a09%3a17Z",
		"PAYMENTINFO_0_AMT=1000",
		"PAYMENTINFO_0_FEEAMT=75",
		"PAYMENTINFO_0_TAXAMT=0",
		"PAYMENTINFO_0_CURRENCYCODE=JPY",
		"PAYMENTINFO_0_PAYMENTSTATUS=Completed",
		"PAYMENTINFO_0_PENDINGREASON=None",
		"PAYMENTINFO_0_REASONCODE=None",
		"PAYMENTINFO_0_PROTECTIONELIGIBILITY=Ineligible",
		"PAYMENTINFO_0_PROTECTIONELIGIBILITYTYPE=None",
		"PAYMENTINFO_0_SECUREMERCHANTACCOUNTID=2WVR7TBDZ2AQY",
		"PAYMENTINFO_0_ERRORCODE=0",
		"PAYMENTINFO_0_ACK=Success",
	}, "&")
}

// DoExpressCheckoutPaymentManyItems is a payment execution response whose
// payment request echoes back the given number of line items.
func DoExpressCheckoutPaymentManyItems(itemCount int) string {
	parts := []string{
		"TOKEN=EC%2d5YJ90598G69065317",
		"TIMESTAMP=2011%2d05%2d26T06%3a09%3a18Z",
		"CORRELATIONID=e0d0a6dc22779",
		"ACK=Success",
		"VERSION=88%2e0",
		"BUILD=1882144",
		"PAYMENTREQUEST_0_AMT=1000%2e00",
		"PAYMENTREQUEST_0_TAXAMT=0%2e00",
		"PAYMENTREQUEST_0_SHIPPINGAMT=0%2e00",
		"PAYMENTREQUEST_0_DESC=Instant%20Payment%20Request",
	}
	for j := 0; j < itemCount; j++ {
		parts = append(parts,
			fmt.Sprintf("L_PAYMENTREQUEST_0_NAME%d=Item%d", j, j+1),
			fmt.Sprintf("L_PAYMENTREQUEST_0_DESC%d=A%%20new%%20Item%%20%d", j, j+1),
			fmt.Sprintf("L_PAYMENTREQUEST_0_AMT%d=50%%2e00", j),
			fmt.Sprintf("L_PAYMENTREQUEST_0_QTY%d=1", j),
		)
	}
	return strings.Join(parts, "&")
}

// GetTransactionDetailsSuccess is the body for a completed transaction
// lookup. Payment fields arrive unprefixed here, plus the generic item list
// and the duplicated SALESTAX key.
func GetTransactionDetailsSuccess() string {
	return strings.Join([]string{
		"RECEIVEREMAIL=seller%40example%2ecom",
		"RECEIVERID=2WVR7TBDZ2AQY",
		"EMAIL=payer%40example%2ecom",
		"PAYERID=9RWDTMRKKHQ8S",
		"PAYERSTATUS=verified",
		"FIRSTNAME=Test",
		"LASTNAME=User",
		"COUNTRYCODE=US",
		"SHIPTONAME=Test%20User",
		"SHIPTOSTREET=1%20Main%20St",
		"SHIPTOCITY=San%20Jose",
		"SHIPTOSTATE=CA",
		"SHIPTOZIP=95131",
		"SHIPTOCOUNTRYCODE=US",
		"SHIPTOCOUNTRY=US",
		"ADDRESSOWNER=PayPal",
		"ADDRESSSTATUS=Confirmed",
		"TIMESTAMP=2011%2d05%2d26T06%3a30%3a02Z",
		"CORRELATIONID=364e3f0e58f9b",
		"ACK=Success",
		"VERSION=88%2e0",
		"BUILD=1882144",
		"TRANSACTIONID=3R787955HU478333S",
		"TRANSACTIONTYPE=cart",
		"PAYMENTTYPE=instant",
		"ORDERTIME=2011%2d05%2d26T06%3a09%3a17Z",
		"AMT=1000",
		"FEEAMT=75",
		"TAXAMT=0",
		"SALESTAX=0",
		"CURRENCYCODE=JPY",
		"PAYMENTSTATUS=Completed",
		"PENDINGREASON=None",
		"REASONCODE=None",
		"PROTECTIONELIGIBILITY=Ineligible",
		"INVNUM=ABC123",
		"CUSTOM=Custom",
		"L_NAME0=Item1",
		"L_DESC0=Awesome%20Item",
		"L_AMT0=1000%2e00",
		"L_QTY0=1",
	}, "&")
}

// RefundTransactionFull is the body for a successful full refund.
func RefundTransactionFull() string {
	return strings.Join([]string{
		"REFUNDTRANSACTIONID=8F857518LE9334221",
		"FEEREFUNDAMT=35",
		"GROSSREFUNDAMT=1000",
		"NETREFUNDAMT=965",
		"TOTALREFUNDEDAMOUNT=1000",
		"TIMESTAMP=2011%2d05%2d26T07%3a24%3a36Z",
		"CORRELATIONID=c17b3a378a7ff",
		"ACK=Success",
		"VERSION=88%2e0",
		"BUILD=1882144",
		"CURRENCYCODE=JPY",
	}, "&")
}
