package utils

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitParseNVP(t *testing.T) {
	Convey("Pairs split on & and = with both sides URL-decoded", t, func() {
		params := ParseNVP("TOKEN=EC%2d5YJ90598G69065317&ACK=Success&TIMESTAMP=2011%2d05%2d26T05%3a27%3a35Z")

		So(params, ShouldResemble, map[string]string{
			"TOKEN":     "EC-5YJ90598G69065317",
			"ACK":       "Success",
			"TIMESTAMP": "2011-05-26T05:27:35Z",
		})
	})

	Convey("The first value wins on duplicate keys", t, func() {
		params := ParseNVP("ACK=Success&ACK=Failure")

		So(params["ACK"], ShouldEqual, "Success")
	})

	Convey("Values may contain = and empty pairs are skipped", t, func() {
		params := ParseNVP("DESC=a%3db&&EMPTY=")

		So(params["DESC"], ShouldEqual, "a=b")
		So(params["EMPTY"], ShouldEqual, "")
		So(params, ShouldHaveLength, 2)
	})
}

func TestUnitEncodeNVP(t *testing.T) {
	Convey("Bodies are form-encoded in stable key order", t, func() {
		body := EncodeNVP(map[string]string{
			"USER":   "nov",
			"METHOD": "SetExpressCheckout",
			"DESC":   "Instant Payment Request",
		})

		So(body, ShouldEqual, "DESC=Instant+Payment+Request&METHOD=SetExpressCheckout&USER=nov")
	})

	Convey("Encoding then parsing returns the original map", t, func() {
		params := map[string]string{
			"PAYMENTREQUEST_0_DESC": "Tea & Biscuits = 2.50",
			"RETURNURL":             "http://example.com/success",
		}

		So(ParseNVP(EncodeNVP(params)), ShouldResemble, params)
	})
}
