package service

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"
)

const ipnEndpoint = "https://www.paypal.com/cgi-bin/webscr?cmd=_notify-validate"

func TestUnitVerify(t *testing.T) {
	ipnService := &IPNService{Config: testConfig()}
	notification := []byte("payment_status=Completed&txn_id=3R787955HU478333S&mc_gross=181.98")

	Convey("A VERIFIED reply passes, echoing the exact notification bytes", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		var sentBody string
		httpmock.RegisterResponder("POST", ipnEndpoint, func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			sentBody = string(body)
			return httpmock.NewStringResponse(http.StatusOK, "VERIFIED"), nil
		})

		err := ipnService.Verify(notification)

		So(err, ShouldBeNil)
		So(sentBody, ShouldEqual, string(notification))
	})

	Convey("An INVALID reply is an APIError carrying the reply body", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", ipnEndpoint,
			httpmock.NewStringResponder(http.StatusOK, "INVALID"))

		err := ipnService.Verify(notification)

		var apiErr *APIError
		So(errors.As(err, &apiErr), ShouldBeTrue)
		So(apiErr.Body, ShouldEqual, "INVALID")
	})

	Convey("A non-2xx status is an HTTPError", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", ipnEndpoint,
			httpmock.NewStringResponder(http.StatusInternalServerError, "boom"))

		err := ipnService.Verify(notification)

		var httpErr *HTTPError
		So(errors.As(err, &httpErr), ShouldBeTrue)
		So(httpErr.StatusCode, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("A connection failure is an HTTPError with no status", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", ipnEndpoint,
			httpmock.NewErrorResponder(errors.New("connection refused")))

		err := ipnService.Verify(notification)

		var httpErr *HTTPError
		So(errors.As(err, &httpErr), ShouldBeTrue)
		So(httpErr.StatusCode, ShouldEqual, 0)
	})

	Convey("The sandbox flag routes verification to the sandbox endpoint", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", "https://www.sandbox.paypal.com/cgi-bin/webscr?cmd=_notify-validate",
			httpmock.NewStringResponder(http.StatusOK, "VERIFIED"))

		cfg := testConfig()
		cfg.Sandbox = true
		sandboxService := &IPNService{Config: cfg}

		So(sandboxService.Verify(notification), ShouldBeNil)
	})
}
