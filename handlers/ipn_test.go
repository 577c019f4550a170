package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/companieshouse/paypal-express.go/config"
	"github.com/companieshouse/paypal-express.go/service"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

type stubVerifier struct {
	err      error
	received []byte
}

func (s *stubVerifier) Verify(rawBody []byte) error {
	s.received = rawBody
	return s.err
}

func serveIPN(t *testing.T, verifier IPNVerifier, body string) *httptest.ResponseRecorder {
	t.Helper()
	ipnVerifier = verifier

	req := httptest.NewRequest("POST", "/callbacks/payments/paypal/ipn", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	HandleIPNNotification(w, req)
	return w
}

func TestUnitHandleIPNNotification(t *testing.T) {
	Convey("A verified notification is acknowledged with 200", t, func() {
		verifier := &stubVerifier{}

		w := serveIPN(t, verifier, "payment_status=Completed&txn_id=3R787955HU478333S")

		So(w.Code, ShouldEqual, http.StatusOK)
		So(string(verifier.received), ShouldEqual, "payment_status=Completed&txn_id=3R787955HU478333S")
	})

	Convey("A notification the provider rejects is still acknowledged with 200", t, func() {
		verifier := &stubVerifier{err: &service.APIError{Body: "INVALID"}}

		w := serveIPN(t, verifier, "payment_status=Completed")

		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("A verification transport failure is a 502 so the provider retries", t, func() {
		verifier := &stubVerifier{err: &service.HTTPError{StatusCode: 0, Message: "connection refused"}}

		w := serveIPN(t, verifier, "payment_status=Completed")

		So(w.Code, ShouldEqual, http.StatusBadGateway)
	})
}

func TestUnitRegister(t *testing.T) {
	Convey("Register wires the healthcheck and IPN callback routes", t, func() {
		router := mux.NewRouter()
		Register(router, config.Config{})

		So(router.GetRoute("get-healthcheck"), ShouldNotBeNil)
		So(router.GetRoute("paypal-ipn"), ShouldNotBeNil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/healthcheck", nil))
		So(w.Code, ShouldEqual, http.StatusOK)
	})
}
