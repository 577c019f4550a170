package service

import (
	"fmt"

	"github.com/companieshouse/paypal-express.go/models"
)

// ValidationError is returned before any network activity when required
// configuration or credential fields are missing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

// APIError is returned when the endpoint responded but signalled failure:
// an ACK other than Success or SuccessWithWarning, or an IPN verification
// body other than VERIFIED. The full decoded response (or raw body, for IPN)
// is retained for caller inspection.
type APIError struct {
	Response models.Params
	Body     string
}

func (e *APIError) Error() string {
	if ack, ok := e.Response["ACK"]; ok {
		return fmt.Sprintf("paypal api error: ACK=%s L_LONGMESSAGE0=%s", ack, e.Response["L_LONGMESSAGE0"])
	}
	return fmt.Sprintf("paypal api error: %s", e.Body)
}

// HTTPError is returned on transport failure: a non-2xx status or a
// connection-level error. StatusCode is zero when no response was received.
type HTTPError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("paypal http error %d: %s", e.StatusCode, e.Message)
}
