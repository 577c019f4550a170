package service

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/companieshouse/paypal-express.go/config"
)

// IPNService verifies asynchronous payment notifications by echoing the raw
// notification body back to the provider's verification endpoint.
type IPNService struct {
	Config config.Config
}

// Verify posts the notification body, byte for byte, to the verification
// endpoint. A reply of VERIFIED returns nil; any other reply is an APIError
// carrying the body, and a transport failure is an HTTPError. The body must
// be the exact bytes received on the notification callback, since the
// provider compares them against what it sent.
func (s *IPNService) Verify(rawBody []byte) error {
	request, err := http.NewRequest("POST", s.Config.IPNEndpoint(), bytes.NewReader(rawBody))
	if err != nil {
		return fmt.Errorf("error generating IPN verification request: [%v]", err)
	}
	request.Header.Add("content-type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return &HTTPError{Message: fmt.Sprintf("error sending IPN verification request: [%v]", err)}
	}

	defer resp.Body.Close()
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("error reading IPN verification response: [%v]", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("error status [%v] back from IPN verification", resp.StatusCode),
			Body:       string(responseBody),
		}
	}

	if string(responseBody) != "VERIFIED" {
		return &APIError{Body: string(responseBody)}
	}

	return nil
}
