package service

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-express.go/config"
	"github.com/companieshouse/paypal-express.go/models"
	"github.com/companieshouse/paypal-express.go/utils"
)

// NVPClient is an interface for the raw NVP request cycle, allowing the
// higher-level services to be tested against a mock.
type NVPClient interface {
	Request(method string, params models.Params) (models.Params, error)
}

// NVPService sends single form-encoded POST calls to the PayPal NVP endpoint
// and decodes the flat response body. It holds no mutable state, so one
// instance may be shared across goroutines.
type NVPService struct {
	Config config.Config
}

// NewNVPService validates the configured credentials and returns a service
// bound to them.
func NewNVPService(cfg config.Config) (*NVPService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return &NVPService{Config: cfg}, nil
}

// CommonParams returns the authentication and versioning parameters carried
// on every call.
func (s *NVPService) CommonParams() models.Params {
	return models.Params{
		"USER":      s.Config.APIUsername,
		"PWD":       s.Config.APIPassword,
		"SIGNATURE": s.Config.APISignature,
		"SUBJECT":   s.Config.APISubject,
		"VERSION":   s.Config.Version(),
	}
}

// Request merges the common parameters with the operation parameters, posts
// them to the NVP endpoint and returns the decoded response map. An ACK of
// Success or SuccessWithWarning passes; anything else becomes an APIError
// carrying the full decoded map. Transport failures become HTTPErrors.
func (s *NVPService) Request(method string, params models.Params) (models.Params, error) {
	body := s.CommonParams().Merge(params)
	body["METHOD"] = method

	request, err := http.NewRequest("POST", s.Config.Endpoint(), strings.NewReader(utils.EncodeNVP(body)))
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal: [%v]", err)
	}
	request.Header.Add("content-type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, &HTTPError{Message: fmt.Sprintf("error sending request to PayPal: [%v]", err)}
	}

	defer resp.Body.Close()
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("error reading response from PayPal: [%v]", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("error status [%v] back from PayPal", resp.StatusCode),
			Body:       string(responseBody),
		}
	}

	response := utils.ParseNVP(string(responseBody))
	switch response["ACK"] {
	case "Success", "SuccessWithWarning":
		return response, nil
	default:
		log.Debug(fmt.Sprintf("paypal %s response ACK: %s", method, response["ACK"]))
		return nil, &APIError{Response: response}
	}
}
