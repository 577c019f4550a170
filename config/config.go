// Package config defines the environment variable and command-line flags
// supported by this library and the PayPal endpoints derived from them.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
	"github.com/go-playground/validator/v10"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the credentials and environment selection for the PayPal
// Classic NVP API. It is read-only once constructed; services take a copy by
// value so concurrent calls never share mutable state.
type Config struct {
	APIUsername  string `env:"PAYPAL_API_USERNAME"  flag:"paypal-api-username"  flagDesc:"PayPal API username"  validate:"required"`
	APIPassword  string `env:"PAYPAL_API_PASSWORD"  flag:"paypal-api-password"  flagDesc:"PayPal API password"  validate:"required"`
	APISignature string `env:"PAYPAL_API_SIGNATURE" flag:"paypal-api-signature" flagDesc:"PayPal API signature" validate:"required"`
	APISubject   string `env:"PAYPAL_API_SUBJECT"   flag:"paypal-api-subject"   flagDesc:"Third-party subject account"`
	APIVersion   string `env:"PAYPAL_API_VERSION"   flag:"paypal-api-version"   flagDesc:"NVP API version"`
	Sandbox      bool   `env:"PAYPAL_SANDBOX"       flag:"paypal-sandbox"       flagDesc:"Use the PayPal sandbox endpoints"`
}

const (
	productionEndpoint = "https://api-3t.paypal.com/nvp"
	sandboxEndpoint    = "https://api-3t.sandbox.paypal.com/nvp"

	productionWebscrEndpoint = "https://www.paypal.com/cgi-bin/webscr"
	sandboxWebscrEndpoint    = "https://www.sandbox.paypal.com/cgi-bin/webscr"
)

// DefaultConfig returns a pointer to a Config instance that has been
// populated with default values.
func DefaultConfig() *Config {
	return &Config{
		APIVersion: "88.0",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the credential triple is present. It is called before
// any network activity so misconfiguration fails fast.
func (c Config) Validate() error {
	v := validator.New()
	return v.Struct(c)
}

// Endpoint returns the NVP API endpoint for the configured environment.
func (c Config) Endpoint() string {
	if c.Sandbox {
		return sandboxEndpoint
	}
	return productionEndpoint
}

// WebscrEndpoint returns the browser-facing webscr endpoint, used for both
// Express Checkout redirects and IPN verification.
func (c Config) WebscrEndpoint() string {
	if c.Sandbox {
		return sandboxWebscrEndpoint
	}
	return productionWebscrEndpoint
}

// IPNEndpoint returns the notification verification endpoint.
func (c Config) IPNEndpoint() string {
	return c.WebscrEndpoint() + "?cmd=_notify-validate"
}

// RedirectURL returns the URL a payer should be sent to after
// SetExpressCheckout has issued the given token.
func (c Config) RedirectURL(token string) string {
	return c.WebscrEndpoint() + "?cmd=_express-checkout&token=" + token
}

// Version returns the API version, falling back to the library default when
// the config was constructed directly without one.
func (c Config) Version() string {
	if c.APIVersion == "" {
		return "88.0"
	}
	return c.APIVersion
}
