package handlers

import (
	"net/http"

	"github.com/companieshouse/paypal-express.go/config"
	"github.com/companieshouse/paypal-express.go/service"
	"github.com/gorilla/mux"
)

// IPNVerifier is an interface over the notification verification flow so the
// handler can be tested without the provider.
type IPNVerifier interface {
	Verify(rawBody []byte) error
}

var ipnVerifier IPNVerifier

// Register defines the route mappings for the IPN callback listener. Mount
// the router in the host service to receive provider notifications.
func Register(mainRouter *mux.Router, cfg config.Config) {
	ipnVerifier = &service.IPNService{Config: cfg}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")
	mainRouter.HandleFunc("/callbacks/payments/paypal/ipn", HandleIPNNotification).Methods("POST").Name("paypal-ipn")
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
