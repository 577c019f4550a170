package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-express.go/service"
)

// HandleIPNNotification receives an asynchronous payment notification from
// the provider and echoes it back for verification. The provider retries
// delivery until it sees a 2xx, so only a verified (or verifiably bogus)
// notification is acknowledged with 200.
func HandleIPNNotification(w http.ResponseWriter, req *http.Request) {
	rawBody, err := io.ReadAll(req.Body)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading IPN notification body: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = ipnVerifier.Verify(rawBody)
	if err == nil {
		log.InfoR(req, "IPN notification verified", log.Data{"body_length": len(rawBody)})
		w.WriteHeader(http.StatusOK)
		return
	}

	var apiErr *service.APIError
	if errors.As(err, &apiErr) {
		// The provider answered but did not recognise the notification.
		// Acknowledge with 200 so it stops retrying a notification it will
		// never verify, and log loudly for investigation.
		log.ErrorR(req, fmt.Errorf("IPN notification failed verification: [%v]", err))
		w.WriteHeader(http.StatusOK)
		return
	}

	log.ErrorR(req, fmt.Errorf("error verifying IPN notification: [%v]", err))
	w.WriteHeader(http.StatusBadGateway)
}
