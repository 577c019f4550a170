package transformers

import (
	"fmt"
	"sort"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-express.go/models"
)

// LogWarning receives one message per response parameter that no extraction
// rule consumed. It can be swapped out to capture or silence the warnings;
// the default sends them to the structured log. Unknown parameters are never
// an error, new provider fields must not break parsing.
var LogWarning = func(message string) {
	log.Info(message, log.Data{"severity": "warning"})
}

// warnIgnored reports every parameter left in attrs after extraction, in
// stable key order.
func warnIgnored(typeName string, attrs models.Params) {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		LogWarning(fmt.Sprintf("Ignored Parameter (%s): %s=%s", typeName, key, attrs[key]))
	}
}

// pop removes key from attrs and returns its value, or "" when absent.
func pop(attrs models.Params, key string) string {
	value := attrs[key]
	delete(attrs, key)
	return value
}
