// Package utils holds the name-value-pair wire format helpers shared by the
// service and handlers packages.
package utils

import (
	"net/url"
	"sort"
	"strings"
)

// ParseNVP splits a raw NVP response body into a flat params map. Pairs are
// separated by `&`, key and value by the first `=`, and both sides are
// URL-decoded. The first value wins when a key repeats, matching CGI.parse
// semantics on the legacy endpoint.
func ParseNVP(body string) map[string]string {
	params := make(map[string]string)
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			key = rawKey
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			value = rawValue
		}
		if _, seen := params[key]; seen {
			continue
		}
		params[key] = value
	}
	return params
}

// EncodeNVP form-encodes a params map for an NVP POST body. Keys are emitted
// in sorted order so request bodies are stable for logging and tests.
func EncodeNVP(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var body strings.Builder
	for i, key := range keys {
		if i > 0 {
			body.WriteByte('&')
		}
		body.WriteString(url.QueryEscape(key))
		body.WriteByte('=')
		body.WriteString(url.QueryEscape(params[key]))
	}
	return body.String()
}
