package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

var errMissingParam = errors.New("missing parameter")

// pathParam returns the decoded value of a chi URL parameter.
// chi matches against RawPath when it is set, so only then is the value
// still escaped; otherwise it came from the already decoded Path.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// optionalString returns nil when the query parameter is absent or blank
func optionalString(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

// optionalFloat parses a numeric query parameter; absent or blank yields nil
func optionalFloat(r *http.Request, key string) (*float64, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// requiredString distinguishes "?key=" (empty value) from a missing key
func requiredString(r *http.Request, key string) (string, error) {
	query := r.URL.Query()
	if !query.Has(key) {
		return "", errMissingParam
	}
	return query.Get(key), nil
}
