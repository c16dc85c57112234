package auth

import "net/http"

// APIKeyHeader is the request header carrying the caller's API key.
const APIKeyHeader = "X-Api-Key"

// HeaderExtractor reads the first value of a named request header.
type HeaderExtractor struct {
	Name string
}

// Extract returns the first value of the header. It reports false when the
// header is missing, carries no values, or its first value is empty.
// Later occurrences of a repeated header are ignored.
func (e HeaderExtractor) Extract(r *http.Request) (string, bool) {
	// Values canonicalizes the name, so lookup is case-insensitive.
	values := r.Header.Values(e.Name)
	if len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}
