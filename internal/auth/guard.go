package auth

import "net/http"

// Authenticator decides whether a request may reach a protected handler.
type Authenticator interface {
	Authenticate(r *http.Request) Outcome
}

// AuthenticatorFunc adapts a plain function to Authenticator.
type AuthenticatorFunc func(r *http.Request) Outcome

func (f AuthenticatorFunc) Authenticate(r *http.Request) Outcome {
	return f(r)
}

// APIKeyGuard admits any request that carries a non-empty API key header.
// The key is not checked against any store.
type APIKeyGuard struct {
	extractor HeaderExtractor
}

// NewAPIKeyGuard creates a guard reading the X-Api-Key header
func NewAPIKeyGuard() *APIKeyGuard {
	return &APIKeyGuard{extractor: HeaderExtractor{Name: APIKeyHeader}}
}

// Authenticate only inspects headers and holds no state between calls.
func (g *APIKeyGuard) Authenticate(r *http.Request) Outcome {
	value, ok := g.extractor.Extract(r)
	if !ok {
		return Reject(ErrMissingCredential, http.StatusUnauthorized)
	}

	cred, ok := NewCredential(value)
	if !ok {
		return Reject(ErrMissingCredential, http.StatusUnauthorized)
	}
	return Admit(cred)
}
