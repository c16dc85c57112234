package auth

import "errors"

// Error codes for authentication
const (
	ErrCodeMissingAPIKey = "MISSING_API_KEY"
)

// Error messages
const (
	ErrMsgMissingAPIKey = "An API key is required to access this method"
)

// AuthError is a user-facing rejection reason. Only Message reaches the client.
type AuthError struct {
	Code    string
	Message string
}

// ErrMissingCredential is returned when the API key header is absent or empty.
var ErrMissingCredential = &AuthError{
	Code:    ErrCodeMissingAPIKey,
	Message: ErrMsgMissingAPIKey,
}

func (e *AuthError) Error() string {
	return e.Message
}

// Is reports whether target is an *AuthError with the same code.
func (e *AuthError) Is(target error) bool {
	var t *AuthError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}
