package auth

import "net/http"

// Credential is the API key a caller supplied. Its value is never empty.
type Credential struct {
	value string
}

// NewCredential wraps value as a Credential. It reports false for an empty value.
func NewCredential(value string) (Credential, bool) {
	if value == "" {
		return Credential{}, false
	}
	return Credential{value: value}, true
}

// Value returns the raw API key.
func (c Credential) Value() string {
	return c.value
}

// Decision is the verdict a guard reached for a request.
type Decision int

const (
	// Admitted means a credential was found and the handler may run.
	Admitted Decision = iota

	// Rejected means the request stops here with an error response.
	Rejected
)

func (d Decision) String() string {
	switch d {
	case Admitted:
		return "admitted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome carries the result of evaluating a guard against one request.
type Outcome struct {
	Decision   Decision
	Credential Credential // populated only when Decision == Admitted
	Err        *AuthError // populated only when Decision == Rejected
	Status     int        // HTTP status to reply with when Decision == Rejected
}

// Admit builds an Admitted outcome. A zero Credential, which can only be
// built outside NewCredential, is rejected as missing.
func Admit(cred Credential) Outcome {
	if cred.value == "" {
		return Reject(ErrMissingCredential, http.StatusUnauthorized)
	}
	return Outcome{Decision: Admitted, Credential: cred}
}

// Reject builds a Rejected outcome. A zero status defaults to 401.
func Reject(err *AuthError, status int) Outcome {
	if status == 0 {
		status = http.StatusUnauthorized
	}
	return Outcome{Decision: Rejected, Err: err, Status: status}
}

// Admitted reports whether the request may proceed to its handler.
func (o Outcome) Admitted() bool {
	return o.Decision == Admitted
}
