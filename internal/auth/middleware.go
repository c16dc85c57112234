package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tarunm/keygate/internal/models"
	"github.com/tarunm/keygate/internal/observability"
)

// CredentialHandlerFunc is a gin handler that receives the admitted credential.
type CredentialHandlerFunc func(c *gin.Context, cred Credential)

// Middleware creates a Gin middleware that runs guard before the route handler.
// A rejected request is aborted with the guard's status and a JSON error body.
func Middleware(guard Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		outcome := guard.Authenticate(c.Request)
		if outcome.Admitted() && outcome.Credential.Value() == "" {
			outcome = Reject(ErrMissingCredential, http.StatusUnauthorized)
		}
		observability.AuthOutcomesTotal.WithLabelValues(outcome.Decision.String()).Inc()

		if !outcome.Admitted() {
			abortUnauthorized(c, outcome.Status, outcome.Err)
			return
		}

		c.Request = c.Request.WithContext(SetCredential(c.Request.Context(), outcome.Credential))
		c.Next()
	}
}

// WithCredential adapts h into a gin handler. Requests that reach it without
// an admitted credential get the same 401 a guard would send.
func WithCredential(h CredentialHandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		cred, ok := CredentialFromContext(c.Request.Context())
		if !ok {
			abortUnauthorized(c, http.StatusUnauthorized, ErrMissingCredential)
			return
		}
		h(c, cred)
	}
}

func abortUnauthorized(c *gin.Context, status int, err *AuthError) {
	if err == nil {
		err = ErrMissingCredential
	}
	if status == 0 {
		status = http.StatusUnauthorized
	}
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: err.Message})
}
