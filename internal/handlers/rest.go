package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tarunm/keygate/internal/auth"
	"github.com/tarunm/keygate/internal/models"
)

const (
	indexGreeting     = "Hello, world!"
	sensitiveResponse = "Cool, cool cool"
)

// RESTHandler handles REST API endpoints
type RESTHandler struct {
	startTime time.Time
}

// NewRESTHandler creates a new REST handler
func NewRESTHandler() *RESTHandler {
	return &RESTHandler{startTime: time.Now()}
}

// Index handles GET /
func (h *RESTHandler) Index(c *gin.Context) {
	c.String(http.StatusOK, indexGreeting)
}

// Sensitive handles GET /sensitive. Only reachable with an admitted credential.
func (h *RESTHandler) Sensitive(c *gin.Context, _ auth.Credential) {
	c.JSON(http.StatusOK, models.SensitiveResponse{
		Response: sensitiveResponse,
	})
}

// GetHealth handles GET /health
func (h *RESTHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		UptimeSec: int(time.Since(h.startTime).Seconds()),
	})
}
