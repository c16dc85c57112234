package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tarunm/keygate/config"
	"github.com/tarunm/keygate/internal/auth"
	"github.com/tarunm/keygate/internal/handlers"
	"github.com/tarunm/keygate/internal/observability"
)

// NewRouter wires every route the service exposes.
func NewRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	restHandler := handlers.NewRESTHandler()
	guard := auth.NewAPIKeyGuard()

	b := NewBuilder(globalMiddleware(cfg, gin.DefaultWriter)...).
		Public(http.MethodGet, "/", restHandler.Index).
		Protected(http.MethodGet, "/sensitive", guard, restHandler.Sensitive).
		Public(http.MethodGet, "/health", restHandler.GetHealth)

	if cfg.MetricsEnabled {
		b.Public(http.MethodGet, "/metrics", gin.WrapH(observability.Handler()))
	}

	return b.Build()
}

// globalMiddleware returns the engine-wide chain, outermost first. Metrics
// wraps Recovery so that recovered panics are counted as 5xx.
func globalMiddleware(cfg *config.Config, accessLog io.Writer) []gin.HandlerFunc {
	var middleware []gin.HandlerFunc
	if cfg.AccessLog {
		middleware = append(middleware, AccessLogger(accessLog))
	}
	return append(middleware,
		RequestID(),
		observability.Middleware(),
		gin.Recovery(),
	)
}

// NewHTTPServer builds the HTTP server with timeouts from config
func NewHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
