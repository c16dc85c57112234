package server

import (
	"github.com/gin-gonic/gin"
	"github.com/tarunm/keygate/internal/auth"
)

// Builder collects route registrations and produces a gin engine.
// Routes are only ever bound through explicit calls at startup.
type Builder struct {
	engine *gin.Engine
}

// NewBuilder creates a builder over a fresh engine with the given global middleware.
func NewBuilder(middleware ...gin.HandlerFunc) *Builder {
	engine := gin.New()
	engine.Use(middleware...)
	return &Builder{engine: engine}
}

// Public registers a route that needs no credential.
func (b *Builder) Public(method, path string, handler gin.HandlerFunc) *Builder {
	b.engine.Handle(method, path, handler)
	return b
}

// Protected registers a route whose handler runs only after guard admits
// the request. The admitted credential is passed to handler.
func (b *Builder) Protected(method, path string, guard auth.Authenticator, handler auth.CredentialHandlerFunc) *Builder {
	b.engine.Handle(method, path, auth.Middleware(guard), auth.WithCredential(handler))
	return b
}

// Build returns the configured engine.
func (b *Builder) Build() *gin.Engine {
	return b.engine
}
