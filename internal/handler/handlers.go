// Package handler aggregates the transport-level handlers of the
// application.
package handler

import (
	"github.com/tapteam/tap-server/internal/config"
	"github.com/tapteam/tap-server/internal/handler/http"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/service"
)

// Handlers bundles every transport handler the server can mount.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers wires the transport handlers to the service layer.
func NewHandlers(services *service.Services, cfg config.App, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
}
