package http

import (
	"github.com/tapteam/tap-server/internal/config"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/service"
)

type Handler struct {
	services *service.Services

	// sessionCookie is the name of the cookie carrying the session token.
	sessionCookie string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		sessionCookie: cfg.SessionCookie,
		logger:        logger,
	}
}
