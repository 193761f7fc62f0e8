// Package http implements the HTTP transport layer of the check-in backend.
// It provides middleware, route handlers, the session cookie builder, and
// the CORS policy for the auth and QR check-in endpoints. Handlers parse
// and validate the request, delegate business rules to the service layer,
// and map sentinel errors to status codes and response bodies.
package http

import (
	"time"

	"github.com/eventgate/checkin/internal/config"
	"github.com/eventgate/checkin/internal/logger"
	"github.com/eventgate/checkin/internal/service"
)

type Handler struct {
	services *service.Services

	// web carries the browser-facing policy: allowed origin, cookie
	// domain, and the dev-mode switch.
	web config.Web

	// tokenTTL is the session token lifetime; the session cookie Max-Age
	// always matches it.
	tokenTTL time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, web config.Web, tokenTTL time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		web:      web,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}
