package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// devOrigin is the frontend origin allowed in dev mode.
const devOrigin = "http://localhost:3000"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		// a single configured origin; request origins are never reflected
		AllowedOrigins:   []string{h.allowedOrigin()},
		AllowedMethods:   []string{http.MethodOptions, http.MethodPost, http.MethodGet},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/verify", h.verify)
		r.Post("/auth/logout", h.logout)
	})

	router.Post("/qrcheckin/checkin", h.checkin)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// allowedOrigin resolves the CORS origin profile: localhost frontend in dev
// mode, the configured frontend URL in production.
func (h *Handler) allowedOrigin() string {
	if h.web.DevMode {
		return devOrigin
	}

	return h.web.FrontendURL
}
