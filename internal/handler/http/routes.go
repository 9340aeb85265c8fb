package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the API router.
//
// Every route is mounted under /v1. Only session creation is reachable
// without a session cookie; all other endpoints sit behind the
// authentication gate. The user collection deliberately has no DELETE;
// accounts are disabled via PATCH instead.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(h.withSession)

	router.Route("/v1", func(r chi.Router) {
		// login exchanges credentials for a session, so it is the one
		// route outside the gate
		r.Post("/session", h.createSession)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Route("/opportunity", func(r chi.Router) {
				r.Get("/", h.listOpportunities)
				r.Post("/", h.createOpportunity)
				r.Get("/{id}", h.getOpportunity)
				r.Patch("/{id}", h.updateOpportunity)
				r.Put("/{id}", h.updateOpportunity)
				r.Delete("/{id}", h.deleteOpportunity)

				r.Post("/{id}/provider/{providerID}", h.linkProvider)
				r.Delete("/{id}/provider/{providerID}", h.unlinkProvider)
			})

			r.Route("/provider", func(r chi.Router) {
				r.Get("/", h.listProviders)
				r.Post("/", h.createProvider)
				r.Get("/{id}", h.getProvider)
				r.Patch("/{id}", h.updateProvider)
				r.Put("/{id}", h.updateProvider)
				r.Delete("/{id}", h.deleteProvider)
			})

			r.Route("/user", func(r chi.Router) {
				r.Get("/", h.listUsers)
				r.Post("/", h.createUser)
				r.Get("/{id}", h.getUser)
				r.Patch("/{id}", h.updateUser)
			})

			r.Post("/association", h.createAssociation)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
