package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind the session-token middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/clients", h.createClient)
		r.Get("/api/clients", h.listClients)
		r.Delete("/api/clients/{id}", h.deleteClient)
	})

	return router
}
