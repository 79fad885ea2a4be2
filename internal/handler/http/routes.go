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

	// routes without authorization; the build version discloses nothing
	// about any account, so clients may fetch it before logging in
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// every user-data operation requires a valid session; the target user
	// is always the session owner, never a client-supplied id
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user", h.getUser)
		r.Get("/api/points", h.getPoints)
		r.Post("/api/points", h.awardPoints)
		r.Post("/api/update-user", h.updateUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
