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

	// endpoint metadata probed during discovery
	router.Get("/.well-known/fakts", h.wellKnown)

	// demand and claim exchanges
	router.Group(func(r chi.Router) {
		r.Post("/f/demand", h.demand)
		r.Post("/f/claim", h.claim)
	})

	// device-code flow
	router.Group(func(r chi.Router) {
		r.Post("/f/challenge", h.startChallenge)
		r.Post("/f/approve", h.approveChallenge)
		r.Post("/f/token", h.pollChallenge)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
