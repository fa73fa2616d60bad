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

	router.Get("/metrics", h.metrics.Handler().ServeHTTP)
	router.Get("/images/{name}", h.serveImage)

	router.Group(func(r chi.Router) {
		r.Use(h.withAPIKey)

		r.Get("/api/version", h.getServerVersion)

		r.With(withGZip).Get("/api/User/GetAll", h.listContacts)
		r.Post("/api/User/UploadImage", h.uploadImage)

		r.With(withGZip).Post("/api/User", h.createContact)
		r.With(withGZip).Get("/api/User/{id}", h.getContact)
		r.With(withGZip).Put("/api/User/{id}", h.updateContact)
		r.Delete("/api/User/{id}", h.deleteContact)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
