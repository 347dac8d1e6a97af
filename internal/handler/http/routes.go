package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler[T]) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/systeminfo", h.getSystemInfo)
	router.Get("/modules", h.listModules)
	router.Get("/version", h.getVersion)

	return router
}
