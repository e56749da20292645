package http

import (
	"github.com/DRSN-tech/sneakers-store/internal/usecase"
	"github.com/DRSN-tech/sneakers-store/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(reportUC usecase.ReportUC) {
	r.router.Use(middleware.Recoverer)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		itemHandler := NewItemHandler(reportUC, r.logger)
		registerItemRoutes(v1, itemHandler)
	})
}

func registerItemRoutes(router chi.Router, itemHandler *ItemHandler) {
	router.Route("/items", func(it chi.Router) {
		it.Get("/", itemHandler.listItems)
		it.Get("/sorted", itemHandler.sortedItems)
		it.Get("/popular", itemHandler.mostPopular)
	})
}
