package routes

import (
	"github.com/go-chi/chi/v5"

	"wrapads/internal/handlers"
)

func RegisterMetaRoutes(router chi.Router) {
	metaHandler := handlers.NewMetaHandler()

	router.Get("/campaigns/transitions", metaHandler.Transitions)
	router.Get("/pricing/quote", metaHandler.Quote)
}
