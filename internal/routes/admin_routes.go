package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"wrapads/internal/console"
	"wrapads/internal/handlers"
	"wrapads/internal/middleware"
	"wrapads/internal/models"
)

func RegisterAdminRoutes(router chi.Router, c *console.Admin, sessionAuth func(http.Handler) http.Handler, logger *zap.Logger) {
	adminHandler := handlers.NewAdminHandler(c, logger)

	router.Route("/admin", func(r chi.Router) {
		r.Use(sessionAuth)
		r.Use(middleware.RequireRole(models.UserTypeAdmin))

		r.Get("/vehicles", adminHandler.ListVehicles)
		r.Patch("/vehicles/{id}/verify", adminHandler.VerifyVehicle)

		r.Get("/drivers", adminHandler.ListDrivers)
		r.Get("/drivers/{id}", adminHandler.GetDriver)
		r.Patch("/drivers/{id}/verify", adminHandler.VerifyDriver)

		r.Get("/advertisers", adminHandler.ListAdvertisers)
		r.Patch("/advertisers/{id}/verify", adminHandler.VerifyAdvertiser)

		r.Get("/campaigns", adminHandler.ListCampaigns)
		r.Get("/audit", adminHandler.ListAudit)
	})
}
