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

func RegisterAdvertiserRoutes(router chi.Router, c *console.Advertiser, sessionAuth func(http.Handler) http.Handler, logger *zap.Logger) {
	advertiserHandler := handlers.NewAdvertiserHandler(c, logger)

	router.Route("/advertiser", func(r chi.Router) {
		r.Use(sessionAuth)
		r.Use(middleware.RequireRole(models.UserTypeAdvertiser))

		r.Get("/profile", advertiserHandler.GetProfile)
		r.Post("/profile", advertiserHandler.CreateProfile)
		r.Put("/profile", advertiserHandler.UpdateProfile)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", advertiserHandler.ListCampaigns)
			r.Post("/", advertiserHandler.CreateCampaign)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", advertiserHandler.GetCampaign)
				r.Put("/", advertiserHandler.UpdateCampaign)
				r.Delete("/", advertiserHandler.DeleteCampaign)
				r.Patch("/status", advertiserHandler.ChangeStatus)
				r.Get("/applications", advertiserHandler.ListApplications)
				r.Post("/applications/{driverId}/approve", advertiserHandler.ApproveApplication)
				r.Post("/applications/{driverId}/reject", advertiserHandler.RejectApplication)
			})
		})
	})
}
