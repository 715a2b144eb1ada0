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

func RegisterDriverRoutes(router chi.Router, c *console.Driver, sessionAuth func(http.Handler) http.Handler, logger *zap.Logger) {
	driverHandler := handlers.NewDriverHandler(c, logger)

	router.Route("/driver", func(r chi.Router) {
		r.Use(sessionAuth)
		r.Use(middleware.RequireRole(models.UserTypeDriver))

		r.Get("/profile", driverHandler.GetProfile)
		r.Post("/profile", driverHandler.CreateProfile)
		r.Put("/profile", driverHandler.UpdateProfile)

		r.Get("/vehicles", driverHandler.ListVehicles)
		r.Post("/vehicles", driverHandler.AddVehicle)
		r.Put("/vehicles/{id}", driverHandler.UpdateVehicle)
		r.Delete("/vehicles/{id}", driverHandler.DeleteVehicle)

		r.Get("/campaigns", driverHandler.BrowseCampaigns)
		r.Post("/campaigns/{id}/apply", driverHandler.Apply)
		r.Delete("/campaigns/{id}/apply", driverHandler.CancelApplication)

		r.Get("/applications", driverHandler.ListApplications)
	})
}
