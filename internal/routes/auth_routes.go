package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"wrapads/internal/console"
	"wrapads/internal/handlers"
)

func RegisterAuthRoutes(router chi.Router, auth *console.Auth, sessionAuth func(http.Handler) http.Handler, logger *zap.Logger) {
	authHandler := handlers.NewAuthHandler(auth, logger)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/register", authHandler.Register)

		r.Group(func(r chi.Router) {
			r.Use(sessionAuth)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})
	})
}
