package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"wrapads/internal/config"
	"wrapads/internal/console"
	"wrapads/internal/handlers"
	"wrapads/internal/middleware"
	"wrapads/internal/repository"
	"wrapads/internal/services"
	"wrapads/internal/workflow"
)

// Marketplace is everything the consoles need from the marketplace API.
type Marketplace interface {
	console.AuthAPI
	console.AdvertiserAPI
	console.DriverAPI
	console.AdminAPI
}

var _ Marketplace = (*services.MarketplaceClient)(nil)

func SetupRoutes(db *sql.DB, cfg *config.Config, api Marketplace, logger *zap.Logger) *chi.Mux {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	base := handlers.NewBaseHandler(db, cfg)
	r.Get("/", base.Root)
	r.Get("/health", base.Health)
	r.Handle("/metrics", promhttp.Handler())
	RegisterSwaggerRoutes(r)

	// One tracker for every console so a resource's in-flight marker is
	// shared across roles.
	deps := console.Deps{
		Audit:   repository.NewAuditRepository(db),
		Tracker: workflow.NewTracker(),
		Logger:  logger,
	}
	auth := middleware.SessionAuth(cfg.JWTSecret, logger)

	r.Route("/api/v1", func(r chi.Router) {
		RegisterMetaRoutes(r)
		RegisterAuthRoutes(r, console.NewAuth(api, cfg.JWTSecret, deps), auth, logger)
		RegisterAdvertiserRoutes(r, console.NewAdvertiser(api, deps), auth, logger)
		RegisterDriverRoutes(r, console.NewDriver(api, deps), auth, logger)
		RegisterAdminRoutes(r, console.NewAdmin(api, deps), auth, logger)
	})

	return r
}
