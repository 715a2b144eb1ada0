package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "wrapads/docs"
)

func redirectToSwaggerIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
}

// RegisterSwaggerRoutes serves the console API docs under /swagger.
func RegisterSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", redirectToSwaggerIndex)
	r.Get("/swagger/", redirectToSwaggerIndex)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(false),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
		httpSwagger.PersistAuthorization(true),
	))
}
