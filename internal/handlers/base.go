// internal/handlers/base.go
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"wrapads/internal/config"
)

type BaseHandler struct {
	DB  *sql.DB
	Cfg *config.Config
}

func NewBaseHandler(db *sql.DB, cfg *config.Config) *BaseHandler {
	return &BaseHandler{
		DB:  db,
		Cfg: cfg,
	}
}

// Root handles GET /
func (h *BaseHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "wrapads console API",
		"environment": h.Cfg.Environment,
		"docs":        "/swagger/index.html",
	})
}

type dbHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Health handles GET /health. The audit database is the only local
// dependency; the marketplace API is not called.
// @Tags Meta
// @Summary Liveness and database health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *BaseHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	db := dbHealth{Status: "ok"}
	if err := h.DB.PingContext(ctx); err != nil {
		status = http.StatusServiceUnavailable
		db = dbHealth{Status: "down", Error: err.Error()}
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	writeJSON(w, status, map[string]any{"status": overall, "db": db})
}
