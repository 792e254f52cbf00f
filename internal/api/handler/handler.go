// Package handler provides HTTP handlers for all API endpoints.
// Balancing runs in-process against the configured roster source; responses
// for seeded runs are cached with ETags.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/rosterbalance/internal/api/respond"
	"github.com/albapepper/rosterbalance/internal/cache"
	"github.com/albapepper/rosterbalance/internal/config"
	"github.com/albapepper/rosterbalance/internal/db"
	"github.com/albapepper/rosterbalance/internal/metrics"
	"github.com/albapepper/rosterbalance/internal/roster"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	source  roster.Source
	pool    *db.Pool // nil when the roster comes from a file
	cache   *cache.Cache
	cfg     *config.Config
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// Deps groups the Handler dependencies.
type Deps struct {
	Source  roster.Source
	Pool    *db.Pool
	Cache   *cache.Cache
	Config  *config.Config
	Metrics *metrics.Recorder
	Logger  *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		source:  d.Source,
		pool:    d.Pool,
		cache:   d.Cache,
		cfg:     d.Config,
		metrics: d.Metrics,
		logger:  logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	source := "database"
	if !h.cfg.UseDatabase() {
		source = "file"
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":          "Roster Balance API",
		"version":       "1.0.0",
		"status":        "running",
		"docs":          "/docs",
		"roster_source": source,
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity. Reports "not_configured" when the roster is file-backed.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.pool == nil {
		respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"database":  "not_configured",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	if err := h.pool.HealthCheck(r.Context()); err != nil {
		h.logger.Warn("Database health check failed", "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
