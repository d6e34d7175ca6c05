// Package health exposes liveness and readiness probes.
package health

import (
	"net/http"
	"runtime"
	"time"

	"smartcart/internal/core/deals"
	"smartcart/internal/infrastructure/config"
	"smartcart/internal/infrastructure/storage"

	"github.com/gin-gonic/gin"
)

// Handler serves health probes.
type Handler struct {
	cfg      *config.Config
	db       *storage.DB
	dealRepo *deals.Repository
}

// NewHandler creates a health handler.
func NewHandler(cfg *config.Config, db *storage.DB, dealRepo *deals.Repository) *Handler {
	return &Handler{cfg: cfg, db: db, dealRepo: dealRepo}
}

// HealthResponse is the full health report.
type HealthResponse struct {
	Status       string                 `json:"status"`
	Timestamp    time.Time              `json:"timestamp"`
	Version      string                 `json:"version"`
	Runtime      map[string]interface{} `json:"runtime"`
	Dependencies map[string]string      `json:"dependencies"`
}

// HandleHealth reports overall status plus runtime and dependency
// details.
func (h *Handler) HandleHealth(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	ctx := c.Request.Context()
	dependencies := map[string]string{
		"database":  "ok",
		"dealIndex": "ok",
	}
	status := "ok"
	if err := h.db.SQL.PingContext(ctx); err != nil {
		dependencies["database"] = "unavailable"
		status = "degraded"
	}
	if err := h.dealRepo.Ping(ctx); err != nil {
		dependencies["dealIndex"] = "unavailable"
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   h.cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
		Dependencies: dependencies,
	})
}

// HandleReady reports whether both stores answer; optimize calls fail
// closed without them.
func (h *Handler) HandleReady(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.db.SQL.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "database"})
		return
	}
	if err := h.dealRepo.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "deal index"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// HandleLive reports process liveness.
func (h *Handler) HandleLive(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
