package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	db        *pgxpool.Pool // nil when the in-memory backend is active
	startTime time.Time
}

func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// Root is the plaintext liveness message on GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "taskboard API is up")
}

// Liveness returns simple alive status (for k8s liveness probe)
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness checks the storage backend (for k8s readiness probe)
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := gin.H{"storage": "memory"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"checks": gin.H{"storage": "unhealthy: " + err.Error()},
			})
			return
		}
		checks["storage"] = "healthy"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
		"checks": checks,
	})
}
