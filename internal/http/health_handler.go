package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// HealthHandler responde el chequeo de liveness.
type HealthHandler struct {
	service string
	now     func() time.Time
}

func NewHealthHandler(serviceName string, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{service: serviceName, now: now}
}

// Health maneja GET /health y GET /api/health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   h.service,
		"timestamp": h.now().UTC().Format(isoMillis),
	})
}
