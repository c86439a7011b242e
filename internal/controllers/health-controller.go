package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports whether the service and its database are reachable
type HealthController struct {
	ping func() error
}

// NewHealthController creates a HealthController. ping is called on every check.
func NewHealthController(ping func() error) *HealthController {
	return &HealthController{ping: ping}
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service is running and the database answers
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthController) HealthCheck(c *gin.Context) {
	status, database, code := "healthy", "up", http.StatusOK
	if h.ping != nil {
		if err := h.ping(); err != nil {
			log.WithError(err).Error("Health check database ping failed")
			status, database, code = "unhealthy", "down", http.StatusServiceUnavailable
		}
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "custom-pizza-api",
	})
}
