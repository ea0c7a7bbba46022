package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdesk.app/internal/ports"
)

// HealthResponse aggregates component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// health handles GET /api/health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: components}
	status := http.StatusOK
	for _, component := range components {
		if component.Status != "healthy" {
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(status, response)
}
