package api_router

import (
	"time"

	"github.com/haierkeys/simple-notes-service/internal/app"
	pkgapp "github.com/haierkeys/simple-notes-service/pkg/app"
	"github.com/haierkeys/simple-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles the health check route.
type HealthHandler struct {
	*Handler
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler instance.
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{
		Handler:   NewHandler(a),
		startTime: time.Now(),
	}
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status  string  `json:"status"`
	Version string  `json:"version"`
	Uptime  float64 `json:"uptime"` // seconds
	Notes   int     `json:"notes"`  // stored note count
}

// Check reports service health.
// GET /api/health -> 200.
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:  "healthy",
		Version: h.App.Version().Version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Notes:   h.App.Store.Count(),
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}
