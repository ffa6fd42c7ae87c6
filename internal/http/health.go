package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avoronov/quotekeeper/internal/sessions"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	sessions sessions.Store
	version  string
}

func NewHealthController(sessionStore sessions.Store, version string) *HealthController {
	return &HealthController{
		sessions: sessionStore,
		version:  version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Sessions backends that hold a connection expose Ping
	if h.sessions != nil {
		if pinger, ok := h.sessions.(interface{ Ping() error }); ok {
			if err := pinger.Ping(); err != nil {
				checks["sessions"] = "error: " + err.Error()
				status = "unhealthy"
			} else {
				checks["sessions"] = "ok"
			}
		} else {
			checks["sessions"] = "ok"
		}
	} else {
		checks["sessions"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
