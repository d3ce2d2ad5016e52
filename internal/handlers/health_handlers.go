package handlers

import (
	"context"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// JobStatus reports the background jobs that are scheduled.
type JobStatus func() map[string]interface{}

// HealthHandlers handles health check and monitoring endpoints
type HealthHandlers struct {
	version   string
	startedAt time.Time
	checks    map[string]HealthCheck
	critical  map[string]bool
	jobs      JobStatus
}

// NewHealthHandlers creates a new health handlers instance
func NewHealthHandlers(version string) *HealthHandlers {
	return &HealthHandlers{
		version:   version,
		startedAt: time.Now(),
		checks:    make(map[string]HealthCheck),
		critical:  make(map[string]bool),
	}
}

// Register adds a named dependency probe. Critical probes gate readiness.
func (h *HealthHandlers) Register(name string, check HealthCheck, critical bool) {
	h.checks[name] = check
	h.critical[name] = critical
}

// SetJobStatus makes the background job summary part of GET /health.
func (h *HealthHandlers) SetJobStatus(status JobStatus) {
	h.jobs = status
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status     string                 `json:"status"`
	Timestamp  string                 `json:"timestamp"`
	Services   map[string]string      `json:"services"`
	Uptime     string                 `json:"uptime"`
	Version    string                 `json:"version"`
	Goroutines int                    `json:"goroutines"`
	Jobs       map[string]interface{} `json:"jobs,omitempty"`
}

// HealthCheck handles GET /health. Any failing probe degrades the status.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	results := h.run(c.Request().Context())
	health := &HealthStatus{
		Status:     "healthy",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Services:   make(map[string]string, len(results)),
		Uptime:     time.Since(h.startedAt).Round(time.Second).String(),
		Version:    h.version,
		Goroutines: runtime.NumGoroutine(),
	}
	if h.jobs != nil {
		health.Jobs = h.jobs()
	}
	for name, err := range results {
		if err != nil {
			health.Services[name] = "unhealthy"
			health.Status = "degraded"
			continue
		}
		health.Services[name] = "healthy"
	}
	return c.JSON(http.StatusOK, health)
}

// ReadinessCheck handles GET /health/ready
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	var failing []string
	for name, err := range h.run(c.Request().Context()) {
		if err != nil && h.critical[name] {
			failing = append(failing, name)
		}
	}
	if len(failing) > 0 {
		sort.Strings(failing)
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "not_ready",
			"failing": failing,
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}

// LivenessCheck handles GET /health/live
func (h *HealthHandlers) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandlers) run(ctx context.Context) map[string]error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	results := make(map[string]error, len(h.checks))
	for name, check := range h.checks {
		results[name] = check(ctx)
	}
	return results
}
