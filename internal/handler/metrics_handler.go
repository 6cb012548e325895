package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/internal/service"
	"github.com/noah-isme/scholarship-portal-api/pkg/response"
)

// Pinger checks one dependency.
type Pinger func(ctx context.Context) error

// PublicConfig is the browser facing runtime configuration.
type PublicConfig struct {
	Env        string `json:"env"`
	APIBaseURL string `json:"api_base_url"`
	LoginURL   string `json:"login_url"`
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	checks  map[string]Pinger
	public  PublicConfig
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics *service.MetricsService, public PublicConfig, checks map[string]Pinger) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, checks: checks, public: public}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health godoc
// @Summary Liveness and dependency status
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *MetricsHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if check == nil {
			continue
		}
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}
	body := gin.H{"status": "ok", "dependencies": deps}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	if h.metrics != nil {
		body["cache_hit_ratio"] = h.metrics.CacheHitRatio()
	}
	c.JSON(status, body)
}

// Config godoc
// @Summary Runtime configuration for the browser
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /config [get]
func (h *MetricsHandler) Config(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.public, nil)
}
