package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	pingTimeout = 2 * time.Second
	apiVersion  = "1.0.0"
)

// HealthHandler reports on the database and, when configured, Redis
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler creates a new health handler. redisClient may be nil when
// Redis is disabled.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version" example:"1.0.0"`
	Services  map[string]string `json:"services"`
}

// CheckResponse is returned by the readiness and liveness checks
type CheckResponse struct {
	OK        bool              `json:"ok"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Database and Redis connectivity. Redis only backs the intake rate limiter, so a Redis failure degrades but does not fail the check.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Database unreachable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   apiVersion,
		Services:  map[string]string{"database": "healthy"},
	}

	if err := h.pingDatabase(c); err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
	}
	if h.redis != nil {
		response.Services["redis"] = "healthy"
		if err := h.pingRedis(c); err != nil {
			response.Services["redis"] = "degraded: " + err.Error()
		}
	}

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}

// Ready reports whether leads can be stored
// @Summary Readiness check
// @Description Ready once the database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} CheckResponse "Application is ready"
// @Failure 503 {object} CheckResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	response := CheckResponse{
		OK:        true,
		Timestamp: time.Now(),
		Services:  map[string]string{"database": "ready"},
	}
	if err := h.pingDatabase(c); err != nil {
		response.OK = false
		response.Services["database"] = "not ready: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Live answers as long as the process serves HTTP
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} CheckResponse "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, CheckResponse{OK: true, Timestamp: time.Now()})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func (h *HealthHandler) pingRedis(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return h.redis.Ping(ctx).Err()
}
