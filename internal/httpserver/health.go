package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "intent-classifier/pkg/errors"
	"intent-classifier/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Intent Classifier API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "intent-classifier"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	body := gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
	if snap := srv.registry.Current(); snap != nil {
		body["snapshot_version"] = snap.Version
		body["intent_count"] = snap.Count()
	}
	response.OK(c, body)
}

// readyCheck reports ready only once a registry snapshot is active, so load
// balancers hold traffic until bootstrap has published one.
// @Summary Readiness Check
// @Description Check if the API is ready to classify traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "No active registry snapshot yet"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	snap := srv.registry.Current()
	if snap == nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "registry has no active snapshot yet"), nil)
		return
	}

	response.OK(c, gin.H{
		"status":           "ready",
		"message":          HealthMessage,
		"version":          HealthVersion,
		"service":          ServiceName,
		"snapshot_version": snap.Version,
		"intent_count":     snap.Count(),
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
