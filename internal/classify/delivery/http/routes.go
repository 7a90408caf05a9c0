package http

import (
	"github.com/gin-gonic/gin"

	"intent-classifier/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Classification
// endpoints carry the rate limiter; admin traffic does not go through here.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/classify", mw.RateLimit(), h.Classify)
	rg.POST("/classify/segments", mw.RateLimit(), h.ClassifySegments)
}
