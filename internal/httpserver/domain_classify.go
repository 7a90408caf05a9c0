package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	classifyHTTP "intent-classifier/internal/classify/delivery/http"
	classifyUC "intent-classifier/internal/classify/usecase"
	"intent-classifier/internal/middleware"
)

// setupClassifyDomain initializes the classification domain and registers its
// routes. Classification endpoints carry the rate limiter; admin endpoints do
// not.
func (srv HTTPServer) setupClassifyDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := classifyUC.New(srv.l, srv.engine, srv.registry, classifyUC.Config{
		CacheSize: srv.cacheSize,
		CacheTTL:  srv.cacheTTL,
	})

	// 2. HTTP Handler
	h := classifyHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/classify
	classifyHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Classify domain registered")
	return nil
}
