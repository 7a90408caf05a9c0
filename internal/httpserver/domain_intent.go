package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	intentHTTP "intent-classifier/internal/intent/delivery/http"
	intentUC "intent-classifier/internal/intent/usecase"
)

// setupIntentDomain initializes the intent administration domain and
// registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupIntentDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase
	uc := intentUC.New(srv.l, srv.registry, srv.validator, srv.sheets)

	// 2. HTTP Handler
	h := intentHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/intents
	intentHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Intent domain registered")
	return nil
}
