package http

import (
	"github.com/gin-gonic/gin"

	"intent-classifier/internal/intent"
	"intent-classifier/pkg/log"
)

// Handler is the public interface for the intent admin HTTP delivery layer.
type Handler interface {
	StageBulk(c *gin.Context)
	ActivateStaged(c *gin.Context)
	ApplySingle(c *gin.Context)
	ValidateOnly(c *gin.Context)
	ImportSheets(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc intent.UseCase
}

// New creates a new HTTP handler for the intent domain.
func New(l log.Logger, uc intent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
