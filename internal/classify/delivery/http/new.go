package http

import (
	"github.com/gin-gonic/gin"

	"intent-classifier/internal/classify"
	"intent-classifier/pkg/log"
)

// Handler is the public interface for the classify HTTP delivery layer.
type Handler interface {
	Classify(c *gin.Context)
	ClassifySegments(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc classify.UseCase
}

// New creates a new HTTP handler for the classify domain.
func New(l log.Logger, uc classify.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
