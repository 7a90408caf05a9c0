package http

import (
	"github.com/gin-gonic/gin"
)

// processClassifyReq binds the classify request body. A blank utterance is
// accepted: it classifies to a no-match decision rather than a 400.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
