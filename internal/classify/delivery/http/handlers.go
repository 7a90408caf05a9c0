package http

import (
	"github.com/gin-gonic/gin"

	"intent-classifier/pkg/response"
)

// Classify godoc
// @Summary     Classify an utterance
// @Description Scores the utterance against the active registry snapshot and returns a firm match, a disambiguation prompt, or a no-match decision.
// @Tags        Classify
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Utterance to classify"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Registry not ready"
// @Router      /api/v1/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClassifyResp(req.Utterance, output))
}

// ClassifySegments godoc
// @Summary     Classify a compound utterance
// @Description Splits the utterance into independent parts ("refill my meds and also check my claim") and classifies each part against the same snapshot.
// @Tags        Classify
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Utterance to split and classify"
// @Success     200 {object} classifySegmentsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Registry not ready"
// @Router      /api/v1/classify/segments [POST]
func (h *handler) ClassifySegments(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ClassifySegments(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ClassifySegments: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClassifySegmentsResp(req.Utterance, output))
}
