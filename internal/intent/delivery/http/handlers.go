package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intent-classifier/internal/intent"
	"intent-classifier/pkg/response"
)

// StageBulk godoc
// @Summary     Stage a bulk upload
// @Description Normalizes and validates uploaded rows as a complete replacement set and stages them. Inspect the report, then activate.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       body body stageBulkReq true "Rows in upload column order"
// @Success     200 {object} stageBulkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Upload rejected with a validation report"
// @Router      /api/v1/intents/bulk [POST]
func (h *handler) StageBulk(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStageBulkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.StageBulk(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.StageBulk: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if !output.Report.Valid {
		response.ValidationError(c, intent.ErrRejectedUpload, newReportResp(output.Report))
		return
	}

	response.OK(c, h.newStageBulkResp(output))
}

// ActivateStaged godoc
// @Summary     Activate the staged set
// @Description Atomically publishes the staged set as the new active registry version.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Success     200 {object} activateResp
// @Failure     409 {object} response.Resp "Nothing staged or staging is stale"
// @Router      /api/v1/intents/bulk/activate [POST]
func (h *handler) ActivateStaged(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ActivateStaged(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ActivateStaged: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newActivateResp(output))
}

// ApplySingle godoc
// @Summary     Add or update one intent
// @Description Merges one record into the active set, revalidates the whole, and publishes a new version. Re-submitting an intent_id updates it in place.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       body body recordReq true "Intent record"
// @Success     200 {object} applySingleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Lost a concurrent update race"
// @Failure     422 {object} response.Resp "Record rejected with a validation report"
// @Router      /api/v1/intents [POST]
func (h *handler) ApplySingle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApplySingleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ApplySingle(ctx, intent.ApplySingleInput{Record: req.toRecord()})
	if err != nil {
		h.l.Errorf(ctx, "uc.ApplySingle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if !output.Report.Valid {
		response.ValidationError(c, intent.ErrRejectedRecord, newReportResp(output.Report))
		return
	}

	response.OK(c, h.newApplySingleResp(output))
}

// ValidateOnly godoc
// @Summary     Dry-run validation
// @Description Validates the submitted records, or the active set when the body is empty. Never stages or publishes; the report is the result even when invalid.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       body body validateReq false "Records to validate"
// @Success     200 {object} validateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intents/validate [POST]
func (h *handler) ValidateOnly(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processValidateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ValidateOnly(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ValidateOnly: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newValidateResp(output))
}

// ImportSheets godoc
// @Summary     Import intents from Google Sheets
// @Description Reads a spreadsheet range and stages it exactly like a bulk upload.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       body body importSheetsReq true "Spreadsheet id and A1 range"
// @Success     200 {object} stageBulkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Sheet rejected with a validation report"
// @Failure     502 {object} response.Resp "Sheets API unreachable"
// @Router      /api/v1/intents/import/sheets [POST]
func (h *handler) ImportSheets(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportSheetsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ImportSheets(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportSheets: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if !output.Report.Valid {
		response.ValidationError(c, intent.ErrRejectedUpload, newReportResp(output.Report))
		return
	}

	response.OK(c, h.newStageBulkResp(output))
}

// List godoc
// @Summary     List active intents
// @Description Returns the active records with per-category counts, optionally filtered by category.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       category query string false "Filter by category (case-insensitive)"
// @Success     200 {object} listResp
// @Failure     503 {object} response.Resp "Registry not ready"
// @Router      /api/v1/intents [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get one intent
// @Description Returns a single active record by its intent id.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       id path string true "Intent ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Registry not ready"
// @Router      /api/v1/intents/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}
