package http

import (
	"github.com/gin-gonic/gin"
)

// processStageBulkReq binds the bulk upload request body.
func (h *handler) processStageBulkReq(c *gin.Context) (stageBulkReq, error) {
	var req stageBulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processApplySingleReq binds one record; field-level validation happens in
// the engine so the caller gets a structured report.
func (h *handler) processApplySingleReq(c *gin.Context) (recordReq, error) {
	var req recordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processValidateReq binds the dry-run request body. An empty body means
// validate the active set.
func (h *handler) processValidateReq(c *gin.Context) (validateReq, error) {
	var req validateReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processImportSheetsReq binds the sheets import request body.
func (h *handler) processImportSheetsReq(c *gin.Context) (importSheetsReq, error) {
	var req importSheetsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
