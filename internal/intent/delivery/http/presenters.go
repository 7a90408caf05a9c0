package http

import (
	"time"

	"intent-classifier/internal/intent"
	"intent-classifier/internal/model"
)

// --- Request DTOs ---

type stageBulkReq struct {
	// Rows are typed cells in upload column order; a header row is allowed
	// and skipped.
	Rows      [][]any `json:"rows" binding:"required"`
	Delimiter string  `json:"delimiter"`
}

func (r stageBulkReq) validate() error { return nil }

func (r stageBulkReq) toInput() intent.StageBulkInput {
	return intent.StageBulkInput{
		Rows:      r.Rows,
		Delimiter: r.Delimiter,
	}
}

// recordReq carries one intent record. Field-level checks run in the
// validation engine so problems come back as a structured report, not as
// binding errors.
type recordReq struct {
	IntentID             string   `json:"intent_id"`
	IntentName           string   `json:"intent_name"`
	Category             string   `json:"category"`
	AgentRouting         string   `json:"agent_routing"`
	Priority             int      `json:"priority"`
	DescriptionShort     string   `json:"description_short"`
	DisambiguationPrompt string   `json:"disambiguation_prompt"`
	TrainingUtterances   []string `json:"training_utterances"`
	Keywords             []string `json:"keywords"`
	ConfidenceThreshold  float64  `json:"confidence_threshold"`
}

func (r recordReq) toRecord() model.IntentRecord {
	return model.IntentRecord{
		IntentID:             r.IntentID,
		IntentName:           r.IntentName,
		Category:             r.Category,
		AgentRouting:         r.AgentRouting,
		Priority:             r.Priority,
		DescriptionShort:     r.DescriptionShort,
		DisambiguationPrompt: r.DisambiguationPrompt,
		TrainingUtterances:   r.TrainingUtterances,
		Keywords:             r.Keywords,
		ConfidenceThreshold:  r.ConfidenceThreshold,
	}
}

type validateReq struct {
	// Records to dry-run; empty validates the active set instead.
	Records []recordReq `json:"records"`
}

func (r validateReq) toInput() intent.ValidateOnlyInput {
	records := make([]model.IntentRecord, len(r.Records))
	for i, rec := range r.Records {
		records[i] = rec.toRecord()
	}
	return intent.ValidateOnlyInput{Records: records}
}

type importSheetsReq struct {
	SpreadsheetID string `json:"spreadsheet_id" binding:"required"`
	ReadRange     string `json:"read_range" binding:"required"`
	Delimiter     string `json:"delimiter"`
}

func (r importSheetsReq) validate() error { return nil }

func (r importSheetsReq) toInput() intent.ImportSheetsInput {
	return intent.ImportSheetsInput{
		SpreadsheetID: r.SpreadsheetID,
		ReadRange:     r.ReadRange,
		Delimiter:     r.Delimiter,
	}
}

type listReq struct {
	Category string `form:"category"`
}

func (r listReq) toInput() intent.ListInput {
	return intent.ListInput{Category: r.Category}
}

// --- Response DTOs ---

type fieldErrorResp struct {
	IntentID string `json:"intent_id,omitempty"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
}

type reportResp struct {
	Valid    bool             `json:"valid"`
	Errors   []fieldErrorResp `json:"errors"`
	Warnings []fieldErrorResp `json:"warnings"`
}

func newReportResp(report model.ValidationReport) reportResp {
	toResp := func(findings []model.FieldError) []fieldErrorResp {
		out := make([]fieldErrorResp, len(findings))
		for i, f := range findings {
			out[i] = fieldErrorResp{IntentID: f.IntentID, Field: f.Field, Message: f.Message}
		}
		return out
	}
	return reportResp{
		Valid:    report.Valid,
		Errors:   toResp(report.Errors),
		Warnings: toResp(report.Warnings),
	}
}

type recordResp struct {
	IntentID             string   `json:"intent_id"`
	IntentName           string   `json:"intent_name"`
	Category             string   `json:"category"`
	AgentRouting         string   `json:"agent_routing"`
	Priority             int      `json:"priority"`
	DescriptionShort     string   `json:"description_short,omitempty"`
	DisambiguationPrompt string   `json:"disambiguation_prompt,omitempty"`
	TrainingUtterances   []string `json:"training_utterances"`
	Keywords             []string `json:"keywords,omitempty"`
	ConfidenceThreshold  float64  `json:"confidence_threshold,omitempty"`
}

func newRecordResp(rec model.IntentRecord) recordResp {
	return recordResp{
		IntentID:             rec.IntentID,
		IntentName:           rec.IntentName,
		Category:             rec.Category,
		AgentRouting:         rec.AgentRouting,
		Priority:             rec.Priority,
		DescriptionShort:     rec.DescriptionShort,
		DisambiguationPrompt: rec.DisambiguationPrompt,
		TrainingUtterances:   rec.TrainingUtterances,
		Keywords:             rec.Keywords,
		ConfidenceThreshold:  rec.ConfidenceThreshold,
	}
}

type stageBulkResp struct {
	Report      reportResp `json:"report"`
	Staged      bool       `json:"staged"`
	Count       int        `json:"count"`
	BaseVersion int64      `json:"base_version"`
	StagedAt    time.Time  `json:"staged_at"`
}

func (h *handler) newStageBulkResp(out intent.StageBulkOutput) stageBulkResp {
	return stageBulkResp{
		Report:      newReportResp(out.Report),
		Staged:      out.Staged,
		Count:       out.Count,
		BaseVersion: out.BaseVersion,
		StagedAt:    out.StagedAt,
	}
}

type activateResp struct {
	Version int64 `json:"version"`
	Count   int   `json:"count"`
}

func (h *handler) newActivateResp(out intent.ActivateOutput) activateResp {
	return activateResp{
		Version: out.Version,
		Count:   out.Count,
	}
}

type applySingleResp struct {
	Report  reportResp `json:"report"`
	Version int64      `json:"version"`
	Count   int        `json:"count"`
}

func (h *handler) newApplySingleResp(out intent.ApplySingleOutput) applySingleResp {
	return applySingleResp{
		Report:  newReportResp(out.Report),
		Version: out.Version,
		Count:   out.Count,
	}
}

type validateResp struct {
	Report reportResp `json:"report"`
	Source string     `json:"source"`
	Count  int        `json:"count"`
}

func (h *handler) newValidateResp(out intent.ValidateOnlyOutput) validateResp {
	return validateResp{
		Report: newReportResp(out.Report),
		Source: out.Source,
		Count:  out.Count,
	}
}

type listResp struct {
	Version    int64          `json:"version"`
	Total      int            `json:"total"`
	Categories map[string]int `json:"categories"`
	Records    []recordResp   `json:"records"`
}

func (h *handler) newListResp(out intent.ListOutput) listResp {
	records := make([]recordResp, len(out.Records))
	categories := make(map[string]int)
	for i, rec := range out.Records {
		records[i] = newRecordResp(rec)
		categories[rec.Category]++
	}
	return listResp{
		Version:    out.Version,
		Total:      out.Total,
		Categories: categories,
		Records:    records,
	}
}

type detailResp struct {
	Record  recordResp `json:"record"`
	Version int64      `json:"version"`
}

func (h *handler) newDetailResp(out intent.DetailOutput) detailResp {
	return detailResp{
		Record:  newRecordResp(out.Record),
		Version: out.Version,
	}
}
