package usecase

import (
	"context"
	"fmt"

	"intent-classifier/internal/ingest"
	"intent-classifier/internal/intent"
	"intent-classifier/internal/model"
)

// StageBulk turns uploaded rows into a staged replacement set. Structural row
// errors reject the whole upload before semantic validation runs, so a bad
// row can never stage a partial file.
func (uc *implUseCase) StageBulk(ctx context.Context, input intent.StageBulkInput) (intent.StageBulkOutput, error) {
	if len(input.Rows) == 0 {
		return intent.StageBulkOutput{}, intent.ErrEmptyUpload
	}

	records, rowErrs := ingest.NormalizeValues(input.Rows, input.Delimiter)
	if len(rowErrs) > 0 {
		report := model.NewValidationReport()
		for _, re := range rowErrs {
			report.AddError("", fmt.Sprintf("row %d: %s", re.Row, re.Field), re.Message)
		}
		uc.l.Warnf(ctx, "uc.StageBulk: %d rows rejected structurally", len(rowErrs))
		return intent.StageBulkOutput{Report: report}, nil
	}

	receipt, report := uc.registry.Stage(ctx, records)
	if !report.Valid {
		uc.l.Warnf(ctx, "uc.StageBulk: candidate set invalid with %d errors", len(report.Errors))
		return intent.StageBulkOutput{Report: report}, nil
	}

	uc.l.Infof(ctx, "uc.StageBulk: staged %d records against version %d", receipt.Count, receipt.BaseVersion)
	return intent.StageBulkOutput{
		Report:      report,
		Staged:      true,
		Count:       receipt.Count,
		BaseVersion: receipt.BaseVersion,
		StagedAt:    receipt.StagedAt,
	}, nil
}
