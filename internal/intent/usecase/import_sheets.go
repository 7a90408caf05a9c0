package usecase

import (
	"context"
	"fmt"

	"intent-classifier/internal/intent"
)

// ImportSheets reads a spreadsheet range and stages it exactly like a bulk
// upload. The rows go through the same normalization, so a sheet with a bad
// cell fails with the same row-attributed report an upload would get.
func (uc *implUseCase) ImportSheets(ctx context.Context, input intent.ImportSheetsInput) (intent.StageBulkOutput, error) {
	if uc.sheets == nil {
		return intent.StageBulkOutput{}, intent.ErrSheetsDisabled
	}

	rows, err := uc.sheets.ReadRange(ctx, input.SpreadsheetID, input.ReadRange)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportSheets ReadRange: %v", err)
		return intent.StageBulkOutput{}, fmt.Errorf("%w: %v", intent.ErrSheetsUnavailable, err)
	}

	uc.l.Infof(ctx, "uc.ImportSheets: fetched %d rows from %q", len(rows), input.ReadRange)
	return uc.StageBulk(ctx, intent.StageBulkInput{
		Rows:      rows,
		Delimiter: input.Delimiter,
	})
}
