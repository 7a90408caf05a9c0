package intent

import (
	"time"

	"intent-classifier/internal/model"
)

// What a ValidateOnly call actually validated.
const (
	ValidationSourceSubmitted = "submitted"
	ValidationSourceActive    = "active"
)

// --- UseCase Inputs ---

type StageBulkInput struct {
	// Rows are typed cells in the fixed upload column order, header row
	// optional.
	Rows [][]any
	// Delimiter splits list-valued cells; empty means the default "|".
	Delimiter string
}

type ApplySingleInput struct {
	Record model.IntentRecord
}

type ValidateOnlyInput struct {
	// Records to validate; empty means validate the active set instead.
	Records []model.IntentRecord
}

type ImportSheetsInput struct {
	SpreadsheetID string
	ReadRange     string
	Delimiter     string
}

type ListInput struct {
	Category string
}

// --- UseCase Outputs ---

type StageBulkOutput struct {
	Report      model.ValidationReport
	Staged      bool
	Count       int
	BaseVersion int64
	StagedAt    time.Time
}

type ActivateOutput struct {
	Version int64
	Count   int
}

type ApplySingleOutput struct {
	Report  model.ValidationReport
	Version int64
	Count   int
}

type ValidateOnlyOutput struct {
	Report model.ValidationReport
	// Source names what was validated: "submitted" or "active".
	Source string
	Count  int
}

type ListOutput struct {
	Records []model.IntentRecord
	Version int64
	Total   int
}

type DetailOutput struct {
	Record  model.IntentRecord
	Version int64
}
