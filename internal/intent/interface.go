package intent

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// StageBulk normalizes uploaded rows into candidate records, validates
	// them as a complete replacement set, and stages them for activation.
	// Nothing is staged when the report is invalid.
	StageBulk(ctx context.Context, input StageBulkInput) (StageBulkOutput, error)

	// ActivateStaged publishes the staged set as the new active snapshot.
	ActivateStaged(ctx context.Context) (ActivateOutput, error)

	// ApplySingle merges one record into the active set, revalidates, and
	// publishes the result in a single step.
	ApplySingle(ctx context.Context, input ApplySingleInput) (ApplySingleOutput, error)

	// ValidateOnly is a read-only dry run over the submitted records, or
	// over the active set when none are submitted. Never publishes.
	ValidateOnly(ctx context.Context, input ValidateOnlyInput) (ValidateOnlyOutput, error)

	// ImportSheets pulls rows from a Google Sheets range and stages them
	// exactly like a bulk upload.
	ImportSheets(ctx context.Context, input ImportSheetsInput) (StageBulkOutput, error)

	// List returns the active records, optionally filtered by category.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Detail returns one active record by intent id.
	Detail(ctx context.Context, id string) (DetailOutput, error)
}
