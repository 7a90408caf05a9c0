package model

// ValidationReport is the complete outcome of validating a candidate record
// set: every error and every warning found, never just the first. Valid is
// true exactly when Errors is empty; warnings never block.
type ValidationReport struct {
	Valid    bool         `json:"valid"`
	Errors   []FieldError `json:"errors"`
	Warnings []FieldError `json:"warnings"`
}

// NewValidationReport returns an empty report with non-nil slices so the
// JSON form always carries arrays, never null.
func NewValidationReport() ValidationReport {
	return ValidationReport{
		Valid:    true,
		Errors:   []FieldError{},
		Warnings: []FieldError{},
	}
}

// AddError records a blocking problem and marks the report invalid.
func (r *ValidationReport) AddError(intentID, field, message string) {
	r.Errors = append(r.Errors, FieldError{IntentID: intentID, Field: field, Message: message})
	r.Valid = false
}

// AddWarning records a non-blocking problem.
func (r *ValidationReport) AddWarning(intentID, field, message string) {
	r.Warnings = append(r.Warnings, FieldError{IntentID: intentID, Field: field, Message: message})
}

// Merge folds another report into this one.
func (r *ValidationReport) Merge(other ValidationReport) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Valid = r.Valid && other.Valid
}
