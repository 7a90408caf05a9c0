// scripts/import-catalog/main.go
//
// Converts an exported intent catalog (CSV in upload column order) into the
// seed JSON consumed by registry bootstrap. The catalog goes through the same
// normalization and validation rules the API applies; an invalid catalog
// produces no output file.
//
// Usage:
//   go run scripts/import-catalog/main.go <catalog.csv> [seed.json]

package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"intent-classifier/internal/ingest"
	"intent-classifier/internal/validation"
	"intent-classifier/pkg/log"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/import-catalog/main.go <catalog.csv> [seed.json]")
		fmt.Println("Example: go run scripts/import-catalog/main.go catalog.csv config/intents.seed.json")
		os.Exit(1)
	}
	catalogPath := os.Args[1]
	seedPath := "config/intents.seed.json"
	if len(os.Args) > 2 {
		seedPath = os.Args[2]
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	f, err := os.Open(catalogPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open catalog: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // optional trailing columns may be omitted
	rows, err := reader.ReadAll()
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse catalog CSV: %v", err)
	}

	logger.Infof(ctx, "Read %d rows from %s", len(rows), catalogPath)

	records, rowErrs := ingest.NormalizeRows(rows, ingest.DefaultListDelimiter)
	if len(rowErrs) > 0 {
		for _, re := range rowErrs {
			logger.Errorf(ctx, "%s", re.Error())
		}
		logger.Fatalf(ctx, "Catalog has %d structural errors, nothing written", len(rowErrs))
	}

	validator := validation.New(validation.Config{}, logger)
	report := validator.Validate(ctx, records)
	for _, w := range report.Warnings {
		logger.Warnf(ctx, "%s: %s: %s", w.IntentID, w.Field, w.Message)
	}
	if !report.Valid {
		for _, e := range report.Errors {
			logger.Errorf(ctx, "%s: %s: %s", e.IntentID, e.Field, e.Message)
		}
		logger.Fatalf(ctx, "Catalog failed validation with %d errors, nothing written", len(report.Errors))
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		logger.Fatalf(ctx, "Failed to encode seed: %v", err)
	}
	if err := os.WriteFile(seedPath, out, 0o644); err != nil {
		logger.Fatalf(ctx, "Failed to write %s: %v", seedPath, err)
	}

	logger.Infof(ctx, "Catalog converted: %d intents written to %s", len(records), seedPath)
}
