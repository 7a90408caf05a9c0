package gsheets

import "context"

// ISheets defines the interface for the Google Sheets reader.
type ISheets interface {
	// ReadRange returns the cell values of an A1-notation range, one inner
	// slice per row, with unformatted (typed) values.
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]any, error)
}
