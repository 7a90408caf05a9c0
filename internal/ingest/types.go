package ingest

import "fmt"

// RowError is a structural problem in an uploaded row: the row could not be
// turned into a record at all. Row is the 1-based position in the upload,
// header included, so it matches what the uploader sees in their sheet.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Message)
}
