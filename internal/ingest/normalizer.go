// Package ingest turns uploaded spreadsheet rows into normalized intent
// records. It only cares about structure: arity, cell types, list
// splitting. Semantic checks (uniqueness, thresholds, overlaps) belong to
// the validation engine.
package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"intent-classifier/internal/model"
)

// NormalizeRows converts rows of string cells into records. The first row is
// skipped when it is a header. On any structural error no records are
// returned: a partially ingested upload must never reach staging.
func NormalizeRows(rows [][]string, listDelimiter string) ([]model.IntentRecord, []RowError) {
	if listDelimiter == "" {
		listDelimiter = DefaultListDelimiter
	}

	records := make([]model.IntentRecord, 0, len(rows))
	var rowErrs []RowError

	for i, cells := range rows {
		rowNum := i + 1
		if i == 0 && isHeader(cells) {
			continue
		}
		if isBlank(cells) {
			continue
		}

		rec, errs := normalizeRow(rowNum, cells, listDelimiter)
		if len(errs) > 0 {
			rowErrs = append(rowErrs, errs...)
			continue
		}
		records = append(records, rec)
	}

	if len(rowErrs) > 0 {
		return nil, rowErrs
	}
	return records, nil
}

// NormalizeValues is NormalizeRows for typed cells, as delivered by the
// Sheets API. Numbers are rendered without a trailing ".0" so an id column
// formatted as a number round-trips cleanly.
func NormalizeValues(rows [][]any, listDelimiter string) ([]model.IntentRecord, []RowError) {
	converted := make([][]string, len(rows))
	for i, cells := range rows {
		row := make([]string, len(cells))
		for j, cell := range cells {
			row[j] = stringifyCell(cell)
		}
		converted[i] = row
	}
	return NormalizeRows(converted, listDelimiter)
}

func normalizeRow(rowNum int, cells []string, delim string) (model.IntentRecord, []RowError) {
	var errs []RowError

	if len(cells) < requiredColumns {
		return model.IntentRecord{}, []RowError{{
			Row:   rowNum,
			Field: "row",
			Message: fmt.Sprintf("expected at least %d columns (%s), got %d",
				requiredColumns, strings.Join(columnNames[:requiredColumns], ", "), len(cells)),
		}}
	}
	for j := columnCount; j < len(cells); j++ {
		if strings.TrimSpace(cells[j]) != "" {
			errs = append(errs, RowError{
				Row:     rowNum,
				Field:   "row",
				Message: fmt.Sprintf("unexpected value in column %d beyond %s", j+1, columnNames[columnCount-1]),
			})
		}
	}

	cell := func(col int) string {
		if col < len(cells) {
			return strings.TrimSpace(cells[col])
		}
		return ""
	}

	rec := model.IntentRecord{
		IntentID:             cell(colIntentID),
		IntentName:           cell(colIntentName),
		Category:             cell(colCategory),
		AgentRouting:         cell(colAgentRouting),
		DescriptionShort:     cell(colDescriptionShort),
		TrainingUtterances:   splitList(cell(colTrainingUtterances), delim),
		Keywords:             splitList(cell(colKeywords), delim),
		DisambiguationPrompt: cell(colDisambiguationPrompt),
	}

	if raw := cell(colPriority); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, RowError{
				Row:     rowNum,
				Field:   columnNames[colPriority],
				Message: fmt.Sprintf("not an integer: %q", raw),
			})
		} else {
			rec.Priority = p
		}
	}

	if raw := cell(colConfidenceThreshold); raw != "" {
		th, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, RowError{
				Row:     rowNum,
				Field:   columnNames[colConfidenceThreshold],
				Message: fmt.Sprintf("not a number: %q", raw),
			})
		} else {
			rec.ConfidenceThreshold = th
		}
	}

	if len(errs) > 0 {
		return model.IntentRecord{}, errs
	}
	return rec.Normalized(), nil
}

func splitList(cell, delim string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, delim)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isHeader(cells []string) bool {
	return len(cells) > 0 && strings.EqualFold(strings.TrimSpace(cells[0]), columnNames[colIntentID])
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func stringifyCell(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
