package ingest

// Fixed column order for bulk uploads.
const (
	colIntentID = iota
	colIntentName
	colCategory
	colAgentRouting
	colPriority
	colDescriptionShort
	colTrainingUtterances
	colKeywords
	colDisambiguationPrompt
	colConfidenceThreshold

	columnCount = 10
	// requiredColumns runs through training_utterances; the rest may be
	// omitted from the upload entirely.
	requiredColumns = colTrainingUtterances + 1
)

// DefaultListDelimiter splits multi-value cells (training_utterances,
// keywords) inside a single spreadsheet cell.
const DefaultListDelimiter = "|"

var columnNames = [columnCount]string{
	"intent_id",
	"intent_name",
	"category",
	"agent_routing",
	"priority",
	"description_short",
	"training_utterances",
	"keywords",
	"disambiguation_prompt",
	"confidence_threshold",
}
