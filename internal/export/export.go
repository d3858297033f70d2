package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"talentscout/internal/errors"
	"talentscout/internal/types"
)

// SupportedFormats lists the export formats Export accepts.
var SupportedFormats = []string{"json", "csv"}

// Envelope is the JSON export payload.
type Envelope struct {
	ExportTimestamp string            `json:"export_timestamp"`
	CandidateData   map[string]string `json:"candidate_data"`
	Summary         string            `json:"summary"`
}

// Export serializes a candidate record in the requested format. "json" wraps
// the record with an export timestamp and the generated summary; "csv" emits
// a two-column Field,Value table. Any other format is a validation error.
func Export(record types.CandidateRecord, format string) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		return exportJSON(record)
	case "csv":
		return exportCSV(record), nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported export format: %s", format), nil)
	}
}

func exportJSON(record types.CandidateRecord) (string, error) {
	envelope := Envelope{
		ExportTimestamp: time.Now().Format(time.RFC3339),
		CandidateData:   record.ToMap(),
		Summary:         GenerateSummary(record),
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", errors.NewInternalError(errors.ErrCodeInvalidRequest,
			"failed to marshal candidate export", err)
	}
	return string(data), nil
}

// exportCSV writes a Field,Value table. Double quotes are doubled and values
// containing commas are wrapped in quotes, the way spreadsheet importers
// expect.
func exportCSV(record types.CandidateRecord) string {
	var b strings.Builder
	b.WriteString("Field,Value\n")
	for _, f := range record.Fields() {
		value := strings.ReplaceAll(f.Value, `"`, `""`)
		if strings.Contains(value, ",") {
			value = `"` + value + `"`
		}
		b.WriteString(f.Key)
		b.WriteString(",")
		b.WriteString(value)
		b.WriteString("\n")
	}
	return b.String()
}
