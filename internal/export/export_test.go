package export

import (
	"encoding/json"
	"strings"
	"testing"

	stderrors "errors"

	"talentscout/internal/errors"
	"talentscout/internal/types"
)

func fullRecord() types.CandidateRecord {
	return types.CandidateRecord{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "1234567890",
		Experience: "5",
		Position:   "Backend Engineer",
		Location:   "Berlin, Germany",
		TechStack:  "Go, PostgreSQL, Docker",
		Answers: []types.QuestionAnswer{
			{Question: "Tell me about Go", Answer: "Channels and goroutines"},
		},
	}
}

func TestExportJSON(t *testing.T) {
	out, err := Export(fullRecord(), "json")
	if err != nil {
		t.Fatalf("Export(json) returned error: %v", err)
	}

	var envelope Envelope
	if err := json.Unmarshal([]byte(out), &envelope); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if envelope.ExportTimestamp == "" {
		t.Error("missing export_timestamp")
	}
	if envelope.CandidateData["name"] != "Jane Doe" {
		t.Errorf("candidate_data.name = %q, want Jane Doe", envelope.CandidateData["name"])
	}
	if envelope.CandidateData["answer_1"] != "Channels and goroutines" {
		t.Errorf("candidate_data.answer_1 = %q", envelope.CandidateData["answer_1"])
	}
	if !strings.Contains(envelope.Summary, "CANDIDATE SUMMARY") {
		t.Error("summary missing from envelope")
	}
}

func TestExportCSV(t *testing.T) {
	out, err := Export(fullRecord(), "csv")
	if err != nil {
		t.Fatalf("Export(csv) returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "Field,Value" {
		t.Errorf("header = %q, want Field,Value", lines[0])
	}
	// 7 fixed fields + 1 answer
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d: %q", len(lines), out)
	}
	if lines[1] != "name,Jane Doe" {
		t.Errorf("first row = %q", lines[1])
	}
	// values with commas are quoted
	if !strings.Contains(out, `location,"Berlin, Germany"`) {
		t.Errorf("comma value not quoted: %q", out)
	}
	if !strings.Contains(out, "answer_1,Channels and goroutines") {
		t.Errorf("answer row missing: %q", out)
	}
}

func TestExportCSVEscapesQuotes(t *testing.T) {
	record := types.CandidateRecord{Name: `Jane "JD" Doe`}
	out, err := Export(record, "csv")
	if err != nil {
		t.Fatalf("Export(csv) returned error: %v", err)
	}
	if !strings.Contains(out, `name,Jane ""JD"" Doe`) {
		t.Errorf("quotes not doubled: %q", out)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := Export(fullRecord(), "xml")
	if err == nil {
		t.Fatal("expected error for xml format")
	}

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		t.Fatalf("expected *errors.AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeUnsupportedFormat {
		t.Errorf("code = %q, want %q", appErr.Code, errors.ErrCodeUnsupportedFormat)
	}
}

func TestExportFormatCaseInsensitive(t *testing.T) {
	if _, err := Export(fullRecord(), "JSON"); err != nil {
		t.Errorf("Export(JSON) returned error: %v", err)
	}
}
