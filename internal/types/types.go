package types

import "fmt"

// RequiredFields lists the fixed candidate fields in the order the
// conversation collects them. Completion scoring counts exactly these seven.
var RequiredFields = []string{
	"name",
	"email",
	"phone",
	"experience",
	"position",
	"location",
	"tech_stack",
}

// QuestionAnswer pairs a generated technical question with the candidate's
// verbatim answer.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CandidateRecord accumulates a candidate's answers over one interview
// session. Fixed fields are populated one per state transition; technical
// answers are appended in question order.
type CandidateRecord struct {
	Name       string           `json:"name,omitempty"`
	Email      string           `json:"email,omitempty"`
	Phone      string           `json:"phone,omitempty"`
	Experience string           `json:"experience,omitempty"`
	Position   string           `json:"position,omitempty"`
	Location   string           `json:"location,omitempty"`
	TechStack  string           `json:"tech_stack,omitempty"`
	Answers    []QuestionAnswer `json:"answers,omitempty"`
}

// Field is one exportable key/value pair of a candidate record.
type Field struct {
	Key   string
	Value string
}

// Fields returns the record as ordered key/value pairs: the fixed fields in
// collection order followed by answer_1..answer_N. Unset fixed fields are
// skipped, matching how the record is populated monotonically.
func (r CandidateRecord) Fields() []Field {
	fixed := []Field{
		{"name", r.Name},
		{"email", r.Email},
		{"phone", r.Phone},
		{"experience", r.Experience},
		{"position", r.Position},
		{"location", r.Location},
		{"tech_stack", r.TechStack},
	}

	fields := make([]Field, 0, len(fixed)+len(r.Answers))
	for _, f := range fixed {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	for i, qa := range r.Answers {
		fields = append(fields, Field{fmt.Sprintf("answer_%d", i+1), qa.Answer})
	}
	return fields
}

// ToMap flattens the record into a string map keyed like Fields.
func (r CandidateRecord) ToMap() map[string]string {
	m := make(map[string]string)
	for _, f := range r.Fields() {
		m[f.Key] = f.Value
	}
	return m
}

// CompletedFieldCount reports how many of the seven required fields are set.
func (r CandidateRecord) CompletedFieldCount() int {
	count := 0
	m := map[string]string{
		"name":       r.Name,
		"email":      r.Email,
		"phone":      r.Phone,
		"experience": r.Experience,
		"position":   r.Position,
		"location":   r.Location,
		"tech_stack": r.TechStack,
	}
	for _, name := range RequiredFields {
		if m[name] != "" {
			count++
		}
	}
	return count
}

// ScoreBreakdown is the heuristic interview score derived from a record.
type ScoreBreakdown struct {
	CompletionScore float64  `json:"completion_score"`
	QualityScore    float64  `json:"response_quality_score"`
	TotalScore      float64  `json:"total_score"`
	Recommendations []string `json:"recommendations"`
}
