package conversation

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"talentscout/internal/ai"
	"talentscout/internal/errors"
	"talentscout/internal/types"
)

// Engine drives one candidate interview through the scripted flow. It is not
// safe for concurrent use; callers that share an Engine across goroutines
// must serialize access (the HTTP session layer holds a per-session lock).
//
// The AI provider is strictly best-effort. Extraction falls back to the
// verbatim input and question generation falls back to canned templates, so
// an interview always runs to completion with or without an upstream model.
type Engine struct {
	state         State
	record        types.CandidateRecord
	questions     []string
	questionIndex int
	ended         bool

	provider     ai.Provider
	maxQuestions int
	logger       *errors.Logger
}

// NewEngine creates an interview engine. provider may be nil for
// fallback-only operation. maxQuestions caps the generated question set;
// values below 1 are treated as 1.
func NewEngine(provider ai.Provider, maxQuestions int, logger *errors.Logger) *Engine {
	if maxQuestions < 1 {
		maxQuestions = 1
	}
	return &Engine{
		state:        StateGreeting,
		provider:     provider,
		maxQuestions: maxQuestions,
		logger:       logger,
	}
}

// State returns the current flow state.
func (e *Engine) State() State { return e.state }

// Ended reports whether the candidate terminated the conversation.
func (e *Engine) Ended() bool { return e.ended }

// Record returns the candidate data collected so far.
func (e *Engine) Record() *types.CandidateRecord { return &e.record }

// Questions returns the generated technical questions, nil before the tech
// stack step completes.
func (e *Engine) Questions() []string { return e.questions }

// Respond consumes one candidate utterance and returns the assistant's reply,
// advancing the flow as a side effect.
func (e *Engine) Respond(ctx context.Context, input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))

	if e.ended {
		return farewellMessage
	}
	for _, keyword := range endKeywords {
		if strings.Contains(lower, keyword) {
			e.ended = true
			return farewellMessage
		}
	}

	switch e.state {
	case StateGreeting:
		e.state = StateCollectName
		return welcomeMessage

	case StateCollectName:
		name := e.extractField(ctx, "full name", input)
		e.record.Name = name
		e.state = StateCollectEmail
		return fmt.Sprintf(emailPrompt, name)

	case StateCollectEmail:
		email := e.extractField(ctx, "email address", input)
		if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
			return emailRetryPrompt
		}
		e.record.Email = email
		e.state = StateCollectPhone
		return phonePrompt

	case StateCollectPhone:
		e.record.Phone = e.extractField(ctx, "phone number", input)
		e.state = StateCollectExperience
		return experiencePrompt

	case StateCollectExperience:
		e.record.Experience = e.extractField(ctx, "years of experience", input)
		e.state = StateCollectPosition
		return positionPrompt

	case StateCollectPosition:
		e.record.Position = e.extractField(ctx, "desired position", input)
		e.state = StateCollectLocation
		return locationPrompt

	case StateCollectLocation:
		e.record.Location = e.extractField(ctx, "location", input)
		e.state = StateCollectTechStack
		return techStackPrompt

	case StateCollectTechStack:
		techStack := e.extractField(ctx, "technology stack", input)
		e.record.TechStack = techStack
		e.questions = e.generateQuestions(ctx, techStack)
		e.questionIndex = 0
		e.state = StateTechnicalQuestions
		return fmt.Sprintf(firstQuestionFormat, techStack, e.questions[0])

	case StateTechnicalQuestions:
		e.record.Answers = append(e.record.Answers, types.QuestionAnswer{
			Question: e.questions[e.questionIndex],
			Answer:   input,
		})
		e.questionIndex++

		if e.questionIndex < len(e.questions) {
			return fmt.Sprintf(nextQuestionFormat, e.questionIndex+1, e.questions[e.questionIndex])
		}
		e.state = StateCompleted
		return completionSummary(&e.record)

	case StateCompleted:
		return completedMessage

	default:
		return confusedMessage
	}
}

// extractField delegates to the AI provider, falling back to the sanitized
// verbatim input when no provider is configured, the field is not found, or
// the provider fails.
func (e *Engine) extractField(ctx context.Context, field, input string) string {
	trimmed := strings.TrimSpace(input)
	if e.provider == nil {
		return trimmed
	}

	value, err := e.provider.ExtractField(ctx, field, input)
	if err != nil {
		if !stderrors.Is(err, ai.ErrFieldNotFound) {
			e.logger.Warn("Field extraction failed, using raw input",
				"field", field, "error", err.Error())
		}
		return trimmed
	}
	return value
}

// generateQuestions builds the technical question set for a tech stack.
func (e *Engine) generateQuestions(ctx context.Context, techStack string) []string {
	if e.provider == nil {
		return fallbackQuestions(techStack)
	}

	questions, err := e.provider.GenerateQuestions(ctx, techStack, e.maxQuestions)
	if err != nil {
		e.logger.Warn("Question generation failed, using generic question",
			"tech_stack", techStack, "error", err.Error())
		return []string{genericQuestion(techStack)}
	}
	if len(questions) == 0 {
		return []string{genericQuestion(techStack)}
	}
	return questions
}
