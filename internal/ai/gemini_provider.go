package ai

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/rand"
	"net"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"

	"talentscout/internal/config"
	"talentscout/internal/errors"
)

// GeminiProvider implements Provider on top of the Gemini API.
type GeminiProvider struct {
	client         *genai.Client
	config         config.AIConfig
	logger         *errors.Logger
	circuitBreaker *AICircuitBreaker
	tracer         trace.Tracer
}

// NewGeminiProvider creates a new Gemini AI provider.
func NewGeminiProvider(ctx context.Context, cfg config.AIConfig, logger *errors.Logger) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.NewConfigError(errors.ErrCodeMissingAPIKey,
			"Gemini API key is required", nil)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client:         client,
		config:         cfg,
		logger:         logger,
		circuitBreaker: NewAICircuitBreaker(cfg.CircuitBreaker, logger),
		tracer:         otel.Tracer("talentscout/ai"),
	}, nil
}

// ExtractField asks the model for a single field value from free text.
func (p *GeminiProvider) ExtractField(ctx context.Context, field, text string) (string, error) {
	ctx, span := p.tracer.Start(ctx, "gemini.extract_field",
		trace.WithAttributes(
			attribute.String("ai.model", p.config.Model),
			attribute.String("ai.field", field),
		))
	defer span.End()

	template := resolvePrompt(p.config.CustomPrompts.ExtractField, DefaultExtractionPrompt)
	prompt := fmt.Sprintf(template, field, text, field)

	result, err := p.generateText(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "extraction failed")
		return "", err
	}

	result = strings.TrimSpace(result)
	if result == NotFoundSentinel {
		span.SetAttributes(attribute.Bool("ai.field_found", false))
		return "", ErrFieldNotFound
	}

	span.SetAttributes(attribute.Bool("ai.field_found", true))
	return result, nil
}

// GenerateQuestions asks the model for technical questions tailored to the
// candidate's tech stack. Lines not prefixed with "Q:" are discarded.
func (p *GeminiProvider) GenerateQuestions(ctx context.Context, techStack string, max int) ([]string, error) {
	ctx, span := p.tracer.Start(ctx, "gemini.generate_questions",
		trace.WithAttributes(
			attribute.String("ai.model", p.config.Model),
			attribute.Int("ai.max_questions", max),
		))
	defer span.End()

	template := resolvePrompt(p.config.CustomPrompts.GenerateQuestions, DefaultQuestionPrompt)
	prompt := fmt.Sprintf(template, max, techStack)

	result, err := p.generateText(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "question generation failed")
		return nil, err
	}

	questions := ParseQuestions(result, max)
	span.SetAttributes(attribute.Int("ai.questions_parsed", len(questions)))
	return questions, nil
}

// ParseQuestions extracts "Q:"-prefixed lines from a model response, up to
// max questions. Surrounding prose and blank lines are ignored.
func ParseQuestions(text string, max int) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Q:") {
			continue
		}
		q := strings.TrimSpace(strings.TrimPrefix(line, "Q:"))
		if q == "" {
			continue
		}
		questions = append(questions, q)
		if len(questions) >= max {
			break
		}
	}
	return questions
}

// generateText runs one completion through the circuit breaker and the retry
// loop, returning the concatenated response text.
func (p *GeminiProvider) generateText(ctx context.Context, prompt string) (string, error) {
	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(p.config.Temperature),
	}

	response, err := p.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return p.executeWithRetry(ctx, func() (*genai.GenerateContentResponse, error) {
			return p.client.Models.GenerateContent(ctx, p.config.Model,
				genai.Text(prompt), genConfig)
		})
	})
	if err != nil {
		return "", p.wrapError(err)
	}

	text := response.Text()
	if text == "" {
		return "", errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"AI returned empty response", nil)
	}
	return text, nil
}

// executeWithRetry retries transient failures with exponential backoff and
// jitter. Non-retryable errors and context cancellation return immediately.
func (p *GeminiProvider) executeWithRetry(ctx context.Context, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= p.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			jitter := time.Duration(rand.Int63n(int64(backoff) / 2))
			delay := backoff + jitter

			p.logger.Debug("Retrying AI request",
				"attempt", attempt,
				"max_retries", p.config.MaxRetries,
				"delay", delay.String())

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		response, err := fn()
		if err == nil {
			return response, nil
		}

		lastErr = err
		if !isRetryableError(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

// isRetryableError reports whether an upstream failure is worth retrying:
// rate limiting, server-side errors and network timeouts.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if apiErr, ok := err.(*googleapi.Error); ok {
		switch apiErr.Code {
		case 429, 500, 502, 503, 504:
			return true
		}
		return false
	}

	if netErr, ok := err.(net.Error); ok {
		return netErr.Timeout()
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "temporarily unavailable")
}

// wrapError converts upstream failures into typed application errors.
func (p *GeminiProvider) wrapError(err error) error {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.NewAIError(errors.ErrCodeAITimeout,
			"AI request timed out", err).
			WithContext("timeout", p.config.Timeout.String())
	case stderrors.Is(err, gobreaker.ErrOpenState),
		stderrors.Is(err, gobreaker.ErrTooManyRequests):
		return errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"AI service unavailable (circuit open)", err)
	default:
		return errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"AI request failed", err).
			WithContext("model", p.config.Model)
	}
}

// GetModelInfo probes the configured model with a trivial completion.
func (p *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	info := &ModelInfo{Name: p.config.Model}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	model, err := p.client.Models.Get(ctx, p.config.Model, &genai.GetModelConfig{})
	if err != nil {
		info.Available = false
		info.Error = err.Error()
		return info
	}

	info.Available = true
	info.DisplayName = model.DisplayName
	info.Version = model.Version
	return info
}

// Close releases provider resources.
func (p *GeminiProvider) Close() error {
	return nil
}
