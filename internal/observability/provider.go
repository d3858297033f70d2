package observability

import (
	"context"
	"time"

	"talentscout/internal/ai"
)

// InstrumentedProvider decorates an ai.Provider with request counters and
// latency histograms. ErrFieldNotFound counts as a success: the model
// answered, the field simply was not there.
type InstrumentedProvider struct {
	next    ai.Provider
	metrics *Metrics
}

// InstrumentProvider wraps provider with metrics. A nil provider stays nil
// so fallback-only mode is preserved; with metrics disabled the provider is
// returned unwrapped.
func InstrumentProvider(provider ai.Provider, metrics *Metrics) ai.Provider {
	if provider == nil || metrics == nil {
		return provider
	}
	return &InstrumentedProvider{next: provider, metrics: metrics}
}

func (p *InstrumentedProvider) ExtractField(ctx context.Context, field, text string) (string, error) {
	start := time.Now()
	value, err := p.next.ExtractField(ctx, field, text)
	p.observe("extract_field", start, err != nil && err != ai.ErrFieldNotFound)
	return value, err
}

func (p *InstrumentedProvider) GenerateQuestions(ctx context.Context, techStack string, max int) ([]string, error) {
	start := time.Now()
	questions, err := p.next.GenerateQuestions(ctx, techStack, max)
	p.observe("generate_questions", start, err != nil)
	return questions, err
}

func (p *InstrumentedProvider) GetModelInfo(ctx context.Context) *ai.ModelInfo {
	return p.next.GetModelInfo(ctx)
}

func (p *InstrumentedProvider) Close() error {
	return p.next.Close()
}

func (p *InstrumentedProvider) observe(operation string, start time.Time, failed bool) {
	outcome := "success"
	if failed {
		outcome = "error"
	}
	p.metrics.AIRequests.WithLabelValues(operation, outcome).Inc()
	p.metrics.AIRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
