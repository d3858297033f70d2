package observability

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"

	"talentscout/internal/config"
)

// Manager owns the OpenTelemetry tracer provider lifecycle.
type Manager struct {
	tracerProvider *trace.TracerProvider
	shutdownFuncs  []func(context.Context) error
}

// Setup initializes tracing and the W3C propagators from configuration. With
// observability disabled it returns an empty manager whose Shutdown is a
// no-op; spans created elsewhere then route to the global no-op provider.
func Setup(cfg config.ObservabilityConfig, serviceVersion string) (*Manager, error) {
	m := &Manager{}
	if !cfg.Enabled {
		return m, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(serviceVersion),
			attribute.String("service.instance.id", serviceInstanceID()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []trace.TracerProviderOption{
		trace.WithResource(res),
		trace.WithSampler(trace.TraceIDRatioBased(cfg.SampleRate)),
	}

	if cfg.ConsoleTraces {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		opts = append(opts, trace.WithBatcher(exporter))
	}

	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	m.tracerProvider = tp
	m.shutdownFuncs = append(m.shutdownFuncs, tp.Shutdown)
	return m, nil
}

// Shutdown flushes and stops all registered providers.
func (m *Manager) Shutdown(ctx context.Context) error {
	var firstErr error
	for _, fn := range m.shutdownFuncs {
		if err := fn(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func serviceInstanceID() string {
	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Sprintf("unknown-%d", os.Getpid())
	}
	return fmt.Sprintf("%s-%d", hostname, os.Getpid())
}
