package tracing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

const shutdownTimeout = 10 * time.Second

// TracerProvider owns the SDK provider spans of the service are recorded on
type TracerProvider struct {
	provider *sdktrace.TracerProvider
	enabled  bool
}

// NewTracerProvider builds the provider described by conf. When tracing is
// disabled spans are still created but nothing is exported.
func NewTracerProvider(ctx context.Context, conf config.TracingConfig, environment string) (*TracerProvider, error) {
	if !conf.Enabled {
		installPropagator()
		return &TracerProvider{provider: sdktrace.NewTracerProvider()}, nil
	}

	if conf.ServiceName == "" {
		return nil, errors.New("tracing service name is required")
	}
	if conf.Endpoint == "" {
		return nil, errors.New("OTLP endpoint is required")
	}
	if conf.SampleRate < 0 || conf.SampleRate > 1 {
		return nil, fmt.Errorf("sample rate must be between 0 and 1, got: %v", conf.SampleRate)
	}

	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
		otlptracegrpc.WithEndpoint(conf.Endpoint),
		otlptracegrpc.WithInsecure(),
	))
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(conf.ServiceName),
		semconv.DeploymentEnvironment(environment),
	))
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	return NewTracerProviderWith(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(conf.SampleRate))),
	), nil
}

// NewTracerProviderWith installs an SDK provider built from opts as the
// global provider, together with the W3C trace context propagator
func NewTracerProviderWith(opts ...sdktrace.TracerProviderOption) *TracerProvider {
	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)
	installPropagator()
	return &TracerProvider{provider: provider, enabled: true}
}

// installPropagator lets incoming traceparent headers be honoured even when
// nothing is exported
func installPropagator() {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

// Enabled reports whether spans leave the process
func (tp *TracerProvider) Enabled() bool {
	return tp.enabled
}

// Tracer returns a tracer for the named instrumentation scope
func (tp *TracerProvider) Tracer(name string) trace.Tracer {
	return tp.provider.Tracer(name)
}

// Shutdown flushes pending spans and stops the exporter
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := tp.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracer provider: %w", err)
	}
	return nil
}
