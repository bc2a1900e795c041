// Package otel sets up OpenTelemetry tracing for the binaries. Spans come from otelfiber on the
// gateway and otelhttp on the database transport.
package otel

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"arangodoc/internal/logging"
)

// tracingSettings are the OTEL_* variables the tracer provider is built from.
type tracingSettings struct {
	disabled    bool
	serviceName string
	protocol    string
	endpoint    string
	sampler     string
	samplerArg  string
}

func loadSettings() tracingSettings {
	s := tracingSettings{
		disabled:    os.Getenv("OTEL_SDK_DISABLED") == "true",
		serviceName: getEnv("OTEL_SERVICE_NAME", "arangodoc"),
		protocol:    getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
		endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"),
		sampler:     getEnv("OTEL_TRACES_SAMPLER", "parentbased_always_on"),
		samplerArg:  getEnv("OTEL_TRACES_SAMPLER_ARG", "1.0"),
	}
	if s.endpoint == "" {
		s.endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	return s
}

// Init installs the global tracer provider with an OTLP exporter and returns the function
// flushing and stopping it. Propagation is always configured; when tracing is disabled or the
// exporter cannot be created the global no-op provider stays in place.
func Init(ctx context.Context, logger logging.Logger) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	noop := func(context.Context) error { return nil }

	s := loadSettings()
	if s.disabled {
		logger.Infow("tracing_configured", "tracing_enabled", false)
		return noop, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(s.serviceName)),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := newExporter(ctx, s.protocol)
	if err != nil {
		logger.Errorw("tracing_init_failed", "otlp_protocol", s.protocol, "error", err)
		return noop, nil
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(s.newSampler()),
	)
	otel.SetTracerProvider(tp)

	logger.Infow("tracing_configured",
		"tracing_enabled", true,
		"service_name", s.serviceName,
		"otlp_protocol", s.protocol,
		"otlp_endpoint", s.endpoint,
		"sampler", s.sampler,
		"sampler_arg", s.samplerArg,
	)
	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, protocol string) (*otlptrace.Exporter, error) {
	switch protocol {
	case "grpc":
		return otlptracegrpc.New(ctx)
	case "http/protobuf":
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol: %s", protocol)
	}
}

func (s tracingSettings) newSampler() trace.Sampler {
	switch s.sampler {
	case "always_on":
		return trace.AlwaysSample()
	case "always_off":
		return trace.NeverSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(s.ratio())
	case "parentbased_always_off":
		return trace.ParentBased(trace.NeverSample())
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(s.ratio()))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}

// ratio parses the sampler argument, falling back to sampling everything.
func (s tracingSettings) ratio() float64 {
	ratio, err := strconv.ParseFloat(s.samplerArg, 64)
	if err != nil || ratio < 0 || ratio > 1 {
		return 1
	}
	return ratio
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
