package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"

	"arangodoc/internal/logging"
)

func TestInitDisabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")

	shutdown, err := Init(context.Background(), logging.Nop())

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitUnsupportedProtocol(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")

	shutdown, err := Init(context.Background(), logging.Nop())

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "")
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4317")

	s := loadSettings()

	assert.False(t, s.disabled)
	assert.Equal(t, "arangodoc", s.serviceName)
	assert.Equal(t, "grpc", s.protocol)
	assert.Equal(t, "http://collector:4317", s.endpoint)
}

func TestNewSampler(t *testing.T) {
	tests := []struct {
		sampler string
		arg     string
		want    string
	}{
		{"always_on", "", trace.AlwaysSample().Description()},
		{"always_off", "", trace.NeverSample().Description()},
		{"traceidratio", "0.5", trace.TraceIDRatioBased(0.5).Description()},
		{"traceidratio", "2", trace.TraceIDRatioBased(1).Description()},
		{"traceidratio", "half", trace.TraceIDRatioBased(1).Description()},
		{"parentbased_traceidratio", "0.25", trace.ParentBased(trace.TraceIDRatioBased(0.25)).Description()},
		{"unknown", "", trace.ParentBased(trace.AlwaysSample()).Description()},
	}

	for _, tt := range tests {
		t.Run(tt.sampler+"/"+tt.arg, func(t *testing.T) {
			s := tracingSettings{sampler: tt.sampler, samplerArg: tt.arg}
			assert.Equal(t, tt.want, s.newSampler().Description())
		})
	}
}
