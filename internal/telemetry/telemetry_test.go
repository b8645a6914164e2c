package telemetry

import (
	"context"
	"testing"

	"github.com/medilink/backend/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithoutEndpointIsNoop(t *testing.T) {
	p, err := New(context.Background(), config.TelemetryConfig{ServiceName: "test"}, zap.NewNop())
	require.NoError(t, err)
	require.False(t, p.Enabled())
	require.NotNil(t, p.Tracer())
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNilProviderIsSafe(t *testing.T) {
	var p *Provider
	require.False(t, p.Enabled())
	require.NotNil(t, p.Tracer())
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNewWithEndpoint(t *testing.T) {
	// The exporter connects lazily, so construction succeeds without a collector.
	p, err := New(context.Background(), config.TelemetryConfig{
		Endpoint:    "localhost:4318",
		Insecure:    true,
		ServiceName: "medilink-test",
	}, zap.NewNop())
	require.NoError(t, err)
	require.True(t, p.Enabled())
	require.NoError(t, p.Shutdown(context.Background()))
}
