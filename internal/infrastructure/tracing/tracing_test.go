package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracingWithoutCollector(t *testing.T) {
	tp, err := InitTracing(context.Background(), "")
	require.NoError(t, err)
	defer func() { assert.NoError(t, tp.Shutdown(context.Background())) }()

	_, span := tp.Tracer(ServiceName).Start(context.Background(), "test")
	assert.True(t, span.SpanContext().IsValid())
	span.End()
}
