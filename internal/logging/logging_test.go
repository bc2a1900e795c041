package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLogLevel(t *testing.T) {
	defer func() { _ = SetLogLevel("info") }()

	assert.NoError(t, SetLogLevel("DEBUG"))
	assert.True(t, Enabled(zapcore.DebugLevel))

	assert.NoError(t, SetLogLevel("error"))
	assert.False(t, Enabled(zapcore.WarnLevel))
	assert.True(t, Enabled(zapcore.ErrorLevel))

	assert.Error(t, SetLogLevel("verbose"))
}

func TestContext(t *testing.T) {
	logger := New("test", NewField("request_id", "r-1"))
	ctx := With(context.Background(), logger)
	assert.Same(t, logger, From(ctx))

	assert.Same(t, DefaultLogger(), From(context.Background()))
	assert.NotNil(t, From(nil))
}
