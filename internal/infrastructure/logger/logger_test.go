package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = New(ProductionConfig())
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("unknown"))
}

func TestContextHelpers(t *testing.T) {
	base := zap.NewNop()
	ctx := context.Background()

	ctx, enriched := WithRequestID(ctx, base, "req-123")
	assert.NotNil(t, enriched)
	assert.Equal(t, "req-123", GetRequestID(ctx))

	ctx, _ = WithUserID(ctx, enriched, "user-456")
	assert.Equal(t, "user-456", GetUserID(ctx))

	assert.NotNil(t, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()), "missing logger yields no-op")
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("other"))
}
