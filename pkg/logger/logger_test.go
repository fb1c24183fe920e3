package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"catalog/config"
	"catalog/infrastructure/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNilLoggerSafety(t *testing.T) {
	original := log
	defer func() { log = original }()
	log = nil

	Debug("test debug")
	Info("test info")
	Warn("test warn")
	Error("test error")

	assert.NotNil(t, With(zap.String("key", "value")))
	assert.NotNil(t, WithRequestID("test-id"))
	assert.NotNil(t, WithContext(map[string]any{"test": "value"}))
	assert.NotNil(t, Get())
	assert.NoError(t, Sync())
}

func TestFromContextAddsRequestID(t *testing.T) {
	original := log
	defer func() { log = original }()

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	ctx := persistence.ContextWithRequestID(context.Background(), "op-42")
	FromContext(ctx).Info("seeding")
	FromContext(context.Background()).Info("no id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "op-42", entries[0].ContextMap()["request_id"])
	_, has := entries[1].ContextMap()["request_id"]
	assert.False(t, has)
}

func TestDynamicLogLevel(t *testing.T) {
	original := log
	defer func() { log = original }()

	require.NoError(t, Init(&config.LogConfig{Level: "debug", Output: "stderr"}, "development"))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))

	UpdateLevel("info")
	assert.False(t, Get().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Get().Core().Enabled(zapcore.InfoLevel))

	UpdateLevel("unknown")
	assert.True(t, Get().Core().Enabled(zapcore.InfoLevel))
}

func TestFileOutput(t *testing.T) {
	original := log
	defer func() { log = original }()

	testFile := filepath.Join(t.TempDir(), "logs", "catalog.log")
	fileConfig := &config.LogConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: testFile,
	}

	require.NoError(t, Init(fileConfig, "production"))
	for i := 0; i < 10; i++ {
		Info("Log entry for test", zap.Int("entry", i))
	}
	_ = Sync()

	fileInfo, err := os.Stat(testFile)
	require.NoError(t, err)
	assert.NotZero(t, fileInfo.Size())
}

func TestWithContextTypes(t *testing.T) {
	original := log
	defer func() { log = original }()

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	WithContext(map[string]any{
		"string_field": "test_value",
		"int_field":    123,
		"bool_field":   true,
	}).Info("context logger test")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "test_value", fields["string_field"])
	assert.Equal(t, int64(123), fields["int_field"])
	assert.Equal(t, true, fields["bool_field"])
}
