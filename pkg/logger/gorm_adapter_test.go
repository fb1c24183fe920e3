/*
Package logger - GORM logger adapter tests
*/
package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog/infrastructure/persistence"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm/logger"
)

func messages(logs *observer.ObservedLogs) []string {
	out := make([]string, 0, logs.Len())
	for _, e := range logs.All() {
		out = append(out, e.Message)
	}
	return out
}

func TestGormLoggerAdapterLevels(t *testing.T) {
	original := log
	defer func() { log = original }()

	testCases := []struct {
		name      string
		logLevel  logger.LogLevel
		wantInfo  bool
		wantTrace bool
	}{
		{"Warn Level", logger.Warn, false, false},
		{"Info Level", logger.Info, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			SetLogger(zap.New(core))

			adapter := NewGormLoggerAdapter(tc.logLevel)
			assert.NotNil(t, adapter.LogMode(logger.Info))

			ctx := context.Background()
			adapter.Info(ctx, "test info message")
			adapter.Warn(ctx, "test warn message")
			adapter.Error(ctx, "test error message")
			adapter.Trace(ctx, time.Now(), func() (string, int64) {
				return "SELECT * FROM categories", 1
			}, nil)

			got := messages(logs)
			assert.Equal(t, tc.wantInfo, contains(got, "test info message"))
			assert.Contains(t, got, "test warn message")
			assert.Contains(t, got, "test error message")
			assert.Equal(t, tc.wantTrace, contains(got, "SQL query executed"))
		})
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestGormLoggerAdapterSlowQueryAndRequestID(t *testing.T) {
	original := log
	defer func() { log = original }()

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	adapter := NewGormLoggerAdapterWithConfig(logger.Info, &GormLoggerConfig{
		SlowThreshold:             10 * time.Millisecond,
		IgnoreRecordNotFoundError: true,
	})
	ctx := persistence.ContextWithRequestID(context.Background(), "test-request-123")

	adapter.Trace(ctx, time.Now().Add(-20*time.Millisecond), func() (string, int64) {
		return "SELECT * FROM videos", 1
	}, nil)
	adapter.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT * FROM genres WHERE id = 'x'", 0
	}, logger.ErrRecordNotFound)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "Slow SQL query", entries[0].Message)
		assert.Equal(t, "test-request-123", entries[0].ContextMap()["request_id"])
	}
}

func TestGormLoggerAdapterReportsErrors(t *testing.T) {
	original := log
	defer func() { log = original }()

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	adapter := NewGormLoggerAdapter(logger.Error)
	adapter.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO categories", 0
	}, errors.New("boom"))

	assert.Equal(t, []string{"Database operation failed"}, messages(logs))
}

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, ParseGormLevel("silent"))
	assert.Equal(t, logger.Error, ParseGormLevel("ERROR"))
	assert.Equal(t, logger.Info, ParseGormLevel("info"))
	assert.Equal(t, logger.Warn, ParseGormLevel(""))
}
