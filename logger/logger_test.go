package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func stripANSI(str string) string {
	return regexp.MustCompile(`\x1b\[[0-9;]*m`).ReplaceAllString(str, "")
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
	assert.Equal(t, "Debug (-vv)", LevelName(2))
	assert.True(t, ShouldLogTrace(3))
	assert.False(t, ShouldLogTrace(2))
}

func TestMinimalEncoderKeepsEveryField(t *testing.T) {
	enc := newMinimalEncoder()
	entry := zapcore.Entry{
		Level:      zapcore.WarnLevel,
		Time:       time.Date(2026, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "refiners.runner",
		Message:    "command conflict",
	}
	fields := []zapcore.Field{
		zap.String(FieldPass, "DetectCommandConflicts"),
		zap.Int(FieldCount, 2),
		zap.Bool("fatal", false),
		zap.Strings("names", []string{"list", "list"}),
	}

	buf, err := enc.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := stripANSI(buf.String())

	assert.Contains(t, out, "13:04:35")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "r.runner")
	assert.Contains(t, out, "command conflict")
	assert.Contains(t, out, "pass=DetectCommandConflicts")
	assert.Contains(t, out, "count=2")
	assert.Contains(t, out, "fatal=false")
	assert.Contains(t, out, "names=")
}

func TestAbbreviateName(t *testing.T) {
	assert.Equal(t, "refiners", abbreviateName("refiners"))
	assert.Equal(t, "r.runner", abbreviateName("refiners.runner"))
	assert.Equal(t, "c.a.b", abbreviateName("cmd.a.b"))
}

func TestLoggerFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	saved := Logger
	Logger = zap.New(core).Sugar()
	defer func() { Logger = saved }()

	ctx := WithComponent(WithRunID(context.Background(), "run-1"), "refiners")
	assert.Equal(t, "run-1", RunIDFromContext(ctx))

	LoggerFromContext(ctx).Infow("refined", FieldLanguage, "go")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "run-1", fields[FieldRunID])
	assert.Equal(t, "refiners", fields[FieldComponent])
	assert.Equal(t, "go", fields[FieldLanguage])
}

func TestLoggerFromContextWithoutFields(t *testing.T) {
	assert.Same(t, Logger, LoggerFromContext(context.Background()))
}

func TestInitialize(t *testing.T) {
	saved := Logger
	defer func() { Logger = saved }()

	require.NoError(t, Initialize(false, VerbosityDebug))
	assert.False(t, JSONOutput)
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(true, VerbosityUser))
	assert.True(t, JSONOutput)
	assert.False(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	JSONOutput = false
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, VerbosityUser)

	log.Infow("pass complete", FieldPass, "add-getters")
	assert.Empty(t, buf.String(), "info is below the default level")

	log.Warnw("command conflict", FieldPass, "detect-command-conflicts", FieldCount, 2)
	require.NoError(t, log.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "command conflict", entry["msg"])
	assert.Equal(t, "detect-command-conflicts", entry[FieldPass])
	assert.EqualValues(t, 2, entry[FieldCount])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, VerbosityInfo).Named("refiners")
	log.Infow("refinement complete", FieldWarnings, 0)

	out := stripANSI(buf.String())
	assert.Contains(t, out, "refiners")
	assert.Contains(t, out, "refinement complete")
	assert.Contains(t, out, "warnings=0")
}
