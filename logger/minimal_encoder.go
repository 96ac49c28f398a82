package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
	colorDim   = "\x1b[38;5;245m"
	colorName  = "\x1b[38;5;108m"
	colorWarn  = "\x1b[38;5;214m"
	colorError = "\x1b[38;5;167m"
)

var pool = buffer.NewPool()

// minimalEncoder implements a compact console encoder.
// Format: "13:04:35  r.runner  pass done  pass=ReplaceReservedNames duration_ms=2"
type minimalEncoder struct {
	zapcore.Encoder // base encoder for With() field accumulation
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := pool.Get()

	final.AppendString(colorDim)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorName)
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(ent.Message)

	if len(fields) > 0 {
		final.AppendString("  ")
		final.AppendString(formatFields(fields))
	}

	final.AppendString("\n")
	return final, nil
}

func levelString(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return colorDim + "DEBUG" + colorReset
	case zapcore.WarnLevel:
		return colorBold + colorWarn + "WARN" + colorReset
	default:
		return colorBold + colorError + level.CapitalString() + colorReset
	}
}

// abbreviateName shortens component names: refiners.runner -> r.runner
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// formatFields renders every field as key=value; no field is ever dropped.
func formatFields(fields []zapcore.Field) string {
	values := make([]string, 0, len(fields))
	for _, field := range fields {
		values = append(values, field.Key+"="+fieldValue(field))
	}
	return strings.Join(values, " ")
}

func fieldValue(field zapcore.Field) string {
	m := zapcore.NewMapObjectEncoder()
	field.AddTo(m)
	v, ok := m.Fields[field.Key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
