package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across refinery.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID = "run_id"

	// Components
	FieldComponent = "component"
	FieldLanguage  = "language"
	FieldPass      = "pass"
	FieldElement   = "element"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError   = "error"
	FieldWarning = "warning"

	// Counts and sizes
	FieldCount    = "count"
	FieldPasses   = "passes"
	FieldWarnings = "warnings"

	// Files
	FieldFile = "file"
)

// Context keys for propagating logging context
type contextKey string

const (
	runIDKey     contextKey = "logger_run_id"
	componentKey contextKey = "logger_component"
)

// WithRunID adds a refinement run ID to the context for logging
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext returns the run ID stored by WithRunID, if any
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if runID := RunIDFromContext(ctx); runID != "" {
		fields = append(fields, FieldRunID, runID)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// LoggerFromContext returns a logger with fields extracted from context.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	type Refiner struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func New() *Refiner {
//	    return &Refiner{logger: logger.ComponentLogger("refiners")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
