package refiners

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/logger"
)

func TestTraceOnlyAtTraceVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      int
	}{
		{logger.VerbosityDebug, 0},
		{logger.VerbosityTrace, 1},
	}

	for _, tt := range tests {
		root, _ := clientTree()
		root.AddClass(modelClass("Entity", stringProp("type")))

		core, logs := observer.New(zapcore.DebugLevel)
		run := newTestRun(t, config.Go, root)
		run.Logger = zap.New(core).Sugar()
		run.Config.Log.Verbosity = tt.verbosity

		runPasses(t, run, pass("replace-reserved-names", ReplaceReservedNames(ReservedNameOptions{
			Replace: func(s string) string { return s + "Escaped" },
		})))

		traced := logs.FilterMessageSnippet("escaped reserved property")
		if assert.Equal(t, tt.want, traced.Len(), "verbosity %d", tt.verbosity) && tt.want > 0 {
			fields := traced.All()[0].ContextMap()
			assert.Equal(t, "replace-reserved-names", fields[logger.FieldPass])
			assert.Contains(t, fields[logger.FieldElement], "typeEscaped")
		}
	}
}

func TestTraceToleratesMissingConfig(t *testing.T) {
	run := &Run{Logger: zap.NewNop().Sugar()}
	assert.NotPanics(t, func() { run.Trace(codedom.NewRootNamespace("ApiSdk"), "noop") })
}
