package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the process-wide logger. It discards everything until
	// Initialize is called, so library users and tests never see a nil logger.
	Logger = zap.NewNop().Sugar()

	// JSONOutput reports whether Initialize selected JSON logs
	JSONOutput bool
)

// New builds a logger writing to w. JSON output uses zap's production
// encoding; console output uses the compact minimal encoder. verbosity is the
// -v count.
func New(w io.Writer, jsonOutput bool, verbosity int) *zap.SugaredLogger {
	var enc zapcore.Encoder
	if jsonOutput {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		enc = newMinimalEncoder()
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), VerbosityToLevel(verbosity))
	return zap.New(core).Sugar()
}

// Initialize sets up the global logger. Logs go to stderr so refined trees
// and JSON reports on stdout stay machine-readable.
func Initialize(jsonOutput bool, verbosity int) error {
	JSONOutput = jsonOutput
	Logger = New(zapcore.Lock(os.Stderr), jsonOutput, verbosity)
	return nil
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	_ = Logger.Sync()
}
