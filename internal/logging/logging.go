package logging

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Output goes to a file under the
// data directory: the terminal is owned by the UI, so nothing may be
// written to stdout or stderr while the program runs.
func New(dataDir string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	logPath := filepath.Join(dataDir, "sonotes.log")
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// Nop returns a logger that discards everything. Used by tests and as a
// fallback when the log file cannot be opened.
func Nop() *zap.Logger {
	return zap.NewNop()
}
