// Package logging builds the append-only execution log. Console output is
// handled separately by the ui package; the log file is the audit trail.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New opens the execution log at path and returns a sugared logger appending
// timestamped leveled lines to it.
//
// In dry-run mode a nop logger is returned so simulations leave no false
// audit trail. Log writes are best-effort: if the file cannot be opened a
// nop logger is returned instead of failing the run.
func New(path string, dryRun bool) *zap.SugaredLogger {
	if dryRun {
		return zap.NewNop().Sugar()
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zap.NewNop().Sugar()
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(f)),
		zapcore.InfoLevel,
	)

	return zap.New(core).Sugar()
}
