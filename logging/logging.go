// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the mstcluster command.
//
// Library packages never log on their own: they accept a *zap.SugaredLogger
// through options and default to a no-op logger.
package logging

import (
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadLevel indicates an unparseable log level.
var ErrBadLevel = errors.New("logging: unknown level")

// New returns a logger writing to w at level ("debug", "info", "warn",
// "error"; empty means "info"). jsonOutput selects structured JSON lines,
// otherwise a compact console format is used.
func New(w io.Writer, jsonOutput bool, level string) (*zap.SugaredLogger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zapcore.ParseLevel(level); err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(ErrBadLevel, "%q", level),
				"use debug, info, warn or error")
		}
	}

	var enc zapcore.Encoder
	if jsonOutput {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		cfg.EncodeCaller = nil
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)

	return zap.New(core).Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
