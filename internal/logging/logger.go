// Package logging builds the zap logger shared by the CLI, TUI and server.
// Logs go to a lumberjack-rotated JSON file; the console core is optional
// because the TUI owns the terminal.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/config"
)

type Options struct {
	// File is the rotated JSON log path. Empty means ~/.config/fico/logs/fico.log.
	File  string
	Level string
	// Console adds a human-readable stderr core.
	Console bool
	Verbose bool
}

// FromConfig derives Options from the loaded config.
func FromConfig(cfg *config.Config, console, verbose bool) Options {
	return Options{
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Console: console,
		Verbose: verbose,
	}
}

func New(opts Options) (*zap.Logger, error) {
	path := opts.File
	if path == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "logs", "fico.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if opts.Level != "" {
		if l, err := zapcore.ParseLevel(opts.Level); err == nil {
			level.SetLevel(l)
		}
	}
	if opts.Verbose {
		level.SetLevel(zap.DebugLevel)
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // Megabytes
		MaxBackups: 5,
		MaxAge:     30, // Days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), level),
	}

	if opts.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// OrNop guards constructors that accept an optional logger.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
