// Package logging builds the shell's zap logger.
package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Options configures New.
type Options struct {
	Level  string // "debug" | "info" | "warn" | "error"; empty means info
	File   string // extra output path; empty disables file logging
	Format string // "console" | "json"; empty picks console only when stderr is a terminal
}

// ParseLevel converts a settings level name into a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}

// useConsole reports whether format selects the console encoder.
func useConsole(format string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "":
		return term.IsTerminal(int(os.Stderr.Fd())), nil
	case "console":
		return true, nil
	case "json":
		return false, nil
	default:
		return false, fmt.Errorf("invalid log format %q", format)
	}
}

// New returns a logger writing to stderr and, optionally, to opts.File. Every
// entry carries a launch_id unique to this process.
func New(opts Options) (*zap.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	console, err := useConsole(opts.Format)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if console {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if opts.File != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, opts.File)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("launch_id", uuid.NewString())), nil
}
