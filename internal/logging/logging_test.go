package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{in: "", want: zapcore.InfoLevel},
		{in: "debug", want: zapcore.DebugLevel},
		{in: " WARN ", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "chatty", want: zapcore.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.log")

	logger, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("daemon started")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "daemon started")
	assert.Contains(t, string(data), "launch_id")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewFormat(t *testing.T) {
	tests := []struct {
		format string
		isJSON bool
	}{
		{format: "json", isJSON: true},
		{format: "console", isJSON: false},
		{format: " Console ", isJSON: false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "shell.log")

			logger, err := New(Options{File: path, Format: tt.format})
			require.NoError(t, err)
			logger.Info("menu installed")
			_ = logger.Sync()

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			line := strings.TrimSpace(string(data))
			assert.Equal(t, tt.isJSON, strings.HasPrefix(line, "{"), line)
			assert.Contains(t, line, "menu installed")
		})
	}
}

func TestNewRejectsBadFormat(t *testing.T) {
	_, err := New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}
