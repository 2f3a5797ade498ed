package daemon

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSupervisorStartMissingBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin", "missing", "sumo-daemon")
	sup := NewSupervisor(LaunchSpec{Path: path, Args: DefaultArgs()}, zap.NewNop())

	err := sup.Start()
	require.Error(t, err)

	var spawnErr *SpawnError
	require.True(t, errors.As(err, &spawnErr), "expected *SpawnError, got %T", err)
	assert.Equal(t, path, spawnErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), path)
}

func TestSupervisorNilLogger(t *testing.T) {
	sup := NewSupervisor(LaunchSpec{Path: "unused"}, nil)
	require.NotNil(t, sup.logger)
	assert.Equal(t, "unused", sup.Spec().Path)
}

func TestSpawnErrorUnwrap(t *testing.T) {
	inner := errors.New("resource exhausted")
	err := &SpawnError{Path: "/opt/sumo/bin/linux/sumo-daemon", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "spawn /opt/sumo/bin/linux/sumo-daemon: resource exhausted", err.Error())
}

func TestSupervisorStartFailureNotLoggedAsStarted(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sup := NewSupervisor(LaunchSpec{Path: filepath.Join(t.TempDir(), "nope")}, zap.New(core))

	require.Error(t, sup.Start())
	assert.Zero(t, logs.FilterMessage("daemon started").Len())
}
