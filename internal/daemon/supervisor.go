package daemon

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"
)

const (
	// Port is the local port the daemon is told to listen on.
	Port = 5040

	// Profile is the daemon's profile directory, relative to its working directory.
	Profile = ".sumo"
)

// ErrAlreadyStarted is returned by Start after the daemon has been spawned once.
var ErrAlreadyStarted = errors.New("daemon already started")

// DefaultArgs returns the fixed daemon argument vector.
func DefaultArgs() []string {
	return []string{"--port", fmt.Sprint(Port), "--profile", Profile}
}

// LaunchSpec describes how the daemon is invoked. Standard streams are always
// discarded, so they have no field here.
type LaunchSpec struct {
	Path string
	Args []string
}

// DefaultLaunchSpec resolves BinaryPath against installDir.
func DefaultLaunchSpec(installDir string) LaunchSpec {
	return LaunchSpec{
		Path: filepath.Join(installDir, filepath.FromSlash(BinaryPath())),
		Args: DefaultArgs(),
	}
}

// SpawnError reports that the OS could not create the daemon process.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Supervisor spawns the daemon once and keeps no handle to it afterwards.
type Supervisor struct {
	spec    LaunchSpec
	logger  *zap.Logger
	started atomic.Bool
}

// NewSupervisor creates a supervisor for spec. A nil logger disables logging.
func NewSupervisor(spec LaunchSpec, logger *zap.Logger) *Supervisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Supervisor{spec: spec, logger: logger}
}

// Spec returns the launch spec the supervisor was created with.
func (s *Supervisor) Spec() LaunchSpec {
	return s.spec
}

// Start spawns the daemon and returns as soon as the process exists. It does
// not wait for the daemon to become ready. The returned error is a
// *SpawnError when the OS refuses to create the process.
//
// The process handle is released, never waited on. On Unix a daemon that
// exits first stays a zombie until the shell exits; the shell does not track
// the daemon's lifetime.
func (s *Supervisor) Start() error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	// Nil stdio means os/exec connects all three streams to the null device.
	cmd := exec.Command(s.spec.Path, s.spec.Args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = sysProcAttr()

	if err := cmd.Start(); err != nil {
		s.started.Store(false)
		return &SpawnError{Path: s.spec.Path, Err: err}
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		s.logger.Warn("failed to release daemon process handle", zap.Int("pid", pid), zap.Error(err))
	}

	s.logger.Info("daemon started",
		zap.String("path", s.spec.Path),
		zap.Strings("args", s.spec.Args),
		zap.Int("pid", pid),
	)
	return nil
}
