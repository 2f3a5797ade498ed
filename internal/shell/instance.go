package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning means another shell holds the instance lock.
var ErrAlreadyRunning = errors.New("another sumo shell is already running")

// Instance is the single-instance lock for the shell. A second shell would
// spawn a second daemon competing for the same port.
type Instance struct {
	lock *flock.Flock
}

// AcquireInstance takes the lock at path without blocking.
func AcquireInstance(path string) (*Instance, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}
	return &Instance{lock: lock}, nil
}

// Path returns the lock file path.
func (i *Instance) Path() string {
	return i.lock.Path()
}

// Release drops the lock.
func (i *Instance) Release() error {
	return i.lock.Unlock()
}

// InstanceRunning reports whether some process currently holds the lock at path.
func InstanceRunning(path string) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return false, err
	}
	if ok {
		_ = lock.Unlock()
		return false, nil
	}
	return true, nil
}
