//go:build !windows

package daemon

import "syscall"

// sysProcAttr returns nil: on Unix the child keeps the default process group
// and needs no extra attributes once its stdio points at the null device.
func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
