//go:build windows

package daemon

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// sysProcAttr keeps the daemon off the shell's console. Without
// CREATE_NO_WINDOW a console-subsystem child of a GUI process opens its own
// console window.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NO_WINDOW,
		HideWindow:    true,
	}
}
