//go:build windows

package daemon

const binaryPath = "bin/win32/sumo-daemon.exe"
