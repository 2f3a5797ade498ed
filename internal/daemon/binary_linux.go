//go:build linux

package daemon

const binaryPath = "bin/linux/sumo-daemon"
