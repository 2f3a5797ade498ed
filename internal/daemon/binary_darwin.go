//go:build darwin

package daemon

const binaryPath = "bin/darwin/sumo-daemon"
