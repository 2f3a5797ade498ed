// Package daemon resolves and launches the sumo-daemon background service.
package daemon

// BinaryPath returns the daemon executable path, slash-separated and relative
// to the shell's installation directory. The value is fixed per GOOS at build
// time; building for a platform without a binary_<goos>.go file fails because
// binaryPath is undefined.
func BinaryPath() string {
	return binaryPath
}
