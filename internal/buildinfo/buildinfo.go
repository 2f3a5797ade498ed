// Package buildinfo holds version information injected at build time:
//
//	go build -ldflags "-X github.com/0xMasayoshi/sumo/internal/buildinfo.Version=v0.1.0"
package buildinfo

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
