// Package shell wires the menu, the menu host and the daemon together at startup.
package shell

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/0xMasayoshi/sumo/internal/menu"
)

// MenuHost installs a menu and delivers its events.
type MenuHost interface {
	Install(m *menu.Menu) error
	Listen(fn func(menu.Event))
}

// DaemonStarter spawns the background daemon.
type DaemonStarter interface {
	Start() error
}

// Bootstrap builds and installs the menu, starts the daemon, then hands menu
// events to router. It stops at the first failure; the caller must treat any
// returned error as fatal.
func Bootstrap(host MenuHost, daemon DaemonStarter, router *menu.Router, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	m, err := menu.Build()
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}

	if err := host.Install(m); err != nil {
		return err
	}
	logger.Debug("menu installed")

	if err := daemon.Start(); err != nil {
		return fmt.Errorf("start daemon: %w", err)
	}

	host.Listen(router.Handle)
	logger.Info("shell started")
	return nil
}
