// Package tray installs the application menu into the native system tray and
// forwards menu activations to the application.
package tray

import (
	"github.com/getlantern/systray"
)

const tooltip = "Sumo"

// Run starts the native menu loop. This blocks the calling goroutine, which
// must be the main goroutine (Cocoa requirement on macOS).
// onReady is called once the tray exists; install the menu there.
// onExit is called when the tray exits.
func Run(onReady, onExit func()) {
	systray.Run(func() {
		systray.SetTemplateIcon(iconData, iconData)
		systray.SetTooltip(tooltip)
		if onReady != nil {
			onReady()
		}
	}, onExit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

// systrayBackend renders onto the process-wide getlantern/systray menu.
type systrayBackend struct{}

func (systrayBackend) AddMenuItem(title, tooltip string) item {
	return systrayItem{systray.AddMenuItem(title, tooltip)}
}

func (systrayBackend) Quit() {
	systray.Quit()
}

type systrayItem struct {
	*systray.MenuItem
}

func (i systrayItem) AddSubMenuItem(title, tooltip string) item {
	return systrayItem{i.MenuItem.AddSubMenuItem(title, tooltip)}
}

func (i systrayItem) Clicked() <-chan struct{} {
	return i.ClickedCh
}
