package tray

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/0xMasayoshi/sumo/internal/menu"
)

// ErrAlreadyInstalled is wrapped in the *menu.InstallError returned by a
// second Install.
var ErrAlreadyInstalled = errors.New("menu already installed")

// systray only draws separators at the top level, so dividers inside a
// submenu are disabled items with this title.
const separatorTitle = "────────"

const eventBuffer = 16

// item is the subset of *systray.MenuItem the host renders with.
type item interface {
	AddSubMenuItem(title, tooltip string) item
	Disable()
	Clicked() <-chan struct{}
}

type backend interface {
	AddMenuItem(title, tooltip string) item
	Quit()
}

// Host renders a menu.Menu and delivers activations of its action items, one
// at a time, to the function registered with Listen.
type Host struct {
	backend backend
	logger  *zap.Logger
	events  chan menu.Event
	done    chan struct{}

	mu        sync.Mutex
	installed bool
	listening bool

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewHost returns a host backed by the system tray. Install must be called
// from the onReady callback passed to Run.
func NewHost(logger *zap.Logger) *Host {
	return newHost(systrayBackend{}, logger)
}

func newHost(b backend, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		backend: b,
		logger:  logger,
		events:  make(chan menu.Event, eventBuffer),
		done:    make(chan struct{}),
	}
}

// Install renders m. It may be called once; every failure is a *menu.InstallError.
func (h *Host) Install(m *menu.Menu) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.installed {
		return &menu.InstallError{Err: ErrAlreadyInstalled}
	}
	if err := m.Validate(); err != nil {
		return &menu.InstallError{Err: err}
	}

	// Validate has rejected every node render cannot draw, so nothing below
	// fails once the first item is on the tray.
	for _, sub := range m.Submenus {
		parent := h.backend.AddMenuItem(sub.Label, "")
		if !sub.Enabled {
			parent.Disable()
		}
		h.render(parent, sub.Children)
	}

	h.installed = true
	h.logger.Debug("menu installed", zap.Int("submenus", len(m.Submenus)))
	return nil
}

func (h *Host) render(parent item, nodes []menu.Node) {
	for _, node := range nodes {
		switch n := node.(type) {
		case menu.ActionItem:
			it := parent.AddSubMenuItem(n.Label, "")
			if !n.Enabled {
				it.Disable()
			}
			ev := menu.Event{ID: n.ID.String()}
			h.watch(it, func() { h.forward(ev) })

		case menu.Separator:
			parent.AddSubMenuItem(separatorTitle, "").Disable()

		case menu.Predefined:
			kind := n.Kind
			h.watch(parent.AddSubMenuItem(kind.Label(), ""), func() { h.predefined(kind) })

		case *menu.Submenu:
			sub := parent.AddSubMenuItem(n.Label, "")
			if !n.Enabled {
				sub.Disable()
			}
			h.render(sub, n.Children)
		}
	}
}

// watch calls fn for every click on it until the host is closed.
func (h *Host) watch(it item, fn func()) {
	clicked := it.Clicked()
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			select {
			case <-clicked:
				fn()
			case <-h.done:
				return
			}
		}
	}()
}

func (h *Host) forward(ev menu.Event) {
	select {
	case h.events <- ev:
	case <-h.done:
	}
}

// predefined runs the host's own behaviour for a predefined item. These never
// reach the application's handler.
func (h *Host) predefined(kind menu.PredefinedKind) {
	switch kind {
	case menu.Quit:
		h.logger.Info("quit requested from menu")
		h.backend.Quit()
	default:
		// A tray menu has no focused text field for clipboard and undo actions.
		h.logger.Debug("edit action has no target in tray menu", zap.Stringer("item", kind))
	}
}

// Listen registers fn as the receiver of all menu events and starts delivering
// them, including any that were clicked before Listen. Only the first call
// takes effect.
func (h *Host) Listen(fn func(menu.Event)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listening {
		h.logger.Warn("menu event handler already registered")
		return
	}
	h.listening = true

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			select {
			case ev := <-h.events:
				fn(ev)
			case <-h.done:
				return
			}
		}
	}()
}

// Close stops event delivery and waits for the host's goroutines to exit.
func (h *Host) Close() {
	h.closeOnce.Do(func() { close(h.done) })
	h.wg.Wait()
}
