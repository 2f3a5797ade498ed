package menu

import "go.uber.org/zap"

// Handlers are the callbacks for application-defined menu items.
type Handlers struct {
	// About is called for ItemAboutSumo.
	About func()
}

// Router dispatches menu events to Handlers.
type Router struct {
	handlers Handlers
	logger   *zap.Logger
}

// NewRouter creates a router. A nil About handler is replaced by a stub that
// only logs, until the About window exists.
func NewRouter(h Handlers, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Router{handlers: h, logger: logger}
	if r.handlers.About == nil {
		r.handlers.About = r.aboutStub
	}
	return r
}

// Handle dispatches ev. Unknown identifiers, including the host's own
// predefined items, are ignored.
func (r *Router) Handle(ev Event) {
	switch id := ParseItemID(ev.ID); id {
	case ItemAboutSumo:
		r.handlers.About()
	case ItemUnknown:
		r.logger.Debug("ignoring menu event", zap.String("id", ev.ID))
	}
}

func (r *Router) aboutStub() {
	r.logger.Info("About Sumo: not yet implemented")
}
