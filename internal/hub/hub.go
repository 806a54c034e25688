// Package hub implements the admin hub: app-config discovery and
// registration, startup orchestration, and the cached router wrapper that
// ties the admin site to the HTTP server.
package hub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/adminkit/adminkit/internal/adapter"
	"github.com/adminkit/adminkit/internal/apps"
	"github.com/adminkit/adminkit/internal/config"
	"github.com/adminkit/adminkit/internal/router"
	"github.com/adminkit/adminkit/internal/site"
)

// AdapterSource lazily resolves the adapter the hub should bind to.
type AdapterSource func() (adapter.Adapter, error)

// Option configures an AdminHub at construction time.
type Option func(*hubConfig)

type hubConfig struct {
	site        site.Site
	adapter     adapter.Adapter
	source      AdapterSource
	discovery   *apps.Discovery
	aggregator  func(site.Site) *router.RouterAggregator
	guardPrefix string
}

// WithSite supplies a pre-built site; the hub skips adapter resolution
func WithSite(s site.Site) Option {
	return func(cfg *hubConfig) { cfg.site = s }
}

// WithAdapter binds the hub to an explicit adapter instance
func WithAdapter(a adapter.Adapter) Option {
	return func(cfg *hubConfig) { cfg.adapter = a }
}

// WithAdapterSource supplies a lazy adapter resolver, consulted when no
// explicit adapter was given
func WithAdapterSource(src AdapterSource) Option {
	return func(cfg *hubConfig) { cfg.source = src }
}

// WithDiscovery supplies the discovery service for Autodiscover
func WithDiscovery(d *apps.Discovery) Option {
	return func(cfg *hubConfig) { cfg.discovery = d }
}

// AdminHub coordinates app configs around one admin site. Configs start in
// registration order and at most once; a failing config is logged and
// skipped so its siblings still start.
type AdminHub struct {
	runtime   *adapter.RuntimeContext
	discovery *apps.Discovery

	mu         sync.Mutex
	site       site.Site
	configs    map[string]*apps.AppConfig
	order      []string
	started    map[string]bool
	aggregator *router.RouterAggregator
}

// New creates a hub bound to an adapter resolved in priority order: the
// explicit adapter option, then the adapter source, then the runtime
// context's default adapter setting. The hub registers itself as a settings
// observer, so a wholesale snapshot replacement through the store reaches
// HandleSettingsUpdate without any extra wiring.
func New(rc *adapter.RuntimeContext, opts ...Option) (*AdminHub, error) {
	cfg := &hubConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	h := &AdminHub{
		runtime:   rc,
		discovery: cfg.discovery,
		configs:   make(map[string]*apps.AppConfig),
		started:   make(map[string]bool),
	}
	if h.discovery == nil {
		h.discovery = apps.NewDiscovery()
	}

	if cfg.site != nil {
		h.site = cfg.site
	} else {
		a, err := resolveAdapter(rc, cfg)
		if err != nil {
			return nil, err
		}
		h.site = site.NewAdminSite(a, rc.Settings.Current())
	}

	rc.Settings.RegisterObserver(h.HandleSettingsUpdate)
	return h, nil
}

// resolveAdapter picks the adapter per the construction priority order
func resolveAdapter(rc *adapter.RuntimeContext, cfg *hubConfig) (adapter.Adapter, error) {
	if cfg.adapter != nil {
		return cfg.adapter, nil
	}
	if cfg.source != nil {
		return cfg.source()
	}
	name := rc.Settings.Current().DefaultAdapter
	if name == "" {
		return nil, fmt.Errorf("no adapter bound and no default adapter configured")
	}
	a, err := rc.Adapters.Get(name)
	if err != nil {
		return nil, fmt.Errorf("resolving default adapter: %w", err)
	}
	return a, nil
}

// Site returns the admin site the hub drives
func (h *AdminHub) Site() site.Site {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.site
}

// Discovery returns the hub's discovery service
func (h *AdminHub) Discovery() *apps.Discovery { return h.discovery }

// RegisterConfig records an app config, keyed by import path. It reports
// whether the config was new; re-registering a known path is a no-op.
func (h *AdminHub) RegisterConfig(cfg *apps.AppConfig) bool {
	if cfg == nil || cfg.ImportPath == "" {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.configs[cfg.ImportPath]; exists {
		return false
	}
	h.configs[cfg.ImportPath] = cfg
	h.order = append(h.order, cfg.ImportPath)
	return true
}

// Configs returns the registered configs in registration order
func (h *AdminHub) Configs() []*apps.AppConfig {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*apps.AppConfig, 0, len(h.order))
	for _, path := range h.order {
		out = append(out, h.configs[path])
	}
	return out
}

// Autodiscover enumerates app configs under the given package roots and
// registers the ones not seen before. The router cache is invalidated only
// when something new arrived; rediscovering a stable set leaves the cached
// router intact. The discovered list is returned in full regardless of
// novelty.
func (h *AdminHub) Autodiscover(roots []string) []*apps.AppConfig {
	discovered := h.discovery.DiscoverAll(roots)

	added := 0
	for _, cfg := range discovered {
		if h.RegisterConfig(cfg) {
			added++
		}
	}
	if added > 0 {
		slog.Info("Discovered application configs", "new", added, "roots", roots)
		h.InvalidateRouterCache()
	}
	return discovered
}

// InitApp autodiscovers the given roots and mounts the composed router
// onto the server.
func (h *AdminHub) InitApp(server *router.Server, roots []string) error {
	h.Autodiscover(roots)
	return h.Router().Mount(server)
}

// StartAppConfigs runs the startup hook of every not-yet-started config in
// registration order. A failing hook is logged with its import path and
// skipped. Repeat calls only touch configs that have not started yet.
func (h *AdminHub) StartAppConfigs(ctx context.Context) {
	for _, cfg := range h.Configs() {
		h.mu.Lock()
		alreadyStarted := h.started[cfg.ImportPath]
		h.mu.Unlock()
		if alreadyStarted {
			continue
		}

		if err := cfg.Ready(ctx); err != nil {
			slog.Error("App config startup failed", "importPath", cfg.ImportPath, "error", err)
			continue
		}

		h.mu.Lock()
		h.started[cfg.ImportPath] = true
		h.mu.Unlock()
	}
}

// Started reports whether the config under the given import path has
// started
func (h *AdminHub) Started(importPath string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.started[importPath]
}

// HandleSettingsUpdate propagates a new settings snapshot: the site swaps
// its snapshot, the router cache is invalidated, and the cards subsystem
// is reconfigured. Card subsystems implementing the structured hook get
// the whole snapshot; older ones get the event cache path assigned
// directly. Both branches converge on the same observable state.
func (h *AdminHub) HandleSettingsUpdate(s *config.Settings) {
	if s == nil {
		return
	}
	h.mu.Lock()
	currentSite := h.site
	h.mu.Unlock()

	currentSite.ApplySettings(s)
	h.InvalidateRouterCache()

	switch cards := currentSite.Cards().(type) {
	case site.SettingsApplier:
		cards.ApplySettings(s)
	case interface{ ConfigureEventCache(string) }:
		cards.ConfigureEventCache(s.EventCachePath)
	}
	slog.Debug("Settings update applied", "revision", s.Revision)
}

// Router returns the router aggregator, constructing it lazily. The same
// aggregator is reused until the cache is invalidated.
func (h *AdminHub) Router() *router.RouterAggregator {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.aggregator == nil {
		h.aggregator = router.NewRouterAggregator(h.site)
	}
	return h.aggregator
}

// InvalidateRouterCache drops both cache levels: the aggregator's cached
// admin router and the aggregator itself. The next access rebuilds from
// scratch, including static and media mount bookkeeping.
func (h *AdminHub) InvalidateRouterCache() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.aggregator != nil {
		h.aggregator.InvalidateAdminRouter()
		h.aggregator = nil
	}
}
