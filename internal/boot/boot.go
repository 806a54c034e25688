// Package boot drives the runtime boot sequence: adapter binding and
// validation, model-module registration, middleware installation, and the
// startup/shutdown hooks that bring the admin site to a serving state.
package boot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/adminkit/adminkit/internal/adapter"
	"github.com/adminkit/adminkit/internal/apps"
	"github.com/adminkit/adminkit/internal/config"
	"github.com/adminkit/adminkit/internal/hub"
	"github.com/adminkit/adminkit/internal/router"
	"github.com/adminkit/adminkit/internal/system"
)

// ErrAdapterNotConfigured is returned when the adapter slot is accessed
// with nothing bound and no default adapter name configured.
var ErrAdapterNotConfigured = errors.New("no adapter bound and no default adapter configured")

// BootManager owns the adapter slot and the boot sequence. It moves from
// unconfigured to bound exactly once per lifetime; Reset restores the
// unconfigured state for test isolation.
type BootManager struct {
	runtime   *adapter.RuntimeContext
	discovery *apps.Discovery

	mu        sync.Mutex
	registrar *ModelRegistrar
	adapter   adapter.Adapter
	hub       *hub.AdminHub
	settings  *config.Settings
}

// New creates an unconfigured boot manager. It observes settings changes,
// refreshing only its cached snapshot reference; an already-bound adapter
// stays bound across reconfiguration.
func New(rc *adapter.RuntimeContext) *BootManager {
	b := &BootManager{
		runtime:   rc,
		discovery: apps.NewDiscovery(),
		registrar: NewModelRegistrar(),
		settings:  rc.Settings.Current(),
	}
	rc.Settings.RegisterObserver(b.handleSettingsUpdate)
	return b
}

// handleSettingsUpdate refreshes the cached settings reference only
func (b *BootManager) handleSettingsUpdate(s *config.Settings) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.settings = s
}

// Discovery returns the discovery service app packages register providers
// with
func (b *BootManager) Discovery() *apps.Discovery { return b.discovery }

// Registrar returns the shared model registrar
func (b *BootManager) Registrar() *ModelRegistrar {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.registrar
}

// Hub returns the admin hub created by Init, or nil before Init ran
func (b *BootManager) Hub() *hub.AdminHub {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hub
}

// Adapter returns the bound adapter, binding the configured default
// lazily on first access. With nothing bound and no default configured it
// fails with ErrAdapterNotConfigured.
func (b *BootManager) Adapter() (adapter.Adapter, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.adapterLocked()
}

func (b *BootManager) adapterLocked() (adapter.Adapter, error) {
	if b.adapter != nil {
		return b.adapter, nil
	}
	name := b.settings.DefaultAdapter
	if name == "" {
		return nil, ErrAdapterNotConfigured
	}
	a, err := b.runtime.Adapters.Get(name)
	if err != nil {
		return nil, fmt.Errorf("binding default adapter: %w", err)
	}
	b.adapter = a
	slog.Info("Adapter bound lazily from default", "adapter", name)
	return a, nil
}

// RegisterAppConfig adds the config's model modules to the shared
// registrar. With an adapter already bound, module synchronization runs
// immediately; syncing the same module list twice has no further effect.
func (b *BootManager) RegisterAppConfig(ctx context.Context, cfg *apps.AppConfig) error {
	b.mu.Lock()
	b.registrar.AddConfig(cfg)
	bound := b.adapter
	registrar := b.registrar
	b.mu.Unlock()

	if bound == nil {
		return nil
	}
	return registrar.SyncWithAdapter(ctx, bound)
}

// Init runs the boot sequence: binds the adapter, validates its required
// bindings, installs session and guard middleware, installs the system
// app, discovers and mounts the app configs, and registers the lifecycle
// hooks. Configuration errors abort immediately; the server must not reach
// a serving state misconfigured.
func (b *BootManager) Init(ctx context.Context, server *router.Server, adapterName string, roots []string) (*hub.AdminHub, error) {
	a, err := b.bind(adapterName)
	if err != nil {
		return nil, err
	}
	if err := a.Bindings().Validate(a.Name()); err != nil {
		return nil, err
	}
	if err := a.Init(ctx); err != nil {
		return nil, fmt.Errorf("initializing adapter %q: %w", a.Name(), err)
	}

	b.mu.Lock()
	snapshot := b.settings
	registrar := b.registrar
	b.mu.Unlock()

	server.Use(
		router.SessionMiddleware(snapshot.SessionCookie),
		router.GuardMiddleware(snapshot.AdminPrefix),
	)

	h, err := hub.New(b.runtime, hub.WithAdapter(a), hub.WithDiscovery(b.discovery))
	if err != nil {
		return nil, err
	}

	if err := system.Install(h.Site(), a); err != nil {
		return nil, fmt.Errorf("installing system app: %w", err)
	}
	systemCfg := system.Config(a)
	h.RegisterConfig(systemCfg)
	if err := b.RegisterAppConfig(ctx, systemCfg); err != nil {
		return nil, fmt.Errorf("registering system app: %w", err)
	}

	registrar.AddAdapter(a)
	for _, cfg := range h.Autodiscover(roots) {
		registrar.AddConfig(cfg)
	}
	if err := registrar.SyncWithAdapter(ctx, a); err != nil {
		return nil, fmt.Errorf("synchronizing model modules: %w", err)
	}

	if err := h.Router().Mount(server); err != nil {
		return nil, err
	}

	server.OnStartup(func(ctx context.Context) error {
		h.StartAppConfigs(ctx)
		// startup hooks register admin surfaces; drop the router built at
		// mount time so the first request serves them
		h.InvalidateRouterCache()
		if err := h.Site().Finalize(ctx); err != nil {
			return err
		}
		return h.Site().Cards().StartPublishers(ctx)
	})
	server.OnShutdown(func(ctx context.Context) error {
		if err := h.Site().Cards().ShutdownPublishers(ctx); err != nil {
			slog.Error("Failed to stop card publishers", "error", err)
		}
		return a.Shutdown(ctx)
	})

	b.mu.Lock()
	b.hub = h
	b.mu.Unlock()
	return h, nil
}

// bind resolves and stores the adapter for Init
func (b *BootManager) bind(adapterName string) (adapter.Adapter, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if adapterName == "" {
		return b.adapterLocked()
	}
	a, err := b.runtime.Adapters.Get(adapterName)
	if err != nil {
		return nil, fmt.Errorf("binding adapter: %w", err)
	}
	b.adapter = a
	return a, nil
}

// Reset restores the unconfigured state: the adapter slot and registrar
// are cleared and the settings snapshot reloaded. Test harnesses use it to
// isolate adapter selection across cases.
func (b *BootManager) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.adapter = nil
	b.hub = nil
	b.registrar.Clear()
	b.settings = b.runtime.Settings.Current()
}
