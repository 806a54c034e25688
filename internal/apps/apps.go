// Package apps defines application-module descriptors and the discovery
// service that enumerates them for the admin hub.
package apps

import (
	"context"
	"sync"
)

// StartupHook runs once per process when the host framework starts.
// Failures are logged and contained by the hub; siblings still run.
type StartupHook func(ctx context.Context) error

// AppConfig describes one discovered application module.
type AppConfig struct {
	// ImportPath is the stable unique key of the application module
	ImportPath string

	// Label groups the app's models in menus and the sidebar
	Label string

	// ModelModules are the adapter model modules this app declares
	ModelModules []string

	// Startup is the app's one-time async startup hook; nil means no-op
	Startup StartupHook
}

// Ready invokes the startup hook when present
func (c *AppConfig) Ready(ctx context.Context) error {
	if c == nil || c.Startup == nil {
		return nil
	}
	return c.Startup(ctx)
}

// Provider produces the app configs declared under one package root.
// Application packages register a provider at init time; runtime package
// scanning does not exist in Go, so registration replaces it.
type Provider func() []*AppConfig

// Discovery enumerates app configs for requested package roots.
type Discovery struct {
	mu        sync.Mutex
	providers map[string][]Provider
	order     []string
}

// NewDiscovery creates an empty discovery service
func NewDiscovery() *Discovery {
	return &Discovery{providers: make(map[string][]Provider)}
}

// RegisterProvider attaches a provider to a package root
func (d *Discovery) RegisterProvider(root string, provider Provider) {
	if provider == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.providers[root]; !exists {
		d.order = append(d.order, root)
	}
	d.providers[root] = append(d.providers[root], provider)
}

// DiscoverAll returns the configs of every requested root, preserving
// provider registration order within each root. Unknown roots yield
// nothing; they are not an error, matching scan-style discovery where an
// empty package is simply empty.
func (d *Discovery) DiscoverAll(roots []string) []*AppConfig {
	if len(roots) == 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	var configs []*AppConfig
	for _, root := range roots {
		for _, provider := range d.providers[root] {
			configs = append(configs, provider()...)
		}
	}
	return configs
}
