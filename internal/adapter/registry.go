package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/adminkit/adminkit/internal/config"
)

// ErrNotFound is returned when no adapter is registered under a name
var ErrNotFound = errors.New("adapter not found")

// Registry maps adapter name to adapter instance. It is monotonic: entries
// are never removed, but registering under an existing name overwrites the
// prior registration (last registration wins), which multi-adapter test
// harnesses rely on.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry creates an empty adapter registry
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register stores the adapter under its name, replacing any prior entry
func (r *Registry) Register(a Adapter) {
	if a == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.adapters[a.Name()]; exists {
		slog.Debug("Replacing registered adapter", "adapter", a.Name())
	}
	r.adapters[a.Name()] = a
}

// Get returns the adapter registered under name
func (r *Registry) Get(name string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return a, nil
}

// Names returns the registered adapter names (unordered)
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	return names
}

// RuntimeContext carries the process-wide mutable registries by reference.
// Components receive a context instead of reaching for module globals, so
// tests that need isolation construct independent contexts.
type RuntimeContext struct {
	Adapters *Registry
	Settings *config.Store
}

// NewRuntimeContext builds a context with a fresh adapter registry around
// the given settings store. A nil store gets default settings.
func NewRuntimeContext(store *config.Store) *RuntimeContext {
	if store == nil {
		store = config.NewStore(nil)
	}
	return &RuntimeContext{
		Adapters: NewRegistry(),
		Settings: store,
	}
}
