package site

import (
	"net/http"
	"strings"
	"sync"

	"github.com/adminkit/adminkit/internal/adapter"
)

// Route is one HTTP route contributed by a model admin. Admins return an
// explicit route table instead of registering handlers as a side effect of
// construction.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// ModelAdmin is the per-model admin configuration bound into the registry.
type ModelAdmin interface {
	// VerboseNamePlural is the human display name used in menus and the sidebar
	VerboseNamePlural() string

	// Routes returns the admin's route table, mounted under the model path
	Routes() []Route
}

// RegistryEntry is one registered (app label, model slug) binding. Entries
// are immutable once created; re-registering the same key replaces the
// entry wholesale.
type RegistryEntry struct {
	App      string
	Slug     string
	Admin    ModelAdmin
	Icon     string
	Settings bool
	Adapter  adapter.Adapter
}

type registryKey struct {
	app  string
	slug string
}

func keyFor(app, slug string) registryKey {
	return registryKey{app: strings.ToLower(app), slug: strings.ToLower(slug)}
}

// ModelRegistry stores registry entries keyed by lowercased (app, slug).
// Same-key re-registration is last-write-wins by design, not an error;
// insertion order is preserved for menu stability.
type ModelRegistry struct {
	mu      sync.RWMutex
	entries map[registryKey]RegistryEntry
	order   []registryKey
}

// NewModelRegistry creates an empty model registry
func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{entries: make(map[registryKey]RegistryEntry)}
}

// Register stores the entry, replacing any prior entry under the same key
func (r *ModelRegistry) Register(entry RegistryEntry) {
	key := keyFor(entry.App, entry.Slug)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; !exists {
		r.order = append(r.order, key)
	}
	r.entries[key] = entry
}

// Lookup returns the entry registered under (app, slug)
func (r *ModelRegistry) Lookup(app, slug string) (RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[keyFor(app, slug)]
	return entry, ok
}

// Entries returns all entries in insertion order
func (r *ModelRegistry) Entries() []RegistryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]RegistryEntry, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.entries[key])
	}
	return out
}

// Len returns the number of registered entries
func (r *ModelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
