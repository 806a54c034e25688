package boot

import (
	"context"
	"sync"

	"github.com/adminkit/adminkit/internal/adapter"
	"github.com/adminkit/adminkit/internal/apps"
)

// ModelRegistrar accumulates model module names from app configs and
// adapters. Modules are deduplicated by path with insertion order
// preserved; import side effects may be order-sensitive.
type ModelRegistrar struct {
	mu      sync.Mutex
	modules []string
	seen    map[string]bool
}

// NewModelRegistrar creates an empty registrar
func NewModelRegistrar() *ModelRegistrar {
	return &ModelRegistrar{seen: make(map[string]bool)}
}

// AddConfig accumulates the config's declared model modules
func (r *ModelRegistrar) AddConfig(cfg *apps.AppConfig) {
	if cfg == nil {
		return
	}
	r.add(cfg.ModelModules)
}

// AddAdapter accumulates the adapter's own model modules
func (r *ModelRegistrar) AddAdapter(a adapter.Adapter) {
	if a == nil {
		return
	}
	r.add(a.ModelModules())
}

func (r *ModelRegistrar) add(modules []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, module := range modules {
		if module == "" || r.seen[module] {
			continue
		}
		r.seen[module] = true
		r.modules = append(r.modules, module)
	}
}

// Modules returns the accumulated module names in insertion order
func (r *ModelRegistrar) Modules() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.modules))
	copy(out, r.modules)
	return out
}

// SyncWithAdapter hands the accumulated module list to the adapter's own
// import mechanism. Import idempotence is the adapter's contract; the
// registrar only owns deduplication and ordering.
func (r *ModelRegistrar) SyncWithAdapter(ctx context.Context, a adapter.Adapter) error {
	if a == nil {
		return nil
	}
	return a.ImportModules(ctx, r.Modules())
}

// Clear resets all accumulated state
func (r *ModelRegistrar) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules = nil
	r.seen = make(map[string]bool)
}
