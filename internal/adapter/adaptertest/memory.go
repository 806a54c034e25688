// Package adaptertest provides an in-memory adapter implementation used by
// tests across the runtime packages.
package adaptertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/adminkit/adminkit/internal/adapter"
)

// User is the in-memory user model prototype
type User struct {
	ID       int
	Username string
}

// UserPermission is the in-memory user permission model prototype
type UserPermission struct {
	ID     int
	UserID int
	Action string
}

// GroupPermission is the in-memory group permission model prototype
type GroupPermission struct {
	ID      int
	GroupID int
	Action  string
}

// Group is the in-memory group model prototype
type Group struct {
	ID   int
	Name string
}

// ContentType is the in-memory content type model prototype
type ContentType struct {
	ID    int
	App   string
	Model string
}

// SystemSetting is the in-memory system setting model prototype
type SystemSetting struct {
	ID    int
	Key   string
	Value string
}

// MemoryAdapter satisfies the adapter contract with map-backed storage.
// Every binding is populated by default; tests drop bindings through the
// Binding field to exercise validation failures.
type MemoryAdapter struct {
	AdapterName string
	Modules     []string
	Binding     adapter.Bindings

	// ImportedModules records every module passed to ImportModules,
	// in call order, so tests can assert dedup and ordering.
	ImportedModules []string
	ImportCalls     int
	InitCalls       int
	ShutdownCalls   int

	mu      sync.Mutex
	storage map[string][]map[string]any
	nextID  int
}

// New returns a memory adapter with a complete binding set
func New(name string) *MemoryAdapter {
	return &MemoryAdapter{
		AdapterName: name,
		Binding: adapter.Bindings{
			UserModel:            User{},
			UserPermissionModel:  UserPermission{},
			GroupModel:           Group{},
			GroupPermissionModel: GroupPermission{},
			ContentTypeModel:     ContentType{},
			SystemSettingModel:   SystemSetting{},
			PermActions:          []string{"view", "add", "change", "delete"},
			SettingValueTypes:    []string{"string", "integer", "boolean", "json"},
		},
		storage: make(map[string][]map[string]any),
		nextID:  1,
	}
}

// Name implements adapter.Adapter
func (m *MemoryAdapter) Name() string { return m.AdapterName }

// ModelModules implements adapter.Adapter
func (m *MemoryAdapter) ModelModules() []string { return m.Modules }

// Bindings implements adapter.Adapter
func (m *MemoryAdapter) Bindings() adapter.Bindings { return m.Binding }

// ImportModules records the imported module list
func (m *MemoryAdapter) ImportModules(_ context.Context, modules []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImportCalls++
	m.ImportedModules = append(m.ImportedModules, modules...)
	return nil
}

// Init implements adapter.Adapter
func (m *MemoryAdapter) Init(_ context.Context) error {
	m.InitCalls++
	return nil
}

// Shutdown implements adapter.Adapter
func (m *MemoryAdapter) Shutdown(_ context.Context) error {
	m.ShutdownCalls++
	return nil
}

// Create stores a record under the model bucket
func (m *MemoryAdapter) Create(_ context.Context, model string, fields map[string]any) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		record[k] = v
	}
	record["id"] = m.nextID
	m.nextID++
	m.storage[model] = append(m.storage[model], record)
	return record, nil
}

// Get returns the single record matching filters
func (m *MemoryAdapter) Get(ctx context.Context, model string, filters map[string]any) (any, error) {
	matches, err := m.Filter(ctx, model, filters)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: no record matches", model)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("%s: multiple records match", model)
	}
	return matches[0], nil
}

// Filter returns all records matching filters
func (m *MemoryAdapter) Filter(_ context.Context, model string, filters map[string]any) ([]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []any
	for _, record := range m.storage[model] {
		matched := true
		for k, v := range filters {
			if record[k] != v {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, record)
		}
	}
	return out, nil
}

// Order returns matching records; insertion order stands in for sorting
func (m *MemoryAdapter) Order(ctx context.Context, model string, filters map[string]any, _ ...string) ([]any, error) {
	return m.Filter(ctx, model, filters)
}

// Save is a no-op; records are stored by reference
func (m *MemoryAdapter) Save(_ context.Context, _ any) error { return nil }

// Delete is a no-op for map-backed tests
func (m *MemoryAdapter) Delete(_ context.Context, _ any) error { return nil }

// Transaction runs fn directly; there is nothing to roll back
func (m *MemoryAdapter) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ adapter.Adapter = (*MemoryAdapter)(nil)
