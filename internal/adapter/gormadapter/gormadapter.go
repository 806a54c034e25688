// Package gormadapter implements the adapter contract on top of GORM with
// a PostgreSQL backend.
package gormadapter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/adminkit/adminkit/internal/adapter"
)

// AdapterName is the registry name of this adapter
const AdapterName = "gorm"

// SystemModule is the module name carrying the adapter's own system models
const SystemModule = "gormadapter/system"

// User is the system user model
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:150"`
	Email     string `gorm:"size:254"`
	Password  string `gorm:"size:128"`
	IsStaff   bool
	IsActive  bool `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPermission grants a permission action on a content type to a user
type UserPermission struct {
	ID            uint `gorm:"primaryKey"`
	UserID        uint `gorm:"index"`
	ContentTypeID uint `gorm:"index"`
	Action        string
}

// Group is the system group model
type Group struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:150"`
}

// GroupPermission grants a permission action on a content type to a group
type GroupPermission struct {
	ID            uint `gorm:"primaryKey"`
	GroupID       uint `gorm:"index"`
	ContentTypeID uint `gorm:"index"`
	Action        string
}

// ContentType identifies a registered model by app label and slug
type ContentType struct {
	ID    uint   `gorm:"primaryKey"`
	App   string `gorm:"index:idx_content_type,unique"`
	Model string `gorm:"index:idx_content_type,unique"`
}

// SystemSetting is one persisted configuration value
type SystemSetting struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex;size:255"`
	Value     string
	ValueType string
	UpdatedAt time.Time
}

// Options configures the adapter
type Options struct {
	// DSN is the PostgreSQL connection string
	DSN string

	// DB injects an open handle (primarily for testing); when set,
	// DSN is ignored and Init does not dial.
	DB *gorm.DB
}

// GormAdapter binds the admin runtime to GORM-managed PostgreSQL storage.
// Model modules are groups of GORM models registered under a module name;
// importing a module auto-migrates its models.
type GormAdapter struct {
	opts Options

	mu       sync.Mutex
	db       *gorm.DB
	modules  map[string][]any
	order    []string
	imported map[string]bool
	models   map[string]any
}

// New creates a GORM adapter with its system module pre-registered
func New(opts Options) *GormAdapter {
	a := &GormAdapter{
		opts:     opts,
		db:       opts.DB,
		modules:  make(map[string][]any),
		imported: make(map[string]bool),
		models:   make(map[string]any),
	}
	a.RegisterModule(SystemModule,
		&User{}, &UserPermission{}, &Group{}, &GroupPermission{},
		&ContentType{}, &SystemSetting{},
	)
	return a
}

// Name implements adapter.Adapter
func (*GormAdapter) Name() string { return AdapterName }

// ModelModules returns the registered module names in registration order
func (a *GormAdapter) ModelModules() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Bindings implements adapter.Adapter
func (*GormAdapter) Bindings() adapter.Bindings {
	return adapter.Bindings{
		UserModel:            User{},
		UserPermissionModel:  UserPermission{},
		GroupModel:           Group{},
		GroupPermissionModel: GroupPermission{},
		ContentTypeModel:     ContentType{},
		SystemSettingModel:   SystemSetting{},
		PermActions:          []string{"view", "add", "change", "delete"},
		SettingValueTypes:    []string{"string", "integer", "boolean", "json"},
	}
}

// RegisterModule declares a named group of GORM models. Projects call this
// before boot so ImportModules can migrate them.
func (a *GormAdapter) RegisterModule(name string, models ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.modules[name]; !exists {
		a.order = append(a.order, name)
	}
	a.modules[name] = append(a.modules[name], models...)
	for _, m := range models {
		a.models[adapter.ModelName(m)] = m
	}
}

// Init opens the database connection
func (a *GormAdapter) Init(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.db != nil {
		return nil
	}
	if a.opts.DSN == "" {
		return fmt.Errorf("gorm adapter: DSN is required")
	}
	db, err := gorm.Open(postgres.Open(a.opts.DSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("gorm adapter: failed to connect: %w", err)
	}
	a.db = db
	return nil
}

// Shutdown closes the underlying connection pool
func (a *GormAdapter) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return fmt.Errorf("gorm adapter: failed to resolve pool: %w", err)
	}
	return sqlDB.Close()
}

// ImportModules auto-migrates the models of each named module. Modules
// already imported are skipped, so repeated syncs are harmless.
func (a *GormAdapter) ImportModules(_ context.Context, modules []string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.db == nil {
		return fmt.Errorf("gorm adapter: not initialized")
	}
	for _, name := range modules {
		if a.imported[name] {
			continue
		}
		models, ok := a.modules[name]
		if !ok {
			slog.Warn("Unknown model module requested for import", "adapter", AdapterName, "module", name)
			continue
		}
		if err := a.db.AutoMigrate(models...); err != nil {
			return fmt.Errorf("gorm adapter: failed to migrate module %q: %w", name, err)
		}
		a.imported[name] = true
		slog.Info("Imported model module", "adapter", AdapterName, "module", name, "models", len(models))
	}
	return nil
}

// prototype resolves a model name to its registered prototype
func (a *GormAdapter) prototype(model string) (any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	proto, ok := a.models[model]
	if !ok {
		return nil, fmt.Errorf("gorm adapter: unknown model %q", model)
	}
	return proto, nil
}

// Create inserts a record described by fields
func (a *GormAdapter) Create(ctx context.Context, model string, fields map[string]any) (any, error) {
	proto, err := a.prototype(model)
	if err != nil {
		return nil, err
	}
	if err := a.db.WithContext(ctx).Model(proto).Create(fields).Error; err != nil {
		return nil, fmt.Errorf("gorm adapter: create %s: %w", model, err)
	}
	return fields, nil
}

// Get returns the single record matching filters
func (a *GormAdapter) Get(ctx context.Context, model string, filters map[string]any) (any, error) {
	proto, err := a.prototype(model)
	if err != nil {
		return nil, err
	}
	record := map[string]any{}
	if err := a.db.WithContext(ctx).Model(proto).Where(filters).Take(&record).Error; err != nil {
		return nil, fmt.Errorf("gorm adapter: get %s: %w", model, err)
	}
	return record, nil
}

// Filter returns all records matching filters
func (a *GormAdapter) Filter(ctx context.Context, model string, filters map[string]any) ([]any, error) {
	return a.query(ctx, model, filters)
}

// Order returns matching records sorted by the given columns
func (a *GormAdapter) Order(ctx context.Context, model string, filters map[string]any, orderBy ...string) ([]any, error) {
	return a.query(ctx, model, filters, orderBy...)
}

func (a *GormAdapter) query(ctx context.Context, model string, filters map[string]any, orderBy ...string) ([]any, error) {
	proto, err := a.prototype(model)
	if err != nil {
		return nil, err
	}
	tx := a.db.WithContext(ctx).Model(proto)
	if len(filters) > 0 {
		tx = tx.Where(filters)
	}
	for _, column := range orderBy {
		tx = tx.Order(column)
	}
	var records []map[string]any
	if err := tx.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("gorm adapter: filter %s: %w", model, err)
	}
	out := make([]any, len(records))
	for i, record := range records {
		out[i] = record
	}
	return out, nil
}

// Save persists changes on a model instance
func (a *GormAdapter) Save(ctx context.Context, obj any) error {
	if err := a.db.WithContext(ctx).Save(obj).Error; err != nil {
		return fmt.Errorf("gorm adapter: save: %w", err)
	}
	return nil
}

// Delete removes a model instance
func (a *GormAdapter) Delete(ctx context.Context, obj any) error {
	if err := a.db.WithContext(ctx).Delete(obj).Error; err != nil {
		return fmt.Errorf("gorm adapter: delete: %w", err)
	}
	return nil
}

// Transaction runs fn inside a database transaction
func (a *GormAdapter) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return a.db.WithContext(ctx).Transaction(func(*gorm.DB) error {
		return fn(ctx)
	})
}

var _ adapter.Adapter = (*GormAdapter)(nil)
