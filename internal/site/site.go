// Package site implements the admin site aggregate: the model registry,
// the page registry for custom views, menu building, and the dynamically
// composed admin router.
package site

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/adminkit/adminkit/internal/adapter"
	"github.com/adminkit/adminkit/internal/config"
)

//go:generate mockgen -destination=mocks/mock_site.go -package=mocks -source=site.go Site

// Site is the aggregate surface consumed by the hub, router aggregator,
// and sidebar builder.
type Site interface {
	Adapter() adapter.Adapter
	Title() string
	Register(app, slug string, admin ModelAdmin, settings bool, icon string)
	RegisterView(entry ViewEntry) error
	BuildRouter() (chi.Router, error)
	ModelEntries() []RegistryEntry
	LookupAdmin(app, slug string) (ModelAdmin, bool)
	SidebarViews(settings bool) []SidebarGroup
	Resolve(path string) Resolution
	Menu() *MenuBuilder
	Cards() CardPublishers
	FormatAppLabel(label string) string
	Finalize(ctx context.Context) error
	ApplySettings(s *config.Settings)
	Settings() *config.Settings
}

// AdminSite is the default Site implementation, binding one adapter to one
// set of registries.
type AdminSite struct {
	adapter adapter.Adapter

	mu        sync.RWMutex
	settings  *config.Settings
	title     string
	registry  *ModelRegistry
	pages     *PageRegistry
	menu      *MenuBuilder
	cards     *CardHub
	finalized bool
}

// NewAdminSite creates a site bound to the given adapter and settings
// snapshot. A nil snapshot falls back to defaults.
func NewAdminSite(a adapter.Adapter, s *config.Settings) *AdminSite {
	if s == nil {
		s = config.Default()
	}
	as := &AdminSite{
		adapter:  a,
		settings: s,
		title:    s.Title,
		registry: NewModelRegistry(),
	}
	as.pages = NewPageRegistry(as.Settings)
	as.menu = NewMenuBuilder(as.registry, as.Settings)
	as.cards = NewCardHub(s)
	return as
}

// Adapter returns the adapter this site is bound to
func (s *AdminSite) Adapter() adapter.Adapter { return s.adapter }

// Title returns the site title
func (s *AdminSite) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

// Settings returns the site's current settings snapshot
func (s *AdminSite) Settings() *config.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ApplySettings swaps the snapshot the site and its registries read from
func (s *AdminSite) ApplySettings(snapshot *config.Settings) {
	if snapshot == nil {
		return
	}
	s.mu.Lock()
	s.settings = snapshot
	s.mu.Unlock()
}

// Register binds an admin configuration under (app, slug). The entry also
// records the site's adapter so callers can verify which backend serves it.
func (s *AdminSite) Register(app, slug string, admin ModelAdmin, settings bool, icon string) {
	s.registry.Register(RegistryEntry{
		App:      app,
		Slug:     slug,
		Admin:    admin,
		Icon:     icon,
		Settings: settings,
		Adapter:  s.adapter,
	})
}

// RegisterView records a hand-registered custom view
func (s *AdminSite) RegisterView(entry ViewEntry) error {
	return s.pages.RegisterView(entry)
}

// ModelEntries returns the registered model entries in insertion order
func (s *AdminSite) ModelEntries() []RegistryEntry {
	return s.registry.Entries()
}

// LookupAdmin returns the admin bound under (app, slug)
func (s *AdminSite) LookupAdmin(app, slug string) (ModelAdmin, bool) {
	entry, ok := s.registry.Lookup(app, slug)
	if !ok || entry.Admin == nil {
		return nil, false
	}
	return entry.Admin, true
}

// SidebarViews returns the page registry's grouped sidebar views
func (s *AdminSite) SidebarViews(settings bool) []SidebarGroup {
	return s.pages.SidebarViews(settings)
}

// Resolve maps a request path onto the admin sections
func (s *AdminSite) Resolve(path string) Resolution {
	return s.pages.Resolve(path)
}

// Menu returns the menu builder
func (s *AdminSite) Menu() *MenuBuilder { return s.menu }

// Cards returns the dashboard card subsystem
func (s *AdminSite) Cards() CardPublishers { return s.cards }

// CardHub returns the concrete card hub for configuration
func (s *AdminSite) CardHub() *CardHub { return s.cards }

// FormatAppLabel turns an app label into a display label
func (s *AdminSite) FormatAppLabel(label string) string {
	return HumanizeSlug(strings.ReplaceAll(label, "-", "_"))
}

// BuildRouter composes the admin router from the model registry's route
// tables and the registered views. Every call builds a fresh router;
// caching belongs to the aggregator, not the site.
func (s *AdminSite) BuildRouter() (chi.Router, error) {
	snapshot := s.Settings()
	r := chi.NewRouter()

	r.Get("/", s.indexHandler)

	for _, entry := range s.registry.Entries() {
		prefix := snapshot.ORMPrefix
		if entry.Settings {
			prefix = snapshot.SettingsPrefix
		}
		base := prefix + "/" + strings.ToLower(entry.App) + "/" + strings.ToLower(entry.Slug)
		routes := entry.Admin.Routes()
		if len(routes) == 0 {
			continue
		}
		r.Route(base, func(sub chi.Router) {
			for _, route := range routes {
				method := route.Method
				if method == "" {
					method = http.MethodGet
				}
				sub.Method(method, route.Pattern, route.Handler)
			}
		})
	}

	for _, entry := range s.pages.Entries() {
		if entry.Handler == nil {
			continue
		}
		r.Get(entry.Path, entry.Handler)
	}

	slog.Debug("Admin router built",
		"models", s.registry.Len(),
		"views", len(s.pages.Entries()),
	)
	return r, nil
}

// indexHandler serves the admin landing payload
func (s *AdminSite) indexHandler(w http.ResponseWriter, _ *http.Request) {
	payload := map[string]any{
		"title": s.Title(),
		"menu":  s.menu.BuildMainMenu(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode admin index payload", "error", err)
	}
}

// Finalize completes site composition after all app configs have started.
// It is idempotent; repeated calls after the first are no-ops.
func (s *AdminSite) Finalize(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalized {
		return nil
	}
	s.finalized = true
	slog.Info("Admin site finalized", "title", s.title, "models", s.registry.Len())
	return nil
}

// Finalized reports whether Finalize has run
func (s *AdminSite) Finalized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finalized
}

var _ Site = (*AdminSite)(nil)
