package site

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/adminkit/adminkit/internal/config"
)

// ViewEntry is one hand-registered custom view. It lives in a namespace of
// its own and is merged with model-registry entries only at sidebar-build
// time; it is never written into the model registry.
type ViewEntry struct {
	Path     string
	Name     string
	Icon     string
	Label    string
	Settings bool
	Handler  http.HandlerFunc
}

// SidebarItem is one leaf of the navigation tree
type SidebarItem struct {
	ModelName   string
	DisplayName string
	Path        string
	Icon        string
	Settings    bool
}

// SidebarGroup is one labeled bucket of sidebar items
type SidebarGroup struct {
	Label string
	Items []SidebarItem
}

// Resolution describes how a request path maps onto the admin sections
type Resolution struct {
	NormalizedPath string
	SectionMode    string
	AppLabel       string
	ModelSlug      string
	IsSettings     bool
}

// PageRegistry tracks hand-registered views and resolves request paths
// against the configured section prefixes.
type PageRegistry struct {
	settings func() *config.Settings

	mu      sync.RWMutex
	entries []ViewEntry
	byPath  map[string]int
}

// NewPageRegistry creates a page registry reading prefixes through the
// given settings accessor
func NewPageRegistry(settings func() *config.Settings) *PageRegistry {
	return &PageRegistry{
		settings: settings,
		byPath:   make(map[string]int),
	}
}

// RegisterView records a custom view. Paths are normalized; registering
// the same path again replaces the prior entry.
func (p *PageRegistry) RegisterView(entry ViewEntry) error {
	if entry.Path == "" {
		return fmt.Errorf("view path is required")
	}
	entry.Path = config.NormalizePrefix(entry.Path)
	if entry.Label == "" {
		segments := config.SplitPrefix(entry.Path)
		if len(segments) > 0 {
			entry.Label = segments[len(segments)-1]
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if idx, exists := p.byPath[entry.Path]; exists {
		p.entries[idx] = entry
		return nil
	}
	p.byPath[entry.Path] = len(p.entries)
	p.entries = append(p.entries, entry)
	return nil
}

// Entries returns all view entries in registration order
func (p *PageRegistry) Entries() []ViewEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]ViewEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// sectionRoots returns the bare section landing paths
func (p *PageRegistry) sectionRoots() map[string]bool {
	s := p.settings()
	return map[string]bool{
		s.ViewsPrefix:    true,
		s.ORMPrefix:      true,
		s.SettingsPrefix: true,
	}
}

// SidebarViews returns view entries grouped by label, filtered by the
// settings flag. Section landing pages (entries registered at a bare
// section root) are suppressed: they are navigation targets of the section
// itself, not sidebar leaves.
func (p *PageRegistry) SidebarViews(settings bool) []SidebarGroup {
	roots := p.sectionRoots()

	p.mu.RLock()
	defer p.mu.RUnlock()

	grouped := make(map[string][]SidebarItem)
	var labels []string
	for _, entry := range p.entries {
		if entry.Settings != settings {
			continue
		}
		if roots[entry.Path] {
			continue
		}
		if _, seen := grouped[entry.Label]; !seen {
			labels = append(labels, entry.Label)
		}
		grouped[entry.Label] = append(grouped[entry.Label], SidebarItem{
			ModelName:   entry.Name,
			DisplayName: entry.Name,
			Path:        entry.Path,
			Icon:        entry.Icon,
			Settings:    entry.Settings,
		})
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return strings.ToLower(labels[i]) < strings.ToLower(labels[j])
	})
	out := make([]SidebarGroup, 0, len(labels))
	for _, label := range labels {
		out = append(out, SidebarGroup{Label: label, Items: grouped[label]})
	}
	return out
}

// Resolve maps a request path onto the admin sections. The admin prefix is
// trimmed first; the remaining path is matched against the views, ORM, and
// settings prefixes in that order.
func (p *PageRegistry) Resolve(path string) Resolution {
	s := p.settings()
	trimmed := path
	if prefix := s.AdminPrefix; prefix != "/" && strings.HasPrefix(trimmed, prefix) {
		trimmed = trimmed[len(prefix):]
	}
	normalized := config.NormalizePrefix(trimmed)

	res := Resolution{NormalizedPath: normalized}
	for _, section := range []struct {
		mode     string
		prefix   string
		settings bool
	}{
		{"views", s.ViewsPrefix, false},
		{"orm", s.ORMPrefix, false},
		{"settings", s.SettingsPrefix, true},
	} {
		rest, ok := matchSection(normalized, section.prefix)
		if !ok {
			continue
		}
		res.SectionMode = section.mode
		res.IsSettings = section.settings
		segments := config.SplitPrefix(rest)
		if len(segments) > 0 {
			res.AppLabel = segments[0]
		}
		if len(segments) > 1 {
			res.ModelSlug = segments[1]
		}
		return res
	}
	return res
}

// matchSection reports whether path falls under prefix and returns the rest
func matchSection(path, prefix string) (string, bool) {
	if path == prefix {
		return "", true
	}
	if strings.HasPrefix(path, prefix+"/") {
		return path[len(prefix):], true
	}
	return "", false
}
