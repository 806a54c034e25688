// Package sidebar derives the admin navigation tree from the model
// registry and the hand-registered view pages.
package sidebar

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/adminkit/adminkit/internal/config"
	"github.com/adminkit/adminkit/internal/site"
)

// Kind selects which registry a collection pass reads from.
type Kind string

const (
	// KindApps collects model-registry entries
	KindApps Kind = "apps"
	// KindViews collects hand-registered view entries
	KindViews Kind = "views"
)

// ErrUnsupportedKind is returned when a collection kind is not one of the
// declared constants.
var ErrUnsupportedKind = errors.New("unsupported sidebar collection kind")

// Section is one labeled group of sidebar items, ready for rendering.
type Section struct {
	Label        string
	DisplayLabel string
	Items        []site.SidebarItem
}

// Builder assembles sidebar sections from a site's registries.
type Builder struct {
	site site.Site
}

// NewBuilder creates a builder reading from the given site
func NewBuilder(s site.Site) *Builder {
	return &Builder{site: s}
}

// Collect gathers the raw groups of one registry kind, filtered by the
// settings flag. KindApps reads the model registry, KindViews the page
// registry; any other kind is a configuration error.
func (b *Builder) Collect(kind Kind, settings bool) ([]site.SidebarGroup, error) {
	switch kind {
	case KindApps:
		return b.collectApps(settings), nil
	case KindViews:
		return b.site.SidebarViews(settings), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
}

// collectApps groups model-registry entries by app label
func (b *Builder) collectApps(settings bool) []site.SidebarGroup {
	snapshot := b.site.Settings()

	grouped := make(map[string][]site.SidebarItem)
	var labels []string
	for _, entry := range b.site.ModelEntries() {
		if entry.Settings != settings {
			continue
		}
		prefix := snapshot.ORMPrefix
		if entry.Settings {
			prefix = snapshot.SettingsPrefix
		}
		app := strings.ToLower(entry.App)
		slug := strings.ToLower(entry.Slug)

		display := site.HumanizeSlug(slug)
		if entry.Admin != nil {
			if plural := entry.Admin.VerboseNamePlural(); plural != "" {
				display = plural
			}
		}

		if _, seen := grouped[entry.App]; !seen {
			labels = append(labels, entry.App)
		}
		grouped[entry.App] = append(grouped[entry.App], site.SidebarItem{
			ModelName:   slug,
			DisplayName: display,
			Path:        prefix + "/" + app + "/" + slug,
			Icon:        entry.Icon,
			Settings:    entry.Settings,
		})
	}

	out := make([]site.SidebarGroup, 0, len(labels))
	for _, label := range labels {
		out = append(out, site.SidebarGroup{Label: label, Items: grouped[label]})
	}
	return out
}

// Build merges model-registry groups with view groups into one sorted
// navigation tree. Model groups form the base; view groups merge into the
// same label bucket where one exists. View entries carry an explicit path
// rather than an (app, slug) pair, so their model names are reconciled
// against that path before sorting.
func (b *Builder) Build(settings bool) ([]Section, error) {
	appGroups, err := b.Collect(KindApps, settings)
	if err != nil {
		return nil, err
	}
	viewGroups, err := b.Collect(KindViews, settings)
	if err != nil {
		return nil, err
	}
	snapshot := b.site.Settings()

	merged := make(map[string][]site.SidebarItem)
	var labels []string
	add := func(label string, items []site.SidebarItem) {
		if _, seen := merged[label]; !seen {
			labels = append(labels, label)
		}
		merged[label] = append(merged[label], items...)
	}
	for _, group := range appGroups {
		add(group.Label, group.Items)
	}
	for _, group := range viewGroups {
		items := make([]site.SidebarItem, 0, len(group.Items))
		for _, item := range group.Items {
			item.ModelName = reconcileSlug(item.Path, snapshot)
			if item.ModelName == "" {
				// bare section root: a landing page, not a model leaf
				continue
			}
			items = append(items, item)
		}
		if len(items) > 0 {
			add(group.Label, items)
		}
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return strings.ToLower(labels[i]) < strings.ToLower(labels[j])
	})

	sections := make([]Section, 0, len(labels))
	for _, label := range labels {
		items := merged[label]
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].DisplayName) < strings.ToLower(items[j].DisplayName)
		})
		sections = append(sections, Section{
			Label:        label,
			DisplayLabel: b.site.FormatAppLabel(label),
			Items:        items,
		})
	}
	return sections, nil
}

// reconcileSlug derives a stable model slug from a view's URL path. The
// path is matched against the views, ORM, and settings prefixes in that
// priority order; with a matched prefix the slug is the segment after the
// app-label segment when at least two trailing segments remain, otherwise
// the sole trailing segment. With no matching prefix every path segment is
// joined with an underscore. An empty result means the path is a bare
// section root.
func reconcileSlug(path string, s *config.Settings) string {
	normalized := config.NormalizePrefix(path)
	for _, prefix := range []string{s.ViewsPrefix, s.ORMPrefix, s.SettingsPrefix} {
		rest, ok := matchPrefix(normalized, prefix)
		if !ok {
			continue
		}
		segments := config.SplitPrefix(rest)
		switch {
		case len(segments) >= 2:
			return segments[1]
		case len(segments) == 1:
			return segments[0]
		default:
			return ""
		}
	}
	return strings.Join(config.SplitPrefix(normalized), "_")
}

// matchPrefix reports whether path falls under prefix and returns the rest
func matchPrefix(path, prefix string) (string, bool) {
	if path == prefix {
		return "", true
	}
	if strings.HasPrefix(path, prefix+"/") {
		return path[len(prefix):], true
	}
	return "", false
}
