package site

import (
	"sort"
	"strings"

	"github.com/adminkit/adminkit/internal/config"
)

// MenuItem is one entry in a built menu
type MenuItem struct {
	Label string
	Path  string
	Icon  string
}

// MenuBuilder derives navigation menus from the model registry.
type MenuBuilder struct {
	registry *ModelRegistry
	settings func() *config.Settings
}

// NewMenuBuilder creates a menu builder over the given registry
func NewMenuBuilder(registry *ModelRegistry, settings func() *config.Settings) *MenuBuilder {
	return &MenuBuilder{registry: registry, settings: settings}
}

// BuildMainMenu returns one item per non-settings model entry, sorted
// case-insensitively by label
func (m *MenuBuilder) BuildMainMenu() []MenuItem {
	s := m.settings()
	var items []MenuItem
	for _, entry := range m.registry.Entries() {
		if entry.Settings {
			continue
		}
		items = append(items, MenuItem{
			Label: displayName(entry),
			Path:  s.ORMPrefix + "/" + entry.App + "/" + entry.Slug,
			Icon:  entry.Icon,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Label) < strings.ToLower(items[j].Label)
	})
	return items
}

// BuildUserMenu returns the settings-section entries plus the fixed
// account items, sorted the same way as the main menu
func (m *MenuBuilder) BuildUserMenu() []MenuItem {
	s := m.settings()
	var items []MenuItem
	for _, entry := range m.registry.Entries() {
		if !entry.Settings {
			continue
		}
		items = append(items, MenuItem{
			Label: displayName(entry),
			Path:  s.SettingsPrefix + "/" + entry.App + "/" + entry.Slug,
			Icon:  entry.Icon,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Label) < strings.ToLower(items[j].Label)
	})
	items = append(items, MenuItem{Label: "Log out", Path: "/logout"})
	return items
}

// displayName prefers the admin's declared plural name, falling back to a
// humanized model slug
func displayName(entry RegistryEntry) string {
	if entry.Admin != nil {
		if name := entry.Admin.VerboseNamePlural(); name != "" {
			return name
		}
	}
	return HumanizeSlug(entry.Slug)
}

// HumanizeSlug converts a model slug into a title-cased display name
func HumanizeSlug(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
