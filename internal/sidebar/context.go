package sidebar

import (
	"log/slog"
	"net/http"

	"github.com/adminkit/adminkit/internal/site"
)

// ContextBuilder assembles the per-request rendering context consumed by
// admin templates: title, menus, the sidebar tree, and the resolution of
// the current path onto the admin sections.
type ContextBuilder struct {
	site    site.Site
	builder *Builder
}

// NewContextBuilder creates a context builder over the given site
func NewContextBuilder(s site.Site) *ContextBuilder {
	return &ContextBuilder{site: s, builder: NewBuilder(s)}
}

// Build produces the rendering context for one request. The sidebar shown
// follows the section the path resolves to: settings paths get the
// settings tree, everything else the regular tree.
func (c *ContextBuilder) Build(r *http.Request) map[string]any {
	res := c.site.Resolve(r.URL.Path)
	sections, err := c.builder.Build(res.IsSettings)
	if err != nil {
		slog.Error("Failed to build sidebar", "path", r.URL.Path, "error", err)
		sections = nil
	}
	return map[string]any{
		"title":       c.site.Title(),
		"currentPath": res.NormalizedPath,
		"sectionMode": res.SectionMode,
		"appLabel":    res.AppLabel,
		"modelSlug":   res.ModelSlug,
		"isSettings":  res.IsSettings,
		"sidebar":     sections,
		"mainMenu":    c.site.Menu().BuildMainMenu(),
		"userMenu":    c.site.Menu().BuildUserMenu(),
	}
}
