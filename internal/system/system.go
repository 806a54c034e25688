// Package system registers the built-in core app: admin surfaces for the
// adapter's required system models and the landing pages of the admin
// sections.
package system

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adminkit/adminkit/internal/adapter"
	"github.com/adminkit/adminkit/internal/apps"
	"github.com/adminkit/adminkit/internal/site"
)

// AppLabel groups the system models in menus and the sidebar
const AppLabel = "core"

// ImportPath is the system app's stable config key
const ImportPath = "adminkit/system"

// Config returns the system app's config. Model modules come from the
// adapter; the system models live in its own module set.
func Config(a adapter.Adapter) *apps.AppConfig {
	return &apps.AppConfig{
		ImportPath:   ImportPath,
		Label:        AppLabel,
		ModelModules: a.ModelModules(),
	}
}

// Install registers the adapter's bound system models as admin surfaces
// and the section landing views on the given site. User-facing models land
// in the ORM section; system settings land in the settings section.
func Install(s site.Site, a adapter.Adapter) error {
	bindings := a.Bindings()

	type systemModel struct {
		proto    any
		plural   string
		icon     string
		settings bool
	}
	models := []systemModel{
		{bindings.UserModel, "Users", "user", false},
		{bindings.UserPermissionModel, "User permissions", "key", false},
		{bindings.GroupModel, "Groups", "users", false},
		{bindings.GroupPermissionModel, "Group permissions", "key", false},
		{bindings.ContentTypeModel, "Content types", "tag", false},
		{bindings.SystemSettingModel, "System settings", "settings", true},
	}
	for _, m := range models {
		if m.proto == nil {
			continue
		}
		slug := adapter.ModelName(m.proto)
		s.Register(AppLabel, slug, &site.BasicAdmin{
			Model:         slug,
			VerbosePlural: m.plural,
			Backend:       a,
		}, m.settings, m.icon)
	}

	snapshot := s.Settings()
	landings := []site.ViewEntry{
		{Path: snapshot.ViewsPrefix, Name: "Views", Label: AppLabel, Handler: landingHandler("views")},
		{Path: snapshot.ORMPrefix, Name: "Models", Label: AppLabel, Handler: landingHandler("orm")},
		{Path: snapshot.SettingsPrefix, Name: "Settings", Label: AppLabel, Settings: true, Handler: landingHandler("settings")},
	}
	for _, entry := range landings {
		if err := s.RegisterView(entry); err != nil {
			return err
		}
	}

	slog.Debug("System app installed", "adapter", a.Name())
	return nil
}

// landingHandler serves a section landing payload
func landingHandler(section string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"section": section}); err != nil {
			slog.Error("Failed to encode section landing", "section", section, "error", err)
		}
	}
}
