package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/adminkit/internal/adapter/adaptertest"
	"github.com/adminkit/adminkit/internal/config"
	"github.com/adminkit/adminkit/internal/site"
	"github.com/adminkit/adminkit/internal/system"
)

func TestInstallRegistersSystemModels(t *testing.T) {
	t.Parallel()

	mem := adaptertest.New("memory")
	s := site.NewAdminSite(mem, config.Default())
	require.NoError(t, system.Install(s, mem))

	entries := s.ModelEntries()
	require.Len(t, entries, 6)

	// user-facing models land in the ORM section
	for _, slug := range []string{"user", "group", "content_type"} {
		_, ok := s.LookupAdmin(system.AppLabel, slug)
		assert.True(t, ok, "missing admin for %s", slug)
	}

	// system settings land in the settings section
	var settingsEntry *site.RegistryEntry
	for i := range entries {
		if entries[i].Slug == "system_setting" {
			settingsEntry = &entries[i]
		}
	}
	require.NotNil(t, settingsEntry)
	assert.True(t, settingsEntry.Settings)
}

func TestInstallRegistersSectionLandings(t *testing.T) {
	t.Parallel()

	mem := adaptertest.New("memory")
	s := site.NewAdminSite(mem, config.Default())
	require.NoError(t, system.Install(s, mem))

	// landing pages resolve but never appear as sidebar leaves
	assert.Empty(t, s.SidebarViews(false))
	assert.Empty(t, s.SidebarViews(true))

	res := s.Resolve("/admin/views")
	assert.Equal(t, "views", res.SectionMode)
}

func TestConfigCarriesAdapterModules(t *testing.T) {
	t.Parallel()

	mem := adaptertest.New("memory")
	mem.Modules = []string{"memory/system"}

	cfg := system.Config(mem)
	assert.Equal(t, system.ImportPath, cfg.ImportPath)
	assert.Equal(t, system.AppLabel, cfg.Label)
	assert.Equal(t, []string{"memory/system"}, cfg.ModelModules)
}
