package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/adminkit/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	settings, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/admin", settings.AdminPrefix)
	assert.Equal(t, "/staticfiles", settings.StaticURLSegment)
	assert.Equal(t, "/orm", settings.ORMPrefix)
	assert.Equal(t, "/settings", settings.SettingsPrefix)
	assert.Equal(t, "/views", settings.ViewsPrefix)
	assert.Equal(t, "/media", settings.MediaPrefix)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := `
title: Acme Admin
adminPrefix: backoffice
ormPrefix: /models/
defaultAdapter: gorm
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	settings, err := config.Load(config.WithConfigPath(path))
	require.NoError(t, err)

	assert.Equal(t, "Acme Admin", settings.Title)
	// prefixes are normalized: leading slash added, trailing slash removed
	assert.Equal(t, "/backoffice", settings.AdminPrefix)
	assert.Equal(t, "/models", settings.ORMPrefix)
	assert.Equal(t, "gorm", settings.DefaultAdapter)
	// untouched fields keep defaults
	assert.Equal(t, "/views", settings.ViewsPrefix)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(config.WithConfigPath(filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
}

func TestLoadRejectsDuplicateSectionPrefixes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := `
ormPrefix: /section
settingsPrefix: /section
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := config.Load(config.WithConfigPath(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicates")
}

func TestLoadRejectsStaticEqualToAdmin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := `
adminPrefix: /admin
staticURLSegment: /admin
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := config.Load(config.WithConfigPath(path))
	require.Error(t, err)
}

func TestNormalizePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare word", "admin", "/admin"},
		{"trailing slash", "/admin/", "/admin"},
		{"already normalized", "/admin", "/admin"},
		{"nested", "views/reports/", "/views/reports"},
		{"root", "/", "/"},
		{"empty", "", "/"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, config.NormalizePrefix(tt.input))
		})
	}
}

func TestSplitPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"views", "reports"}, config.SplitPrefix("/Views/Reports"))
	assert.Empty(t, config.SplitPrefix("/"))
	assert.Equal(t, []string{"orm"}, config.SplitPrefix("orm"))
}
