package sidebar_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/adminkit/internal/sidebar"
	"github.com/adminkit/adminkit/internal/site"
)

func TestContextBuilderAssemblesRequestContext(t *testing.T) {
	t.Parallel()

	s := newSidebarSite(t)
	s.Register("shop", "product", &site.BasicAdmin{Model: "product", VerbosePlural: "Products", Backend: s.Adapter()}, false, "box")

	cb := sidebar.NewContextBuilder(s)
	rendered := cb.Build(httptest.NewRequest("GET", "/admin/orm/shop/product", nil))

	assert.Equal(t, "AdminKit", rendered["title"])
	assert.Equal(t, "/orm/shop/product", rendered["currentPath"])
	assert.Equal(t, "orm", rendered["sectionMode"])
	assert.Equal(t, "shop", rendered["appLabel"])
	assert.Equal(t, "product", rendered["modelSlug"])
	assert.Equal(t, false, rendered["isSettings"])

	sections, ok := rendered["sidebar"].([]sidebar.Section)
	require.True(t, ok)
	require.Len(t, sections, 1)
	assert.Equal(t, "shop", sections[0].Label)
}

func TestContextBuilderSettingsSectionGetsSettingsTree(t *testing.T) {
	t.Parallel()

	s := newSidebarSite(t)
	mem := s.Adapter()
	s.Register("core", "system_setting", &site.BasicAdmin{Model: "system_setting", Backend: mem}, true, "")
	s.Register("shop", "product", &site.BasicAdmin{Model: "product", Backend: mem}, false, "")

	cb := sidebar.NewContextBuilder(s)
	rendered := cb.Build(httptest.NewRequest("GET", "/admin/settings/core/system_setting", nil))

	assert.Equal(t, true, rendered["isSettings"])
	sections, ok := rendered["sidebar"].([]sidebar.Section)
	require.True(t, ok)
	require.Len(t, sections, 1)
	assert.Equal(t, "core", sections[0].Label)
}
