package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/adminkit/internal/site"
)

func TestBuildMainMenuSortedAndFiltered(t *testing.T) {
	t.Parallel()

	s, mem := newTestSite(t)
	s.Register("shop", "order", &site.BasicAdmin{Model: "order", VerbosePlural: "Orders", Backend: mem}, false, "cart")
	s.Register("shop", "product", &site.BasicAdmin{Model: "product", VerbosePlural: "apples", Backend: mem}, false, "box")
	s.Register("core", "system_setting", &site.BasicAdmin{Model: "system_setting", Backend: mem}, true, "settings")

	items := s.Menu().BuildMainMenu()
	require.Len(t, items, 2)
	// case-insensitive sort: "apples" before "Orders"
	assert.Equal(t, "apples", items[0].Label)
	assert.Equal(t, "Orders", items[1].Label)
	assert.Equal(t, "/orm/shop/product", items[0].Path)
}

func TestBuildUserMenuEndsWithLogout(t *testing.T) {
	t.Parallel()

	s, mem := newTestSite(t)
	s.Register("core", "system_setting", &site.BasicAdmin{Model: "system_setting", Backend: mem}, true, "settings")

	items := s.Menu().BuildUserMenu()
	require.Len(t, items, 2)
	assert.Equal(t, "System Setting", items[0].Label)
	assert.Equal(t, "/settings/core/system_setting", items[0].Path)
	assert.Equal(t, "Log out", items[1].Label)
}

func TestHumanizeSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		slug string
		want string
	}{
		{"product", "Product"},
		{"system_setting", "System Setting"},
		{"content_type", "Content Type"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, site.HumanizeSlug(tt.slug))
	}
}
