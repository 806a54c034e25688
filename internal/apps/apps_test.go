package apps_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/adminkit/internal/apps"
)

func TestDiscoverAllPreservesProviderOrder(t *testing.T) {
	t.Parallel()

	d := apps.NewDiscovery()
	d.RegisterProvider("shop", func() []*apps.AppConfig {
		return []*apps.AppConfig{{ImportPath: "shop/catalog"}}
	})
	d.RegisterProvider("shop", func() []*apps.AppConfig {
		return []*apps.AppConfig{{ImportPath: "shop/billing"}}
	})
	d.RegisterProvider("crm", func() []*apps.AppConfig {
		return []*apps.AppConfig{{ImportPath: "crm/contacts"}}
	})

	configs := d.DiscoverAll([]string{"shop", "crm"})
	require.Len(t, configs, 3)
	assert.Equal(t, "shop/catalog", configs[0].ImportPath)
	assert.Equal(t, "shop/billing", configs[1].ImportPath)
	assert.Equal(t, "crm/contacts", configs[2].ImportPath)
}

func TestDiscoverAllUnknownRootIsEmpty(t *testing.T) {
	t.Parallel()

	d := apps.NewDiscovery()
	assert.Empty(t, d.DiscoverAll([]string{"nothing"}))
	assert.Empty(t, d.DiscoverAll(nil))
}

func TestReadyRunsStartupHook(t *testing.T) {
	t.Parallel()

	ran := false
	cfg := &apps.AppConfig{
		ImportPath: "shop/catalog",
		Startup: func(context.Context) error {
			ran = true
			return nil
		},
	}
	require.NoError(t, cfg.Ready(context.Background()))
	assert.True(t, ran)

	// nil hook is a no-op
	bare := &apps.AppConfig{ImportPath: "shop/billing"}
	require.NoError(t, bare.Ready(context.Background()))
}

func TestReadyPropagatesFailure(t *testing.T) {
	t.Parallel()

	cfg := &apps.AppConfig{
		ImportPath: "shop/catalog",
		Startup: func(context.Context) error {
			return fmt.Errorf("boom")
		},
	}
	require.Error(t, cfg.Ready(context.Background()))
}
