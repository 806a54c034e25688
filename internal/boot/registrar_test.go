package boot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/adminkit/internal/adapter/adaptertest"
	"github.com/adminkit/adminkit/internal/apps"
	"github.com/adminkit/adminkit/internal/boot"
)

func TestRegistrarDeduplicatesPreservingOrder(t *testing.T) {
	t.Parallel()

	r := boot.NewModelRegistrar()
	r.AddConfig(&apps.AppConfig{ImportPath: "shop", ModelModules: []string{"shop/catalog", "shop/billing"}})
	r.AddConfig(&apps.AppConfig{ImportPath: "crm", ModelModules: []string{"shop/catalog", "crm/contacts"}})

	mem := adaptertest.New("memory")
	mem.Modules = []string{"memory/system", "shop/catalog"}
	r.AddAdapter(mem)

	assert.Equal(t, []string{"shop/catalog", "shop/billing", "crm/contacts", "memory/system"}, r.Modules())
}

func TestRegistrarSyncDelegatesToAdapter(t *testing.T) {
	t.Parallel()

	r := boot.NewModelRegistrar()
	r.AddConfig(&apps.AppConfig{ImportPath: "shop", ModelModules: []string{"shop/catalog"}})

	mem := adaptertest.New("memory")
	require.NoError(t, r.SyncWithAdapter(context.Background(), mem))

	assert.Equal(t, 1, mem.ImportCalls)
	assert.Equal(t, []string{"shop/catalog"}, mem.ImportedModules)
}

func TestRegistrarClear(t *testing.T) {
	t.Parallel()

	r := boot.NewModelRegistrar()
	r.AddConfig(&apps.AppConfig{ImportPath: "shop", ModelModules: []string{"shop/catalog"}})
	r.Clear()
	assert.Empty(t, r.Modules())

	// modules can be re-added after a clear
	r.AddConfig(&apps.AppConfig{ImportPath: "shop", ModelModules: []string{"shop/catalog"}})
	assert.Equal(t, []string{"shop/catalog"}, r.Modules())
}
