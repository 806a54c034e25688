package boot_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/adminkit/internal/adapter"
	"github.com/adminkit/adminkit/internal/adapter/adaptertest"
	"github.com/adminkit/adminkit/internal/apps"
	"github.com/adminkit/adminkit/internal/boot"
	"github.com/adminkit/adminkit/internal/config"
	"github.com/adminkit/adminkit/internal/router"
	"github.com/adminkit/adminkit/internal/site"
)

func newRuntime(t *testing.T, defaultAdapter string) *adapter.RuntimeContext {
	t.Helper()
	settings := config.Default()
	settings.DefaultAdapter = defaultAdapter
	settings.StaticDir = ""
	settings.MediaDir = ""
	return adapter.NewRuntimeContext(config.NewStore(settings))
}

func TestAdapterLazyDefaultBindingIsStable(t *testing.T) {
	t.Parallel()

	rc := newRuntime(t, "memory")
	mem := adaptertest.New("memory")
	rc.Adapters.Register(mem)

	bm := boot.New(rc)
	first, err := bm.Adapter()
	require.NoError(t, err)
	assert.Same(t, mem, first.(*adaptertest.MemoryAdapter))

	// same instance on every subsequent access
	second, err := bm.Adapter()
	require.NoError(t, err)
	assert.Same(t, first.(*adaptertest.MemoryAdapter), second.(*adaptertest.MemoryAdapter))
}

func TestAdapterUnconfigured(t *testing.T) {
	t.Parallel()

	bm := boot.New(newRuntime(t, ""))
	_, err := bm.Adapter()
	require.ErrorIs(t, err, boot.ErrAdapterNotConfigured)
}

func TestAdapterUnknownDefault(t *testing.T) {
	t.Parallel()

	bm := boot.New(newRuntime(t, "absent"))
	_, err := bm.Adapter()
	require.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestRegisterAppConfigSyncsWhenBound(t *testing.T) {
	t.Parallel()

	rc := newRuntime(t, "memory")
	mem := adaptertest.New("memory")
	rc.Adapters.Register(mem)

	bm := boot.New(rc)
	cfg := &apps.AppConfig{ImportPath: "shop", ModelModules: []string{"shop/catalog"}}

	// unbound: accumulate only
	require.NoError(t, bm.RegisterAppConfig(context.Background(), cfg))
	assert.Zero(t, mem.ImportCalls)

	// bound: registration syncs immediately
	_, err := bm.Adapter()
	require.NoError(t, err)
	other := &apps.AppConfig{ImportPath: "crm", ModelModules: []string{"crm/contacts"}}
	require.NoError(t, bm.RegisterAppConfig(context.Background(), other))
	assert.Equal(t, 1, mem.ImportCalls)
	assert.Equal(t, []string{"shop/catalog", "crm/contacts"}, mem.ImportedModules)
}

func TestInitBootsServingState(t *testing.T) {
	t.Parallel()

	rc := newRuntime(t, "")
	mem := adaptertest.New("memory")
	rc.Adapters.Register(mem)

	bm := boot.New(rc)
	server := router.NewServer()

	h, err := bm.Init(context.Background(), server, "memory", nil)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Same(t, h, bm.Hub())
	assert.Equal(t, 1, mem.InitCalls)

	// the system app's models are registered under the core label
	_, ok := h.Site().LookupAdmin("core", "user")
	assert.True(t, ok)
	_, ok = h.Site().LookupAdmin("core", "system_setting")
	assert.True(t, ok)

	// startup hooks bring the site to its finalized, publishing state
	require.NoError(t, server.RunStartupHooks(context.Background()))
	adminSite := h.Site().(*site.AdminSite)
	assert.True(t, adminSite.Finalized())
	assert.True(t, adminSite.CardHub().Started())
	assert.True(t, h.Started("adminkit/system"))

	// shutdown hooks stop publishers and close the adapter
	server.RunShutdownHooks(context.Background())
	assert.False(t, adminSite.CardHub().Started())
	assert.Equal(t, 1, mem.ShutdownCalls)
}

func TestInitServesAdminUnderPrefix(t *testing.T) {
	t.Parallel()

	rc := newRuntime(t, "")
	rc.Adapters.Register(adaptertest.New("memory"))

	bm := boot.New(rc)
	server := router.NewServer()
	_, err := bm.Init(context.Background(), server, "memory", nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStartupRegistrationsServeAfterBoot(t *testing.T) {
	t.Parallel()

	rc := newRuntime(t, "")
	rc.Adapters.Register(adaptertest.New("memory"))

	bm := boot.New(rc)
	bm.Discovery().RegisterProvider("shop", func() []*apps.AppConfig {
		return []*apps.AppConfig{{
			ImportPath: "shop/catalog",
			Label:      "shop",
			Startup: func(context.Context) error {
				s := bm.Hub().Site()
				s.Register("shop", "product", &site.BasicAdmin{
					Model:         "product",
					VerbosePlural: "Products",
					Backend:       s.Adapter(),
				}, false, "box")
				return nil
			},
		}}
	})

	server := router.NewServer()
	_, err := bm.Init(context.Background(), server, "memory", []string{"shop"})
	require.NoError(t, err)
	require.NoError(t, server.RunStartupHooks(context.Background()))

	// the admin surface registered during startup is servable
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orm/shop/product/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInitIsolatesAdaptersAcrossRuntimes(t *testing.T) {
	t.Parallel()

	rcA := newRuntime(t, "")
	alpha := adaptertest.New("alpha")
	rcA.Adapters.Register(alpha)

	rcB := newRuntime(t, "")
	beta := adaptertest.New("beta")
	rcB.Adapters.Register(beta)

	hubA, err := boot.New(rcA).Init(context.Background(), router.NewServer(), "alpha", nil)
	require.NoError(t, err)
	hubB, err := boot.New(rcB).Init(context.Background(), router.NewServer(), "beta", nil)
	require.NoError(t, err)

	entriesA := hubA.Site().ModelEntries()
	require.NotEmpty(t, entriesA)
	for _, entry := range entriesA {
		assert.Same(t, alpha, entry.Adapter.(*adaptertest.MemoryAdapter))
	}

	entriesB := hubB.Site().ModelEntries()
	require.NotEmpty(t, entriesB)
	for _, entry := range entriesB {
		assert.Same(t, beta, entry.Adapter.(*adaptertest.MemoryAdapter))
	}
}

func TestInitFailsOnMissingBindings(t *testing.T) {
	t.Parallel()

	rc := newRuntime(t, "")
	broken := adaptertest.New("broken")
	broken.Binding.UserModel = nil
	broken.Binding.PermActions = nil
	rc.Adapters.Register(broken)

	bm := boot.New(rc)
	_, err := bm.Init(context.Background(), router.NewServer(), "broken", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user model")
	assert.Contains(t, err.Error(), "permission action enumeration")
	// validation failed before the adapter was touched
	assert.Zero(t, broken.InitCalls)
}

func TestInitFailsOnUnknownAdapter(t *testing.T) {
	t.Parallel()

	bm := boot.New(newRuntime(t, ""))
	_, err := bm.Init(context.Background(), router.NewServer(), "absent", nil)
	require.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestInitDiscoversAppConfigs(t *testing.T) {
	t.Parallel()

	rc := newRuntime(t, "")
	mem := adaptertest.New("memory")
	rc.Adapters.Register(mem)

	bm := boot.New(rc)
	bm.Discovery().RegisterProvider("shop", func() []*apps.AppConfig {
		return []*apps.AppConfig{{
			ImportPath:   "shop/catalog",
			Label:        "shop",
			ModelModules: []string{"shop/catalog"},
		}}
	})

	h, err := bm.Init(context.Background(), router.NewServer(), "memory", []string{"shop"})
	require.NoError(t, err)

	require.Len(t, h.Configs(), 2)
	assert.Contains(t, mem.ImportedModules, "shop/catalog")
}

func TestResetRestoresUnconfiguredState(t *testing.T) {
	t.Parallel()

	rc := newRuntime(t, "memory")
	rc.Adapters.Register(adaptertest.New("memory"))

	bm := boot.New(rc)
	_, err := bm.Adapter()
	require.NoError(t, err)
	require.NoError(t, bm.RegisterAppConfig(context.Background(), &apps.AppConfig{
		ImportPath:   "shop",
		ModelModules: []string{"shop/catalog"},
	}))

	bm.Reset()
	assert.Empty(t, bm.Registrar().Modules())
	assert.Nil(t, bm.Hub())

	// the adapter slot is unbound again but rebinds from the default
	next, err := bm.Adapter()
	require.NoError(t, err)
	require.NotNil(t, next)
}

func TestSettingsObserverRefreshesSnapshotOnly(t *testing.T) {
	t.Parallel()

	rc := newRuntime(t, "memory")
	mem := adaptertest.New("memory")
	rc.Adapters.Register(mem)

	bm := boot.New(rc)
	first, err := bm.Adapter()
	require.NoError(t, err)

	// a settings replacement does not unbind the adapter
	next := config.Default()
	next.DefaultAdapter = "other"
	rc.Settings.Replace(next)

	second, err := bm.Adapter()
	require.NoError(t, err)
	assert.Same(t, first.(*adaptertest.MemoryAdapter), second.(*adaptertest.MemoryAdapter))
}
