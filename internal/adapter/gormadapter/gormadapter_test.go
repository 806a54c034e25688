package gormadapter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/adminkit/internal/adapter/gormadapter"
)

func TestBindingsComplete(t *testing.T) {
	t.Parallel()

	a := gormadapter.New(gormadapter.Options{})
	require.NoError(t, a.Bindings().Validate(a.Name()))
	assert.Equal(t, "gorm", a.Name())
}

func TestSystemModulePreRegistered(t *testing.T) {
	t.Parallel()

	a := gormadapter.New(gormadapter.Options{})
	assert.Equal(t, []string{gormadapter.SystemModule}, a.ModelModules())
}

func TestRegisterModulePreservesOrder(t *testing.T) {
	t.Parallel()

	a := gormadapter.New(gormadapter.Options{})
	a.RegisterModule("shop/catalog", &struct{ ID uint }{})
	a.RegisterModule("crm/contacts", &struct{ ID uint }{})

	assert.Equal(t, []string{gormadapter.SystemModule, "shop/catalog", "crm/contacts"}, a.ModelModules())
}

func TestInitRequiresDSN(t *testing.T) {
	t.Parallel()

	a := gormadapter.New(gormadapter.Options{})
	require.Error(t, a.Init(context.Background()))
}

func TestImportModulesRequiresInit(t *testing.T) {
	t.Parallel()

	a := gormadapter.New(gormadapter.Options{})
	err := a.ImportModules(context.Background(), []string{gormadapter.SystemModule})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestShutdownWithoutInitIsHarmless(t *testing.T) {
	t.Parallel()

	a := gormadapter.New(gormadapter.Options{})
	require.NoError(t, a.Shutdown(context.Background()))
}
