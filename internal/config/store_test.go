package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/adminkit/internal/config"
)

func TestStoreReplaceNotifiesInOrder(t *testing.T) {
	t.Parallel()

	store := config.NewStore(config.Default())

	var calls []string
	store.RegisterObserver(func(*config.Settings) { calls = append(calls, "first") })
	store.RegisterObserver(func(*config.Settings) { calls = append(calls, "second") })

	next := config.Default()
	next.Title = "Replaced"
	store.Replace(next)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, "Replaced", store.Current().Title)
}

func TestStoreReplaceAssignsRevision(t *testing.T) {
	t.Parallel()

	store := config.NewStore(nil)
	original := store.Current().Revision

	next := config.Default()
	next.Revision = ""
	store.Replace(next)

	require.NotEmpty(t, store.Current().Revision)
	assert.NotEqual(t, original, store.Current().Revision)
}

func TestStoreObserverReceivesSnapshot(t *testing.T) {
	t.Parallel()

	store := config.NewStore(config.Default())

	var got *config.Settings
	store.RegisterObserver(func(s *config.Settings) { got = s })

	next := config.Default()
	next.EventCachePath = "/tmp/events"
	store.Replace(next)

	require.NotNil(t, got)
	assert.Equal(t, "/tmp/events", got.EventCachePath)
	assert.Same(t, store.Current(), got)
}
