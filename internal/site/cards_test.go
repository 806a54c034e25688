package site_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/adminkit/internal/config"
	"github.com/adminkit/adminkit/internal/site"
)

func TestCardHubPublisherLifecycle(t *testing.T) {
	t.Parallel()

	hub := site.NewCardHub(config.Default())
	ctx := context.Background()

	require.False(t, hub.Started())
	require.NoError(t, hub.StartPublishers(ctx))
	require.True(t, hub.Started())

	// starting twice is a no-op
	require.NoError(t, hub.StartPublishers(ctx))
	require.True(t, hub.Started())

	require.NoError(t, hub.ShutdownPublishers(ctx))
	require.False(t, hub.Started())
	require.NoError(t, hub.ShutdownPublishers(ctx))
}

func TestCardHubSettingsPropagation(t *testing.T) {
	t.Parallel()

	hub := site.NewCardHub(config.Default())

	// structured hook and the legacy path assignment converge
	next := config.Default()
	next.EventCachePath = "/tmp/events"
	hub.ApplySettings(next)
	assert.Equal(t, "/tmp/events", hub.EventCachePath())

	hub.ConfigureEventCache("/var/cache/events")
	assert.Equal(t, "/var/cache/events", hub.EventCachePath())
}
