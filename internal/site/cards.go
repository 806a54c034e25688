package site

import (
	"context"
	"log/slog"
	"sync"

	"github.com/adminkit/adminkit/internal/config"
)

// CardPublishers is the dashboard card subsystem contract the hub and boot
// manager drive: publishers start once on framework startup and shut down
// on framework shutdown.
type CardPublishers interface {
	StartPublishers(ctx context.Context) error
	ShutdownPublishers(ctx context.Context) error
}

// SettingsApplier is the structured settings-propagation hook. Card
// subsystems that implement it receive the full snapshot; older ones are
// reconfigured field by field through the legacy branch in the hub.
type SettingsApplier interface {
	ApplySettings(s *config.Settings)
}

// CardHub is the built-in dashboard card subsystem: it owns the event
// cache backing dashboard cards and the publisher lifecycle.
type CardHub struct {
	mu        sync.Mutex
	settings  *config.Settings
	cachePath string
	started   bool
}

// NewCardHub creates a card hub configured from the given snapshot
func NewCardHub(s *config.Settings) *CardHub {
	hub := &CardHub{}
	hub.ApplySettings(s)
	return hub
}

// ApplySettings swaps the snapshot and reconfigures the event cache
func (c *CardHub) ApplySettings(s *config.Settings) {
	if s == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = s
	c.cachePath = s.EventCachePath
}

// ConfigureEventCache points the event cache at a new storage path
func (c *CardHub) ConfigureEventCache(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cachePath = path
}

// EventCachePath returns the active event cache path
func (c *CardHub) EventCachePath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cachePath
}

// StartPublishers starts card publishers once per hub instance
func (c *CardHub) StartPublishers(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return nil
	}
	c.started = true
	slog.Info("Card publishers started", "eventCache", c.cachePath)
	return nil
}

// ShutdownPublishers stops card publishers; stopping twice is harmless
func (c *CardHub) ShutdownPublishers(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return nil
	}
	c.started = false
	slog.Info("Card publishers stopped")
	return nil
}

// Started reports whether publishers are running
func (c *CardHub) Started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}
