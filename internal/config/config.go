// Package config provides the settings snapshot and loader for the AdminKit runtime.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is the prefix for environment variables read by the runtime.
	EnvPrefix = "ADMINKIT"

	// DefaultAdminPrefix is the path prefix the admin router mounts at.
	DefaultAdminPrefix = "/admin"

	// DefaultStaticSegment is the global static asset segment. Static assets
	// are served here regardless of where the admin UI is mounted.
	DefaultStaticSegment = "/staticfiles"

	// DefaultMediaPrefix is the mount point for uploaded media.
	DefaultMediaPrefix = "/media"

	// DefaultORMPrefix is the in-admin prefix for model browsing pages.
	DefaultORMPrefix = "/orm"

	// DefaultSettingsPrefix is the in-admin prefix for settings pages.
	DefaultSettingsPrefix = "/settings"

	// DefaultViewsPrefix is the in-admin prefix for hand-registered views.
	DefaultViewsPrefix = "/views"
)

// Option defines the interface for configuration loader options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a settings snapshot
type loaderConfig struct {
	path string
}

// WithConfigPath loads settings from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		// Validate the path to prevent path traversal attacks
		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Settings is the process-wide settings snapshot. Snapshots are replaced
// wholesale on reconfiguration, never mutated field by field; holders
// subscribe to a Store to observe replacements.
type Settings struct {
	// Title is the admin site title shown in menus and templates
	Title string `yaml:"title,omitempty"`

	// AdminPrefix is the path prefix the admin router mounts at
	AdminPrefix string `yaml:"adminPrefix,omitempty"`

	// StaticURLSegment is the top-level static asset segment.
	// Normalized to always start with "/" and never end with "/".
	StaticURLSegment string `yaml:"staticURLSegment,omitempty"`

	// StaticDir is the filesystem directory served at StaticURLSegment
	StaticDir string `yaml:"staticDir,omitempty"`

	// MediaPrefix is the mount point for uploaded media
	MediaPrefix string `yaml:"mediaPrefix,omitempty"`

	// MediaDir is the filesystem directory served at MediaPrefix
	MediaDir string `yaml:"mediaDir,omitempty"`

	// FaviconPath is the favicon file served at /favicon.ico.
	// The mount is skipped with a warning when the file is absent.
	FaviconPath string `yaml:"faviconPath,omitempty"`

	// ORMPrefix is the in-admin prefix for model browsing pages
	ORMPrefix string `yaml:"ormPrefix,omitempty"`

	// SettingsPrefix is the in-admin prefix for settings pages
	SettingsPrefix string `yaml:"settingsPrefix,omitempty"`

	// ViewsPrefix is the in-admin prefix for hand-registered views
	ViewsPrefix string `yaml:"viewsPrefix,omitempty"`

	// SessionCookie is the session cookie name used by the guard middleware
	SessionCookie string `yaml:"sessionCookie,omitempty"`

	// SessionSecret signs session cookies
	SessionSecret string `yaml:"sessionSecret,omitempty"`

	// DefaultAdapter is the adapter bound when none is selected explicitly
	DefaultAdapter string `yaml:"defaultAdapter,omitempty"`

	// EventCachePath is the storage path for the dashboard card event cache
	EventCachePath string `yaml:"eventCachePath,omitempty"`

	// Revision identifies this snapshot instance. Assigned on load and on
	// every Store.Replace, so holders can tell snapshots apart.
	Revision string `yaml:"-"`
}

// Load loads, normalizes, and validates a settings snapshot
func Load(opts ...Option) (*Settings, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	s := Default()
	if loaderCfg.path != "" {
		data, err := os.ReadFile(loaderCfg.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	s.normalize()
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	s.Revision = uuid.NewString()

	return s, nil
}

// Default returns a settings snapshot populated with default values
func Default() *Settings {
	return &Settings{
		Title:            "AdminKit",
		AdminPrefix:      DefaultAdminPrefix,
		StaticURLSegment: DefaultStaticSegment,
		StaticDir:        "./static",
		MediaPrefix:      DefaultMediaPrefix,
		MediaDir:         "./media",
		ORMPrefix:        DefaultORMPrefix,
		SettingsPrefix:   DefaultSettingsPrefix,
		ViewsPrefix:      DefaultViewsPrefix,
		SessionCookie:    "session",
		Revision:         uuid.NewString(),
	}
}

// normalize fills zero fields with defaults and canonicalizes path segments
func (s *Settings) normalize() {
	def := Default()
	if s.Title == "" {
		s.Title = def.Title
	}
	if s.AdminPrefix == "" {
		s.AdminPrefix = def.AdminPrefix
	}
	if s.StaticURLSegment == "" {
		s.StaticURLSegment = def.StaticURLSegment
	}
	if s.StaticDir == "" {
		s.StaticDir = def.StaticDir
	}
	if s.MediaPrefix == "" {
		s.MediaPrefix = def.MediaPrefix
	}
	if s.MediaDir == "" {
		s.MediaDir = def.MediaDir
	}
	if s.ORMPrefix == "" {
		s.ORMPrefix = def.ORMPrefix
	}
	if s.SettingsPrefix == "" {
		s.SettingsPrefix = def.SettingsPrefix
	}
	if s.ViewsPrefix == "" {
		s.ViewsPrefix = def.ViewsPrefix
	}
	if s.SessionCookie == "" {
		s.SessionCookie = def.SessionCookie
	}

	s.AdminPrefix = NormalizePrefix(s.AdminPrefix)
	s.StaticURLSegment = NormalizePrefix(s.StaticURLSegment)
	s.MediaPrefix = NormalizePrefix(s.MediaPrefix)
	s.ORMPrefix = NormalizePrefix(s.ORMPrefix)
	s.SettingsPrefix = NormalizePrefix(s.SettingsPrefix)
	s.ViewsPrefix = NormalizePrefix(s.ViewsPrefix)
}

// validate checks section prefixes for conflicts
func (s *Settings) validate() error {
	names := []string{"ormPrefix", "settingsPrefix", "viewsPrefix"}
	prefixes := []string{s.ORMPrefix, s.SettingsPrefix, s.ViewsPrefix}
	seen := make(map[string]string, len(names))
	for i, name := range names {
		prefix := prefixes[i]
		if prefix == "/" {
			return fmt.Errorf("%s must not be the bare root", name)
		}
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("%s duplicates %s (%s)", name, other, prefix)
		}
		seen[prefix] = name
	}
	if s.StaticURLSegment == s.AdminPrefix {
		return fmt.Errorf("staticURLSegment must differ from adminPrefix (%s)", s.AdminPrefix)
	}
	return nil
}

// NormalizePrefix canonicalizes a URL prefix: always a leading slash,
// never a trailing one. An empty or all-slash value collapses to "/".
func NormalizePrefix(prefix string) string {
	cleaned := prefix
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	cleaned = strings.TrimRight(cleaned, "/")
	if cleaned == "" {
		return "/"
	}
	return cleaned
}

// SplitPrefix returns the lowercase path segments of a prefix
func SplitPrefix(prefix string) []string {
	trimmed := strings.Trim(prefix, "/")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		segments = append(segments, strings.ToLower(part))
	}
	return segments
}
