// Package router provides the HTTP composition layer: the server wrapper
// the admin runtime mounts into, and the aggregators that assemble the
// admin router, static assets, and additional routers into one tree.
package router

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
)

// LifecycleHook runs once at server startup or shutdown.
type LifecycleHook func(ctx context.Context) error

// ServerOption configures a Server at construction time.
type ServerOption func(*serverConfig)

type serverConfig struct {
	middlewares []func(http.Handler) http.Handler
}

// WithMiddlewares adds middleware to the server's root router
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// Server wraps the root router with shared state and lifecycle hooks.
// Middleware must be supplied at construction; chi rejects middleware
// added after routes exist.
type Server struct {
	router chi.Router

	mu       sync.RWMutex
	state    map[string]any
	startup  []LifecycleHook
	shutdown []LifecycleHook
}

// NewServer creates a server with the given options applied
func NewServer(opts ...ServerOption) *Server {
	cfg := &serverConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}
	return &Server{
		router: r,
		state:  make(map[string]any),
	}
}

// Router returns the root router
func (s *Server) Router() chi.Router { return s.router }

// Use appends middleware to the root router. Valid only before any route
// or mount exists; chi enforces this.
func (s *Server) Use(mw ...func(http.Handler) http.Handler) {
	s.router.Use(mw...)
}

// Handler returns the composed handler for an http.Server
func (s *Server) Handler() http.Handler { return s.router }

// Mount attaches a sub-handler at the given pattern. An empty pattern
// mounts at the root.
func (s *Server) Mount(pattern string, h http.Handler) {
	if pattern == "" {
		pattern = "/"
	}
	s.router.Mount(pattern, h)
}

// Get registers a handler for GET requests at the given pattern
func (s *Server) Get(pattern string, h http.HandlerFunc) {
	s.router.Get(pattern, h)
}

// SetState stashes a shared value under a key
func (s *Server) SetState(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[key] = value
}

// State retrieves a shared value by key
func (s *Server) State(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.state[key]
	return v, ok
}

// OnStartup registers a hook to run when the server starts
func (s *Server) OnStartup(hook LifecycleHook) {
	if hook == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startup = append(s.startup, hook)
}

// OnShutdown registers a hook to run when the server stops
func (s *Server) OnShutdown(hook LifecycleHook) {
	if hook == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shutdown = append(s.shutdown, hook)
}

// RunStartupHooks runs the startup hooks sequentially in registration
// order. The first failure aborts startup; the server must not reach a
// serving state half-initialized.
func (s *Server) RunStartupHooks(ctx context.Context) error {
	s.mu.RLock()
	hooks := make([]LifecycleHook, len(s.startup))
	copy(hooks, s.startup)
	s.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			return err
		}
	}
	return nil
}

// RunShutdownHooks runs the shutdown hooks sequentially. Failures are
// logged and do not stop later hooks from running.
func (s *Server) RunShutdownHooks(ctx context.Context) {
	s.mu.RLock()
	hooks := make([]LifecycleHook, len(s.shutdown))
	copy(hooks, s.shutdown)
	s.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			slog.Error("Shutdown hook failed", "error", err)
		}
	}
}
