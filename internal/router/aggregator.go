package router

import (
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/adminkit/adminkit/internal/site"
)

// SiteStateKey is where the aggregator stashes the admin site on the
// server's shared state during Mount.
const SiteStateKey = "adminkit.site"

// PrefixedRouter pairs a handler with the mount prefix it was declared
// under.
type PrefixedRouter struct {
	Prefix  string
	Handler http.Handler
}

// RouterAggregator composes one mountable unit: the admin site's router,
// any additional routers, and the static/favicon/media mounts. Composition
// is idempotent per aggregator instance; the admin router is built at most
// once until invalidated.
type RouterAggregator struct {
	site site.Site

	mu          sync.Mutex
	additional  []PrefixedRouter
	adminRouter chi.Router
	built       bool
	assetsDone  bool
}

// NewRouterAggregator creates an aggregator over the given site
func NewRouterAggregator(s site.Site) *RouterAggregator {
	return &RouterAggregator{site: s}
}

// AddRouter declares an additional router to mount at the given prefix
func (a *RouterAggregator) AddRouter(prefix string, h http.Handler) {
	if h == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.additional = append(a.additional, PrefixedRouter{Prefix: prefix, Handler: h})
}

// Mount composes everything onto the server. The first call builds the
// admin router, mounts the additional routers, mounts static assets at the
// global static segment, mounts favicon and media, and stashes the site on
// the server state. Later calls are no-ops; route counts stay constant.
// The admin prefix gets a delegating handler rather than the built router
// itself, so registrations made after an invalidation become servable
// without remounting.
func (a *RouterAggregator) Mount(server *Server) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.built {
		return nil
	}

	// build eagerly so a misconfigured site fails the mount, not a request
	if _, err := a.adminRouterLocked(); err != nil {
		return err
	}
	snapshot := a.site.Settings()

	server.Mount(snapshot.AdminPrefix, a.adminDelegator())
	for _, extra := range a.additional {
		server.Mount(extra.Prefix, extra.Handler)
	}
	a.mountAssetsLocked(server, snapshot.StaticURLSegment, snapshot.StaticDir,
		snapshot.FaviconPath, snapshot.MediaPrefix, snapshot.MediaDir)
	server.SetState(SiteStateKey, a.site)

	a.built = true
	return nil
}

// GetAdminRouter returns the cached admin router, building it on first
// access.
func (a *RouterAggregator) GetAdminRouter() (chi.Router, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adminRouterLocked()
}

// InvalidateAdminRouter drops only the cached admin router. The asset and
// mount bookkeeping stays; static, favicon, and media mounts are one-time
// regardless of registry churn.
func (a *RouterAggregator) InvalidateAdminRouter() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.adminRouter = nil
}

// adminDelegator resolves the current admin router on every request. A
// cache invalidation between requests makes the next request rebuild
// through the site, so the mounted surface tracks registry churn.
func (a *RouterAggregator) adminDelegator() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, err := a.GetAdminRouter()
		if err != nil {
			slog.Error("Admin router rebuild failed", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		admin.ServeHTTP(w, r)
	})
}

// adminRouterLocked builds the admin router through the site if no cached
// one exists. Builder errors propagate untouched; a misconfigured site must
// fail mounting loudly.
func (a *RouterAggregator) adminRouterLocked() (chi.Router, error) {
	if a.adminRouter != nil {
		return a.adminRouter, nil
	}
	r, err := a.site.BuildRouter()
	if err != nil {
		return nil, err
	}
	a.adminRouter = r
	return r, nil
}

// mountAssetsLocked performs the one-time static, favicon, and media
// mounts. The static segment is global: assets stay reachable no matter
// where the admin UI is mounted, so it is never nested under the admin
// prefix.
func (a *RouterAggregator) mountAssetsLocked(server *Server, staticSegment, staticDir, faviconPath, mediaPrefix, mediaDir string) {
	if a.assetsDone {
		return
	}
	a.assetsDone = true

	if staticDir != "" {
		server.Mount(staticSegment, http.StripPrefix(staticSegment, http.FileServer(http.Dir(staticDir))))
	}

	if faviconPath != "" {
		if _, err := os.Stat(faviconPath); err != nil {
			slog.Warn("Favicon file not found, skipping mount", "path", faviconPath)
		} else {
			path := faviconPath
			server.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
				http.ServeFile(w, r, path)
			})
		}
	}

	if mediaDir != "" {
		server.Mount(mediaPrefix, http.StripPrefix(mediaPrefix, http.FileServer(http.Dir(mediaDir))))
	}
}

// ExtendedRouterAggregator also composes public routers that bypass the
// admin guard. A flag controls whether they precede or follow the admin
// router in the composition; first-match routing semantics depend on the
// order, so it is part of the contract.
type ExtendedRouterAggregator struct {
	RouterAggregator

	pmu         sync.Mutex
	public      []PrefixedRouter
	publicFirst bool
}

// NewExtendedRouterAggregator creates an extended aggregator. With
// publicFirst set, public routers are composed before the admin router.
func NewExtendedRouterAggregator(s site.Site, publicFirst bool) *ExtendedRouterAggregator {
	return &ExtendedRouterAggregator{
		RouterAggregator: RouterAggregator{site: s},
		publicFirst:      publicFirst,
	}
}

// AddPublicRouter declares a public router to compose around the admin
// router
func (e *ExtendedRouterAggregator) AddPublicRouter(prefix string, h http.Handler) {
	if h == nil {
		return
	}
	e.pmu.Lock()
	defer e.pmu.Unlock()
	e.public = append(e.public, PrefixedRouter{Prefix: prefix, Handler: h})
}

// Routers returns the full composition in mount order, building the admin
// router if needed.
func (e *ExtendedRouterAggregator) Routers() ([]PrefixedRouter, error) {
	admin, err := e.GetAdminRouter()
	if err != nil {
		return nil, err
	}
	snapshot := e.site.Settings()
	adminEntry := PrefixedRouter{Prefix: snapshot.AdminPrefix, Handler: admin}

	e.pmu.Lock()
	defer e.pmu.Unlock()

	out := make([]PrefixedRouter, 0, len(e.public)+1)
	if e.publicFirst {
		out = append(out, e.public...)
		out = append(out, adminEntry)
	} else {
		out = append(out, adminEntry)
		out = append(out, e.public...)
	}
	return out, nil
}

// Mount composes public and admin routers in the declared order, then the
// additional routers and one-time asset mounts.
func (e *ExtendedRouterAggregator) Mount(server *Server) error {
	routers, err := e.Routers()
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.built {
		return nil
	}

	snapshot := e.site.Settings()
	for _, entry := range routers {
		handler := entry.Handler
		if entry.Prefix == snapshot.AdminPrefix {
			handler = e.adminDelegator()
		}
		server.Mount(entry.Prefix, handler)
	}
	for _, extra := range e.additional {
		server.Mount(extra.Prefix, extra.Handler)
	}
	e.mountAssetsLocked(server, snapshot.StaticURLSegment, snapshot.StaticDir,
		snapshot.FaviconPath, snapshot.MediaPrefix, snapshot.MediaDir)
	server.SetState(SiteStateKey, e.site)

	e.built = true
	return nil
}
