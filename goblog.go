// Package goblog is a blog engine built with Go, Echo, and templ that serves
// a directory of front-matter markdown files. It provides the post listing,
// post pages, RSS, sitemap, and a small JSON API out of the box.
//
// Users may provide their own templ components via the ViewFuncs struct;
// goblog handles the content store, handlers, and middleware.
package goblog

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/rama5789/goblog/analytics"
)

// ViewFuncs holds user-provided templ components that the engine calls when
// rendering pages. This is the inversion-of-control mechanism that lets
// users own and customize all templates.
type ViewFuncs struct {
	Home        func(posts []PostMeta, siteURL string) templ.Component
	Post        func(post Post, siteURL string) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central goblog application. It wires together the post store,
// listing cache, handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *PostStore
	Cache  *PostCache
	Views  ViewFuncs

	apiLimiter     *RateLimiter
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a new goblog App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, cache, middleware, and routes, then starts
// the server.
func (a *App) Start() error {
	if _, err := os.Stat(a.Config.ContentDir); err != nil {
		return fmt.Errorf("goblog: content dir: %w", err)
	}

	a.Store = NewPostStore(a.Config.ContentDir)
	if !a.Config.DisableListingCache {
		a.Cache = NewPostCache(a.Store)
	}

	a.apiLimiter = NewRateLimiter(60, rateWindow)

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("goblog: init analytics: %w", err)
		}
		a.analyticsStore = store
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/posts/:id/", a.handlePost)

	api := e.Group("/api", a.rateLimitMiddleware)
	api.GET("/hello", handleAPIHello)
	if a.Config.AnalyticsEnabled {
		api.GET("/stats", a.handleStats)
	}
}

// listPosts returns the sorted listing through the cache when enabled.
func (a *App) listPosts() ([]PostMeta, error) {
	if a.Cache != nil {
		return a.Cache.ListPosts()
	}
	return a.Store.ListPosts()
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("goblog: required environment variable %s is not set", key)
	}
	return v
}
