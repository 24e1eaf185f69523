// Package server exposes the feed pipeline over HTTP: paginated feed loading,
// consensus analysis, summarization, account and settings management, and an
// RSS snapshot of the loaded feed.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/nebulink/nebulink/pkg/domain"
	"github.com/nebulink/nebulink/pkg/progress"
	"github.com/nebulink/nebulink/pkg/timeline"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed.go -pkg mocks -skip-ensure -fmt goimports . Feed
//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer
//go:generate moq -out mocks/upstream.go -pkg mocks -skip-ensure -fmt goimports . Upstream
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher
//go:generate moq -out mocks/accounts.go -pkg mocks -skip-ensure -fmt goimports . AccountStore
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingStore

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	feed     Feed
	analyzer Analyzer
	upstream Upstream
	enricher Enricher
	accounts AccountStore
	settings SettingStore
	tracker  *progress.Tracker
	safety   *timeline.SafetyFilter
	rss      RSSGenerator
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Feed interface for paginated feed loading
type Feed interface {
	SetMode(mode domain.FeedMode, topics []string)
	Mode() domain.FeedMode
	FetchPage(ctx context.Context, reset bool) ([]*domain.Status, error)
	Statuses() []*domain.Status
	HasMore() bool
}

// Analyzer interface for AI operations
type Analyzer interface {
	AnalyzeFeed(ctx context.Context, comments []string, topic string) *domain.ConsensusResult
	Summarize(ctx context.Context, text string) string
}

// Upstream interface for direct instance operations
type Upstream interface {
	Translate(ctx context.Context, statusID string) (string, error)
	SetFavourite(ctx context.Context, statusID string, favourited bool) error
	CreateKeywordFilter(ctx context.Context, title string, keywords []string) error
	RemoveKeywordFilter(ctx context.Context, title string) error
}

// Enricher interface for out-of-band status enrichment
type Enricher interface {
	EnqueueCommentFetch(ctx context.Context, s *domain.Status)
	EnqueueLanguageDetection(ctx context.Context, s *domain.Status)
}

// AccountStore interface for account persistence
type AccountStore interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	GetAccounts(ctx context.Context) ([]*domain.Account, error)
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	GetActiveAccount(ctx context.Context) (*domain.Account, error)
	SetActiveAccount(ctx context.Context, id int64) error
	SetTopics(ctx context.Context, id int64, topics []string) error
	DeleteAccount(ctx context.Context, id int64) error
}

// SettingStore interface for settings persistence
type SettingStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	GetBool(ctx context.Context, key string, def bool) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}

// RSSGenerator renders the loaded feed as RSS
type RSSGenerator interface {
	GenerateRSS(statuses []*domain.Status, mode domain.FeedMode) (string, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Deps bundles the server collaborators
type Deps struct {
	Config   ConfigProvider
	Feed     Feed
	Analyzer Analyzer
	Upstream Upstream
	Enricher Enricher
	Accounts AccountStore
	Settings SettingStore
	Tracker  *progress.Tracker
	Safety   *timeline.SafetyFilter
	RSS      RSSGenerator
}

// New initializes a new server instance
func New(deps Deps, version string, debug bool) *Server {
	s := &Server{
		config:   deps.Config,
		feed:     deps.Feed,
		analyzer: deps.Analyzer,
		upstream: deps.Upstream,
		enricher: deps.Enricher,
		accounts: deps.Accounts,
		settings: deps.Settings,
		tracker:  deps.Tracker,
		safety:   deps.Safety,
		rss:      deps.RSS,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("nebulink", "nebulink", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /progress", s.progressHandler)

		r.HandleFunc("GET /feed", s.feedHandler)
		r.HandleFunc("POST /feed/analyze", s.analyzeHandler)
		r.HandleFunc("POST /summarize", s.summarizeHandler)
		r.HandleFunc("POST /translate", s.translateHandler)

		r.HandleFunc("POST /statuses/{id}/favourite", s.favouriteHandler(true))
		r.HandleFunc("DELETE /statuses/{id}/favourite", s.favouriteHandler(false))

		r.HandleFunc("GET /accounts", s.listAccountsHandler)
		r.HandleFunc("POST /accounts", s.createAccountHandler)
		r.HandleFunc("DELETE /accounts/{id}", s.deleteAccountHandler)
		r.HandleFunc("POST /accounts/{id}/activate", s.activateAccountHandler)
		r.HandleFunc("PUT /accounts/{id}/topics", s.setTopicsHandler)

		r.HandleFunc("GET /settings/{key}", s.getSettingHandler)
		r.HandleFunc("PUT /settings/{key}", s.putSettingHandler)
	})

	s.router.HandleFunc("GET /rss", s.rssHandler)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// progressHandler returns the tracker snapshot for UI polling
func (s *Server) progressHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, s.tracker.State())
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
