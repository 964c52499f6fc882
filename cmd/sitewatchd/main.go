package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/haukened/sitewatch/internal/site/common/clock"
	"github.com/haukened/sitewatch/internal/site/common/log"
	"github.com/haukened/sitewatch/internal/site/config"
	"github.com/haukened/sitewatch/internal/site/gateways/report"
	"github.com/haukened/sitewatch/internal/site/gateways/transport"
	"github.com/haukened/sitewatch/internal/site/repos/history"
	historybolt "github.com/haukened/sitewatch/internal/site/repos/history/bolt"
	"github.com/haukened/sitewatch/internal/site/repos/publicsuffix"
	"github.com/haukened/sitewatch/internal/site/repos/referrers"
	"github.com/haukened/sitewatch/internal/site/repos/suffixcache"
	"github.com/haukened/sitewatch/internal/site/repos/topsites"
	"github.com/haukened/sitewatch/internal/site/services/alerts"
	"github.com/haukened/sitewatch/internal/site/services/reporter"
	"github.com/haukened/sitewatch/internal/site/services/signals"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "sitewatchd"

	pruneInterval = 6 * time.Hour
)

// Application holds all the components of the daemon
type Application struct {
	config    *config.AppConfig
	clock     clock.Clock
	logger    log.Logger
	transport *transport.HTTPTransport
	handler   http.Handler
	history   history.Store
	topSites  *topsites.Holder
	topSource topsites.Source
}

func main() {
	// A missing .env file is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error reading .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"app":               appName,
		"version":           version,
		"env":               cfg.Env,
		"log_level":         cfg.LogLevel,
		"port":              cfg.Port,
		"history_db":        cfg.HistoryDB,
		"top_sites_file":    cfg.TopSitesFile,
		"reporting":         cfg.ReportURL != "",
		"suffix_cache_size": cfg.SuffixCacheSize,
	}, "Starting sitewatch daemon")

	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err.Error()}, "Failed to build application")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info(map[string]any{"signal": sig.String()}, "Shutdown signal received")
		cancel()
	}()

	if err := app.Run(ctx); err != nil {
		log.Fatal(map[string]any{"error": err.Error()}, "Daemon failed")
	}

	log.Info(nil, "sitewatch daemon stopped gracefully")
}

// buildApplication constructs all components and wires them together
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	clk := clock.RealClock{}
	logger := log.GetLogger()

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build repositories: %w", err)
	}

	evaluator := signals.New(signals.Options{
		Clock:     clk,
		History:   repos.history,
		Logger:    logger,
		Referrers: repos.referrers,
		Suffixes:  repos.suffixes,
		TopSites:  repos.topSites,
	})
	aggregator := alerts.New(alerts.Options{Evaluator: evaluator, Logger: logger})

	// reports stays a nil interface when reporting is disabled
	var reports transport.ReportSubmitter
	if cfg.ReportURL != "" {
		client, err := report.NewClient(report.Options{
			BaseURL: cfg.ReportURL,
			Timeout: time.Duration(cfg.ReportTimeoutSeconds) * time.Second,
		})
		if err != nil {
			_ = repos.history.Close()
			return nil, fmt.Errorf("failed to create report client: %w", err)
		}
		reports = reporter.New(reporter.Options{
			Alerts:    aggregator,
			Clock:     clk,
			Logger:    logger,
			Redirects: evaluator,
			Submitter: client,
		})
		log.Info(map[string]any{"endpoint": client.Endpoint()}, "Report client configured")
	}

	handler := transport.NewRouter(transport.Services{
		Alerts:    aggregator,
		Reports:   reports,
		History:   repos.history,
		Referrers: repos.referrers,
		Suffixes:  repos.suffixes,
		Clock:     clk,
	}, logger)

	// the API is for the local browser glue only
	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Port)

	return &Application{
		config:    cfg,
		clock:     clk,
		logger:    logger,
		transport: transport.NewHTTPTransport(addr, logger),
		handler:   handler,
		history:   repos.history,
		topSites:  repos.topSites,
		topSource: repos.topSource,
	}, nil
}

// repositories holds all repository implementations
type repositories struct {
	history   history.Store
	referrers *referrers.Store
	suffixes  suffixcache.Resolver
	topSites  *topsites.Holder
	topSource topsites.Source
}

// buildRepositories creates and configures all repository implementations
func buildRepositories(cfg *config.AppConfig, logger log.Logger) (*repositories, error) {
	store := publicsuffix.NewStore(publicsuffix.DefaultPatterns())
	stats := store.Stats()
	log.Info(map[string]any{
		"exact":    stats.Exact,
		"excluded": stats.Excluded,
		"under":    stats.Under,
	}, "Public suffix rules loaded")

	suffixes, err := suffixcache.New(publicsuffix.NewResolver(store), cfg.SuffixCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create suffix cache: %w", err)
	}

	tabs, err := referrers.New(cfg.TabCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create referrer store: %w", err)
	}

	source := topsites.DefaultSource()
	if cfg.TopSitesFile != "" {
		source = topsites.FileSource(cfg.TopSitesFile, logger)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HistoryDB), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	hist, err := historybolt.New(cfg.HistoryDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	log.Info(map[string]any{
		"path":   cfg.HistoryDB,
		"visits": hist.Stats().Visits,
	}, "History database opened")

	return &repositories{
		history:   hist,
		referrers: tabs,
		suffixes:  suffixes,
		topSites:  topsites.NewHolder(),
		topSource: source,
	}, nil
}

// Run starts the daemon and blocks until ctx is cancelled. The top-site list
// loads in the background; lookups report "not a top site" until it lands.
func (app *Application) Run(ctx context.Context) error {
	topsites.LoadAsync(ctx, app.topSites, app.topSource, app.config.BloomFPRate, app.logger)

	if err := app.transport.Start(ctx, app.handler); err != nil {
		return multierr.Combine(
			fmt.Errorf("failed to start HTTP transport: %w", err),
			app.history.Close(),
		)
	}

	log.Info(map[string]any{
		"address":   app.transport.Address(),
		"transport": "http",
	}, "API server started")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.pruneHistory(gctx, pruneInterval)
		return nil
	})
	runErr := g.Wait()

	log.Info(nil, "Shutdown initiated")

	return multierr.Combine(runErr, app.transport.Stop(), app.history.Close())
}

// pruneHistory drops visits older than the retention period now and then
// every interval until ctx is done.
func (app *Application) pruneHistory(ctx context.Context, interval time.Duration) {
	retention := time.Duration(app.config.HistoryRetentionDays) * 24 * time.Hour
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		removed, err := app.history.Prune(app.clock.Now().Add(-retention))
		if err != nil {
			app.logger.Warn(map[string]any{"error": err.Error()}, "History prune failed")
		} else if removed > 0 {
			app.logger.Info(map[string]any{"removed": removed}, "History pruned")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
