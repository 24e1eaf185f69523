package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/nebulink/nebulink/pkg/ai"
	"github.com/nebulink/nebulink/pkg/config"
	"github.com/nebulink/nebulink/pkg/consensus"
	"github.com/nebulink/nebulink/pkg/export"
	"github.com/nebulink/nebulink/pkg/mastodon"
	"github.com/nebulink/nebulink/pkg/progress"
	"github.com/nebulink/nebulink/pkg/store"
	"github.com/nebulink/nebulink/pkg/timeline"
	"github.com/nebulink/nebulink/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] can't load config: %v", err)
		os.Exit(1)
	}

	var secrets []string
	for _, s := range []string{cfg.AI.APIKey, cfg.AI.Secondary.APIKey} {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	setupLog(opts.Debug, opts.NoColor, secrets...)

	log.Printf("[INFO] starting nebulink version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] nebulink failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run wires the pipeline and serves until the context is canceled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	st, err := store.New(ctx, store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer st.Close()

	// the active account selects the instance and token, default instance
	// without one
	upstream := cfg.GetUpstreamConfig()
	instance, token := upstream.Instance, ""
	if account, err := st.Account.GetActiveAccount(ctx); err == nil && account != nil {
		instance, token = account.Instance, account.Token
		log.Printf("[INFO] using active account %s on %s", account.Name, account.Instance)
	}
	client := mastodon.New(instance, token, upstream.Timeout, upstream.UserAgent)

	// AI backend is optional, the pipeline degrades to plain feed loading
	var backend *ai.Backend
	if cfg.AI.Enabled {
		caps := ai.Capabilities{
			Detector:   cfg.AI.Capabilities.Detector,
			Summarizer: cfg.AI.Capabilities.Summarizer,
			JSONMode:   cfg.AI.Capabilities.JSONMode,
		}
		if backend, err = ai.NewBackend(cfg.GetAIConfig(), caps); err != nil {
			return fmt.Errorf("init ai backend: %w", err)
		}
	}

	feedCfg := cfg.GetFeedConfig()
	safetyEnabled, err := st.Setting.GetBool(ctx, store.SettingSafetyEnabled, feedCfg.SafetyFilter)
	if err != nil {
		log.Printf("[WARN] can't read safety setting, using config default: %v", err)
		safetyEnabled = feedCfg.SafetyFilter
	}
	safety := timeline.NewSafetyFilter(feedCfg.SafetyWords, safetyEnabled)

	tracker := progress.NewTracker()

	var classifier timeline.TopicClassifier
	var detector timeline.LanguageDetector
	var analyzer server.Analyzer
	if backend != nil {
		classifier = backend
		detector = backend
		locale := ""
		if cfg.AI.Capabilities.Detector {
			locale = cfg.AI.Locale
		}
		analyzer = consensus.NewEngine(backend, tracker, locale)
	}

	paginator := timeline.NewPaginator(client, classifier, tracker, safety)
	enricher := timeline.NewEnricher(client, detector, feedCfg.QueueDelay)
	rssGen := export.NewGenerator(cfg.Server.BaseURL, instance)

	srv := server.New(server.Deps{
		Config:   cfg,
		Feed:     paginator,
		Analyzer: analyzer,
		Upstream: client,
		Enricher: enricher,
		Accounts: st.Account,
		Settings: st.Setting,
		Tracker:  tracker,
		Safety:   safety,
		RSS:      rssGen,
	}, revision, debug)

	return srv.Run(ctx)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
