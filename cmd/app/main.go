package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cageside/fightcred/internal/bootstrap"
	"github.com/cageside/fightcred/internal/config"
	"github.com/cageside/fightcred/internal/database"
	"github.com/cageside/fightcred/internal/event"
	"github.com/cageside/fightcred/internal/feed"
	"github.com/cageside/fightcred/internal/fight"
	"github.com/cageside/fightcred/internal/metrics"
	"github.com/cageside/fightcred/internal/notify"
	"github.com/cageside/fightcred/internal/poller"
	"github.com/cageside/fightcred/internal/prediction"
	"github.com/cageside/fightcred/internal/profile"
	"github.com/cageside/fightcred/internal/resolution"
	"github.com/cageside/fightcred/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, warning := range warnings {
		slog.Warn(warning)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), 10, 30*time.Minute, time.Hour)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := database.EnsureSchema(ctx, dbPool); err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	// Event bus and its standing subscribers
	eventBus := event.NewMemoryBus()

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(eventBus); err != nil {
		return err
	}

	if cfg.NotificationsEnabled() {
		notifier, err := notify.NewDiscordNotifier(cfg.DiscordWebhookID, cfg.DiscordWebhookToken)
		if err != nil {
			return err
		}
		notifier.Register(eventBus)
		slog.Info("Discord notifications enabled")
	}

	// Services
	engine := resolution.NewService(repos.Fight, repos.Prediction, repos.Profile,
		repos.FighterStat, repos.CredibilityLog, eventBus, cfg.ResolveParallelism)
	fightService := fight.NewService(repos.Fight, repos.Prediction, engine)
	predictionService := prediction.NewService(repos.Prediction, repos.Fight, repos.Profile)
	profileService := profile.NewService(repos.Profile, repos.FighterStat, repos.CredibilityLog, eventBus)

	// Result poller
	feedClient := feed.NewClient(cfg.FeedBaseURL, cfg.FeedTimeout)
	resultPoller := poller.New(repos.Fight, feedClient, engine, eventBus, cfg.PollInterval)
	resultPoller.Start(ctx)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool,
		fightService, predictionService, profileService, resultPoller)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	// Wait for termination signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("Signal received", "signal", sig)
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Poller: resultPoller,
		DBPool: dbPool,
	})

	return nil
}
