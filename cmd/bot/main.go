// Command artfeed-bot runs the art-sharing chat bot.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"artfeed/internal/bot"
	"artfeed/internal/config"
	"artfeed/internal/migrate"
	"artfeed/internal/repository/postgres"
	"artfeed/internal/service"
	"artfeed/internal/transport/telegram"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations and starts the long-poll loop.
func main() {
	cfgPath := flag.String("config", "", "path to TOML config (env ARTFEED_* overrides)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// No logger yet.
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	zcfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(cfg.Log.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zcfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.Database.DSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	artRepo := postgres.NewArtRepo(db)
	reactionRepo := postgres.NewReactionRepo(db)
	commentRepo := postgres.NewCommentRepo(db)

	// Services
	gallerySvc := service.NewGalleryService(userRepo, artRepo, commentRepo)
	feedSvc := service.NewFeedService(artRepo)
	reactionSvc := service.NewReactionService(reactionRepo)
	profileSvc := service.NewProfileService(artRepo, commentRepo)

	// Transport + engine
	client := telegram.NewClient(cfg.Bot.Token, "", cfg.Bot.PollTimeout)
	engine := bot.NewEngine(
		gallerySvc, feedSvc, reactionSvc, profileSvc,
		client,
		bot.Options{AutoAdvance: cfg.Feed.AutoAdvance},
		logger,
	)
	poller := telegram.NewPoller(client, engine, cfg.Bot.PollTimeout, logger)

	logger.Info("polling", zap.Duration("timeout", cfg.Bot.PollTimeout))
	if err := poller.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("poller stopped", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
