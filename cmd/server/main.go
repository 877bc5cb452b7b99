package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/wdthirty/solana-launchpad-sub004/internal/config"
	"github.com/wdthirty/solana-launchpad-sub004/internal/db"
	"github.com/wdthirty/solana-launchpad-sub004/internal/handler"
	launchpadhttp "github.com/wdthirty/solana-launchpad-sub004/internal/http"
	"github.com/wdthirty/solana-launchpad-sub004/internal/ratelimit"
	"github.com/wdthirty/solana-launchpad-sub004/internal/repository"
	"github.com/wdthirty/solana-launchpad-sub004/internal/scheduler"
	"github.com/wdthirty/solana-launchpad-sub004/internal/service"
	"github.com/wdthirty/solana-launchpad-sub004/pkg/logger"
	"github.com/wdthirty/solana-launchpad-sub004/pkg/snowflake"
)

const (
	queuePollInterval = 30 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(0); err != nil {
		logger.Error("init id generator", "error", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		logger.Warn("LAUNCHPAD_JWT_SECRET not set, wallet auth disabled")
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	tokenRepo := repository.NewTokenRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	queueRepo := repository.NewVerificationQueueRepository(rdb)

	collisionService := service.NewCollisionService(tokenRepo, cfg.DeterrenceWindow)
	tokenService := service.NewTokenService(tokenRepo, collisionService)
	verificationService := service.NewVerificationService(tokenRepo, queueRepo, cfg.QueueWarnThreshold)
	commentService := service.NewCommentService(commentRepo, tokenRepo)
	authService := service.NewAuthService(cfg.JWTSecret)

	limiter := ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow)
	limiter.Start()
	defer limiter.Stop()

	monitor := scheduler.New(verificationService, queuePollInterval)
	monitor.Start()
	defer monitor.Stop()

	e := launchpadhttp.NewRouter(
		handler.NewTokenHandler(tokenService, verificationService),
		handler.NewCommentHandler(commentService),
		handler.NewAuthHandler(authService),
		authService,
		limiter,
		cfg.StaticDir,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
