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
	"go.uber.org/zap"

	"github.com/d60-Lab/agent-match/config"
	"github.com/d60-Lab/agent-match/internal/api"
	"github.com/d60-Lab/agent-match/internal/api/handler"
	"github.com/d60-Lab/agent-match/internal/matching"
	"github.com/d60-Lab/agent-match/internal/repository"
	"github.com/d60-Lab/agent-match/internal/service"
	"github.com/d60-Lab/agent-match/internal/telemetry"
	"github.com/d60-Lab/agent-match/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	shutdownTelemetry, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		logger.Error("telemetry setup failed", zap.Error(err))
		os.Exit(1)
	}

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	}

	// repositories & services
	board := repository.NewBoardRepository()
	actions := repository.NewActionRepository()
	scorer := matching.NewScorer()

	recommendSvc := service.NewRecommendService(board, scorer)
	publishSvc := service.NewPublishService(board)
	actionSvc := service.NewActionService(actions, board)
	routerSvc := service.NewRouterService(scorer)
	reply := service.NewOllamaReplyGenerator(cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Ollama.Timeout, cache, cfg.Redis.ReplyCacheTTL)

	if cfg.Server.SeedOnStart {
		counts := board.Seed(ctx, false)
		total := 0
		for _, n := range counts {
			total += n
		}
		logger.Info("board seeded", zap.Int("inserted", total))
	}

	h := handler.New(recommendSvc, publishSvc, actionSvc, routerSvc, reply, board, actions)
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.NewRouter(cfg, h),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logger.Warn("telemetry shutdown error", zap.Error(err))
	}
}
