package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/farecast/config"
	"github.com/Domenick1991/farecast/internal/bootstrap"
	"github.com/Domenick1991/farecast/internal/cache"
	"github.com/Domenick1991/farecast/internal/logger"
	"github.com/Domenick1991/farecast/internal/model"
	"github.com/Domenick1991/farecast/internal/service/pricing"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run(cfg *config.Config) error {
	logg, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logg.Sync() }()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Pricing.Location()
	if err != nil {
		logg.Error("load pricing timezone", zap.Error(err))
		return err
	}

	loader := model.NewLoader(cfg.Model.Type, cfg.Model.Path, cfg.Model.ColumnsPath)
	if _, err := loader.Load(); err != nil {
		// Keep serving: every page shows the blocking artifact message instead of the form.
		logg.Error("model artifacts unavailable, predictions disabled", zap.Strings("files", loader.Files()), zap.Error(err))
	}

	levels := make([]cache.QuoteCache, 0, 2)
	if cfg.Cache.Size > 0 {
		memory, err := cache.NewMemoryCache(cfg.Cache.Size)
		if err != nil {
			logg.Error("create quote cache", zap.Error(err))
			return fmt.Errorf("create quote cache: %w", err)
		}
		levels = append(levels, memory)
	}
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logg.Warn("redis unreachable, continuing with in-process cache", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		levels = append(levels, redisCache)
	}

	opts := []pricing.PricingServiceOption{
		pricing.WithLocation(loc),
		pricing.WithLogger(logg),
	}
	if len(levels) > 0 {
		opts = append(opts, pricing.WithCache(cache.NewTiered(levels...), cfg.Cache.TTL()))
	}
	pricingService := pricing.NewPricingService(loader, opts...)

	if err := bootstrap.Run(ctx, cfg, pricingService, loader.Files(), logg); err != nil {
		logg.Error("server error", zap.Error(err))
		return err
	}
	return nil
}
