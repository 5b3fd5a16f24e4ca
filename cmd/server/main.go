package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lawalalx/foodplan/config"
	httpDelivery "github.com/lawalalx/foodplan/internal/delivery/http"
	"github.com/lawalalx/foodplan/internal/domain"
	"github.com/lawalalx/foodplan/internal/infrastructure/cache"
	"github.com/lawalalx/foodplan/internal/infrastructure/catalog"
	"github.com/lawalalx/foodplan/internal/infrastructure/llm"
	"github.com/lawalalx/foodplan/internal/infrastructure/store"
	"github.com/lawalalx/foodplan/internal/logger"
	"github.com/lawalalx/foodplan/internal/usecase"
)

func main() {
	// Load .env if present; environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("starting foodplan backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache", cfg.Cache.Type))

	// Feedback persistence (optional)
	var feedbackStore domain.FeedbackStore
	if cfg.Store.Path != "" {
		sqliteStore, err := store.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			zlog.Fatal("failed to open feedback store", zap.Error(err))
		}
		defer sqliteStore.Close()
		feedbackStore = sqliteStore
	}

	// Cache backend
	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			zlog.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisCache.Close()
		cacheRepo = redisCache
	default:
		cacheRepo = cache.NewMemoryCache()
	}

	// Catalog and known meals
	products := catalog.NewHolder(catalog.DefaultProducts())
	meals := catalog.NewMealBook(catalog.DefaultMeals())

	// Generation-service client
	generator := llm.NewClient(llm.Config{
		BaseURL:           cfg.Generation.BaseURL,
		APIKey:            cfg.Generation.APIKey,
		Model:             cfg.Generation.Model,
		Timeout:           cfg.Generation.Timeout,
		MaxRetries:        cfg.Generation.MaxRetries,
		RequestsPerSecond: cfg.Generation.RequestsPerSecond,
	}, zlog)

	// Usecase layer
	normalizer := usecase.NewNormalizer(nil)
	matcher := usecase.NewMatcherService(normalizer, usecase.MatcherConfig{
		FuzzyThreshold:    cfg.Matching.FuzzyThreshold,
		CategoryThreshold: cfg.Matching.CategoryThreshold,
		TieEpsilon:        cfg.Matching.TieEpsilon,
	}, zlog)
	cart := usecase.NewCartService(zlog)
	planner := usecase.NewPlannerService(generator, products, cacheRepo, matcher, cart,
		usecase.PlannerConfig{CacheTTL: cfg.Cache.TTL}, zlog)
	feedback := usecase.NewFeedbackService(feedbackStore, zlog)
	recommend := usecase.NewRecommendService(usecase.RecommendConfig{
		SelectionWeight:  cfg.Recommend.SelectionWeight,
		PurchaseWeight:   cfg.Recommend.PurchaseWeight,
		CookWeight:       cfg.Recommend.CookWeight,
		FavoriteLimit:    cfg.Recommend.FavoriteLimit,
		PopularityWeight: cfg.Recommend.PopularityWeight,
	}, zlog)

	// Rebuild profiles from persisted events
	if feedbackStore != nil {
		if err := feedback.Restore(context.Background()); err != nil {
			zlog.Fatal("failed to restore feedback profiles", zap.Error(err))
		}
	}

	handler := httpDelivery.NewHandler(planner, feedback, recommend, products, meals, zlog)
	router := httpDelivery.SetupRouter(cfg, handler, zlog)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
