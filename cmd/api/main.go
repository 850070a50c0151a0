package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/api/handlers"
	"github.com/prospect-intel/backend/internal/cache/redis"
	"github.com/prospect-intel/backend/internal/companydb"
	"github.com/prospect-intel/backend/internal/metrics"
	"github.com/prospect-intel/backend/internal/middleware/ratelimit"
	"github.com/prospect-intel/backend/internal/middleware/security"
	"github.com/prospect-intel/backend/internal/middleware/validation"
	"github.com/prospect-intel/backend/internal/orchestrator"
	"github.com/prospect-intel/backend/internal/providers/enrichment"
	"github.com/prospect-intel/backend/internal/providers/jobs"
	"github.com/prospect-intel/backend/internal/providers/linkedin"
	"github.com/prospect-intel/backend/internal/providers/news"
	"github.com/prospect-intel/backend/internal/providers/website"
	"github.com/prospect-intel/backend/internal/recommend"
	"github.com/prospect-intel/backend/internal/report"
	"github.com/prospect-intel/backend/internal/scoring"
	"github.com/prospect-intel/backend/internal/storage/sqlite"
	"github.com/prospect-intel/backend/pkg/config"
	appLogger "github.com/prospect-intel/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting Prospect Intelligence API Server")

	metrics.Init()

	sqliteClient, err := sqlite.NewClient(cfg.SQLite.Path)
	if err != nil {
		appLogger.Fatal("Failed to create SQLite client", zap.Error(err))
	}
	defer sqliteClient.Close()

	if err := sqliteClient.InitSchema(); err != nil {
		appLogger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	var cache *redis.Client
	if cfg.Redis.Enabled {
		cache, err = redis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLMin)*time.Minute,
		)
		if err != nil {
			appLogger.Warn("Redis unavailable, running without analysis cache", zap.Error(err))
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	enrichmentClient := enrichment.NewClient(
		cfg.Providers.Enrichment.APIKey,
		cfg.Providers.Enrichment.BaseURL,
		time.Duration(cfg.Providers.Enrichment.TimeoutSec)*time.Second,
	)
	newsClient := news.NewClient(
		cfg.Providers.News.APIKey,
		cfg.Providers.News.BaseURL,
		time.Duration(cfg.Providers.News.TimeoutSec)*time.Second,
		cfg.Providers.News.DaysBack,
		cfg.Providers.News.MaxArticles,
	)
	jobsClient := jobs.NewClient(
		cfg.Providers.Jobs.APIKey,
		cfg.Providers.Jobs.Host,
		time.Duration(cfg.Providers.Jobs.TimeoutSec)*time.Second,
		cfg.Providers.Jobs.Pages,
	)
	websiteClient := website.NewClient(
		time.Duration(cfg.Providers.Website.TimeoutSec) * time.Second,
	)

	var llmClient *recommend.LLMClient
	if cfg.LLM.Enabled && cfg.LLM.APIKey != "" {
		llmClient = recommend.NewLLMClient(
			cfg.LLM.APIKey,
			cfg.LLM.Model,
			cfg.LLM.Temperature,
			cfg.LLM.MaxTokens,
			time.Duration(cfg.LLM.TimeoutSec)*time.Second,
		)
		llmClient.OnUsage(func(totalTokens int) {
			metrics.LLMTokensUsed.WithLabelValues(cfg.LLM.Model).Add(float64(totalTokens))
		})
	}

	scorer := scoring.NewEngine()
	recommender := recommend.NewGenerator(llmClient, cfg.Scoring.Thresholds, cfg.Scoring.Categories)

	timeouts := orchestrator.Timeouts{
		Enrichment: time.Duration(cfg.Providers.Enrichment.TimeoutSec) * time.Second,
		News:       time.Duration(cfg.Providers.News.TimeoutSec) * time.Second,
		Jobs:       time.Duration(cfg.Providers.Jobs.TimeoutSec) * time.Second,
		Website:    time.Duration(cfg.Providers.Website.TimeoutSec) * time.Second,
	}

	var cacheDep orchestrator.AnalysisCache
	if cache != nil {
		cacheDep = cache
	}

	service := orchestrator.NewService(
		enrichmentClient,
		newsClient,
		jobsClient,
		websiteClient,
		cacheDep,
		sqliteClient,
		scorer,
		recommender,
		timeouts,
	)

	var refresher *orchestrator.LinkedInRefresher
	if cfg.Providers.LinkedIn.Enabled && cfg.Providers.LinkedIn.APIKey != "" {
		linkedinClient := linkedin.NewClient(
			cfg.Providers.LinkedIn.APIKey,
			cfg.Providers.LinkedIn.DatasetID,
			cfg.Providers.LinkedIn.BaseURL,
			time.Duration(cfg.Providers.LinkedIn.PollInterval)*time.Second,
			cfg.Providers.LinkedIn.PollAttempts,
		)
		refresher = orchestrator.NewLinkedInRefresher(linkedinClient, cacheDep, 0)
	}

	companyDB := companydb.Load(cfg.Companies.Path)
	reportGenerator := report.NewGenerator(time.Duration(cfg.Report.TimeoutSec) * time.Second)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{
		IsDevelopment: cfg.Logging.Level == "debug",
	}))

	limiter := ratelimit.New(ratelimit.Config{
		MaxRequestsPerMinute: 30,
		Logger:               appLogger.GetLogger(),
	})
	defer limiter.Stop()
	app.Use(limiter.Middleware())

	app.Use(validation.Middleware(validation.Config{
		MaxNameLength: 100,
		Logger:        appLogger.GetLogger(),
	}))

	analyzeHandler := handlers.NewAnalyzeHandler(service, refresher)
	reportHandler := handlers.NewReportHandler(service, reportGenerator, sqliteClient)
	companyHandler := handlers.NewCompanyHandler(companyDB, sqliteClient)
	wsHandler := handlers.NewWebSocketHandler(service)

	app.Post("/analyze", analyzeHandler.Analyze)
	app.Post("/analyze/comprehensive", analyzeHandler.AnalyzeComprehensive)
	app.Post("/generate-report", reportHandler.GenerateReport)

	app.Get("/api/company-suggestions", companyHandler.Suggestions)
	app.Get("/api/validate-company", companyHandler.Validate)
	app.Get("/api/v1/analyses/history", companyHandler.History)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/analyze", websocket.New(wsHandler.HandleConnection))

	app.Get("/metrics", metrics.MetricsHandler())

	healthHandler := func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		}
		if err := sqliteClient.HealthCheck(c.Context()); err != nil {
			status["status"] = "degraded"
			status["sqlite"] = err.Error()
		}
		if cache != nil {
			if err := cache.HealthCheck(c.Context()); err != nil {
				status["status"] = "degraded"
				status["redis"] = err.Error()
			}
		}
		return c.JSON(status)
	}
	app.Get("/health", healthHandler)
	app.Get("/api/v1/health", healthHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
