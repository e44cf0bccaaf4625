package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/granite-climbing/beta-api/internal/config"
	betavideodomain "github.com/granite-climbing/beta-api/internal/domain/betavideo"
	hashtagdomain "github.com/granite-climbing/beta-api/internal/domain/hashtag"
	"github.com/granite-climbing/beta-api/internal/infrastructure/database"
	"github.com/granite-climbing/beta-api/internal/infrastructure/graphapi"
	"github.com/granite-climbing/beta-api/internal/infrastructure/hashtagcache"
	"github.com/granite-climbing/beta-api/internal/infrastructure/logger"
	"github.com/granite-climbing/beta-api/internal/infrastructure/observability"
	betavideorepo "github.com/granite-climbing/beta-api/internal/infrastructure/repository/betavideo"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver/handlers"
)

// @title Beta API
// @version 1.0
// @description Instagram hashtag search proxy and beta video store for the Granite Climbing site
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	if !cfg.InstagramConfigured() {
		log.Warn().Msg("Instagram credentials not set, hashtag search will answer 500")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	graphClient := graphapi.NewClient(cfg, log)
	idCache := hashtagcache.New(cfg.HashtagCacheTTL)
	hashtagService := hashtagdomain.NewService(cfg, graphClient, idCache, log)

	betaVideoRepository := betavideorepo.NewRepository(db)
	betaVideoService := betavideodomain.NewService(betaVideoRepository, graphClient, log)

	handlerProvider := handlers.NewProvider(cfg, hashtagService, betaVideoService, log)
	httpServer := httpserver.New(cfg, log, handlerProvider)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
