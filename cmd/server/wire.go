//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/granite-climbing/beta-api/internal/config"
	betavideodomain "github.com/granite-climbing/beta-api/internal/domain/betavideo"
	hashtagdomain "github.com/granite-climbing/beta-api/internal/domain/hashtag"
	"github.com/granite-climbing/beta-api/internal/infrastructure/database"
	"github.com/granite-climbing/beta-api/internal/infrastructure/graphapi"
	"github.com/granite-climbing/beta-api/internal/infrastructure/hashtagcache"
	"github.com/granite-climbing/beta-api/internal/infrastructure/logger"
	betavideorepo "github.com/granite-climbing/beta-api/internal/infrastructure/repository/betavideo"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver/handlers"
)

var hashtagSet = wire.NewSet(
	graphapi.NewClient,
	wire.Bind(new(hashtagdomain.Provider), new(*graphapi.Client)),
	wire.Bind(new(betavideodomain.ThumbnailFetcher), new(*graphapi.Client)),
	provideIDCache,
	wire.Bind(new(hashtagdomain.IDCache), new(*hashtagcache.Cache)),
	hashtagdomain.NewService,
)

var betaVideoSet = wire.NewSet(
	betavideorepo.NewRepository,
	wire.Bind(new(betavideodomain.Repository), new(*betavideorepo.Repository)),
	betavideodomain.NewService,
)

// BuildApplication assembles the beta API with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		hashtagSet,
		betaVideoSet,
		handlers.NewProvider,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func provideIDCache(cfg *config.Config) *hashtagcache.Cache {
	return hashtagcache.New(cfg.HashtagCacheTTL)
}
