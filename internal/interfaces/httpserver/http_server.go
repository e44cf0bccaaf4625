package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	betaapidocs "github.com/granite-climbing/beta-api/docs/swagger"
	"github.com/granite-climbing/beta-api/internal/config"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver/handlers"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver/middlewares"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver/responses"
)

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

// New constructs the HTTP server with default middleware and routes.
func New(cfg *config.Config, log zerolog.Logger, handlerProvider *handlers.Provider) *HttpServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	betaapidocs.SwaggerInfo.BasePath = "/"

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.RequestLogger(log),
		middlewares.CORS(cfg.AllowedOrigin),
		middlewares.MetricsRecorder(),
	)
	engine.HandleMethodNotAllowed = true

	registerRoutes(engine, cfg, handlerProvider)

	return &HttpServer{
		cfg:    cfg,
		engine: engine,
		log:    log,
	}
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("beta-api HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func registerRoutes(engine *gin.Engine, cfg *config.Config, handlerProvider *handlers.Provider) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET("/beta-videos", handlerProvider.BetaVideos.List)
	engine.POST("/beta-videos", handlerProvider.BetaVideos.Submit)

	// Everything else is the hashtag search surface: any GET path,
	// including "/", proxies the Graph API; any other method is rejected.
	// OPTIONS never reaches here, the CORS middleware answers preflight.
	engine.NoMethod(methodNotAllowed)
	engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			handlerProvider.Hashtag.Search(c)
			return
		}
		methodNotAllowed(c)
	})
}

func methodNotAllowed(c *gin.Context) {
	responses.RespondError(c, http.StatusMethodNotAllowed, "Method not allowed")
}
