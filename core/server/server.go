package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"localxp-api/core/cache"
	"localxp-api/core/clock"
	"localxp-api/core/config"
	"localxp-api/core/database"
	"localxp-api/core/logger"
	"localxp-api/core/metrics"
	"localxp-api/core/middleware"
	"localxp-api/core/queue"
	"localxp-api/core/storage"
	"localxp-api/core/validator"
	"localxp-api/modules/booking"
	"localxp-api/modules/catalogsync"
	"localxp-api/modules/experience"
	expRepository "localxp-api/modules/experience/repository"
	"localxp-api/modules/provider"

	scalargo "github.com/bdpiprava/scalar-go"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// App is the wired HTTP server with its background worker.
type App struct {
	Echo    *echo.Echo
	Catalog *expRepository.CatalogRepository
	cfg     *config.Config
	worker  *queue.Worker
	closers []func() error
}

// Run loads the configuration, serves until SIGINT/SIGTERM and shuts down gracefully.
func Run() error {
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := New(ctx, cfg, clock.NewSystem(cfg.Location()), reg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	select {
	case err := <-errCh:
		app.Shutdown(context.Background())
		return err
	case <-ctx.Done():
		logger.Info("Server:Shutdown:Signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	app.Shutdown(shutdownCtx)
	return nil
}

// New wires every module. Optional backends (Redis, Postgres, S3, providers,
// scheduled refresh) are only connected when enabled in cfg.
func New(ctx context.Context, cfg *config.Config, clk clock.Clock, reg *prometheus.Registry) (*App, error) {
	app := &App{cfg: cfg}
	m := metrics.New(reg)

	providerCache := cache.NewMemoryCache()
	if cfg.Redis.Enabled {
		client := cache.NewRedisClient(cache.RedisConfig{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		redisCache, err := cache.NewRedisCache(ctx, client)
		if err != nil {
			return nil, err
		}
		providerCache = redisCache
		app.closers = append(app.closers, client.Close)
	}

	deps := provider.Deps{Config: cfg, Clock: clk, Cache: providerCache, Metrics: m}
	if cfg.Database.Enabled {
		db, err := database.InitDB(database.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		deps.DB = db
		app.closers = append(app.closers, db.Close)
	}
	if cfg.S3.Enabled {
		deps.S3 = storage.NewS3Client(storage.S3Config{
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
	}

	base, aggregator, err := provider.Init(deps)
	if err != nil {
		return nil, err
	}

	// The catalog starts from the base source alone; providers join on the first refresh.
	app.Catalog = expRepository.NewCatalogRepository(clk)
	seed, err := base.Fetch(ctx, cfg.Providers.Location)
	if err != nil {
		return nil, fmt.Errorf("load %s catalog: %w", base.Name(), err)
	}
	if err := app.Catalog.ReplaceAll(seed); err != nil {
		return nil, fmt.Errorf("install %s catalog: %w", base.Name(), err)
	}
	m.SetCatalogSize(app.Catalog.Len())

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.EchoValidator{}

	mw := middleware.NewMiddleware(m, cfg.Server.RequestTimeout)
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{AllowOrigins: cfg.Server.AllowOrigins}))
	e.Use(mw.RequestID(), mw.AccessLog(), mw.Timeout())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok", "catalog_size": app.Catalog.Len()})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	e.GET("/docs", docsHandler(cfg.Server.DocsDir))

	experience.Init(e, app.Catalog, clk)
	booking.Init(e, app.Catalog, clk, m, cfg.Booking.ServiceFeeRate)

	syncDeps := catalogsync.Deps{
		Repo:     app.Catalog,
		Base:     base,
		Fetcher:  aggregator,
		Metrics:  m,
		Location: cfg.Providers.Location,
		Cron:     cfg.Refresh.Cron,
	}
	if cfg.Refresh.Enabled {
		if !cfg.Redis.Enabled {
			logger.Warn("Server:New:RefreshNeedsRedis", "cron", cfg.Refresh.Cron)
		} else {
			app.worker = queue.NewWorker(queue.RedisConfig{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}, clk.Now().Location())
			syncDeps.Worker = app.worker
		}
	}
	if _, err := catalogsync.Init(e, syncDeps); err != nil {
		return nil, fmt.Errorf("init catalog sync: %w", err)
	}

	app.Echo = e
	return app, nil
}

// Start runs the worker, when configured, and blocks serving HTTP.
func (a *App) Start() error {
	if a.worker != nil {
		if err := a.worker.Start(); err != nil {
			return err
		}
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	logger.Info("Server:Start", "addr", addr, "catalog_size", a.Catalog.Len())
	if err := a.Echo.Start(addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) {
	if err := a.Echo.Shutdown(ctx); err != nil {
		logger.Error("Server:Shutdown:HTTP", "error", err)
	}
	if a.worker != nil {
		a.worker.Shutdown()
	}
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			logger.Warn("Server:Shutdown:Close", "error", err)
		}
	}
	logger.Info("Server:Shutdown:Done")
}

func docsHandler(dir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		html, err := scalargo.NewV2(
			scalargo.WithSpecDir(dir),
			scalargo.WithMetaDataOpts(
				scalargo.WithTitle("LocalXP API"),
			),
		)
		if err != nil {
			return c.String(http.StatusInternalServerError, err.Error())
		}
		return c.HTML(http.StatusOK, html)
	}
}
