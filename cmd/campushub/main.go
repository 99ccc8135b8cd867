package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/campushub/api/swagger"
	"github.com/noah-isme/campushub/internal/handler"
	internalmiddleware "github.com/noah-isme/campushub/internal/middleware"
	"github.com/noah-isme/campushub/internal/repository"
	"github.com/noah-isme/campushub/internal/service"
	"github.com/noah-isme/campushub/pkg/cache"
	"github.com/noah-isme/campushub/pkg/config"
	"github.com/noah-isme/campushub/pkg/database"
	"github.com/noah-isme/campushub/pkg/export"
	"github.com/noah-isme/campushub/pkg/jobs"
	"github.com/noah-isme/campushub/pkg/logger"
	corsmiddleware "github.com/noah-isme/campushub/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campushub/pkg/middleware/requestid"
	sessionmiddleware "github.com/noah-isme/campushub/pkg/middleware/session"
	"github.com/noah-isme/campushub/pkg/storage"
)

// @title CampusHub API
// @version 1.0.0
// @description Student campus portal: shell, pages, dialog forms, toasts and downloads
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	var checks []handler.ReadinessCheck

	var redisClient *redis.Client
	if needsRedis(cfg) {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Fatal("failed to connect redis", zap.Error(err))
		}
		defer redisClient.Close() //nolint:errcheck
		checks = append(checks, handler.ReadinessCheck{Name: "redis", Check: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}})
	}

	var provider service.DataProvider = repository.NewFixtureRepository()
	if cfg.FixtureSource == config.FixtureSourcePostgres {
		var db *sqlx.DB
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logr.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer db.Close() //nolint:errcheck
		provider = repository.NewCatalogRepository(db, metricsSvc)
		checks = append(checks, handler.ReadinessCheck{Name: "postgres", Check: db.PingContext})
	}

	var memorySessions *repository.MemorySessionStore
	var sessions service.SessionStore
	if cfg.Session.Store == config.SessionStoreRedis {
		sessions = repository.NewRedisSessionStore(redisClient, cache.DefaultPrefix, cfg.Session.TTL)
	} else {
		memorySessions = repository.NewMemorySessionStore(cfg.Session.TTL)
		sessions = memorySessions
	}

	var cacheRepo service.CacheRepository
	if cfg.PageCache.Enabled {
		cacheRepo = repository.NewCacheRepository(redisClient, cache.DefaultPrefix)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.PageCache.TTL, logr, cfg.PageCache.Enabled)

	var relayQueue interface {
		Enqueue(task jobs.Task) error
	}
	var relay *repository.NotificationRelay
	if cfg.Notifications.RelayEnabled {
		relay = repository.NewNotificationRelay(redisClient, cfg.Notifications.Channel, uuid.NewString(), logr)
		queue := jobs.NewQueue("notification-relay", service.RelayHandler(relay), jobs.QueueConfig{
			Workers:    cfg.Notifications.RelayWorkers,
			MaxRetries: cfg.Notifications.RelayRetries,
			RetryDelay: cfg.Notifications.RelayRetryWait,
			Logger:     logr,
		})
		queue.Start(ctx)
		defer queue.Stop()
		relayQueue = queue
	}

	notifications := service.NewNotificationService(cfg.Notifications.InboxSize, relayQueue, metricsSvc, logr)
	if relay != nil {
		go func() {
			if err := relay.Listen(ctx, notifications.Deliver); err != nil {
				logr.Error("notification relay stopped", zap.Error(err))
			}
		}()
	}

	shell := service.NewShellService(sessions, metricsSvc, logr)
	portal := service.NewPortalService(shell, cacheSvc, notifications, logr)
	forms := service.NewFormValidator(validator.New())
	pages := service.NewPages(provider, forms, notifications, metricsSvc, logr)
	pages.Register(portal)
	if cacheSvc.Enabled() {
		if err := portal.FlushPages(ctx); err != nil {
			logr.Warn("page cache flush failed", zap.Error(err))
		}
	}

	exportStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Fatal("failed to prepare export storage", zap.Error(err))
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
	exports := service.NewExportService(provider, exportStore, signer, notifications, metricsSvc,
		service.ExportConfig{APIPrefix: cfg.APIPrefix, ResultTTL: cfg.Exports.SignedURLTTL}, logr,
		export.NewCSVExporter(), export.NewPDFExporter(service.Brand))

	go runJanitor(ctx, cfg, exports, memorySessions, notifications, logr)

	tmpl, err := handler.Templates()
	if err != nil {
		logr.Fatal("failed to parse templates", zap.Error(err))
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(sessionmiddleware.Middleware(sessionmiddleware.Options{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.Env == config.EnvProduction,
	}))
	r.Use(internalmiddleware.WithResponseMeta())
	r.Use(internalmiddleware.Metrics(metricsSvc))

	formServices := handler.FormServices{
		Assignments: pages.Assignments,
		Complaints:  pages.Complaints,
		Groups:      pages.Groups,
		Hostel:      pages.Hostel,
		Leave:       pages.Leave,
		WiFi:        pages.WiFi,
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r, cfg.APIPrefix, handler.Handlers{
		Shell:         handler.NewShellHandler(shell),
		Pages:         handler.NewPageHandler(portal),
		Forms:         handler.NewFormHandler(formServices),
		Actions:       handler.NewActionHandler(pages.Events, pages.Connect),
		Notifications: handler.NewNotificationHandler(notifications, 0),
		Exports:       handler.NewExportHandler(exports),
		Metrics:       handler.NewMetricsHandler(metricsSvc, checks...),
		Web:           handler.NewWebHandler(portal, shell, formServices, pages.Events, pages.Connect, exports, cfg.APIPrefix, logr),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "fixtures", cfg.FixtureSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

// needsRedis reports whether any enabled component is backed by Redis.
func needsRedis(cfg *config.Config) bool {
	return cfg.Redis.Enabled ||
		cfg.Session.Store == config.SessionStoreRedis ||
		cfg.PageCache.Enabled ||
		cfg.Notifications.RelayEnabled
}

func runJanitor(ctx context.Context, cfg *config.Config, exports *service.ExportService, sessions *repository.MemorySessionStore, notifications *service.NotificationService, logr *zap.Logger) {
	interval := cfg.Exports.CleanupInterval
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := exports.Cleanup(cfg.Exports.SignedURLTTL)
			if err != nil {
				logr.Warn("export cleanup failed", zap.Error(err))
			} else if len(removed) > 0 {
				logr.Info("expired exports removed", zap.Int("count", len(removed)))
			}
			if sessions != nil {
				if n := sessions.Sweep(); n > 0 {
					logr.Debug("idle sessions swept", zap.Int("count", n))
				}
			}
			if n := notifications.Sweep(cfg.Session.TTL); n > 0 {
				logr.Debug("idle inboxes swept", zap.Int("count", n))
			}
		}
	}
}
