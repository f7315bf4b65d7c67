package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/rescue_dashboard/internal/auth"
	"github.com/shenikar/rescue_dashboard/internal/config"
	v1 "github.com/shenikar/rescue_dashboard/internal/handler/http/v1"
	"github.com/shenikar/rescue_dashboard/internal/metrics"
	"github.com/shenikar/rescue_dashboard/internal/notify"
	"github.com/shenikar/rescue_dashboard/internal/remote"
	"github.com/shenikar/rescue_dashboard/internal/repository"
	"github.com/shenikar/rescue_dashboard/internal/service"
	"github.com/shenikar/rescue_dashboard/internal/storage"
	"github.com/shenikar/rescue_dashboard/pkg/logger"
	"github.com/shenikar/rescue_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/rescue_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/rescue_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	poolStatsInterval  = 15 * time.Second
	boardSweepInterval = time.Minute
)

// @title Rescue Dashboard API
// @version 1.0
// @description Gateway in front of the animal rescue REST API: incident board, optimistic status updates and notifications.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey AdminKeyAuth
// @in header
// @name X-Admin-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// recordPoolStats периодически выгружает статистику пула соединений в метрики
func recordPoolStats(ctx context.Context, pool *pgxpool.Pool, m *metrics.Metrics) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stat := pool.Stat()
			m.RecordDBPoolStats(stat.TotalConns(), stat.AcquiredConns(), stat.IdleConns(), stat.EmptyAcquireCount(), stat.AcquireDuration())
		}
	}
}

// evictIdleBoards периодически освобождает доски неактивных токенов
func evictIdleBoards(ctx context.Context, svc service.IncidentService, maxIdle time.Duration) {
	ticker := time.NewTicker(boardSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.EvictIdle(maxIdle)
		}
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики
	appMetrics := metrics.NewMetrics(prometheus.DefaultRegisterer)
	go recordPoolStats(ctx, dbpool, appMetrics)

	// Клиент удаленного API
	remoteClient := remote.NewClient(cfg.RemoteAPIURL, remote.ClientOptions{
		Timeout:  cfg.RemoteAPITimeout,
		Observer: appMetrics,
	})

	// Уведомления: очередь в Redis, websocket hub и воркер
	publisher := notify.NewRedisPublisher(redisClient)
	hub := notify.NewHub(log)
	worker := notify.NewWorker(redisClient, hub, log, cfg)
	worker.Start(ctx)

	// Хранилище фотографий
	var media service.MediaStore
	if cfg.CloudinaryEnabled() {
		store, err := storage.NewCloudinaryStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		media = store
		log.Info("Cloudinary media storage enabled")
	} else {
		log.Warn("Cloudinary credentials are not set, media endpoints are disabled")
	}

	// Инициализация репозиториев
	statusChangeRepo := repository.NewStatusChangeRepository(dbpool)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(remoteClient, statusChangeRepo, publisher, log, cfg)
	dashboardService := service.NewDashboardService(remoteClient, media, publisher, log)
	go evictIdleBoards(ctx, incidentService, cfg.BoardIdleTTL)

	// Токен сессии
	tokenStore := auth.NewRedisTokenStore(redisClient, cfg.TokenKey)
	if subject := auth.CurrentSubject(ctx, tokenStore); subject != "" {
		log.WithField("subject", subject).Info("Restored session token")
	}
	if cfg.SessionAdminKey == "" {
		log.Warn("SESSION_ADMIN_KEY is not set, session token endpoints are disabled")
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, dashboardService, tokenStore, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metrics.Middleware(appMetrics))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
