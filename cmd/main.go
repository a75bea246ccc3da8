package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/geo_incident_sync/internal/changefeed"
	"github.com/shenikar/geo_incident_sync/internal/collaborator"
	"github.com/shenikar/geo_incident_sync/internal/config"
	"github.com/shenikar/geo_incident_sync/internal/connection"
	"github.com/shenikar/geo_incident_sync/internal/dispatcher"
	v1 "github.com/shenikar/geo_incident_sync/internal/handler/http/v1"
	"github.com/shenikar/geo_incident_sync/internal/highlight"
	"github.com/shenikar/geo_incident_sync/internal/location"
	"github.com/shenikar/geo_incident_sync/internal/maplayer"
	"github.com/shenikar/geo_incident_sync/internal/notification"
	"github.com/shenikar/geo_incident_sync/internal/repository"
	"github.com/shenikar/geo_incident_sync/internal/service"
	"github.com/shenikar/geo_incident_sync/internal/session"
	"github.com/shenikar/geo_incident_sync/internal/store"
	"github.com/shenikar/geo_incident_sync/internal/webhook"
	"github.com/shenikar/geo_incident_sync/pkg/geo"
	"github.com/shenikar/geo_incident_sync/pkg/logger"
	"github.com/shenikar/geo_incident_sync/pkg/postgres"
	redisclient "github.com/shenikar/geo_incident_sync/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/geo_incident_sync/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const changefeedBufferSize = 256

// @title Geo Incident Sync API
// @version 1.0
// @description Real-time incident sync and proximity notification engine.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
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

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	clk := clock.New()

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	settingsRepo := repository.NewSettingsRepository(redisClient)

	opts := notification.Options{
		Clock:              clk,
		ToastDuration:      cfg.ToastDuration,
		DefaultRadiusMiles: cfg.DefaultRadiusMiles,
	}

	// Журнал регистраций в PostgreSQL (необязателен)
	var stats v1.RegistrationStats
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		registrationRepo := repository.NewRegistrationRepository(dbpool)
		opts.Journal = registrationRepo
		stats = registrationRepo
	}

	// Пересылка оповещений через вебхуки
	var webhookWorker *webhook.WebhookWorker
	if cfg.WebhookURL != "" {
		opts.Forwarder = webhook.NewForwarder(webhook.NewRedisWebhookPublisher(redisClient))
		webhookWorker = webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	}

	// Хранилище инцидентов
	highlights := highlight.NewTracker(clk, cfg.HighlightWindow, log)
	incidentStore, err := store.New(cfg.TombstoneCapacity, highlights, log)
	if err != nil {
		log.Fatalf("Failed to create incident store: %v", err)
	}

	remote := collaborator.New(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	tracker := location.NewTracker(clk, log)

	// Канал реального времени; обработчик кадров назначается после создания движка
	var frames *dispatcher.Dispatcher
	manager := connection.NewManager(cfg.WSURL, clk, cfg.ReconnectDelay, func(ctx context.Context, frame []byte) {
		frames.HandleFrame(ctx, frame)
	}, log)

	engine := notification.NewEngine(manager, tracker, settingsRepo, opts, log)
	frames = dispatcher.New(incidentStore, engine, log)

	// Сессия
	monitor := session.NewMonitor(settingsRepo, clk, cfg.SessionCheckInterval, log)
	monitor.OnLogout(func(reason session.Reason) {
		if reason.Forced() {
			engine.NotifySessionExpired()
		}
	})

	incidentService := service.NewIncidentService(remote, incidentStore, highlights, monitor, log)

	// Слой карты
	mapController := maplayer.NewController(maplayer.NewCanvas(), incidentStore, remote, log)
	incidentStore.Subscribe(func(store.Change) {
		mapController.Refresh()
	})

	// Поток изменений в Kafka (необязателен)
	var feed *changefeed.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		feed = changefeed.NewPublisher(changefeed.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic), changefeedBufferSize, log)
		feed.Start(ctx)
		incidentStore.Subscribe(feed.Publish)
		log.Infof("Publishing incident changes to topic %s", cfg.KafkaTopic)
	}

	tracker.OnChange(func(geo.Point) {
		engine.LocationChanged(ctx)
	})
	tracker.OnFailure(engine.NotifyLocationFailed)

	// После переподключения догружаем пропущенные изменения
	var openedBefore atomic.Bool
	manager.OnStateChange(func(state connection.State) {
		engine.ConnectionChanged(ctx, state)
		if state != connection.StateOpen {
			return
		}
		if openedBefore.Swap(true) {
			go func() {
				if err := incidentService.Resync(ctx); err != nil {
					log.Warnf("Resync after reconnect failed: %v", err)
				}
			}()
		}
	})

	if err := engine.Load(ctx); err != nil {
		log.Warnf("Failed to load alert settings: %v", err)
	}
	if err := incidentService.LoadInitial(ctx); err != nil {
		log.Warnf("Initial incident load failed, starting with an empty map: %v", err)
	}
	mapController.Refresh()

	manager.Start(ctx)
	monitor.Start(ctx)

	// Инициализация хэндлеров
	services := v1.Services{
		Incidents:     incidentService,
		Notifications: engine,
		Location:      tracker,
		Map:           mapController,
		Connection:    manager,
	}
	if stats != nil {
		services.Stats = stats
	}
	handler := v1.NewHandler(services, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	cancel()
	manager.Close()
	monitor.Stop()
	mapController.Close()
	engine.Close()
	highlights.Close()
	if feed != nil {
		if err := feed.Close(); err != nil {
			log.Errorf("Failed to close changefeed writer: %v", err)
		}
	}
	if webhookWorker != nil {
		<-webhookWorker.Done()
	}

	log.Info("Server gracefully stopped")
}
