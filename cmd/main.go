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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PreciousMuemi/forest-link/internal/config"
	"github.com/PreciousMuemi/forest-link/internal/events"
	v1 "github.com/PreciousMuemi/forest-link/internal/handler/http/v1"
	"github.com/PreciousMuemi/forest-link/internal/hotspot"
	"github.com/PreciousMuemi/forest-link/internal/messaging"
	"github.com/PreciousMuemi/forest-link/internal/repository"
	"github.com/PreciousMuemi/forest-link/internal/scheduler"
	"github.com/PreciousMuemi/forest-link/internal/service"
	"github.com/PreciousMuemi/forest-link/internal/ussd"
	"github.com/PreciousMuemi/forest-link/pkg/logger"
	"github.com/PreciousMuemi/forest-link/pkg/postgres"
	redisclient "github.com/PreciousMuemi/forest-link/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/PreciousMuemi/forest-link/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Forest Link API
// @version 1.0
// @description Community forest threat reporting, ranger dispatch and alert broadcasting.
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

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func newSender(cfg *config.Config, log *logrus.Logger) messaging.Sender {
	if cfg.SMSGatewayURL == "" {
		log.Warn("SMS_GATEWAY_URL not set, outbound SMS will only be logged")
		return messaging.NewLogSender(log)
	}
	return messaging.NewHTTPSender(messaging.HTTPSenderConfig{
		URL:           cfg.SMSGatewayURL,
		APIKey:        cfg.SMSAPIKey,
		Secret:        cfg.SMSSecret,
		SenderID:      cfg.SMSSenderID,
		Timeout:       cfg.SMSTimeout,
		RatePerSecond: cfg.SMSRatePerSecond,
	})
}

func newPublisher(cfg *config.Config, log *logrus.Logger) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("KAFKA_BROKERS not set, incident events are discarded")
		return events.NoopPublisher{}
	}
	log.WithField("topic", cfg.IncidentEventsTopic).Info("Publishing incident events to Kafka")
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.IncidentEventsTopic)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Ranger and sender notifications go through the Redis queue; broadcasts send directly.
	sender := newSender(cfg, log)
	notifier := messaging.NewRedisNotifier(redisClient)
	worker := messaging.NewWorker(redisClient, sender, log, cfg.NotifyMaxRetries, cfg.NotifyBaseDelay)
	worker.Start(ctx)

	publisher := newPublisher(cfg, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.WithError(err).Warn("Failed to close event publisher")
		}
	}()

	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.IncidentCacheTTL)
	rangerRepo := repository.NewRangerRepository(dbpool)
	communityRepo := repository.NewCommunityRepository(dbpool)

	incidentService := service.NewIncidentService(incidentRepo, rangerRepo, notifier, publisher, log, cfg)
	rangerService := service.NewRangerService(rangerRepo, log)
	broadcastService := service.NewBroadcastService(incidentRepo, communityRepo, sender, publisher, log, cfg)
	responseService := service.NewResponseService(incidentRepo, rangerRepo, communityRepo, notifier, publisher, log, cfg)

	firms := hotspot.NewFIRMSClient(nil, cfg.FIRMSBaseURL, cfg.FIRMSMapKey, cfg.FIRMSSource, cfg.FIRMSArea, cfg.FIRMSDays)
	hotspotService := service.NewHotspotService(firms, incidentRepo, incidentService, log, cfg)

	jobs := scheduler.New(hotspotService, log)
	if cfg.FIRMSMapKey == "" {
		log.Warn("FIRMS_MAP_KEY not set, scheduled satellite sync disabled")
	} else if err := jobs.ScheduleHotspotSync(cfg.HotspotSyncCron); err != nil {
		log.Fatalf("Failed to schedule hotspot sync: %v", err)
	}
	jobs.Start()

	menu := ussd.NewMenu(
		ussd.NewRedisSessionStore(redisClient, cfg.USSDSessionTTL),
		incidentService,
		responseService,
		broadcastService,
		log,
	)

	handler := v1.NewHandler(v1.Services{
		Incidents:  incidentService,
		Rangers:    rangerService,
		Broadcasts: broadcastService,
		Responses:  responseService,
		Hotspots:   hotspotService,
		USSD:       menu,
	}, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	jobs.Stop(shutdownCtx)
	cancel()

	log.Info("Server gracefully stopped")
}
