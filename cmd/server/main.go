package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ClosetCoderSad/VisionScout/config"
	"github.com/ClosetCoderSad/VisionScout/internal/aggregator"
	"github.com/ClosetCoderSad/VisionScout/internal/api"
	"github.com/ClosetCoderSad/VisionScout/internal/browse"
	"github.com/ClosetCoderSad/VisionScout/internal/chat"
	"github.com/ClosetCoderSad/VisionScout/internal/notify"
	"github.com/ClosetCoderSad/VisionScout/internal/sources"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Load .env if present (for development)
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	notices := notify.NewHub(cfg.Aggregation.NoticeBuffer, logger)

	propertyClient := sources.NewPropertyClient(sources.PropertyClientConfig{
		BaseURL: cfg.PropertySearch.BaseURL,
		APIKey:  cfg.PropertySearch.APIKey,
		Limit:   cfg.PropertySearch.Limit,
		Timeout: time.Duration(cfg.Aggregation.FetchTimeoutSeconds) * time.Second,
	}, logger)

	vehicleClient := sources.NewVehicleClient(sources.VehicleClientConfig{
		BaseURL: cfg.VehicleSearch.BaseURL,
		APIKey:  cfg.VehicleSearch.APIKey,
		Records: cfg.VehicleSearch.Records,
		Zip:     cfg.VehicleSearch.Zip,
		Radius:  cfg.VehicleSearch.Radius,
		Timeout: time.Duration(cfg.Aggregation.FetchTimeoutSeconds) * time.Second,
	}, logger)

	orchestrator := aggregator.NewOrchestrator(propertyClient, vehicleClient, notices, aggregator.Config{
		Debounce:     time.Duration(cfg.Aggregation.DebounceMs) * time.Millisecond,
		FetchTimeout: time.Duration(cfg.Aggregation.FetchTimeoutSeconds) * time.Second,
	}, logger)

	session := browse.NewSession(orchestrator, cfg.Aggregation.PageSize, logger)
	defer session.Stop()

	chatClient := chat.NewClient(cfg.Chat.BackendURL, time.Duration(cfg.Chat.TimeoutSeconds)*time.Second, logger)
	transcript := chat.NewTranscript(chatClient, notices, logger)

	// Kick off the initial listings fetch
	logger.Info("Scheduling initial listings fetch")
	session.Start()

	handler := api.NewHandler(session, transcript, notices, logger)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
