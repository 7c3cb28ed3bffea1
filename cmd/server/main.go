package main

import (
	"context"

	"go.uber.org/zap"

	"smartmail/config"
	"smartmail/internal/api"
	"smartmail/internal/db"
	"smartmail/internal/llm"
	"smartmail/internal/model"
	"smartmail/internal/mq"
	redisclient "smartmail/internal/redis"
	"smartmail/internal/repository"
	"smartmail/internal/service"
	"smartmail/pkg/logger"
)

func main() {
	// 1. Load config
	cfg := config.Load()

	zlog := logger.NewLogger()
	defer zlog.Sync()

	// 2. Init DB
	dbConn, err := db.NewConnection(cfg.DB, zlog)
	if err != nil {
		zlog.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	if err := db.EnsureSchema(context.Background(), dbConn); err != nil {
		zlog.Fatal("schema initialization failed", zap.Error(err))
	}

	// 3. Init Redis classification cache (optional)
	var cache *service.ClassifyCache
	if cfg.Redis.Addr != "" && cfg.LLM.CacheTTL > 0 {
		rdb := redisclient.NewRedisClient(cfg.Redis)
		defer rdb.Close()
		cache = service.NewClassifyCache(rdb, cfg.LLM.CacheTTL)
	}

	// 4. Init RabbitMQ producer (optional)
	var publisher service.EventPublisher
	if cfg.MQ.URL != "" {
		producer, err := mq.NewProducer(cfg.MQ.URL)
		if err != nil {
			zlog.Fatal("MQ producer initialization failed", zap.Error(err))
		}
		defer producer.Close()
		publisher = producer
	}

	// 5. Init LLM provider
	provider, err := llm.New(cfg.LLM.Provider, cfg.LLM.RequestTimeout)
	if err != nil {
		zlog.Fatal("LLM provider initialization failed", zap.Error(err))
	}

	sender := model.Sender{
		Name:               cfg.Sender.Name,
		Email:              cfg.Sender.Email,
		Company:            cfg.Sender.Company,
		Role:               cfg.Sender.Role,
		CommunicationStyle: cfg.Sender.CommunicationStyle,
	}

	// 6. Init repositories and services
	emailRepo := repository.NewEmailRepository(dbConn)
	mailService := service.NewMailService(emailRepo, publisher, sender, zlog)
	composeService := service.NewComposeService(provider, cache, sender, zlog)

	// 7. Init handlers and router
	aiHandler := api.NewAIHandler(composeService, zlog)
	emailHandler := api.NewEmailHandler(mailService)
	router := api.NewRouter(aiHandler, emailHandler)

	zlog.Info("starting server",
		zap.String("port", cfg.Server.Port),
		zap.String("provider", cfg.LLM.Provider),
	)
	if err := router.Run(cfg.Server.Port); err != nil {
		zlog.Fatal("server start failed", zap.Error(err))
	}
}
