package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"legal-qa-bot/internal/config"
	"legal-qa-bot/internal/db"
	"legal-qa-bot/internal/email"
	apihttp "legal-qa-bot/internal/http"
	"legal-qa-bot/internal/repository"
	"legal-qa-bot/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadServer()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Without a database the server answers from seeded in-memory data,
	// which is the normal demo setup.
	var (
		lawRepo     repository.LawRepository     = repository.NewMemoryLawRepository(nil)
		accountRepo repository.AccountRepository = repository.NewMemoryAccountRepository()
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := db.Ping(ctxPing, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		cancel()
		lawRepo = repository.NewPgLawRepository(pool)
		accountRepo = repository.NewPgAccountRepository(pool)
	}

	var quota service.QuotaCounter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			quota = service.NewRedisQuotaCounter(redisClient)
		}
		cancel()
	}
	if quota == nil {
		quota = service.NewMemoryQuotaCounter()
	}

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	searchSvc := service.NewSearchService(lawRepo)
	answerer := service.NewRetrievalAnswerer(searchSvc)
	accountSvc := service.NewAccountService(logger, accountRepo, quota, cfg.DefaultRequestLimit)
	upgradeSvc := service.NewUpgradeService(logger, emailSender, cfg.UpgradeEmail)

	authHandler := apihttp.NewAuthHandler(logger, accountSvc)
	lawHandler := apihttp.NewLawHandler(logger, lawRepo, searchSvc)
	queryHandler := apihttp.NewQueryHandler(logger, answerer, accountSvc)
	userHandler := apihttp.NewUserHandler(logger, accountSvc)
	upgradeHandler := apihttp.NewUpgradeHandler(logger, upgradeSvc)
	router := apihttp.NewRouter(logger, authHandler, lawHandler, queryHandler, userHandler, upgradeHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
