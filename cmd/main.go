package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	authapp "github.com/rentconnect/rentconnect-api/application/auth"
	resourceapp "github.com/rentconnect/rentconnect-api/application/resource"
	"github.com/rentconnect/rentconnect-api/cmd/config"
	redisclient "github.com/rentconnect/rentconnect-api/cmd/redis"
	_ "github.com/rentconnect/rentconnect-api/docs"
	auditRepo "github.com/rentconnect/rentconnect-api/repository/audit"
	redisRepo "github.com/rentconnect/rentconnect-api/repository/redis"
	resourceRepo "github.com/rentconnect/rentconnect-api/repository/resource"
	txRepo "github.com/rentconnect/rentconnect-api/repository/tx"
	userRepo "github.com/rentconnect/rentconnect-api/repository/user"
	"github.com/rentconnect/rentconnect-api/thirdparty/rabbitmq"
	"github.com/rentconnect/rentconnect-api/transport"
	"github.com/rentconnect/rentconnect-api/utils/logger"
	"go.uber.org/zap"
)

// @title RENTCONNECT API
// @version 1.0
// @description Property management REST API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Redis backs the token cache; the API still works without it.
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, token lookups fall through to the database", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Lease-expiration pipeline; optional like redis.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, lease expirations will not be scheduled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ResourceRepo := resourceRepo.NewResourceRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()
	AuditRepo := auditRepo.NewAuditRepository(cfg.App.AuditLogDir)

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, TxRepo, RedisRepo)
	ResourceApp := resourceapp.NewResourceApp(ResourceRepo, TxRepo, AuditRepo, publisher)

	httpTransport := transport.NewTransport(cfg, AuthApp, ResourceApp)

	// Consume scheduled lease expirations and call the internal release endpoint.
	if publisher != nil {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
			cfg.Internal.APIURL, cfg.Internal.APIKey)
		if err != nil {
			logger.Warn("err connect rabbitmq consumer", zap.Error(err))
		} else {
			defer consumer.Close()
			if err := consumer.Start(context.Background()); err != nil {
				logger.Warn("err start lease-expiration consumer", zap.Error(err))
			}
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
