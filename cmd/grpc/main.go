package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	storefrontv1 "github.com/fekuna/shopwave-storefront/api/storefront/v1"
	"github.com/fekuna/shopwave-storefront/config"
	"github.com/fekuna/shopwave-storefront/internal/cache"
	"github.com/fekuna/shopwave-storefront/internal/catalog"
	"github.com/fekuna/shopwave-storefront/internal/database"
	"github.com/fekuna/shopwave-storefront/internal/events"
	"github.com/fekuna/shopwave-storefront/internal/logger"
	"github.com/fekuna/shopwave-storefront/internal/middleware"
	"github.com/fekuna/shopwave-storefront/internal/storefront"

	catRepoPkg "github.com/fekuna/shopwave-storefront/internal/catalog/repository"
	catUCPkg "github.com/fekuna/shopwave-storefront/internal/catalog/usecase"

	sfH "github.com/fekuna/shopwave-storefront/internal/storefront/handler"
	sfRepoPkg "github.com/fekuna/shopwave-storefront/internal/storefront/repository"
	sfUCPkg "github.com/fekuna/shopwave-storefront/internal/storefront/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Load Catalog
	var catRepo catalog.Repository
	switch cfg.Catalog.Source {
	case config.CatalogSourceSQL:
		db, err := database.Open(ctx, &database.Config{
			Driver:          cfg.Catalog.Driver,
			DSN:             cfg.Catalog.DSN,
			MaxOpenConns:    cfg.Catalog.MaxOpenConns,
			MaxIdleConns:    cfg.Catalog.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Catalog.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Catalog.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to catalog database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to catalog database", zap.String("driver", cfg.Catalog.Driver))
		catRepo = catRepoPkg.NewSQLRepository(db)
	case config.CatalogSourceStatic:
		catRepo = catRepoPkg.NewStaticRepository(catalog.Seed())
	default:
		appLogger.Fatal("Unknown catalog source", zap.String("source", cfg.Catalog.Source))
	}

	cat, err := catalog.Load(ctx, catRepo)
	if err != nil {
		appLogger.Fatal("Could not load catalog", zap.Error(err))
	}
	appLogger.Info("Catalog loaded",
		zap.Int("products", cat.Len()),
		zap.Strings("categories", cat.Categories()),
	)

	// 4. Initialize Session Store
	var sessionRepo storefront.Repository
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		redisClient, err := cache.NewRedisClient(ctx, &cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		sessionRepo = sfRepoPkg.NewRedisRepository(redisClient, cfg.Session.TTL)
	case config.SessionStoreMemory:
		sessionRepo = sfRepoPkg.NewMemoryRepository()
	default:
		appLogger.Fatal("Unknown session store", zap.String("store", cfg.Session.Store))
	}

	// 5. Initialize Kafka Publisher
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(&events.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		appLogger.Info("Kafka publisher ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}
	defer publisher.Close()

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCatalogUseCase(cat, appLogger)
	sfUC := sfUCPkg.NewStorefrontUseCase(cat, sessionRepo, publisher, appLogger)

	// 7. Initialize Handlers
	sfHandler := sfH.NewStorefrontHandler(catUC, sfUC, appLogger)

	// 8. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(),
			middleware.LoggingInterceptor(appLogger),
		),
		grpc.ChainStreamInterceptor(
			middleware.StreamLoggingInterceptor(appLogger),
		),
	)

	storefrontv1.RegisterStorefrontServiceServer(grpcServer, sfHandler)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// WatchView streams stay open until their client leaves, so bound the drain.
	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(10 * time.Second):
		appLogger.Warn("Graceful stop timed out, closing open streams")
		grpcServer.Stop()
	}
	appLogger.Info("Server stopped")
}
