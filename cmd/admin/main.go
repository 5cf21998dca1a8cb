package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/config"
	"github.com/karhabty/admin-gateway/internal/pkg/database"
	"github.com/karhabty/admin-gateway/internal/pkg/health"
	httpclient "github.com/karhabty/admin-gateway/internal/pkg/http"
	"github.com/karhabty/admin-gateway/internal/pkg/logger"
	"github.com/karhabty/admin-gateway/internal/pkg/middleware"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/pkg/server"

	catalogGateway "github.com/karhabty/admin-gateway/services/catalog/gateway"
	catalogHandler "github.com/karhabty/admin-gateway/services/catalog/handler"
	catalogHTTP "github.com/karhabty/admin-gateway/services/catalog/handler/http"
	catalogUsecase "github.com/karhabty/admin-gateway/services/catalog/usecase"
	requestGateway "github.com/karhabty/admin-gateway/services/requests/gateway"
	requestHandler "github.com/karhabty/admin-gateway/services/requests/handler"
	requestHTTP "github.com/karhabty/admin-gateway/services/requests/handler/http"
	requestUsecase "github.com/karhabty/admin-gateway/services/requests/usecase"
	userGateway "github.com/karhabty/admin-gateway/services/users/gateway"
	userHandler "github.com/karhabty/admin-gateway/services/users/handler"
	userHTTP "github.com/karhabty/admin-gateway/services/users/handler/http"
	userUsecase "github.com/karhabty/admin-gateway/services/users/usecase"
	walletGateway "github.com/karhabty/admin-gateway/services/wallets/gateway"
	walletHandler "github.com/karhabty/admin-gateway/services/wallets/handler"
	walletHTTP "github.com/karhabty/admin-gateway/services/wallets/handler/http"
	walletUsecase "github.com/karhabty/admin-gateway/services/wallets/usecase"
	workshopGateway "github.com/karhabty/admin-gateway/services/workshops/gateway"
	workshopHandler "github.com/karhabty/admin-gateway/services/workshops/handler"
	workshopHTTP "github.com/karhabty/admin-gateway/services/workshops/handler/http"
	workshopUsecase "github.com/karhabty/admin-gateway/services/workshops/usecase"
)

func main() {
	appName := "admin-gateway"
	configPath := config.GetEnv("CONFIG_PATH", "config/admin.env")

	configs, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Redis backs the short-lived caches; the gateway still works without it
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		defer redisClient.Close()
	} else {
		zapLogger.Warn("Redis not configured, caching disabled")
	}

	// Identity provider client, authenticated with its API key
	var identityClient *httpclient.Client
	var marketplaceTokens httpclient.TokenSource = httpclient.StaticTokenSource(configs.Marketplace.APIKey)
	if configs.Identity.BaseURL != "" {
		identityClient = httpclient.NewClient(models.MarketplaceConfig{
			BaseURL: configs.Identity.BaseURL,
			APIKey:  configs.Identity.APIKey,
			Timeout: configs.Identity.Timeout,
		}, httpclient.StaticTokenSource(configs.Identity.APIKey))

		marketplaceTokens = httpclient.NewCachedTokenSource(
			httpclient.NewIdentityTokenSource(identityClient), 10*time.Minute)
	} else {
		zapLogger.Warn("Identity provider not configured, user registration disabled")
	}

	// Marketplace API client shared by every gateway
	apiClient := httpclient.NewClient(configs.Marketplace, marketplaceTokens)

	// Gateways
	userGW := userGateway.NewUserGW(apiClient, identityClient)
	workshopGW := workshopGateway.NewWorkshopGW(apiClient)
	requestGW := requestGateway.NewRequestGW(apiClient)
	walletGW := walletGateway.NewWalletGW(apiClient)
	transactionGW := walletGateway.NewTransactionGW(apiClient)
	catalogGW := catalogGateway.NewCatalogGW(apiClient)

	// Usecases
	userUC := userUsecase.NewUserUC(userGW)
	workshopUC := workshopUsecase.NewWorkshopUC(workshopGW)
	requestUC := requestUsecase.NewRequestUC(requestGW)
	walletUC := walletUsecase.NewWalletUC(walletGW, transactionGW, redisClient)
	catalogUC := catalogUsecase.NewCatalogUC(catalogGW)

	// HTTP handlers
	users := userHandler.NewHandler(userHTTP.NewUserHandler(userUC), configs)
	workshops := workshopHandler.NewHandler(workshopHTTP.NewWorkshopHandler(workshopUC), configs)
	requests := requestHandler.NewHandler(requestHTTP.NewRequestHandler(requestUC), configs)
	wallets := walletHandler.NewHandler(walletHTTP.NewWalletHandler(walletUC), configs)
	catalog := catalogHandler.NewHandler(catalogHTTP.NewServiceTypeHandler(catalogUC), configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	users.RegisterRoutes(e)
	workshops.RegisterRoutes(e)
	requests.RegisterRoutes(e)
	wallets.RegisterRoutes(e)
	catalog.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped", logger.Err(err))
	}
}
