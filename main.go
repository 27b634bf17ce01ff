package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meditrip/config"
	"meditrip/cron"
	"meditrip/database"
	catalogRepoPkg "meditrip/database/repository/catalog"
	itineraryRepoPkg "meditrip/database/repository/itinerary"
	orderRepoPkg "meditrip/database/repository/order"
	reservationRepoPkg "meditrip/database/repository/reservation"
	userRepoPkg "meditrip/database/repository/user"
	"meditrip/handlers"
	"meditrip/middleware"
	"meditrip/routes"
	"meditrip/services/booking"
	"meditrip/services/catalog"
	"meditrip/services/integration"
	"meditrip/services/notification"
	"meditrip/services/pricing"
	"meditrip/services/storage"
	"meditrip/services/user"
	"meditrip/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitRatesCache()
	utils.FirebaseInit()

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	itineraryRepo := itineraryRepoPkg.NewMongoItineraryRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}

	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitNotificationWorker(notificationService, reservationRepo)

	bookingService := &booking.DefaultBookingService{
		Orders:       orderRepo,
		Itineraries:  itineraryRepo,
		Reservations: reservationRepo,
		Estimator:    pricing.NewGeminiEstimator(config.AppConfig.GeminiAPIKey, logger),
		Notification: notification.NewAsynqNotifier(),
		Logger:       logger,
	}

	catalogService := &catalog.DefaultCatalogService{
		Repo:   catalogRepo,
		Logger: logger,
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	weatherService := &integration.WeatherService{
		BaseURL: config.AppConfig.OpenWeatherBaseURL,
		APIKey:  config.AppConfig.OpenWeatherAPIKey,
		Client:  httpClient,
		Cache:   utils.GetCacheClient(),
		Logger:  logger,
	}
	exchangeService := &integration.ExchangeService{
		BaseURL: config.AppConfig.ExchangeBaseURL,
		APIKey:  config.AppConfig.ExchangeAPIKey,
		Client:  httpClient,
		Cache:   utils.GetRatesCacheClient(),
		Logger:  logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BookingSvc: bookingService,
		CatalogSvc: catalogService,
		UserSvc:    userService,
		WeatherSvc: weatherService,
		RatesSvc:   exchangeService,
		StorageSvc: storageService,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
