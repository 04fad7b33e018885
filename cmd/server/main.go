package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"parlour-backend-go/internal/api"
	"parlour-backend-go/internal/config"
	"parlour-backend-go/internal/core"
	"parlour-backend-go/internal/db"
	"parlour-backend-go/internal/middleware"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// The Firestore client is connected here and owned here; components
	// receive it as an explicit dependency.
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	firestoreClient, err := db.Connect(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Firestore", zap.Error(err))
	}
	defer firestoreClient.Close()
	zapLogger.Info("Firestore client initialized successfully.")

	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	cartRepo := db.NewFirestoreCartRepository(firestoreClient)
	paymentRepo := db.NewFirestorePaymentRepository(firestoreClient)
	reviewRepo := db.NewFirestoreReviewRepository(firestoreClient)

	userService := core.NewUserService(userRepo)
	cartService := core.NewCartService(cartRepo)
	reviewService := core.NewReviewService(reviewRepo)
	settlementService := core.NewSettlementService(paymentRepo, cartRepo, zapLogger)
	billingService := core.NewStripeBillingService(appConfig.StripeSecretKey)
	zapLogger.Info("Core services initialized successfully.")

	tokenSecret := []byte(appConfig.AccessTokenSecret)
	gate := middleware.NewAccessGate(tokenSecret, userService, zapLogger)

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured.")
	}

	api.SetupRoutes(
		router,
		zapLogger,
		gate,
		tokenSecret,
		userService,
		cartService,
		reviewService,
		settlementService,
		billingService,
	)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
