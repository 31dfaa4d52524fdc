package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"wetopinie/config"
	"wetopinie/cron"
	"wetopinie/database"
	clinicRepoPkg "wetopinie/database/repository/clinic"
	moderationRepoPkg "wetopinie/database/repository/moderation"
	pendingRepoPkg "wetopinie/database/repository/pending"
	reviewRepoPkg "wetopinie/database/repository/review"
	"wetopinie/handlers"
	"wetopinie/routes"
	"wetopinie/services/directory"
	"wetopinie/services/moderation"
	"wetopinie/services/reviews"
	"wetopinie/services/submissions"
	"wetopinie/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	clinicRepo := clinicRepoPkg.NewMongoClinicRepo()
	pendingRepo := pendingRepoPkg.NewMongoPendingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	moderationRepo := moderationRepoPkg.NewMongoModerationRepo()

	// services.
	directoryService := &directory.DefaultDirectoryService{
		Repo:        clinicRepo,
		CacheClient: utils.GetCacheClient(),
	}
	filterStateStore := directory.NewFilterStateStore(utils.GetSessionCacheClient(), 30*24*time.Hour)

	reviewService := &reviews.DefaultReviewService{
		Reviews: reviewRepo,
		Pending: pendingRepo,
		Overlay: reviews.NewOverlay(utils.GetSessionCacheClient(), 24*time.Hour),
	}

	submissionService := &submissions.DefaultSubmissionService{
		Pending: pendingRepo,
		Clinics: clinicRepo,
	}

	moderationService := &moderation.DefaultModerationService{
		Pending: pendingRepo,
		Store:   moderationRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		directoryService,
		filterStateStore,
		reviewService,
		submissionService,
		moderationService,
	)
	routes.RegisterRoutes(router, handlerBundle, utils.AuthClient)

	// Background review-count reconciliation.
	cron.InitRecountWorker(clinicRepo, reviewRepo)

	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetSessionCacheClient(), database.MongoClient)

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
