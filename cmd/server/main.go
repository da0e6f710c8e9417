package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"prepmate/server/internal/config"
	"prepmate/server/internal/handlers"
	"prepmate/server/internal/interview"
	"prepmate/server/internal/jobs"
	"prepmate/server/internal/llm"
	_ "prepmate/server/internal/llm/gemini"
	"prepmate/server/internal/metrics"
	"prepmate/server/internal/models"
	"prepmate/server/internal/repositories"
	"prepmate/server/internal/routers"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Interview{}, &models.Question{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func registerRoutes(router *chi.Mux, authHandler *handlers.AuthHandler, interviewHandler *handlers.InterviewHandler, questionHandler *handlers.QuestionHandler, providerHandler *handlers.ProviderHandler, healthHandler *handlers.HealthHandler, jwtSecret string) {
	routers.HealthRoutes(router, healthHandler)
	routers.AuthRoutes(router, authHandler, jwtSecret)
	routers.InterviewRoutes(router, interviewHandler, questionHandler, jwtSecret)
	routers.ProviderRoutes(router, providerHandler, jwtSecret)
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.Duration("provider_timeout", cfg.ProviderTimeout))

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	db, err := initDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	userRepo := &repositories.UserRepository{DB: db}
	interviewRepo := &repositories.InterviewRepository{DB: db}
	questionRepo := &repositories.QuestionRepository{DB: db}

	service := interview.NewService(interviewRepo, questionRepo, aiProvider, logger, cfg.ProviderTimeout)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, logger)
	interviewHandler := handlers.NewInterviewHandler(service, logger)
	questionHandler := handlers.NewQuestionHandler(service, logger)
	providerHandler := handlers.NewProviderHandler(aiProvider, logger)
	healthHandler := handlers.NewHealthHandler(aiProvider, db)

	janitor := jobs.NewJanitorJob(interviewRepo, logger, &jobs.JanitorConfig{
		Schedule: cfg.JanitorSchedule,
		MaxAge:   cfg.JanitorMaxAge,
		Enabled:  cfg.JanitorEnabled,
	})
	if err := janitor.Start(); err != nil {
		logger.Error("Failed to start janitor job", zap.Error(err))
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware)

	registerRoutes(router, authHandler, interviewHandler, questionHandler, providerHandler, healthHandler, cfg.JWTSecret)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("prepmate server starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("prepmate server shutting down...")
	janitor.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("prepmate server exited")
}
