package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/lendq/loan-intake/internal/auth"
	"github.com/lendq/loan-intake/internal/config"
	"github.com/lendq/loan-intake/internal/handler"
	"github.com/lendq/loan-intake/internal/repository"
	"github.com/lendq/loan-intake/internal/service"
	"github.com/lendq/loan-intake/internal/validate"
	"github.com/lendq/loan-intake/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Wire dependencies explicitly, once, at startup
	validator := validate.New()
	customerRepo := repository.NewCustomerRepository(db)
	applicationRepo := repository.NewLoanApplicationRepository(db)

	customerService := service.NewCustomerService(customerRepo, validator)
	applicationService := service.NewLoanApplicationService(applicationRepo, customerRepo, validator)

	tokenStore := auth.NewRedisTokenStore(redisClient)
	tokenService := auth.NewTokenService(tokenStore, cfg.Auth.TokenSecret, cfg.Auth.APIKey, cfg.Auth.TokenTTL)

	customerHandler := handler.NewCustomerHandler(customerService, cfg)
	applicationHandler := handler.NewLoanApplicationHandler(applicationService, cfg)
	authHandler := handler.NewAuthHandler(tokenService, cfg)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Setup routes
	router := setupRoutes(customerHandler, applicationHandler, authHandler, healthHandler, tokenService)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	customerHandler *handler.CustomerHandler,
	applicationHandler *handler.LoanApplicationHandler,
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	tokenService *auth.TokenService,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.LoggingMiddleware, response.CORSMiddleware)

	// Health checks
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// Token issuance is the only unauthenticated API route
	router.HandleFunc("/api/v1/auth/token", authHandler.Token).Methods("POST")

	// API routes behind bearer-token auth
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(tokenService.Middleware)

	api.HandleFunc("/customers", customerHandler.Create).Methods("POST")
	api.HandleFunc("/customers", customerHandler.List).Methods("GET")
	api.HandleFunc("/customers/{customerId}", customerHandler.Get).Methods("GET")
	api.HandleFunc("/customers/{customerId}", customerHandler.Update).Methods("PUT")
	api.HandleFunc("/customers/{customerId}", customerHandler.Delete).Methods("DELETE")
	api.HandleFunc("/customers/{customerId}/loan-applications", applicationHandler.ListByCustomer).Methods("GET")

	api.HandleFunc("/loan-applications", applicationHandler.Create).Methods("POST")
	api.HandleFunc("/loan-applications", applicationHandler.List).Methods("GET")
	api.HandleFunc("/loan-applications/{applicationId}", applicationHandler.Get).Methods("GET")
	api.HandleFunc("/loan-applications/{applicationId}", applicationHandler.Delete).Methods("DELETE")

	return router
}
