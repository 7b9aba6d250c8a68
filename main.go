package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"mortgage-engine/config"
	httpLayer "mortgage-engine/http"
	"mortgage-engine/policy"
	"mortgage-engine/repository"
	"mortgage-engine/service"
)

func main() {
	cfg := config.Load()

	pol, err := loadPolicy(cfg)
	if err != nil {
		log.Fatalf("Error loading policy: %v", err)
	}

	rateTable, err := repository.NewRateTable()
	if err != nil {
		log.Fatalf("Error loading rate table: %v", err)
	}

	calcRepo := repository.NewCalculationRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr, 24*time.Hour)
	} else {
		cache = repository.NewMockCache()
	}

	depositService := service.NewDepositService(pol, calcRepo)
	productService := service.NewProductService(rateTable, pol, calcRepo)
	borrowingService := service.NewBorrowingService(pol, cache, calcRepo)

	depositHandler := httpLayer.NewDepositHandler(depositService)
	productHandler := httpLayer.NewProductHandler(productService)
	borrowingHandler := httpLayer.NewBorrowingHandler(borrowingService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer rateLimiter.Stop()

	router := mux.NewRouter()
	router.Use(httpLayer.RateLimitMiddleware(rateLimiter))
	router.HandleFunc("/loan/deposit", depositHandler.CalculateDeposit).Methods(http.MethodPost)
	router.HandleFunc("/loan/products", productHandler.ResolveProducts).Methods(http.MethodPost)
	router.HandleFunc("/loan/max-borrowing", borrowingHandler.MaxBorrowing).Methods(http.MethodPost)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Affordability engine listening on %s", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

func loadPolicy(cfg config.Config) (*policy.Policy, error) {
	if cfg.PolicyFile != "" {
		return policy.LoadFile(cfg.PolicyFile)
	}
	return policy.Default()
}
