package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/k12345663/Shop-Mauli/internal/auth"
	"github.com/k12345663/Shop-Mauli/internal/cache"
	"github.com/k12345663/Shop-Mauli/internal/config"
	"github.com/k12345663/Shop-Mauli/internal/db"
	"github.com/k12345663/Shop-Mauli/internal/handlers"
	"github.com/k12345663/Shop-Mauli/internal/health"
	h "github.com/k12345663/Shop-Mauli/internal/http"
	"github.com/k12345663/Shop-Mauli/internal/middleware"
	"github.com/k12345663/Shop-Mauli/internal/repositories"
	"github.com/k12345663/Shop-Mauli/internal/services"
	"github.com/k12345663/Shop-Mauli/internal/telegram"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	reportCache := cache.New(cfg)
	defer reportCache.Close()
	if reportCache.Enabled() {
		log.Printf("[Cache] Redis connected, month reports will be cached")
	} else {
		log.Printf("[Cache] Redis unavailable, running without report cache")
	}

	notifier := telegram.New(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if _, ok := notifier.(telegram.NopNotifier); ok {
		log.Printf("[Telegram] credentials not configured, notifications disabled")
	}

	// Repositories
	renterRepo := repositories.NewRenterRepository(pool)
	shopRepo := repositories.NewShopRepository(pool)
	complexRepo := repositories.NewComplexRepository(pool)
	assignmentRepo := repositories.NewRenterShopRepository(pool)
	paymentRepo := repositories.NewRentPaymentRepository(pool)
	userRepo := repositories.NewUserRepository(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	advanceService := services.NewAdvanceService(renterRepo, assignmentRepo, paymentRepo, reportCache)
	collectionService := services.NewCollectionService(renterRepo, assignmentRepo, paymentRepo, reportCache)
	reportService := services.NewReportService(assignmentRepo, paymentRepo, reportCache)
	adminService := services.NewAdminService(shopRepo, renterRepo, complexRepo, assignmentRepo, paymentRepo, reportCache)
	registryService := services.NewRegistryService(renterRepo, shopRepo, complexRepo, assignmentRepo)
	userService := services.NewUserService(userRepo, jwtManager)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	advanceHandler := handlers.NewAdvanceHandler(advanceService, notifier)
	collectionHandler := handlers.NewCollectionHandler(collectionService, notifier)
	reportHandler := handlers.NewReportHandler(reportService)
	adminHandler := handlers.NewAdminHandler(adminService, notifier)
	registryHandler := handlers.NewRegistryHandler(registryService)
	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	router := h.NewRouter(
		authHandler,
		advanceHandler,
		collectionHandler,
		reportHandler,
		adminHandler,
		registryHandler,
		userHandler,
		healthHandler,
		authMiddleware,
	)

	var handler http.Handler = router
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.NewCORS(cfg)(handler)
	handler = middleware.PanicRecovery(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
