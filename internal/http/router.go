package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/k12345663/Shop-Mauli/internal/handlers"
	"github.com/k12345663/Shop-Mauli/internal/middleware"
	"github.com/k12345663/Shop-Mauli/internal/models"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	advanceHandler *handlers.AdvanceHandler,
	collectionHandler *handlers.CollectionHandler,
	reportHandler *handlers.ReportHandler,
	adminHandler *handlers.AdminHandler,
	registryHandler *handlers.RegistryHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/healthz", healthHandler.Check).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Collector API - rent collection, advance distribution, deposits
	collectorAPI := r.PathPrefix("/api/collector").Subrouter()
	collectorAPI.Use(authMiddleware.Authenticate)
	collectorAPI.Use(middleware.RequireRole(models.RoleCollector))
	collectorAPI.HandleFunc("/advance", advanceHandler.Distribute).Methods("POST")
	collectorAPI.HandleFunc("/collect", collectionHandler.Collect).Methods("POST")
	collectorAPI.HandleFunc("/search", reportHandler.Search).Methods("GET")
	collectorAPI.HandleFunc("/history", collectionHandler.History).Methods("GET")
	collectorAPI.HandleFunc("/deposits/{assignment_id}", collectionHandler.RecordDeposit).Methods("PATCH")

	// Admin/owner API - dashboards, ledger, registry CRUD
	adminAPI := r.PathPrefix("/api/admin").Subrouter()
	adminAPI.Use(authMiddleware.Authenticate)
	adminAPI.Use(middleware.RequireRole(models.RoleAdmin, models.RoleOwner))
	adminAPI.HandleFunc("/stats", adminHandler.Stats).Methods("GET")
	adminAPI.HandleFunc("/payments", adminHandler.Payments).Methods("GET")
	adminAPI.HandleFunc("/payments/{id}", adminHandler.UpdatePayment).Methods("PATCH")
	adminAPI.HandleFunc("/defaulters", reportHandler.Defaulters).Methods("GET")

	adminAPI.HandleFunc("/renters", registryHandler.ListRenters).Methods("GET")
	adminAPI.HandleFunc("/renters", registryHandler.CreateRenter).Methods("POST")
	adminAPI.HandleFunc("/renters/{id}", registryHandler.UpdateRenter).Methods("PUT")
	adminAPI.HandleFunc("/renters/{id}", registryHandler.DeleteRenter).Methods("DELETE")

	adminAPI.HandleFunc("/shops", registryHandler.ListShops).Methods("GET")
	adminAPI.HandleFunc("/shops", registryHandler.CreateShop).Methods("POST")
	adminAPI.HandleFunc("/shops/{id}", registryHandler.UpdateShop).Methods("PUT")
	adminAPI.HandleFunc("/shops/{id}", registryHandler.DeleteShop).Methods("DELETE")

	adminAPI.HandleFunc("/complexes", registryHandler.ListComplexes).Methods("GET")
	adminAPI.HandleFunc("/complexes", registryHandler.CreateComplex).Methods("POST")
	adminAPI.HandleFunc("/complexes/{id}", registryHandler.DeleteComplex).Methods("DELETE")

	adminAPI.HandleFunc("/assignments", registryHandler.ListAssignments).Methods("GET")
	adminAPI.HandleFunc("/assignments", registryHandler.AssignShop).Methods("POST")
	adminAPI.HandleFunc("/assignments/{id}", registryHandler.UnassignShop).Methods("DELETE")

	// User management - owner approves collector signups
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.Use(middleware.RequireRole(models.RoleAdmin, models.RoleOwner))
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("/{id}/approve", userHandler.Approve).Methods("PATCH")

	return r
}
