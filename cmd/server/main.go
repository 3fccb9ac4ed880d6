package main

import (
	"context"
	"log"
	"net/http"

	"fishyy_admin/internal/config"
	"fishyy_admin/internal/controllers"
	"fishyy_admin/internal/gateway"
	"fishyy_admin/internal/inventory"
	"fishyy_admin/internal/logger"
	"fishyy_admin/internal/middleware"
	"fishyy_admin/internal/routes"
	"fishyy_admin/internal/store"
)

func main() {
	// Load settings from .env / environment
	config.Load()

	// Initialize structured logging to file
	logger.Setup(config.C.LogFile)

	// Backend client, poll-driven snapshot and PIN-gated inventory
	gw := gateway.New(config.C.BackendURL, config.C.HTTPTimeout)

	dashboard := store.New(gw, config.C.PollInterval)
	dashboard.Start(context.Background())

	inv := inventory.NewManager(gw, config.C.AdminPIN)

	controllers.Init(dashboard, inv)

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Admin dashboard running at :" + config.C.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.C.Port, handler))
}
