// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-bank-ledger/config"
	"go-bank-ledger/handler"
	"go-bank-ledger/ledger"
	"go-bank-ledger/logger"
	"go-bank-ledger/router"
	"go-bank-ledger/service"
)

// newRouter wires the ledger core, the service layer, and the HTTP handlers
// together. Both the real server and tests go through the same wiring.
func newRouter(svc *service.LedgerService) http.Handler {
	accountHandler := handler.NewAccountHandler(svc)
	transactionHandler := handler.NewTransactionHandler(svc)
	maintenanceHandler := handler.NewMaintenanceHandler(svc)
	return router.NewRouter(accountHandler, transactionHandler, maintenanceHandler)
}

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	// The whole bank lives in this process: one in-memory ledger, no
	// external storage.
	svc := service.NewLedgerService(ledger.New())
	r := newRouter(svc)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// TestApp bundles a freshly wired router and its service for integration
// tests.
type TestApp struct {
	Router  http.Handler
	Service *service.LedgerService
}

// NewTestApp builds an application instance around an empty ledger.
func NewTestApp() *TestApp {
	svc := service.NewLedgerService(ledger.New())
	return &TestApp{
		Router:  newRouter(svc),
		Service: svc,
	}
}
