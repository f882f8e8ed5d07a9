package router

import (
	"net/http"

	"go-bank-ledger/handler"
)

func NewRouter(accountHandler *handler.AccountHandler, transactionHandler *handler.TransactionHandler, maintenanceHandler *handler.MaintenanceHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)

	mux.Handle("POST /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.CreateAccount))
	mux.Handle("GET /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.ListAccounts))
	mux.Handle("GET /api/accounts/{accountId}", handler.ErrorHandlingMiddleware(accountHandler.GetAccount))
	mux.Handle("GET /api/accounts/{accountId}/balance", handler.ErrorHandlingMiddleware(accountHandler.GetBalance))
	mux.Handle("POST /api/accounts/{accountId}/deposits", handler.ErrorHandlingMiddleware(accountHandler.Deposit))
	mux.Handle("POST /api/accounts/{accountId}/withdrawals", handler.ErrorHandlingMiddleware(accountHandler.Withdraw))
	mux.Handle("GET /api/accounts/{accountId}/transactions", handler.ErrorHandlingMiddleware(transactionHandler.ListTransactionsForAccount))

	mux.Handle("POST /api/transfers", handler.ErrorHandlingMiddleware(transactionHandler.CreateTransfer))
	mux.Handle("POST /api/maintenance/interest-and-fees", handler.ErrorHandlingMiddleware(maintenanceHandler.RunInterestAndFees))

	return handler.RequestLogger(mux)
}
