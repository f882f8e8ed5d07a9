package handler

import (
	"encoding/json"
	"net/http"

	"go-bank-ledger/common"
	"go-bank-ledger/ledger"
	"go-bank-ledger/model"
	"go-bank-ledger/service"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	service *service.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(s *service.LedgerService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// CreateTransfer godoc
// @Summary      Transfer money between accounts
// @Description  Atomically moves the specified amount from one account to another. Either both balances change or neither does.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transfer body model.TransferRequest true "Details of the transfer"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  common.AppError "Bad Request (e.g., insufficient funds, self-transfer, invalid amount)"
// @Failure      404  {object}  common.AppError "Sender or receiver account not found"
// @Failure      500  {object}  common.AppError "Internal server error while processing transfer"
// @Router       /api/transfers [post]
func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	err := h.service.Transfer(req.FromAccountID, req.ToAccountID, req.Amount)
	if err != nil {
		// Map specific business logic errors to appropriate HTTP status codes.
		switch err {
		case ledger.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case ledger.ErrInsufficientFunds, ledger.ErrSameAccountTransfer, ledger.ErrInvalidAmount:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process transfer", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"from_account_id": req.FromAccountID,
		"to_account_id":   req.ToAccountID,
		"amount":          req.Amount,
	})
	return nil
}

// ListTransactionsForAccount godoc
// @Summary      List account transaction history
// @Description  Retrieves the full transaction history of an account in chronological order.
// @Tags         transactions
// @Produce      json
// @Param        accountId path int true "The ID of the account to retrieve transactions for"
// @Success      200  {array}   model.Transaction "The account's transactions"
// @Failure      400  {object}  common.AppError "Invalid account ID in URL path"
// @Failure      404  {object}  common.AppError "Account with the specified ID not found"
// @Failure      500  {object}  common.AppError "Internal server error while retrieving transactions"
// @Router       /api/accounts/{accountId}/transactions [get]
func (h *TransactionHandler) ListTransactionsForAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := accountIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	transactions, err := h.service.History(id)
	if err != nil {
		switch err {
		case ledger.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transactions", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(transactions)
	return nil
}
