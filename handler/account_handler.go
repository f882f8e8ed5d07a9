package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-bank-ledger/common"
	"go-bank-ledger/ledger"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/service"

	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	service *service.LedgerService
}

func NewAccountHandler(service *service.LedgerService) *AccountHandler {
	return &AccountHandler{service: service}
}

// accountIDFromPath extracts the {accountId} path segment.
func accountIDFromPath(r *http.Request) (int64, *common.AppError) {
	id, err := strconv.ParseInt(r.PathValue("accountId"), 10, 64)
	if err != nil {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}
	return id, nil
}

// CreateAccount handles the request to open a new bank account.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateAccountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	log := logger.Log.WithFields(logrus.Fields{
		"owner": req.Owner,
		"kind":  req.Kind,
	})
	log.Info("Create account request received")

	account, err := h.service.CreateAccount(req.Owner, req.Kind, req.InitialBalance)
	if err != nil {
		switch err {
		case ledger.ErrInvalidOwner, service.ErrUnknownAccountKind:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not create account", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
	return nil
}

// ListAccounts returns every account in creation order.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	accounts := h.service.ListAccounts()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(accounts)
	return nil
}

// GetAccount returns a single account by id.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := accountIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	account, err := h.service.GetAccount(id)
	if err != nil {
		switch err {
		case ledger.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve account", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// GetBalance returns just the current balance of an account.
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := accountIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	balance, err := h.service.Balance(id)
	if err != nil {
		switch err {
		case ledger.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve balance", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"account_id": id,
		"balance":    balance,
	})
	return nil
}

// Deposit credits an account and returns the updated snapshot.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := accountIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	var req model.AmountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	account, err := h.service.Deposit(id, req.Amount)
	if err != nil {
		switch err {
		case ledger.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case ledger.ErrInvalidAmount:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process deposit", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// Withdraw debits an account and returns the updated snapshot.
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := accountIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	var req model.AmountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	account, err := h.service.Withdraw(id, req.Amount)
	if err != nil {
		switch err {
		case ledger.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case ledger.ErrInvalidAmount, ledger.ErrInsufficientFunds:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process withdrawal", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}
