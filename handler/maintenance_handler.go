package handler

import (
	"encoding/json"
	"net/http"

	"go-bank-ledger/common"
	"go-bank-ledger/config"
	"go-bank-ledger/ledger"
	"go-bank-ledger/model"
	"go-bank-ledger/service"
)

// MaintenanceHandler exposes the periodic bank-wide operations.
type MaintenanceHandler struct {
	service *service.LedgerService
}

func NewMaintenanceHandler(s *service.LedgerService) *MaintenanceHandler {
	return &MaintenanceHandler{service: s}
}

// RunInterestAndFees godoc
// @Summary      Apply interest and monthly fees to all accounts
// @Description  Credits interest to savings accounts and debits the monthly fee from checking accounts. Accounts that cannot pay the fee are reported and skipped.
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        parameters body model.InterestAndFeesRequest false "Rate and fee overrides; defaults come from configuration"
// @Success      200  {object}  service.BatchReport
// @Failure      400  {object}  common.AppError "Non-positive rate or fee"
// @Router       /api/maintenance/interest-and-fees [post]
func (h *MaintenanceHandler) RunInterestAndFees(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.InterestAndFeesRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	rate := req.SavingsRate
	if rate == 0 {
		rate = config.AppConfig.Bank.SavingsInterestRate
	}
	fee := req.MonthlyFee
	if fee == 0 {
		fee = config.AppConfig.Bank.CheckingMonthlyFee
	}

	report, err := h.service.ApplyInterestAndFees(rate, fee)
	if err != nil {
		switch err {
		case ledger.ErrInvalidAmount:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not apply interest and fees", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(report)
	return nil
}
