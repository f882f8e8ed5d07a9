package service

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"go-bank-ledger/ledger"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
)

var ErrUnknownAccountKind = errors.New("unknown account kind")

// LedgerService is the business layer over the in-memory ledger. It converts
// transport-level values (kind strings, float amounts) into domain values,
// logs every operation with structured fields, and hands plain snapshots back
// to callers so no live ledger state escapes.
type LedgerService struct {
	ledger *ledger.Ledger
}

func NewLedgerService(l *ledger.Ledger) *LedgerService {
	return &LedgerService{ledger: l}
}

// BatchReport summarizes one interest-and-fees sweep.
type BatchReport struct {
	Applied  int                  `json:"applied"`
	Failures []BatchFailureReport `json:"failures"`
}

// BatchFailureReport is the caller-facing form of a per-account batch failure.
type BatchFailureReport struct {
	AccountID int64  `json:"account_id"`
	Reason    string `json:"reason"`
}

// CreateAccount opens a new account and returns its snapshot.
func (s *LedgerService) CreateAccount(owner, kind string, initialBalance float64) (*model.Account, error) {
	k, ok := model.ParseAccountKind(kind)
	if !ok {
		return nil, ErrUnknownAccountKind
	}

	a, err := s.ledger.CreateAccount(owner, k, decimal.NewFromFloat(initialBalance))
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_id": a.ID(),
		"owner":      owner,
		"kind":       k,
	}).Info("Account created")

	snap := a.Snapshot()
	return &snap, nil
}

// GetAccount returns the snapshot of one account.
func (s *LedgerService) GetAccount(id int64) (*model.Account, error) {
	a, err := s.ledger.Account(id)
	if err != nil {
		return nil, err
	}
	snap := a.Snapshot()
	return &snap, nil
}

// ListAccounts returns snapshots of every account in creation order.
func (s *LedgerService) ListAccounts() []*model.Account {
	accounts := s.ledger.Accounts()
	out := make([]*model.Account, 0, len(accounts))
	for _, a := range accounts {
		snap := a.Snapshot()
		out = append(out, &snap)
	}
	return out
}

// Balance returns the current balance of one account.
func (s *LedgerService) Balance(id int64) (decimal.Decimal, error) {
	a, err := s.ledger.Account(id)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return a.Balance(), nil
}

// History returns a copy of one account's transaction history.
func (s *LedgerService) History(id int64) ([]model.Transaction, error) {
	a, err := s.ledger.Account(id)
	if err != nil {
		return nil, err
	}
	return a.History(), nil
}

// Deposit credits an account and returns the updated snapshot.
func (s *LedgerService) Deposit(id int64, amount float64) (*model.Account, error) {
	a, err := s.ledger.Account(id)
	if err != nil {
		return nil, err
	}
	if err := a.Deposit(decimal.NewFromFloat(amount)); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_id": id,
		"amount":     amount,
	}).Info("Deposit applied")

	snap := a.Snapshot()
	return &snap, nil
}

// Withdraw debits an account and returns the updated snapshot.
func (s *LedgerService) Withdraw(id int64, amount float64) (*model.Account, error) {
	a, err := s.ledger.Account(id)
	if err != nil {
		return nil, err
	}
	if err := a.Withdraw(decimal.NewFromFloat(amount)); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_id": id,
		"amount":     amount,
	}).Info("Withdrawal applied")

	snap := a.Snapshot()
	return &snap, nil
}

// Transfer moves amount between two accounts atomically.
func (s *LedgerService) Transfer(fromID, toID int64, amount float64) error {
	log := logger.Log.WithFields(logrus.Fields{
		"from_account_id": fromID,
		"to_account_id":   toID,
		"amount":          amount,
	})
	log.Info("Starting money transfer")

	if err := s.ledger.Transfer(fromID, toID, decimal.NewFromFloat(amount)); err != nil {
		log.WithError(err).Warn("Transfer rejected")
		return err
	}

	log.Info("Transfer completed successfully")
	return nil
}

// ApplyInterestAndFees runs the batch sweep over every account. Per-account
// failures are collected into the report instead of aborting the run; only a
// non-positive rate or fee rejects the batch as a whole.
func (s *LedgerService) ApplyInterestAndFees(savingsRate, monthlyFee float64) (*BatchReport, error) {
	if savingsRate <= 0 || monthlyFee <= 0 {
		return nil, ledger.ErrInvalidAmount
	}

	failures := s.ledger.ApplyInterestAndFees(
		decimal.NewFromFloat(savingsRate),
		decimal.NewFromFloat(monthlyFee),
	)

	report := &BatchReport{
		Applied:  len(s.ledger.Accounts()) - len(failures),
		Failures: make([]BatchFailureReport, 0, len(failures)),
	}
	for _, f := range failures {
		logger.Log.WithFields(logrus.Fields{
			"account_id": f.AccountID,
		}).WithError(f.Err).Warn("Could not apply interest/fee to account")
		report.Failures = append(report.Failures, BatchFailureReport{
			AccountID: f.AccountID,
			Reason:    f.Err.Error(),
		})
	}

	logger.Log.WithFields(logrus.Fields{
		"applied":  report.Applied,
		"failures": len(report.Failures),
	}).Info("Interest and fees sweep finished")

	return report, nil
}
