// service/ledger_service_test.go
package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bank-ledger/ledger"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newService() *LedgerService {
	return NewLedgerService(ledger.New())
}

func TestLedgerService_CreateAccount(t *testing.T) {
	svc := newService()

	t.Run("success", func(t *testing.T) {
		account, err := svc.CreateAccount("Alice", "CHECKING", 100)
		require.NoError(t, err)
		assert.Equal(t, "Alice", account.Owner)
		assert.Equal(t, model.KindChecking, account.Kind)
		assert.Equal(t, "100", account.Balance.String())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := svc.CreateAccount("Bob", "OFFSHORE", 100)
		assert.ErrorIs(t, err, ErrUnknownAccountKind)
	})

	t.Run("empty owner", func(t *testing.T) {
		_, err := svc.CreateAccount("", "CHECKING", 100)
		assert.ErrorIs(t, err, ledger.ErrInvalidOwner)
	})
}

func TestLedgerService_DepositAndWithdraw(t *testing.T) {
	svc := newService()
	account, err := svc.CreateAccount("Alice", "CHECKING", 100)
	require.NoError(t, err)

	t.Run("deposit returns updated snapshot", func(t *testing.T) {
		updated, err := svc.Deposit(account.ID, 50)
		require.NoError(t, err)
		assert.Equal(t, "150", updated.Balance.String())
	})

	t.Run("withdraw returns updated snapshot", func(t *testing.T) {
		updated, err := svc.Withdraw(account.ID, 30)
		require.NoError(t, err)
		assert.Equal(t, "120", updated.Balance.String())
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.Deposit(999, 50)
		assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		_, err := svc.Withdraw(account.ID, 100000)
		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	})
}

func TestLedgerService_Transfer(t *testing.T) {
	svc := newService()
	a, err := svc.CreateAccount("Alice", "CHECKING", 100)
	require.NoError(t, err)
	b, err := svc.CreateAccount("Bob", "SAVINGS", 0)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		require.NoError(t, svc.Transfer(a.ID, b.ID, 100))

		balA, err := svc.Balance(a.ID)
		require.NoError(t, err)
		balB, err := svc.Balance(b.ID)
		require.NoError(t, err)
		assert.Equal(t, "0", balA.String())
		assert.Equal(t, "100", balB.String())
	})

	t.Run("drained account cannot send more", func(t *testing.T) {
		err := svc.Transfer(a.ID, b.ID, 1)
		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	})

	t.Run("history carries the transfer markers", func(t *testing.T) {
		history, err := svc.History(a.ID)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, model.TxWithdrawal, history[1].Kind)
		assert.Equal(t, model.TxTransferOut, history[2].Kind)
	})
}

func TestLedgerService_ApplyInterestAndFees(t *testing.T) {
	svc := newService()
	saver, err := svc.CreateAccount("Saver", "SAVINGS", 1000)
	require.NoError(t, err)
	_, err = svc.CreateAccount("Checker", "CHECKING", 100)
	require.NoError(t, err)
	broke, err := svc.CreateAccount("Broke", "CHECKING", 1)
	require.NoError(t, err)

	t.Run("rejects non-positive parameters", func(t *testing.T) {
		_, err := svc.ApplyInterestAndFees(0, 5)
		assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
		_, err = svc.ApplyInterestAndFees(0.05, -1)
		assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	})

	t.Run("sweep reports per-account failures", func(t *testing.T) {
		report, err := svc.ApplyInterestAndFees(0.05, 5)
		require.NoError(t, err)

		assert.Equal(t, 2, report.Applied)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, broke.ID, report.Failures[0].AccountID)

		balance, err := svc.Balance(saver.ID)
		require.NoError(t, err)
		assert.Equal(t, "1050", balance.String())
	})
}
