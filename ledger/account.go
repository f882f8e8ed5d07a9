// file: ledger/account.go

// Package ledger implements the in-memory banking core: accounts holding a
// balance and an append-only transaction history, and the registry that
// creates them and moves money between them.
//
// Concurrency discipline: every account owns one mutex, held for the whole
// read-modify-write-plus-append of a mutating operation, so a balance change
// and the history entry recording it are always visible together. Multi-account
// operations (transfers) acquire account locks in ascending id order; see
// Ledger.Transfer.
package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"go-bank-ledger/model"
)

// Account is a live ledger account. Identity fields (id, owner, kind) are
// immutable after creation; balance and history only change under mu.
// Accounts are created through Ledger.CreateAccount and are never removed.
type Account struct {
	id        int64
	owner     string
	kind      model.AccountKind
	createdAt time.Time

	mu      sync.Mutex
	balance decimal.Decimal
	history []model.Transaction
}

// newAccount builds an account with its opening balance. A negative opening
// balance is clamped to zero. The opening balance is recorded as the first
// history entry.
func newAccount(id int64, owner string, kind model.AccountKind, initial decimal.Decimal) *Account {
	if initial.Sign() < 0 {
		initial = decimal.Zero
	}
	a := &Account{
		id:        id,
		owner:     owner,
		kind:      kind,
		createdAt: time.Now(),
		balance:   initial,
	}
	a.record(model.TxDeposit, initial)
	return a
}

func (a *Account) ID() int64               { return a.id }
func (a *Account) Owner() string           { return a.owner }
func (a *Account) Kind() model.AccountKind { return a.kind }

// Balance returns the current balance. Taking the lock guarantees the value
// reflects a fully applied operation, never a mid-update intermediate.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns a copy of the transaction history in chronological order.
// The copy is safe to hold while other goroutines keep appending.
func (a *Account) History() []model.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// Snapshot returns the account as a plain value for callers outside the
// ledger.
func (a *Account) Snapshot() model.Account {
	a.mu.Lock()
	defer a.mu.Unlock()
	return model.Account{
		ID:        a.id,
		Owner:     a.owner,
		Kind:      a.kind,
		Balance:   a.balance,
		CreatedAt: a.createdAt,
	}
}

// Deposit credits the account. The amount must be strictly positive.
func (a *Account) Deposit(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deposit(amount)
}

// Withdraw debits the account. The amount must be strictly positive and must
// not exceed the balance; on failure the balance and history are untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdraw(amount)
}

// ApplyInterest credits balance*rate to a savings account and records an
// INTEREST entry. On any other account kind it is a no-op, not an error.
func (a *Account) ApplyInterest(rate decimal.Decimal) error {
	if a.kind != model.KindSavings {
		return nil
	}
	if rate.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	interest := a.balance.Mul(rate)
	a.balance = a.balance.Add(interest)
	a.record(model.TxInterest, interest)
	return nil
}

// ApplyMonthlyFee debits a fixed fee from a checking account and records a
// FEE entry. On any other account kind it is a no-op, not an error.
func (a *Account) ApplyMonthlyFee(fee decimal.Decimal) error {
	if a.kind != model.KindChecking {
		return nil
	}
	if fee.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if fee.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(fee)
	a.record(model.TxFee, fee.Neg())
	return nil
}

// deposit must be called with a.mu held.
func (a *Account) deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.record(model.TxDeposit, amount)
	return nil
}

// withdraw must be called with a.mu held. All checks run before any
// mutation, so a failed withdrawal has zero side effects.
func (a *Account) withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	a.record(model.TxWithdrawal, amount.Neg())
	return nil
}

// record must be called with a.mu held (or before the account is published).
// Taking the timestamp inside the critical section keeps history timestamps
// non-decreasing per account.
func (a *Account) record(kind model.TransactionKind, amount decimal.Decimal) {
	a.history = append(a.history, model.Transaction{
		Kind:             kind,
		Amount:           amount,
		ResultingBalance: a.balance,
		CreatedAt:        time.Now(),
	})
}
