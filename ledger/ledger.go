// file: ledger/ledger.go

package ledger

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"go-bank-ledger/model"
)

// Ledger is the registry owning every account. The registry lock (mu) only
// guards the collection itself and is never held while waiting on an
// account's lock, so account operations cannot stall creation or listing.
type Ledger struct {
	nextID int64

	mu    sync.RWMutex
	byID  map[int64]*Account
	order []*Account
}

// BatchFailure reports one account that could not be updated during a batch
// run.
type BatchFailure struct {
	AccountID int64 `json:"account_id"`
	Err       error `json:"-"`
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{byID: make(map[int64]*Account)}
}

// CreateAccount allocates the next id, builds the account (clamping a
// negative opening balance to zero) and registers it. The only failure is an
// empty owner name.
func (l *Ledger) CreateAccount(owner string, kind model.AccountKind, initial decimal.Decimal) (*Account, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrInvalidOwner
	}
	a := newAccount(atomic.AddInt64(&l.nextID, 1), owner, kind, initial)
	l.mu.Lock()
	l.byID[a.id] = a
	l.order = append(l.order, a)
	l.mu.Unlock()
	return a, nil
}

// Account looks up an account by id.
func (l *Ledger) Account(id int64) (*Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.byID[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// Accounts returns all accounts in creation order.
func (l *Ledger) Accounts() []*Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Account, len(l.order))
	copy(out, l.order)
	return out
}

// Transfer moves amount from one account to the other, all or nothing.
//
// Both account locks are held for the entire move, and they are always
// acquired in ascending id order regardless of transfer direction. That fixed
// total order is the sole deadlock-avoidance mechanism: two concurrent
// transfers between the same pair can never each hold one lock while waiting
// for the other. Because the withdrawal validates before mutating anything,
// a failed transfer leaves both accounts exactly as they were.
//
// A successful transfer writes four history entries: the generic
// WITHDRAWAL/DEPOSIT pair plus a TRANSFER_OUT/TRANSFER_IN marker on each
// side, the audit redundancy the ledger has always produced.
func (l *Ledger) Transfer(fromID, toID int64, amount decimal.Decimal) error {
	if fromID == toID {
		return ErrSameAccountTransfer
	}
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	from, err := l.Account(fromID)
	if err != nil {
		return err
	}
	to, err := l.Account(toID)
	if err != nil {
		return err
	}

	first, second := from, to
	if second.id < first.id {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if err := from.withdraw(amount); err != nil {
		return err
	}
	// Cannot fail: amount was already validated by the withdrawal.
	if err := to.deposit(amount); err != nil {
		return err
	}
	from.record(model.TxTransferOut, amount.Neg())
	to.record(model.TxTransferIn, amount)
	return nil
}

// ApplyInterestAndFees sweeps every account in creation order, crediting
// interest to savings accounts and debiting the monthly fee from checking
// accounts. A failure on one account (for example a fee exceeding the
// balance) is captured and the sweep continues; the batch as a whole is not
// atomic, only each account's own update is.
func (l *Ledger) ApplyInterestAndFees(savingsRate, monthlyFee decimal.Decimal) []BatchFailure {
	var failures []BatchFailure
	for _, a := range l.Accounts() {
		var err error
		switch a.Kind() {
		case model.KindSavings:
			err = a.ApplyInterest(savingsRate)
		case model.KindChecking:
			err = a.ApplyMonthlyFee(monthlyFee)
		}
		if err != nil {
			failures = append(failures, BatchFailure{AccountID: a.ID(), Err: err})
		}
	}
	return failures
}
