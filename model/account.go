package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind distinguishes the two supported account behaviors: checking
// accounts pay a monthly fee, savings accounts earn interest.
type AccountKind string

const (
	KindChecking AccountKind = "CHECKING"
	KindSavings  AccountKind = "SAVINGS"
)

// ParseAccountKind maps a kind string to its AccountKind. The boolean is
// false for anything other than the two known kinds.
func ParseAccountKind(s string) (AccountKind, bool) {
	switch AccountKind(s) {
	case KindChecking:
		return KindChecking, true
	case KindSavings:
		return KindSavings, true
	}
	return "", false
}

// Account is a point-in-time snapshot of an account as handed to callers.
// It is a plain value: mutating it never affects live ledger state.
type Account struct {
	ID        int64           `json:"id"`
	Owner     string          `json:"owner"`
	Kind      AccountKind     `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
