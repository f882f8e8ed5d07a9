// file: ledger/errors.go

package ledger

import "errors"

// Domain errors returned by ledger operations. All of them are recoverable:
// an operation that fails with one of these leaves the ledger exactly as it
// was before the call. Callers match them with errors.Is and map them to
// user-facing messages or HTTP status codes.
var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidOwner        = errors.New("owner name must not be empty")
	ErrSameAccountTransfer = errors.New("cannot transfer money to the same account")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientFunds   = errors.New("insufficient funds")
)
