// file: model/request.go

package model

// CreateAccountRequest defines the payload for opening a new account.
// It includes validation tags to ensure data integrity at the entry point.
// InitialBalance is deliberately unconstrained: a negative value is accepted
// and clamped to zero by the ledger, matching the opening-balance rules.
type CreateAccountRequest struct {
	Owner          string  `json:"owner" validate:"required,min=1,max=100"`
	Kind           string  `json:"kind" validate:"required,oneof=CHECKING SAVINGS"`
	InitialBalance float64 `json:"initial_balance"`
}

// AmountRequest defines the payload for deposits and withdrawals.
type AmountRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// TransferRequest defines the payload for a money transfer between two
// accounts. Using a dedicated struct instead of an inline anonymous struct
// in the handler improves code clarity, reusability, and compatibility with
// tooling like swag.
type TransferRequest struct {
	FromAccountID int64   `json:"from_account_id" validate:"required"`
	ToAccountID   int64   `json:"to_account_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

// InterestAndFeesRequest defines the payload for the batch interest/fee run.
// Zero values fall back to the configured defaults.
type InterestAndFeesRequest struct {
	SavingsRate float64 `json:"savings_rate" validate:"omitempty,gt=0"`
	MonthlyFee  float64 `json:"monthly_fee" validate:"omitempty,gt=0"`
}
