package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags the event that produced a history entry.
type TransactionKind string

const (
	TxDeposit     TransactionKind = "DEPOSIT"
	TxWithdrawal  TransactionKind = "WITHDRAWAL"
	TxTransferIn  TransactionKind = "TRANSFER_IN"
	TxTransferOut TransactionKind = "TRANSFER_OUT"
	TxInterest    TransactionKind = "INTEREST"
	TxFee         TransactionKind = "FEE"
)

// Transaction is one immutable entry in an account's history. Amount is
// signed: positive for credits, negative for debits, matching the balance
// delta the entry caused. ResultingBalance is the account balance right
// after the entry was applied.
type Transaction struct {
	Kind             TransactionKind `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	ResultingBalance decimal.Decimal `json:"resulting_balance"`
	CreatedAt        time.Time       `json:"created_at"`
}
