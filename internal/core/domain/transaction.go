package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags an entry in the unified transaction history.
type TransactionKind string

const (
	TransactionPurchase TransactionKind = "PURCHASE"
	TransactionDeposit  TransactionKind = "DEPOSIT"
)

// Transaction is the derived, per-request view that merges purchases and
// deposits into one history. It is never persisted. Amount is always the
// event's magnitude: the deposit amount, or quantity times unit price for a
// purchase; Kind carries the sign.
type Transaction struct {
	Kind          TransactionKind `json:"kind"`
	TransactionID string          `json:"transactionID"` // id of the source record
	Label         string          `json:"label"`
	Amount        decimal.Decimal `json:"amount"`

	// Original purchase fields, nil for deposits.
	Quantity  *int64           `json:"quantity,omitempty"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewPurchaseTransaction projects a purchase into the history shape.
func NewPurchaseTransaction(p Purchase) Transaction {
	qty := p.Quantity
	price := p.UnitPrice
	return Transaction{
		Kind:          TransactionPurchase,
		TransactionID: p.PurchaseID,
		Label:         p.Label,
		Amount:        p.Total(),
		Quantity:      &qty,
		UnitPrice:     &price,
		CreatedAt:     p.CreatedAt,
	}
}

// NewDepositTransaction projects a deposit into the history shape.
func NewDepositTransaction(d Deposit) Transaction {
	return Transaction{
		Kind:          TransactionDeposit,
		TransactionID: d.DepositID,
		Label:         d.Label,
		Amount:        d.Amount,
		CreatedAt:     d.CreatedAt,
	}
}
