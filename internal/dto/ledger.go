package dto

import (
	"time"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the payload for recording a purchase.
// Quantity is a pointer so an omitted value can default to 1 server-side.
type CreatePurchaseRequest struct {
	Label     string          `json:"label" binding:"required,max=200"`
	Quantity  *int64          `json:"quantity" binding:"omitempty,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"dgte0"`
}

// CreateDepositRequest defines the payload for recording a deposit.
type CreateDepositRequest struct {
	Label  string          `json:"label" binding:"required,max=200"`
	Amount decimal.Decimal `json:"amount" binding:"dgt0"`
}

// PurchaseResponse is the public shape of a recorded purchase.
type PurchaseResponse struct {
	PurchaseID string          `json:"purchaseID"`
	UserID     string          `json:"userID"`
	Label      string          `json:"label"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToPurchaseResponse converts a domain.Purchase to its response DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID: p.PurchaseID,
		UserID:     p.UserID,
		Label:      p.Label,
		Quantity:   p.Quantity,
		UnitPrice:  p.UnitPrice,
		CreatedAt:  p.CreatedAt,
	}
}

// DepositResponse is the public shape of a recorded deposit.
type DepositResponse struct {
	DepositID string          `json:"depositID"`
	UserID    string          `json:"userID"`
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToDepositResponse converts a domain.Deposit to its response DTO.
func ToDepositResponse(d *domain.Deposit) DepositResponse {
	return DepositResponse{
		DepositID: d.DepositID,
		UserID:    d.UserID,
		Label:     d.Label,
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
	}
}

// BalanceResponse carries a computed account balance.
type BalanceResponse struct {
	UserID  string          `json:"userID"`
	Balance decimal.Decimal `json:"balance"`
}

// TransactionResponse is one entry of the unified transaction history.
type TransactionResponse struct {
	Kind          domain.TransactionKind `json:"kind"`
	TransactionID string                 `json:"transactionID"`
	Label         string                 `json:"label"`
	Amount        decimal.Decimal        `json:"amount"`
	Quantity      *int64                 `json:"quantity,omitempty"`
	UnitPrice     *decimal.Decimal       `json:"unitPrice,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// TransactionHistoryResponse wraps the history. Message is set only for the
// distinct "no transactions yet" state, in which case Transactions is empty.
type TransactionHistoryResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Message      string                `json:"message,omitempty"`
}

// ToTransactionHistoryResponse converts a sequence of domain transactions.
func ToTransactionHistoryResponse(txns []domain.Transaction) TransactionHistoryResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = TransactionResponse{
			Kind:          t.Kind,
			TransactionID: t.TransactionID,
			Label:         t.Label,
			Amount:        t.Amount,
			Quantity:      t.Quantity,
			UnitPrice:     t.UnitPrice,
			CreatedAt:     t.CreatedAt,
		}
	}
	return TransactionHistoryResponse{Transactions: out}
}
