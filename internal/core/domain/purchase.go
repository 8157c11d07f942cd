package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a debit event: one or more units bought against an account.
// Purchases are immutable once created; they are only ever inserted and deleted.
type Purchase struct {
	PurchaseID string          `json:"purchaseID"` // Primary Key (UUID)
	UserID     string          `json:"userID"`     // FK -> users.user_id
	Label      string          `json:"label"`
	Quantity   int64           `json:"quantity"`  // defaults to 1 when the client omits it
	UnitPrice  decimal.Decimal `json:"unitPrice"` // non-negative
	CreatedAt  time.Time       `json:"createdAt"` // server-assigned
}

// Total is the debit magnitude this purchase contributes to the balance.
func (p Purchase) Total() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity))
}
