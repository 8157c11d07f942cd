package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deposit is a credit event: an amount paid into an account.
// The amount is strictly positive; a signed credit would be an undocumented
// purchase, and debits have their own record type.
type Deposit struct {
	DepositID string          `json:"depositID"` // Primary Key (UUID)
	UserID    string          `json:"userID"`    // FK -> users.user_id
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"` // server-assigned
}
