package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account holds a user's custodial balance. The phone number is the natural
// external key; the UUID is the surrogate identifier everything else
// references.
//
// Invariants:
//   - Balance is never negative at any observable rest state.
//   - Balance changes only through a committed transfer.
type Account struct {
	ID        uuid.UUID
	Phone     string
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates an account for the given phone number with the
// starting balance. Accounts are provisioned on first login and never deleted.
func NewAccount(phone string, startingBalance decimal.Decimal) *Account {
	now := time.Now()
	return &Account{
		ID:        uuid.New(),
		Phone:     phone,
		Balance:   startingBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
