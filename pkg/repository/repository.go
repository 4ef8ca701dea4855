// Package repository defines the persistence contracts for the wallet:
// the account store, the append-only transfer ledger, and the unit of work
// that binds them to one transaction boundary.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davipay/wallet/pkg/domain"
)

// AccountRepository is the durable account store.
type AccountRepository interface {
	// Get returns the account by surrogate id, or domain.ErrAccountNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetForUpdate is Get with a row lock (SELECT ... FOR UPDATE). Only valid
	// inside a UnitOfWork transaction; the lock is held until commit/rollback.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetByPhone resolves the external key, or domain.ErrAccountNotFound.
	GetByPhone(ctx context.Context, phone string) (*domain.Account, error)

	// Create inserts a new account. Returns domain.ErrDuplicatePhone when the
	// phone number is already registered.
	Create(ctx context.Context, a *domain.Account) error

	// ApplyDelta mutates the balance by delta (positive or negative) with a
	// single arithmetic UPDATE. Returns domain.ErrAccountNotFound when no row
	// matches. The store does not enforce non-negativity; that business rule
	// is evaluated by the transfer engine before the delta is requested.
	ApplyDelta(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}

// TransferRepository is the append-only ledger. No update or delete is exposed.
type TransferRepository interface {
	// Create appends one immutable ledger entry.
	Create(ctx context.Context, t *domain.Transfer) error

	// ListByAccount returns one page of entries involving accountID as source
	// or destination, newest first, plus the total count. page and limit are
	// 1-based; callers normalize defaults.
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, limit int) ([]*TransferWithPhones, int64, error)
}

// TransferWithPhones is a read model: a ledger entry joined with the phone
// numbers of both parties for display.
type TransferWithPhones struct {
	domain.Transfer
	SourcePhone      *string
	DestinationPhone *string
}

// UnitOfWork runs repository operations inside one transaction boundary.
//
// Do executes fn within a transaction; if fn returns an error the transaction
// is rolled back in full. Repositories obtained from the UnitOfWork passed to
// fn share that transaction's session, so a balance read, the following
// balance write and the ledger append are one atomic unit.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AccountRepository() (AccountRepository, error)
	TransferRepository() (TransferRepository, error)
}
