// Package repository wires the GORM-backed stores behind the persistence
// contracts in pkg/repository.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/davipay/wallet/infra/repository/account"
	"github.com/davipay/wallet/infra/repository/transfer"
	"github.com/davipay/wallet/pkg/repository"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do share the transaction's
// session, so a balance check, the following balance write and the ledger
// append cannot be split across sessions.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction. If fn returns an error the
// transaction is rolled back in full, including any row locks taken with
// GetForUpdate.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// AccountRepository returns the account store bound to the current session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return account.New(u.session()), nil
}

// TransferRepository returns the ledger store bound to the current session.
func (u *UoW) TransferRepository() (repository.TransferRepository, error) {
	return transfer.New(u.session()), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
