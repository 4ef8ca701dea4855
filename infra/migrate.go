package infra

import (
	"gorm.io/gorm"

	"github.com/davipay/wallet/infra/repository/account"
	"github.com/davipay/wallet/infra/repository/transfer"
)

// AutoMigrate syncs the account and ledger tables. The service syncs its
// models on boot; there is no separate migration corpus.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&account.Account{}, &transfer.Transfer{})
}
