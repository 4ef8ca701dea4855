package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is the persisted account row. Column names follow the original
// schema of the service ("usuarios", "celular", "saldo").
type Account struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Phone     string          `gorm:"column:celular;type:varchar(10);not null;uniqueIndex"`
	Name      *string         `gorm:"column:nombre"`
	Balance   decimal.Decimal `gorm:"column:saldo;type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "usuarios"
}
