package transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	accountmodel "github.com/davipay/wallet/infra/repository/account"
)

// Transfer is one persisted ledger entry ("transferencias"). Rows are
// inserted once and never updated or deleted. destino_id is null exactly when
// the attempt failed with DESTINO_NO_EXISTE.
type Transfer struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	SourceID      uuid.UUID        `gorm:"column:origen_id;type:uuid;not null;index"`
	DestinationID *uuid.UUID       `gorm:"column:destino_id;type:uuid;index"`
	Amount        decimal.Decimal  `gorm:"column:monto;type:decimal(12,2);not null"`
	Status        string           `gorm:"column:estado;type:varchar(16);not null;default:'EXITOSA'"`
	FailureReason *string          `gorm:"column:motivo_falla;type:varchar(64)"`
	CreatedAt     time.Time        `gorm:"index"`

	Source      *accountmodel.Account `gorm:"foreignKey:SourceID"`
	Destination *accountmodel.Account `gorm:"foreignKey:DestinationID"`
}

// TableName specifies the table name for the Transfer model.
func (Transfer) TableName() string {
	return "transferencias"
}
