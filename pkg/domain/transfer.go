package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferStatus is the outcome recorded for a transfer attempt.
type TransferStatus string

const (
	// TransferSucceeded marks a committed transfer that moved funds.
	TransferSucceeded TransferStatus = "EXITOSA"
	// TransferFailed marks a transfer rejected by a business rule.
	TransferFailed TransferStatus = "FALLIDA"
)

// FailureReason is the closed set of business-rule failures recorded on the
// ledger. Input-shape failures and infrastructure errors are never recorded.
type FailureReason string

const (
	ReasonDestinationNotFound FailureReason = "DESTINO_NO_EXISTE"
	ReasonSelfTransfer        FailureReason = "TRANSFERENCIA_A_SI_MISMO"
	ReasonInsufficientFunds   FailureReason = "SALDO_INSUFICIENTE"
)

// Direction labels a transfer relative to the account viewing it.
type Direction string

const (
	DirectionSent     Direction = "ENVIADA"
	DirectionReceived Direction = "RECIBIDA"
)

// Transfer is one immutable ledger entry. Every transfer attempt that passes
// input validation produces exactly one Transfer, successful or not.
// DestinationID is nil exactly when the failure reason is
// ReasonDestinationNotFound.
type Transfer struct {
	ID            uuid.UUID
	SourceID      uuid.UUID
	DestinationID *uuid.UUID
	Amount        decimal.Decimal
	Status        TransferStatus
	FailureReason *FailureReason
	CreatedAt     time.Time
}

// NewTransfer builds a succeeded ledger entry linking source and destination.
func NewTransfer(sourceID, destinationID uuid.UUID, amount decimal.Decimal) *Transfer {
	return &Transfer{
		ID:            uuid.New(),
		SourceID:      sourceID,
		DestinationID: &destinationID,
		Amount:        amount,
		Status:        TransferSucceeded,
		CreatedAt:     time.Now(),
	}
}

// NewFailedTransfer builds a failed ledger entry. destinationID may be nil
// when the destination never resolved.
func NewFailedTransfer(
	sourceID uuid.UUID,
	destinationID *uuid.UUID,
	amount decimal.Decimal,
	reason FailureReason,
) *Transfer {
	return &Transfer{
		ID:            uuid.New(),
		SourceID:      sourceID,
		DestinationID: destinationID,
		Amount:        amount,
		Status:        TransferFailed,
		FailureReason: &reason,
		CreatedAt:     time.Now(),
	}
}

// DirectionFor labels the transfer as sent or received from the point of view
// of accountID. The label is derived at read time and never persisted.
func (t *Transfer) DirectionFor(accountID uuid.UUID) Direction {
	if t.SourceID == accountID {
		return DirectionSent
	}
	return DirectionReceived
}

// ValidateAmount checks the input shape of a transfer amount: strictly
// positive with at most two fractional digits, matching the DECIMAL(12,2)
// storage precision.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(2)) {
		return ErrInvalidAmount
	}
	return nil
}
