// Package transfer implements the transfer engine: it validates a transfer
// request, applies the business rules in a fixed order and commits the
// outcome as one atomic unit.
package transfer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davipay/wallet/pkg/domain"
	"github.com/davipay/wallet/pkg/repository"
)

// Service orchestrates transfers between accounts. It is the only writer of
// account balances.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a transfer Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Transfer moves amount from the source account to the account holding
// destPhone and returns the post-transfer source balance.
//
// The checks run in a fixed order; the first failing check wins:
//
//  1. amount shape (positive, two decimal places) — rejected before any store
//     access, nothing recorded
//  2. destination resolution — FALLIDA/DESTINO_NO_EXISTE with nil destination
//  3. self transfer — FALLIDA/TRANSFERENCIA_A_SI_MISMO
//  4. funds — FALLIDA/SALDO_INSUFICIENTE
//  5. commit: debit, credit and EXITOSA ledger entry in one transaction
//
// The destination is resolved before the self-transfer comparison, so the
// comparison always runs against an existing row.
//
// sourceID must come from the verified credential, never from request input.
func (s *Service) Transfer(
	ctx context.Context,
	sourceID uuid.UUID,
	destPhone string,
	amount decimal.Decimal,
) (newBalance decimal.Decimal, err error) {
	logger := s.logger.With("sourceID", sourceID, "amount", amount)

	if err = domain.ValidateAmount(amount); err != nil {
		logger.Warn("transfer rejected", "reason", "invalid_amount")
		return decimal.Zero, err
	}

	var destinationID *uuid.UUID
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}

		dest, err := accounts.GetByPhone(ctx, destPhone)
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrDestinationNotFound
		}
		if err != nil {
			return err
		}
		destinationID = &dest.ID

		if dest.ID == sourceID {
			return domain.ErrSelfTransfer
		}

		// Both rows are locked before the funds check, in id order so two
		// opposing transfers cannot deadlock. The check below therefore runs
		// against a balance no concurrent transfer can move until commit.
		src, err := s.lockPair(ctx, accounts, sourceID, dest.ID)
		if err != nil {
			return err
		}

		if src.Balance.LessThan(amount) {
			return domain.ErrInsufficientFunds
		}

		if err = accounts.ApplyDelta(ctx, sourceID, amount.Neg()); err != nil {
			return err
		}
		if err = accounts.ApplyDelta(ctx, dest.ID, amount); err != nil {
			return err
		}
		if err = transfers.Create(ctx, domain.NewTransfer(sourceID, dest.ID, amount)); err != nil {
			return err
		}

		newBalance = src.Balance.Sub(amount)
		return nil
	})

	switch {
	case err == nil:
		logger.Info("transfer succeeded", "destinationID", *destinationID, "newBalance", newBalance)
		return newBalance, nil
	case errors.Is(err, domain.ErrDestinationNotFound):
		return decimal.Zero, s.reject(ctx, logger, sourceID, nil, amount, domain.ReasonDestinationNotFound, err)
	case errors.Is(err, domain.ErrSelfTransfer):
		return decimal.Zero, s.reject(ctx, logger, sourceID, destinationID, amount, domain.ReasonSelfTransfer, err)
	case errors.Is(err, domain.ErrInsufficientFunds):
		return decimal.Zero, s.reject(ctx, logger, sourceID, destinationID, amount, domain.ReasonInsufficientFunds, err)
	default:
		logger.Error("transfer failed", "error", err)
		return decimal.Zero, err
	}
}

// lockPair takes FOR UPDATE locks on both accounts in a deterministic order
// and returns the locked source row.
func (s *Service) lockPair(
	ctx context.Context,
	accounts repository.AccountRepository,
	sourceID, destID uuid.UUID,
) (*domain.Account, error) {
	first, second := sourceID, destID
	if bytes.Compare(destID[:], sourceID[:]) < 0 {
		first, second = destID, sourceID
	}

	var src *domain.Account
	for _, id := range []uuid.UUID{first, second} {
		locked, err := accounts.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		if locked.ID == sourceID {
			src = locked
		}
	}
	return src, nil
}

// reject appends the FALLIDA ledger entry for a business-rule failure and
// reports the original error. The entry is committed in its own transaction;
// the aborted transfer transaction never carried it. If the entry itself
// cannot be committed the failure is infrastructure, not business, and is
// reported as such.
func (s *Service) reject(
	ctx context.Context,
	logger *slog.Logger,
	sourceID uuid.UUID,
	destinationID *uuid.UUID,
	amount decimal.Decimal,
	reason domain.FailureReason,
	cause error,
) error {
	recErr := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		return transfers.Create(ctx, domain.NewFailedTransfer(sourceID, destinationID, amount, reason))
	})
	if recErr != nil {
		logger.Error("could not record rejected transfer", "reason", reason, "error", recErr)
		return fmt.Errorf("recording rejected transfer: %w", recErr)
	}

	logger.Warn("transfer rejected", "reason", reason)
	return cause
}
