// Package wallet is the read-only query facade over the account store and
// the transfer ledger. It never writes.
package wallet

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davipay/wallet/pkg/domain"
	"github.com/davipay/wallet/pkg/repository"
)

// DefaultPageSize is used when the caller does not specify a history page size.
const DefaultPageSize = 10

// Service answers balance and history queries for the authenticated account.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a wallet query Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// HistoryItem is one ledger entry seen from the querying account's side.
// Direction is derived from the stored record at read time.
type HistoryItem struct {
	ID               uuid.UUID
	Date             time.Time
	Amount           decimal.Decimal
	SourcePhone      *string
	DestinationPhone *string
	Status           domain.TransferStatus
	FailureReason    *domain.FailureReason
	Direction        domain.Direction
}

// History is one page of transfer history plus the total count.
type History struct {
	Page  int
	Total int64
	Items []HistoryItem
}

// GetBalance returns the current balance of the account.
func (s *Service) GetBalance(ctx context.Context, accountID uuid.UUID) (balance decimal.Decimal, err error) {
	logger := s.logger.With("userID", accountID)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err := accounts.Get(ctx, accountID)
		if err != nil {
			return err
		}
		balance = a.Balance
		return nil
	})
	if err != nil {
		logger.Warn("check_balance failed", "error", err)
		return decimal.Zero, err
	}
	logger.Info("check_balance", "status", "success")
	return balance, nil
}

// GetHistory returns one page of the account's transfer history, newest
// first, each entry labeled ENVIADA or RECIBIDA relative to the account.
// page and limit fall back to 1 and DefaultPageSize when not positive.
func (s *Service) GetHistory(ctx context.Context, accountID uuid.UUID, page, limit int) (h *History, err error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	logger := s.logger.With("userID", accountID, "page", page, "limit", limit)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		rows, total, err := transfers.ListByAccount(ctx, accountID, page, limit)
		if err != nil {
			return err
		}

		items := make([]HistoryItem, 0, len(rows))
		for _, row := range rows {
			items = append(items, HistoryItem{
				ID:               row.ID,
				Date:             row.CreatedAt,
				Amount:           row.Amount,
				SourcePhone:      row.SourcePhone,
				DestinationPhone: row.DestinationPhone,
				Status:           row.Status,
				FailureReason:    row.FailureReason,
				Direction:        row.DirectionFor(accountID),
			})
		}
		h = &History{Page: page, Total: total, Items: items}
		return nil
	})
	if err != nil {
		logger.Error("view_transfer_history failed", "error", err)
		return nil, err
	}
	logger.Info("view_transfer_history", "status", "success")
	return h, nil
}
