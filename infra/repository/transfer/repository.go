package transfer

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/davipay/wallet/pkg/domain"
	repo "github.com/davipay/wallet/pkg/repository"
)

type repository struct {
	db *gorm.DB
}

// New creates a transfer ledger repository bound to the given session.
func New(db *gorm.DB) repo.TransferRepository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *domain.Transfer) error {
	m := mapDomainToModel(t)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *repository) ListByAccount(
	ctx context.Context,
	accountID uuid.UUID,
	page, limit int,
) ([]*repo.TransferWithPhones, int64, error) {
	// Session makes the chain reusable for both the count and the page query.
	base := r.db.WithContext(ctx).
		Model(&Transfer{}).
		Where("origen_id = ? OR destino_id = ?", accountID, accountID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Transfer
	err := base.
		Preload("Source").
		Preload("Destination").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	result := make([]*repo.TransferWithPhones, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToRead(&rows[i]))
	}
	return result, total, nil
}

func mapDomainToModel(t *domain.Transfer) Transfer {
	m := Transfer{
		ID:            t.ID,
		SourceID:      t.SourceID,
		DestinationID: t.DestinationID,
		Amount:        t.Amount,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
	}
	if t.FailureReason != nil {
		reason := string(*t.FailureReason)
		m.FailureReason = &reason
	}
	return m
}

func mapModelToRead(m *Transfer) *repo.TransferWithPhones {
	read := &repo.TransferWithPhones{
		Transfer: domain.Transfer{
			ID:            m.ID,
			SourceID:      m.SourceID,
			DestinationID: m.DestinationID,
			Amount:        m.Amount,
			Status:        domain.TransferStatus(m.Status),
			CreatedAt:     m.CreatedAt,
		},
	}
	if m.FailureReason != nil {
		reason := domain.FailureReason(*m.FailureReason)
		read.FailureReason = &reason
	}
	if m.Source != nil {
		read.SourcePhone = &m.Source.Phone
	}
	if m.Destination != nil {
		read.DestinationPhone = &m.Destination.Phone
	}
	return read
}
