package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/davipay/wallet/pkg/domain"
	repo "github.com/davipay/wallet/pkg/repository"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository bound to the given session.
func New(db *gorm.DB) repo.AccountRepository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *repository) GetByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "celular = ?", phone).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *repository) Create(ctx context.Context, a *domain.Account) error {
	m := mapDomainToModel(a)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicatePhone
		}
		return err
	}
	return nil
}

func (r *repository) ApplyDelta(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	tx := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("saldo", gorm.Expr("saldo + ?", delta))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrAccountNotFound
	}
	return err
}

func mapModelToDomain(m *Account) *domain.Account {
	a := &domain.Account{
		ID:        m.ID,
		Phone:     m.Phone,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Name != nil {
		a.Name = *m.Name
	}
	return a
}

func mapDomainToModel(a *domain.Account) Account {
	m := Account{
		ID:        a.ID,
		Phone:     a.Phone,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Name != "" {
		m.Name = &a.Name
	}
	return m
}
