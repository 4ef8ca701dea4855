package wallet_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davipay/wallet/internal/fixtures/mocks"
	"github.com/davipay/wallet/pkg/domain"
	"github.com/davipay/wallet/pkg/repository"
	walletsvc "github.com/davipay/wallet/pkg/service/wallet"
)

// Helper to create a service with mocks
func newWalletServiceWithMocks(t interface {
	mock.TestingT
	Cleanup(func())
}) (*walletsvc.Service, *mocks.MockAccountRepository, *mocks.MockTransferRepository, *mocks.MockUnitOfWork) {
	accountRepo := mocks.NewMockAccountRepository(t)
	transferRepo := mocks.NewMockTransferRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().AccountRepository().Return(accountRepo, nil).Maybe()
	uow.EXPECT().TransferRepository().Return(transferRepo, nil).Maybe()
	svc := walletsvc.New(uow, slog.Default())
	return svc, accountRepo, transferRepo, uow
}

func expectDoPassthrough(uow *mocks.MockUnitOfWork) {
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	)
}

func TestGetBalance_Success(t *testing.T) {
	t.Parallel()
	svc, accountRepo, _, uow := newWalletServiceWithMocks(t)
	expectDoPassthrough(uow)

	account := domain.NewAccount("3001234567", decimal.RequireFromString("99749.50"))
	accountRepo.EXPECT().Get(mock.Anything, account.ID).Return(account, nil)

	balance, err := svc.GetBalance(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("99749.50")))
}

func TestGetBalance_NotFound(t *testing.T) {
	t.Parallel()
	svc, accountRepo, _, uow := newWalletServiceWithMocks(t)
	expectDoPassthrough(uow)

	accountRepo.EXPECT().Get(mock.Anything, mock.Anything).
		Return(nil, domain.ErrAccountNotFound)

	_, err := svc.GetBalance(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGetHistory_DirectionLabels(t *testing.T) {
	t.Parallel()
	svc, _, transferRepo, uow := newWalletServiceWithMocks(t)
	expectDoPassthrough(uow)

	me := uuid.New()
	other := uuid.New()
	myPhone, otherPhone := "3001111111", "3002222222"
	rows := []*repository.TransferWithPhones{
		{
			Transfer:         *domain.NewTransfer(me, other, decimal.NewFromInt(100)),
			SourcePhone:      &myPhone,
			DestinationPhone: &otherPhone,
		},
		{
			Transfer:         *domain.NewTransfer(other, me, decimal.NewFromInt(50)),
			SourcePhone:      &otherPhone,
			DestinationPhone: &myPhone,
		},
		{
			Transfer: *domain.NewFailedTransfer(me, nil, decimal.NewFromInt(25), domain.ReasonDestinationNotFound),
		},
	}
	transferRepo.EXPECT().ListByAccount(mock.Anything, me, 1, 10).Return(rows, int64(3), nil)

	h, err := svc.GetHistory(context.Background(), me, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Page)
	assert.Equal(t, int64(3), h.Total)
	require.Len(t, h.Items, 3)

	assert.Equal(t, domain.DirectionSent, h.Items[0].Direction)
	assert.Equal(t, domain.DirectionReceived, h.Items[1].Direction)
	assert.Equal(t, domain.DirectionSent, h.Items[2].Direction)

	assert.Equal(t, domain.TransferFailed, h.Items[2].Status)
	assert.Nil(t, h.Items[2].DestinationPhone)
	require.NotNil(t, h.Items[2].FailureReason)
	assert.Equal(t, domain.ReasonDestinationNotFound, *h.Items[2].FailureReason)
}

func TestGetHistory_PagingDefaults(t *testing.T) {
	t.Parallel()
	svc, _, transferRepo, uow := newWalletServiceWithMocks(t)
	expectDoPassthrough(uow)

	me := uuid.New()
	transferRepo.EXPECT().ListByAccount(mock.Anything, me, 1, walletsvc.DefaultPageSize).
		Return([]*repository.TransferWithPhones{}, int64(0), nil)

	h, err := svc.GetHistory(context.Background(), me, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Page)
	assert.Equal(t, int64(0), h.Total)
	assert.Empty(t, h.Items)
}

func TestGetHistory_RepoError(t *testing.T) {
	t.Parallel()
	svc, _, transferRepo, uow := newWalletServiceWithMocks(t)
	expectDoPassthrough(uow)

	dbErr := errors.New("query failed")
	transferRepo.EXPECT().ListByAccount(mock.Anything, mock.Anything, 2, 5).
		Return(nil, int64(0), dbErr)

	h, err := svc.GetHistory(context.Background(), uuid.New(), 2, 5)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, h)
}
