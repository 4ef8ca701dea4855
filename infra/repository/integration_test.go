package repository_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/davipay/wallet/infra"
	infrarepo "github.com/davipay/wallet/infra/repository"
	"github.com/davipay/wallet/pkg/domain"
	transfersvc "github.com/davipay/wallet/pkg/service/transfer"
)

// startWalletDB starts a throwaway Postgres, opens it the way the server does
// and syncs the schema.
func startWalletDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("wallet_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	return db
}

// Two concurrent 60-unit transfers from a balance of 100: the row locks must
// serialize them so exactly one commits and the source never goes negative.
func TestTransfer_ConcurrentDebits_NoOverdraw(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	ctx := context.Background()
	db := startWalletDB(t)

	uow := infrarepo.NewUoW(db)
	svc := transfersvc.New(uow, slog.New(slog.NewTextHandler(io.Discard, nil)))

	accounts, err := uow.AccountRepository()
	require.NoError(t, err)

	source := domain.NewAccount("3001111111", decimal.NewFromInt(100))
	dest := domain.NewAccount("3002222222", decimal.NewFromInt(100))
	require.NoError(t, accounts.Create(ctx, source))
	require.NoError(t, accounts.Create(ctx, dest))

	amount := decimal.NewFromInt(60)
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Transfer(ctx, source.ID, dest.Phone, amount)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientFunds):
			rejected++
		default:
			t.Fatalf("unexpected transfer error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	srcAfter, err := accounts.Get(ctx, source.ID)
	require.NoError(t, err)
	destAfter, err := accounts.Get(ctx, dest.ID)
	require.NoError(t, err)

	assert.False(t, srcAfter.Balance.IsNegative())
	assert.True(t, srcAfter.Balance.Equal(decimal.NewFromInt(40)),
		"source balance is %s", srcAfter.Balance)
	assert.True(t, destAfter.Balance.Equal(decimal.NewFromInt(160)),
		"destination balance is %s", destAfter.Balance)
	assert.True(t, srcAfter.Balance.Add(destAfter.Balance).Equal(decimal.NewFromInt(200)))

	transfers, err := uow.TransferRepository()
	require.NoError(t, err)
	rows, total, err := transfers.ListByAccount(ctx, source.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	var exitosas, fallidas int
	for _, row := range rows {
		switch row.Status {
		case domain.TransferSucceeded:
			exitosas++
		case domain.TransferFailed:
			fallidas++
			require.NotNil(t, row.FailureReason)
			assert.Equal(t, domain.ReasonInsufficientFunds, *row.FailureReason)
		}
	}
	assert.Equal(t, 1, exitosas)
	assert.Equal(t, 1, fallidas)
}

// Opposing concurrent transfers lock the same two rows from both sides; the
// id-ordered locking must let both commit instead of deadlocking.
func TestTransfer_OpposingConcurrentTransfers_BothCommit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	ctx := context.Background()
	db := startWalletDB(t)

	uow := infrarepo.NewUoW(db)
	svc := transfersvc.New(uow, slog.New(slog.NewTextHandler(io.Discard, nil)))

	accounts, err := uow.AccountRepository()
	require.NoError(t, err)

	a := domain.NewAccount("3003333333", decimal.NewFromInt(100))
	b := domain.NewAccount("3004444444", decimal.NewFromInt(100))
	require.NoError(t, accounts.Create(ctx, a))
	require.NoError(t, accounts.Create(ctx, b))

	results := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := svc.Transfer(ctx, a.ID, b.Phone, decimal.NewFromInt(30))
		results <- err
	}()
	go func() {
		defer wg.Done()
		_, err := svc.Transfer(ctx, b.ID, a.Phone, decimal.NewFromInt(50))
		results <- err
	}()
	wg.Wait()
	close(results)

	for err := range results {
		assert.NoError(t, err)
	}

	aAfter, err := accounts.Get(ctx, a.ID)
	require.NoError(t, err)
	bAfter, err := accounts.Get(ctx, b.ID)
	require.NoError(t, err)

	assert.True(t, aAfter.Balance.Equal(decimal.NewFromInt(120)),
		"balance of a is %s", aAfter.Balance)
	assert.True(t, bAfter.Balance.Equal(decimal.NewFromInt(80)),
		"balance of b is %s", bAfter.Balance)
}
