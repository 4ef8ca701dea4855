package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davipay/wallet/pkg/domain"
)

func TestValidateAmount(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		amount string
		valid  bool
	}{
		{"positive integer", "100", true},
		{"two decimal places", "0.01", true},
		{"large amount", "999999999.99", true},
		{"zero", "0", false},
		{"negative", "-50", false},
		{"three decimal places", "10.001", false},
		{"sub-cent", "0.001", false},
		{"trailing zeros beyond cents", "10.10", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := domain.ValidateAmount(decimal.RequireFromString(tc.amount))
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidAmount)
			}
		})
	}
}

func TestNewTransfer(t *testing.T) {
	t.Parallel()
	source := uuid.New()
	dest := uuid.New()
	amount := decimal.NewFromInt(500)

	tr := domain.NewTransfer(source, dest, amount)

	assert.NotEqual(t, uuid.Nil, tr.ID)
	assert.Equal(t, source, tr.SourceID)
	require.NotNil(t, tr.DestinationID)
	assert.Equal(t, dest, *tr.DestinationID)
	assert.Equal(t, domain.TransferSucceeded, tr.Status)
	assert.Nil(t, tr.FailureReason)
	assert.True(t, tr.Amount.Equal(amount))
	assert.False(t, tr.CreatedAt.IsZero())
}

func TestNewFailedTransfer(t *testing.T) {
	t.Parallel()
	source := uuid.New()
	amount := decimal.NewFromInt(500)

	t.Run("unresolved destination stays nil", func(t *testing.T) {
		t.Parallel()
		tr := domain.NewFailedTransfer(source, nil, amount, domain.ReasonDestinationNotFound)
		assert.Equal(t, domain.TransferFailed, tr.Status)
		assert.Nil(t, tr.DestinationID)
		require.NotNil(t, tr.FailureReason)
		assert.Equal(t, domain.ReasonDestinationNotFound, *tr.FailureReason)
	})

	t.Run("resolved destination is linked", func(t *testing.T) {
		t.Parallel()
		dest := uuid.New()
		tr := domain.NewFailedTransfer(source, &dest, amount, domain.ReasonInsufficientFunds)
		assert.Equal(t, domain.TransferFailed, tr.Status)
		require.NotNil(t, tr.DestinationID)
		assert.Equal(t, dest, *tr.DestinationID)
		require.NotNil(t, tr.FailureReason)
		assert.Equal(t, domain.ReasonInsufficientFunds, *tr.FailureReason)
	})
}

func TestDirectionFor(t *testing.T) {
	t.Parallel()
	source := uuid.New()
	dest := uuid.New()
	tr := domain.NewTransfer(source, dest, decimal.NewFromInt(10))

	assert.Equal(t, domain.DirectionSent, tr.DirectionFor(source))
	assert.Equal(t, domain.DirectionReceived, tr.DirectionFor(dest))
	assert.Equal(t, domain.DirectionReceived, tr.DirectionFor(uuid.New()))
}
