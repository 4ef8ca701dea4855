package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/davipay/wallet/pkg/domain"
)

func TestNewAccount(t *testing.T) {
	t.Parallel()
	a := domain.NewAccount("3001234567", decimal.NewFromInt(100000))

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, "3001234567", a.Phone)
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(100000)))
	assert.False(t, a.CreatedAt.IsZero())
}
