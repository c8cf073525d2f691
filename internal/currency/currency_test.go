package currency_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-propfi-ledger/internal/currency"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/store"
)

func newTestAddress(t *testing.T) domain.Address {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	addr, err := domain.AddressFromPublicKey(pub)
	require.NoError(t, err)
	return addr
}

func TestBank_Fund(t *testing.T) {
	bank := currency.NewBank(store.NewMemoryStore())
	ctx := context.Background()
	owner := newTestAddress(t)

	balance, err := bank.Fund(ctx, owner, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)

	balance, err = bank.Fund(ctx, owner, 50)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), balance)

	_, err = bank.Fund(ctx, owner, 0)
	assert.ErrorIs(t, err, domain.ErrZeroAmount)

	_, err = bank.Fund(ctx, owner, math.MaxUint64)
	assert.ErrorIs(t, err, domain.ErrMathError)

	balance, err = bank.BalanceOf(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), balance)
}

func TestBank_Transfer(t *testing.T) {
	st := store.NewMemoryStore()
	bank := currency.NewBank(st)
	ctx := context.Background()
	from := newTestAddress(t)
	to := newTestAddress(t)

	_, err := bank.Fund(ctx, from, 100)
	require.NoError(t, err)

	transfer := func(amount uint64) error {
		return st.Transaction(ctx, func(tx store.Tx) error {
			return bank.Transfer(ctx, tx, from, to, amount)
		})
	}

	require.NoError(t, transfer(60))
	assert.ErrorIs(t, transfer(41), domain.ErrInsufficientFunds)
	assert.ErrorIs(t, transfer(0), domain.ErrZeroAmount)

	fromBalance, err := bank.BalanceOf(ctx, from)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), fromBalance)

	toBalance, err := bank.BalanceOf(ctx, to)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), toBalance)
}

func TestBank_TransferToSelf(t *testing.T) {
	st := store.NewMemoryStore()
	bank := currency.NewBank(st)
	ctx := context.Background()
	owner := newTestAddress(t)

	_, err := bank.Fund(ctx, owner, 10)
	require.NoError(t, err)

	err = st.Transaction(ctx, func(tx store.Tx) error {
		return bank.Transfer(ctx, tx, owner, owner, 10)
	})
	require.NoError(t, err)

	balance, err := bank.BalanceOf(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), balance)
}
