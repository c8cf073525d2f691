package currency

import (
	"context"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
	"github.com/feral-file/ff-propfi-ledger/internal/store"

	"go.uber.org/zap"
)

// Bank moves base currency between accounts
//
//go:generate mockgen -source=currency.go -destination=../mocks/currency.go -package=mocks -mock_names=Bank=MockBank
type Bank interface {
	// Transfer moves amount from one account to another inside tx
	Transfer(ctx context.Context, tx store.Tx, from, to domain.Address, amount uint64) error
	// Fund credits amount to owner in its own transaction and returns the new balance
	Fund(ctx context.Context, owner domain.Address, amount uint64) (uint64, error)
	// BalanceOf returns the committed balance of owner
	BalanceOf(ctx context.Context, owner domain.Address) (uint64, error)
}

type bank struct {
	store store.Store
}

// NewBank creates a Bank backed by st
func NewBank(st store.Store) Bank {
	return &bank{store: st}
}

func (b *bank) Transfer(ctx context.Context, tx store.Tx, from, to domain.Address, amount uint64) error {
	if amount == 0 {
		return domain.ErrZeroAmount
	}
	return tx.TransferCurrency(ctx, from, to, amount)
}

func (b *bank) Fund(ctx context.Context, owner domain.Address, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, domain.ErrZeroAmount
	}

	var balance uint64
	err := b.store.Transaction(ctx, func(tx store.Tx) error {
		var err error
		balance, err = tx.CreditCurrency(ctx, owner, amount)
		return err
	})
	if err != nil {
		return 0, err
	}

	logger.InfoCtx(ctx, "Funded account",
		zap.String("owner", owner.String()),
		zap.Uint64("amount", amount),
		zap.Uint64("balance", balance))

	return balance, nil
}

func (b *bank) BalanceOf(ctx context.Context, owner domain.Address) (uint64, error) {
	return b.store.GetCurrencyBalance(ctx, owner)
}
