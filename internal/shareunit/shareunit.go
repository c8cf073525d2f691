package shareunit

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-propfi-ledger/internal/derivation"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/store"
)

// Ledger tracks fungible share balances per share unit. Only the mint authority of a unit
// may mint it; a derived authority proves itself with the seeds and bump it was derived from.
//
//go:generate mockgen -source=shareunit.go -destination=../mocks/shareunit.go -package=mocks -mock_names=Ledger=MockShareUnitLedger
type Ledger interface {
	// CreateUnit registers a new share unit with zero supply
	CreateUnit(ctx context.Context, tx store.Tx, id, property, mintAuthority domain.Address) (*domain.ShareUnit, error)
	// Mint credits amount units to `to` and returns the recipient's new balance
	Mint(ctx context.Context, tx store.Tx, unitID, to domain.Address, amount uint64, proof domain.AuthorityProof) (uint64, error)
	// BalanceOf returns the committed balance of owner
	BalanceOf(ctx context.Context, unitID, owner domain.Address) (uint64, error)
}

type ledger struct {
	store   store.Store
	deriver derivation.Deriver
}

// NewLedger creates a share unit ledger that checks authority proofs with deriver
func NewLedger(st store.Store, deriver derivation.Deriver) Ledger {
	return &ledger{store: st, deriver: deriver}
}

func (l *ledger) CreateUnit(ctx context.Context, tx store.Tx, id, property, mintAuthority domain.Address) (*domain.ShareUnit, error) {
	unit := &domain.ShareUnit{
		ID:            id,
		Property:      property,
		MintAuthority: mintAuthority,
	}
	if err := tx.CreateShareUnit(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (l *ledger) Mint(ctx context.Context, tx store.Tx, unitID, to domain.Address, amount uint64, proof domain.AuthorityProof) (uint64, error) {
	if amount == 0 {
		return 0, domain.ErrZeroAmount
	}

	unit, err := tx.LockShareUnit(ctx, unitID)
	if err != nil {
		return 0, err
	}

	if err := derivation.VerifyAuthority(l.deriver, unit.MintAuthority, proof); err != nil {
		return 0, err
	}

	supply, err := domain.CheckedAdd(unit.Supply, amount)
	if err != nil {
		return 0, fmt.Errorf("share unit %s supply: %w", unitID, err)
	}
	unit.Supply = supply
	if err := tx.SaveShareUnit(ctx, unit); err != nil {
		return 0, err
	}

	return tx.CreditShares(ctx, unitID, to, amount)
}

func (l *ledger) BalanceOf(ctx context.Context, unitID, owner domain.Address) (uint64, error) {
	return l.store.GetShareBalance(ctx, unitID, owner)
}
