package shareunit_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-propfi-ledger/internal/derivation"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	mockspkg "github.com/feral-file/ff-propfi-ledger/internal/mocks"
	"github.com/feral-file/ff-propfi-ledger/internal/shareunit"
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

// setupUnit creates a property-owned share unit in st and returns its id and the authority proof
func setupUnit(t *testing.T, st store.Store, units shareunit.Ledger, deriver derivation.Deriver) (domain.Address, domain.AuthorityProof) {
	t.Helper()
	ctx := context.Background()
	owner := newTestAddress(t)

	seeds := domain.PropertySeeds(owner)
	authority, bump, err := deriver.FindAddress(seeds)
	require.NoError(t, err)
	unitID, _, err := deriver.FindAddress(domain.ShareUnitSeeds(authority))
	require.NoError(t, err)

	err = st.Transaction(ctx, func(tx store.Tx) error {
		if err := tx.CreateProperty(ctx, &domain.Property{
			Address:         authority,
			Owner:           owner,
			TotalShares:     100,
			AvailableShares: 100,
			ShareUnitID:     unitID,
			Bump:            bump,
		}); err != nil {
			return err
		}
		_, err := units.CreateUnit(ctx, tx, unitID, authority, authority)
		return err
	})
	require.NoError(t, err)

	return unitID, domain.AuthorityProof{Seeds: seeds, Bump: bump}
}

func TestLedger_Mint(t *testing.T) {
	st := store.NewMemoryStore()
	deriver := derivation.NewDeriver(domain.MustParseAddress(domain.DEFAULT_PROGRAM_ID))
	units := shareunit.NewLedger(st, deriver)
	ctx := context.Background()

	unitID, proof := setupUnit(t, st, units, deriver)
	holder := newTestAddress(t)

	for _, amount := range []uint64{10, 5} {
		err := st.Transaction(ctx, func(tx store.Tx) error {
			_, err := units.Mint(ctx, tx, unitID, holder, amount, proof)
			return err
		})
		require.NoError(t, err)
	}

	balance, err := units.BalanceOf(ctx, unitID, holder)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), balance)

	unit, err := st.GetShareUnit(ctx, unitID)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), unit.Supply)
}

func TestLedger_Mint_Rejections(t *testing.T) {
	st := store.NewMemoryStore()
	deriver := derivation.NewDeriver(domain.MustParseAddress(domain.DEFAULT_PROGRAM_ID))
	units := shareunit.NewLedger(st, deriver)
	ctx := context.Background()

	unitID, proof := setupUnit(t, st, units, deriver)
	holder := newTestAddress(t)

	tests := []struct {
		name      string
		unitID    domain.Address
		amount    uint64
		proof     domain.AuthorityProof
		expectErr error
	}{
		{
			name:      "zero amount",
			unitID:    unitID,
			amount:    0,
			proof:     proof,
			expectErr: domain.ErrZeroAmount,
		},
		{
			name:      "unknown unit",
			unitID:    newTestAddress(t),
			amount:    1,
			proof:     proof,
			expectErr: domain.ErrShareUnitNotFound,
		},
		{
			name:      "proof for another owner",
			unitID:    unitID,
			amount:    1,
			proof:     domain.AuthorityProof{Seeds: domain.PropertySeeds(holder), Bump: proof.Bump},
			expectErr: domain.ErrInvalidAuthority,
		},
		{
			name:      "wrong bump",
			unitID:    unitID,
			amount:    1,
			proof:     domain.AuthorityProof{Seeds: proof.Seeds, Bump: proof.Bump - 1},
			expectErr: domain.ErrInvalidAuthority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := st.Transaction(ctx, func(tx store.Tx) error {
				_, err := units.Mint(ctx, tx, tt.unitID, holder, tt.amount, tt.proof)
				return err
			})
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}

	balance, err := units.BalanceOf(ctx, unitID, holder)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestLedger_Mint_SupplyOverflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tx := mockspkg.NewMockTx(ctrl)
	deriver := mockspkg.NewMockDeriver(ctrl)
	units := shareunit.NewLedger(mockspkg.NewMockStore(ctrl), deriver)

	authority := newTestAddress(t)
	unitID := newTestAddress(t)
	proof := domain.AuthorityProof{Seeds: [][]byte{[]byte("seed")}, Bump: 7}

	tx.EXPECT().
		LockShareUnit(gomock.Any(), unitID).
		Return(&domain.ShareUnit{ID: unitID, MintAuthority: authority, Supply: math.MaxUint64}, nil)
	deriver.EXPECT().
		CreateAddress(proof.Seeds, proof.Bump).
		Return(authority, nil)

	_, err := units.Mint(ctx, tx, unitID, newTestAddress(t), 1, proof)
	assert.ErrorIs(t, err, domain.ErrMathError)
}

func TestLedger_CreateUnit_Duplicate(t *testing.T) {
	st := store.NewMemoryStore()
	deriver := derivation.NewDeriver(domain.MustParseAddress(domain.DEFAULT_PROGRAM_ID))
	units := shareunit.NewLedger(st, deriver)
	ctx := context.Background()

	unitID, _ := setupUnit(t, st, units, deriver)
	unit, err := st.GetShareUnit(ctx, unitID)
	require.NoError(t, err)

	err = st.Transaction(ctx, func(tx store.Tx) error {
		_, err := units.CreateUnit(ctx, tx, unitID, unit.Property, unit.MintAuthority)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrShareUnitAlreadyExists)
}
