package ledger_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"math"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/ledger"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
	mockspkg "github.com/feral-file/ff-propfi-ledger/internal/mocks"
	"github.com/feral-file/ff-propfi-ledger/internal/store"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testLedgerMocks contains all the mocks needed for testing the ledger
type testLedgerMocks struct {
	ctrl       *gomock.Controller
	store      *mockspkg.MockStore
	tx         *mockspkg.MockTx
	deriver    *mockspkg.MockDeriver
	shareUnits *mockspkg.MockShareUnitLedger
	bank       *mockspkg.MockBank
	clock      *mockspkg.MockClock
	json       *mockspkg.MockJSON
	ledger     ledger.Ledger
}

// setupTestLedger creates all the mocks and the ledger for testing
func setupTestLedger(t *testing.T) *testLedgerMocks {
	ctrl := gomock.NewController(t)

	tm := &testLedgerMocks{
		ctrl:       ctrl,
		store:      mockspkg.NewMockStore(ctrl),
		tx:         mockspkg.NewMockTx(ctrl),
		deriver:    mockspkg.NewMockDeriver(ctrl),
		shareUnits: mockspkg.NewMockShareUnitLedger(ctrl),
		bank:       mockspkg.NewMockBank(ctrl),
		clock:      mockspkg.NewMockClock(ctrl),
		json:       mockspkg.NewMockJSON(ctrl),
	}
	tm.ledger = ledger.NewLedger(tm.store, tm.deriver, tm.shareUnits, tm.bank, tm.clock, tm.json)

	return tm
}

// tearDownTestLedger cleans up the test mocks
func tearDownTestLedger(mocks *testLedgerMocks) {
	mocks.ctrl.Finish()
}

// expectTransaction runs the transaction body against the mock tx
func (m *testLedgerMocks) expectTransaction() {
	m.store.
		EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(store.Tx) error) error {
			return fn(m.tx)
		})
}

// expectLocked makes the locked property visible to the transaction
func (m *testLedgerMocks) expectLocked(property *domain.Property) {
	m.expectTransaction()
	m.tx.
		EXPECT().
		LockProperty(gomock.Any(), property.Address).
		Return(property.Clone(), nil)
}

// expectEvent expects one outbox append of eventType and returns its payload
func (m *testLedgerMocks) expectEvent(t *testing.T, eventType domain.EventType) *domain.LedgerEvent {
	var appended domain.LedgerEvent
	m.clock.EXPECT().Now().Return(time.Unix(1_700_000_000, 0)).AnyTimes()
	m.json.
		EXPECT().
		Marshal(gomock.Any()).
		DoAndReturn(json.Marshal)
	m.tx.
		EXPECT().
		AppendLedgerEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *domain.LedgerEvent) error {
			assert.Equal(t, eventType, event.Type)
			assert.NotEmpty(t, event.EventID)
			appended = *event
			return nil
		})
	return &appended
}

func newTestAddress(t *testing.T) domain.Address {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	addr, err := domain.AddressFromPublicKey(pub)
	require.NoError(t, err)
	return addr
}

func newTestProperty(t *testing.T, totalShares uint64) *domain.Property {
	return &domain.Property{
		Address:         newTestAddress(t),
		Owner:           newTestAddress(t),
		TotalShares:     totalShares,
		AvailableShares: totalShares,
		ShareUnitID:     newTestAddress(t),
		Bump:            254,
	}
}

func newListedProperty(t *testing.T, totalShares, price uint64) *domain.Property {
	p := newTestProperty(t, totalShares)
	p.IsListed = true
	p.SharePrice = price
	return p
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func TestLedger_InitializeProperty_Success(t *testing.T) {
	mocks := setupTestLedger(t)
	defer tearDownTestLedger(mocks)

	ctx := context.Background()
	owner := newTestAddress(t)
	propertyAddr := newTestAddress(t)
	unitID := newTestAddress(t)

	mocks.deriver.
		EXPECT().
		FindAddress(domain.PropertySeeds(owner)).
		Return(propertyAddr, uint8(253), nil)
	mocks.deriver.
		EXPECT().
		FindAddress(domain.ShareUnitSeeds(propertyAddr)).
		Return(unitID, uint8(255), nil)
	mocks.expectTransaction()
	mocks.tx.
		EXPECT().
		CreateProperty(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *domain.Property) error {
			assert.Equal(t, propertyAddr, p.Address)
			assert.Equal(t, owner, p.Owner)
			assert.Equal(t, uint64(100), p.TotalShares)
			assert.Equal(t, uint64(100), p.AvailableShares)
			assert.Equal(t, unitID, p.ShareUnitID)
			assert.Equal(t, uint8(253), p.Bump)
			assert.False(t, p.IsListed)
			assert.Zero(t, p.SharePrice)
			assert.Zero(t, p.RentPool)
			return nil
		})
	mocks.shareUnits.
		EXPECT().
		CreateUnit(gomock.Any(), mocks.tx, unitID, propertyAddr, propertyAddr).
		Return(&domain.ShareUnit{ID: unitID, Property: propertyAddr, MintAuthority: propertyAddr}, nil)
	event := mocks.expectEvent(t, domain.EventTypePropertyInitialized)

	property, err := mocks.ledger.InitializeProperty(ctx, owner, 100)
	require.NoError(t, err)
	assert.Equal(t, propertyAddr, property.Address)
	assert.Equal(t, time.Unix(1_700_000_000, 0).UTC(), property.CreatedAt)

	var payload domain.PropertyInitialized
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, owner, payload.Owner)
	assert.Equal(t, uint64(100), payload.TotalShares)
	assert.Equal(t, propertyAddr, event.Property)
}

func TestLedger_InitializeProperty_ZeroShares(t *testing.T) {
	mocks := setupTestLedger(t)
	defer tearDownTestLedger(mocks)

	property, err := mocks.ledger.InitializeProperty(context.Background(), newTestAddress(t), 0)
	assert.ErrorIs(t, err, domain.ErrZeroAmount)
	assert.Nil(t, property)
}

func TestLedger_InitializeProperty_AlreadyExists(t *testing.T) {
	mocks := setupTestLedger(t)
	defer tearDownTestLedger(mocks)

	owner := newTestAddress(t)
	mocks.deriver.EXPECT().FindAddress(gomock.Any()).Return(newTestAddress(t), uint8(255), nil).Times(2)
	mocks.clock.EXPECT().Now().Return(time.Now())
	mocks.expectTransaction()
	mocks.tx.
		EXPECT().
		CreateProperty(gomock.Any(), gomock.Any()).
		Return(domain.ErrPropertyAlreadyExists)

	_, err := mocks.ledger.InitializeProperty(context.Background(), owner, 10)
	assert.ErrorIs(t, err, domain.ErrPropertyAlreadyExists)
}

func TestLedger_ListProperty(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		p := newTestProperty(t, 100)
		mocks.expectLocked(p)
		mocks.tx.
			EXPECT().
			SaveProperty(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, saved *domain.Property) error {
				assert.True(t, saved.IsListed)
				assert.Equal(t, uint64(50), saved.SharePrice)
				return nil
			})
		mocks.expectEvent(t, domain.EventTypePropertyListed)

		listed, err := mocks.ledger.ListProperty(context.Background(), p.Owner, p.Address, 50)
		require.NoError(t, err)
		assert.True(t, listed.IsListed)
		assert.Equal(t, uint64(50), listed.SharePrice)
	})

	tests := []struct {
		name      string
		notOwner  bool
		price     uint64
		expectErr error
	}{
		{name: "caller is not owner", notOwner: true, price: 50, expectErr: domain.ErrNotOwner},
		{name: "zero price", price: 0, expectErr: domain.ErrPriceTooLow},
		{name: "owner check comes before price check", notOwner: true, price: 0, expectErr: domain.ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestLedger(t)
			defer tearDownTestLedger(mocks)

			p := newTestProperty(t, 100)
			caller := p.Owner
			if tt.notOwner {
				caller = newTestAddress(t)
			}
			mocks.expectLocked(p)

			_, err := mocks.ledger.ListProperty(context.Background(), caller, p.Address, tt.price)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}

	t.Run("property not found", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		addr := newTestAddress(t)
		mocks.expectTransaction()
		mocks.tx.EXPECT().LockProperty(gomock.Any(), addr).Return(nil, domain.ErrPropertyNotFound)

		_, err := mocks.ledger.ListProperty(context.Background(), newTestAddress(t), addr, 10)
		assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	})
}

func TestLedger_UpdateProperty(t *testing.T) {
	t.Run("price and shares", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		p := newListedProperty(t, 100, 10)
		p.AvailableShares = 40
		mocks.expectLocked(p)
		mocks.tx.EXPECT().SaveProperty(gomock.Any(), gomock.Any()).Return(nil)
		event := mocks.expectEvent(t, domain.EventTypePropertyUpdated)

		updated, err := mocks.ledger.UpdateProperty(context.Background(), p.Owner, p.Address, ledger.UpdatePropertyInput{
			SharePrice: uint64Ptr(25),
			AddShares:  uint64Ptr(60),
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(25), updated.SharePrice)
		assert.Equal(t, uint64(160), updated.TotalShares)
		assert.Equal(t, uint64(100), updated.AvailableShares)

		var payload domain.PropertyUpdated
		require.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, uint64(160), payload.TotalShares)
		assert.Equal(t, uint64(100), payload.AvailableShares)
	})

	t.Run("zero add shares leaves counts", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		p := newTestProperty(t, 100)
		mocks.expectLocked(p)
		mocks.tx.EXPECT().SaveProperty(gomock.Any(), gomock.Any()).Return(nil)
		mocks.expectEvent(t, domain.EventTypePropertyUpdated)

		updated, err := mocks.ledger.UpdateProperty(context.Background(), p.Owner, p.Address, ledger.UpdatePropertyInput{
			AddShares: uint64Ptr(0),
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(100), updated.TotalShares)
	})

	tests := []struct {
		name      string
		property  func(t *testing.T) *domain.Property
		notOwner  bool
		input     ledger.UpdatePropertyInput
		expectErr error
	}{
		{
			name:      "caller is not owner",
			property:  func(t *testing.T) *domain.Property { return newTestProperty(t, 100) },
			notOwner:  true,
			input:     ledger.UpdatePropertyInput{SharePrice: uint64Ptr(5)},
			expectErr: domain.ErrNotOwner,
		},
		{
			name:      "zero price",
			property:  func(t *testing.T) *domain.Property { return newTestProperty(t, 100) },
			input:     ledger.UpdatePropertyInput{SharePrice: uint64Ptr(0)},
			expectErr: domain.ErrPriceTooLow,
		},
		{
			name:      "total shares overflow",
			property:  func(t *testing.T) *domain.Property { return newTestProperty(t, math.MaxUint64) },
			input:     ledger.UpdatePropertyInput{AddShares: uint64Ptr(1)},
			expectErr: domain.ErrMathError,
		},
		{
			name: "available shares overflow",
			property: func(t *testing.T) *domain.Property {
				p := newTestProperty(t, math.MaxUint64-1)
				p.TotalShares = 10
				return p
			},
			input:     ledger.UpdatePropertyInput{AddShares: uint64Ptr(2)},
			expectErr: domain.ErrMathError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestLedger(t)
			defer tearDownTestLedger(mocks)

			p := tt.property(t)
			caller := p.Owner
			if tt.notOwner {
				caller = newTestAddress(t)
			}
			mocks.expectLocked(p)

			_, err := mocks.ledger.UpdateProperty(context.Background(), caller, p.Address, tt.input)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestLedger_BuyProperty_Success(t *testing.T) {
	mocks := setupTestLedger(t)
	defer tearDownTestLedger(mocks)

	ctx := context.Background()
	p := newListedProperty(t, 100, 50)
	buyer := newTestAddress(t)

	mocks.expectLocked(p)
	gomock.InOrder(
		mocks.bank.EXPECT().Transfer(gomock.Any(), mocks.tx, buyer, p.Owner, uint64(500)).Return(nil),
		mocks.tx.
			EXPECT().
			SaveProperty(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, saved *domain.Property) error {
				assert.Equal(t, uint64(90), saved.AvailableShares)
				return nil
			}),
		mocks.shareUnits.
			EXPECT().
			Mint(gomock.Any(), mocks.tx, p.ShareUnitID, buyer, uint64(10), domain.AuthorityProof{
				Seeds: domain.PropertySeeds(p.Owner),
				Bump:  p.Bump,
			}).
			Return(uint64(10), nil),
	)
	event := mocks.expectEvent(t, domain.EventTypePropertyPurchased)

	updated, err := mocks.ledger.BuyProperty(ctx, buyer, p.Address, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(90), updated.AvailableShares)
	assert.Equal(t, uint64(100), updated.TotalShares)

	var payload domain.PropertyPurchased
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, buyer, payload.Buyer)
	assert.Equal(t, uint64(10), payload.Amount)
	assert.Equal(t, uint64(500), payload.TotalCost)
}

// Every rejected purchase must stop before payment, record writes and minting
func TestLedger_BuyProperty_Guards(t *testing.T) {
	tests := []struct {
		name      string
		property  func(t *testing.T) *domain.Property
		amount    uint64
		expectErr error
	}{
		{
			name:      "not listed",
			property:  func(t *testing.T) *domain.Property { return newTestProperty(t, 100) },
			amount:    10,
			expectErr: domain.ErrNotListed,
		},
		{
			name:      "more than available",
			property:  func(t *testing.T) *domain.Property { return newListedProperty(t, 100, 5) },
			amount:    101,
			expectErr: domain.ErrNotEnoughShares,
		},
		{
			name: "listed without price",
			property: func(t *testing.T) *domain.Property {
				p := newTestProperty(t, 100)
				p.IsListed = true
				return p
			},
			amount:    10,
			expectErr: domain.ErrNotListed,
		},
		{
			name:      "cost overflow",
			property:  func(t *testing.T) *domain.Property { return newListedProperty(t, 100, math.MaxUint64/2+1) },
			amount:    2,
			expectErr: domain.ErrMathError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestLedger(t)
			defer tearDownTestLedger(mocks)

			p := tt.property(t)
			mocks.expectLocked(p)

			_, err := mocks.ledger.BuyProperty(context.Background(), newTestAddress(t), p.Address, tt.amount)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}

	t.Run("zero amount opens no transaction", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		_, err := mocks.ledger.BuyProperty(context.Background(), newTestAddress(t), newTestAddress(t), 0)
		assert.ErrorIs(t, err, domain.ErrZeroAmount)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		p := newListedProperty(t, 100, 50)
		buyer := newTestAddress(t)
		mocks.expectLocked(p)
		mocks.bank.
			EXPECT().
			Transfer(gomock.Any(), mocks.tx, buyer, p.Owner, uint64(250)).
			Return(domain.ErrInsufficientFunds)

		_, err := mocks.ledger.BuyProperty(context.Background(), buyer, p.Address, 5)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("mint failure aborts", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		p := newListedProperty(t, 100, 1)
		buyer := newTestAddress(t)
		mocks.expectLocked(p)
		mocks.bank.EXPECT().Transfer(gomock.Any(), mocks.tx, buyer, p.Owner, uint64(5)).Return(nil)
		mocks.tx.EXPECT().SaveProperty(gomock.Any(), gomock.Any()).Return(nil)
		mocks.shareUnits.
			EXPECT().
			Mint(gomock.Any(), mocks.tx, p.ShareUnitID, buyer, uint64(5), gomock.Any()).
			Return(uint64(0), domain.ErrInvalidAuthority)

		_, err := mocks.ledger.BuyProperty(context.Background(), buyer, p.Address, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidAuthority)
	})
}

func TestLedger_BuyShares(t *testing.T) {
	t.Run("success without payment", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		p := newTestProperty(t, 100)
		buyer := newTestAddress(t)
		mocks.expectLocked(p)
		mocks.tx.EXPECT().SaveProperty(gomock.Any(), gomock.Any()).Return(nil)
		mocks.shareUnits.
			EXPECT().
			Mint(gomock.Any(), mocks.tx, p.ShareUnitID, buyer, uint64(100), gomock.Any()).
			Return(uint64(100), nil)
		mocks.expectEvent(t, domain.EventTypeSharesIssued)

		updated, err := mocks.ledger.BuyShares(context.Background(), buyer, p.Address, 100)
		require.NoError(t, err)
		assert.Zero(t, updated.AvailableShares)
	})

	t.Run("more than available", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		p := newTestProperty(t, 100)
		mocks.expectLocked(p)

		_, err := mocks.ledger.BuyShares(context.Background(), newTestAddress(t), p.Address, 150)
		assert.ErrorIs(t, err, domain.ErrNotEnoughShares)
	})

	t.Run("zero amount", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		_, err := mocks.ledger.BuyShares(context.Background(), newTestAddress(t), newTestAddress(t), 0)
		assert.ErrorIs(t, err, domain.ErrZeroAmount)
	})
}

func TestLedger_DepositRent(t *testing.T) {
	t.Run("any caller", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		p := newTestProperty(t, 100)
		p.RentPool = 1000
		depositor := newTestAddress(t)
		mocks.expectLocked(p)
		mocks.tx.EXPECT().SaveProperty(gomock.Any(), gomock.Any()).Return(nil)
		event := mocks.expectEvent(t, domain.EventTypeRentDeposited)

		updated, err := mocks.ledger.DepositRent(context.Background(), depositor, p.Address, 500)
		require.NoError(t, err)
		assert.Equal(t, uint64(1500), updated.RentPool)

		var payload domain.RentDeposited
		require.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, depositor, payload.Depositor)
		assert.Equal(t, uint64(1500), payload.RentPool)
	})

	t.Run("overflow", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		p := newTestProperty(t, 100)
		p.RentPool = math.MaxUint64
		mocks.expectLocked(p)

		_, err := mocks.ledger.DepositRent(context.Background(), p.Owner, p.Address, 1)
		assert.ErrorIs(t, err, domain.ErrMathError)
	})

	t.Run("zero amount", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		_, err := mocks.ledger.DepositRent(context.Background(), newTestAddress(t), newTestAddress(t), 0)
		assert.ErrorIs(t, err, domain.ErrZeroAmount)
	})
}

func TestLedger_DistributeRent(t *testing.T) {
	t.Run("owner resets pool", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		p := newTestProperty(t, 100)
		p.RentPool = 1500
		mocks.expectLocked(p)
		mocks.tx.EXPECT().SaveProperty(gomock.Any(), gomock.Any()).Return(nil)
		event := mocks.expectEvent(t, domain.EventTypeRentDistributed)

		updated, err := mocks.ledger.DistributeRent(context.Background(), p.Owner, p.Address)
		require.NoError(t, err)
		assert.Zero(t, updated.RentPool)

		var payload domain.RentDistributed
		require.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, uint64(1500), payload.Amount)
	})

	t.Run("caller is not owner", func(t *testing.T) {
		mocks := setupTestLedger(t)
		defer tearDownTestLedger(mocks)

		p := newTestProperty(t, 100)
		p.RentPool = 10
		mocks.expectLocked(p)

		_, err := mocks.ledger.DistributeRent(context.Background(), newTestAddress(t), p.Address)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})
}

func TestLedger_EventMarshalFailureAborts(t *testing.T) {
	mocks := setupTestLedger(t)
	defer tearDownTestLedger(mocks)

	p := newTestProperty(t, 100)
	mocks.expectLocked(p)
	mocks.tx.EXPECT().SaveProperty(gomock.Any(), gomock.Any()).Return(nil)
	mocks.json.EXPECT().Marshal(gomock.Any()).Return(nil, assert.AnError)

	_, err := mocks.ledger.ListProperty(context.Background(), p.Owner, p.Address, 1)
	assert.ErrorIs(t, err, assert.AnError)
}
