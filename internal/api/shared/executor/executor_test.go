package executor_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-propfi-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-propfi-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-propfi-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/ledger"
	mockspkg "github.com/feral-file/ff-propfi-ledger/internal/mocks"
	"github.com/feral-file/ff-propfi-ledger/internal/store"
)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl       *gomock.Controller
	ledger     *mockspkg.MockLedger
	shareUnits *mockspkg.MockShareUnitLedger
	bank       *mockspkg.MockBank
	store      *mockspkg.MockStore
	executor   executor.Executor
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:       ctrl,
		ledger:     mockspkg.NewMockLedger(ctrl),
		shareUnits: mockspkg.NewMockShareUnitLedger(ctrl),
		bank:       mockspkg.NewMockBank(ctrl),
		store:      mockspkg.NewMockStore(ctrl),
	}
	tm.executor = executor.NewExecutor(tm.ledger, tm.shareUnits, tm.bank, tm.store)

	return tm
}

// tearDownTestExecutor cleans up the test mocks
func tearDownTestExecutor(mocks *testExecutorMocks) {
	mocks.ctrl.Finish()
}

func newTestAddress(t *testing.T) domain.Address {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	addr, err := domain.AddressFromPublicKey(pub)
	require.NoError(t, err)
	return addr
}

func newTestProperty(t *testing.T) *domain.Property {
	return &domain.Property{
		Address:         newTestAddress(t),
		Owner:           newTestAddress(t),
		TotalShares:     100,
		AvailableShares: 90,
		RentPool:        15,
		ShareUnitID:     newTestAddress(t),
		Bump:            253,
		IsListed:        true,
		SharePrice:      50,
		CreatedAt:       time.Unix(1_700_000_000, 0).UTC(),
	}
}

func TestExecutor_BuyProperty(t *testing.T) {
	mocks := setupTestExecutor(t)
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	property := newTestProperty(t)
	buyer := newTestAddress(t)

	mocks.ledger.EXPECT().BuyProperty(ctx, buyer, property.Address, uint64(10)).Return(property, nil)

	response, err := mocks.executor.BuyProperty(ctx, buyer, property.Address, dto.AmountRequest{Amount: 10})
	require.NoError(t, err)
	assert.Equal(t, property.Address.String(), response.Address)
	assert.Equal(t, property.Owner.String(), response.Owner)
	assert.Equal(t, property.ShareUnitID.String(), response.ShareUnitID)
	assert.Equal(t, uint64(90), response.AvailableShares)
	assert.Equal(t, uint8(253), response.DerivationTag)
	assert.True(t, response.IsListed)
}

func TestExecutor_PassesLedgerErrorsThrough(t *testing.T) {
	mocks := setupTestExecutor(t)
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	caller := newTestAddress(t)
	address := newTestAddress(t)

	mocks.ledger.EXPECT().DistributeRent(ctx, caller, address).Return(nil, domain.ErrNotOwner)
	_, err := mocks.executor.DistributeRent(ctx, caller, address)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	mocks.ledger.EXPECT().DepositRent(ctx, caller, address, uint64(0)).Return(nil, domain.ErrZeroAmount)
	_, err = mocks.executor.DepositRent(ctx, caller, address, dto.AmountRequest{})
	assert.ErrorIs(t, err, domain.ErrZeroAmount)
}

func TestExecutor_UpdateProperty(t *testing.T) {
	mocks := setupTestExecutor(t)
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	property := newTestProperty(t)
	price := uint64(75)

	// Empty update is rejected before reaching the ledger
	_, err := mocks.executor.UpdateProperty(ctx, property.Owner, property.Address, dto.UpdatePropertyRequest{})
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)

	mocks.ledger.
		EXPECT().
		UpdateProperty(ctx, property.Owner, property.Address, ledger.UpdatePropertyInput{SharePrice: &price}).
		Return(property, nil)

	_, err = mocks.executor.UpdateProperty(ctx, property.Owner, property.Address, dto.UpdatePropertyRequest{SharePrice: &price})
	require.NoError(t, err)
}

func TestExecutor_BuyShares(t *testing.T) {
	mocks := setupTestExecutor(t)
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	property := newTestProperty(t)
	buyer := newTestAddress(t)

	_, err := mocks.executor.BuyShares(ctx, property.Address, dto.BuySharesRequest{Amount: 5})
	assert.Error(t, err)

	_, err = mocks.executor.BuyShares(ctx, property.Address, dto.BuySharesRequest{Buyer: "invalid!", Amount: 5})
	assert.Error(t, err)

	mocks.ledger.EXPECT().BuyShares(ctx, buyer, property.Address, uint64(5)).Return(property, nil)
	_, err = mocks.executor.BuyShares(ctx, property.Address, dto.BuySharesRequest{Buyer: buyer.String(), Amount: 5})
	require.NoError(t, err)
}

func TestExecutor_GetProperty(t *testing.T) {
	mocks := setupTestExecutor(t)
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	property := newTestProperty(t)
	missing := newTestAddress(t)
	broken := newTestAddress(t)

	mocks.ledger.EXPECT().GetProperty(ctx, property.Address).Return(property, nil).Times(2)
	mocks.ledger.EXPECT().GetProperty(ctx, missing).Return(nil, domain.ErrPropertyNotFound).Times(2)
	mocks.ledger.EXPECT().GetProperty(ctx, broken).Return(nil, errors.New("db down"))

	response, err := mocks.executor.GetProperty(ctx, property.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), response.RentPool)

	record, err := mocks.executor.GetPropertyRecord(ctx, property.Address)
	require.NoError(t, err)
	require.Len(t, record, domain.PROPERTY_RECORD_SIZE)
	var decoded domain.Property
	require.NoError(t, decoded.UnmarshalBinary(record))
	assert.Equal(t, property.Owner, decoded.Owner)

	response, err = mocks.executor.GetProperty(ctx, missing)
	require.NoError(t, err)
	assert.Nil(t, response)

	record, err = mocks.executor.GetPropertyRecord(ctx, missing)
	require.NoError(t, err)
	assert.Nil(t, record)

	_, err = mocks.executor.GetProperty(ctx, broken)
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
}

func TestExecutor_ListProperties(t *testing.T) {
	mocks := setupTestExecutor(t)
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	owner := newTestAddress(t)
	properties := []*domain.Property{newTestProperty(t), newTestProperty(t)}

	mocks.ledger.
		EXPECT().
		ListProperties(ctx, store.PropertyQueryFilter{Owner: &owner, Limit: 2, Offset: 0}).
		Return(properties, uint64(5), nil)
	mocks.ledger.
		EXPECT().
		ListProperties(ctx, store.PropertyQueryFilter{Owner: &owner, Limit: 2, Offset: 4}).
		Return(properties[:1], uint64(5), nil)

	page, err := mocks.executor.ListProperties(ctx, &owner, nil, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page.Properties, 2)
	assert.Equal(t, uint64(5), page.Total)
	require.NotNil(t, page.Offset)
	assert.Equal(t, uint64(2), *page.Offset)

	last, err := mocks.executor.ListProperties(ctx, &owner, nil, 2, 4)
	require.NoError(t, err)
	assert.Nil(t, last.Offset)
}

func TestExecutor_GetBalances(t *testing.T) {
	mocks := setupTestExecutor(t)
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	account := newTestAddress(t)
	unit := newTestAddress(t)

	mocks.bank.EXPECT().BalanceOf(ctx, account).Return(uint64(500), nil).Times(2)
	mocks.shareUnits.EXPECT().BalanceOf(ctx, unit, account).Return(uint64(10), nil)

	balances, err := mocks.executor.GetBalances(ctx, account, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), balances.Currency)
	assert.Nil(t, balances.Shares)

	balances, err = mocks.executor.GetBalances(ctx, account, &unit)
	require.NoError(t, err)
	require.NotNil(t, balances.Shares)
	assert.Equal(t, uint64(10), balances.Shares.Balance)
	assert.Equal(t, unit.String(), balances.Shares.Unit)
}

func TestExecutor_FundAccount(t *testing.T) {
	mocks := setupTestExecutor(t)
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	account := newTestAddress(t)

	mocks.bank.EXPECT().Fund(ctx, account, uint64(250)).Return(uint64(750), nil)
	balances, err := mocks.executor.FundAccount(ctx, account, dto.AmountRequest{Amount: 250})
	require.NoError(t, err)
	assert.Equal(t, uint64(750), balances.Currency)

	mocks.bank.EXPECT().Fund(ctx, account, uint64(0)).Return(uint64(0), domain.ErrZeroAmount)
	_, err = mocks.executor.FundAccount(ctx, account, dto.AmountRequest{})
	assert.ErrorIs(t, err, domain.ErrZeroAmount)
}

func TestExecutor_GetEvents(t *testing.T) {
	mocks := setupTestExecutor(t)
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	property := newTestAddress(t)
	events := []*domain.LedgerEvent{
		{Sequence: 4, EventID: "a", Type: domain.EventTypePropertyListed, Property: property, Payload: json.RawMessage(`{}`)},
		{Sequence: 5, EventID: "b", Type: domain.EventTypePropertyPurchased, Property: property, Payload: json.RawMessage(`{}`)},
	}

	mocks.store.EXPECT().GetLedgerEvents(ctx, store.LedgerEventQueryFilter{After: 3, Limit: 10}).Return(events, nil)
	mocks.store.EXPECT().GetLedgerEvents(ctx, store.LedgerEventQueryFilter{After: 5, Limit: 10}).Return(nil, nil)

	page, err := mocks.executor.GetEvents(ctx, 3, 10)
	require.NoError(t, err)
	require.Len(t, page.Events, 2)
	assert.Equal(t, "property.purchased", page.Events[1].Type)
	require.NotNil(t, page.Next)
	assert.Equal(t, uint64(5), *page.Next)

	empty, err := mocks.executor.GetEvents(ctx, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, empty.Events)
	assert.Nil(t, empty.Next)
}
