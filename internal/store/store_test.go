package store

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func randomAddress(t *testing.T) domain.Address {
	var a domain.Address
	_, err := rand.Read(a[:])
	require.NoError(t, err)
	return a
}

// buildTestProperty creates an unlisted property with its share unit id
func buildTestProperty(t *testing.T, totalShares uint64) *domain.Property {
	return &domain.Property{
		Address:         randomAddress(t),
		Owner:           randomAddress(t),
		TotalShares:     totalShares,
		AvailableShares: totalShares,
		ShareUnitID:     randomAddress(t),
		Bump:            254,
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
	}
}

func buildTestEvent(t *testing.T, property domain.Address, eventType domain.EventType) *domain.LedgerEvent {
	payload, err := json.Marshal(map[string]string{"property": property.String()})
	require.NoError(t, err)
	return &domain.LedgerEvent{
		EventID:   randomAddress(t).String(),
		Type:      eventType,
		Property:  property,
		Payload:   payload,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// createTestProperty stores a property together with its share unit
func createTestProperty(t *testing.T, store Store, totalShares uint64) *domain.Property {
	p := buildTestProperty(t, totalShares)
	err := store.Transaction(context.Background(), func(tx Tx) error {
		if err := tx.CreateProperty(context.Background(), p); err != nil {
			return err
		}
		return tx.CreateShareUnit(context.Background(), &domain.ShareUnit{
			ID:            p.ShareUnitID,
			Property:      p.Address,
			MintAuthority: p.Address,
		})
	})
	require.NoError(t, err)
	return p
}

// =============================================================================
// Test: Properties
// =============================================================================

func testCreateAndGetProperty(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("created property is readable", func(t *testing.T) {
		p := createTestProperty(t, store, math.MaxUint64)

		got, err := store.GetProperty(ctx, p.Address)
		require.NoError(t, err)
		assert.Equal(t, p.Owner, got.Owner)
		assert.Equal(t, uint64(math.MaxUint64), got.TotalShares)
		assert.Equal(t, uint64(math.MaxUint64), got.AvailableShares)
		assert.Equal(t, p.ShareUnitID, got.ShareUnitID)
		assert.Equal(t, uint8(254), got.Bump)
		assert.False(t, got.IsListed)
		assert.True(t, p.CreatedAt.Equal(got.CreatedAt))

		unit, err := store.GetShareUnit(ctx, p.ShareUnitID)
		require.NoError(t, err)
		assert.Equal(t, p.Address, unit.MintAuthority)
		assert.Equal(t, uint64(0), unit.Supply)
	})

	t.Run("duplicate property is rejected", func(t *testing.T) {
		p := createTestProperty(t, store, 10)

		err := store.Transaction(ctx, func(tx Tx) error {
			return tx.CreateProperty(ctx, p)
		})
		assert.ErrorIs(t, err, domain.ErrPropertyAlreadyExists)
	})

	t.Run("missing property", func(t *testing.T) {
		_, err := store.GetProperty(ctx, randomAddress(t))
		assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

		_, err = store.GetShareUnit(ctx, randomAddress(t))
		assert.ErrorIs(t, err, domain.ErrShareUnitNotFound)

		err = store.Transaction(ctx, func(tx Tx) error {
			_, err := tx.LockProperty(ctx, randomAddress(t))
			return err
		})
		assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	})
}

func testSaveProperty(t *testing.T, store Store) {
	ctx := context.Background()
	p := createTestProperty(t, store, 100)

	err := store.Transaction(ctx, func(tx Tx) error {
		locked, err := tx.LockProperty(ctx, p.Address)
		if err != nil {
			return err
		}
		locked.IsListed = true
		locked.SharePrice = 50
		locked.AvailableShares = 90
		locked.RentPool = 1500
		return tx.SaveProperty(ctx, locked)
	})
	require.NoError(t, err)

	got, err := store.GetProperty(ctx, p.Address)
	require.NoError(t, err)
	assert.True(t, got.IsListed)
	assert.Equal(t, uint64(50), got.SharePrice)
	assert.Equal(t, uint64(90), got.AvailableShares)
	assert.Equal(t, uint64(100), got.TotalShares)
	assert.Equal(t, uint64(1500), got.RentPool)
}

func testTransactionRollback(t *testing.T, store Store) {
	ctx := context.Background()
	p := createTestProperty(t, store, 100)
	buyer := randomAddress(t)
	errAbort := errors.New("abort")

	err := store.Transaction(ctx, func(tx Tx) error {
		locked, err := tx.LockProperty(ctx, p.Address)
		if err != nil {
			return err
		}
		locked.AvailableShares = 0
		if err := tx.SaveProperty(ctx, locked); err != nil {
			return err
		}
		if _, err := tx.CreditShares(ctx, p.ShareUnitID, buyer, 100); err != nil {
			return err
		}
		if _, err := tx.CreditCurrency(ctx, buyer, 1000); err != nil {
			return err
		}
		if err := tx.AppendLedgerEvent(ctx, buildTestEvent(t, p.Address, domain.EventTypeSharesIssued)); err != nil {
			return err
		}
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	got, err := store.GetProperty(ctx, p.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), got.AvailableShares)

	shares, err := store.GetShareBalance(ctx, p.ShareUnitID, buyer)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), shares)

	currency, err := store.GetCurrencyBalance(ctx, buyer)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), currency)

	events, err := store.GetLedgerEvents(ctx, LedgerEventQueryFilter{Property: &p.Address})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func testGetProperties(t *testing.T, store Store) {
	ctx := context.Background()

	first := createTestProperty(t, store, 10)
	second := createTestProperty(t, store, 20)

	err := store.Transaction(ctx, func(tx Tx) error {
		locked, err := tx.LockProperty(ctx, second.Address)
		if err != nil {
			return err
		}
		locked.IsListed = true
		locked.SharePrice = 5
		return tx.SaveProperty(ctx, locked)
	})
	require.NoError(t, err)

	t.Run("by owner", func(t *testing.T) {
		properties, total, err := store.GetProperties(ctx, PropertyQueryFilter{Owner: &first.Owner})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, properties, 1)
		assert.Equal(t, first.Address, properties[0].Address)
	})

	t.Run("listed only", func(t *testing.T) {
		listed := true
		properties, _, err := store.GetProperties(ctx, PropertyQueryFilter{Listed: &listed})
		require.NoError(t, err)
		found := false
		for _, p := range properties {
			assert.True(t, p.IsListed)
			if p.Address == second.Address {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("offset past the end", func(t *testing.T) {
		properties, total, err := store.GetProperties(ctx, PropertyQueryFilter{Owner: &first.Owner, Offset: 5})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		assert.Empty(t, properties)
	})
}

// =============================================================================
// Test: Balances
// =============================================================================

func testShareBalances(t *testing.T, store Store) {
	ctx := context.Background()
	p := createTestProperty(t, store, 100)
	holder := randomAddress(t)

	for _, amount := range []uint64{10, 15} {
		err := store.Transaction(ctx, func(tx Tx) error {
			_, err := tx.CreditShares(ctx, p.ShareUnitID, holder, amount)
			return err
		})
		require.NoError(t, err)
	}

	balance, err := store.GetShareBalance(ctx, p.ShareUnitID, holder)
	require.NoError(t, err)
	assert.Equal(t, uint64(25), balance)

	t.Run("overflow", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Tx) error {
			_, err := tx.CreditShares(ctx, p.ShareUnitID, holder, math.MaxUint64)
			return err
		})
		assert.ErrorIs(t, err, domain.ErrMathError)

		balance, err := store.GetShareBalance(ctx, p.ShareUnitID, holder)
		require.NoError(t, err)
		assert.Equal(t, uint64(25), balance)
	})

	t.Run("unit supply", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Tx) error {
			unit, err := tx.LockShareUnit(ctx, p.ShareUnitID)
			if err != nil {
				return err
			}
			unit.Supply = 25
			return tx.SaveShareUnit(ctx, unit)
		})
		require.NoError(t, err)

		unit, err := store.GetShareUnit(ctx, p.ShareUnitID)
		require.NoError(t, err)
		assert.Equal(t, uint64(25), unit.Supply)
	})
}

func testCurrencyBalances(t *testing.T, store Store) {
	ctx := context.Background()
	buyer := randomAddress(t)
	owner := randomAddress(t)

	err := store.Transaction(ctx, func(tx Tx) error {
		balance, err := tx.CreditCurrency(ctx, buyer, 1000)
		if err != nil {
			return err
		}
		assert.Equal(t, uint64(1000), balance)
		return nil
	})
	require.NoError(t, err)

	t.Run("transfer", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Tx) error {
			return tx.TransferCurrency(ctx, buyer, owner, 500)
		})
		require.NoError(t, err)

		buyerBalance, err := store.GetCurrencyBalance(ctx, buyer)
		require.NoError(t, err)
		ownerBalance, err := store.GetCurrencyBalance(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, uint64(500), buyerBalance)
		assert.Equal(t, uint64(500), ownerBalance)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Tx) error {
			return tx.TransferCurrency(ctx, buyer, owner, 501)
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		buyerBalance, err := store.GetCurrencyBalance(ctx, buyer)
		require.NoError(t, err)
		assert.Equal(t, uint64(500), buyerBalance)
	})

	t.Run("self transfer keeps balance", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Tx) error {
			return tx.TransferCurrency(ctx, buyer, buyer, 200)
		})
		require.NoError(t, err)

		buyerBalance, err := store.GetCurrencyBalance(ctx, buyer)
		require.NoError(t, err)
		assert.Equal(t, uint64(500), buyerBalance)
	})

	t.Run("unknown account has zero balance", func(t *testing.T) {
		balance, err := store.GetCurrencyBalance(ctx, randomAddress(t))
		require.NoError(t, err)
		assert.Equal(t, uint64(0), balance)
	})
}

// =============================================================================
// Test: Ledger events and relay cursor
// =============================================================================

func testLedgerEvents(t *testing.T, store Store) {
	ctx := context.Background()
	p := createTestProperty(t, store, 10)

	types := []domain.EventType{
		domain.EventTypePropertyInitialized,
		domain.EventTypePropertyListed,
		domain.EventTypePropertyPurchased,
	}
	var appended []*domain.LedgerEvent
	for _, eventType := range types {
		event := buildTestEvent(t, p.Address, eventType)
		err := store.Transaction(ctx, func(tx Tx) error {
			return tx.AppendLedgerEvent(ctx, event)
		})
		require.NoError(t, err)
		require.NotZero(t, event.Sequence)
		appended = append(appended, event)
	}

	events, err := store.GetLedgerEvents(ctx, LedgerEventQueryFilter{Property: &p.Address})
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, types[i], e.Type)
		assert.Equal(t, appended[i].EventID, e.EventID)
		assert.Equal(t, appended[i].Sequence, e.Sequence)
		assert.JSONEq(t, string(appended[i].Payload), string(e.Payload))
		if i > 0 {
			assert.Greater(t, e.Sequence, events[i-1].Sequence)
		}
	}

	t.Run("after cursor", func(t *testing.T) {
		events, err := store.GetLedgerEvents(ctx, LedgerEventQueryFilter{After: appended[0].Sequence, Property: &p.Address})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, appended[1].EventID, events[0].EventID)
	})

	t.Run("limit", func(t *testing.T) {
		events, err := store.GetLedgerEvents(ctx, LedgerEventQueryFilter{Property: &p.Address, Limit: 1})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, appended[0].EventID, events[0].EventID)
	})
}

func testRelayCursor(t *testing.T, store Store) {
	ctx := context.Background()

	cursor, err := store.GetRelayCursor(ctx, "test-relay")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cursor)

	require.NoError(t, store.SetRelayCursor(ctx, "test-relay", 42))
	require.NoError(t, store.SetRelayCursor(ctx, "test-relay", 43))

	cursor, err = store.GetRelayCursor(ctx, "test-relay")
	require.NoError(t, err)
	assert.Equal(t, uint64(43), cursor)
}

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateAndGetProperty", testCreateAndGetProperty},
		{"SaveProperty", testSaveProperty},
		{"TransactionRollback", testTransactionRollback},
		{"GetProperties", testGetProperties},
		{"ShareBalances", testShareBalances},
		{"CurrencyBalances", testCurrencyBalances},
		{"LedgerEvents", testLedgerEvents},
		{"RelayCursor", testRelayCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
